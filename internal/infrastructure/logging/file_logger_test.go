package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xhardeep/file-compressor/internal/domain/repositories"
)

func TestNewFileLoggerDisabled(t *testing.T) {
	logger, err := NewFileLogger("unused.log", "info", 10, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger != nil {
		t.Fatal("logger must be nil when file logging is disabled")
	}

	// Типизированный nil в интерфейсе проходит проверку != nil,
	// поэтому методы обязаны выдерживать nil получателя
	var iface repositories.Logger = logger
	if iface == nil {
		t.Fatal("typed nil boxed into interface compares non-nil")
	}
	iface.Debug("сообщение %d", 1)
	iface.Info("сообщение")
	iface.Warning("сообщение")
	iface.Error("сообщение")
	iface.Success("сообщение")
	if err := iface.Close(); err != nil {
		t.Errorf("Close on nil logger: %v", err)
	}
}

func TestFileLoggerWritesAndFiltersLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, err := NewFileLogger(path, "info", 10, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Debug("отладка скрыта")
	logger.Info("запись уровня info")
	logger.Error("запись уровня error")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)

	if strings.Contains(content, "отладка скрыта") {
		t.Error("debug message must be filtered at info level")
	}
	if !strings.Contains(content, "[INFO] запись уровня info") {
		t.Errorf("info message missing from log:\n%s", content)
	}
	if !strings.Contains(content, "[ERROR] запись уровня error") {
		t.Errorf("error message missing from log:\n%s", content)
	}
}
