package config

import (
	"path/filepath"
	"testing"

	"github.com/xhardeep/file-compressor/internal/domain/entities"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	repo := NewRepository()

	config, err := repo.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Compression.TargetSizeKB != 500 {
		t.Errorf("TargetSizeKB = %d, want 500", config.Compression.TargetSizeKB)
	}
	if config.Compression.OutputFormat != "jpeg" {
		t.Errorf("OutputFormat = %q, want jpeg", config.Compression.OutputFormat)
	}
	if config.Compression.PDFMode != entities.PDFModePages {
		t.Errorf("PDFMode = %q, want pages", config.Compression.PDFMode)
	}
	if config.Processing.ParallelWorkers != 2 {
		t.Errorf("ParallelWorkers = %d, want 2", config.Processing.ParallelWorkers)
	}

	if err := config.Compression.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	repo := NewRepository()
	path := filepath.Join(t.TempDir(), "config.yaml")

	original := &entities.Config{
		Scanner: entities.ScannerConfig{
			SourceDirectory: "/data/in",
			TargetDirectory: "/data/out",
		},
		Compression: entities.AppCompressionConfig{
			TargetSizeKB: 250,
			OutputFormat: "webp",
			MaxWidth:     1280,
			MaxHeight:    720,
			PDFMode:      entities.PDFModeDocument,
		},
		Processing: entities.ProcessingConfig{
			ParallelWorkers: 4,
			RetryAttempts:   2,
		},
	}

	if err := repo.Save(path, original); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Compression != original.Compression {
		t.Errorf("Compression = %+v, want %+v", loaded.Compression, original.Compression)
	}
	if loaded.Scanner != original.Scanner {
		t.Errorf("Scanner = %+v, want %+v", loaded.Scanner, original.Scanner)
	}
	if loaded.Processing != original.Processing {
		t.Errorf("Processing = %+v, want %+v", loaded.Processing, original.Processing)
	}
}
