package repositories

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListSupportedFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	files := []string{
		filepath.Join(dir, "b.pdf"),
		filepath.Join(dir, "a.jpg"),
		filepath.Join(sub, "c.PNG"),
		filepath.Join(dir, "photo.webp"),
		filepath.Join(dir, "ignore.txt"),
		filepath.Join(dir, "noext"),
	}
	for _, f := range files {
		if err := os.WriteFile(f, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	repo := NewFileSystemRepository()
	got, err := repo.ListSupportedFiles(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 4 {
		t.Fatalf("got %d files, want 4: %v", len(got), got)
	}
	// Результат отсортирован по пути
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Errorf("files not sorted: %v", got)
		}
	}
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	repo := NewFileSystemRepository()
	path := filepath.Join(t.TempDir(), "deep", "nested", "out.jpg")

	if err := repo.WriteFile(path, []byte("payload")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := repo.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("data = %q, want payload", data)
	}

	info, err := repo.GetFileInfo(path)
	if err != nil {
		t.Fatalf("GetFileInfo: %v", err)
	}
	if info.Size != int64(len("payload")) {
		t.Errorf("Size = %d, want %d", info.Size, len("payload"))
	}
	if !repo.FileExists(path) {
		t.Error("FileExists should report true")
	}
	if repo.FileExists(path + ".missing") {
		t.Error("FileExists should report false for a missing file")
	}
}
