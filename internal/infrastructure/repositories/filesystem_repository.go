package repositories

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xhardeep/file-compressor/internal/domain/repositories"
)

// FileSystemRepository реализация репозитория для работы с файловой системой
type FileSystemRepository struct{}

// NewFileSystemRepository создает новый репозиторий файловой системы
func NewFileSystemRepository() *FileSystemRepository {
	return &FileSystemRepository{}
}

// GetFileInfo получает информацию о файле
func (r *FileSystemRepository) GetFileInfo(path string) (*repositories.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	return &repositories.FileInfo{
		Path: path,
		Size: info.Size(),
	}, nil
}

// FileExists проверяет существование файла
func (r *FileSystemRepository) FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// CreateDirectory создает директорию
func (r *FileSystemRepository) CreateDirectory(path string) error {
	return os.MkdirAll(path, 0755)
}

// ListSupportedFiles возвращает список поддерживаемых файлов
// в директории и всех подпапках
func (r *FileSystemRepository) ListSupportedFiles(directory string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(directory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if isSupportedExt(filepath.Ext(d.Name())) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ReadFile читает файл целиком
func (r *FileSystemRepository) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile записывает файл, создавая директорию при необходимости
func (r *FileSystemRepository) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// isSupportedExt проверяет расширение на поддерживаемый формат
func isSupportedExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".pdf", ".jpg", ".jpeg", ".png", ".webp":
		return true
	default:
		return false
	}
}
