package repositories

import (
	"image"

	"github.com/xhardeep/file-compressor/internal/domain/entities"
)

// ImageDecoder интерфейс декодирования растровых изображений
type ImageDecoder interface {
	Decode(data []byte) (image.Image, entities.Format, error)
}

// ImageEncoder интерфейс кодирования растров.
// Качество нормировано в [0,1] и отображается на родную шкалу кодека.
type ImageEncoder interface {
	Encode(img image.Image, format entities.Format, quality float64) ([]byte, error)
}

// ImageScaler интерфейс масштабирования растров с сохранением содержимого
type ImageScaler interface {
	Scale(img image.Image, width, height int) image.Image
}

// DocumentRenderer интерфейс открытия постраничных документов
type DocumentRenderer interface {
	Open(data []byte) (DocumentHandle, error)
}

// DocumentHandle открытый постраничный документ.
// Страницы нумеруются с 1. Закрывается вызывающей стороной.
type DocumentHandle interface {
	PageCount() int
	// PageSize возвращает размеры страницы в пунктах (1/72 дюйма)
	PageSize(pageNumber int) (width, height float64, err error)
	// RenderPage отрисовывает страницу в растр с указанным разрешением
	RenderPage(pageNumber int, dpi float64) (image.Image, error)
	Close() error
}

// DocumentBuilder интерфейс сборки нового документа из сжатых страниц
type DocumentBuilder interface {
	NewDocument() (DocumentDraft, error)
}

// DocumentDraft собираемый документ
type DocumentDraft interface {
	// AddImagePage добавляет страницу указанного размера в пунктах
	// и растягивает на нее закодированное изображение
	AddImagePage(imageData []byte, widthPts, heightPts float64) error
	Serialize() ([]byte, error)
}

// DocumentOptimizer структурная оптимизация собранного документа
type DocumentOptimizer interface {
	Optimize(data []byte) ([]byte, error)
}

// FileRepository интерфейс для работы с файловой системой
type FileRepository interface {
	GetFileInfo(path string) (*FileInfo, error)
	FileExists(path string) bool
	CreateDirectory(path string) error
	ListSupportedFiles(directory string) ([]string, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// FileInfo информация о файле
type FileInfo struct {
	Path string
	Size int64
}
