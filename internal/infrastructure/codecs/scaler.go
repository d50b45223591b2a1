package codecs

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/xhardeep/file-compressor/internal/domain/repositories"
)

// LanczosScaler масштабирование растров фильтром Lanczos3
type LanczosScaler struct{}

// NewLanczosScaler создает новый масштабатор изображений
func NewLanczosScaler() repositories.ImageScaler {
	return &LanczosScaler{}
}

// Scale изменяет размер изображения до указанных размеров
func (s *LanczosScaler) Scale(img image.Image, width, height int) image.Image {
	bounds := img.Bounds()
	if width == bounds.Dx() && height == bounds.Dy() {
		return img
	}
	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
}
