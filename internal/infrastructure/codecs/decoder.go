package codecs

import (
	"bytes"
	"fmt"
	"image"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/xhardeep/file-compressor/internal/domain/entities"
	"github.com/xhardeep/file-compressor/internal/domain/repositories"
)

// ImagingDecoder декодер растров на основе библиотеки imaging
type ImagingDecoder struct{}

// NewImagingDecoder создает новый декодер изображений
func NewImagingDecoder() repositories.ImageDecoder {
	return &ImagingDecoder{}
}

// Decode декодирует поток байтов в изображение и определяет исходный формат
func (d *ImagingDecoder) Decode(data []byte) (image.Image, entities.Format, error) {
	format, err := sniffFormat(data)
	if err != nil {
		return nil, "", err
	}

	if format == entities.FormatWebP {
		img, err := webp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", entities.ErrDecodeFailed, err)
		}
		return img, format, nil
	}

	// AutoOrientation учитывает EXIF поворот при декодировании
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", entities.ErrDecodeFailed, err)
	}

	return img, format, nil
}

// sniffFormat определяет формат по сигнатуре файла
func sniffFormat(data []byte) (entities.Format, error) {
	switch {
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8:
		return entities.FormatJPEG, nil
	case len(data) >= 8 && bytes.Equal(data[0:8], []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}):
		return entities.FormatPNG, nil
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return entities.FormatWebP, nil
	case len(data) >= 5 && bytes.Equal(data[0:5], []byte("%PDF-")):
		return entities.FormatPDF, nil
	default:
		return "", entities.ErrUnsupportedFormat
	}
}
