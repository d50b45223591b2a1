package codecs

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/chai2010/webp"

	"github.com/xhardeep/file-compressor/internal/domain/entities"
	"github.com/xhardeep/file-compressor/internal/domain/repositories"
)

// StdEncoder кодировщик растров в поддерживаемые выходные форматы
type StdEncoder struct{}

// NewStdEncoder создает новый кодировщик изображений
func NewStdEncoder() repositories.ImageEncoder {
	return &StdEncoder{}
}

// Encode кодирует изображение в указанный формат.
// Качество нормировано в [0,1]; для PNG параметр игнорируется.
func (e *StdEncoder) Encode(img image.Image, format entities.Format, quality float64) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case entities.FormatJPEG:
		options := &jpeg.Options{Quality: jpegQuality(quality)}
		if err := jpeg.Encode(&buf, img, options); err != nil {
			return nil, fmt.Errorf("%w: %v", entities.ErrEncodeFailed, err)
		}
	case entities.FormatPNG:
		encoder := &png.Encoder{CompressionLevel: png.BestCompression}
		if err := encoder.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("%w: %v", entities.ErrEncodeFailed, err)
		}
	case entities.FormatWebP:
		options := &webp.Options{Lossless: false, Quality: float32(quality * 100)}
		if err := webp.Encode(&buf, img, options); err != nil {
			return nil, fmt.Errorf("%w: %v", entities.ErrEncodeFailed, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", entities.ErrUnsupportedFormat, format)
	}

	return buf.Bytes(), nil
}

// jpegQuality переводит нормированное качество в шкалу JPEG [1,100]
func jpegQuality(quality float64) int {
	q := int(math.Round(quality * 100))
	if q < 1 {
		q = 1
	}
	if q > 100 {
		q = 100
	}
	return q
}
