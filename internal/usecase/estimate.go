package usecases

import (
	"fmt"
	"image"
	"math"

	"github.com/xhardeep/file-compressor/internal/domain/entities"
	"github.com/xhardeep/file-compressor/internal/domain/repositories"
)

// Параметры грубой оценки размера
const (
	estimateTestScale   = 0.2  // Доля линейного размера для пробного кодирования
	estimateMinTestSide = 96   // Минимальная сторона пробной поверхности
	estimateQuality     = 0.8  // Фиксированное качество пробного кодирования
)

// SizeEstimator строит грубый прогноз размера полного кодирования по одному
// дешевому пробному кодированию уменьшенной копии. Прогноз — только подсказка
// для планирования: решения о приеме всегда принимаются по реальным кодированиям.
type SizeEstimator struct {
	encoder repositories.ImageEncoder
	scaler  repositories.ImageScaler
}

// NewSizeEstimator создает новый оценщик размера
func NewSizeEstimator(encoder repositories.ImageEncoder, scaler repositories.ImageScaler) *SizeEstimator {
	return &SizeEstimator{encoder: encoder, scaler: scaler}
}

// Estimate прогнозирует размер кодирования полного растра в указанном формате.
// Предполагается, что при фиксированном качестве байты растут линейно с числом
// пикселей; кодеки этому следуют лишь приблизительно.
func (e *SizeEstimator) Estimate(img image.Image, format entities.Format) (int64, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return 0, entities.ErrDecodeFailed
	}

	scale := estimateTestScale
	// Пробная поверхность не должна вырождаться
	if float64(width)*scale < estimateMinTestSide {
		scale = estimateMinTestSide / float64(width)
	}
	if float64(height)*scale < estimateMinTestSide {
		scale = estimateMinTestSide / float64(height)
	}
	if scale > 1 {
		scale = 1
	}

	testWidth := int(math.Round(float64(width) * scale))
	testHeight := int(math.Round(float64(height) * scale))

	test := img
	if testWidth < width || testHeight < height {
		test = e.scaler.Scale(img, testWidth, testHeight)
	}

	encoded, err := e.encoder.Encode(test, format, estimateQuality)
	if err != nil {
		return 0, fmt.Errorf("ошибка пробного кодирования: %w", err)
	}

	projected := int64(math.Round(float64(len(encoded)) / (scale * scale)))
	if projected < int64(len(encoded)) {
		projected = int64(len(encoded))
	}
	return projected, nil
}
