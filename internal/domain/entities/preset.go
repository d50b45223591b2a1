package entities

import "math"

// Preset настройки сжатия для одного запроса
type Preset struct {
	TargetSizeBytes int64  // Целевой размер результата в байтах
	OutputFormat    Format // Выходной формат
	MaxWidth        int    // Максимальная ширина результата в пикселях
	MaxHeight       int    // Максимальная высота результата в пикселях
}

// Validate проверяет корректность пресета до начала работы
func (p Preset) Validate() error {
	if p.TargetSizeBytes <= 0 {
		return ErrInvalidTargetSize
	}
	if p.MaxWidth <= 0 || p.MaxHeight <= 0 {
		return ErrInvalidMaxDimensions
	}
	switch p.OutputFormat {
	case FormatJPEG, FormatPNG, FormatWebP, FormatPDF:
		return nil
	default:
		return ErrUnsupportedFormat
	}
}

// Dimensions размеры растра в пикселях
type Dimensions struct {
	Width  int
	Height int
}

// Pixels возвращает площадь в пикселях
func (d Dimensions) Pixels() int {
	return d.Width * d.Height
}

// AspectRatio возвращает отношение ширины к высоте
func (d Dimensions) AspectRatio() float64 {
	if d.Height == 0 {
		return 0
	}
	return float64(d.Width) / float64(d.Height)
}

// FitsWithin проверяет, помещаются ли размеры в ограничивающий прямоугольник
func (d Dimensions) FitsWithin(maxWidth, maxHeight int) bool {
	return d.Width <= maxWidth && d.Height <= maxHeight
}

// SameAspect сравнивает пропорции с допуском на целочисленное округление
func (d Dimensions) SameAspect(other Dimensions, epsilon float64) bool {
	if d.Height == 0 || other.Height == 0 {
		return false
	}
	return math.Abs(d.AspectRatio()-other.AspectRatio()) < epsilon
}
