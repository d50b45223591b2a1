package usecases

import (
	"math"

	"github.com/xhardeep/file-compressor/internal/domain/entities"
)

// Параметры планирования размеров
const (
	planSafetyFactor = 1.15 // Запас, оставляющий поиску качества место для подъема
	planMinDimension = 160  // Абсолютный минимум стороны результата
)

// PlanDimensions вычисляет начальные выходные размеры по прогнозу полного
// размера и целевому бюджету. Функция чистая и детерминированная, кодирований
// не выполняет. Пропорции исходника сохраняются точно с учетом округления.
func PlanDimensions(original entities.Dimensions, projectedSizeBytes, targetSizeBytes int64, maxWidth, maxHeight int) entities.Dimensions {
	planned := original

	if projectedSizeBytes > 0 && targetSizeBytes > 0 && projectedSizeBytes > targetSizeBytes {
		targetPixels := math.Floor(float64(original.Pixels()) * float64(targetSizeBytes) /
			(float64(projectedSizeBytes) * planSafetyFactor))
		planned = dimensionsForPixels(original, targetPixels)
	}

	// Никогда не увеличиваем относительно исходника
	if planned.Width > original.Width || planned.Height > original.Height {
		planned = original
	}

	planned = clampToBox(planned, maxWidth, maxHeight)
	planned = applyMinFloor(planned)
	// Подъем до минимума мог снова нарушить верхние границы
	planned = clampToBox(planned, maxWidth, maxHeight)

	if planned.Width < 1 {
		planned.Width = 1
	}
	if planned.Height < 1 {
		planned.Height = 1
	}
	return planned
}

// dimensionsForPixels выводит ширину и высоту из целевой площади, сохраняя пропорции
func dimensionsForPixels(original entities.Dimensions, targetPixels float64) entities.Dimensions {
	aspect := original.AspectRatio()
	if aspect <= 0 || targetPixels <= 0 {
		return original
	}
	height := math.Sqrt(targetPixels / aspect)
	width := height * aspect
	return entities.Dimensions{
		Width:  int(math.Round(width)),
		Height: int(math.Round(height)),
	}
}

// clampToBox вписывает размеры в ограничивающий прямоугольник,
// перевыводя вторую сторону из ограниченной для точных пропорций
func clampToBox(d entities.Dimensions, maxWidth, maxHeight int) entities.Dimensions {
	aspect := d.AspectRatio()
	if aspect <= 0 {
		return d
	}
	if maxWidth > 0 && d.Width > maxWidth {
		d.Width = maxWidth
		d.Height = int(math.Round(float64(maxWidth) / aspect))
	}
	if maxHeight > 0 && d.Height > maxHeight {
		d.Height = maxHeight
		d.Width = int(math.Round(float64(maxHeight) * aspect))
	}
	return d
}

// applyMinFloor равномерно увеличивает обе стороны, если одна из них
// опустилась ниже абсолютного минимума
func applyMinFloor(d entities.Dimensions) entities.Dimensions {
	if d.Width >= planMinDimension && d.Height >= planMinDimension {
		return d
	}
	if d.Width < 1 || d.Height < 1 {
		return d
	}
	factor := float64(planMinDimension) / float64(d.Width)
	if byHeight := float64(planMinDimension) / float64(d.Height); byHeight > factor {
		factor = byHeight
	}
	return entities.Dimensions{
		Width:  int(math.Round(float64(d.Width) * factor)),
		Height: int(math.Round(float64(d.Height) * factor)),
	}
}
