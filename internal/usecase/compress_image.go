package usecases

import (
	"fmt"
	"image"
	"math"

	"github.com/xhardeep/file-compressor/internal/domain/entities"
	"github.com/xhardeep/file-compressor/internal/domain/repositories"
)

// Политика поиска качества для одного растра
const (
	imageLowerBandRatio = 0.85
	imageStartQuality   = 0.92
	imageMinQuality     = 0.30
	imageMaxQuality     = 0.98
	imageStepDownLarge  = 0.15
	imageStepDownSmall  = 0.08
	imageStepUp         = 0.05
	imageLargeOvershoot = 2.0
	imageFarUnderRatio  = 0.5
	imageMaxIterations  = 20

	// Повторное уменьшение размеров после неудачного поиска
	fallbackMarginFactor = 0.9
)

// CompressImageUseCase сценарий сжатия одного растра под целевой размер.
// Конвейер: оценка размера, планирование размеров, масштабирование,
// поиск качества, при сильном промахе одно повторное уменьшение.
type CompressImageUseCase struct {
	decoder          repositories.ImageDecoder
	encoder          repositories.ImageEncoder
	scaler           repositories.ImageScaler
	logger           repositories.Logger
	progressReporter entities.ProgressFunc
}

// NewCompressImageUseCase создает новый сценарий сжатия растра
func NewCompressImageUseCase(
	decoder repositories.ImageDecoder,
	encoder repositories.ImageEncoder,
	scaler repositories.ImageScaler,
	logger repositories.Logger,
) *CompressImageUseCase {
	return &CompressImageUseCase{
		decoder: decoder,
		encoder: encoder,
		scaler:  scaler,
		logger:  logger,
	}
}

// SetProgressReporter устанавливает функцию для отчета о прогрессе вызова
func (uc *CompressImageUseCase) SetProgressReporter(reporter entities.ProgressFunc) {
	uc.progressReporter = reporter
}

// Execute сжимает закодированное изображение под целевой размер из пресета
func (uc *CompressImageUseCase) Execute(data []byte, preset entities.Preset) (*entities.CompressionOutcome, error) {
	if err := preset.Validate(); err != nil {
		return nil, err
	}
	if !preset.OutputFormat.IsRaster() {
		return nil, entities.ErrUnsupportedFormat
	}

	tracker := entities.NewProgressTracker(uc.progressReporter)

	img, sourceFormat, err := uc.decoder.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("ошибка декодирования источника: %w", err)
	}
	tracker.Report(5)

	originalSize := int64(len(data))
	originalDims := entities.Dimensions{
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}

	// Источник уже укладывается в бюджет и формат совпадает:
	// возвращаем байты без перекодирования
	if originalSize <= preset.TargetSizeBytes && sourceFormat == preset.OutputFormat {
		uc.logDebug("Источник уже в бюджете (%d <= %d байт), пропуск без перекодирования",
			originalSize, preset.TargetSizeBytes)
		tracker.Finish()
		return &entities.CompressionOutcome{
			OutputBytes:         data,
			OutputFormat:        preset.OutputFormat,
			OriginalSizeBytes:   originalSize,
			NewSizeBytes:        originalSize,
			OriginalDimensions:  originalDims,
			NewDimensions:       originalDims,
			AlreadyWithinBudget: true,
		}, nil
	}

	// Источник в бюджете, но формат другой: перекодирование при
	// неизменных размерах, планировщик не нужен
	if originalSize <= preset.TargetSizeBytes {
		result, exceeded, err := uc.searchAtDimensions(img, originalDims, preset, tracker, 10, 90)
		if err != nil {
			return nil, err
		}
		tracker.Finish()
		return &entities.CompressionOutcome{
			OutputBytes:        result.Data,
			OutputFormat:       preset.OutputFormat,
			OriginalSizeBytes:  originalSize,
			NewSizeBytes:       result.SizeBytes,
			OriginalDimensions: originalDims,
			NewDimensions:      originalDims,
			ExceededTarget:     exceeded,
		}, nil
	}

	outcome, err := uc.compressRaster(img, originalSize, originalDims, preset, tracker)
	if err != nil {
		return nil, err
	}
	tracker.Finish()
	return outcome, nil
}

// compressRaster выполняет полный конвейер для декодированного растра.
// Используется и для отрисованных страниц документов.
func (uc *CompressImageUseCase) compressRaster(
	img image.Image,
	originalSize int64,
	originalDims entities.Dimensions,
	preset entities.Preset,
	tracker *entities.ProgressTracker,
) (*entities.CompressionOutcome, error) {
	estimator := NewSizeEstimator(uc.encoder, uc.scaler)
	projected, err := estimator.Estimate(img, preset.OutputFormat)
	if err != nil {
		return nil, err
	}
	tracker.Report(15)

	planned := PlanDimensions(originalDims, projected, preset.TargetSizeBytes,
		preset.MaxWidth, preset.MaxHeight)
	uc.logDebug("Прогноз %d байт, планируемые размеры %dx%d (исходные %dx%d)",
		projected, planned.Width, planned.Height, originalDims.Width, originalDims.Height)

	surface := img
	if planned != originalDims {
		surface = uc.scaler.Scale(img, planned.Width, planned.Height)
	}
	tracker.Report(25)

	result, exceeded, err := uc.searchAtDimensions(surface, planned, preset, tracker, 25, 75)
	if err != nil {
		return nil, err
	}

	finalDims := planned
	// Один повторный проход с меньшими размерами, если результат
	// промахнулся мимо цели больше чем на половину исходного размера
	if result.SizeBytes > preset.TargetSizeBytes &&
		result.SizeBytes-preset.TargetSizeBytes > originalSize/2 {
		retryDims, retryResult, retryErr := uc.fallbackRetry(img, planned, result, preset, tracker)
		if retryErr == nil && retryResult.SizeBytes < result.SizeBytes {
			result = retryResult
			finalDims = retryDims
			exceeded = result.SizeBytes > preset.TargetSizeBytes
		}
	}

	return &entities.CompressionOutcome{
		OutputBytes:        result.Data,
		OutputFormat:       preset.OutputFormat,
		OriginalSizeBytes:  originalSize,
		NewSizeBytes:       result.SizeBytes,
		OriginalDimensions: originalDims,
		NewDimensions:      finalDims,
		ExceededTarget:     exceeded,
	}, nil
}

// searchAtDimensions подбирает качество при фиксированных размерах поверхности.
// Форматы без плавного качества кодируются один раз.
func (uc *CompressImageUseCase) searchAtDimensions(
	surface image.Image,
	dims entities.Dimensions,
	preset entities.Preset,
	tracker *entities.ProgressTracker,
	progressFrom, progressTo float64,
) (entities.EncodedResult, bool, error) {
	if !preset.OutputFormat.IsLossy() {
		data, err := uc.encoder.Encode(surface, preset.OutputFormat, 1)
		if err != nil {
			return entities.EncodedResult{}, false, fmt.Errorf("ошибка кодирования растра: %w", err)
		}
		result := entities.EncodedResult{Data: data, SizeBytes: int64(len(data)), Quality: 1}
		tracker.Report(progressTo)
		return result, result.SizeBytes > preset.TargetSizeBytes, nil
	}

	params := bandSearchParams{
		TargetBytes:    preset.TargetSizeBytes,
		LowerBandRatio: imageLowerBandRatio,
		StartQuality:   imageStartQuality,
		MinQuality:     imageMinQuality,
		MaxQuality:     imageMaxQuality,
		StepDownLarge:  imageStepDownLarge,
		StepDownSmall:  imageStepDownSmall,
		StepUp:         imageStepUp,
		LargeOvershoot: imageLargeOvershoot,
		MaxIterations:  imageMaxIterations,
		FarUnderRatio:  imageFarUnderRatio,
		OnAttempt: func(iteration int, result entities.EncodedResult) {
			uc.logDebug("Итерация %d: качество %.2f, %d байт",
				iteration, result.Quality, result.SizeBytes)
			tracker.Report(progressFrom +
				(progressTo-progressFrom)*float64(iteration)/float64(imageMaxIterations))
		},
	}

	search, err := searchBand(func(quality float64) (entities.EncodedResult, error) {
		data, encodeErr := uc.encoder.Encode(surface, preset.OutputFormat, quality)
		if encodeErr != nil {
			return entities.EncodedResult{}, encodeErr
		}
		return entities.EncodedResult{
			Data:      data,
			SizeBytes: int64(len(data)),
			Quality:   quality,
		}, nil
	}, params)
	if err != nil {
		return entities.EncodedResult{}, false, fmt.Errorf("ошибка кодирования растра: %w", err)
	}

	tracker.Report(progressTo)
	return search.Result, search.Result.SizeBytes > preset.TargetSizeBytes, nil
}

// fallbackRetry уменьшает размеры по измеренному промаху и повторяет поиск один раз
func (uc *CompressImageUseCase) fallbackRetry(
	img image.Image,
	planned entities.Dimensions,
	previous entities.EncodedResult,
	preset entities.Preset,
	tracker *entities.ProgressTracker,
) (entities.Dimensions, entities.EncodedResult, error) {
	ratio := math.Sqrt(float64(preset.TargetSizeBytes)/float64(previous.SizeBytes)) * fallbackMarginFactor

	retryDims := entities.Dimensions{
		Width:  int(math.Round(float64(planned.Width) * ratio)),
		Height: int(math.Round(float64(planned.Height) * ratio)),
	}
	retryDims = applyMinFloor(retryDims)
	retryDims = clampToBox(retryDims, preset.MaxWidth, preset.MaxHeight)
	if retryDims.Width < 1 || retryDims.Height < 1 {
		return planned, previous, nil
	}

	uc.logDebug("Повторное уменьшение до %dx%d (коэффициент %.3f)",
		retryDims.Width, retryDims.Height, ratio)

	surface := uc.scaler.Scale(img, retryDims.Width, retryDims.Height)
	result, _, err := uc.searchAtDimensions(surface, retryDims, preset, tracker, 80, 95)
	if err != nil {
		return planned, previous, err
	}
	return retryDims, result, nil
}

func (uc *CompressImageUseCase) logDebug(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Debug(format, args...)
	}
}
