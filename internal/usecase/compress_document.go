package usecases

import (
	"fmt"
	"image"
	"math"

	"github.com/xhardeep/file-compressor/internal/domain/entities"
	"github.com/xhardeep/file-compressor/internal/domain/repositories"
)

// Политика отрисовки страниц и поиска единого качества документа
const (
	// Страница отрисовывается с запасом над целевым разрешением,
	// чтобы итоговое уменьшение не было увеличением
	renderHeadroom = 1.25
	renderMinDPI   = 72
	renderMaxDPI   = 300

	documentLowerBandRatio = 0.90
	documentStartQuality   = 0.75
	documentMinQuality     = 0.30
	documentMaxQuality     = 0.95
	documentStepDownLarge  = 0.15
	documentStepDownSmall  = 0.08
	documentStepUp         = 0.05
	documentLargeOvershoot = 1.5
	documentMaxAttempts    = 10
)

// CompressDocumentUseCase сценарий сжатия постраничного документа.
// Постраничный режим прогоняет конвейер растра по каждой странице,
// режим единого документа итеративно пересобирает весь документ
// при едином качестве до попадания в бюджет.
type CompressDocumentUseCase struct {
	renderer         repositories.DocumentRenderer
	builder          repositories.DocumentBuilder
	optimizer        repositories.DocumentOptimizer
	imageUseCase     *CompressImageUseCase
	logger           repositories.Logger
	progressReporter entities.ProgressFunc
}

// NewCompressDocumentUseCase создает новый сценарий сжатия документа
func NewCompressDocumentUseCase(
	renderer repositories.DocumentRenderer,
	builder repositories.DocumentBuilder,
	optimizer repositories.DocumentOptimizer,
	imageUseCase *CompressImageUseCase,
	logger repositories.Logger,
) *CompressDocumentUseCase {
	return &CompressDocumentUseCase{
		renderer:     renderer,
		builder:      builder,
		optimizer:    optimizer,
		imageUseCase: imageUseCase,
		logger:       logger,
	}
}

// SetProgressReporter устанавливает функцию для отчета о прогрессе вызова
func (uc *CompressDocumentUseCase) SetProgressReporter(reporter entities.ProgressFunc) {
	uc.progressReporter = reporter
}

// Execute сжимает документ в режиме из конфигурации.
// Единый бюджет применяется только при выводе в формат документа.
func (uc *CompressDocumentUseCase) Execute(data []byte, preset entities.Preset, pdfMode string) ([]*entities.CompressionOutcome, error) {
	if preset.OutputFormat == entities.FormatPDF && pdfMode == entities.PDFModeDocument {
		outcome, err := uc.ExecuteWholeDocument(data, preset)
		if err != nil {
			return nil, err
		}
		return []*entities.CompressionOutcome{outcome}, nil
	}
	return uc.ExecutePerPage(data, preset, nil)
}

// ExecutePerPage сжимает выбранные страницы независимо, каждая под полный
// целевой размер. Порядок итогов совпадает с порядком страниц; ошибка одной
// страницы не прерывает остальные.
func (uc *CompressDocumentUseCase) ExecutePerPage(data []byte, preset entities.Preset, pages []int) ([]*entities.CompressionOutcome, error) {
	if err := preset.Validate(); err != nil {
		return nil, err
	}

	tracker := entities.NewProgressTracker(uc.progressReporter)

	handle, err := uc.renderer.Open(data)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия документа: %w", err)
	}
	defer handle.Close()

	pageCount := handle.PageCount()
	if pageCount == 0 {
		return nil, entities.ErrEmptyDocument
	}
	if len(pages) == 0 {
		pages = make([]int, pageCount)
		for i := range pages {
			pages[i] = i + 1
		}
	}

	// Формат кодирования страницы: при выводе в документ страницы
	// кодируются в JPEG и заворачиваются обратно в контейнер
	rasterPreset := preset
	wrapToDocument := preset.OutputFormat == entities.FormatPDF
	if wrapToDocument {
		rasterPreset.OutputFormat = entities.FormatJPEG
	}

	// Грубая доля исходного размера на страницу для порога повторного уменьшения
	perPageOriginal := int64(len(data)) / int64(pageCount)

	outcomes := make([]*entities.CompressionOutcome, 0, len(pages))
	for i, pageNumber := range pages {
		outcome := uc.compressPage(handle, pageNumber, rasterPreset, perPageOriginal)
		if wrapToDocument && outcome.Error == nil {
			uc.wrapPageOutcome(handle, pageNumber, outcome, preset)
		}
		outcomes = append(outcomes, outcome)
		tracker.Report(float64(i+1) / float64(len(pages)) * 100)
	}

	tracker.Finish()
	return outcomes, nil
}

// compressPage отрисовывает и сжимает одну страницу
func (uc *CompressDocumentUseCase) compressPage(
	handle repositories.DocumentHandle,
	pageNumber int,
	preset entities.Preset,
	originalSize int64,
) *entities.CompressionOutcome {
	raster, err := uc.renderPage(handle, pageNumber, preset)
	if err != nil {
		uc.logError("Страница %d: %v", pageNumber, err)
		return &entities.CompressionOutcome{PageNumber: pageNumber, Error: err}
	}

	dims := entities.Dimensions{Width: raster.Bounds().Dx(), Height: raster.Bounds().Dy()}
	outcome, err := uc.imageUseCase.compressRaster(raster, originalSize, dims, preset, nil)
	if err != nil {
		uc.logError("Страница %d: %v", pageNumber, err)
		return &entities.CompressionOutcome{PageNumber: pageNumber, Error: err}
	}

	outcome.PageNumber = pageNumber
	return outcome
}

// renderPage отрисовывает страницу с разрешением, превышающим целевое
func (uc *CompressDocumentUseCase) renderPage(
	handle repositories.DocumentHandle,
	pageNumber int,
	preset entities.Preset,
) (image.Image, error) {
	widthPts, heightPts, err := handle.PageSize(pageNumber)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения размера страницы %d: %w", pageNumber, err)
	}

	dpi := renderDPI(widthPts, heightPts, preset.MaxWidth, preset.MaxHeight)
	raster, err := handle.RenderPage(pageNumber, dpi)
	if err != nil {
		return nil, fmt.Errorf("ошибка отрисовки страницы %d: %w", pageNumber, err)
	}
	return raster, nil
}

// wrapPageOutcome заворачивает сжатую страницу в одностраничный документ
func (uc *CompressDocumentUseCase) wrapPageOutcome(
	handle repositories.DocumentHandle,
	pageNumber int,
	outcome *entities.CompressionOutcome,
	preset entities.Preset,
) {
	widthPts, heightPts, err := handle.PageSize(pageNumber)
	if err != nil {
		outcome.Error = err
		return
	}

	draft, err := uc.builder.NewDocument()
	if err != nil {
		outcome.Error = fmt.Errorf("ошибка создания документа: %w", err)
		return
	}
	if err := draft.AddImagePage(outcome.OutputBytes, widthPts, heightPts); err != nil {
		outcome.Error = fmt.Errorf("ошибка добавления страницы: %w", err)
		return
	}
	serialized, err := draft.Serialize()
	if err != nil {
		outcome.Error = fmt.Errorf("ошибка сериализации документа: %w", err)
		return
	}

	outcome.OutputBytes = serialized
	outcome.OutputFormat = entities.FormatPDF
	outcome.NewSizeBytes = int64(len(serialized))
	outcome.ExceededTarget = outcome.NewSizeBytes > preset.TargetSizeBytes
}

// ExecuteWholeDocument ищет единое качество, при котором весь пересобранный
// документ укладывается в бюджет. Каждая попытка заново отрисовывает и
// встраивает все страницы, поэтому число попыток жестко ограничено.
// Поштучной подстройки качества страниц нет: документ — один бюджет,
// а не сумма бюджетов страниц.
func (uc *CompressDocumentUseCase) ExecuteWholeDocument(data []byte, preset entities.Preset) (*entities.CompressionOutcome, error) {
	if err := preset.Validate(); err != nil {
		return nil, err
	}
	if preset.OutputFormat != entities.FormatPDF {
		return nil, entities.ErrUnsupportedFormat
	}

	tracker := entities.NewProgressTracker(uc.progressReporter)

	handle, err := uc.renderer.Open(data)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия документа: %w", err)
	}
	defer handle.Close()

	pageCount := handle.PageCount()
	if pageCount == 0 {
		return nil, entities.ErrEmptyDocument
	}

	var firstPageDims entities.Dimensions

	params := bandSearchParams{
		TargetBytes:    preset.TargetSizeBytes,
		LowerBandRatio: documentLowerBandRatio,
		StartQuality:   documentStartQuality,
		MinQuality:     documentMinQuality,
		MaxQuality:     documentMaxQuality,
		StepDownLarge:  documentStepDownLarge,
		StepDownSmall:  documentStepDownSmall,
		StepUp:         documentStepUp,
		LargeOvershoot: documentLargeOvershoot,
		MaxIterations:  documentMaxAttempts,
		OnAttempt: func(iteration int, result entities.EncodedResult) {
			uc.logDebug("Попытка %d: качество %.2f, %d байт",
				iteration, result.Quality, result.SizeBytes)
			tracker.Report(float64(iteration) / float64(documentMaxAttempts) * 100)
		},
	}

	search, err := searchBand(func(quality float64) (entities.EncodedResult, error) {
		rebuilt, dims, rebuildErr := uc.rebuildDocument(handle, preset, quality)
		if rebuildErr != nil {
			return entities.EncodedResult{}, rebuildErr
		}
		if firstPageDims == (entities.Dimensions{}) {
			firstPageDims = dims
		}
		return entities.EncodedResult{
			Data:      rebuilt,
			SizeBytes: int64(len(rebuilt)),
			Quality:   quality,
		}, nil
	}, params)
	if err != nil {
		return nil, fmt.Errorf("ошибка пересборки документа: %w", err)
	}

	tracker.Finish()
	return &entities.CompressionOutcome{
		OutputBytes:        search.Result.Data,
		OutputFormat:       entities.FormatPDF,
		OriginalSizeBytes:  int64(len(data)),
		NewSizeBytes:       search.Result.SizeBytes,
		OriginalDimensions: firstPageDims,
		NewDimensions:      firstPageDims,
		ExceededTarget:     search.Result.SizeBytes > preset.TargetSizeBytes,
	}, nil
}

// rebuildDocument пересобирает весь документ при едином качестве
func (uc *CompressDocumentUseCase) rebuildDocument(
	handle repositories.DocumentHandle,
	preset entities.Preset,
	quality float64,
) ([]byte, entities.Dimensions, error) {
	draft, err := uc.builder.NewDocument()
	if err != nil {
		return nil, entities.Dimensions{}, err
	}

	var firstPageDims entities.Dimensions
	for pageNumber := 1; pageNumber <= handle.PageCount(); pageNumber++ {
		widthPts, heightPts, err := handle.PageSize(pageNumber)
		if err != nil {
			return nil, entities.Dimensions{}, err
		}

		raster, err := uc.renderPage(handle, pageNumber, preset)
		if err != nil {
			return nil, entities.Dimensions{}, err
		}
		if pageNumber == 1 {
			firstPageDims = entities.Dimensions{
				Width:  raster.Bounds().Dx(),
				Height: raster.Bounds().Dy(),
			}
		}

		encoded, err := uc.imageUseCase.encoder.Encode(raster, entities.FormatJPEG, quality)
		if err != nil {
			return nil, entities.Dimensions{}, err
		}
		if err := draft.AddImagePage(encoded, widthPts, heightPts); err != nil {
			return nil, entities.Dimensions{}, err
		}
	}

	serialized, err := draft.Serialize()
	if err != nil {
		return nil, entities.Dimensions{}, err
	}

	if uc.optimizer != nil {
		optimized, err := uc.optimizer.Optimize(serialized)
		if err != nil {
			uc.logError("Структурная оптимизация не удалась: %v", err)
		} else {
			serialized = optimized
		}
	}

	return serialized, firstPageDims, nil
}

// renderDPI выводит разрешение отрисовки из размеров страницы и целевого
// прямоугольника, с запасом и в разумных пределах
func renderDPI(widthPts, heightPts float64, maxWidth, maxHeight int) float64 {
	if widthPts <= 0 || heightPts <= 0 {
		return renderMinDPI
	}

	byWidth := float64(maxWidth) / (widthPts / 72)
	byHeight := float64(maxHeight) / (heightPts / 72)
	dpi := math.Max(byWidth, byHeight) * renderHeadroom

	if dpi < renderMinDPI {
		return renderMinDPI
	}
	if dpi > renderMaxDPI {
		return renderMaxDPI
	}
	return dpi
}

func (uc *CompressDocumentUseCase) logDebug(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Debug(format, args...)
	}
}

func (uc *CompressDocumentUseCase) logError(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Error(format, args...)
	}
}
