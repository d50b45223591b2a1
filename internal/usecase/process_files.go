package usecases

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/xhardeep/file-compressor/internal/domain/entities"
	"github.com/xhardeep/file-compressor/internal/domain/repositories"
)

// ProcessFilesUseCase сценарий пакетной обработки директории: изображения и
// PDF файлы сжимаются под целевой размер из конфигурации. Ядро сжатия
// остается однопоточным, параллелизм только на уровне независимых файлов.
type ProcessFilesUseCase struct {
	imageUseCase     *CompressImageUseCase
	documentUseCase  *CompressDocumentUseCase
	fileRepo         repositories.FileRepository
	logger           repositories.Logger
	progressReporter func(entities.ProcessingStatus)
}

// NewProcessFilesUseCase создает новый сценарий пакетной обработки
func NewProcessFilesUseCase(
	imageUseCase *CompressImageUseCase,
	documentUseCase *CompressDocumentUseCase,
	fileRepo repositories.FileRepository,
	logger repositories.Logger,
) *ProcessFilesUseCase {
	return &ProcessFilesUseCase{
		imageUseCase:    imageUseCase,
		documentUseCase: documentUseCase,
		fileRepo:        fileRepo,
		logger:          logger,
	}
}

// SetProgressReporter устанавливает функцию для отчета о прогрессе
func (uc *ProcessFilesUseCase) SetProgressReporter(reporter func(entities.ProcessingStatus)) {
	uc.progressReporter = reporter
}

// reportProgress отправляет обновление прогресса
func (uc *ProcessFilesUseCase) reportProgress(status *entities.ProcessingStatus) {
	if uc.progressReporter != nil {
		uc.progressReporter(*status)
	}
}

// Execute выполняет обработку всех поддерживаемых файлов согласно конфигурации
func (uc *ProcessFilesUseCase) Execute(config *entities.Config) error {
	status := entities.NewProcessingStatus(0)
	status.SetPhase(entities.PhaseInitializing, "Инициализация обработки...")
	uc.reportProgress(status)

	preset, err := config.Compression.Preset()
	if err != nil {
		status.Fail(err)
		uc.reportProgress(status)
		return fmt.Errorf("ошибка конфигурации сжатия: %w", err)
	}

	uc.logInfo("╔════════════════════════════════════════════════════════════")
	uc.logInfo("║ Начало обработки файлов")
	uc.logInfo("╠════════════════════════════════════════════════════════════")
	uc.logInfo("║ Исходная директория: %s", config.Scanner.SourceDirectory)
	uc.logInfo("║ Целевая директория: %s", config.Scanner.TargetDirectory)
	uc.logInfo("║ Целевой размер: %d KB", config.Compression.TargetSizeKB)
	uc.logInfo("║ Выходной формат: %s", config.Compression.OutputFormat)
	uc.logInfo("║ Максимальные размеры: %dx%d", config.Compression.MaxWidth, config.Compression.MaxHeight)
	uc.logInfo("║ Параллельных воркеров: %d", config.Processing.ParallelWorkers)
	uc.logInfo("╚════════════════════════════════════════════════════════════")

	if !uc.fileRepo.FileExists(config.Scanner.SourceDirectory) {
		err := fmt.Errorf("%w: %s", entities.ErrDirectoryNotFound, config.Scanner.SourceDirectory)
		status.Fail(err)
		uc.reportProgress(status)
		return err
	}

	if err := uc.fileRepo.CreateDirectory(config.Scanner.TargetDirectory); err != nil {
		err = fmt.Errorf("ошибка создания целевой директории: %w", err)
		status.Fail(err)
		uc.reportProgress(status)
		return err
	}

	status.SetPhase(entities.PhaseScanning, "Сканирование файлов...")
	uc.reportProgress(status)
	uc.logInfo("🔍 Сканирование директории...")

	files, err := uc.fileRepo.ListSupportedFiles(config.Scanner.SourceDirectory)
	if err != nil {
		err = fmt.Errorf("ошибка получения списка файлов: %w", err)
		status.Fail(err)
		uc.reportProgress(status)
		return err
	}

	if len(files) == 0 {
		uc.logWarning("⚠️  Поддерживаемые файлы не найдены в директории: %s", config.Scanner.SourceDirectory)
		status.Complete()
		uc.reportProgress(status)
		return nil
	}

	status.TotalFiles = len(files)
	uc.logSuccess("✓ Найдено файлов для обработки: %d", len(files))

	status.SetPhase(entities.PhaseCompressing, "Сжатие файлов...")
	uc.reportProgress(status)
	uc.logInfo("")
	uc.logInfo("🔄 Начало сжатия файлов...")
	uc.logInfo("─────────────────────────────────────────────────────────────")

	workers := config.Processing.ParallelWorkers
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan string, len(files))
	results := make(chan *entities.CompressionOutcome, len(files))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go uc.worker(jobs, results, &wg, config, preset)
	}

	for _, file := range files {
		jobs <- file
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	fileCounter := 0
	for outcome := range results {
		fileCounter++
		status.AddOutcome(outcome)
		status.SetCurrentFile(outcome.SourcePath, outcome.OriginalSizeBytes)
		uc.reportProgress(status)

		fileName := filepath.Base(outcome.SourcePath)
		if outcome.Error == nil {
			uc.logSuccess("[%d/%d] ✓ %s", fileCounter, status.TotalFiles, fileName)
			uc.logInfo("    └─ Размер: %.2f KB → %.2f KB",
				float64(outcome.OriginalSizeBytes)/1024,
				float64(outcome.NewSizeBytes)/1024)
			if outcome.AlreadyWithinBudget {
				uc.logInfo("    └─ Источник уже в бюджете, скопирован без изменений")
			} else if outcome.ExceededTarget {
				uc.logWarning("    └─ ⚠️  Целевой размер не достигнут")
			}
		} else {
			uc.logError("[%d/%d] ✗ %s", fileCounter, status.TotalFiles, fileName)
			uc.logError("    └─ Ошибка: %v", outcome.Error)
		}
	}

	status.Complete()
	uc.reportProgress(status)

	uc.logInfo("")
	uc.logInfo("╔════════════════════════════════════════════════════════════")
	uc.logInfo("║ Обработка завершена")
	uc.logInfo("╠════════════════════════════════════════════════════════════")
	uc.logInfo("║ Время выполнения: %s", status.FormatElapsedTime())
	uc.logInfo("╠════════════════════════════════════════════════════════════")
	uc.logInfo("║ Статистика файлов:")
	uc.logInfo("║   • Всего: %d", status.TotalFiles)
	uc.logSuccess("║   • Успешно: %d", status.SuccessfulFiles)

	if status.FailedFiles > 0 {
		uc.logError("║   • Ошибок: %d", status.FailedFiles)
	}
	if status.ExceededFiles > 0 {
		uc.logWarning("║   • Превысили цель: %d", status.ExceededFiles)
	}

	if status.TotalOriginalSize > 0 {
		uc.logInfo("╠════════════════════════════════════════════════════════════")
		uc.logInfo("║ Статистика сжатия:")
		uc.logInfo("║   • Исходный размер: %.2f MB", float64(status.TotalOriginalSize)/1024/1024)
		uc.logInfo("║   • Сжатый размер: %.2f MB", float64(status.TotalCompressedSize)/1024/1024)
		uc.logSuccess("║   • Среднее сжатие: %.1f%%", status.AverageCompression)
		uc.logSuccess("║   • Сэкономлено: %.2f MB", float64(status.TotalSavedSpace)/1024/1024)
	}

	uc.logInfo("╚════════════════════════════════════════════════════════════")

	return nil
}

// worker обрабатывает файлы в отдельной горутине
func (uc *ProcessFilesUseCase) worker(
	jobs <-chan string,
	results chan<- *entities.CompressionOutcome,
	wg *sync.WaitGroup,
	config *entities.Config,
	preset entities.Preset,
) {
	defer wg.Done()

	retries := config.Processing.RetryAttempts
	if retries <= 0 {
		retries = 1
	}

	for inputFile := range jobs {
		var outcome *entities.CompressionOutcome
		var err error

		for attempt := 0; attempt < retries; attempt++ {
			outcome, err = uc.processFile(inputFile, config, preset)
			if err == nil {
				break
			}
			if attempt < retries-1 {
				uc.logWarning("Попытка %d/%d для файла %s не удалась: %v",
					attempt+1, retries, filepath.Base(inputFile), err)
				time.Sleep(time.Second)
			}
		}

		if err != nil {
			results <- &entities.CompressionOutcome{Error: err, SourcePath: inputFile}
			continue
		}
		results <- outcome
	}
}

// processFile сжимает один файл и записывает результаты в целевую директорию
func (uc *ProcessFilesUseCase) processFile(
	inputFile string,
	config *entities.Config,
	preset entities.Preset,
) (*entities.CompressionOutcome, error) {
	info, err := uc.fileRepo.GetFileInfo(inputFile)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации о файле %s: %w", inputFile, err)
	}
	if info.Size == 0 {
		return nil, fmt.Errorf("файл %s пуст", inputFile)
	}

	data, err := uc.fileRepo.ReadFile(inputFile)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", inputFile, err)
	}

	sourceFormat, err := entities.FormatFromPath(inputFile)
	if err != nil {
		return nil, fmt.Errorf("файл %s: %w", inputFile, err)
	}

	if sourceFormat == entities.FormatPDF {
		return uc.processDocument(inputFile, data, config, preset)
	}

	outcome, err := uc.imageUseCase.Execute(data, preset)
	if err != nil {
		return nil, fmt.Errorf("ошибка сжатия файла %s: %w", inputFile, err)
	}

	outputFile := uc.outputPath(inputFile, config, preset.OutputFormat, 0)
	if err := uc.fileRepo.WriteFile(outputFile, outcome.OutputBytes); err != nil {
		return nil, fmt.Errorf("ошибка записи файла %s: %w", outputFile, err)
	}

	outcome.SourcePath = inputFile
	return outcome, nil
}

// processDocument сжимает PDF файл в режиме из конфигурации
func (uc *ProcessFilesUseCase) processDocument(
	inputFile string,
	data []byte,
	config *entities.Config,
	preset entities.Preset,
) (*entities.CompressionOutcome, error) {
	outcomes, err := uc.documentUseCase.Execute(data, preset, config.Compression.PDFMode)
	if err != nil {
		return nil, fmt.Errorf("ошибка сжатия документа %s: %w", inputFile, err)
	}

	// Агрегируем постраничные итоги в один итог файла
	aggregate := &entities.CompressionOutcome{
		OutputFormat:      preset.OutputFormat,
		OriginalSizeBytes: int64(len(data)),
	}
	for _, outcome := range outcomes {
		if outcome.Error != nil {
			uc.logError("Страница %d файла %s: %v", outcome.PageNumber, filepath.Base(inputFile), outcome.Error)
			continue
		}

		pageSuffix := outcome.PageNumber
		if len(outcomes) == 1 {
			pageSuffix = 0
		}
		outputFile := uc.outputPath(inputFile, config, outcome.OutputFormat, pageSuffix)
		if err := uc.fileRepo.WriteFile(outputFile, outcome.OutputBytes); err != nil {
			return nil, fmt.Errorf("ошибка записи файла %s: %w", outputFile, err)
		}

		aggregate.NewSizeBytes += outcome.NewSizeBytes
		if outcome.ExceededTarget {
			aggregate.ExceededTarget = true
		}
		if aggregate.NewDimensions == (entities.Dimensions{}) {
			aggregate.OriginalDimensions = outcome.OriginalDimensions
			aggregate.NewDimensions = outcome.NewDimensions
		}
	}

	aggregate.SourcePath = inputFile
	return aggregate, nil
}

// outputPath строит путь выходного файла в целевой директории
func (uc *ProcessFilesUseCase) outputPath(inputFile string, config *entities.Config, format entities.Format, pageNumber int) string {
	base := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))
	name := base
	if pageNumber > 0 {
		name = fmt.Sprintf("%s_page%d", base, pageNumber)
	}
	return filepath.Join(config.Scanner.TargetDirectory, name+format.Extension())
}

// Методы для логирования
func (uc *ProcessFilesUseCase) logInfo(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Info(format, args...)
	}
}

func (uc *ProcessFilesUseCase) logSuccess(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Success(format, args...)
	}
}

func (uc *ProcessFilesUseCase) logWarning(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Warning(format, args...)
	}
}

func (uc *ProcessFilesUseCase) logError(format string, args ...interface{}) {
	if uc.logger != nil {
		uc.logger.Error(format, args...)
	}
}
