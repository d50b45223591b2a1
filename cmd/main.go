package main

import (
	"flag"
	"log"

	"github.com/xhardeep/file-compressor/internal/domain/entities"
	"github.com/xhardeep/file-compressor/internal/domain/repositories"
	"github.com/xhardeep/file-compressor/internal/infrastructure/codecs"
	"github.com/xhardeep/file-compressor/internal/infrastructure/config"
	"github.com/xhardeep/file-compressor/internal/infrastructure/logging"
	"github.com/xhardeep/file-compressor/internal/infrastructure/pdf"
	infraRepos "github.com/xhardeep/file-compressor/internal/infrastructure/repositories"
	"github.com/xhardeep/file-compressor/internal/interface/controllers"
	"github.com/xhardeep/file-compressor/internal/presentation/tui"
	usecases "github.com/xhardeep/file-compressor/internal/usecase"
)

func main() {
	inputPath := flag.String("input", "", "путь к файлу для сжатия (CLI режим)")
	outputPath := flag.String("output", "", "путь выходного файла (CLI режим)")
	flag.Parse()

	// Загрузка конфигурации
	configRepo := config.NewRepository()
	appConfig, err := configRepo.Load("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация базового логгера (в файл)
	fileLogger, err := logging.NewFileLogger(
		appConfig.Output.LogFileName,
		appConfig.Output.LogLevel,
		appConfig.Output.LogMaxSizeMB,
		appConfig.Output.LogToFile,
	)
	if err != nil {
		log.Printf("Предупреждение: не удалось инициализировать логгер: %v", err)
	}

	// При отключенном файловом логе fileLogger равен nil; типизированный nil
	// нельзя помещать в интерфейс, иначе проверки logger != nil проходят
	var baseLogger repositories.Logger
	if fileLogger != nil {
		baseLogger = fileLogger
		defer fileLogger.Close()
	}

	// Инфраструктура кодеков и документов
	decoder := codecs.NewImagingDecoder()
	encoder := codecs.NewStdEncoder()
	scaler := codecs.NewLanczosScaler()

	renderer := pdf.NewFitzRenderer()
	builder, err := pdf.NewUniPDFBuilder(appConfig.Compression.UniPDFLicenseKey)
	if err != nil {
		log.Fatalf("Ошибка инициализации UniPDF: %v", err)
	}
	optimizer := pdf.NewPDFCPUOptimizer()

	fileRepo := infraRepos.NewFileSystemRepository()

	// CLI режим: сжатие одного файла без TUI
	if *inputPath != "" {
		runCLI(*inputPath, *outputPath, appConfig, baseLogger,
			decoder, encoder, scaler, renderer, builder, optimizer, fileRepo)
		return
	}

	// Инициализация TUI
	tuiManager := tui.NewManager()
	tuiManager.Initialize()

	// Оборачиваем логгер адаптером, чтобы видеть логи в TUI
	var logger repositories.Logger
	logger = tui.NewUILogger(baseLogger, tuiManager)

	// Инициализация use cases
	imageUseCase := usecases.NewCompressImageUseCase(decoder, encoder, scaler, logger)
	documentUseCase := usecases.NewCompressDocumentUseCase(renderer, builder, optimizer, imageUseCase, logger)
	processUseCase := usecases.NewProcessFilesUseCase(imageUseCase, documentUseCase, fileRepo, logger)

	// Подключаем репортер прогресса к TUI
	processUseCase.SetProgressReporter(func(s entities.ProcessingStatus) {
		tuiManager.SendStatusUpdate(s)
	})

	// Создание процессора для обработки команд
	processor := NewApplicationProcessor(
		processUseCase,
		appConfig,
		tuiManager,
		logger,
	)
	defer processor.Shutdown()

	// Привязываем запуск обработки к TUI
	tuiManager.SetOnStartProcessing(func() {
		// Получаем актуальную конфигурацию из TUI
		processor.config = tuiManager.GetConfig()
		go processor.StartProcessing()
	})

	// Автозапуск, если включен в конфигурации
	if appConfig.Compression.AutoStart {
		go processor.StartProcessing()
	}

	// Запуск TUI
	if err := tuiManager.Run(); err != nil {
		log.Fatalf("Ошибка запуска TUI: %v", err)
	}

	// Cleanup при выходе
	tuiManager.Cleanup()
}

// runCLI выполняет сжатие одного файла в командной строке
func runCLI(
	inputPath, outputPath string,
	appConfig *entities.Config,
	logger repositories.Logger,
	decoder repositories.ImageDecoder,
	encoder repositories.ImageEncoder,
	scaler repositories.ImageScaler,
	renderer repositories.DocumentRenderer,
	builder repositories.DocumentBuilder,
	optimizer repositories.DocumentOptimizer,
	fileRepo repositories.FileRepository,
) {
	preset, err := appConfig.Compression.Preset()
	if err != nil {
		log.Fatalf("Ошибка конфигурации сжатия: %v", err)
	}

	if outputPath == "" {
		outputPath = "compressed_" + inputPath
	}

	imageUseCase := usecases.NewCompressImageUseCase(decoder, encoder, scaler, logger)
	documentUseCase := usecases.NewCompressDocumentUseCase(renderer, builder, optimizer, imageUseCase, logger)

	controller := controllers.NewCLIController(imageUseCase, documentUseCase, fileRepo)
	if err := controller.HandleSingleFile(inputPath, outputPath, preset, appConfig.Compression.PDFMode); err != nil {
		log.Fatalf("Ошибка сжатия: %v", err)
	}
}
