package controllers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xhardeep/file-compressor/internal/domain/entities"
	"github.com/xhardeep/file-compressor/internal/domain/repositories"
	usecases "github.com/xhardeep/file-compressor/internal/usecase"
)

// CLIController контроллер для командной строки.
// Используется при запуске с флагом -input, иначе приложение работает в TUI режиме.
type CLIController struct {
	imageUseCase    *usecases.CompressImageUseCase
	documentUseCase *usecases.CompressDocumentUseCase
	fileRepo        repositories.FileRepository
}

// NewCLIController создает новый CLI контроллер
func NewCLIController(
	imageUseCase *usecases.CompressImageUseCase,
	documentUseCase *usecases.CompressDocumentUseCase,
	fileRepo repositories.FileRepository,
) *CLIController {
	return &CLIController{
		imageUseCase:    imageUseCase,
		documentUseCase: documentUseCase,
		fileRepo:        fileRepo,
	}
}

// HandleSingleFile обрабатывает сжатие одного файла под целевой размер
func (c *CLIController) HandleSingleFile(inputPath, outputPath string, preset entities.Preset, pdfMode string) error {
	fmt.Println("🔥 File Compressor - Сжатие под целевой размер")
	fmt.Println("==============================================")
	fmt.Printf("\n🚀 Начинаем сжатие файла: %s\n", inputPath)
	fmt.Printf("🎯 Целевой размер: %.1f KB\n", float64(preset.TargetSizeBytes)/1024)

	data, err := c.fileRepo.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("ошибка чтения файла: %w", err)
	}

	sourceFormat, err := entities.FormatFromPath(inputPath)
	if err != nil {
		return err
	}

	if sourceFormat == entities.FormatPDF {
		return c.handleDocument(inputPath, outputPath, data, preset, pdfMode)
	}

	outcome, err := c.imageUseCase.Execute(data, preset)
	if err != nil {
		return fmt.Errorf("ошибка сжатия: %w", err)
	}

	if err := c.fileRepo.WriteFile(outputPath, outcome.OutputBytes); err != nil {
		return fmt.Errorf("ошибка записи файла: %w", err)
	}

	c.showOutcome(outcome, outputPath)
	return nil
}

// handleDocument обрабатывает сжатие PDF документа
func (c *CLIController) handleDocument(inputPath, outputPath string, data []byte, preset entities.Preset, pdfMode string) error {
	outcomes, err := c.documentUseCase.Execute(data, preset, pdfMode)
	if err != nil {
		return fmt.Errorf("ошибка сжатия документа: %w", err)
	}

	base := strings.TrimSuffix(outputPath, filepath.Ext(outputPath))
	for _, outcome := range outcomes {
		if outcome.Error != nil {
			fmt.Printf("❌ Страница %d: %v\n", outcome.PageNumber, outcome.Error)
			continue
		}

		pageOutput := outputPath
		if len(outcomes) > 1 {
			pageOutput = fmt.Sprintf("%s_page%d%s", base, outcome.PageNumber, outcome.OutputFormat.Extension())
		}

		if err := c.fileRepo.WriteFile(pageOutput, outcome.OutputBytes); err != nil {
			return fmt.Errorf("ошибка записи файла %s: %w", pageOutput, err)
		}

		c.showOutcome(outcome, pageOutput)
	}

	return nil
}

// showOutcome показывает результат сжатия
func (c *CLIController) showOutcome(outcome *entities.CompressionOutcome, outputPath string) {
	fmt.Println("\n📊 Результаты сжатия:")
	fmt.Printf("Исходный размер: %.2f KB\n", float64(outcome.OriginalSizeBytes)/1024)
	fmt.Printf("Новый размер: %.2f KB\n", float64(outcome.NewSizeBytes)/1024)
	fmt.Printf("Сжатие: %.1f%%\n", outcome.CompressionRatio())
	if outcome.OriginalDimensions != outcome.NewDimensions {
		fmt.Printf("Размеры: %dx%d → %dx%d\n",
			outcome.OriginalDimensions.Width, outcome.OriginalDimensions.Height,
			outcome.NewDimensions.Width, outcome.NewDimensions.Height)
	}

	switch {
	case outcome.AlreadyWithinBudget:
		fmt.Println("✅ Файл уже укладывался в бюджет, скопирован без изменений")
	case outcome.ExceededTarget:
		fmt.Println("⚠️ Целевой размер не достигнут, сохранен лучший результат")
	default:
		fmt.Println("✅ Сжатие выполнено успешно!")
	}

	fmt.Printf("🎉 Готово! Файл сохранен как: %s\n", outputPath)
}
