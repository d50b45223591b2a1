package main

import (
	"context"
	"sync"

	"github.com/xhardeep/file-compressor/internal/domain/entities"
	"github.com/xhardeep/file-compressor/internal/domain/repositories"
	"github.com/xhardeep/file-compressor/internal/presentation/tui"
	usecases "github.com/xhardeep/file-compressor/internal/usecase"
)

// ApplicationProcessor обрабатывает команды приложения
type ApplicationProcessor struct {
	processUseCase *usecases.ProcessFilesUseCase
	config         *entities.Config
	tuiManager     *tui.Manager
	logger         repositories.Logger

	// Graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewApplicationProcessor создает новый процессор приложения
func NewApplicationProcessor(
	processUseCase *usecases.ProcessFilesUseCase,
	config *entities.Config,
	tuiManager *tui.Manager,
	logger repositories.Logger,
) *ApplicationProcessor {
	ctx, cancel := context.WithCancel(context.Background())

	return &ApplicationProcessor{
		processUseCase: processUseCase,
		config:         config,
		tuiManager:     tuiManager,
		logger:         logger,
		ctx:            ctx,
		cancel:         cancel,
	}
}

// StartProcessing запускает обработку всех поддерживаемых файлов
func (p *ApplicationProcessor) StartProcessing() {
	p.wg.Add(1)
	defer p.wg.Done()

	if p.logger != nil {
		p.logger.Info("Запуск обработки файлов. Целевой размер: %d KB", p.config.Compression.TargetSizeKB)
	}

	if err := p.processUseCase.Execute(p.config); err != nil {
		if p.logger != nil {
			p.logger.Error("Ошибка обработки: %v", err)
		}
		return
	}

	if p.logger != nil {
		p.logger.Success("Обработка файлов завершена успешно")
	}
}

// Shutdown корректно завершает работу процессора
func (p *ApplicationProcessor) Shutdown() {
	p.cancel()
	p.wg.Wait()
}
