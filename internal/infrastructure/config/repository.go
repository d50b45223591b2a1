package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xhardeep/file-compressor/internal/domain/entities"
)

// Repository реализация репозитория конфигурации
type Repository struct{}

// NewRepository создает новый репозиторий конфигурации
func NewRepository() *Repository {
	return &Repository{}
}

// Load загружает конфигурацию из файла
func (r *Repository) Load(configPath string) (*entities.Config, error) {
	// Если файл не существует, создаем конфигурацию по умолчанию
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return r.createDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config entities.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Save сохраняет конфигурацию в файл
func (r *Repository) Save(configPath string, config *entities.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// createDefaultConfig создает конфигурацию по умолчанию
func (r *Repository) createDefaultConfig() *entities.Config {
	return &entities.Config{
		Scanner: entities.ScannerConfig{
			SourceDirectory: "./input",
			TargetDirectory: "./compressed",
		},
		Compression: entities.AppCompressionConfig{
			TargetSizeKB: 500,
			OutputFormat: "jpeg",
			MaxWidth:     1920,
			MaxHeight:    1920,
			PDFMode:      entities.PDFModePages,
			AutoStart:    false,
		},
		Processing: entities.ProcessingConfig{
			ParallelWorkers: 2,
			RetryAttempts:   3,
		},
		Output: entities.OutputConfig{
			LogLevel:     "info",
			LogToFile:    true,
			LogFileName:  "compressor.log",
			LogMaxSizeMB: 10,
		},
	}
}
