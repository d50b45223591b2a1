package entities

// Config представляет конфигурацию приложения
type Config struct {
	Scanner     ScannerConfig        `yaml:"scanner"`
	Compression AppCompressionConfig `yaml:"compression"`
	Processing  ProcessingConfig     `yaml:"processing"`
	Output      OutputConfig         `yaml:"output"`
}

// ScannerConfig настройки сканирования директорий
type ScannerConfig struct {
	SourceDirectory string `yaml:"source_directory"`
	TargetDirectory string `yaml:"target_directory"`
}

// AppCompressionConfig настройки сжатия приложения
type AppCompressionConfig struct {
	TargetSizeKB int    `yaml:"target_size_kb"` // Целевой размер результата в килобайтах
	OutputFormat string `yaml:"output_format"`  // jpeg, png, webp или pdf
	MaxWidth     int    `yaml:"max_width"`      // Максимальная ширина в пикселях
	MaxHeight    int    `yaml:"max_height"`     // Максимальная высота в пикселях
	// Режим обработки PDF: "pages" - каждая страница отдельно,
	// "document" - единый бюджет на весь документ
	PDFMode          string `yaml:"pdf_mode"`
	AutoStart        bool   `yaml:"auto_start"`
	UniPDFLicenseKey string `yaml:"unipdf_license_key"`
}

// ProcessingConfig настройки обработки
type ProcessingConfig struct {
	ParallelWorkers int `yaml:"parallel_workers"`
	RetryAttempts   int `yaml:"retry_attempts"`
}

// OutputConfig настройки вывода
type OutputConfig struct {
	LogLevel     string `yaml:"log_level"`
	LogToFile    bool   `yaml:"log_to_file"`
	LogFileName  string `yaml:"log_file_name"`
	LogMaxSizeMB int    `yaml:"log_max_size_mb"`
}

// Режимы обработки PDF
const (
	PDFModePages    = "pages"
	PDFModeDocument = "document"
)

// Preset строит пресет сжатия из конфигурации приложения
func (c *AppCompressionConfig) Preset() (Preset, error) {
	format, err := ParseFormat(c.OutputFormat)
	if err != nil {
		return Preset{}, err
	}

	preset := Preset{
		TargetSizeBytes: int64(c.TargetSizeKB) * 1024,
		OutputFormat:    format,
		MaxWidth:        c.MaxWidth,
		MaxHeight:       c.MaxHeight,
	}

	if err := preset.Validate(); err != nil {
		return Preset{}, err
	}

	return preset, nil
}

// Validate проверяет корректность конфигурации сжатия
func (c *AppCompressionConfig) Validate() error {
	_, err := c.Preset()
	if err != nil {
		return err
	}
	if c.PDFMode != "" && c.PDFMode != PDFModePages && c.PDFMode != PDFModeDocument {
		return ErrInvalidPDFMode
	}
	return nil
}
