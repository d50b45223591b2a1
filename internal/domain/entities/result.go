package entities

// EncodedResult результат одного реального кодирования
type EncodedResult struct {
	Data      []byte  // Закодированный поток байтов
	SizeBytes int64   // Длина Data
	Quality   float64 // Качество, при котором выполнено кодирование [0,1]
}

// CompressionOutcome итог сжатия одного растра или страницы
type CompressionOutcome struct {
	OutputBytes         []byte
	OutputFormat        Format
	OriginalSizeBytes   int64
	NewSizeBytes        int64
	OriginalDimensions  Dimensions
	NewDimensions       Dimensions
	ExceededTarget      bool // Результат превышает целевой размер после всех попыток
	AlreadyWithinBudget bool // Источник уже укладывался в бюджет, перекодирование не выполнялось

	// Для многостраничных документов: номер страницы (с 1) и ошибка страницы
	PageNumber int
	Error      error

	// Путь исходного файла, заполняется при пакетной обработке
	SourcePath string
}

// SavedBytes возвращает сэкономленный объем
func (o *CompressionOutcome) SavedBytes() int64 {
	return o.OriginalSizeBytes - o.NewSizeBytes
}

// CompressionRatio возвращает степень сжатия в процентах
func (o *CompressionOutcome) CompressionRatio() float64 {
	if o.OriginalSizeBytes <= 0 {
		return 0
	}
	return (float64(o.OriginalSizeBytes) - float64(o.NewSizeBytes)) / float64(o.OriginalSizeBytes) * 100
}

// IsEffective проверяет, было ли сжатие эффективным
func (o *CompressionOutcome) IsEffective() bool {
	return o.Error == nil && o.NewSizeBytes < o.OriginalSizeBytes
}
