package pdf

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/xhardeep/file-compressor/internal/domain/repositories"
)

// PDFCPUOptimizer структурная оптимизация документов библиотекой pdfcpu
type PDFCPUOptimizer struct{}

// NewPDFCPUOptimizer создает новый оптимизатор документов
func NewPDFCPUOptimizer() repositories.DocumentOptimizer {
	return &PDFCPUOptimizer{}
}

// Optimize удаляет дубликаты объектов и неиспользуемые ресурсы.
// Если оптимизация не уменьшила документ, возвращается исходный поток.
func (o *PDFCPUOptimizer) Optimize(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := api.Optimize(bytes.NewReader(data), &buf, nil); err != nil {
		return nil, fmt.Errorf("ошибка оптимизации PDFCPU: %w", err)
	}

	if buf.Len() >= len(data) {
		return data, nil
	}

	return buf.Bytes(), nil
}
