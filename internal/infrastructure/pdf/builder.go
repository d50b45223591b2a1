package pdf

import (
	"bytes"
	"fmt"
	"os"

	"github.com/unidoc/unipdf/v3/common/license"
	"github.com/unidoc/unipdf/v3/creator"

	"github.com/xhardeep/file-compressor/internal/domain/repositories"
)

// UniPDFBuilder сборщик выходных PDF документов на основе UniPDF
type UniPDFBuilder struct{}

// NewUniPDFBuilder создает новый сборщик документов.
// Лицензионный ключ берется из конфигурации или переменной UNIDOC_LICENSE_API_KEY.
func NewUniPDFBuilder(licenseKey string) (*UniPDFBuilder, error) {
	if licenseKey == "" {
		licenseKey = os.Getenv("UNIDOC_LICENSE_API_KEY")
	}

	if licenseKey != "" {
		if err := license.SetMeteredKey(licenseKey); err != nil {
			return nil, fmt.Errorf("ошибка установки лицензионного ключа UniPDF: %w", err)
		}
	}

	return &UniPDFBuilder{}, nil
}

// NewDocument начинает сборку нового документа
func (b *UniPDFBuilder) NewDocument() (repositories.DocumentDraft, error) {
	c := creator.New()
	c.SetPageMargins(0, 0, 0, 0)
	return &uniPDFDraft{creator: c}, nil
}

// uniPDFDraft собираемый документ
type uniPDFDraft struct {
	creator *creator.Creator
}

// AddImagePage добавляет страницу указанного размера в пунктах
// и растягивает на нее закодированное изображение
func (d *uniPDFDraft) AddImagePage(imageData []byte, widthPts, heightPts float64) error {
	d.creator.SetPageSize(creator.PageSize{widthPts, heightPts})
	d.creator.NewPage()

	img, err := d.creator.NewImageFromData(imageData)
	if err != nil {
		return fmt.Errorf("ошибка загрузки изображения страницы: %w", err)
	}

	img.SetPos(0, 0)
	img.SetWidth(widthPts)
	img.SetHeight(heightPts)

	if err := d.creator.Draw(img); err != nil {
		return fmt.Errorf("ошибка размещения изображения страницы: %w", err)
	}

	return nil
}

// Serialize записывает собранный документ в поток байтов
func (d *uniPDFDraft) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.creator.Write(&buf); err != nil {
		return nil, fmt.Errorf("ошибка записи документа: %w", err)
	}
	return buf.Bytes(), nil
}
