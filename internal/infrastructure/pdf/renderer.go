package pdf

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"

	"github.com/xhardeep/file-compressor/internal/domain/entities"
	"github.com/xhardeep/file-compressor/internal/domain/repositories"
)

// FitzRenderer растеризатор PDF документов на основе MuPDF
type FitzRenderer struct{}

// NewFitzRenderer создает новый растеризатор документов
func NewFitzRenderer() repositories.DocumentRenderer {
	return &FitzRenderer{}
}

// Open открывает документ из потока байтов
func (r *FitzRenderer) Open(data []byte) (repositories.DocumentHandle, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrRenderFailed, err)
	}
	return &fitzHandle{doc: doc}, nil
}

// fitzHandle открытый документ MuPDF
type fitzHandle struct {
	doc *fitz.Document
}

func (h *fitzHandle) PageCount() int {
	return h.doc.NumPage()
}

// PageSize возвращает размеры страницы в пунктах.
// MuPDF отдает границы страницы при 72 DPI, то есть напрямую в пунктах.
func (h *fitzHandle) PageSize(pageNumber int) (float64, float64, error) {
	if pageNumber < 1 || pageNumber > h.doc.NumPage() {
		return 0, 0, fmt.Errorf("%w: %d", entities.ErrInvalidPageNumber, pageNumber)
	}

	bound, err := h.doc.Bound(pageNumber - 1)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: страница %d: %v", entities.ErrRenderFailed, pageNumber, err)
	}

	return float64(bound.Dx()), float64(bound.Dy()), nil
}

// RenderPage отрисовывает страницу в растр с указанным разрешением
func (h *fitzHandle) RenderPage(pageNumber int, dpi float64) (image.Image, error) {
	if pageNumber < 1 || pageNumber > h.doc.NumPage() {
		return nil, fmt.Errorf("%w: %d", entities.ErrInvalidPageNumber, pageNumber)
	}

	img, err := h.doc.ImageDPI(pageNumber-1, dpi)
	if err != nil {
		return nil, fmt.Errorf("%w: страница %d: %v", entities.ErrRenderFailed, pageNumber, err)
	}

	return img, nil
}

func (h *fitzHandle) Close() error {
	return h.doc.Close()
}
