package usecases

import (
	"errors"
	"image"
	"math"

	"github.com/xhardeep/file-compressor/internal/domain/entities"
)

// Детерминированные заглушки инфраструктуры для тестов сценариев.
// Кодировщик моделирует размер как линейную функцию площади и качества,
// этого достаточно для проверки сходимости конвейера.

type fakeDecoder struct {
	img    image.Image
	format entities.Format
	err    error
}

func (d *fakeDecoder) Decode(data []byte) (image.Image, entities.Format, error) {
	if d.err != nil {
		return nil, "", d.err
	}
	return d.img, d.format, nil
}

type fakeEncoder struct {
	bytesPerTenPixels float64 // Размер = площадь * качество * коэффициент / 10
	calls             int
	failAfter         int // Ошибка начиная с этого вызова; 0 отключает
}

func (e *fakeEncoder) Encode(img image.Image, format entities.Format, quality float64) ([]byte, error) {
	e.calls++
	if e.failAfter > 0 && e.calls >= e.failAfter {
		return nil, errors.New("encode failed")
	}
	pixels := img.Bounds().Dx() * img.Bounds().Dy()
	scale := e.bytesPerTenPixels
	if scale == 0 {
		scale = 1
	}
	size := int(math.Round(float64(pixels) * quality * scale / 10))
	if size < 1 {
		size = 1
	}
	return make([]byte, size), nil
}

type fakeScaler struct {
	calls int
}

func (s *fakeScaler) Scale(img image.Image, width, height int) image.Image {
	s.calls++
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func testImage(width, height int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}
