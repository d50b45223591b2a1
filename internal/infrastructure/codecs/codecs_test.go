package codecs

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/xhardeep/file-compressor/internal/domain/entities"
)

func testImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), 128, 255})
		}
	}
	return img
}

func TestSniffFormat(t *testing.T) {
	var jpegBuf, pngBuf bytes.Buffer
	if err := jpeg.Encode(&jpegBuf, testImage(8, 8), nil); err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(&pngBuf, testImage(8, 8)); err != nil {
		t.Fatal(err)
	}

	webpHeader := append([]byte("RIFF"), 0, 0, 0, 0)
	webpHeader = append(webpHeader, []byte("WEBP")...)

	tests := []struct {
		name    string
		data    []byte
		want    entities.Format
		wantErr bool
	}{
		{"jpeg", jpegBuf.Bytes(), entities.FormatJPEG, false},
		{"png", pngBuf.Bytes(), entities.FormatPNG, false},
		{"webp header", webpHeader, entities.FormatWebP, false},
		{"pdf header", []byte("%PDF-1.7 rest"), entities.FormatPDF, false},
		{"garbage", []byte{0x00, 0x01, 0x02, 0x03}, "", true},
		{"empty", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sniffFormat(tt.data)
			if tt.wantErr {
				if !errors.Is(err, entities.ErrUnsupportedFormat) {
					t.Errorf("sniffFormat error = %v, want ErrUnsupportedFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("sniffFormat = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecoderRoundtrip(t *testing.T) {
	decoder := NewImagingDecoder()

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, testImage(32, 24), nil); err != nil {
		t.Fatal(err)
	}

	img, format, err := decoder.Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != entities.FormatJPEG {
		t.Errorf("format = %v, want jpeg", format)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
		t.Errorf("bounds = %v, want 32x24", img.Bounds())
	}
}

func TestEncoderJPEGQualityAffectsSize(t *testing.T) {
	encoder := NewStdEncoder()
	img := testImage(64, 64)

	high, err := encoder.Encode(img, entities.FormatJPEG, 0.95)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	low, err := encoder.Encode(img, entities.FormatJPEG, 0.30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(low) >= len(high) {
		t.Errorf("low quality %d bytes >= high quality %d bytes", len(low), len(high))
	}
}

func TestEncoderPNG(t *testing.T) {
	encoder := NewStdEncoder()
	data, err := encoder.Encode(testImage(16, 16), entities.FormatPNG, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, err := png.Decode(bytes.NewReader(data)); err != nil || got.Bounds().Dx() != 16 {
		t.Errorf("encoded png is not decodable: %v", err)
	}
}

func TestEncoderRejectsPDF(t *testing.T) {
	encoder := NewStdEncoder()
	if _, err := encoder.Encode(testImage(8, 8), entities.FormatPDF, 0.5); !errors.Is(err, entities.ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestJPEGQualityMapping(t *testing.T) {
	tests := []struct {
		quality float64
		want    int
	}{
		{0.5, 50},
		{0.92, 92},
		{0, 1},
		{-1, 1},
		{1, 100},
		{2, 100},
	}

	for _, tt := range tests {
		if got := jpegQuality(tt.quality); got != tt.want {
			t.Errorf("jpegQuality(%f) = %d, want %d", tt.quality, got, tt.want)
		}
	}
}

func TestScaler(t *testing.T) {
	scaler := NewLanczosScaler()

	scaled := scaler.Scale(testImage(100, 80), 50, 40)
	if scaled.Bounds().Dx() != 50 || scaled.Bounds().Dy() != 40 {
		t.Errorf("bounds = %v, want 50x40", scaled.Bounds())
	}

	// Совпадающие размеры возвращают исходник без копирования
	src := testImage(10, 10)
	if same := scaler.Scale(src, 10, 10); same != src {
		t.Error("same dimensions should return the source image")
	}
}
