package entities

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{"jpeg", "jpeg", FormatJPEG, false},
		{"jpg alias", "jpg", FormatJPEG, false},
		{"uppercase", "PNG", FormatPNG, false},
		{"extension with dot", ".webp", FormatWebP, false},
		{"pdf", "pdf", FormatPDF, false},
		{"unknown", "gif", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("ParseFormat(%q) error = %v, want ErrUnsupportedFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"/tmp/photo.JPG", FormatJPEG, false},
		{"scan.pdf", FormatPDF, false},
		{"dir/image.webp", FormatWebP, false},
		{"noextension", "", true},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if tt.wantErr {
			if err == nil {
				t.Errorf("FormatFromPath(%q) expected error, got %v", tt.path, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("FormatFromPath(%q) unexpected error: %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestFormatProperties(t *testing.T) {
	if !FormatJPEG.IsRaster() || !FormatPNG.IsRaster() || !FormatWebP.IsRaster() {
		t.Error("raster formats should report IsRaster")
	}
	if FormatPDF.IsRaster() {
		t.Error("pdf should not report IsRaster")
	}

	if !FormatJPEG.IsLossy() || !FormatWebP.IsLossy() {
		t.Error("jpeg and webp should report IsLossy")
	}
	if FormatPNG.IsLossy() {
		t.Error("png should not report IsLossy")
	}

	if ext := FormatJPEG.Extension(); ext != ".jpg" {
		t.Errorf("FormatJPEG.Extension() = %q, want .jpg", ext)
	}
}
