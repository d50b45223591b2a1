package entities

import (
	"errors"
	"testing"
)

func TestPresetValidate(t *testing.T) {
	tests := []struct {
		name    string
		preset  Preset
		wantErr error
	}{
		{
			name:   "valid jpeg preset",
			preset: Preset{TargetSizeBytes: 500 * 1024, OutputFormat: FormatJPEG, MaxWidth: 1920, MaxHeight: 1080},
		},
		{
			name:   "valid pdf preset",
			preset: Preset{TargetSizeBytes: 1024, OutputFormat: FormatPDF, MaxWidth: 800, MaxHeight: 800},
		},
		{
			name:    "zero target size",
			preset:  Preset{TargetSizeBytes: 0, OutputFormat: FormatJPEG, MaxWidth: 800, MaxHeight: 800},
			wantErr: ErrInvalidTargetSize,
		},
		{
			name:    "negative target size",
			preset:  Preset{TargetSizeBytes: -1, OutputFormat: FormatJPEG, MaxWidth: 800, MaxHeight: 800},
			wantErr: ErrInvalidTargetSize,
		},
		{
			name:    "zero max width",
			preset:  Preset{TargetSizeBytes: 1024, OutputFormat: FormatJPEG, MaxWidth: 0, MaxHeight: 800},
			wantErr: ErrInvalidMaxDimensions,
		},
		{
			name:    "zero max height",
			preset:  Preset{TargetSizeBytes: 1024, OutputFormat: FormatJPEG, MaxWidth: 800, MaxHeight: 0},
			wantErr: ErrInvalidMaxDimensions,
		},
		{
			name:    "unknown format",
			preset:  Preset{TargetSizeBytes: 1024, OutputFormat: Format("gif"), MaxWidth: 800, MaxHeight: 800},
			wantErr: ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.preset.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDimensionsHelpers(t *testing.T) {
	d := Dimensions{Width: 4000, Height: 3000}

	if got := d.Pixels(); got != 12000000 {
		t.Errorf("Pixels() = %d, want 12000000", got)
	}
	if got := d.AspectRatio(); got != 4.0/3.0 {
		t.Errorf("AspectRatio() = %f, want %f", got, 4.0/3.0)
	}
	if !d.FitsWithin(4000, 3000) {
		t.Error("FitsWithin should accept exact bounds")
	}
	if d.FitsWithin(3999, 3000) {
		t.Error("FitsWithin should reject exceeded width")
	}

	zero := Dimensions{}
	if zero.AspectRatio() != 0 {
		t.Error("AspectRatio of zero dimensions should be 0")
	}
}

func TestDimensionsSameAspect(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Dimensions
		epsilon float64
		want    bool
	}{
		{"identical", Dimensions{800, 600}, Dimensions{800, 600}, 0.01, true},
		{"scaled", Dimensions{4000, 3000}, Dimensions{800, 600}, 0.01, true},
		{"rounding tolerance", Dimensions{4000, 3000}, Dimensions{799, 600}, 0.01, true},
		{"different aspect", Dimensions{800, 600}, Dimensions{600, 800}, 0.01, false},
		{"zero height", Dimensions{800, 0}, Dimensions{800, 600}, 0.01, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.SameAspect(tt.b, tt.epsilon); got != tt.want {
				t.Errorf("SameAspect(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
