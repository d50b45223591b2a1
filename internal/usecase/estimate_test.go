package usecases

import (
	"testing"

	"github.com/xhardeep/file-compressor/internal/domain/entities"
)

func TestEstimateProjectsFullSize(t *testing.T) {
	encoder := &fakeEncoder{bytesPerTenPixels: 1}
	scaler := &fakeScaler{}
	estimator := NewSizeEstimator(encoder, scaler)

	// 1000x750: пробная поверхность 200x150, кодирование при качестве 0.8
	projected, err := estimator.Estimate(testImage(1000, 750), entities.FormatJPEG)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Пробник: 30000 px * 0.8 / 10 = 2400 байт; прогноз 2400 / 0.04 = 60000
	if projected != 60000 {
		t.Errorf("projected = %d, want 60000", projected)
	}
	if encoder.calls != 1 {
		t.Errorf("encoder calls = %d, want exactly 1 probe", encoder.calls)
	}
	if scaler.calls != 1 {
		t.Errorf("scaler calls = %d, want 1", scaler.calls)
	}
}

func TestEstimateSmallImageSkipsScaling(t *testing.T) {
	encoder := &fakeEncoder{bytesPerTenPixels: 1}
	scaler := &fakeScaler{}
	estimator := NewSizeEstimator(encoder, scaler)

	// Обе стороны меньше минимума пробника: масштабирование не нужно
	projected, err := estimator.Estimate(testImage(80, 60), entities.FormatJPEG)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scaler.calls != 0 {
		t.Errorf("scaler calls = %d, want 0 for tiny image", scaler.calls)
	}
	if projected <= 0 {
		t.Errorf("projected = %d, want positive", projected)
	}
}

func TestEstimateRejectsEmptyImage(t *testing.T) {
	estimator := NewSizeEstimator(&fakeEncoder{}, &fakeScaler{})
	if _, err := estimator.Estimate(testImage(0, 0), entities.FormatJPEG); err == nil {
		t.Error("expected error for empty image")
	}
}
