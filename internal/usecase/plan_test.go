package usecases

import (
	"testing"

	"github.com/xhardeep/file-compressor/internal/domain/entities"
)

func TestPlanDimensionsNoShrinkNeeded(t *testing.T) {
	original := entities.Dimensions{Width: 800, Height: 600}

	// Прогноз укладывается в бюджет: размеры не меняются
	planned := PlanDimensions(original, 100_000, 200_000, 1920, 1920)
	if planned != original {
		t.Errorf("planned = %v, want original %v", planned, original)
	}
}

func TestPlanDimensionsNeverUpscales(t *testing.T) {
	original := entities.Dimensions{Width: 640, Height: 480}

	planned := PlanDimensions(original, 10_000, 1_000_000, 4000, 4000)
	if planned.Width > original.Width || planned.Height > original.Height {
		t.Errorf("planned %v exceeds original %v", planned, original)
	}
}

func TestPlanDimensionsShrinkPreservesAspect(t *testing.T) {
	original := entities.Dimensions{Width: 4000, Height: 3000}

	planned := PlanDimensions(original, 12_000_000, 1_000_000, 1920, 1920)

	if planned.Width >= original.Width || planned.Height >= original.Height {
		t.Errorf("planned %v should be smaller than original %v", planned, original)
	}
	if !planned.SameAspect(original, 0.01) {
		t.Errorf("planned %v lost aspect ratio of %v", planned, original)
	}
	if !planned.FitsWithin(1920, 1920) {
		t.Errorf("planned %v exceeds bounding box", planned)
	}

	// Площадь должна уменьшиться примерно пропорционально бюджету с запасом
	wantPixels := float64(original.Pixels()) * 1_000_000 / (12_000_000 * planSafetyFactor)
	gotPixels := float64(planned.Pixels())
	if gotPixels > wantPixels*1.05 {
		t.Errorf("planned pixels = %f, want about %f", gotPixels, wantPixels)
	}
}

func TestPlanDimensionsClampsToBox(t *testing.T) {
	original := entities.Dimensions{Width: 4000, Height: 3000}

	// Прогноз в бюджете, но исходник больше ограничивающего прямоугольника
	planned := PlanDimensions(original, 100_000, 200_000, 800, 800)

	if !planned.FitsWithin(800, 800) {
		t.Errorf("planned %v exceeds 800x800 box", planned)
	}
	if !planned.SameAspect(original, 0.01) {
		t.Errorf("planned %v lost aspect ratio", planned)
	}
	if planned.Width != 800 || planned.Height != 600 {
		t.Errorf("planned = %v, want 800x600", planned)
	}
}

func TestPlanDimensionsMinFloor(t *testing.T) {
	original := entities.Dimensions{Width: 4000, Height: 3000}

	// Невыполнимо малый бюджет не должен выродить размеры
	planned := PlanDimensions(original, 100_000_000, 1_000, 1920, 1920)

	if planned.Width < planMinDimension && planned.Height < planMinDimension {
		t.Errorf("planned %v has both sides below minimum %d", planned, planMinDimension)
	}
	if !planned.SameAspect(original, 0.01) {
		t.Errorf("planned %v lost aspect ratio", planned)
	}
}

func TestPlanDimensionsDegenerate(t *testing.T) {
	planned := PlanDimensions(entities.Dimensions{Width: 1, Height: 1}, 1_000_000, 1, 1920, 1920)
	if planned.Width < 1 || planned.Height < 1 {
		t.Errorf("planned %v has a side below 1", planned)
	}
}
