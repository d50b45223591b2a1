package entities

import "testing"

func TestProgressTrackerMonotonic(t *testing.T) {
	var reports []float64
	tracker := NewProgressTracker(func(percent float64) {
		reports = append(reports, percent)
	})

	tracker.Report(10)
	tracker.Report(5) // откат должен быть зажат до предыдущего значения
	tracker.Report(40)
	tracker.Report(150) // промежуточный прогресс не достигает 100
	tracker.Finish()

	want := []float64{10, 10, 40, 99, 100}
	if len(reports) != len(want) {
		t.Fatalf("got %d reports, want %d: %v", len(reports), len(want), reports)
	}
	for i := range want {
		if reports[i] != want[i] {
			t.Errorf("report %d = %f, want %f", i, reports[i], want[i])
		}
	}

	for i := 1; i < len(reports); i++ {
		if reports[i] < reports[i-1] {
			t.Errorf("progress decreased at %d: %f -> %f", i, reports[i-1], reports[i])
		}
	}
}

func TestProgressTrackerFinishOnce(t *testing.T) {
	hundreds := 0
	tracker := NewProgressTracker(func(percent float64) {
		if percent == 100 {
			hundreds++
		}
	})

	tracker.Report(50)
	tracker.Finish()
	tracker.Finish()
	tracker.Report(60) // после завершения отчеты игнорируются

	if hundreds != 1 {
		t.Errorf("100 reported %d times, want exactly once", hundreds)
	}
}

func TestProgressTrackerNilSafe(t *testing.T) {
	// Нулевой трекер и трекер без функции не должны паниковать
	var tracker *ProgressTracker
	tracker.Report(10)
	tracker.Finish()

	empty := NewProgressTracker(nil)
	empty.Report(10)
	empty.Finish()
}
