package entities

// ProgressFunc получает уведомления о прогрессе одного вызова (0-100)
type ProgressFunc func(percent float64)

// ProgressTracker гарантирует монотонность прогресса одного вызова.
// Значения не убывают, 100 отправляется ровно один раз.
type ProgressTracker struct {
	report   ProgressFunc
	last     float64
	finished bool
}

// NewProgressTracker создает трекер прогресса; report может быть nil
func NewProgressTracker(report ProgressFunc) *ProgressTracker {
	return &ProgressTracker{report: report}
}

// Report отправляет промежуточный прогресс, ограниченный диапазоном [last, 100)
func (t *ProgressTracker) Report(percent float64) {
	if t == nil || t.report == nil || t.finished {
		return
	}
	if percent < t.last {
		percent = t.last
	}
	if percent >= 100 {
		percent = 99
	}
	t.last = percent
	t.report(percent)
}

// Finish отправляет финальные 100 процентов, повторные вызовы игнорируются
func (t *ProgressTracker) Finish() {
	if t == nil || t.report == nil || t.finished {
		return
	}
	t.finished = true
	t.last = 100
	t.report(100)
}
