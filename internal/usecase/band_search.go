package usecases

import (
	"github.com/xhardeep/file-compressor/internal/domain/entities"
)

// measureFunc выполняет одно реальное кодирование при указанном качестве.
// Каждый вызов дорогой, поэтому политика шагов минимизирует число итераций.
type measureFunc func(quality float64) (entities.EncodedResult, error)

// bandSearchParams параметры поиска качества в допустимой полосе под целью
type bandSearchParams struct {
	TargetBytes    int64
	LowerBandRatio float64 // Нижняя граница полосы приема как доля цели
	StartQuality   float64
	MinQuality     float64
	MaxQuality     float64
	StepDownLarge  float64 // Шаг вниз при сильном перелете
	StepDownSmall  float64 // Шаг вниз при умеренном перелете
	StepUp         float64 // Шаг вверх при недолете ниже полосы
	LargeOvershoot float64 // Порог сильного перелета (кратно цели)
	MaxIterations  int
	// FarUnderRatio доля от нижней границы полосы: результат первой итерации
	// ниже этого порога принимается сразу, дальнейший подъем качества
	// не изменит размер существенно. Ноль отключает ранний выход.
	FarUnderRatio float64
	// OnAttempt вызывается после каждого реального кодирования
	OnAttempt func(iteration int, result entities.EncodedResult)
}

// bandSearchResult итог поиска качества
type bandSearchResult struct {
	Result     entities.EncodedResult
	InBand     bool // Результат попал в полосу приема или принят ранним выходом
	Iterations int
}

// searchBand подбирает скалярное качество так, чтобы измеренный размер попал
// в полосу [LowerBandRatio*цель, цель]. Ограниченный итеративный цикл:
// перелет снижает качество асимметричным шагом, недолет ниже полосы
// осторожно поднимает. Лучший результат не выше цели запоминается как
// запасной на случай исчерпания итераций.
func searchBand(measure measureFunc, p bandSearchParams) (bandSearchResult, error) {
	lowerBand := int64(float64(p.TargetBytes) * p.LowerBandRatio)

	quality := p.StartQuality
	var best *entities.EncodedResult
	var last entities.EncodedResult
	attempts := 0

	for i := 0; i < p.MaxIterations; i++ {
		result, err := measure(quality)
		if err != nil {
			// Ошибка кодирования восстановима только при наличии
			// запасного результата не выше цели
			if best != nil {
				return bandSearchResult{Result: *best, Iterations: attempts}, nil
			}
			return bandSearchResult{Iterations: attempts}, err
		}

		attempts++
		last = result
		if p.OnAttempt != nil {
			p.OnAttempt(attempts, result)
		}

		if result.SizeBytes <= p.TargetBytes && betterUnderTarget(result, best) {
			kept := result
			best = &kept
		}

		// Попадание в полосу приема завершает поиск немедленно
		if result.SizeBytes <= p.TargetBytes && result.SizeBytes >= lowerBand {
			return bandSearchResult{Result: result, InBand: true, Iterations: attempts}, nil
		}

		// Источник естественно мал при этих размерах: первая итерация
		// далеко под полосой, подъем качества не окупит итераций
		if i == 0 && p.FarUnderRatio > 0 &&
			result.SizeBytes < int64(float64(lowerBand)*p.FarUnderRatio) {
			return bandSearchResult{Result: result, InBand: true, Iterations: attempts}, nil
		}

		if result.SizeBytes > p.TargetBytes {
			if quality <= p.MinQuality {
				// Уже на полу качества, дальше снижать нечего
				break
			}
			step := p.StepDownSmall
			if result.SizeBytes > int64(float64(p.TargetBytes)*p.LargeOvershoot) {
				step = p.StepDownLarge
			}
			quality -= step
			if quality < p.MinQuality {
				quality = p.MinQuality
			}
		} else {
			if quality >= p.MaxQuality {
				// Потолок качества: лучше уже не станет
				return bandSearchResult{Result: result, InBand: true, Iterations: attempts}, nil
			}
			quality += p.StepUp
			if quality > p.MaxQuality {
				quality = p.MaxQuality
			}
		}
	}

	// Итерации исчерпаны без попадания в полосу
	if best != nil {
		return bandSearchResult{Result: *best, Iterations: attempts}, nil
	}
	return bandSearchResult{Result: last, Iterations: attempts}, nil
}

// betterUnderTarget сравнивает кандидатов не выше цели: ближе к цели лучше,
// при равном размере предпочитается большее качество
func betterUnderTarget(candidate entities.EncodedResult, current *entities.EncodedResult) bool {
	if current == nil {
		return true
	}
	if candidate.SizeBytes != current.SizeBytes {
		return candidate.SizeBytes > current.SizeBytes
	}
	return candidate.Quality > current.Quality
}
