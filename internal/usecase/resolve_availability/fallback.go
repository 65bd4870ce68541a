package resolve_availability

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// FallbackSchedule генератор офлайн-расписания
// Используется только когда удаленный источник исчерпал повторы или вернул
// некорректный ответ: поток бронирования деградирует, но не блокируется
type FallbackSchedule struct {
	OpenHour  int // Первый час рабочего окна (включительно)
	CloseHour int // Последний час рабочего окна (включительно)

	// ThinningEnabled включает псевдослучайное прореживание слотов,
	// имитирующее частичную занятость; при выключении возвращается
	// полное рабочее окно
	ThinningEnabled bool
	DropRate        float64
}

// Generate строит детерминированный набор кандидатов для запроса
// Базовый список - почасовые метки рабочего окна; для сегодняшней даты
// остаются только часы строго позже текущего (слоты в прошлом не предлагаем)
//
// Прореживание детерминировано по ключу запроса: повторный запрос той же
// даты и услуги в рамках сессии дает тот же набор
func (f FallbackSchedule) Generate(query domain.SlotQuery, now time.Time) []types.TimeString {
	slots := make([]types.TimeString, 0, f.CloseHour-f.OpenHour+1)
	for hour := f.OpenHour; hour <= f.CloseHour; hour++ {
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:00", hour)))
	}

	if domain.IsSameDay(query.Date, now) {
		currentHour := now.Hour()
		filtered := make([]types.TimeString, 0, len(slots))
		for _, slot := range slots {
			if slot.Hour() > currentHour {
				filtered = append(filtered, slot)
			}
		}
		slots = filtered
	}

	if !f.ThinningEnabled {
		return slots
	}

	rng := rand.New(rand.NewSource(seedFor(query)))
	thinned := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if rng.Float64() > f.DropRate {
			thinned = append(thinned, slot)
		}
	}

	// Пустой набор после прореживания - легитимное состояние "слотов нет",
	// не ошибка
	return thinned
}

func seedFor(query domain.SlotQuery) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(query.CacheKey()))
	return int64(h.Sum64())
}
