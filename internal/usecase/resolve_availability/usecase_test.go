package resolve_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/scheduleservice"
	"github.com/m04kA/SMC-SalonService/internal/service/selection"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type nopMetrics struct{}

func (nopMetrics) IncIntegrationRequest(target, outcome string) {}
func (nopMetrics) IncFallbackResolution(reason string)          {}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type fakeScheduleClient struct {
	slots []types.TimeString
	err   error
	calls int
}

func (f *fakeScheduleClient) GetAvailableSlots(_ context.Context, _ time.Time, _ *int64) ([]types.TimeString, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.slots, nil
}

type fakeSelection struct {
	cached       map[string]domain.SlotResult
	stored       []domain.SlotResult
	missing      bool
	cacheLookups int
}

func (f *fakeSelection) CachedSlots(_ context.Context, _ string, query domain.SlotQuery) (*domain.SlotResult, bool, error) {
	f.cacheLookups++
	if f.missing {
		return nil, false, selection.ErrSessionNotFound
	}
	if result, ok := f.cached[query.CacheKey()]; ok {
		return &result, true, nil
	}
	return nil, false, nil
}

func (f *fakeSelection) StoreSlots(_ context.Context, _ string, result domain.SlotResult) error {
	if f.missing {
		return selection.ErrSessionNotFound
	}
	f.stored = append(f.stored, result)
	return nil
}

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestUsecase(schedule *fakeScheduleClient, sel *fakeSelection) *Usecase {
	return NewUsecase(
		schedule,
		sel,
		FallbackSchedule{OpenHour: 10, CloseHour: 19, ThinningEnabled: false},
		&fixedTime{now: testNow},
		nopMetrics{},
		nopLogger{},
		2,
		0, // без пауз между повторами в тестах
	)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUsecase(&fakeScheduleClient{}, &fakeSelection{})

	_, err := uc.Execute(context.Background(), Request{Date: testNow})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), Request{SessionID: "s1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), Request{SessionID: "s1", Date: testNow.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_RemoteSuccess(t *testing.T) {
	schedule := &fakeScheduleClient{slots: []types.TimeString{"10:00", "11:30"}}
	sel := &fakeSelection{}
	uc := newTestUsecase(schedule, sel)

	resp, err := uc.Execute(context.Background(), Request{SessionID: "s1", Date: testNow.AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "11:30"}, resp.Slots)
	assert.False(t, resp.Degraded)
	assert.False(t, resp.FromCache)
	assert.Equal(t, 1, schedule.calls)

	require.Len(t, sel.stored, 1)
	assert.False(t, sel.stored[0].Degraded)
}

func TestExecute_EmptyRemoteIsNotFallback(t *testing.T) {
	// Пустой удаленный ответ - валидное состояние "слотов нет",
	// фолбэк не включается
	schedule := &fakeScheduleClient{slots: []types.TimeString{}}
	sel := &fakeSelection{}
	uc := newTestUsecase(schedule, sel)

	resp, err := uc.Execute(context.Background(), Request{SessionID: "s1", Date: testNow.AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.False(t, resp.Degraded)
	assert.Equal(t, 1, schedule.calls)
}

func TestExecute_RetriesExhaustedFallback(t *testing.T) {
	schedule := &fakeScheduleClient{err: scheduleservice.ErrUnavailable}
	sel := &fakeSelection{}
	uc := newTestUsecase(schedule, sel)

	resp, err := uc.Execute(context.Background(), Request{SessionID: "s1", Date: testNow.AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	// Первая попытка + два повтора
	assert.Equal(t, 3, schedule.calls)
	// Полное рабочее окно 10:00-19:00 (прореживание выключено)
	assert.Len(t, resp.Slots, 10)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("19:00"), resp.Slots[9])

	require.Len(t, sel.stored, 1)
	assert.True(t, sel.stored[0].Degraded)
}

func TestExecute_FallbackTodayFiltersPastHours(t *testing.T) {
	schedule := &fakeScheduleClient{err: scheduleservice.ErrUnavailable}
	uc := newTestUsecase(schedule, &fakeSelection{})

	// Сейчас 12:00: остаются только часы строго позже текущего
	resp, err := uc.Execute(context.Background(), Request{SessionID: "s1", Date: testNow})
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("13:00"), resp.Slots[0])
	for _, slot := range resp.Slots {
		assert.Greater(t, slot.Hour(), 12)
	}
}

func TestExecute_InvalidResponseFallback(t *testing.T) {
	schedule := &fakeScheduleClient{err: scheduleservice.ErrInvalidResponse}
	uc := newTestUsecase(schedule, &fakeSelection{})

	resp, err := uc.Execute(context.Background(), Request{SessionID: "s1", Date: testNow.AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
}

func TestExecute_CacheHitSkipsRemote(t *testing.T) {
	date := testNow.AddDate(0, 0, 1)
	query := domain.SlotQuery{Date: date}
	schedule := &fakeScheduleClient{slots: []types.TimeString{"16:00"}}
	sel := &fakeSelection{
		cached: map[string]domain.SlotResult{
			query.CacheKey(): {
				Query:      query,
				Slots:      []types.TimeString{"10:00"},
				ResolvedAt: testNow,
			},
		},
	}
	uc := newTestUsecase(schedule, sel)

	resp, err := uc.Execute(context.Background(), Request{SessionID: "s1", Date: date})
	require.NoError(t, err)
	assert.True(t, resp.FromCache)
	assert.Equal(t, []types.TimeString{"10:00"}, resp.Slots)
	assert.Equal(t, 0, schedule.calls)
	assert.Empty(t, sel.stored)
}

func TestExecute_SessionNotFound(t *testing.T) {
	uc := newTestUsecase(&fakeScheduleClient{}, &fakeSelection{missing: true})

	_, err := uc.Execute(context.Background(), Request{SessionID: "gone", Date: testNow.AddDate(0, 0, 1)})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestFallbackSchedule_DeterministicThinning(t *testing.T) {
	fallback := FallbackSchedule{OpenHour: 10, CloseHour: 19, ThinningEnabled: true, DropRate: 0.3}
	query := domain.SlotQuery{Date: testNow.AddDate(0, 0, 1)}

	first := fallback.Generate(query, testNow)
	second := fallback.Generate(query, testNow)
	assert.Equal(t, first, second)

	// Полное окно без прореживания
	full := FallbackSchedule{OpenHour: 10, CloseHour: 19}.Generate(query, testNow)
	assert.Len(t, full, 10)
	assert.LessOrEqual(t, len(first), len(full))
}

func TestFallbackSchedule_ServiceSpecificKey(t *testing.T) {
	fallback := FallbackSchedule{OpenHour: 10, CloseHour: 19, ThinningEnabled: true, DropRate: 0.3}
	date := testNow.AddDate(0, 0, 1)

	withService := fallback.Generate(domain.SlotQuery{Date: date, ServiceID: ptr.Ptr(int64(5))}, testNow)
	withSameService := fallback.Generate(domain.SlotQuery{Date: date, ServiceID: ptr.Ptr(int64(5))}, testNow)
	assert.Equal(t, withService, withSameService)
}
