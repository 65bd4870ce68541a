package sessionstore

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

func TestStore_SaveAndGet(t *testing.T) {
	store := New(time.Minute, time.Minute)
	defer store.Close()

	sel := domain.NewBookingSelection("sess-1", time.Now())
	store.Save(sel)

	got, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, sel, got)
}

func TestStore_GetMissing(t *testing.T) {
	store := New(time.Minute, time.Minute)
	defer store.Close()

	_, err := store.Get("unknown")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_ExpiredEqualsMissing(t *testing.T) {
	store := New(10*time.Millisecond, time.Hour)
	defer store.Close()

	store.Save(domain.NewBookingSelection("sess-1", time.Now()))

	time.Sleep(30 * time.Millisecond)

	_, err := store.Get("sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_SaveExtendsTTL(t *testing.T) {
	store := New(50*time.Millisecond, time.Hour)
	defer store.Close()

	sel := domain.NewBookingSelection("sess-1", time.Now())
	store.Save(sel)

	time.Sleep(30 * time.Millisecond)
	store.Save(sel)
	time.Sleep(30 * time.Millisecond)

	_, err := store.Get("sess-1")
	assert.NoError(t, err)
}

func TestStore_Update(t *testing.T) {
	store := New(time.Minute, time.Minute)
	defer store.Close()

	store.Save(domain.NewBookingSelection("sess-1", time.Now()))

	got, err := store.Update("sess-1", func(sel *domain.BookingSelection) error {
		sel.Step = domain.StepDateTime
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StepDateTime, got.Step)

	reloaded, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepDateTime, reloaded.Step)
}

func TestStore_UpdateMissing(t *testing.T) {
	store := New(time.Minute, time.Minute)
	defer store.Close()

	_, err := store.Update("unknown", func(sel *domain.BookingSelection) error {
		t.Fatal("fn must not run for a missing session")
		return nil
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_UpdatePropagatesFnError(t *testing.T) {
	store := New(time.Minute, time.Minute)
	defer store.Close()

	store.Save(domain.NewBookingSelection("sess-1", time.Now()))

	wantErr := errors.New("guard rejected")
	_, err := store.Update("sess-1", func(sel *domain.BookingSelection) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestStore_GetReturnsIndependentCopy(t *testing.T) {
	store := New(time.Minute, time.Minute)
	defer store.Close()

	store.Save(domain.NewBookingSelection("sess-1", time.Now()))

	got, err := store.Get("sess-1")
	require.NoError(t, err)

	// Мутации копии не видны хранилищу
	date := time.Now().AddDate(0, 0, 1)
	got.Date = &date
	got.SlotCache["2025-01-01|any"] = domain.SlotResult{}

	reloaded, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Nil(t, reloaded.Date)
	assert.Empty(t, reloaded.SlotCache)
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	store := New(time.Minute, time.Minute)
	defer store.Close()

	store.Save(domain.NewBookingSelection("sess-1", time.Now()))

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := store.Update("sess-1", func(sel *domain.BookingSelection) error {
				sel.SlotCache[fmt.Sprintf("key-%d", n)] = domain.SlotResult{}
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Len(t, got.SlotCache, writers)
}

func TestStore_Delete(t *testing.T) {
	store := New(time.Minute, time.Minute)
	defer store.Close()

	store.Save(domain.NewBookingSelection("sess-1", time.Now()))
	store.Delete("sess-1")

	_, err := store.Get("sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_JanitorRemovesExpired(t *testing.T) {
	store := New(10*time.Millisecond, 20*time.Millisecond)
	defer store.Close()

	store.Save(domain.NewBookingSelection("sess-1", time.Now()))
	store.Save(domain.NewBookingSelection("sess-2", time.Now()))
	require.Equal(t, 2, store.Len())

	assert.Eventually(t, func() bool {
		return store.Len() == 0
	}, time.Second, 10*time.Millisecond)
}
