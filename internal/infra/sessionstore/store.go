package sessionstore

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Store in-memory хранилище сессий бронирования
// Состояние сессии живет только в памяти процесса: спецификация виджета не
// предполагает персистентности между сессиями, поэтому БД здесь не нужна.
// Каждая сессия принадлежит одному клиенту, записи вычищаются по TTL.
//
// Один клиент может слать конкурентные запросы по одной сессии (медленный
// ответ по слотам и новый POST даты). Мутации выполняются только через
// Update под локом записи; Get возвращает независимую копию состояния.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// entry.mu защищает selection и expiresAt; s.mu защищает только карту
type entry struct {
	mu        sync.Mutex
	selection *domain.BookingSelection
	expiresAt time.Time
}

// New создает хранилище сессий с фоновой очисткой истекших записей
func New(ttl, cleanupInterval time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}

	go s.janitor(cleanupInterval)

	return s
}

// Save сохраняет сессию и продлевает её TTL
// Хранится копия: указатель вызывающего не разделяется с хранилищем
func (s *Store) Save(selection *domain.BookingSelection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[selection.ID] = &entry{
		selection: selection.Clone(),
		expiresAt: time.Now().Add(s.ttl),
	}
}

// Get возвращает копию сессии по ID
// Истекшая сессия эквивалентна отсутствующей
func (s *Store) Get(id string) (*domain.BookingSelection, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if time.Now().After(e.expiresAt) {
		return nil, ErrSessionNotFound
	}

	return e.selection.Clone(), nil
}

// Update применяет fn к сессии под локом её записи и продлевает TTL
// Ошибка fn отменяет продление и возвращается без изменений; при успехе
// возвращается копия нового состояния
func (s *Store) Update(id string, fn func(*domain.BookingSelection) error) (*domain.BookingSelection, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if time.Now().After(e.expiresAt) {
		return nil, ErrSessionNotFound
	}

	if err := fn(e.selection); err != nil {
		return nil, err
	}

	e.expiresAt = time.Now().Add(s.ttl)
	return e.selection.Clone(), nil
}

// Delete удаляет сессию
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}

// Len возвращает количество сессий (включая истекшие, еще не вычищенные)
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

// Close останавливает фоновую очистку
func (s *Store) Close() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

func (s *Store) lookup(id string) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e, nil
}

func (s *Store) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.removeExpired()
		case <-s.stop:
			return
		}
	}
}

func (s *Store) removeExpired() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.sessions {
		e.mu.Lock()
		expired := now.After(e.expiresAt)
		e.mu.Unlock()
		if expired {
			delete(s.sessions, id)
		}
	}
}
