// Package memory is an in-process implementation of storage.Store used for
// local development (STORAGE_DRIVER=memory) and tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Shubhendu-bhakat/cafe-demo/internal/models"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps users and bookings in maps guarded by a single mutex.
type Store struct {
	mu            sync.RWMutex
	now           func() time.Time
	users         map[int64]models.User
	usersByEmail  map[string]int64
	bookings      map[int64]models.Booking
	nextUserID    int64
	nextBookingID int64
}

// Option customises a Store.
type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		now:          time.Now,
		users:        make(map[int64]models.User),
		usersByEmail: make(map[string]int64),
		bookings:     make(map[int64]models.Booking),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() {}

func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(user.Email)
	if _, ok := s.usersByEmail[key]; ok {
		return models.User{}, storage.ErrAlreadyExists
	}
	s.nextUserID++
	user.ID = s.nextUserID
	user.CreatedAt = s.now().UTC()
	s.users[user.ID] = user
	s.usersByEmail[key] = user.ID
	return user, nil
}

func (s *Store) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByEmail[strings.TrimSpace(email)]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return s.users[id], nil
}

// UserCount returns the number of stored users.
func (s *Store) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

func (s *Store) CreateBooking(_ context.Context, b models.Booking) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[b.UserID]; !ok {
		return models.Booking{}, storage.ErrNotFound
	}
	s.nextBookingID++
	b.ID = s.nextBookingID
	if b.Status == "" {
		b.Status = models.StatusPending
	}
	now := s.now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	b.SpecialRequest = cloneString(b.SpecialRequest)
	s.bookings[b.ID] = b
	b.SpecialRequest = cloneString(b.SpecialRequest)
	return b, nil
}

func (s *Store) FindBooking(_ context.Context, id int64) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, storage.ErrNotFound
	}
	b.SpecialRequest = cloneString(b.SpecialRequest)
	return b, nil
}

func (s *Store) ListBookingsByUser(_ context.Context, userID int64) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			b.SpecialRequest = cloneString(b.SpecialRequest)
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) UpdateBooking(_ context.Context, id int64, patch models.BookingPatch) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, storage.ErrNotFound
	}
	b = patch.Apply(b)
	b.UpdatedAt = s.now().UTC()
	s.bookings[id] = b
	b.SpecialRequest = cloneString(b.SpecialRequest)
	return b, nil
}

func (s *Store) DeleteBooking(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.bookings, id)
	return nil
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
