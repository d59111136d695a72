package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Shubhendu-bhakat/cafe-demo/internal/auth"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/storage/memory"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/validate"
)

type fixture struct {
	store    *memory.Store
	tokens   *auth.TokenManager
	identity *Identity
	bookings *Bookings
	observer *countingObserver
}

type countingObserver struct {
	created, guests, updated, cancelled int
}

func (o *countingObserver) BookingCreated(guest bool) {
	o.created++
	if guest {
		o.guests++
	}
}

func (o *countingObserver) BookingUpdated() { o.updated++ }

func (o *countingObserver) BookingCancelled() { o.cancelled++ }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	store := memory.New(memory.WithClock(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}))
	tokens := auth.NewTokenManager("test-secret", "cafe-api", time.Hour)
	v := validate.New()
	obs := &countingObserver{}
	return &fixture{
		store:    store,
		tokens:   tokens,
		identity: NewIdentity(store, auth.NewBcryptHasher(bcrypt.MinCost), tokens, v),
		bookings: NewBookings(store, store, v, obs),
		observer: obs,
	}
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func requireKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	require.Error(t, err)
	var se *Error
	require.True(t, errors.As(err, &se), "expected *service.Error, got %T", err)
	assert.Equal(t, kind, se.Kind, "message: %s", se.Message)
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, "Internal Server Error", MessageOf(errors.New("boom")))
	assert.Equal(t, "db down", MessageOf(internalError("op", errors.New("db down"))))
	assert.Equal(t, "not_found", KindNotFound.String())
}
