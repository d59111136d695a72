package storage

import (
	"context"
	"errors"

	"github.com/Shubhendu-bhakat/cafe-demo/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures user persistence operations.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// BookingStore captures booking persistence operations.
type BookingStore interface {
	CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	FindBooking(ctx context.Context, id int64) (models.Booking, error)
	// ListBookingsByUser returns the user's bookings newest first.
	ListBookingsByUser(ctx context.Context, userID int64) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, id int64, patch models.BookingPatch) (models.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
}

// Store is the full persistence surface used by the API process.
type Store interface {
	UserStore
	BookingStore
	Ping(ctx context.Context) error
	Close()
}
