package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Shubhendu-bhakat/cafe-demo/internal/models"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/models/dto"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/storage"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/validate"
)

const msgBookingNotFound = "Booking not found"

// BookingObserver is notified about booking lifecycle events.
type BookingObserver interface {
	BookingCreated(guestUserCreated bool)
	BookingUpdated()
	BookingCancelled()
}

type noopObserver struct{}

func (noopObserver) BookingCreated(bool) {}
func (noopObserver) BookingUpdated() {}
func (noopObserver) BookingCancelled() {}

// Bookings creates reservations and lets their owners manage them.
type Bookings struct {
	users     storage.UserStore
	bookings  storage.BookingStore
	validator *validate.Validator
	observer  BookingObserver
}

// NewBookings constructs the booking service. A nil observer is allowed.
func NewBookings(users storage.UserStore, bookings storage.BookingStore, v *validate.Validator, observer BookingObserver) *Bookings {
	if observer == nil {
		observer = noopObserver{}
	}
	return &Bookings{users: users, bookings: bookings, validator: v, observer: observer}
}

// Create books a table without a credential. The customer is resolved by
// email; an unknown email gets a guest account whose password can never match.
// An existing account with that email is reused as-is, so anyone who knows a
// customer's email can attach bookings to that account. Guest contact details
// are stored as given; only their presence is checked.
func (s *Bookings) Create(ctx context.Context, req dto.CreateBookingRequest) (models.Booking, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)

	if missing := missingFields(req); len(missing) > 0 {
		return models.Booking{}, validationError("Missing required fields: " + strings.Join(missing, ", "))
	}
	patch := models.BookingPatch{Date: &req.Date, Time: &req.Time, NumberOfPeople: req.NumberOfPeople}
	if err := s.validatePatch(patch); err != nil {
		return models.Booking{}, err
	}

	user, created, err := s.resolveGuest(ctx, req)
	if err != nil {
		return models.Booking{}, err
	}

	var special *string
	if req.SpecialRequest != nil && *req.SpecialRequest != "" {
		special = req.SpecialRequest
	}
	booking, err := s.bookings.CreateBooking(ctx, models.Booking{
		UserID:         user.ID,
		Date:           req.Date,
		Time:           req.Time,
		NumberOfPeople: *req.NumberOfPeople,
		SpecialRequest: special,
		Status:         models.StatusPending,
	})
	if err != nil {
		return models.Booking{}, internalError("create booking", err)
	}
	s.observer.BookingCreated(created)
	zerolog.Ctx(ctx).Info().
		Int64("booking_id", booking.ID).
		Int64("user_id", user.ID).
		Bool("guest_user_created", created).
		Msg("booking created")
	return booking, nil
}

// resolveGuest finds the user for req.Email or creates a guest account. A
// concurrent insert of the same email is resolved by reading the winner's row.
func (s *Bookings) resolveGuest(ctx context.Context, req dto.CreateBookingRequest) (models.User, bool, error) {
	user, err := s.users.FindUserByEmail(ctx, req.Email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return models.User{}, false, internalError("find user", err)
	}

	user, err = s.users.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		Mobile:       req.Phone,
		PasswordHash: models.GuestPassword,
	})
	switch {
	case err == nil:
		return user, true, nil
	case errors.Is(err, storage.ErrAlreadyExists):
		user, err = s.users.FindUserByEmail(ctx, req.Email)
		if err != nil {
			return models.User{}, false, internalError("find user", err)
		}
		return user, false, nil
	default:
		return models.User{}, false, internalError("create guest user", err)
	}
}

// ListMine returns the caller's bookings, newest first.
func (s *Bookings) ListMine(ctx context.Context, userID int64) ([]models.Booking, error) {
	bookings, err := s.bookings.ListBookingsByUser(ctx, userID)
	if err != nil {
		return nil, internalError("list bookings", err)
	}
	return bookings, nil
}

// Get returns a booking owned by userID.
func (s *Bookings) Get(ctx context.Context, userID, id int64) (models.Booking, error) {
	return s.owned(ctx, userID, id, "Not authorized to view this booking")
}

// Update replaces the supplied fields of a booking owned by userID.
func (s *Bookings) Update(ctx context.Context, userID, id int64, req dto.UpdateBookingRequest) (models.Booking, error) {
	patch := req.Patch()
	if err := s.validatePatch(patch); err != nil {
		return models.Booking{}, err
	}
	current, err := s.owned(ctx, userID, id, "Not authorized to update this booking")
	if err != nil {
		return models.Booking{}, err
	}
	if patch.Empty() {
		return current, nil
	}

	updated, err := s.bookings.UpdateBooking(ctx, id, patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Booking{}, notFoundError(msgBookingNotFound)
		}
		return models.Booking{}, internalError("update booking", err)
	}
	s.observer.BookingUpdated()
	return updated, nil
}

// Cancel permanently deletes a booking owned by userID.
func (s *Bookings) Cancel(ctx context.Context, userID, id int64) error {
	if _, err := s.owned(ctx, userID, id, "Not authorized to cancel this booking"); err != nil {
		return err
	}
	if err := s.bookings.DeleteBooking(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notFoundError(msgBookingNotFound)
		}
		return internalError("delete booking", err)
	}
	s.observer.BookingCancelled()
	zerolog.Ctx(ctx).Info().Int64("booking_id", id).Msg("booking cancelled")
	return nil
}

func (s *Bookings) owned(ctx context.Context, userID, id int64, forbidden string) (models.Booking, error) {
	booking, err := s.bookings.FindBooking(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Booking{}, notFoundError(msgBookingNotFound)
		}
		return models.Booking{}, internalError("find booking", err)
	}
	if !booking.OwnedBy(userID) {
		return models.Booking{}, forbiddenError(forbidden)
	}
	return booking, nil
}

// validatePatch checks the present fields with the creation rules.
func (s *Bookings) validatePatch(p models.BookingPatch) error {
	if p.Date != nil {
		if err := s.validator.Var("Date", *p.Date, "isodate"); err != nil {
			return validationError(err.Error())
		}
	}
	if p.Time != nil {
		if err := s.validator.Var("Time", *p.Time, "clock"); err != nil {
			return validationError(err.Error())
		}
	}
	if p.NumberOfPeople != nil {
		if err := s.validator.Var("NumberOfPeople", *p.NumberOfPeople, "min=1,max=10"); err != nil {
			return validationError(err.Error())
		}
	}
	return nil
}

func missingFields(req dto.CreateBookingRequest) []string {
	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Phone == "" {
		missing = append(missing, "phone")
	}
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.Time == "" {
		missing = append(missing, "time")
	}
	if req.NumberOfPeople == nil {
		missing = append(missing, "numberOfPeople")
	}
	return missing
}
