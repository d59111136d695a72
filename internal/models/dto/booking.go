package dto

import (
	"time"

	"github.com/Shubhendu-bhakat/cafe-demo/internal/models"
)

// CreateBookingRequest is the guest booking payload. NumberOfPeople is a
// pointer so an omitted value can be told apart from zero.
type CreateBookingRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	NumberOfPeople *int    `json:"numberOfPeople"`
	SpecialRequest *string `json:"specialRequest"`
}

type UpdateBookingRequest struct {
	Date           *string `json:"date"`
	Time           *string `json:"time"`
	NumberOfPeople *int    `json:"numberOfPeople"`
	SpecialRequest *string `json:"specialRequest"`
}

// Patch converts the request into a store patch.
func (r UpdateBookingRequest) Patch() models.BookingPatch {
	return models.BookingPatch{
		Date:           r.Date,
		Time:           r.Time,
		NumberOfPeople: r.NumberOfPeople,
		SpecialRequest: r.SpecialRequest,
	}
}

// BookingSummary is returned from the guest booking endpoint.
type BookingSummary struct {
	ID             int64                `json:"id"`
	Date           string               `json:"date"`
	Time           string               `json:"time"`
	NumberOfPeople int                  `json:"numberOfPeople"`
	Status         models.BookingStatus `json:"status"`
	CreatedAt      time.Time            `json:"createdAt"`
}

func NewBookingSummary(b models.Booking) BookingSummary {
	return BookingSummary{
		ID:             b.ID,
		Date:           b.Date,
		Time:           b.Time,
		NumberOfPeople: b.NumberOfPeople,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
	}
}

type CreateBookingResponse struct {
	Message string         `json:"message"`
	Booking BookingSummary `json:"booking"`
}

type BookingResponse struct {
	Message string         `json:"message,omitempty"`
	Booking models.Booking `json:"booking"`
}

type BookingListResponse struct {
	Bookings []models.Booking `json:"bookings"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
