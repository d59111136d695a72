package models

import "time"

// BookingStatus is the lifecycle state of a reservation.
type BookingStatus string

// StatusPending is assigned to every new booking. Cancelling deletes the row,
// so no other state exists yet.
const StatusPending BookingStatus = "pending"

// Booking is a table reservation owned by a single user.
type Booking struct {
	ID             int64         `json:"id"`
	UserID         int64         `json:"userId"`
	Date           string        `json:"date"`
	Time           string        `json:"time"`
	NumberOfPeople int           `json:"numberOfPeople"`
	SpecialRequest *string       `json:"specialRequest"`
	Status         BookingStatus `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// OwnedBy reports whether userID owns the booking.
func (b Booking) OwnedBy(userID int64) bool {
	return b.UserID == userID
}

// BookingPatch carries the optional fields of a partial update. Nil fields are
// left untouched.
type BookingPatch struct {
	Date           *string
	Time           *string
	NumberOfPeople *int
	SpecialRequest *string
}

// Empty reports whether the patch changes nothing.
func (p BookingPatch) Empty() bool {
	return p.Date == nil && p.Time == nil && p.NumberOfPeople == nil && p.SpecialRequest == nil
}

// Apply returns a copy of b with the patch fields replaced.
func (p BookingPatch) Apply(b Booking) Booking {
	if p.Date != nil {
		b.Date = *p.Date
	}
	if p.Time != nil {
		b.Time = *p.Time
	}
	if p.NumberOfPeople != nil {
		b.NumberOfPeople = *p.NumberOfPeople
	}
	if p.SpecialRequest != nil {
		req := *p.SpecialRequest
		b.SpecialRequest = &req
	}
	return b
}
