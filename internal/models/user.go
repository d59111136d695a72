package models

import "time"

// GuestPassword marks users created implicitly by a guest booking. It is not a
// bcrypt hash, so such accounts can never pass a password check.
const GuestPassword = "booking-user"

// User captures application-facing fields for a café customer.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicUser is the subset of user fields returned by the auth endpoints.
type PublicUser struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

// Public strips everything but the identifying fields.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Mobile: u.Mobile}
}
