package models

import (
	"time"
)

// User is the logged-in identity. There is no credential store behind it:
// presence of a persisted user means the session is considered valid.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Role       string    `json:"role,omitempty"`
	LoggedInAt time.Time `json:"logged_in_at"`
}
