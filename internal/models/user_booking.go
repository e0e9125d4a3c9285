package models

import "time"

// UserBooking links an authenticated user to one event. Rating and review
// stay nil until the user files them after the event.
type UserBooking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id"`
	Notes     string    `json:"notes,omitempty"`
	Rating    *int      `json:"rating,omitempty"`
	Review    *string   `json:"review,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
