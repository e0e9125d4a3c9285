package models

import "time"

// Session is the server-side record of an authenticated user, cached by
// access-token id.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
