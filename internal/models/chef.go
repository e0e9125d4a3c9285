package models

import "time"

type Chef struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone,omitempty"`
	Specialty  string     `json:"specialty"`
	Experience int        `json:"experience"`
	Rating     float64    `json:"rating"`
	Location   string     `json:"location,omitempty"`
	Bio        string     `json:"bio,omitempty"`
	PriceRange string     `json:"price_range,omitempty"`
	Status     ChefStatus `json:"status"`
	ImageURL   string     `json:"image_url,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CreateChefData carries the admin-form payload for a new chef. Rating is
// absent on purpose: it is server-owned and defaults to zero.
type CreateChefData struct {
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone,omitempty"`
	Specialty  string     `json:"specialty"`
	Experience int        `json:"experience"`
	Location   string     `json:"location,omitempty"`
	Bio        string     `json:"bio,omitempty"`
	PriceRange string     `json:"price_range,omitempty"`
	Status     ChefStatus `json:"status"`
	ImageURL   string     `json:"image_url,omitempty"`
}

// ChefPatch is a partial update; nil fields are left untouched.
type ChefPatch struct {
	Name       *string     `json:"name,omitempty"`
	Email      *string     `json:"email,omitempty"`
	Phone      *string     `json:"phone,omitempty"`
	Specialty  *string     `json:"specialty,omitempty"`
	Experience *int        `json:"experience,omitempty"`
	Location   *string     `json:"location,omitempty"`
	Bio        *string     `json:"bio,omitempty"`
	PriceRange *string     `json:"price_range,omitempty"`
	Status     *ChefStatus `json:"status,omitempty"`
	ImageURL   *string     `json:"image_url,omitempty"`
}
