package models

import "time"

type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Type        string      `json:"type"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Location    string      `json:"location"`
	Guests      int         `json:"guests"`
	ChefID      string      `json:"chef_id,omitempty"`
	ClientName  string      `json:"client_name"`
	ClientEmail string      `json:"client_email"`
	ClientPhone string      `json:"client_phone,omitempty"`
	Status      EventStatus `json:"status"`
	Price       float64     `json:"price"`
	Description string      `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// Chef is resolved from the weak chef_id reference on listing. It stays
	// nil when no chef is assigned or the referenced row is gone.
	Chef *EventChef `json:"chef,omitempty"`
}

// EventChef is the embedded slice of chef data joined into event listings.
type EventChef struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// EventPatch is a partial admin update; nil fields are left untouched.
// Status has its own transition-checked operation and is not patchable here.
type EventPatch struct {
	Title       *string  `json:"title,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Time        *string  `json:"time,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Guests      *int     `json:"guests,omitempty"`
	ChefID      *string  `json:"chef_id,omitempty"`
	ClientName  *string  `json:"client_name,omitempty"`
	ClientEmail *string  `json:"client_email,omitempty"`
	ClientPhone *string  `json:"client_phone,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// CreateEventData is the booking-submission payload. Status is not part of
// it: submissions always start pending.
type CreateEventData struct {
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Location    string  `json:"location"`
	Guests      int     `json:"guests"`
	ChefID      string  `json:"chef_id,omitempty"`
	ClientName  string  `json:"client_name"`
	ClientEmail string  `json:"client_email"`
	ClientPhone string  `json:"client_phone,omitempty"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}
