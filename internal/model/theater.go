package model

import "time"

// Theater represents a row in the `theaters` table. AvailableSeats is the
// single source of truth for remaining capacity; it never goes below zero
// and is only mutated as a side effect of booking or updating a ticket.
type Theater struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	City           string    `json:"city"`
	AvailableSeats int       `json:"available_seats"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
