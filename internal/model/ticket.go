package model

import "time"

// Ticket represents a row in the `tickets` table. SeatCount is always a
// positive integer and, once committed, is reflected exactly once in the
// referenced theater's available-seat counter. TheaterID, MovieID and
// UserID are weak uuid references; the referenced records may have been
// deleted since booking.
type Ticket struct {
	ID        string    `json:"id"`
	SeatCount int       `json:"seat_count"`
	TheaterID string    `json:"theater_id"`
	MovieID   string    `json:"movie_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TicketDetail is a ticket enriched with snapshots of its referenced
// records, fetched at read time for display. A missing reference leaves
// the corresponding field nil instead of failing the whole read.
type TicketDetail struct {
	Ticket
	Theater *Theater `json:"theater,omitempty"`
	Movie   *Movie   `json:"movie,omitempty"`
	User    *User    `json:"user,omitempty"`
}
