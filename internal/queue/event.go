// Package queue defines message payloads exchanged over the message broker
// and the publisher/consumer that move them.
package queue

// TicketBookedEvent is published when a booking commits. It carries enough
// information for downstream consumers to log or notify without querying
// the primary database.
type TicketBookedEvent struct {
	TicketID    string `json:"ticket_id"`
	UserID      string `json:"user_id"`
	TheaterID   string `json:"theater_id"`
	TheaterName string `json:"theater_name"`
	MovieID     string `json:"movie_id"`
	SeatCount   int    `json:"seat_count"`
	BookedAt    string `json:"booked_at"`
}
