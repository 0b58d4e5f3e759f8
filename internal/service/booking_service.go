package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/queue"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

// BookingService validates and commits ticket creation and modification
// against theater seat inventory. Capacity is checked against a fresh read
// for the failure message, but the authoritative decision happens inside
// the store's conditional counter write, so concurrent bookings cannot
// overcommit a theater.
type BookingService struct {
	tickets  TicketStore
	theaters TheaterStore
	publish  EventPublisher // optional; nil disables eventing
}

// NewBookingService constructs a BookingService. publish may be nil.
func NewBookingService(tickets TicketStore, theaters TheaterStore, publish EventPublisher) *BookingService {
	return &BookingService{tickets: tickets, theaters: theaters, publish: publish}
}

// TicketRequest is the payload for booking or updating a ticket. TicketID
// is only set on updates.
type TicketRequest struct {
	SeatCount int    `json:"seat_count"`
	MovieID   string `json:"movie_id"`
	TheaterID string `json:"theater_id"`
	TicketID  string `json:"ticket_id,omitempty"`
}

// Book reserves seats for the user. The success message reports the
// requested seat count, not the remaining availability; clients depend on
// that wording.
func (s *BookingService) Book(ctx context.Context, req TicketRequest, userID string) model.OperationResult {
	if req.SeatCount <= 0 {
		return model.Fail("Seat count must be a positive number")
	}
	theater, err := s.theaters.GetByID(ctx, req.TheaterID)
	if err != nil {
		if errors.Is(err, repository.ErrTheaterNotFound) {
			return model.Fail("Theater not found")
		}
		return model.Fail(err.Error())
	}
	if req.SeatCount > theater.AvailableSeats {
		return model.Fail(fmt.Sprintf("Only %d seats are available", theater.AvailableSeats))
	}

	ticket := &model.Ticket{
		SeatCount: req.SeatCount,
		TheaterID: req.TheaterID,
		MovieID:   req.MovieID,
		UserID:    userID,
	}
	if err := s.tickets.Book(ctx, ticket); err != nil {
		return s.bookFailure(ctx, req.TheaterID, err)
	}

	s.publishBooked(ticket, theater.Name)
	return model.Ok(fmt.Sprintf("%d Ticket Booked", req.SeatCount))
}

// bookFailure maps a store error from the booking transaction to a
// result. A lost race on the conditional counter write is reported with
// the availability re-read after the failure.
func (s *BookingService) bookFailure(ctx context.Context, theaterID string, err error) model.OperationResult {
	switch {
	case errors.Is(err, repository.ErrTheaterNotFound):
		return model.Fail("Theater not found")
	case errors.Is(err, repository.ErrInsufficientSeats):
		if theater, rerr := s.theaters.GetByID(ctx, theaterID); rerr == nil {
			return model.Fail(fmt.Sprintf("Only %d seats are available", theater.AvailableSeats))
		}
		return model.Fail(err.Error())
	default:
		return model.Fail(err.Error())
	}
}

// UpdateBooking modifies an existing ticket. The owning user must match
// the caller; a foreign or missing ticket yields the same message so the
// response does not leak whether the ticket exists. The theater counter
// is adjusted by exactly the seat delta, never recomputed from scratch.
func (s *BookingService) UpdateBooking(ctx context.Context, req TicketRequest, userID string) model.OperationResult {
	if req.SeatCount <= 0 {
		return model.Fail("Seat count must be a positive number")
	}
	existing, err := s.tickets.GetByID(ctx, req.TicketID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return model.Fail("Ticket not found or unauthorized access")
		}
		return model.Fail(err.Error())
	}
	if existing.UserID != userID {
		return model.Fail("Ticket not found or unauthorized access")
	}

	theater, err := s.theaters.GetByID(ctx, req.TheaterID)
	if err != nil {
		if errors.Is(err, repository.ErrTheaterNotFound) {
			return model.Fail("Theater not found")
		}
		return model.Fail(err.Error())
	}

	seatDelta := req.SeatCount - existing.SeatCount
	if seatDelta > theater.AvailableSeats {
		return model.Fail(fmt.Sprintf("Only %d additional seats are available", theater.AvailableSeats))
	}

	existing.SeatCount = req.SeatCount
	existing.TheaterID = req.TheaterID
	existing.MovieID = req.MovieID
	if err := s.tickets.Update(ctx, existing, seatDelta); err != nil {
		switch {
		case errors.Is(err, repository.ErrTicketNotFound):
			return model.Fail("Ticket not found or unauthorized access")
		case errors.Is(err, repository.ErrTheaterNotFound):
			return model.Fail("Theater not found")
		case errors.Is(err, repository.ErrInsufficientSeats):
			if theater, rerr := s.theaters.GetByID(ctx, req.TheaterID); rerr == nil {
				return model.Fail(fmt.Sprintf("Only %d additional seats are available", theater.AvailableSeats))
			}
			return model.Fail(err.Error())
		default:
			return model.Fail(err.Error())
		}
	}
	return model.Ok("Ticket updated successfully")
}

// ListTicketsForUser returns the user's tickets, newest first, enriched
// with theater, movie and user snapshots. A store fault on this read path
// degrades to an empty result rather than an error.
func (s *BookingService) ListTicketsForUser(ctx context.Context, userID string) []model.TicketDetail {
	details, err := s.tickets.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("booking: list tickets for user %s failed: %v", userID, err)
		return []model.TicketDetail{}
	}
	return details
}

// publishBooked sends the booking event in the background. The booking has
// already committed; broker errors are logged inside the publisher and
// ignored here.
func (s *BookingService) publishBooked(t *model.Ticket, theaterName string) {
	if s.publish == nil {
		return
	}
	event := queue.TicketBookedEvent{
		TicketID:    t.ID,
		UserID:      t.UserID,
		TheaterID:   t.TheaterID,
		TheaterName: theaterName,
		MovieID:     t.MovieID,
		SeatCount:   t.SeatCount,
		BookedAt:    t.CreatedAt.UTC().Format(time.RFC3339),
	}
	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.publish(pubCtx, event)
	}()
}
