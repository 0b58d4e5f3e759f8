// Package service implements the business logic behind authentication,
// booking and catalog management. Services validate input, orchestrate
// store calls and convert every expected business condition into a
// model.OperationResult; no such condition escapes as an error.
package service

import (
	"context"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/queue"
)

// CredentialStore is the persistence contract for user credential records.
// Implemented by repository.UserRepo.
type CredentialStore interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Insert(ctx context.Context, u *model.User) error
	Replace(ctx context.Context, u *model.User) error
}

// TheaterStore is the persistence contract for theater records.
// Implemented by repository.TheaterRepo.
type TheaterStore interface {
	GetByID(ctx context.Context, id string) (*model.Theater, error)
	List(ctx context.Context) ([]model.Theater, error)
	Insert(ctx context.Context, t *model.Theater) error
	Delete(ctx context.Context, id string) error
}

// MovieStore is the persistence contract for movie records.
// Implemented by repository.MovieRepo.
type MovieStore interface {
	GetByID(ctx context.Context, id string) (*model.Movie, error)
	List(ctx context.Context) ([]model.Movie, error)
	Insert(ctx context.Context, m *model.Movie) error
	Delete(ctx context.Context, id string) error
}

// TicketStore is the persistence contract for tickets. Book and Update
// must apply the ticket write and the theater seat-counter write
// atomically, failing with repository.ErrInsufficientSeats when the
// conditional counter write loses a race. Implemented by
// repository.TicketRepo.
type TicketStore interface {
	GetByID(ctx context.Context, id string) (*model.Ticket, error)
	Book(ctx context.Context, t *model.Ticket) error
	Update(ctx context.Context, t *model.Ticket, seatDelta int) error
	ListByUser(ctx context.Context, userID string) ([]model.TicketDetail, error)
}

// EventPublisher delivers a booking event to the message broker. Failures
// are best-effort: a committed booking is never rolled back because the
// broker was unreachable.
type EventPublisher func(ctx context.Context, event queue.TicketBookedEvent) error
