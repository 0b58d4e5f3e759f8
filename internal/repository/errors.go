// Package repository implements MySQL persistence for users, theaters,
// movies and tickets. Sentinel errors defined here let the service layer
// distinguish business conditions (a missing record, a full theater, a
// taken username) from infrastructure faults without inspecting error
// text.
package repository

import "errors"

// ErrUserNotFound is returned when no user matches the given username or id.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameExists is returned when an insert collides with an existing
// username. The pre-insert existence check in the service layer makes this
// rare, but a concurrent registration can still trip the unique index.
var ErrUsernameExists = errors.New("username already exists")

// ErrTheaterNotFound is returned when the referenced theater does not exist.
var ErrTheaterNotFound = errors.New("theater not found")

// ErrMovieNotFound is returned when the referenced movie does not exist.
var ErrMovieNotFound = errors.New("movie not found")

// ErrTicketNotFound is returned when the referenced ticket does not exist.
var ErrTicketNotFound = errors.New("ticket not found")

// ErrInsufficientSeats is returned when the conditional seat-counter write
// finds fewer available seats than requested. This is how a booking that
// raced past the capacity check gets rejected instead of overcommitting.
var ErrInsufficientSeats = errors.New("insufficient seats available")
