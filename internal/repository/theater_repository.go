package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// TheaterRepo persists theater records and their available-seat counters.
// The counter itself is only written through TicketRepo's transactional
// booking paths; this repository covers catalog access.
type TheaterRepo struct{ db *sql.DB }

func NewTheaterRepo(db *sql.DB) *TheaterRepo { return &TheaterRepo{db: db} }

// GetByID fetches a theater by id.
func (r *TheaterRepo) GetByID(ctx context.Context, id string) (*model.Theater, error) {
	var t model.Theater
	err := r.db.QueryRowContext(ctx,
		"SELECT id,name,city,available_seats,created_at,updated_at FROM theaters WHERE id=? LIMIT 1",
		id).Scan(&t.ID, &t.Name, &t.City, &t.AvailableSeats, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrTheaterNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all theaters, newest first.
func (r *TheaterRepo) List(ctx context.Context) ([]model.Theater, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id,name,city,available_seats,created_at,updated_at FROM theaters ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	theaters := make([]model.Theater, 0)
	for rows.Next() {
		var t model.Theater
		if err := rows.Scan(&t.ID, &t.Name, &t.City, &t.AvailableSeats, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		theaters = append(theaters, t)
	}
	return theaters, rows.Err()
}

// Insert stores a new theater with a generated uuid.
func (r *TheaterRepo) Insert(ctx context.Context, t *model.Theater) error {
	now := time.Now().UTC()
	t.ID = uuid.New().String()
	t.CreatedAt = now
	t.UpdatedAt = now
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO theaters (id,name,city,available_seats,created_at,updated_at) VALUES (?,?,?,?,?,?)",
		t.ID, t.Name, t.City, t.AvailableSeats, t.CreatedAt, t.UpdatedAt)
	return err
}

// Delete removes a theater by id.
func (r *TheaterRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM theaters WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrTheaterNotFound
	}
	return nil
}
