package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// MovieRepo persists movie catalog records.
type MovieRepo struct{ db *sql.DB }

func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{db: db} }

const movieColumns = "id,name,poster,genre,description,languages,created_at,updated_at"

// GetByID fetches a movie by id.
func (r *MovieRepo) GetByID(ctx context.Context, id string) (*model.Movie, error) {
	var m model.Movie
	err := r.db.QueryRowContext(ctx,
		"SELECT "+movieColumns+" FROM movies WHERE id=? LIMIT 1", id).
		Scan(&m.ID, &m.Name, &m.Poster, &m.Genre, &m.Description, &m.Languages, &m.CreatedAt, &m.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns all movies, newest first.
func (r *MovieRepo) List(ctx context.Context) ([]model.Movie, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+movieColumns+" FROM movies ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	movies := make([]model.Movie, 0)
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Name, &m.Poster, &m.Genre, &m.Description, &m.Languages, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// Insert stores a new movie with a generated uuid.
func (r *MovieRepo) Insert(ctx context.Context, m *model.Movie) error {
	now := time.Now().UTC()
	m.ID = uuid.New().String()
	m.CreatedAt = now
	m.UpdatedAt = now
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO movies ("+movieColumns+") VALUES (?,?,?,?,?,?,?,?)",
		m.ID, m.Name, m.Poster, m.Genre, m.Description, m.Languages, m.CreatedAt, m.UpdatedAt)
	return err
}

// Delete removes a movie by id.
func (r *MovieRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM movies WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrMovieNotFound
	}
	return nil
}
