package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// TicketRepo persists tickets and applies the paired seat-counter writes.
// Booking and updating run the ticket write and the theater counter write
// in one transaction, with the counter decrement made conditional on the
// seats still being available. Two bookings that both passed the service
// layer's capacity check can therefore never overcommit: the second one
// fails the conditional write and rolls back.
type TicketRepo struct{ db *sql.DB }

func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{db: db} }

const ticketColumns = "id,seat_count,theater_id,movie_id,user_id,created_at,updated_at"

// GetByID fetches a ticket by id.
func (r *TicketRepo) GetByID(ctx context.Context, id string) (*model.Ticket, error) {
	var t model.Ticket
	err := r.db.QueryRowContext(ctx,
		"SELECT "+ticketColumns+" FROM tickets WHERE id=? LIMIT 1", id).
		Scan(&t.ID, &t.SeatCount, &t.TheaterID, &t.MovieID, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Book inserts the ticket and decrements the theater's seat counter in a
// single transaction. The decrement only applies while at least SeatCount
// seats remain; otherwise the transaction rolls back with
// ErrInsufficientSeats (or ErrTheaterNotFound when the theater vanished).
func (r *TicketRepo) Book(ctx context.Context, t *model.Ticket) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	if err := adjustSeatsTx(ctx, tx, t.TheaterID, t.SeatCount, now); err != nil {
		return err
	}

	t.ID = uuid.New().String()
	t.CreatedAt = now
	t.UpdatedAt = now
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO tickets ("+ticketColumns+") VALUES (?,?,?,?,?,?,?)",
		t.ID, t.SeatCount, t.TheaterID, t.MovieID, t.UserID, t.CreatedAt, t.UpdatedAt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Update replaces the ticket's fields and applies the seat delta to the
// referenced theater within one transaction. A positive delta consumes
// seats and is conditional on availability; a negative delta returns
// seats to the pool.
func (r *TicketRepo) Update(ctx context.Context, t *model.Ticket, seatDelta int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	t.UpdatedAt = now
	res, err := tx.ExecContext(ctx,
		"UPDATE tickets SET seat_count=?, theater_id=?, movie_id=?, updated_at=? WHERE id=?",
		t.SeatCount, t.TheaterID, t.MovieID, t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// updated_at always changes, so zero rows means the ticket is gone
		return ErrTicketNotFound
	}

	if seatDelta != 0 {
		if err := adjustSeatsTx(ctx, tx, t.TheaterID, seatDelta, now); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// adjustSeatsTx moves the theater counter by -delta with a guard that
// keeps it non-negative. The WHERE clause re-checks availability at write
// time, closing the gap between the service layer's read and this write.
func adjustSeatsTx(ctx context.Context, tx *sql.Tx, theaterID string, delta int, now time.Time) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE theaters SET available_seats = available_seats - ?, updated_at=? WHERE id=? AND available_seats >= ?",
		delta, now, theaterID, delta)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM theaters WHERE id=?)", theaterID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrTheaterNotFound
		}
		return ErrInsufficientSeats
	}
	return nil
}

// ListByUser returns the user's tickets, newest first, each enriched with
// snapshots of the referenced theater, movie and user fetched at read
// time. LEFT JOINs keep a ticket in the result when a referenced record
// has been deleted; the corresponding snapshot is simply nil.
func (r *TicketRepo) ListByUser(ctx context.Context, userID string) ([]model.TicketDetail, error) {
	const q = `SELECT t.id, t.seat_count, t.theater_id, t.movie_id, t.user_id, t.created_at, t.updated_at,
	                  th.id, th.name, th.city, th.available_seats, th.created_at, th.updated_at,
	                  m.id, m.name, m.poster, m.genre, m.description, m.languages, m.created_at, m.updated_at,
	                  u.id, u.first_name, u.last_name, u.email_address, u.username, u.contact_number, u.role, u.created_at, u.updated_at
	           FROM tickets t
	           LEFT JOIN theaters th ON th.id = t.theater_id
	           LEFT JOIN movies m ON m.id = t.movie_id
	           LEFT JOIN users u ON u.id = t.user_id
	           WHERE t.user_id = ?
	           ORDER BY t.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]model.TicketDetail, 0)
	for rows.Next() {
		var d model.TicketDetail
		var (
			thID, thName, thCity            sql.NullString
			thSeats                         sql.NullInt64
			thCreated, thUpdated            sql.NullTime
			mID, mName, mPoster, mGenre     sql.NullString
			mDesc, mLangs                   sql.NullString
			mCreated, mUpdated              sql.NullTime
			uID, uFirst, uLast, uEmail      sql.NullString
			uName, uContact, uRole          sql.NullString
			uCreated, uUpdated              sql.NullTime
		)
		if err := rows.Scan(
			&d.ID, &d.SeatCount, &d.TheaterID, &d.MovieID, &d.UserID, &d.CreatedAt, &d.UpdatedAt,
			&thID, &thName, &thCity, &thSeats, &thCreated, &thUpdated,
			&mID, &mName, &mPoster, &mGenre, &mDesc, &mLangs, &mCreated, &mUpdated,
			&uID, &uFirst, &uLast, &uEmail, &uName, &uContact, &uRole, &uCreated, &uUpdated,
		); err != nil {
			return nil, err
		}
		if thID.Valid {
			d.Theater = &model.Theater{
				ID: thID.String, Name: thName.String, City: thCity.String,
				AvailableSeats: int(thSeats.Int64),
				CreatedAt:      thCreated.Time, UpdatedAt: thUpdated.Time,
			}
		}
		if mID.Valid {
			d.Movie = &model.Movie{
				ID: mID.String, Name: mName.String, Poster: mPoster.String,
				Genre: mGenre.String, Description: mDesc.String, Languages: mLangs.String,
				CreatedAt: mCreated.Time, UpdatedAt: mUpdated.Time,
			}
		}
		if uID.Valid {
			d.User = &model.User{
				ID: uID.String, FirstName: uFirst.String, LastName: uLast.String,
				EmailAddress: uEmail.String, Username: uName.String,
				ContactNumber: uContact.String, Role: model.Role(uRole.String),
				CreatedAt: uCreated.Time, UpdatedAt: uUpdated.Time,
			}
		}
		details = append(details, d)
	}
	return details, rows.Err()
}
