package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// UserRepo persists credential records in the `users` table.
type UserRepo struct{ db *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = "id,first_name,last_name,email_address,username,password_digest,password_salt,contact_number,role,created_at,updated_at"

func scanUser(row *sql.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.EmailAddress, &u.Username,
		&u.PasswordDigest, &u.PasswordSalt, &u.ContactNumber, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByUsername fetches a user by normalized username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	username = strings.TrimSpace(username)
	return scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE username=? LIMIT 1", username))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
}

// ExistsByUsername reports whether a user with the username exists.
func (r *UserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE username=?)", strings.TrimSpace(username)).Scan(&exists)
	return exists, err
}

// Insert stores a new credential record, generating its uuid and
// timestamps. A collision on the username unique index is mapped to
// ErrUsernameExists.
func (r *UserRepo) Insert(ctx context.Context, u *model.User) error {
	now := time.Now().UTC()
	u.ID = uuid.New().String()
	u.CreatedAt = now
	u.UpdatedAt = now
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users ("+userColumns+") VALUES (?,?,?,?,?,?,?,?,?,?,?)",
		u.ID, u.FirstName, u.LastName, u.EmailAddress, u.Username,
		u.PasswordDigest, u.PasswordSalt, u.ContactNumber, u.Role, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		// 1062 = ER_DUP_ENTRY on the username unique index
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrUsernameExists
		}
		return err
	}
	return nil
}

// Replace overwrites the full credential record in a single statement so
// the digest and salt can never be observed half updated.
func (r *UserRepo) Replace(ctx context.Context, u *model.User) error {
	u.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET first_name=?, last_name=?, email_address=?, username=?,
		        password_digest=?, password_salt=?, contact_number=?, role=?, updated_at=?
		 WHERE id=?`,
		u.FirstName, u.LastName, u.EmailAddress, u.Username,
		u.PasswordDigest, u.PasswordSalt, u.ContactNumber, u.Role, u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrUserNotFound
	}
	return nil
}
