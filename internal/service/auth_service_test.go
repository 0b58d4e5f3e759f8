package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
	"github.com/iliyamo/movie-ticket-booking/internal/utils"
)

type mockCredentialStore struct {
	getByUsername    func(ctx context.Context, username string) (*model.User, error)
	existsByUsername func(ctx context.Context, username string) (bool, error)
	insert           func(ctx context.Context, u *model.User) error
	replace          func(ctx context.Context, u *model.User) error
}

func (m *mockCredentialStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return m.getByUsername(ctx, username)
}

func (m *mockCredentialStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return m.existsByUsername(ctx, username)
}

func (m *mockCredentialStore) Insert(ctx context.Context, u *model.User) error {
	return m.insert(ctx, u)
}

func (m *mockCredentialStore) Replace(ctx context.Context, u *model.User) error {
	return m.replace(ctx, u)
}

func userWithPassword(t *testing.T, username, password string) *model.User {
	t.Helper()
	digest, salt, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &model.User{
		ID:             "user-1",
		Username:       username,
		PasswordDigest: digest,
		PasswordSalt:   salt,
		Role:           model.RoleCustomer,
	}
}

func TestLoginUnknownUser(t *testing.T) {
	store := &mockCredentialStore{
		getByUsername: func(ctx context.Context, username string) (*model.User, error) {
			return nil, repository.ErrUserNotFound
		},
	}
	svc := NewAuthService(store, "secret")

	res := svc.Login(context.Background(), "ghost", "whatever")
	assert.False(t, res.Success)
	assert.Equal(t, "No user found", res.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	u := userWithPassword(t, "alice", "correct-horse")
	store := &mockCredentialStore{
		getByUsername: func(ctx context.Context, username string) (*model.User, error) {
			return u, nil
		},
	}
	svc := NewAuthService(store, "secret")

	res := svc.Login(context.Background(), "alice", "battery-staple")
	assert.False(t, res.Success)
	assert.Equal(t, "Password not match", res.Message)
}

func TestLoginIssuesToken(t *testing.T) {
	u := userWithPassword(t, "alice", "correct-horse")
	store := &mockCredentialStore{
		getByUsername: func(ctx context.Context, username string) (*model.User, error) {
			return u, nil
		},
	}
	svc := NewAuthService(store, "secret")

	res := svc.Login(context.Background(), "alice", "correct-horse")
	require.True(t, res.Success)
	require.NotEmpty(t, res.Message)

	parsed, err := jwt.Parse(res.Message, func(tk *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "alice", claims["name"])
	assert.Equal(t, "CUSTOMER", claims["role"])
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	store := &mockCredentialStore{
		existsByUsername: func(ctx context.Context, username string) (bool, error) {
			return true, nil
		},
	}
	svc := NewAuthService(store, "secret")

	res := svc.CreateUser(context.Background(), RegisterRequest{Username: "alice", Password: "pw"}, false)
	assert.False(t, res.Success)
	assert.Equal(t, "Username already exists", res.Message)
}

func TestCreateUserDuplicateLosesInsertRace(t *testing.T) {
	store := &mockCredentialStore{
		existsByUsername: func(ctx context.Context, username string) (bool, error) {
			return false, nil
		},
		insert: func(ctx context.Context, u *model.User) error {
			return repository.ErrUsernameExists
		},
	}
	svc := NewAuthService(store, "secret")

	res := svc.CreateUser(context.Background(), RegisterRequest{Username: "alice", Password: "pw"}, false)
	assert.False(t, res.Success)
	assert.Equal(t, "Username already exists", res.Message)
}

func TestCreateUserHashesPasswordAndAssignsRole(t *testing.T) {
	var inserted *model.User
	store := &mockCredentialStore{
		existsByUsername: func(ctx context.Context, username string) (bool, error) {
			return false, nil
		},
		insert: func(ctx context.Context, u *model.User) error {
			inserted = u
			return nil
		},
	}
	svc := NewAuthService(store, "secret")

	res := svc.CreateUser(context.Background(), RegisterRequest{Username: "alice", Password: "pw"}, false)
	require.True(t, res.Success)
	assert.Equal(t, "Data inserted", res.Message)

	require.NotNil(t, inserted)
	assert.Equal(t, model.RoleCustomer, inserted.Role)
	assert.NotEqual(t, "pw", inserted.PasswordDigest)
	ok, err := utils.VerifyPassword("pw", inserted.PasswordDigest, inserted.PasswordSalt)
	require.NoError(t, err)
	assert.True(t, ok)

	res = svc.CreateUser(context.Background(), RegisterRequest{Username: "boss", Password: "pw"}, true)
	require.True(t, res.Success)
	assert.Equal(t, model.RoleAdmin, inserted.Role)
}

func TestRotatePasswordUnknownUser(t *testing.T) {
	store := &mockCredentialStore{
		getByUsername: func(ctx context.Context, username string) (*model.User, error) {
			return nil, repository.ErrUserNotFound
		},
	}
	svc := NewAuthService(store, "secret")

	res := svc.RotatePassword(context.Background(), "old", "new", "new", "ghost")
	assert.False(t, res.Success)
	assert.Equal(t, "User not found.", res.Message)
}

func TestRotatePasswordWrongOldPassword(t *testing.T) {
	u := userWithPassword(t, "alice", "old-pass")
	replaced := false
	store := &mockCredentialStore{
		getByUsername: func(ctx context.Context, username string) (*model.User, error) {
			return u, nil
		},
		replace: func(ctx context.Context, u *model.User) error {
			replaced = true
			return nil
		},
	}
	svc := NewAuthService(store, "secret")

	res := svc.RotatePassword(context.Background(), "not-old-pass", "new", "new", "alice")
	assert.False(t, res.Success)
	assert.Equal(t, "Old password does not match", res.Message)
	assert.False(t, replaced, "credentials must not be replaced on a failed check")
}

func TestRotatePasswordConfirmMismatch(t *testing.T) {
	u := userWithPassword(t, "alice", "old-pass")
	store := &mockCredentialStore{
		getByUsername: func(ctx context.Context, username string) (*model.User, error) {
			return u, nil
		},
	}
	svc := NewAuthService(store, "secret")

	res := svc.RotatePassword(context.Background(), "old-pass", "new", "different", "alice")
	assert.False(t, res.Success)
	assert.Equal(t, "New password and confirm password do not match", res.Message)
}

func TestRotatePasswordReplacesDigestAndSalt(t *testing.T) {
	u := userWithPassword(t, "alice", "old-pass")
	oldSalt := u.PasswordSalt
	var replaced *model.User
	store := &mockCredentialStore{
		getByUsername: func(ctx context.Context, username string) (*model.User, error) {
			return u, nil
		},
		replace: func(ctx context.Context, u *model.User) error {
			replaced = u
			return nil
		},
	}
	svc := NewAuthService(store, "secret")

	res := svc.RotatePassword(context.Background(), "old-pass", "new-pass", "new-pass", "alice")
	require.True(t, res.Success)
	assert.Equal(t, "Password updated", res.Message)

	require.NotNil(t, replaced)
	assert.NotEqual(t, oldSalt, replaced.PasswordSalt, "rotation must mint a fresh salt")
	ok, err := utils.VerifyPassword("new-pass", replaced.PasswordDigest, replaced.PasswordSalt)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = utils.VerifyPassword("old-pass", replaced.PasswordDigest, replaced.PasswordSalt)
	require.NoError(t, err)
	assert.False(t, ok)
}
