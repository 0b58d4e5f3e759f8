package service

import (
	"context"
	"errors"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
	"github.com/iliyamo/movie-ticket-booking/internal/utils"
)

// AuthService orchestrates login, registration and password rotation.
type AuthService struct {
	users     CredentialStore
	jwtSecret string
}

// NewAuthService constructs an AuthService with its dependencies.
func NewAuthService(users CredentialStore, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret}
}

// RegisterRequest carries the fields a new user supplies at registration.
type RegisterRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	EmailAddress  string `json:"email_address"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	ContactNumber string `json:"contact_number"`
}

// Login verifies the credentials and issues an access token. On success
// the result's Message carries the signed token. An unknown username and
// a wrong password produce distinct messages, matching the established
// API contract.
func (s *AuthService) Login(ctx context.Context, username, password string) model.OperationResult {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.Fail("No user found")
		}
		return model.Fail(err.Error())
	}
	ok, err := utils.VerifyPassword(password, u.PasswordDigest, u.PasswordSalt)
	if err != nil {
		return model.Fail(err.Error())
	}
	if !ok {
		return model.Fail("Password not match")
	}
	token, err := utils.NewAccessToken(s.jwtSecret, u.ID, u.Username, string(u.Role))
	if err != nil {
		return model.Fail(err.Error())
	}
	return model.Ok(token.Token)
}

// CreateUser registers a new credential record. The username is checked
// before inserting; a concurrent registration that slips past the check
// still surfaces as a normal failure result when the insert hits the
// unique index.
func (s *AuthService) CreateUser(ctx context.Context, req RegisterRequest, isAdmin bool) model.OperationResult {
	exists, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return model.Fail(err.Error())
	}
	if exists {
		return model.Fail("Username already exists")
	}

	digest, salt, err := utils.HashPassword(req.Password)
	if err != nil {
		return model.Fail(err.Error())
	}
	role := model.RoleCustomer
	if isAdmin {
		role = model.RoleAdmin
	}
	u := &model.User{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		EmailAddress:   req.EmailAddress,
		Username:       req.Username,
		PasswordDigest: digest,
		PasswordSalt:   salt,
		ContactNumber:  req.ContactNumber,
		Role:           role,
	}
	if err := s.users.Insert(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return model.Fail("Username already exists")
		}
		return model.Fail(err.Error())
	}
	return model.Ok("Data inserted")
}

// RotatePassword replaces the user's digest and salt after verifying the
// old password and the new-password confirmation, in that order. Each
// failed step short-circuits; the credential record is replaced as a
// whole, never field by field.
func (s *AuthService) RotatePassword(ctx context.Context, oldPassword, newPassword, confirmPassword, username string) model.OperationResult {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.Fail("User not found.")
		}
		return model.Fail(err.Error())
	}
	ok, err := utils.VerifyPassword(oldPassword, u.PasswordDigest, u.PasswordSalt)
	if err != nil {
		return model.Fail(err.Error())
	}
	if !ok {
		return model.Fail("Old password does not match")
	}
	if newPassword != confirmPassword {
		return model.Fail("New password and confirm password do not match")
	}

	digest, salt, err := utils.HashPassword(newPassword)
	if err != nil {
		return model.Fail(err.Error())
	}
	u.PasswordDigest = digest
	u.PasswordSalt = salt
	if err := s.users.Replace(ctx, u); err != nil {
		return model.Fail(err.Error())
	}
	return model.Ok("Password updated")
}
