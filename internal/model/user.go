package model

import "time"

// Role is the capability attached to a user account. It is carried as a
// claim in access tokens and checked once at the routing boundary.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// User represents a credential record in the `users` table. The password
// digest and salt are hex encoded and are always written together; neither
// field is ever updated on its own. Both are hidden from JSON output so a
// user snapshot can be embedded in API responses.
type User struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	EmailAddress   string    `json:"email_address"`
	Username       string    `json:"username"`
	PasswordDigest string    `json:"-"`
	PasswordSalt   string    `json:"-"`
	ContactNumber  string    `json:"contact_number"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
