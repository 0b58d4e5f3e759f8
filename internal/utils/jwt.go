package utils // package utils provides helper functions for token creation and hashing

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Access tokens are valid for exactly 24 hours from issuance.
const accessTokenTTL = 24 * time.Hour

// AccessToken represents a signed JWT along with its expiry. The token is
// self contained: validating it later requires only the signature and the
// expiry claim, no server-side session state.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a user. The claims are
// the user ID (sub), the display name (name), the role and the standard
// exp/iat timestamps. A signing failure is returned to the caller; a
// missing secret is already rejected as fatal misconfiguration at startup.
func NewAccessToken(secret, userID, username, role string) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(accessTokenTTL)
	claims := jwt.MapClaims{
		"sub":  userID,
		"name": username,
		"role": role,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}
