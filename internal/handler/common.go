package handler

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"
)

// dbTimeout bounds every store call made from a handler.
const dbTimeout = 5 * time.Second

var errNoUserID = errors.New("missing user_id in context")

// requestContext derives a bounded context from the incoming request.
func requestContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// getUserID extracts the authenticated user's id stored by the JWT
// middleware.
func getUserID(c echo.Context) (string, error) {
	if s, ok := c.Get("user_id").(string); ok && s != "" {
		return s, nil
	}
	return "", errNoUserID
}

// getUsername extracts the authenticated user's display name stored by the
// JWT middleware.
func getUsername(c echo.Context) (string, error) {
	if s, ok := c.Get("username").(string); ok && s != "" {
		return s, nil
	}
	return "", errNoUserID
}
