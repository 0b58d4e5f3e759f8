package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/service"
)

// AuthHandler exposes registration, login and password rotation endpoints.
type AuthHandler struct {
	Auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type passwordUpdateReq struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Register creates a customer account.
func (h *AuthHandler) Register(c echo.Context) error {
	return h.register(c, false)
}

// RegisterAdmin creates an administrator account. The route is gated to
// existing administrators.
func (h *AuthHandler) RegisterAdmin(c echo.Context) error {
	return h.register(c, true)
}

func (h *AuthHandler) register(c echo.Context, isAdmin bool) error {
	var req service.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	res := h.Auth.CreateUser(ctx, req, isAdmin)
	if !res.Success {
		return c.JSON(http.StatusBadRequest, res)
	}
	return c.JSON(http.StatusCreated, res)
}

// Login verifies credentials and returns the access token in the result
// message.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	res := h.Auth.Login(ctx, req.Username, req.Password)
	if !res.Success {
		return c.JSON(http.StatusUnauthorized, res)
	}
	return c.JSON(http.StatusOK, res)
}

// UpdatePassword rotates the authenticated user's password. The username
// comes from the verified token, never from the request body.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	username, err := getUsername(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req passwordUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	res := h.Auth.RotatePassword(ctx, req.OldPassword, req.NewPassword, req.ConfirmPassword, username)
	if !res.Success {
		return c.JSON(http.StatusBadRequest, res)
	}
	return c.JSON(http.StatusOK, res)
}
