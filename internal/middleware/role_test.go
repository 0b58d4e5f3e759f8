package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

func invokeWithRole(t *testing.T, mw echo.MiddlewareFunc, role interface{}) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}
	h := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	rec := invokeWithRole(t, RequireRole(model.RoleAdmin), "ADMIN")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleAllowsAnyListedRole(t *testing.T) {
	rec := invokeWithRole(t, RequireRole(model.RoleAdmin, model.RoleCustomer), "CUSTOMER")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	rec := invokeWithRole(t, RequireRole(model.RoleAdmin), "CUSTOMER")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	rec := invokeWithRole(t, RequireRole(model.RoleAdmin), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
