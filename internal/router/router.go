package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/movie-ticket-booking/internal/config"
	"github.com/iliyamo/movie-ticket-booking/internal/handler"
	"github.com/iliyamo/movie-ticket-booking/internal/middleware"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// Handlers bundles the handler groups wired in main.
type Handlers struct {
	Auth    *handler.AuthHandler
	Booking *handler.BookingHandler
	Catalog *handler.CatalogHandler
}

// Register wires every route of the API onto the Echo instance. The auth
// group carries the Redis rate limiter; booking routes require the
// customer role and catalog writes require the administrator role, both
// enforced once here at the boundary.
func Register(e *echo.Echo, h Handlers, jwtSecret string, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	// Unauthenticated auth operations, throttled per client IP.
	auth := e.Group("/v1/auth")
	auth.Use(middleware.NewTokenBucket(rlCfg, rdb))
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	// Admin registration requires an existing administrator token.
	adminAuth := e.Group("/v1/auth")
	adminAuth.Use(middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleAdmin))
	adminAuth.POST("/register-admin", h.Auth.RegisterAdmin)

	// Password rotation for any authenticated user.
	me := e.Group("/v1/me")
	me.Use(middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleAdmin, model.RoleCustomer))
	me.PATCH("/password", h.Auth.UpdatePassword)

	// Booking operations are customer-only.
	bookings := e.Group("/v1/bookings")
	bookings.Use(middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleCustomer))
	bookings.POST("", h.Booking.Book)
	bookings.PUT("", h.Booking.Update)
	bookings.GET("", h.Booking.List)

	// Catalog reads are public.
	e.GET("/v1/movies", h.Catalog.ListMovies)
	e.GET("/v1/movies/:id", h.Catalog.GetMovie)
	e.GET("/v1/theaters", h.Catalog.ListTheaters)
	e.GET("/v1/theaters/:id", h.Catalog.GetTheater)

	// Catalog writes are admin-only.
	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleAdmin))
	admin.POST("/movies", h.Catalog.AddMovie)
	admin.DELETE("/movies/:id", h.Catalog.DeleteMovie)
	admin.POST("/theaters", h.Catalog.AddTheater)
	admin.DELETE("/theaters/:id", h.Catalog.DeleteTheater)
}
