package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/service"
)

// CatalogHandler exposes the movie and theater catalog endpoints. Reads
// are public; writes are gated to administrators by middleware.
type CatalogHandler struct {
	Catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog}
}

// ListMovies handles GET /v1/movies.
func (h *CatalogHandler) ListMovies(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()
	return c.JSON(http.StatusOK, h.Catalog.ListMovies(ctx))
}

// GetMovie handles GET /v1/movies/:id.
func (h *CatalogHandler) GetMovie(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()
	m := h.Catalog.GetMovie(ctx, c.Param("id"))
	if m == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	}
	return c.JSON(http.StatusOK, m)
}

// AddMovie handles POST /v1/movies (admin only).
func (h *CatalogHandler) AddMovie(c echo.Context) error {
	var req service.MovieRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	res := h.Catalog.AddMovie(ctx, req)
	if !res.Success {
		return c.JSON(http.StatusBadRequest, res)
	}
	return c.JSON(http.StatusCreated, res)
}

// DeleteMovie handles DELETE /v1/movies/:id (admin only).
func (h *CatalogHandler) DeleteMovie(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()
	res := h.Catalog.DeleteMovie(ctx, c.Param("id"))
	if !res.Success {
		return c.JSON(http.StatusBadRequest, res)
	}
	return c.JSON(http.StatusOK, res)
}

// ListTheaters handles GET /v1/theaters.
func (h *CatalogHandler) ListTheaters(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()
	return c.JSON(http.StatusOK, h.Catalog.ListTheaters(ctx))
}

// GetTheater handles GET /v1/theaters/:id.
func (h *CatalogHandler) GetTheater(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()
	t := h.Catalog.GetTheater(ctx, c.Param("id"))
	if t == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "theater not found"})
	}
	return c.JSON(http.StatusOK, t)
}

// AddTheater handles POST /v1/theaters (admin only).
func (h *CatalogHandler) AddTheater(c echo.Context) error {
	var req service.TheaterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	res := h.Catalog.AddTheater(ctx, req)
	if !res.Success {
		return c.JSON(http.StatusBadRequest, res)
	}
	return c.JSON(http.StatusCreated, res)
}

// DeleteTheater handles DELETE /v1/theaters/:id (admin only).
func (h *CatalogHandler) DeleteTheater(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()
	res := h.Catalog.DeleteTheater(ctx, c.Param("id"))
	if !res.Success {
		return c.JSON(http.StatusBadRequest, res)
	}
	return c.JSON(http.StatusOK, res)
}
