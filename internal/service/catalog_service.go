package service

import (
	"context"
	"errors"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

// CatalogService manages the movie and theater catalogs. These are thin
// CRUD operations; the only invariant is existence on delete.
type CatalogService struct {
	movies   MovieStore
	theaters TheaterStore
}

func NewCatalogService(movies MovieStore, theaters TheaterStore) *CatalogService {
	return &CatalogService{movies: movies, theaters: theaters}
}

// MovieRequest is the payload for creating a movie.
type MovieRequest struct {
	Name        string `json:"name"`
	Poster      string `json:"poster"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	Languages   string `json:"languages"`
}

// TheaterRequest is the payload for creating a theater. SeatCount becomes
// the initial available-seat counter.
type TheaterRequest struct {
	Name      string `json:"name"`
	City      string `json:"city"`
	SeatCount int    `json:"seat_count"`
}

// ListMovies returns all movies; a store fault degrades to an empty list.
func (s *CatalogService) ListMovies(ctx context.Context) []model.Movie {
	movies, err := s.movies.List(ctx)
	if err != nil {
		return []model.Movie{}
	}
	return movies
}

// GetMovie returns a single movie or nil when absent.
func (s *CatalogService) GetMovie(ctx context.Context, id string) *model.Movie {
	m, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil
	}
	return m
}

// AddMovie inserts a new catalog entry.
func (s *CatalogService) AddMovie(ctx context.Context, req MovieRequest) model.OperationResult {
	if req.Name == "" {
		return model.Fail("Movie name is required")
	}
	m := &model.Movie{
		Name:        req.Name,
		Poster:      req.Poster,
		Genre:       req.Genre,
		Description: req.Description,
		Languages:   req.Languages,
	}
	if err := s.movies.Insert(ctx, m); err != nil {
		return model.Fail(err.Error())
	}
	return model.Ok("Data inserted")
}

// DeleteMovie removes a movie by id.
func (s *CatalogService) DeleteMovie(ctx context.Context, id string) model.OperationResult {
	if err := s.movies.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return model.Fail("Movie not found")
		}
		return model.Fail(err.Error())
	}
	return model.Ok("Data deleted")
}

// ListTheaters returns all theaters; a store fault degrades to an empty list.
func (s *CatalogService) ListTheaters(ctx context.Context) []model.Theater {
	theaters, err := s.theaters.List(ctx)
	if err != nil {
		return []model.Theater{}
	}
	return theaters
}

// GetTheater returns a single theater or nil when absent.
func (s *CatalogService) GetTheater(ctx context.Context, id string) *model.Theater {
	t, err := s.theaters.GetByID(ctx, id)
	if err != nil {
		return nil
	}
	return t
}

// AddTheater inserts a new theater with its initial seat inventory.
func (s *CatalogService) AddTheater(ctx context.Context, req TheaterRequest) model.OperationResult {
	if req.Name == "" {
		return model.Fail("Theater name is required")
	}
	if req.SeatCount < 0 {
		return model.Fail("Seat count cannot be negative")
	}
	t := &model.Theater{
		Name:           req.Name,
		City:           req.City,
		AvailableSeats: req.SeatCount,
	}
	if err := s.theaters.Insert(ctx, t); err != nil {
		return model.Fail(err.Error())
	}
	return model.Ok("Data inserted")
}

// DeleteTheater removes a theater by id.
func (s *CatalogService) DeleteTheater(ctx context.Context, id string) model.OperationResult {
	if err := s.theaters.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTheaterNotFound) {
			return model.Fail("Theater not found")
		}
		return model.Fail(err.Error())
	}
	return model.Ok("Data deleted")
}
