package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

type fakeMovieStore struct {
	movies  map[string]*model.Movie
	listErr error
}

func (f *fakeMovieStore) GetByID(ctx context.Context, id string) (*model.Movie, error) {
	m, ok := f.movies[id]
	if !ok {
		return nil, repository.ErrMovieNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMovieStore) List(ctx context.Context) ([]model.Movie, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.Movie, 0, len(f.movies))
	for _, m := range f.movies {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMovieStore) Insert(ctx context.Context, m *model.Movie) error {
	if m.ID == "" {
		m.ID = "mv-new"
	}
	f.movies[m.ID] = m
	return nil
}

func (f *fakeMovieStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.movies[id]; !ok {
		return repository.ErrMovieNotFound
	}
	delete(f.movies, id)
	return nil
}

func newCatalogFixture() (*CatalogService, *fakeMovieStore, *fakeTheaterStore) {
	movies := &fakeMovieStore{movies: map[string]*model.Movie{}}
	theaters := &fakeTheaterStore{theaters: map[string]*model.Theater{}}
	return NewCatalogService(movies, theaters), movies, theaters
}

func TestAddMovieRequiresName(t *testing.T) {
	svc, movies, _ := newCatalogFixture()

	res := svc.AddMovie(context.Background(), MovieRequest{})
	assert.False(t, res.Success)
	assert.Empty(t, movies.movies)
}

func TestAddAndGetMovie(t *testing.T) {
	svc, _, _ := newCatalogFixture()

	res := svc.AddMovie(context.Background(), MovieRequest{Name: "Heat", Genre: "Crime"})
	require.True(t, res.Success)
	assert.Equal(t, "Data inserted", res.Message)

	m := svc.GetMovie(context.Background(), "mv-new")
	require.NotNil(t, m)
	assert.Equal(t, "Heat", m.Name)

	assert.Nil(t, svc.GetMovie(context.Background(), "absent"))
}

func TestDeleteMovieNotFound(t *testing.T) {
	svc, _, _ := newCatalogFixture()

	res := svc.DeleteMovie(context.Background(), "absent")
	assert.False(t, res.Success)
	assert.Equal(t, "Movie not found", res.Message)
}

func TestListMoviesDegradesToEmpty(t *testing.T) {
	svc, movies, _ := newCatalogFixture()
	movies.listErr = context.DeadlineExceeded

	out := svc.ListMovies(context.Background())
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestAddTheaterSeedsSeatCounter(t *testing.T) {
	svc, _, theaters := newCatalogFixture()

	res := svc.AddTheater(context.Background(), TheaterRequest{Name: "Grand Hall", City: "Springfield", SeatCount: 120})
	require.True(t, res.Success)

	require.Len(t, theaters.theaters, 1)
	for _, th := range theaters.theaters {
		assert.Equal(t, 120, th.AvailableSeats)
	}
}

func TestAddTheaterRejectsNegativeSeats(t *testing.T) {
	svc, _, theaters := newCatalogFixture()

	res := svc.AddTheater(context.Background(), TheaterRequest{Name: "Grand Hall", SeatCount: -1})
	assert.False(t, res.Success)
	assert.Empty(t, theaters.theaters)
}

func TestDeleteTheaterNotFound(t *testing.T) {
	svc, _, _ := newCatalogFixture()

	res := svc.DeleteTheater(context.Background(), "absent")
	assert.False(t, res.Success)
	assert.Equal(t, "Theater not found", res.Message)
}
