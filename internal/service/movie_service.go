package service

import (
	"context"
	"errors"

	"github.com/AmirAbuELHija/popcorn-palace/internal/domain"
	"github.com/AmirAbuELHija/popcorn-palace/internal/dto"
	"github.com/AmirAbuELHija/popcorn-palace/internal/repository"
)

// movieService implements the MovieService interface
type movieService struct {
	movieRepo repository.MovieRepository
}

// NewMovieService creates a new MovieService
func NewMovieService(movieRepo repository.MovieRepository) MovieService {
	return &movieService{movieRepo: movieRepo}
}

// AddMovie adds a movie to the catalog. Titles are unique: a duplicate
// fails with ErrMovieTitleTaken and never creates a second record.
func (s *movieService) AddMovie(ctx context.Context, req *dto.CreateMovieRequest) (*domain.Movie, error) {
	existing, err := s.movieRepo.GetByTitle(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMovieTitleTaken
	}

	movie := &domain.Movie{
		Title:       req.Title,
		Genre:       req.Genre,
		Duration:    req.Duration,
		Rating:      req.Rating,
		ReleaseYear: req.ReleaseYear,
	}
	if err := s.movieRepo.Create(ctx, movie); err != nil {
		// The unique index is the authority when two adds race.
		if errors.Is(err, repository.ErrDuplicateTitle) {
			return nil, ErrMovieTitleTaken
		}
		return nil, err
	}
	return movie, nil
}

// UpdateMovie overwrites every field but title and id for the movie with
// the given title
func (s *movieService) UpdateMovie(ctx context.Context, title string, req *dto.UpdateMovieRequest) (*domain.Movie, error) {
	movie, err := s.movieRepo.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	movie.Genre = req.Genre
	movie.Duration = req.Duration
	movie.Rating = req.Rating
	movie.ReleaseYear = req.ReleaseYear

	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// DeleteMovie removes a movie by title. Showtimes referencing the movie
// are left in place; the reference is weak.
func (s *movieService) DeleteMovie(ctx context.Context, title string) error {
	movie, err := s.movieRepo.GetByTitle(ctx, title)
	if err != nil {
		return err
	}
	if movie == nil {
		return ErrMovieNotFound
	}
	return s.movieRepo.Delete(ctx, movie.ID)
}

// ListMovies returns every movie in the catalog, an empty slice when
// there are none
func (s *movieService) ListMovies(ctx context.Context) ([]*domain.Movie, error) {
	movies, err := s.movieRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []*domain.Movie{}
	}
	return movies, nil
}
