package service

import (
	"context"
	"errors"
	"testing"

	"github.com/AmirAbuELHija/popcorn-palace/internal/domain"
	"github.com/AmirAbuELHija/popcorn-palace/internal/dto"
	"github.com/AmirAbuELHija/popcorn-palace/internal/repository"
)

func TestMovieService_AddMovie(t *testing.T) {
	movieRepo := NewMockMovieRepository()
	svc := NewMovieService(movieRepo)

	ctx := context.Background()

	movie, err := svc.AddMovie(ctx, &dto.CreateMovieRequest{
		Title:       "Inception",
		Genre:       "Sci-Fi",
		Duration:    148,
		Rating:      8.8,
		ReleaseYear: 2010,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movie.ID == 0 {
		t.Error("expected movie to be assigned an id")
	}
	if movie.Title != "Inception" {
		t.Errorf("expected title %q, got %q", "Inception", movie.Title)
	}

	// Same title again must be rejected without creating a second record
	_, err = svc.AddMovie(ctx, &dto.CreateMovieRequest{
		Title:       "Inception",
		Genre:       "Thriller",
		Duration:    120,
		Rating:      7.0,
		ReleaseYear: 2012,
	})
	if !errors.Is(err, ErrMovieTitleTaken) {
		t.Errorf("expected ErrMovieTitleTaken, got %v", err)
	}

	movies, err := svc.ListMovies(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 1 {
		t.Errorf("expected 1 movie, got %d", len(movies))
	}
}

func TestMovieService_AddMovie_ConstraintRace(t *testing.T) {
	// A writer that passes the pre-check but loses the insert race gets
	// the same conflict answer.
	movieRepo := NewMockMovieRepository()
	movieRepo.createErr = repository.ErrDuplicateTitle
	svc := NewMovieService(movieRepo)

	_, err := svc.AddMovie(context.Background(), &dto.CreateMovieRequest{
		Title:       "Dune",
		Genre:       "Sci-Fi",
		Duration:    155,
		Rating:      8.0,
		ReleaseYear: 2021,
	})
	if !errors.Is(err, ErrMovieTitleTaken) {
		t.Errorf("expected ErrMovieTitleTaken, got %v", err)
	}
}

func TestMovieService_UpdateMovie(t *testing.T) {
	movieRepo := NewMockMovieRepository()
	svc := NewMovieService(movieRepo)

	movieRepo.AddMovie(&domain.Movie{
		Title:       "The Matrix",
		Genre:       "Sci-Fi",
		Duration:    136,
		Rating:      8.7,
		ReleaseYear: 1999,
	})

	ctx := context.Background()

	movie, err := svc.UpdateMovie(ctx, "The Matrix", &dto.UpdateMovieRequest{
		Genre:       "Action",
		Duration:    140,
		Rating:      9.0,
		ReleaseYear: 2000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movie.Title != "The Matrix" {
		t.Errorf("title must not change on update, got %q", movie.Title)
	}
	if movie.Genre != "Action" || movie.Duration != 140 || movie.Rating != 9.0 || movie.ReleaseYear != 2000 {
		t.Errorf("expected all fields overwritten, got %+v", movie)
	}

	_, err = svc.UpdateMovie(ctx, "No Such Movie", &dto.UpdateMovieRequest{
		Genre:       "Drama",
		Duration:    90,
		Rating:      5.0,
		ReleaseYear: 2020,
	})
	if !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestMovieService_DeleteMovie(t *testing.T) {
	movieRepo := NewMockMovieRepository()
	svc := NewMovieService(movieRepo)

	movieRepo.AddMovie(&domain.Movie{
		Title:       "Heat",
		Genre:       "Crime",
		Duration:    170,
		Rating:      8.3,
		ReleaseYear: 1995,
	})

	ctx := context.Background()

	if err := svc.DeleteMovie(ctx, "Heat"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	movies, err := svc.ListMovies(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 0 {
		t.Errorf("expected 0 movies after delete, got %d", len(movies))
	}

	if err := svc.DeleteMovie(ctx, "Heat"); !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestMovieService_ListMovies_Empty(t *testing.T) {
	svc := NewMovieService(NewMockMovieRepository())

	movies, err := svc.ListMovies(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movies == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(movies) != 0 {
		t.Errorf("expected 0 movies, got %d", len(movies))
	}
}
