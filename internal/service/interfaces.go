package service

import (
	"context"

	"github.com/AmirAbuELHija/popcorn-palace/internal/domain"
	"github.com/AmirAbuELHija/popcorn-palace/internal/dto"
)

// MovieService defines operations on the movie catalog
type MovieService interface {
	AddMovie(ctx context.Context, req *dto.CreateMovieRequest) (*domain.Movie, error)
	UpdateMovie(ctx context.Context, title string, req *dto.UpdateMovieRequest) (*domain.Movie, error)
	DeleteMovie(ctx context.Context, title string) error
	ListMovies(ctx context.Context) ([]*domain.Movie, error)
}

// ShowtimeService defines operations on the showtime schedule
type ShowtimeService interface {
	AddShowtime(ctx context.Context, req *dto.CreateShowtimeRequest) (*domain.Showtime, error)
	UpdateShowtime(ctx context.Context, id int64, req *dto.UpdateShowtimeRequest) (*domain.Showtime, error)
	GetShowtimeByID(ctx context.Context, id int64) (*domain.Showtime, error)
	ListShowtimes(ctx context.Context) ([]*domain.Showtime, error)
	DeleteShowtime(ctx context.Context, id int64) error
}

// BookingService defines seat booking operations
type BookingService interface {
	BookTicket(ctx context.Context, req *dto.BookTicketRequest) (*domain.Booking, error)
	GetBookingByID(ctx context.Context, id string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id string) error
}
