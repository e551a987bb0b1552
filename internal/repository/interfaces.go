package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AmirAbuELHija/popcorn-palace/internal/domain"
)

// Sentinel errors surfaced when the storage layer's uniqueness
// constraints fire. Services translate these into Conflict results, so a
// request losing a check-then-insert race gets the same answer as one
// caught by the pre-check.
var (
	ErrDuplicateTitle = errors.New("movie title already exists")
	ErrDuplicateSeat  = errors.New("seat already booked for this showtime")
)

// MovieRepository defines data access for movies.
// Lookups return (nil, nil) when no row matches.
type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	GetByID(ctx context.Context, id int64) (*domain.Movie, error)
	GetByTitle(ctx context.Context, title string) (*domain.Movie, error)
	List(ctx context.Context) ([]*domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id int64) error
}

// ShowtimeRepository defines data access for showtimes. The two overlap
// checks intentionally use different predicates: the create path counts
// touching boundaries as overlap, the update path uses strict
// inequalities over a window the caller has already padded.
type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *domain.Showtime) error
	GetByID(ctx context.Context, id int64) (*domain.Showtime, error)
	List(ctx context.Context) ([]*domain.Showtime, error)
	Update(ctx context.Context, showtime *domain.Showtime) error
	Delete(ctx context.Context, id int64) error
	ExistsOverlapping(ctx context.Context, theater string, start, end time.Time) (bool, error)
	ExistsOverlappingExcluding(ctx context.Context, theater string, start, end time.Time, excludeID int64) (bool, error)
}

// BookingRepository defines data access for bookings
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ExistsByShowtimeAndSeat(ctx context.Context, showtimeID int64, seatNumber int) (bool, error)
	Delete(ctx context.Context, id string) error
}
