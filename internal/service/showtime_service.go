package service

import (
	"context"
	"time"

	"github.com/AmirAbuELHija/popcorn-palace/internal/domain"
	"github.com/AmirAbuELHija/popcorn-palace/internal/dto"
	"github.com/AmirAbuELHija/popcorn-palace/internal/repository"
)

// overlapGrace is the padding applied on both ends of the update-path
// overlap window.
const overlapGrace = 5 * time.Minute

// showtimeService implements the ShowtimeService interface
type showtimeService struct {
	showtimeRepo repository.ShowtimeRepository
	movieRepo    repository.MovieRepository
}

// NewShowtimeService creates a new ShowtimeService
func NewShowtimeService(showtimeRepo repository.ShowtimeRepository, movieRepo repository.MovieRepository) ShowtimeService {
	return &showtimeService{
		showtimeRepo: showtimeRepo,
		movieRepo:    movieRepo,
	}
}

// AddShowtime schedules a showtime. The scheduled slot must be at least
// as long as the movie and at most 10 minutes longer, and may not overlap
// any showtime in the same theater; a shared boundary instant counts as
// overlap on this path.
func (s *showtimeService) AddShowtime(ctx context.Context, req *dto.CreateShowtimeRequest) (*domain.Showtime, error) {
	movie, err := s.movieRepo.GetByID(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	showtime := &domain.Showtime{
		MovieID:   req.MovieID,
		Theater:   req.Theater,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Price:     req.Price,
	}

	if !showtime.EndTime.After(showtime.StartTime) {
		return nil, invalidInput("showtime end time must be after start time")
	}

	durationMinutes := showtime.DurationMinutes()
	if durationMinutes < int64(movie.Duration) {
		return nil, invalidInput("showtime duration cannot be shorter than the movie duration")
	}
	if durationMinutes > int64(movie.Duration)+10 {
		return nil, invalidInput("showtime duration cannot be more than 10 minutes longer than the movie duration")
	}

	overlapping, err := s.showtimeRepo.ExistsOverlapping(ctx, showtime.Theater, showtime.StartTime, showtime.EndTime)
	if err != nil {
		return nil, err
	}
	if overlapping {
		return nil, ErrShowtimeOverlap
	}

	if err := s.showtimeRepo.Create(ctx, showtime); err != nil {
		return nil, err
	}
	return showtime, nil
}

// UpdateShowtime reschedules an existing showtime. The update path is
// deliberately looser than the create path: the duration window opens to
// [movie.duration-5, movie.duration+10], and the overlap check pads the
// candidate interval by 5 minutes on both ends, tests with strict
// inequalities, and excludes the showtime being updated. The two paths
// are independently observable and must not be unified.
func (s *showtimeService) UpdateShowtime(ctx context.Context, id int64, req *dto.UpdateShowtimeRequest) (*domain.Showtime, error) {
	showtime, err := s.showtimeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if showtime == nil {
		return nil, ErrShowtimeNotFound
	}

	movie, err := s.movieRepo.GetByID(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	if !req.EndTime.After(req.StartTime) {
		return nil, invalidInput("showtime end time must be after start time")
	}

	// MovieID and ID are never changed by an update.
	updated := &domain.Showtime{
		ID:        showtime.ID,
		MovieID:   showtime.MovieID,
		Theater:   req.Theater,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Price:     req.Price,
	}

	durationMinutes := updated.DurationMinutes()
	if durationMinutes < int64(movie.Duration)-5 || durationMinutes > int64(movie.Duration)+10 {
		return nil, invalidInput("showtime duration must be within -5 to +10 minutes of the movie duration")
	}

	overlapping, err := s.showtimeRepo.ExistsOverlappingExcluding(
		ctx,
		updated.Theater,
		updated.StartTime.Add(-overlapGrace),
		updated.EndTime.Add(overlapGrace),
		updated.ID,
	)
	if err != nil {
		return nil, err
	}
	if overlapping {
		return nil, ErrShowtimeOverlap
	}

	if err := s.showtimeRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// GetShowtimeByID retrieves a showtime by id
func (s *showtimeService) GetShowtimeByID(ctx context.Context, id int64) (*domain.Showtime, error) {
	showtime, err := s.showtimeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if showtime == nil {
		return nil, ErrShowtimeNotFound
	}
	return showtime, nil
}

// ListShowtimes returns every showtime, an empty slice when there are none
func (s *showtimeService) ListShowtimes(ctx context.Context) ([]*domain.Showtime, error) {
	showtimes, err := s.showtimeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if showtimes == nil {
		showtimes = []*domain.Showtime{}
	}
	return showtimes, nil
}

// DeleteShowtime removes a showtime by id. Bookings referencing it are
// left in place; the reference is weak.
func (s *showtimeService) DeleteShowtime(ctx context.Context, id int64) error {
	showtime, err := s.showtimeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if showtime == nil {
		return ErrShowtimeNotFound
	}
	return s.showtimeRepo.Delete(ctx, id)
}
