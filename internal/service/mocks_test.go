package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/AmirAbuELHija/popcorn-palace/internal/domain"
	"github.com/AmirAbuELHija/popcorn-palace/internal/repository"
)

// MockMovieRepository is a mock implementation of MovieRepository
type MockMovieRepository struct {
	movies    map[int64]*domain.Movie
	titleToID map[string]int64
	nextID    int64
	createErr error
	updateErr error
	deleteErr error
}

func NewMockMovieRepository() *MockMovieRepository {
	return &MockMovieRepository{
		movies:    make(map[int64]*domain.Movie),
		titleToID: make(map[string]int64),
	}
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.titleToID[movie.Title]; ok {
		return repository.ErrDuplicateTitle
	}
	m.nextID++
	movie.ID = m.nextID
	m.movies[movie.ID] = movie
	m.titleToID[movie.Title] = movie.ID
	return nil
}

func (m *MockMovieRepository) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	movie, ok := m.movies[id]
	if !ok {
		return nil, nil
	}
	return movie, nil
}

func (m *MockMovieRepository) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	id, ok := m.titleToID[title]
	if !ok {
		return nil, nil
	}
	return m.movies[id], nil
}

func (m *MockMovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	var movies []*domain.Movie
	for _, movie := range m.movies {
		movies = append(movies, movie)
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
	return movies, nil
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.movies[movie.ID] = movie
	return nil
}

func (m *MockMovieRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if movie, ok := m.movies[id]; ok {
		delete(m.titleToID, movie.Title)
		delete(m.movies, id)
	}
	return nil
}

// AddMovie seeds a movie directly
func (m *MockMovieRepository) AddMovie(movie *domain.Movie) {
	if movie.ID == 0 {
		m.nextID++
		movie.ID = m.nextID
	} else if movie.ID > m.nextID {
		m.nextID = movie.ID
	}
	m.movies[movie.ID] = movie
	m.titleToID[movie.Title] = movie.ID
}

// MockShowtimeRepository is a mock implementation of ShowtimeRepository
type MockShowtimeRepository struct {
	showtimes map[int64]*domain.Showtime
	nextID    int64
	createErr error
	updateErr error
	deleteErr error
}

func NewMockShowtimeRepository() *MockShowtimeRepository {
	return &MockShowtimeRepository{
		showtimes: make(map[int64]*domain.Showtime),
	}
}

func (m *MockShowtimeRepository) Create(ctx context.Context, showtime *domain.Showtime) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	showtime.ID = m.nextID
	m.showtimes[showtime.ID] = showtime
	return nil
}

func (m *MockShowtimeRepository) GetByID(ctx context.Context, id int64) (*domain.Showtime, error) {
	showtime, ok := m.showtimes[id]
	if !ok {
		return nil, nil
	}
	return showtime, nil
}

func (m *MockShowtimeRepository) List(ctx context.Context) ([]*domain.Showtime, error) {
	var showtimes []*domain.Showtime
	for _, showtime := range m.showtimes {
		showtimes = append(showtimes, showtime)
	}
	sort.Slice(showtimes, func(i, j int) bool { return showtimes[i].ID < showtimes[j].ID })
	return showtimes, nil
}

func (m *MockShowtimeRepository) Update(ctx context.Context, showtime *domain.Showtime) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.showtimes[showtime.ID] = showtime
	return nil
}

func (m *MockShowtimeRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.showtimes, id)
	return nil
}

// ExistsOverlapping mirrors the inclusive boundary test of the create
// path: a showtime sharing only an endpoint with the candidate counts.
func (m *MockShowtimeRepository) ExistsOverlapping(ctx context.Context, theater string, start, end time.Time) (bool, error) {
	between := func(x, lo, hi time.Time) bool {
		return !x.Before(lo) && !x.After(hi)
	}
	for _, s := range m.showtimes {
		if s.Theater != theater {
			continue
		}
		if between(start, s.StartTime, s.EndTime) ||
			between(end, s.StartTime, s.EndTime) ||
			between(s.StartTime, start, end) {
			return true, nil
		}
	}
	return false, nil
}

// ExistsOverlappingExcluding mirrors the strict interval test of the
// update path over the caller-padded window.
func (m *MockShowtimeRepository) ExistsOverlappingExcluding(ctx context.Context, theater string, start, end time.Time, excludeID int64) (bool, error) {
	for _, s := range m.showtimes {
		if s.ID == excludeID || s.Theater != theater {
			continue
		}
		if s.StartTime.Before(end) && s.EndTime.After(start) {
			return true, nil
		}
	}
	return false, nil
}

// AddShowtime seeds a showtime directly
func (m *MockShowtimeRepository) AddShowtime(showtime *domain.Showtime) {
	if showtime.ID == 0 {
		m.nextID++
		showtime.ID = m.nextID
	} else if showtime.ID > m.nextID {
		m.nextID = showtime.ID
	}
	m.showtimes[showtime.ID] = showtime
}

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	bookings  map[string]*domain.Booking
	seats     map[string]bool
	createErr error
	deleteErr error
}

func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		bookings: make(map[string]*domain.Booking),
		seats:    make(map[string]bool),
	}
}

func seatKey(showtimeID int64, seatNumber int) string {
	return fmt.Sprintf("%d:%d", showtimeID, seatNumber)
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if m.createErr != nil {
		return m.createErr
	}
	key := seatKey(booking.ShowtimeID, booking.SeatNumber)
	if m.seats[key] {
		return repository.ErrDuplicateSeat
	}
	booking.ID = uuid.NewString()
	m.bookings[booking.ID] = booking
	m.seats[key] = true
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	booking, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	return booking, nil
}

func (m *MockBookingRepository) ExistsByShowtimeAndSeat(ctx context.Context, showtimeID int64, seatNumber int) (bool, error) {
	return m.seats[seatKey(showtimeID, seatNumber)], nil
}

func (m *MockBookingRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if booking, ok := m.bookings[id]; ok {
		delete(m.seats, seatKey(booking.ShowtimeID, booking.SeatNumber))
		delete(m.bookings, id)
	}
	return nil
}
