package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/AmirAbuELHija/popcorn-palace/internal/clock"
	"github.com/AmirAbuELHija/popcorn-palace/internal/domain"
	"github.com/AmirAbuELHija/popcorn-palace/internal/dto"
	"github.com/AmirAbuELHija/popcorn-palace/internal/repository"
)

// bookingService implements the BookingService interface
type bookingService struct {
	bookingRepo  repository.BookingRepository
	showtimeRepo repository.ShowtimeRepository
	clock        clock.Clock
}

// NewBookingService creates a new BookingService
func NewBookingService(bookingRepo repository.BookingRepository, showtimeRepo repository.ShowtimeRepository, clk clock.Clock) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		showtimeRepo: showtimeRepo,
		clock:        clk,
	}
}

// BookTicket books a seat for a showtime. The (showtime, seat) pair is
// unique among bookings; the pre-check gives the common case a friendly
// answer and the storage constraint decides races.
func (s *bookingService) BookTicket(ctx context.Context, req *dto.BookTicketRequest) (*domain.Booking, error) {
	if _, err := uuid.Parse(req.UserID); err != nil {
		return nil, invalidInput("invalid UUID format for userId: %s", req.UserID)
	}

	showtime, err := s.showtimeRepo.GetByID(ctx, req.ShowtimeID)
	if err != nil {
		return nil, err
	}
	if showtime == nil {
		return nil, ErrShowtimeNotFound
	}

	if showtime.StartTime.Before(s.clock.Now()) {
		return nil, invalidInput("cannot book a seat for a past showtime")
	}

	taken, err := s.bookingRepo.ExistsByShowtimeAndSeat(ctx, req.ShowtimeID, req.SeatNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSeatTaken
	}

	booking := &domain.Booking{
		ShowtimeID: req.ShowtimeID,
		SeatNumber: req.SeatNumber,
		UserID:     req.UserID,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrDuplicateSeat) {
			return nil, ErrSeatTaken
		}
		return nil, err
	}
	return booking, nil
}

// GetBookingByID retrieves a booking by id
func (s *bookingService) GetBookingByID(ctx context.Context, id string) (*domain.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, invalidInput("invalid UUID format for bookingId: %s", id)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// CancelBooking removes a booking by id
func (s *bookingService) CancelBooking(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return invalidInput("invalid UUID format for bookingId: %s", id)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	return s.bookingRepo.Delete(ctx, id)
}
