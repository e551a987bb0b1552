package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/AmirAbuELHija/popcorn-palace/internal/domain"
	"github.com/AmirAbuELHija/popcorn-palace/pkg/telemetry"
)

// PostgresBookingRepository implements BookingRepository using PostgreSQL
type PostgresBookingRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBookingRepository creates a new PostgresBookingRepository
func NewPostgresBookingRepository(pool *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{pool: pool}
}

// Create inserts a new booking. The id is generated by the database
// (gen_random_uuid) and assigned back to the booking. A unique violation
// on (showtime_id, seat_number) surfaces as ErrDuplicateSeat.
func (r *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.booking.create")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("showtime_id", booking.ShowtimeID),
		attribute.Int("seat_number", booking.SeatNumber),
		attribute.String("user_id", booking.UserID),
	)

	query := `
		INSERT INTO bookings (showtime_id, seat_number, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		booking.ShowtimeID,
		booking.SeatNumber,
		booking.UserID,
	).Scan(&booking.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if isUniqueViolation(err) {
			return ErrDuplicateSeat
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// GetByID retrieves a booking by its id
func (r *PostgresBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `
		SELECT id, showtime_id, seat_number, user_id
		FROM bookings
		WHERE id = $1
	`
	booking := &domain.Booking{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.ShowtimeID,
		&booking.SeatNumber,
		&booking.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

// ExistsByShowtimeAndSeat reports whether a booking exists for the seat
func (r *PostgresBookingRepository) ExistsByShowtimeAndSeat(ctx context.Context, showtimeID int64, seatNumber int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE showtime_id = $1 AND seat_number = $2
		)
	`
	var exists bool
	err := r.pool.QueryRow(ctx, query, showtimeID, seatNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check seat booking: %w", err)
	}
	return exists, nil
}

// Delete removes a booking by id
func (r *PostgresBookingRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM bookings WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}
