package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AmirAbuELHija/popcorn-palace/internal/domain"
)

// PostgresShowtimeRepository implements ShowtimeRepository using PostgreSQL
type PostgresShowtimeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresShowtimeRepository creates a new PostgresShowtimeRepository
func NewPostgresShowtimeRepository(pool *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{pool: pool}
}

// Create inserts a new showtime and assigns the generated id
func (r *PostgresShowtimeRepository) Create(ctx context.Context, showtime *domain.Showtime) error {
	query := `
		INSERT INTO showtimes (movie_id, theater, start_time, end_time, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		showtime.MovieID,
		showtime.Theater,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Price,
	).Scan(&showtime.ID)
	if err != nil {
		return fmt.Errorf("failed to create showtime: %w", err)
	}
	return nil
}

// GetByID retrieves a showtime by id
func (r *PostgresShowtimeRepository) GetByID(ctx context.Context, id int64) (*domain.Showtime, error) {
	query := `
		SELECT id, movie_id, theater, start_time, end_time, price
		FROM showtimes
		WHERE id = $1
	`
	showtime := &domain.Showtime{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.Theater,
		&showtime.StartTime,
		&showtime.EndTime,
		&showtime.Price,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get showtime: %w", err)
	}
	return showtime, nil
}

// List returns all showtimes ordered by start time
func (r *PostgresShowtimeRepository) List(ctx context.Context) ([]*domain.Showtime, error) {
	query := `
		SELECT id, movie_id, theater, start_time, end_time, price
		FROM showtimes
		ORDER BY start_time ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list showtimes: %w", err)
	}
	defer rows.Close()

	var showtimes []*domain.Showtime
	for rows.Next() {
		showtime := &domain.Showtime{}
		err := rows.Scan(
			&showtime.ID,
			&showtime.MovieID,
			&showtime.Theater,
			&showtime.StartTime,
			&showtime.EndTime,
			&showtime.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan showtime: %w", err)
		}
		showtimes = append(showtimes, showtime)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list showtimes: %w", err)
	}
	return showtimes, nil
}

// Update overwrites a showtime's mutable fields by id
func (r *PostgresShowtimeRepository) Update(ctx context.Context, showtime *domain.Showtime) error {
	query := `
		UPDATE showtimes
		SET theater = $2, start_time = $3, end_time = $4, price = $5
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		showtime.ID,
		showtime.Theater,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Price,
	)
	if err != nil {
		return fmt.Errorf("failed to update showtime: %w", err)
	}
	return nil
}

// Delete removes a showtime by id
func (r *PostgresShowtimeRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM showtimes WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete showtime: %w", err)
	}
	return nil
}

// ExistsOverlapping reports whether any showtime in the theater overlaps
// [start, end] under the create-path test: a shared boundary instant
// counts as overlap.
func (r *PostgresShowtimeRepository) ExistsOverlapping(ctx context.Context, theater string, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM showtimes
			WHERE theater = $1
			AND (
				($2 BETWEEN start_time AND end_time)
				OR ($3 BETWEEN start_time AND end_time)
				OR (start_time BETWEEN $2 AND $3)
			)
		)
	`
	var exists bool
	err := r.pool.QueryRow(ctx, query, theater, start, end).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check showtime overlap: %w", err)
	}
	return exists, nil
}

// ExistsOverlappingExcluding reports whether any showtime other than
// excludeID overlaps (start, end) in the theater under strict
// inequalities. The caller supplies any grace padding in start/end.
func (r *PostgresShowtimeRepository) ExistsOverlappingExcluding(ctx context.Context, theater string, start, end time.Time, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM showtimes
			WHERE theater = $1
			AND id <> $4
			AND start_time < $3
			AND end_time > $2
		)
	`
	var exists bool
	err := r.pool.QueryRow(ctx, query, theater, start, end, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check showtime overlap: %w", err)
	}
	return exists, nil
}
