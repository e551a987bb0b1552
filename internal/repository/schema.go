package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateSchema creates the database tables if they do not exist.
// The unique constraints back the service-level pre-checks: concurrent
// writers that slip past a pre-check are stopped here and surfaced as
// ErrDuplicateTitle / ErrDuplicateSeat.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS movies (
			id BIGSERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL UNIQUE,
			genre VARCHAR(100) NOT NULL,
			duration INT NOT NULL,
			rating DOUBLE PRECISION NOT NULL,
			release_year INT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS showtimes (
			id BIGSERIAL PRIMARY KEY,
			movie_id BIGINT NOT NULL,
			theater VARCHAR(255) NOT NULL,
			start_time TIMESTAMPTZ NOT NULL,
			end_time TIMESTAMPTZ NOT NULL,
			price DOUBLE PRECISION NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_showtimes_theater_start
			ON showtimes (theater, start_time);

		CREATE TABLE IF NOT EXISTS bookings (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			showtime_id BIGINT NOT NULL,
			seat_number INT NOT NULL,
			user_id UUID NOT NULL,
			UNIQUE (showtime_id, seat_number)
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create database schema: %w", err)
	}

	return nil
}
