package di

import (
	"github.com/AmirAbuELHija/popcorn-palace/internal/clock"
	"github.com/AmirAbuELHija/popcorn-palace/internal/handler"
	"github.com/AmirAbuELHija/popcorn-palace/internal/repository"
	"github.com/AmirAbuELHija/popcorn-palace/internal/service"
	"github.com/AmirAbuELHija/popcorn-palace/pkg/database"
	"github.com/AmirAbuELHija/popcorn-palace/pkg/redis"
)

// Container holds all dependencies for the booking API
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Repositories
	MovieRepo    repository.MovieRepository
	ShowtimeRepo repository.ShowtimeRepository
	BookingRepo  repository.BookingRepository

	// Services
	MovieService    service.MovieService
	ShowtimeService service.ShowtimeService
	BookingService  service.BookingService

	// Handlers
	HealthHandler   *handler.HealthHandler
	MovieHandler    *handler.MovieHandler
	ShowtimeHandler *handler.ShowtimeHandler
	BookingHandler  *handler.BookingHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB    *database.PostgresDB
	Redis *redis.Client
	Clock clock.Clock
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Redis: cfg.Redis,
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.Real{}
	}

	// Initialize repositories. Redis is used for rate limiting and
	// readiness checks only; reads and writes always hit Postgres.
	c.MovieRepo = repository.NewPostgresMovieRepository(c.DB.Pool())
	c.ShowtimeRepo = repository.NewPostgresShowtimeRepository(c.DB.Pool())
	c.BookingRepo = repository.NewPostgresBookingRepository(c.DB.Pool())

	// Initialize services
	c.MovieService = service.NewMovieService(c.MovieRepo)
	c.ShowtimeService = service.NewShowtimeService(c.ShowtimeRepo, c.MovieRepo)
	c.BookingService = service.NewBookingService(c.BookingRepo, c.ShowtimeRepo, clk)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.MovieHandler = handler.NewMovieHandler(c.MovieService)
	c.ShowtimeHandler = handler.NewShowtimeHandler(c.ShowtimeService)
	c.BookingHandler = handler.NewBookingHandler(c.BookingService)

	return c
}
