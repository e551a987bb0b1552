package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AmirAbuELHija/popcorn-palace/internal/dto"
	"github.com/AmirAbuELHija/popcorn-palace/internal/service"
	"github.com/AmirAbuELHija/popcorn-palace/pkg/response"
)

// MovieHandler handles movie-related HTTP requests
type MovieHandler struct {
	movieService service.MovieService
}

// NewMovieHandler creates a new MovieHandler
func NewMovieHandler(movieService service.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

// List handles GET /movies/all - lists all movies
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.movieService.ListMovies(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

// Create handles POST /movies - adds a movie to the catalog
func (h *MovieHandler) Create(c *gin.Context) {
	var req dto.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	movie, err := h.movieService.AddMovie(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

// Update handles POST /movies/update/:title - updates a movie by title
func (h *MovieHandler) Update(c *gin.Context) {
	title := c.Param("title")
	if title == "" {
		response.BadRequest(c, "movie title is required")
		return
	}

	var req dto.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	movie, err := h.movieService.UpdateMovie(c.Request.Context(), title, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

// Delete handles DELETE /movies/:title - deletes a movie by title
func (h *MovieHandler) Delete(c *gin.Context) {
	title := c.Param("title")
	if title == "" {
		response.BadRequest(c, "movie title is required")
		return
	}

	if err := h.movieService.DeleteMovie(c.Request.Context(), title); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
