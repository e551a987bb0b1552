package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AmirAbuELHija/popcorn-palace/internal/dto"
	"github.com/AmirAbuELHija/popcorn-palace/internal/service"
	"github.com/AmirAbuELHija/popcorn-palace/pkg/response"
)

// ShowtimeHandler handles showtime-related HTTP requests
type ShowtimeHandler struct {
	showtimeService service.ShowtimeService
}

// NewShowtimeHandler creates a new ShowtimeHandler
func NewShowtimeHandler(showtimeService service.ShowtimeService) *ShowtimeHandler {
	return &ShowtimeHandler{showtimeService: showtimeService}
}

func showtimeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid showtime id")
		return 0, false
	}
	return id, true
}

// List handles GET /showtimes/all - lists all showtimes
func (h *ShowtimeHandler) List(c *gin.Context) {
	showtimes, err := h.showtimeService.ListShowtimes(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, showtimes)
}

// GetByID handles GET /showtimes/:id - retrieves a showtime by id
func (h *ShowtimeHandler) GetByID(c *gin.Context) {
	id, ok := showtimeID(c)
	if !ok {
		return
	}

	showtime, err := h.showtimeService.GetShowtimeByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, showtime)
}

// Create handles POST /showtimes - schedules a showtime
func (h *ShowtimeHandler) Create(c *gin.Context) {
	var req dto.CreateShowtimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	showtime, err := h.showtimeService.AddShowtime(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, showtime)
}

// Update handles POST /showtimes/update/:id - updates a showtime
func (h *ShowtimeHandler) Update(c *gin.Context) {
	id, ok := showtimeID(c)
	if !ok {
		return
	}

	var req dto.UpdateShowtimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	showtime, err := h.showtimeService.UpdateShowtime(c.Request.Context(), id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, showtime)
}

// Delete handles DELETE /showtimes/:id - deletes a showtime
func (h *ShowtimeHandler) Delete(c *gin.Context) {
	id, ok := showtimeID(c)
	if !ok {
		return
	}

	if err := h.showtimeService.DeleteShowtime(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
