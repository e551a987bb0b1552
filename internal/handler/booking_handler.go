package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AmirAbuELHija/popcorn-palace/internal/dto"
	"github.com/AmirAbuELHija/popcorn-palace/internal/service"
	"github.com/AmirAbuELHija/popcorn-palace/pkg/response"
)

// BookingHandler handles booking-related HTTP requests
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Book handles POST /bookings - books a ticket for a showtime
func (h *BookingHandler) Book(c *gin.Context) {
	var req dto.BookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	booking, err := h.bookingService.BookTicket(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BookTicketResponse{BookingID: booking.ID})
}

// GetByID handles GET /bookings/:id - retrieves a booking by id
func (h *BookingHandler) GetByID(c *gin.Context) {
	booking, err := h.bookingService.GetBookingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// Cancel handles DELETE /bookings/:id - cancels a booking
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.bookingService.CancelBooking(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
