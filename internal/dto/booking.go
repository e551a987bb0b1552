package dto

// BookTicketRequest represents the request to book a seat for a showtime
type BookTicketRequest struct {
	ShowtimeID int64  `json:"showtimeId" binding:"required,min=1"`
	SeatNumber int    `json:"seatNumber" binding:"required,min=1"`
	UserID     string `json:"userId" binding:"required"`
}

// Validate validates the BookTicketRequest
func (r *BookTicketRequest) Validate() (bool, string) {
	if r.ShowtimeID <= 0 {
		return false, "Showtime ID is required"
	}
	if r.SeatNumber < 1 {
		return false, "Seat number must be at least 1"
	}
	if r.UserID == "" {
		return false, "User ID is required"
	}
	return true, ""
}

// BookTicketResponse represents the response after booking a seat
type BookTicketResponse struct {
	BookingID string `json:"bookingId"`
}
