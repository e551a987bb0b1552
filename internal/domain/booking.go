package domain

// Booking represents a booked seat for a showtime. The ID is assigned by
// the store on insert. ShowtimeID is a weak reference, like Showtime.MovieID.
type Booking struct {
	ID         string `json:"bookingId"`
	ShowtimeID int64  `json:"showtimeId"`
	SeatNumber int    `json:"seatNumber"`
	UserID     string `json:"userId"`
}
