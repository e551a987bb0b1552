package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for the NotFound and Conflict outcomes. Handlers map
// these to 404 and 409 respectively.
var (
	ErrMovieNotFound    = errors.New("movie not found")
	ErrShowtimeNotFound = errors.New("showtime not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrMovieTitleTaken  = errors.New("movie with this title already exists")
	ErrShowtimeOverlap  = errors.New("showtime conflicts with an existing showtime in the same theater")
	ErrSeatTaken        = errors.New("seat is already booked for this showtime")
)

// InvalidInputError marks request data that bound successfully but failed
// a semantic rule (bad UUID, bad duration window, past showtime). Handlers
// map it to 400.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

func invalidInput(format string, args ...interface{}) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidInput reports whether err is an InvalidInputError
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}
