package domain

import "time"

// Showtime represents a scheduled screening of a movie in a theater.
// MovieID is a weak reference: deleting the movie does not cascade here.
type Showtime struct {
	ID        int64     `json:"id"`
	MovieID   int64     `json:"movieId"`
	Theater   string    `json:"theater"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Price     float64   `json:"price"`
}

// DurationMinutes returns the scheduled length in whole minutes.
func (s *Showtime) DurationMinutes() int64 {
	return int64(s.EndTime.Sub(s.StartTime).Minutes())
}
