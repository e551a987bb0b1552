package dto

import "time"

// CreateShowtimeRequest represents the request to schedule a showtime.
// Timestamps are ISO 8601 (e.g. 2025-03-21T19:00:00Z).
type CreateShowtimeRequest struct {
	MovieID   int64     `json:"movieId" binding:"required,min=1"`
	Theater   string    `json:"theater" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Price     float64   `json:"price" binding:"required,min=1,max=100"`
}

// Validate validates the CreateShowtimeRequest
func (r *CreateShowtimeRequest) Validate() (bool, string) {
	if r.Theater == "" {
		return false, "Theater is required"
	}
	if r.StartTime.IsZero() {
		return false, "Start time is required"
	}
	if r.EndTime.IsZero() {
		return false, "End time is required"
	}
	return true, ""
}

// UpdateShowtimeRequest represents the request to update a showtime. The
// id comes from the URL path; movieId must still resolve but is not
// changed by the update.
type UpdateShowtimeRequest struct {
	MovieID   int64     `json:"movieId" binding:"required,min=1"`
	Theater   string    `json:"theater" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Price     float64   `json:"price" binding:"required,min=1,max=100"`
}

// Validate validates the UpdateShowtimeRequest
func (r *UpdateShowtimeRequest) Validate() (bool, string) {
	if r.Theater == "" {
		return false, "Theater is required"
	}
	if r.StartTime.IsZero() {
		return false, "Start time is required"
	}
	if r.EndTime.IsZero() {
		return false, "End time is required"
	}
	return true, ""
}
