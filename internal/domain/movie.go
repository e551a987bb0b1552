package domain

// Movie represents a movie in the catalog. Title is unique across the
// catalog and is also the handle for update and delete operations.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Duration    int     `json:"duration"` // minutes
	Rating      float64 `json:"rating"`
	ReleaseYear int     `json:"releaseYear"`
}
