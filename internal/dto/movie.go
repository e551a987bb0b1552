package dto

// CreateMovieRequest represents the request to add a movie to the catalog
type CreateMovieRequest struct {
	Title       string  `json:"title" binding:"required"`
	Genre       string  `json:"genre" binding:"required"`
	Duration    int     `json:"duration" binding:"required,min=1,max=300"`
	Rating      float64 `json:"rating" binding:"required,min=1,max=10"`
	ReleaseYear int     `json:"releaseYear" binding:"required,min=1900,max=2100"`
}

// Validate validates the CreateMovieRequest
func (r *CreateMovieRequest) Validate() (bool, string) {
	if r.Title == "" {
		return false, "Title is required"
	}
	if r.Genre == "" {
		return false, "Genre is required"
	}
	return true, ""
}

// UpdateMovieRequest represents the request to update a movie. The title
// comes from the URL path and cannot be changed; every other field is
// replaced wholesale.
type UpdateMovieRequest struct {
	Genre       string  `json:"genre" binding:"required"`
	Duration    int     `json:"duration" binding:"required,min=1,max=300"`
	Rating      float64 `json:"rating" binding:"required,min=1,max=10"`
	ReleaseYear int     `json:"releaseYear" binding:"required,min=1900,max=2100"`
}

// Validate validates the UpdateMovieRequest
func (r *UpdateMovieRequest) Validate() (bool, string) {
	if r.Genre == "" {
		return false, "Genre is required"
	}
	return true, ""
}
