package dto

import (
	"time"

	"filmhub/internal/microservices/http-api/models"
)

// CreateFilmDTO used for POST /api/films
type CreateFilmDTO struct {
	Title       string  `json:"title" binding:"required"`
	Director    string  `json:"director"`
	ReleaseYear int     `json:"release_year" binding:"min=0"`
	Synopsis    string  `json:"synopsis"`
	Duration    int     `json:"duration" binding:"min=0"`
	Genre       *string `json:"genre,omitempty"`
}

// UpdateFilmDTO used for PUT/PATCH /api/films/:film_id (partial updates allowed)
type UpdateFilmDTO struct {
	Title       *string `json:"title,omitempty"`
	Director    *string `json:"director,omitempty"`
	ReleaseYear *int    `json:"release_year,omitempty" binding:"omitempty,min=0"`
	Synopsis    *string `json:"synopsis,omitempty"`
	Duration    *int    `json:"duration,omitempty" binding:"omitempty,min=0"`
	Genre       *string `json:"genre,omitempty"`

	// ClearGenre is set by an explicit "genre": null.
	ClearGenre bool `json:"-"`
}

// FilmResponse DTO for responses
type FilmResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Director    string    `json:"director"`
	ReleaseYear int       `json:"release_year"`
	Synopsis    string    `json:"synopsis"`
	Duration    int       `json:"duration"`
	Genre       *string   `json:"genre"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (d CreateFilmDTO) ToModel() models.Film {
	return models.Film{
		Title:       d.Title,
		Director:    d.Director,
		ReleaseYear: d.ReleaseYear,
		Synopsis:    d.Synopsis,
		Duration:    d.Duration,
		Genre:       d.Genre,
	}
}

func (UpdateFilmDTO) Fields() []string {
	return []string{"title", "director", "release_year", "synopsis", "duration", "genre"}
}

func (d UpdateFilmDTO) ApplyTo(f *models.Film) {
	if d.Title != nil {
		f.Title = *d.Title
	}
	if d.Director != nil {
		f.Director = *d.Director
	}
	if d.ReleaseYear != nil {
		f.ReleaseYear = *d.ReleaseYear
	}
	if d.Synopsis != nil {
		f.Synopsis = *d.Synopsis
	}
	if d.Duration != nil {
		f.Duration = *d.Duration
	}
	if d.Genre != nil {
		f.Genre = d.Genre
	}
	if d.ClearGenre {
		f.Genre = nil
	}
}

// ClearField accepts null for genre only; a film without a genre is valid.
func (d *UpdateFilmDTO) ClearField(field string) bool {
	if field != "genre" {
		return false
	}
	d.Genre = nil
	d.ClearGenre = true
	return true
}

func FromModelToFilmResponse(f models.Film) FilmResponse {
	return FilmResponse{
		ID:          f.ID,
		Title:       f.Title,
		Director:    f.Director,
		ReleaseYear: f.ReleaseYear,
		Synopsis:    f.Synopsis,
		Duration:    f.Duration,
		Genre:       f.Genre,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func FromModelsToFilmResponses(films []models.Film) []FilmResponse {
	resp := make([]FilmResponse, 0, len(films))
	for _, f := range films {
		resp = append(resp, FromModelToFilmResponse(f))
	}
	return resp
}
