package dto

import (
	"time"

	"filmhub/internal/microservices/http-api/models"
)

// CreateReviewDTO accepts each reference either flat ("user_id") or as an
// embedded partial record ("user": {"id": ...}).
type CreateReviewDTO struct {
	Rating  int     `json:"rating"`
	Comment string  `json:"comment"`
	UserID  string  `json:"user_id,omitempty"`
	User    *RefDTO `json:"user,omitempty"`
	FilmID  string  `json:"film_id,omitempty"`
	Film    *RefDTO `json:"film,omitempty"`
}

func (d CreateReviewDTO) UserRef() string { return refOf(d.UserID, d.User) }
func (d CreateReviewDTO) FilmRef() string { return refOf(d.FilmID, d.Film) }

// UpdateReviewDTO may overwrite the references; they are not re-resolved.
type UpdateReviewDTO struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
	UserID  *string `json:"user_id,omitempty"`
	FilmID  *string `json:"film_id,omitempty"`
}

func (UpdateReviewDTO) Fields() []string {
	return []string{"rating", "comment", "user_id", "film_id"}
}

func (d UpdateReviewDTO) ApplyTo(r *models.Review) {
	if d.Rating != nil {
		r.Rating = *d.Rating
	}
	if d.Comment != nil {
		r.Comment = *d.Comment
	}
	if d.UserID != nil {
		r.UserID = *d.UserID
	}
	if d.FilmID != nil {
		r.FilmID = *d.FilmID
	}
}

// ReviewResponse carries the snapshot taken at creation time.
type ReviewResponse struct {
	ID        string              `json:"id"`
	Rating    int                 `json:"rating"`
	Comment   string              `json:"comment"`
	UserID    string              `json:"user_id"`
	FilmID    string              `json:"film_id"`
	User      models.UserSnapshot `json:"user"`
	Film      models.FilmSnapshot `json:"film"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// ReviewViewResponse adds the live records; null means the reference dangles.
type ReviewViewResponse struct {
	ReviewResponse
	LiveUser *UserResponse `json:"live_user"`
	LiveFilm *FilmResponse `json:"live_film"`
}

func FromModelToReviewResponse(r models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		UserID:    r.UserID,
		FilmID:    r.FilmID,
		User:      r.UserSnapshot,
		Film:      r.FilmSnapshot,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func FromViewToReviewViewResponse(v models.ReviewView) ReviewViewResponse {
	resp := ReviewViewResponse{ReviewResponse: FromModelToReviewResponse(v.Review)}
	if v.User != nil {
		u := FromModelToUserResponse(*v.User)
		resp.LiveUser = &u
	}
	if v.Film != nil {
		f := FromModelToFilmResponse(*v.Film)
		resp.LiveFilm = &f
	}
	return resp
}
