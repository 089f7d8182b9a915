package dto

import (
	"time"

	"filmhub/internal/microservices/http-api/models"
)

// CreateFavoriteListDTO: payload to create a favorite list for a user
type CreateFavoriteListDTO struct {
	Name   string  `json:"name" binding:"required"`
	UserID string  `json:"user_id,omitempty"`
	User   *RefDTO `json:"user,omitempty"`
}

func (d CreateFavoriteListDTO) UserRef() string { return refOf(d.UserID, d.User) }

// UpdateFavoriteListDTO: membership is changed through the films routes only
type UpdateFavoriteListDTO struct {
	Name   *string `json:"name,omitempty" binding:"omitempty,min=1"`
	UserID *string `json:"user_id,omitempty"`
}

func (UpdateFavoriteListDTO) Fields() []string {
	return []string{"name", "user_id"}
}

func (d UpdateFavoriteListDTO) ApplyTo(l *models.FavoriteList) {
	if d.Name != nil {
		l.Name = *d.Name
	}
	if d.UserID != nil {
		l.UserID = *d.UserID
	}
}

// FavoriteListResponse: response for a favorite list
type FavoriteListResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"user_id"`
	FilmIDs   []string  `json:"film_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModelToFavoriteListResponse(l models.FavoriteList) FavoriteListResponse {
	filmIDs := l.FilmIDs
	if filmIDs == nil {
		filmIDs = []string{}
	}
	return FavoriteListResponse{
		ID:        l.ID,
		Name:      l.Name,
		UserID:    l.UserID,
		FilmIDs:   filmIDs,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
