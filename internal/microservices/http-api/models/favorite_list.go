package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FavoriteList owns no films: FilmIDs are references kept as a set.
type FavoriteList struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id" bson:"_id"`
	Name      string    `gorm:"not null" json:"name" bson:"name"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id" bson:"user_id"`
	FilmIDs   []string  `gorm:"-" json:"film_ids" bson:"film_ids"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (l *FavoriteList) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

func (FavoriteList) TableName() string {
	return "favorite_lists"
}

// HasFilm reports whether filmID is already a member.
func (l *FavoriteList) HasFilm(filmID string) bool {
	for _, id := range l.FilmIDs {
		if id == filmID {
			return true
		}
	}
	return false
}

// AddFilm appends filmID unless present and reports whether the list changed.
func (l *FavoriteList) AddFilm(filmID string) bool {
	if l.HasFilm(filmID) {
		return false
	}
	l.FilmIDs = append(l.FilmIDs, filmID)
	return true
}

// RemoveFilm drops filmID and reports whether the list changed.
func (l *FavoriteList) RemoveFilm(filmID string) bool {
	for i, id := range l.FilmIDs {
		if id == filmID {
			l.FilmIDs = append(l.FilmIDs[:i:i], l.FilmIDs[i+1:]...)
			return true
		}
	}
	return false
}

// explicit join model for list membership (no foreign keys: films may be deleted)
type FavoriteListFilm struct {
	FavoriteListID string    `gorm:"primaryKey;type:uuid"`
	FilmID         string    `gorm:"primaryKey;type:uuid"`
	Position       int       `gorm:"not null"`
	AddedAt        time.Time `gorm:"autoCreateTime"`
}

func (FavoriteListFilm) TableName() string {
	return "favorite_list_films"
}
