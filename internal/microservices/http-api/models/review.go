package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review references its user and film by id. The snapshots hold what those
// records looked like when the review was created and are never refreshed.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid" bson:"_id"`
	Rating    int       `json:"rating" gorm:"not null;index" bson:"rating"`
	Comment   string    `json:"comment" gorm:"type:text" bson:"comment"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index" bson:"user_id"`
	FilmID    string    `json:"film_id" gorm:"type:uuid;not null;index" bson:"film_id"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime" bson:"updated_at"`

	UserSnapshot UserSnapshot `json:"user" gorm:"embedded;embeddedPrefix:user_" bson:"user_snapshot"`
	FilmSnapshot FilmSnapshot `json:"film" gorm:"embedded;embeddedPrefix:film_" bson:"film_snapshot"`
}

type UserSnapshot struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

type FilmSnapshot struct {
	Title       string  `json:"title" bson:"title"`
	Director    string  `json:"director" bson:"director"`
	ReleaseYear int     `json:"release_year" bson:"release_year"`
	Genre       *string `json:"genre,omitempty" bson:"genre,omitempty"`
}

func SnapshotUser(u *User) UserSnapshot {
	return UserSnapshot{Name: u.Name, Email: u.Email}
}

func SnapshotFilm(f *Film) FilmSnapshot {
	return FilmSnapshot{
		Title:       f.Title,
		Director:    f.Director,
		ReleaseYear: f.ReleaseYear,
		Genre:       f.Genre,
	}
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewView is a review with its references resolved against the live
// records. A nil User or Film means the reference is dangling.
type ReviewView struct {
	Review Review
	User   *User
	Film   *Film
}
