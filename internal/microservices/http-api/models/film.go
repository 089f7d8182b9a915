package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Film struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid" bson:"_id"`
	Title       string    `json:"title" gorm:"not null" bson:"title"`
	Director    string    `json:"director" bson:"director"`
	ReleaseYear int       `json:"release_year" gorm:"index" bson:"release_year"`
	Synopsis    string    `json:"synopsis" gorm:"type:text" bson:"synopsis"`
	Duration    int       `json:"duration" bson:"duration"` // minutes
	Genre       *string   `json:"genre,omitempty" gorm:"index" bson:"genre,omitempty"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime" bson:"updated_at"`
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (f *Film) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

func (Film) TableName() string {
	return "films"
}
