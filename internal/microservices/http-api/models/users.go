package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User email is unique by service pre-check only; the schema carries a plain index.
type User struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id" bson:"_id"`
	Name      string    `gorm:"not null" json:"name" bson:"name"`
	Email     string    `gorm:"index;not null" json:"email" bson:"email"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	// If the ID is not already set, generate a new one.
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}
