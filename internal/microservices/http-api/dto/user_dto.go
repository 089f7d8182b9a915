package dto

import (
	"time"

	"filmhub/internal/microservices/http-api/models"
)

type CreateUserDTO struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type UpdateUserDTO struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d CreateUserDTO) ToModel() models.User {
	return models.User{Name: d.Name, Email: d.Email}
}

func (UpdateUserDTO) Fields() []string {
	return []string{"name", "email"}
}

func (d UpdateUserDTO) ApplyTo(u *models.User) {
	if d.Name != nil {
		u.Name = *d.Name
	}
	if d.Email != nil {
		u.Email = *d.Email
	}
}

func FromModelToUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
