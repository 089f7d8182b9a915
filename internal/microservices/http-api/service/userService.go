package service

import (
	"context"
	"errors"
	"strings"

	"filmhub/internal/microservices/http-api/dto"
	"filmhub/internal/microservices/http-api/models"
	"filmhub/internal/microservices/http-api/repository"
)

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, id string, in dto.UpdateUserDTO) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	if err := checkID("user", id); err != nil {
		return nil, err
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "user", id)
	}
	return u, nil
}

// Create stores a new user after checking that no other user has the email.
// The check and the insert are separate store calls.
func (s *userService) Create(ctx context.Context, u *models.User) error {
	if err := normalizeUser(u); err != nil {
		return err
	}
	if err := s.ensureEmailFree(ctx, u.Email, ""); err != nil {
		return err
	}
	u.ID = ""
	return s.repo.Create(ctx, u)
}

func (s *userService) Update(ctx context.Context, id string, in dto.UpdateUserDTO) (*models.User, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previousEmail := existing.Email
	in.ApplyTo(existing)
	if err := normalizeUser(existing); err != nil {
		return nil, err
	}
	if existing.Email != previousEmail {
		if err := s.ensureEmailFree(ctx, existing.Email, existing.ID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, lookupErr(err, "user", id)
	}
	return existing, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if err := checkID("user", id); err != nil {
		return err
	}
	return lookupErr(s.repo.Delete(ctx, id), "user", id)
}

// ensureEmailFree fails when a user other than selfID owns email.
func (s *userService) ensureEmailFree(ctx context.Context, email, selfID string) error {
	other, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	if other.ID != selfID {
		return validation("email already registered")
	}
	return nil
}

func normalizeUser(u *models.User) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)
	if u.Name == "" {
		return validation("name is required")
	}
	if u.Email == "" {
		return validation("email is required")
	}
	return nil
}
