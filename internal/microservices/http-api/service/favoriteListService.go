package service

import (
	"context"
	"strings"

	"filmhub/internal/microservices/http-api/dto"
	"filmhub/internal/microservices/http-api/models"
	"filmhub/internal/microservices/http-api/repository"
)

type FavoriteListService interface {
	List(ctx context.Context) ([]models.FavoriteList, error)
	GetByID(ctx context.Context, id string) (*models.FavoriteList, error)
	Create(ctx context.Context, in dto.CreateFavoriteListDTO) (*models.FavoriteList, error)
	Update(ctx context.Context, id string, in dto.UpdateFavoriteListDTO) (*models.FavoriteList, error)
	Delete(ctx context.Context, id string) error
	AddFilm(ctx context.Context, listID, filmID string) (*models.FavoriteList, error)
	RemoveFilm(ctx context.Context, listID, filmID string) (*models.FavoriteList, error)
}

type favoriteListService struct {
	repo     repository.FavoriteListRepository
	resolver *Resolver
}

func NewFavoriteListService(repo repository.FavoriteListRepository, resolver *Resolver) FavoriteListService {
	return &favoriteListService{
		repo:     repo,
		resolver: resolver,
	}
}

func (s *favoriteListService) List(ctx context.Context) ([]models.FavoriteList, error) {
	return s.repo.List(ctx)
}

func (s *favoriteListService) GetByID(ctx context.Context, id string) (*models.FavoriteList, error) {
	if err := checkID("favorite list", id); err != nil {
		return nil, err
	}
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "favorite list", id)
	}
	return l, nil
}

// Create resolves the owning user before writing an empty list.
func (s *favoriteListService) Create(ctx context.Context, in dto.CreateFavoriteListDTO) (*models.FavoriteList, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, validation("name is required")
	}
	user, err := s.resolver.ResolveUser(ctx, in.UserRef())
	if err != nil {
		return nil, err
	}
	l := &models.FavoriteList{
		Name:    name,
		UserID:  user.ID,
		FilmIDs: []string{},
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Update applies name and owner changes; a new owner is not resolved.
func (s *favoriteListService) Update(ctx context.Context, id string, in dto.UpdateFavoriteListDTO) (*models.FavoriteList, error) {
	l, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.UserID != nil {
		if err := checkID("user", *in.UserID); err != nil {
			return nil, err
		}
	}
	in.ApplyTo(l)
	l.Name = strings.TrimSpace(l.Name)
	if l.Name == "" {
		return nil, validation("name is required")
	}
	if err := s.repo.Save(ctx, l); err != nil {
		return nil, lookupErr(err, "favorite list", l.ID)
	}
	return l, nil
}

func (s *favoriteListService) Delete(ctx context.Context, id string) error {
	if err := checkID("favorite list", id); err != nil {
		return err
	}
	return lookupErr(s.repo.Delete(ctx, id), "favorite list", id)
}

// AddFilm puts the film in the list once. Adding a film that is already
// there changes nothing and writes nothing.
func (s *favoriteListService) AddFilm(ctx context.Context, listID, filmID string) (*models.FavoriteList, error) {
	l, film, err := s.loadMembership(ctx, listID, filmID)
	if err != nil {
		return nil, err
	}
	if l.AddFilm(film.ID) {
		if err := s.repo.Save(ctx, l); err != nil {
			return nil, lookupErr(err, "favorite list", l.ID)
		}
	}
	return l, nil
}

// RemoveFilm takes the film out of the list; removing an absent film is a
// no-op.
func (s *favoriteListService) RemoveFilm(ctx context.Context, listID, filmID string) (*models.FavoriteList, error) {
	l, film, err := s.loadMembership(ctx, listID, filmID)
	if err != nil {
		return nil, err
	}
	if l.RemoveFilm(film.ID) {
		if err := s.repo.Save(ctx, l); err != nil {
			return nil, lookupErr(err, "favorite list", l.ID)
		}
	}
	return l, nil
}

func (s *favoriteListService) loadMembership(ctx context.Context, listID, filmID string) (*models.FavoriteList, *models.Film, error) {
	l, err := s.GetByID(ctx, listID)
	if err != nil {
		return nil, nil, err
	}
	film, err := s.resolver.ResolveFilm(ctx, filmID)
	if err != nil {
		return nil, nil, err
	}
	return l, film, nil
}
