package service

import (
	"context"
	"strings"

	"filmhub/internal/microservices/http-api/dto"
	"filmhub/internal/microservices/http-api/models"
	"filmhub/internal/microservices/http-api/repository"
)

type FilmService interface {
	List(ctx context.Context, order string) ([]models.Film, error)
	GetByID(ctx context.Context, id string) (*models.Film, error)
	SearchByTitle(ctx context.Context, title string) ([]models.Film, error)
	ListReleasedSince(ctx context.Context, year int) ([]models.Film, error)
	Create(ctx context.Context, f *models.Film) error
	Update(ctx context.Context, id string, in dto.UpdateFilmDTO) (*models.Film, error)
	Delete(ctx context.Context, id string) error
}

type filmService struct {
	repo repository.FilmRepository
}

func NewFilmService(repo repository.FilmRepository) FilmService {
	return &filmService{repo: repo}
}

// ParseSortOrder maps the caller's direction flag; empty means ascending.
func ParseSortOrder(s string) (repository.SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return repository.SortAsc, nil
	case "desc":
		return repository.SortDesc, nil
	}
	return "", validation("invalid sort order %q: use asc or desc", s)
}

// List returns every film sorted by release year.
func (s *filmService) List(ctx context.Context, order string) ([]models.Film, error) {
	o, err := ParseSortOrder(order)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, o)
}

func (s *filmService) GetByID(ctx context.Context, id string) (*models.Film, error) {
	if err := checkID("film", id); err != nil {
		return nil, err
	}
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "film", id)
	}
	return f, nil
}

// SearchByTitle returns films whose title contains title, ignoring case.
// Unlike the listings, no match is reported as not found.
func (s *filmService) SearchByTitle(ctx context.Context, title string) ([]models.Film, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, validation("title is required")
	}
	films, err := s.repo.SearchByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if len(films) == 0 {
		return nil, notFound("no films found matching title %q", title)
	}
	return films, nil
}

// ListReleasedSince returns films released in year or later.
func (s *filmService) ListReleasedSince(ctx context.Context, year int) ([]models.Film, error) {
	if year < 0 {
		return nil, validation("invalid year: %d", year)
	}
	return s.repo.ListReleasedSince(ctx, year)
}

func (s *filmService) Create(ctx context.Context, f *models.Film) error {
	if err := validateFilm(f); err != nil {
		return err
	}
	f.ID = ""
	return s.repo.Create(ctx, f)
}

func (s *filmService) Update(ctx context.Context, id string, in dto.UpdateFilmDTO) (*models.Film, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.ApplyTo(existing)
	if err := validateFilm(existing); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, lookupErr(err, "film", id)
	}
	return existing, nil
}

// Delete removes the film only. Reviews and favorite lists that reference it
// are left as they are.
func (s *filmService) Delete(ctx context.Context, id string) error {
	if err := checkID("film", id); err != nil {
		return err
	}
	return lookupErr(s.repo.Delete(ctx, id), "film", id)
}

func validateFilm(f *models.Film) error {
	f.Title = strings.TrimSpace(f.Title)
	if f.Title == "" {
		return validation("title is required")
	}
	if f.ReleaseYear < 0 {
		return validation("release_year must not be negative")
	}
	if f.Duration < 0 {
		return validation("duration must not be negative")
	}
	if f.Genre != nil {
		g := strings.TrimSpace(*f.Genre)
		f.Genre = &g
	}
	return nil
}
