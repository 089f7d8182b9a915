package service

import (
	"context"
	"errors"
	"strings"

	"filmhub/internal/microservices/http-api/models"
	"filmhub/internal/microservices/http-api/repository"
)

// Resolver checks that a reference points at an existing record and returns
// that record.
type Resolver struct {
	users repository.UserRepository
	films repository.FilmRepository
}

func NewResolver(users repository.UserRepository, films repository.FilmRepository) *Resolver {
	return &Resolver{users: users, films: films}
}

func (r *Resolver) ResolveUser(ctx context.Context, ref string) (*models.User, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, missingReference("user is required")
	}
	if err := checkID("user", ref); err != nil {
		return nil, err
	}
	u, err := r.users.GetByID(ctx, ref)
	if err != nil {
		return nil, lookupErr(err, "user", ref)
	}
	return u, nil
}

func (r *Resolver) ResolveFilm(ctx context.Context, ref string) (*models.Film, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, missingReference("film is required")
	}
	if err := checkID("film", ref); err != nil {
		return nil, err
	}
	f, err := r.films.GetByID(ctx, ref)
	if err != nil {
		return nil, lookupErr(err, "film", ref)
	}
	return f, nil
}

// ResolveReview re-reads the review's user and film. Dangling or malformed
// references leave the corresponding side nil; only store failures error.
func (r *Resolver) ResolveReview(ctx context.Context, review *models.Review) (*models.ReviewView, error) {
	view := &models.ReviewView{Review: *review}

	u, err := r.ResolveUser(ctx, review.UserID)
	switch {
	case err == nil:
		view.User = u
	case !isReferenceMiss(err):
		return nil, err
	}

	f, err := r.ResolveFilm(ctx, review.FilmID)
	switch {
	case err == nil:
		view.Film = f
	case !isReferenceMiss(err):
		return nil, err
	}
	return view, nil
}

func isReferenceMiss(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrMissingReference) || errors.Is(err, ErrValidation)
}
