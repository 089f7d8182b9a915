package service

import (
	"context"

	"filmhub/internal/microservices/http-api/models"
	"filmhub/internal/microservices/http-api/repository"
)

// MissingListPolicy decides what FavoriteFilms returns for a user who has no
// favorite list.
type MissingListPolicy string

const (
	MissingListEmpty    MissingListPolicy = "empty"
	MissingListNotFound MissingListPolicy = "not_found"
)

const (
	DefaultTopRatedLimit = 10
	DefaultReviewsLimit  = 10
	MaxReportLimit       = 100
)

type ReportService interface {
	CountFilms(ctx context.Context) (int64, error)
	CountFilmsByGenre(ctx context.Context) ([]models.GenreCount, error)
	AverageRatingAbove(ctx context.Context, threshold float64) ([]models.FilmRating, error)
	TopRatedFilms(ctx context.Context, limit int) ([]models.FilmRating, error)
	FilmReviewers(ctx context.Context, filmID string) ([]models.FilmReviewer, error)
	ReviewsAboveRating(ctx context.Context, threshold, skip, limit int) ([]models.ReviewDetail, error)
	FavoriteFilms(ctx context.Context, userID string) ([]models.Film, error)
}

type reportService struct {
	reports       repository.ReportRepository
	films         repository.FilmRepository
	favoriteLists repository.FavoriteListRepository
	resolver      *Resolver
	missingList   MissingListPolicy
}

func NewReportService(store *repository.Store, resolver *Resolver, missingList MissingListPolicy) ReportService {
	return &reportService{
		reports:       store.Reports,
		films:         store.Films,
		favoriteLists: store.FavoriteLists,
		resolver:      resolver,
		missingList:   missingList,
	}
}

// CountFilms counts every film; an empty catalog counts 0.
func (s *reportService) CountFilms(ctx context.Context) (int64, error) {
	return s.films.Count(ctx)
}

func (s *reportService) CountFilmsByGenre(ctx context.Context) ([]models.GenreCount, error) {
	return s.reports.CountFilmsByGenre(ctx)
}

// AverageRatingAbove lists films whose mean review rating is strictly above
// threshold. Films with no reviews never appear.
func (s *reportService) AverageRatingAbove(ctx context.Context, threshold float64) ([]models.FilmRating, error) {
	return s.reports.FilmAverageRatings(ctx, models.AverageRatingFilter{Above: &threshold})
}

// TopRatedFilms returns the best-rated films. The transport fills in
// DefaultTopRatedLimit when the caller gives no limit.
func (s *reportService) TopRatedFilms(ctx context.Context, limit int) ([]models.FilmRating, error) {
	if limit < 1 || limit > MaxReportLimit {
		return nil, validation("limit must be between 1 and %d", MaxReportLimit)
	}
	return s.reports.FilmAverageRatings(ctx, models.AverageRatingFilter{Limit: limit})
}

// FilmReviewers lists who reviewed the film. A film without reviews is
// reported as not found, the same as a missing film.
func (s *reportService) FilmReviewers(ctx context.Context, filmID string) ([]models.FilmReviewer, error) {
	film, err := s.resolver.ResolveFilm(ctx, filmID)
	if err != nil {
		return nil, err
	}
	reviewers, err := s.reports.FilmReviewers(ctx, film.ID)
	if err != nil {
		return nil, err
	}
	if len(reviewers) == 0 {
		return nil, notFound("no reviews found for film %s", film.ID)
	}
	return reviewers, nil
}

// ReviewsAboveRating pages through reviews rated strictly above threshold,
// skipping first and then limiting.
func (s *reportService) ReviewsAboveRating(ctx context.Context, threshold, skip, limit int) ([]models.ReviewDetail, error) {
	if skip < 0 {
		return nil, validation("skip must not be negative")
	}
	if limit < 1 || limit > MaxReportLimit {
		return nil, validation("limit must be between 1 and %d", MaxReportLimit)
	}
	details, err := s.reports.ReviewsAboveRating(ctx, threshold, skip, limit)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, notFound("no reviews found with rating greater than %d", threshold)
	}
	return details, nil
}

// FavoriteFilms returns the films of every favorite list the user owns,
// each film once, in list order. Films that no longer exist are skipped.
func (s *reportService) FavoriteFilms(ctx context.Context, userID string) ([]models.Film, error) {
	user, err := s.resolver.ResolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	lists, err := s.favoriteLists.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		if s.missingList == MissingListNotFound {
			return nil, notFound("favorite list for user %s not found", user.ID)
		}
		return []models.Film{}, nil
	}

	var ids []string
	seen := make(map[string]bool)
	for _, l := range lists {
		for _, id := range l.FilmIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	if len(ids) == 0 {
		return []models.Film{}, nil
	}
	found, err := s.films.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Film, len(found))
	for _, f := range found {
		byID[f.ID] = f
	}
	films := make([]models.Film, 0, len(found))
	for _, id := range ids {
		if f, ok := byID[id]; ok {
			films = append(films, f)
		}
	}
	return films, nil
}
