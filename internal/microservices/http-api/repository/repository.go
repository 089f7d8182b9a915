package repository

import (
	"context"

	"filmhub/internal/microservices/http-api/models"
)

// SortOrder is the direction of the release-year sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type FilmRepository interface {
	Create(ctx context.Context, f *models.Film) error
	Save(ctx context.Context, f *models.Film) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Film, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Film, error)
	List(ctx context.Context, order SortOrder) ([]models.Film, error)
	SearchByTitle(ctx context.Context, title string) ([]models.Film, error)
	ListReleasedSince(ctx context.Context, year int) ([]models.Film, error)
	Count(ctx context.Context) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	Save(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, r *models.Review) error
	Save(ctx context.Context, r *models.Review) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	List(ctx context.Context) ([]models.Review, error)
	Count(ctx context.Context) (int64, error)
}

type FavoriteListRepository interface {
	Create(ctx context.Context, l *models.FavoriteList) error
	Save(ctx context.Context, l *models.FavoriteList) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.FavoriteList, error)
	List(ctx context.Context) ([]models.FavoriteList, error)
	ListByUser(ctx context.Context, userID string) ([]models.FavoriteList, error)
}

// ReportRepository runs the cross-collection aggregations.
type ReportRepository interface {
	CountFilmsByGenre(ctx context.Context) ([]models.GenreCount, error)
	FilmAverageRatings(ctx context.Context, filter models.AverageRatingFilter) ([]models.FilmRating, error)
	FilmReviewers(ctx context.Context, filmID string) ([]models.FilmReviewer, error)
	ReviewsAboveRating(ctx context.Context, threshold, skip, limit int) ([]models.ReviewDetail, error)
}

// Store bundles one backend's repositories.
type Store struct {
	Films         FilmRepository
	Users         UserRepository
	Reviews       ReviewRepository
	FavoriteLists FavoriteListRepository
	Reports       ReportRepository
	Ping          func(ctx context.Context) error
}
