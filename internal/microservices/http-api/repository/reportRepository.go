package repository

import (
	"context"
	"fmt"

	"filmhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// CountFilmsByGenre groups films by genre. Films without a genre form the
// NULL group.
func (r *reportRepository) CountFilmsByGenre(ctx context.Context) ([]models.GenreCount, error) {
	counts := []models.GenreCount{}
	err := r.db.WithContext(ctx).
		Model(&models.Film{}).
		Select("genre, COUNT(*) AS count").
		Group("genre").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("count films by genre: %w", err)
	}
	return counts, nil
}

// FilmAverageRatings groups reviews by film reference, keeps the groups whose
// mean passes the filter and joins each one to its film. The join is a LEFT
// JOIN so a review of a deleted film still reports, with a NULL title.
func (r *reportRepository) FilmAverageRatings(ctx context.Context, filter models.AverageRatingFilter) ([]models.FilmRating, error) {
	ratings := []models.FilmRating{}
	q := r.db.WithContext(ctx).
		Table("reviews AS r").
		Select("r.film_id, f.title, AVG(r.rating)::float8 AS average_rating, COUNT(*) AS review_count").
		Joins("LEFT JOIN films f ON f.id = r.film_id").
		Group("r.film_id, f.title")
	if filter.Above != nil {
		q = q.Having("AVG(r.rating) > ?", *filter.Above)
	}
	q = q.Order("average_rating DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if err := q.Scan(&ratings).Error; err != nil {
		return nil, fmt.Errorf("film average ratings: %w", err)
	}
	return ratings, nil
}

func (r *reportRepository) FilmReviewers(ctx context.Context, filmID string) ([]models.FilmReviewer, error) {
	reviewers := []models.FilmReviewer{}
	err := r.db.WithContext(ctx).
		Table("reviews AS r").
		Select("r.id AS review_id, r.user_id, u.name, r.rating, r.comment").
		Joins("LEFT JOIN users u ON u.id = r.user_id").
		Where("r.film_id = ?", filmID).
		Order("r.created_at ASC").
		Scan(&reviewers).Error
	if err != nil {
		return nil, fmt.Errorf("film reviewers: %w", err)
	}
	return reviewers, nil
}

// reviewDetailRow is the flat shape scanned from SQL before nesting.
type reviewDetailRow struct {
	Rating          int
	Comment         string
	FilmTitle       *string
	FilmDirector    *string
	FilmReleaseYear *int
	FilmGenre       *string
	UserName        *string
	UserEmail       *string
}

func (r *reportRepository) ReviewsAboveRating(ctx context.Context, threshold, skip, limit int) ([]models.ReviewDetail, error) {
	var rows []reviewDetailRow
	err := r.db.WithContext(ctx).
		Table("reviews AS r").
		Select(`r.rating, r.comment,
			f.title AS film_title, f.director AS film_director,
			f.release_year AS film_release_year, f.genre AS film_genre,
			u.name AS user_name, u.email AS user_email`).
		Joins("LEFT JOIN films f ON f.id = r.film_id").
		Joins("LEFT JOIN users u ON u.id = r.user_id").
		Where("r.rating > ?", threshold).
		Order("r.created_at ASC, r.id ASC").
		Offset(skip).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("reviews above rating: %w", err)
	}

	details := make([]models.ReviewDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, models.ReviewDetail{
			Rating:  row.Rating,
			Comment: row.Comment,
			Film: models.ReviewFilmDetail{
				Title:       row.FilmTitle,
				Director:    row.FilmDirector,
				ReleaseYear: row.FilmReleaseYear,
				Genre:       row.FilmGenre,
			},
			User: models.ReviewUserDetail{
				Name:  row.UserName,
				Email: row.UserEmail,
			},
		})
	}
	return details, nil
}
