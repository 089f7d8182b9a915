package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"filmhub/internal/microservices/http-api/models"
)

type ReportRepository struct {
	films   *mongo.Collection
	reviews *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{
		films:   db.Collection(filmsCollection),
		reviews: db.Collection(reviewsCollection),
	}
}

func (r *ReportRepository) CountFilmsByGenre(ctx context.Context) ([]models.GenreCount, error) {
	counts := []models.GenreCount{}
	if err := aggregate(ctx, r.films, genreCountPipeline(), &counts); err != nil {
		return nil, fmt.Errorf("count films by genre: %w", err)
	}
	return counts, nil
}

func (r *ReportRepository) FilmAverageRatings(ctx context.Context, filter models.AverageRatingFilter) ([]models.FilmRating, error) {
	ratings := []models.FilmRating{}
	if err := aggregate(ctx, r.reviews, averageRatingPipeline(filter), &ratings); err != nil {
		return nil, fmt.Errorf("film average ratings: %w", err)
	}
	return ratings, nil
}

func (r *ReportRepository) FilmReviewers(ctx context.Context, filmID string) ([]models.FilmReviewer, error) {
	reviewers := []models.FilmReviewer{}
	if err := aggregate(ctx, r.reviews, filmReviewersPipeline(filmID), &reviewers); err != nil {
		return nil, fmt.Errorf("film reviewers: %w", err)
	}
	return reviewers, nil
}

func (r *ReportRepository) ReviewsAboveRating(ctx context.Context, threshold, skip, limit int) ([]models.ReviewDetail, error) {
	details := []models.ReviewDetail{}
	if err := aggregate(ctx, r.reviews, reviewsAboveRatingPipeline(threshold, skip, limit), &details); err != nil {
		return nil, fmt.Errorf("reviews above rating: %w", err)
	}
	return details, nil
}

func aggregate(ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline, out any) error {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}
