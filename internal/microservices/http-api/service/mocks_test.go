package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"filmhub/internal/microservices/http-api/models"
	"filmhub/internal/microservices/http-api/repository"
)

// --- MOCK REPOSITORIES ---

type MockFilmRepository struct {
	mock.Mock
}

func (m *MockFilmRepository) Create(ctx context.Context, f *models.Film) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFilmRepository) Save(ctx context.Context, f *models.Film) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFilmRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFilmRepository) GetByID(ctx context.Context, id string) (*models.Film, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Film), args.Error(1)
}

func (m *MockFilmRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Film, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.Film), args.Error(1)
}

func (m *MockFilmRepository) List(ctx context.Context, order repository.SortOrder) ([]models.Film, error) {
	args := m.Called(ctx, order)
	return args.Get(0).([]models.Film), args.Error(1)
}

func (m *MockFilmRepository) SearchByTitle(ctx context.Context, title string) ([]models.Film, error) {
	args := m.Called(ctx, title)
	return args.Get(0).([]models.Film), args.Error(1)
}

func (m *MockFilmRepository) ListReleasedSince(ctx context.Context, year int) ([]models.Film, error) {
	args := m.Called(ctx, year)
	return args.Get(0).([]models.Film), args.Error(1)
}

func (m *MockFilmRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Save(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, r *models.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) Save(ctx context.Context, r *models.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id string) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) List(ctx context.Context) ([]models.Review, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockFavoriteListRepository struct {
	mock.Mock
}

func (m *MockFavoriteListRepository) Create(ctx context.Context, l *models.FavoriteList) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockFavoriteListRepository) Save(ctx context.Context, l *models.FavoriteList) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockFavoriteListRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFavoriteListRepository) GetByID(ctx context.Context, id string) (*models.FavoriteList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FavoriteList), args.Error(1)
}

func (m *MockFavoriteListRepository) List(ctx context.Context) ([]models.FavoriteList, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.FavoriteList), args.Error(1)
}

func (m *MockFavoriteListRepository) ListByUser(ctx context.Context, userID string) ([]models.FavoriteList, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.FavoriteList), args.Error(1)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) CountFilmsByGenre(ctx context.Context) ([]models.GenreCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.GenreCount), args.Error(1)
}

func (m *MockReportRepository) FilmAverageRatings(ctx context.Context, filter models.AverageRatingFilter) ([]models.FilmRating, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.FilmRating), args.Error(1)
}

func (m *MockReportRepository) FilmReviewers(ctx context.Context, filmID string) ([]models.FilmReviewer, error) {
	args := m.Called(ctx, filmID)
	return args.Get(0).([]models.FilmReviewer), args.Error(1)
}

func (m *MockReportRepository) ReviewsAboveRating(ctx context.Context, threshold, skip, limit int) ([]models.ReviewDetail, error) {
	args := m.Called(ctx, threshold, skip, limit)
	return args.Get(0).([]models.ReviewDetail), args.Error(1)
}

// --- FIXTURES ---

const (
	userID  = "7b0e5b1c-4a4f-4d43-9d0b-2f3b8c1d0a01"
	userID2 = "7b0e5b1c-4a4f-4d43-9d0b-2f3b8c1d0a02"
	filmID  = "0f8d6e2a-1c3b-4e5f-8a9b-0c1d2e3f4a01"
	filmID2 = "0f8d6e2a-1c3b-4e5f-8a9b-0c1d2e3f4a02"
	filmID3 = "0f8d6e2a-1c3b-4e5f-8a9b-0c1d2e3f4a03"
	listID  = "5c2a9e7d-3b1f-4c6a-8e0d-9f1a2b3c4d01"
	revID   = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c01"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }
