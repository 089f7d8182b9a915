package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"filmhub/internal/microservices/http-api/dto"
	"filmhub/internal/microservices/http-api/models"
)

// --- HELPER FUNCTIONS FOR POINTERS ---
func stringPtr(s string) *string { return &s }

// --- MOCK SERVICES ---

type MockFilmService struct {
	mock.Mock
}

func (m *MockFilmService) List(ctx context.Context, order string) ([]models.Film, error) {
	args := m.Called(ctx, order)
	return args.Get(0).([]models.Film), args.Error(1)
}

func (m *MockFilmService) GetByID(ctx context.Context, id string) (*models.Film, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Film), args.Error(1)
}

func (m *MockFilmService) SearchByTitle(ctx context.Context, title string) ([]models.Film, error) {
	args := m.Called(ctx, title)
	return args.Get(0).([]models.Film), args.Error(1)
}

func (m *MockFilmService) ListReleasedSince(ctx context.Context, year int) ([]models.Film, error) {
	args := m.Called(ctx, year)
	return args.Get(0).([]models.Film), args.Error(1)
}

func (m *MockFilmService) Create(ctx context.Context, f *models.Film) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFilmService) Update(ctx context.Context, id string, in dto.UpdateFilmDTO) (*models.Film, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Film), args.Error(1)
}

func (m *MockFilmService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserService) Update(ctx context.Context, id string, in dto.UpdateUserDTO) (*models.User, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) List(ctx context.Context) ([]models.Review, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewService) GetByID(ctx context.Context, id string) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) GetView(ctx context.Context, id string) (*models.ReviewView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewView), args.Error(1)
}

func (m *MockReviewService) Create(ctx context.Context, in dto.CreateReviewDTO) (*models.Review, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) Update(ctx context.Context, id string, in dto.UpdateReviewDTO) (*models.Review, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFavoriteListService struct {
	mock.Mock
}

func (m *MockFavoriteListService) List(ctx context.Context) ([]models.FavoriteList, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.FavoriteList), args.Error(1)
}

func (m *MockFavoriteListService) GetByID(ctx context.Context, id string) (*models.FavoriteList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FavoriteList), args.Error(1)
}

func (m *MockFavoriteListService) Create(ctx context.Context, in dto.CreateFavoriteListDTO) (*models.FavoriteList, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FavoriteList), args.Error(1)
}

func (m *MockFavoriteListService) Update(ctx context.Context, id string, in dto.UpdateFavoriteListDTO) (*models.FavoriteList, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FavoriteList), args.Error(1)
}

func (m *MockFavoriteListService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFavoriteListService) AddFilm(ctx context.Context, listID, filmID string) (*models.FavoriteList, error) {
	args := m.Called(ctx, listID, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FavoriteList), args.Error(1)
}

func (m *MockFavoriteListService) RemoveFilm(ctx context.Context, listID, filmID string) (*models.FavoriteList, error) {
	args := m.Called(ctx, listID, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FavoriteList), args.Error(1)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) CountFilms(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportService) CountFilmsByGenre(ctx context.Context) ([]models.GenreCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.GenreCount), args.Error(1)
}

func (m *MockReportService) AverageRatingAbove(ctx context.Context, threshold float64) ([]models.FilmRating, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).([]models.FilmRating), args.Error(1)
}

func (m *MockReportService) TopRatedFilms(ctx context.Context, limit int) ([]models.FilmRating, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.FilmRating), args.Error(1)
}

func (m *MockReportService) FilmReviewers(ctx context.Context, filmID string) ([]models.FilmReviewer, error) {
	args := m.Called(ctx, filmID)
	return args.Get(0).([]models.FilmReviewer), args.Error(1)
}

func (m *MockReportService) ReviewsAboveRating(ctx context.Context, threshold, skip, limit int) ([]models.ReviewDetail, error) {
	args := m.Called(ctx, threshold, skip, limit)
	return args.Get(0).([]models.ReviewDetail), args.Error(1)
}

func (m *MockReportService) FavoriteFilms(ctx context.Context, userID string) ([]models.Film, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Film), args.Error(1)
}
