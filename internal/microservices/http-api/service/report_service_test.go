package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"filmhub/internal/microservices/http-api/models"
	"filmhub/internal/microservices/http-api/repository"
)

type reportFixture struct {
	reports *MockReportRepository
	films   *MockFilmRepository
	users   *MockUserRepository
	lists   *MockFavoriteListRepository
	store   *repository.Store
}

func newReportFixture() *reportFixture {
	f := &reportFixture{
		reports: new(MockReportRepository),
		films:   new(MockFilmRepository),
		users:   new(MockUserRepository),
		lists:   new(MockFavoriteListRepository),
	}
	f.store = &repository.Store{
		Films:         f.films,
		Users:         f.users,
		FavoriteLists: f.lists,
		Reports:       f.reports,
	}
	return f
}

func (f *reportFixture) service(policy MissingListPolicy) ReportService {
	return NewReportService(f.store, NewResolver(f.users, f.films), policy)
}

func TestReportService_CountFilms(t *testing.T) {
	f := newReportFixture()
	f.films.On("Count", mock.Anything).Return(int64(0), nil).Once()

	n, err := f.service(MissingListEmpty).CountFilms(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReportService_CountFilmsByGenre(t *testing.T) {
	f := newReportFixture()
	rows := []models.GenreCount{
		{Genre: stringPtr("Drama"), Count: 2},
		{Genre: nil, Count: 1},
	}
	f.reports.On("CountFilmsByGenre", mock.Anything).Return(rows, nil).Once()

	got, err := f.service(MissingListEmpty).CountFilmsByGenre(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestReportService_AverageRatingAbove(t *testing.T) {
	f := newReportFixture()
	rows := []models.FilmRating{{FilmID: filmID, AverageRating: 8.5, ReviewCount: 2}}
	f.reports.On("FilmAverageRatings", mock.Anything, mock.MatchedBy(func(filter models.AverageRatingFilter) bool {
		return filter.Above != nil && *filter.Above == 7 && filter.Limit == 0
	})).Return(rows, nil).Once()

	got, err := f.service(MissingListEmpty).AverageRatingAbove(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
	f.reports.AssertExpectations(t)
}

func TestReportService_TopRatedFilms(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultLimit", func(t *testing.T) {
		f := newReportFixture()
		f.reports.On("FilmAverageRatings", mock.Anything, models.AverageRatingFilter{Limit: DefaultTopRatedLimit}).
			Return([]models.FilmRating{}, nil).Once()

		_, err := f.service(MissingListEmpty).TopRatedFilms(ctx, DefaultTopRatedLimit)
		require.NoError(t, err)
		f.reports.AssertExpectations(t)
	})

	t.Run("ZeroLimit", func(t *testing.T) {
		f := newReportFixture()

		_, err := f.service(MissingListEmpty).TopRatedFilms(ctx, 0)
		assert.EqualError(t, err, "limit must be between 1 and 100")
		assert.ErrorIs(t, err, ErrValidation)
		f.reports.AssertNotCalled(t, "FilmAverageRatings", mock.Anything, mock.Anything)
	})

	t.Run("LimitTooLarge", func(t *testing.T) {
		f := newReportFixture()

		_, err := f.service(MissingListEmpty).TopRatedFilms(ctx, MaxReportLimit+1)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestReportService_FilmReviewers(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownFilm", func(t *testing.T) {
		f := newReportFixture()
		f.films.On("GetByID", mock.Anything, filmID).Return(nil, repository.ErrNotFound).Once()

		_, err := f.service(MissingListEmpty).FilmReviewers(ctx, filmID)
		assert.ErrorIs(t, err, ErrNotFound)
		f.reports.AssertNotCalled(t, "FilmReviewers", mock.Anything, mock.Anything)
	})

	t.Run("NoReviews", func(t *testing.T) {
		f := newReportFixture()
		f.films.On("GetByID", mock.Anything, filmID).Return(&models.Film{ID: filmID}, nil).Once()
		f.reports.On("FilmReviewers", mock.Anything, filmID).Return([]models.FilmReviewer{}, nil).Once()

		_, err := f.service(MissingListEmpty).FilmReviewers(ctx, filmID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DanglingReviewerKeepsRow", func(t *testing.T) {
		f := newReportFixture()
		rows := []models.FilmReviewer{{ReviewID: revID, UserID: userID, Name: nil, Rating: 6}}
		f.films.On("GetByID", mock.Anything, filmID).Return(&models.Film{ID: filmID}, nil).Once()
		f.reports.On("FilmReviewers", mock.Anything, filmID).Return(rows, nil).Once()

		got, err := f.service(MissingListEmpty).FilmReviewers(ctx, filmID)
		require.NoError(t, err)
		assert.Nil(t, got[0].Name)
	})
}

func TestReportService_ReviewsAboveRating(t *testing.T) {
	ctx := context.Background()

	t.Run("PagesThrough", func(t *testing.T) {
		f := newReportFixture()
		rows := []models.ReviewDetail{{Rating: 9}}
		f.reports.On("ReviewsAboveRating", mock.Anything, 8, 10, 5).Return(rows, nil).Once()

		got, err := f.service(MissingListEmpty).ReviewsAboveRating(ctx, 8, 10, 5)
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("EmptyIsNotFound", func(t *testing.T) {
		f := newReportFixture()
		f.reports.On("ReviewsAboveRating", mock.Anything, 8, 0, 10).Return([]models.ReviewDetail{}, nil).Once()

		_, err := f.service(MissingListEmpty).ReviewsAboveRating(ctx, 8, 0, 10)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.EqualError(t, err, "no reviews found with rating greater than 8")
	})

	t.Run("BadPaging", func(t *testing.T) {
		f := newReportFixture()
		svc := f.service(MissingListEmpty)

		_, err := svc.ReviewsAboveRating(ctx, 8, -1, 10)
		assert.ErrorIs(t, err, ErrValidation)
		_, err = svc.ReviewsAboveRating(ctx, 8, 0, 0)
		assert.ErrorIs(t, err, ErrValidation)
		f.reports.AssertNotCalled(t, "ReviewsAboveRating", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReportService_FavoriteFilms(t *testing.T) {
	ctx := context.Background()
	ana := &models.User{ID: userID}

	t.Run("UnionInListOrderSkippingDangling", func(t *testing.T) {
		f := newReportFixture()
		f.users.On("GetByID", mock.Anything, userID).Return(ana, nil).Once()
		f.lists.On("ListByUser", mock.Anything, userID).Return([]models.FavoriteList{
			{ID: listID, FilmIDs: []string{filmID, filmID2}},
			{FilmIDs: []string{filmID2, filmID3}},
		}, nil).Once()
		// filmID2 no longer exists.
		f.films.On("GetByIDs", mock.Anything, []string{filmID, filmID2, filmID3}).
			Return([]models.Film{{ID: filmID3, Title: "C"}, {ID: filmID, Title: "A"}}, nil).Once()

		got, err := f.service(MissingListEmpty).FavoriteFilms(ctx, userID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, filmID, got[0].ID)
		assert.Equal(t, filmID3, got[1].ID)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		f := newReportFixture()
		f.users.On("GetByID", mock.Anything, userID).Return(nil, repository.ErrNotFound).Once()

		_, err := f.service(MissingListEmpty).FavoriteFilms(ctx, userID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("NoListEmptyPolicy", func(t *testing.T) {
		f := newReportFixture()
		f.users.On("GetByID", mock.Anything, userID).Return(ana, nil).Once()
		f.lists.On("ListByUser", mock.Anything, userID).Return([]models.FavoriteList{}, nil).Once()

		got, err := f.service(MissingListEmpty).FavoriteFilms(ctx, userID)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("NoListNotFoundPolicy", func(t *testing.T) {
		f := newReportFixture()
		f.users.On("GetByID", mock.Anything, userID).Return(ana, nil).Once()
		f.lists.On("ListByUser", mock.Anything, userID).Return([]models.FavoriteList{}, nil).Once()

		_, err := f.service(MissingListNotFound).FavoriteFilms(ctx, userID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
