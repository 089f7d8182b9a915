//go:build integration

// Package storetest holds the behaviour every repository backend must share.
// Backend integration tests start a real server and hand the Store to Run.
package storetest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmhub/internal/microservices/http-api/models"
	"filmhub/internal/microservices/http-api/repository"
)

func strPtr(s string) *string { return &s }

// Run exercises store against an empty database.
func Run(t *testing.T, store *repository.Store) {
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	heat := &models.Film{Title: "Heat", Director: "Michael Mann", ReleaseYear: 1995, Synopsis: "A thief and a detective.", Duration: 170, Genre: strPtr("Crime")}
	alien := &models.Film{Title: "Alien", Director: "Ridley Scott", ReleaseYear: 1979, Duration: 117, Genre: strPtr("Horror")}
	odd := &models.Film{Title: "100% Alien_Love", Director: "Nobody", ReleaseYear: 2001}
	collateral := &models.Film{Title: "Collateral", Director: "Michael Mann", ReleaseYear: 2004, Genre: strPtr("Crime")}
	for _, f := range []*models.Film{heat, alien, odd, collateral} {
		require.NoError(t, store.Films.Create(ctx, f))
		require.NotEmpty(t, f.ID)
	}

	ana := &models.User{Name: "Ana", Email: "ana@example.com"}
	ben := &models.User{Name: "Ben", Email: "ben@example.com"}
	require.NoError(t, store.Users.Create(ctx, ana))
	require.NoError(t, store.Users.Create(ctx, ben))

	t.Run("Films", func(t *testing.T) {
		for _, want := range []*models.Film{heat, odd} {
			got, err := store.Films.GetByID(ctx, want.ID)
			require.NoError(t, err)
			assertSameFilm(t, want, got)
		}

		_, err = store.Films.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, repository.ErrNotFound)

		count, err := store.Films.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)

		asc, err := store.Films.List(ctx, repository.SortAsc)
		require.NoError(t, err)
		require.Len(t, asc, 4)
		assert.Equal(t, alien.ID, asc[0].ID)
		assert.Equal(t, collateral.ID, asc[3].ID)

		assert.Equal(t, []string{alien.ID, heat.ID, odd.ID, collateral.ID}, filmIDs(asc))

		desc, err := store.Films.List(ctx, repository.SortDesc)
		require.NoError(t, err)
		assert.Equal(t, []string{collateral.ID, odd.ID, heat.ID, alien.ID}, filmIDs(desc))

		since, err := store.Films.ListReleasedSince(ctx, 2001)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{odd.ID, collateral.ID}, filmIDs(since))

		byIDs, err := store.Films.GetByIDs(ctx, []string{heat.ID, uuid.NewString(), alien.ID})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{heat.ID, alien.ID}, filmIDs(byIDs))
	})

	t.Run("SearchByTitle", func(t *testing.T) {
		found, err := store.Films.SearchByTitle(ctx, "aLiEn")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{alien.ID, odd.ID}, filmIDs(found))

		found, err = store.Films.SearchByTitle(ctx, "0% a")
		require.NoError(t, err)
		assert.Equal(t, []string{odd.ID}, filmIDs(found))

		found, err = store.Films.SearchByTitle(ctx, "n_L")
		require.NoError(t, err)
		assert.Equal(t, []string{odd.ID}, filmIDs(found))

		found, err = store.Films.SearchByTitle(ctx, ".*")
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("SaveAndDelete", func(t *testing.T) {
		f := &models.Film{Title: "Thief", ReleaseYear: 1981}
		require.NoError(t, store.Films.Create(ctx, f))

		f.Title = "Thief (1981)"
		f.Director = "Michael Mann"
		f.Duration = 123
		f.Genre = strPtr("Crime")
		require.NoError(t, store.Films.Save(ctx, f))
		got, err := store.Films.GetByID(ctx, f.ID)
		require.NoError(t, err)
		assertSameFilm(t, f, got)

		f.Genre = nil
		require.NoError(t, store.Films.Save(ctx, f))
		got, err = store.Films.GetByID(ctx, f.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Genre)

		require.NoError(t, store.Films.Delete(ctx, f.ID))
		assert.ErrorIs(t, store.Films.Delete(ctx, f.ID), repository.ErrNotFound)

		// Saving a deleted record must not bring it back.
		assert.ErrorIs(t, store.Films.Save(ctx, f), repository.ErrNotFound)
		_, err = store.Films.GetByID(ctx, f.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("UsersByEmail", func(t *testing.T) {
		got, err := store.Users.GetByEmail(ctx, "ben@example.com")
		require.NoError(t, err)
		assert.Equal(t, ben.ID, got.ID)

		_, err = store.Users.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, repository.ErrNotFound)

		ghost := &models.User{ID: uuid.NewString(), Name: "Ghost", Email: "ghost@example.com"}
		assert.ErrorIs(t, store.Users.Save(ctx, ghost), repository.ErrNotFound)
		_, err = store.Users.GetByID(ctx, ghost.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("FavoriteListMembershipKeepsOrder", func(t *testing.T) {
		l := &models.FavoriteList{Name: "Mann", UserID: ana.ID, FilmIDs: []string{collateral.ID, heat.ID}}
		require.NoError(t, store.FavoriteLists.Create(ctx, l))

		got, err := store.FavoriteLists.GetByID(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{collateral.ID, heat.ID}, got.FilmIDs)

		got.FilmIDs = []string{heat.ID, alien.ID, collateral.ID}
		require.NoError(t, store.FavoriteLists.Save(ctx, got))

		lists, err := store.FavoriteLists.ListByUser(ctx, ana.ID)
		require.NoError(t, err)
		require.Len(t, lists, 1)
		assert.Equal(t, []string{heat.ID, alien.ID, collateral.ID}, lists[0].FilmIDs)

		lists, err = store.FavoriteLists.ListByUser(ctx, ben.ID)
		require.NoError(t, err)
		assert.Empty(t, lists)

		require.NoError(t, store.FavoriteLists.Delete(ctx, l.ID))
		_, err = store.FavoriteLists.GetByID(ctx, l.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		assert.ErrorIs(t, store.FavoriteLists.Save(ctx, got), repository.ErrNotFound)
		_, err = store.FavoriteLists.GetByID(ctx, l.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	ghostFilm := uuid.NewString()
	reviews := []*models.Review{
		{Rating: 9, Comment: "tense", UserID: ana.ID, FilmID: heat.ID},
		{Rating: 7, Comment: "good", UserID: ben.ID, FilmID: heat.ID},
		{Rating: 10, Comment: "classic", UserID: ana.ID, FilmID: alien.ID},
		{Rating: 4, Comment: "meh", UserID: ben.ID, FilmID: collateral.ID},
		{Rating: 6, Comment: "lost film", UserID: uuid.NewString(), FilmID: ghostFilm},
	}
	for _, r := range reviews {
		require.NoError(t, store.Reviews.Create(ctx, r))
	}

	t.Run("CountFilmsByGenre", func(t *testing.T) {
		counts, err := store.Reports.CountFilmsByGenre(ctx)
		require.NoError(t, err)
		require.Len(t, counts, 3)

		require.NotNil(t, counts[0].Genre)
		assert.Equal(t, "Crime", *counts[0].Genre)
		assert.Equal(t, int64(2), counts[0].Count)

		byGenre := map[string]int64{}
		for _, c := range counts {
			key := "<none>"
			if c.Genre != nil {
				key = *c.Genre
			}
			byGenre[key] = c.Count
		}
		assert.Equal(t, map[string]int64{"Crime": 2, "Horror": 1, "<none>": 1}, byGenre)
	})

	t.Run("FilmAverageRatings", func(t *testing.T) {
		above := 7.0
		ratings, err := store.Reports.FilmAverageRatings(ctx, models.AverageRatingFilter{Above: &above})
		require.NoError(t, err)
		require.Len(t, ratings, 2)
		assert.Equal(t, alien.ID, ratings[0].FilmID)
		assert.Equal(t, 10.0, ratings[0].AverageRating)
		assert.Equal(t, heat.ID, ratings[1].FilmID)
		assert.Equal(t, 8.0, ratings[1].AverageRating)
		assert.Equal(t, int64(2), ratings[1].ReviewCount)
		require.NotNil(t, ratings[1].Title)
		assert.Equal(t, "Heat", *ratings[1].Title)

		all, err := store.Reports.FilmAverageRatings(ctx, models.AverageRatingFilter{})
		require.NoError(t, err)
		require.Len(t, all, 4)
		for _, r := range all {
			if r.FilmID == ghostFilm {
				assert.Nil(t, r.Title)
			}
		}

		top, err := store.Reports.FilmAverageRatings(ctx, models.AverageRatingFilter{Limit: 1})
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, alien.ID, top[0].FilmID)
	})

	t.Run("FilmReviewers", func(t *testing.T) {
		reviewers, err := store.Reports.FilmReviewers(ctx, heat.ID)
		require.NoError(t, err)
		require.Len(t, reviewers, 2)

		names := []string{}
		for _, r := range reviewers {
			require.NotNil(t, r.Name)
			names = append(names, *r.Name)
		}
		assert.ElementsMatch(t, []string{"Ana", "Ben"}, names)

		reviewers, err = store.Reports.FilmReviewers(ctx, odd.ID)
		require.NoError(t, err)
		assert.Empty(t, reviewers)
	})

	t.Run("ReviewsAboveRating", func(t *testing.T) {
		details, err := store.Reports.ReviewsAboveRating(ctx, 5, 0, 10)
		require.NoError(t, err)
		require.Len(t, details, 4)

		for _, d := range details {
			if d.Comment == "lost film" {
				assert.Nil(t, d.Film.Title)
				assert.Nil(t, d.User.Name)
			} else {
				assert.NotNil(t, d.Film.Title)
				assert.NotNil(t, d.User.Email)
			}
		}

		page, err := store.Reports.ReviewsAboveRating(ctx, 5, 3, 10)
		require.NoError(t, err)
		assert.Len(t, page, 1)

		page, err = store.Reports.ReviewsAboveRating(ctx, 5, 1, 2)
		require.NoError(t, err)
		assert.Len(t, page, 2)

		none, err := store.Reports.ReviewsAboveRating(ctx, 10, 0, 10)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("ReviewsSurviveFilmDelete", func(t *testing.T) {
		require.NoError(t, store.Films.Delete(ctx, collateral.ID))

		got, err := store.Reviews.GetByID(ctx, reviews[3].ID)
		require.NoError(t, err)
		assert.Equal(t, collateral.ID, got.FilmID)

		count, err := store.Reviews.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), count)
	})
}

func assertSameFilm(t *testing.T, want, got *models.Film) {
	t.Helper()
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Director, got.Director)
	assert.Equal(t, want.ReleaseYear, got.ReleaseYear)
	assert.Equal(t, want.Synopsis, got.Synopsis)
	assert.Equal(t, want.Duration, got.Duration)
	assert.Equal(t, want.Genre, got.Genre)
}

func filmIDs(films []models.Film) []string {
	ids := make([]string, 0, len(films))
	for _, f := range films {
		ids = append(ids, f.ID)
	}
	return ids
}
