package catalogimport

import (
	"context"
	"fmt"
	"log/slog"

	"filmhub/internal/microservices/http-api/dto"
	"filmhub/internal/microservices/http-api/models"
	"filmhub/internal/microservices/http-api/service"
)

type Result struct {
	Users         int
	Films         int
	Reviews       int
	FavoriteLists int
}

type Importer struct {
	films         service.FilmService
	users         service.UserService
	reviews       service.ReviewService
	favoriteLists service.FavoriteListService
	log           *slog.Logger
}

func NewImporter(films service.FilmService, users service.UserService, reviews service.ReviewService, favoriteLists service.FavoriteListService, log *slog.Logger) *Importer {
	return &Importer{films: films, users: users, reviews: reviews, favoriteLists: favoriteLists, log: log}
}

// Import writes users and films first, then the records that reference
// them. It stops at the first failure; records written before it stay.
func (im *Importer) Import(ctx context.Context, seed *Seed) (Result, error) {
	var res Result
	if err := seed.Check(); err != nil {
		return res, err
	}

	userIDs := make(map[string]string, len(seed.Users))
	for _, su := range seed.Users {
		u := models.User{Name: su.Name, Email: su.Email}
		if err := im.users.Create(ctx, &u); err != nil {
			return res, fmt.Errorf("user %q: %w", su.Key, err)
		}
		userIDs[su.Key] = u.ID
		res.Users++
	}

	filmIDs := make(map[string]string, len(seed.Films))
	for _, sf := range seed.Films {
		f := models.Film{
			Title:       sf.Title,
			Director:    sf.Director,
			ReleaseYear: sf.ReleaseYear,
			Synopsis:    sf.Synopsis,
			Duration:    sf.Duration,
			Genre:       sf.Genre,
		}
		if err := im.films.Create(ctx, &f); err != nil {
			return res, fmt.Errorf("film %q: %w", sf.Key, err)
		}
		filmIDs[sf.Key] = f.ID
		res.Films++
	}

	for i, sr := range seed.Reviews {
		_, err := im.reviews.Create(ctx, dto.CreateReviewDTO{
			Rating:  sr.Rating,
			Comment: sr.Comment,
			UserID:  userIDs[sr.User],
			FilmID:  filmIDs[sr.Film],
		})
		if err != nil {
			return res, fmt.Errorf("reviews[%d]: %w", i, err)
		}
		res.Reviews++
	}

	for i, sl := range seed.FavoriteLists {
		l, err := im.favoriteLists.Create(ctx, dto.CreateFavoriteListDTO{
			Name:   sl.Name,
			UserID: userIDs[sl.User],
		})
		if err != nil {
			return res, fmt.Errorf("favorite_lists[%d]: %w", i, err)
		}
		for _, key := range sl.Films {
			if _, err := im.favoriteLists.AddFilm(ctx, l.ID, filmIDs[key]); err != nil {
				return res, fmt.Errorf("favorite_lists[%d] film %q: %w", i, key, err)
			}
		}
		res.FavoriteLists++
	}

	im.log.Info("catalog imported",
		"users", res.Users,
		"films", res.Films,
		"reviews", res.Reviews,
		"favorite_lists", res.FavoriteLists,
	)
	return res, nil
}
