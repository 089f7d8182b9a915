package repository

import (
	"context"

	"gorm.io/gorm"
)

// NewStore wires the gorm repositories into a Store.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		Films:         NewFilmRepo(db),
		Users:         NewUserRepository(db),
		Reviews:       NewReviewRepository(db),
		FavoriteLists: NewFavoriteListRepository(db),
		Reports:       NewReportRepository(db),
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
}
