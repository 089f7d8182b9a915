package repository

import (
	"context"
	"fmt"

	"filmhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type favoriteListRepository struct {
	db *gorm.DB
}

func NewFavoriteListRepository(db *gorm.DB) FavoriteListRepository {
	return &favoriteListRepository{db: db}
}

func (r *favoriteListRepository) Create(ctx context.Context, l *models.FavoriteList) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(l).Error; err != nil {
			return err
		}
		return insertMembers(tx, l)
	})
	if err != nil {
		return fmt.Errorf("create favorite list: %w", err)
	}
	return nil
}

// Save writes the whole list record, membership rows included.
func (r *favoriteListRepository) Save(ctx context.Context, l *models.FavoriteList) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := replaceRow(tx, l); err != nil {
			return err
		}
		if err := tx.Where("favorite_list_id = ?", l.ID).Delete(&models.FavoriteListFilm{}).Error; err != nil {
			return err
		}
		return insertMembers(tx, l)
	})
	if err != nil {
		return fmt.Errorf("save favorite list: %w", err)
	}
	return nil
}

func (r *favoriteListRepository) Delete(ctx context.Context, id string) error {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("favorite_list_id = ?", id).Delete(&models.FavoriteListFilm{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.FavoriteList{}, "id = ?", id)
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return fmt.Errorf("delete favorite list: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *favoriteListRepository) GetByID(ctx context.Context, id string) (*models.FavoriteList, error) {
	var l models.FavoriteList
	if err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	lists := []models.FavoriteList{l}
	if err := r.loadMembers(ctx, lists); err != nil {
		return nil, err
	}
	return &lists[0], nil
}

func (r *favoriteListRepository) List(ctx context.Context) ([]models.FavoriteList, error) {
	lists := []models.FavoriteList{}
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("list favorite lists: %w", err)
	}
	if err := r.loadMembers(ctx, lists); err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *favoriteListRepository) ListByUser(ctx context.Context, userID string) ([]models.FavoriteList, error) {
	lists := []models.FavoriteList{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("list favorite lists of user: %w", err)
	}
	if err := r.loadMembers(ctx, lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// loadMembers fills FilmIDs for every list with one query.
func (r *favoriteListRepository) loadMembers(ctx context.Context, lists []models.FavoriteList) error {
	if len(lists) == 0 {
		return nil
	}
	ids := make([]string, 0, len(lists))
	index := make(map[string]int, len(lists))
	for i := range lists {
		lists[i].FilmIDs = []string{}
		ids = append(ids, lists[i].ID)
		index[lists[i].ID] = i
	}

	var rows []models.FavoriteListFilm
	if err := r.db.WithContext(ctx).
		Where("favorite_list_id IN ?", ids).
		Order("favorite_list_id, position").
		Find(&rows).Error; err != nil {
		return fmt.Errorf("load favorite list films: %w", err)
	}
	for _, row := range rows {
		i := index[row.FavoriteListID]
		lists[i].FilmIDs = append(lists[i].FilmIDs, row.FilmID)
	}
	return nil
}

func insertMembers(tx *gorm.DB, l *models.FavoriteList) error {
	if len(l.FilmIDs) == 0 {
		return nil
	}
	rows := make([]models.FavoriteListFilm, 0, len(l.FilmIDs))
	for i, filmID := range l.FilmIDs {
		rows = append(rows, models.FavoriteListFilm{
			FavoriteListID: l.ID,
			FilmID:         filmID,
			Position:       i,
		})
	}
	return tx.Create(&rows).Error
}
