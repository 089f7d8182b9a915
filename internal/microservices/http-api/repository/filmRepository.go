package repository

import (
	"context"
	"fmt"
	"strings"

	"filmhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type FilmRepo struct {
	db *gorm.DB
}

func NewFilmRepo(db *gorm.DB) *FilmRepo {
	return &FilmRepo{db: db}
}

func (r *FilmRepo) Create(ctx context.Context, f *models.Film) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return fmt.Errorf("create film: %w", err)
	}
	// GORM populates f.ID through the BeforeCreate hook
	return nil
}

func (r *FilmRepo) Save(ctx context.Context, f *models.Film) error {
	if err := replaceRow(r.db.WithContext(ctx), f); err != nil {
		return fmt.Errorf("save film: %w", err)
	}
	return nil
}

func (r *FilmRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Film{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete film: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FilmRepo) GetByID(ctx context.Context, id string) (*models.Film, error) {
	var f models.Film
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &f, nil
}

// GetByIDs returns the films that still exist; missing ids are skipped.
func (r *FilmRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Film, error) {
	list := []models.Film{}
	if len(ids) == 0 {
		return list, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get films by ids: %w", err)
	}
	return list, nil
}

func (r *FilmRepo) List(ctx context.Context, order SortOrder) ([]models.Film, error) {
	list := []models.Film{}
	direction := "ASC"
	if order == SortDesc {
		direction = "DESC"
	}
	if err := r.db.WithContext(ctx).Order("release_year " + direction).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list films: %w", err)
	}
	return list, nil
}

// SearchByTitle performs a case-insensitive substring match on title.
// LIKE wildcards in the input are escaped so they match literally.
func (r *FilmRepo) SearchByTitle(ctx context.Context, title string) ([]models.Film, error) {
	list := []models.Film{}
	pattern := "%" + escapeLike(title) + "%"
	if err := r.db.WithContext(ctx).
		Where("title ILIKE ?", pattern).
		Order("title asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search films by title: %w", err)
	}
	return list, nil
}

func (r *FilmRepo) ListReleasedSince(ctx context.Context, year int) ([]models.Film, error) {
	list := []models.Film{}
	if err := r.db.WithContext(ctx).
		Where("release_year >= ?", year).
		Order("release_year asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list films released since %d: %w", year, err)
	}
	return list, nil
}

func (r *FilmRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Film{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count films: %w", err)
	}
	return count, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
