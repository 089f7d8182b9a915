package mongostore

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"filmhub/internal/microservices/http-api/models"
	"filmhub/internal/microservices/http-api/repository"
)

type FilmRepository struct {
	coll *mongo.Collection
}

func NewFilmRepository(db *mongo.Database) *FilmRepository {
	return &FilmRepository{coll: db.Collection(filmsCollection)}
}

func (r *FilmRepository) Create(ctx context.Context, f *models.Film) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	f.CreatedAt, f.UpdatedAt = now, now
	if _, err := r.coll.InsertOne(ctx, f); err != nil {
		return fmt.Errorf("create film: %w", err)
	}
	return nil
}

func (r *FilmRepository) Save(ctx context.Context, f *models.Film) error {
	f.UpdatedAt = time.Now().UTC()
	if err := replaceByID(ctx, r.coll, f.ID, f); err != nil {
		return fmt.Errorf("save film: %w", err)
	}
	return nil
}

func (r *FilmRepository) Delete(ctx context.Context, id string) error {
	if err := deleteByID(ctx, r.coll, id); err != nil {
		return fmt.Errorf("delete film: %w", err)
	}
	return nil
}

func (r *FilmRepository) GetByID(ctx context.Context, id string) (*models.Film, error) {
	var f models.Film
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&f); err != nil {
		return nil, translate(err)
	}
	return &f, nil
}

func (r *FilmRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Film, error) {
	if len(ids) == 0 {
		return []models.Film{}, nil
	}
	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}
	return r.find(ctx, filter, nil)
}

func (r *FilmRepository) List(ctx context.Context, order repository.SortOrder) ([]models.Film, error) {
	direction := 1
	if order == repository.SortDesc {
		direction = -1
	}
	return r.find(ctx, bson.D{}, bson.D{{Key: "release_year", Value: direction}})
}

// SearchByTitle matches the title case-insensitively; regex metacharacters in
// the input are quoted.
func (r *FilmRepository) SearchByTitle(ctx context.Context, title string) ([]models.Film, error) {
	filter := bson.D{{Key: "title", Value: bson.Regex{Pattern: regexp.QuoteMeta(title), Options: "i"}}}
	return r.find(ctx, filter, bson.D{{Key: "title", Value: 1}})
}

func (r *FilmRepository) ListReleasedSince(ctx context.Context, year int) ([]models.Film, error) {
	filter := bson.D{{Key: "release_year", Value: bson.D{{Key: "$gte", Value: year}}}}
	return r.find(ctx, filter, bson.D{{Key: "release_year", Value: 1}})
}

func (r *FilmRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count films: %w", err)
	}
	return count, nil
}

func (r *FilmRepository) find(ctx context.Context, filter, sort bson.D) ([]models.Film, error) {
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find films: %w", err)
	}
	films := []models.Film{}
	if err := cursor.All(ctx, &films); err != nil {
		return nil, fmt.Errorf("decode films: %w", err)
	}
	return films, nil
}
