package mongostore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"filmhub/internal/microservices/http-api/models"
)

type FavoriteListRepository struct {
	coll *mongo.Collection
}

func NewFavoriteListRepository(db *mongo.Database) *FavoriteListRepository {
	return &FavoriteListRepository{coll: db.Collection(favoriteListsCollection)}
}

func (r *FavoriteListRepository) Create(ctx context.Context, l *models.FavoriteList) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.FilmIDs == nil {
		l.FilmIDs = []string{}
	}
	now := time.Now().UTC()
	l.CreatedAt, l.UpdatedAt = now, now
	if _, err := r.coll.InsertOne(ctx, l); err != nil {
		return fmt.Errorf("create favorite list: %w", err)
	}
	return nil
}

// Save replaces the whole document, film_ids included.
func (r *FavoriteListRepository) Save(ctx context.Context, l *models.FavoriteList) error {
	if l.FilmIDs == nil {
		l.FilmIDs = []string{}
	}
	l.UpdatedAt = time.Now().UTC()
	if err := replaceByID(ctx, r.coll, l.ID, l); err != nil {
		return fmt.Errorf("save favorite list: %w", err)
	}
	return nil
}

func (r *FavoriteListRepository) Delete(ctx context.Context, id string) error {
	if err := deleteByID(ctx, r.coll, id); err != nil {
		return fmt.Errorf("delete favorite list: %w", err)
	}
	return nil
}

func (r *FavoriteListRepository) GetByID(ctx context.Context, id string) (*models.FavoriteList, error) {
	var l models.FavoriteList
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&l); err != nil {
		return nil, translate(err)
	}
	return &l, nil
}

func (r *FavoriteListRepository) List(ctx context.Context) ([]models.FavoriteList, error) {
	return r.find(ctx, bson.D{})
}

func (r *FavoriteListRepository) ListByUser(ctx context.Context, userID string) ([]models.FavoriteList, error) {
	return r.find(ctx, bson.D{{Key: "user_id", Value: userID}})
}

func (r *FavoriteListRepository) find(ctx context.Context, filter bson.D) ([]models.FavoriteList, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find favorite lists: %w", err)
	}
	lists := []models.FavoriteList{}
	if err := cursor.All(ctx, &lists); err != nil {
		return nil, fmt.Errorf("decode favorite lists: %w", err)
	}
	return lists, nil
}
