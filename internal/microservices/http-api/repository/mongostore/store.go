// Package mongostore implements the repository interfaces on MongoDB. Every
// entity kind lives in its own collection keyed by a UUID string _id.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"filmhub/internal/microservices/http-api/repository"
)

const (
	filmsCollection         = "films"
	usersCollection         = "users"
	reviewsCollection       = "reviews"
	favoriteListsCollection = "favorite_lists"
)

// NewStore wires the Mongo repositories into a repository.Store.
func NewStore(db *mongo.Database) *repository.Store {
	return &repository.Store{
		Films:         NewFilmRepository(db),
		Users:         NewUserRepository(db),
		Reviews:       NewReviewRepository(db),
		FavoriteLists: NewFavoriteListRepository(db),
		Reports:       NewReportRepository(db),
		Ping: func(ctx context.Context) error {
			return db.Client().Ping(ctx, nil)
		},
	}
}

// EnsureIndexes creates the lookup indexes used by filters and joins. The
// email index is deliberately not unique.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		filmsCollection: {
			{Keys: bson.D{{Key: "release_year", Value: 1}}},
			{Keys: bson.D{{Key: "genre", Value: 1}}},
		},
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
		reviewsCollection: {
			{Keys: bson.D{{Key: "film_id", Value: 1}}},
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
			{Keys: bson.D{{Key: "rating", Value: 1}}},
		},
		favoriteListsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
	}
	for name, specs := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, specs); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}

func byID(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

func translate(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	return err
}

// replaceByID replaces the whole document and reports ErrNotFound when no
// document matched.
func replaceByID(ctx context.Context, coll *mongo.Collection, id string, doc any) error {
	result, err := coll.ReplaceOne(ctx, byID(id), doc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	result, err := coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
