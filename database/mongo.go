package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"filmhub/internal/config"
	"filmhub/internal/microservices/http-api/repository/mongostore"
)

// ConnectMongo opens the client, checks it answers and makes sure the
// collection indexes exist.
func ConnectMongo(ctx context.Context, cfg *config.Config, log *slog.Logger) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	db := client.Database(cfg.MongoDatabase)
	if err := mongostore.EnsureIndexes(pingCtx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, err
	}

	log.Info("Connected to MongoDB", "database", cfg.MongoDatabase)
	return client, db, nil
}
