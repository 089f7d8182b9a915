// Package app assembles the store, services and HTTP router from config.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"filmhub/database"
	"filmhub/internal/config"
	"filmhub/internal/microservices/http-api/dto"
	"filmhub/internal/microservices/http-api/handler"
	"filmhub/internal/microservices/http-api/middleware"
	"filmhub/internal/microservices/http-api/repository"
	"filmhub/internal/microservices/http-api/repository/mongostore"
	"filmhub/internal/microservices/http-api/service"
)

// OpenStore connects the backend named by STORE_DRIVER. The returned func
// releases its connections.
func OpenStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*repository.Store, func(), error) {
	switch cfg.StoreDriver {
	case "postgres":
		pg, err := database.ConnectPostgres(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewStore(pg.DB), pg.Close, nil
	case "mongo":
		client, db, err := database.ConnectMongo(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Warn("mongo disconnect failed", "error", err)
			}
		}
		return mongostore.NewStore(db), closeFn, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

type Services struct {
	Films         service.FilmService
	Users         service.UserService
	Reviews       service.ReviewService
	FavoriteLists service.FavoriteListService
	Reports       service.ReportService
}

func NewServices(store *repository.Store, cfg *config.Config) Services {
	resolver := service.NewResolver(store.Users, store.Films)
	return Services{
		Films:         service.NewFilmService(store.Films),
		Users:         service.NewUserService(store.Users),
		Reviews:       service.NewReviewService(store.Reviews, resolver),
		FavoriteLists: service.NewFavoriteListService(store.FavoriteLists, resolver),
		Reports:       service.NewReportService(store, resolver, service.MissingListPolicy(cfg.FavoritesMissingList)),
	}
}

// NewLimiter picks the shared Redis limiter when a client is given and the
// in-process one otherwise.
func NewLimiter(cfg *config.Config, rdb *redis.Client) middleware.Limiter {
	if rdb != nil {
		return middleware.NewRedisLimiter(rdb, cfg.RateLimitPerWindow(), cfg.RateLimitWindow)
	}
	return middleware.NewLocalLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
}

// NewRouter registers every route under /api plus /health. A nil limiter
// disables rate limiting.
func NewRouter(cfg *config.Config, log *slog.Logger, svcs Services, ping func(ctx context.Context) error, limiter middleware.Limiter) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	health := handler.NewHealthHandler(cfg.StoreDriver, ping)
	r.GET("/health", health.Check)

	api := r.Group("/api")
	if limiter != nil {
		api.Use(middleware.RateLimit(limiter))
	}

	opts := handler.Options{
		RequestTimeout: cfg.RequestTimeout,
		UnknownFields:  dto.UnknownFieldPolicy(cfg.UnknownFields),
	}
	handler.NewFilmHandler(svcs.Films, svcs.Reports, opts).RegisterRoutes(api.Group("/films"))
	handler.NewUserHandler(svcs.Users, svcs.Reports, opts).RegisterRoutes(api.Group("/users"))
	handler.NewReviewHandler(svcs.Reviews, opts).RegisterRoutes(api.Group("/reviews"))
	handler.NewFavoriteListHandler(svcs.FavoriteLists, opts).RegisterRoutes(api.Group("/favorite-lists"))
	handler.NewReportHandler(svcs.Reports, opts).RegisterRoutes(api.Group("/reports"))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	return r
}
