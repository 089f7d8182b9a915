package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"filmhub/internal/app"
	"filmhub/internal/config"
	"filmhub/internal/microservices/http-api/middleware"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Setup structured logging
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	ctx := context.Background()

	store, closeStore, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer closeStore()

	var limiter middleware.Limiter
	if cfg.RateLimitEnabled {
		rdb, err := config.NewRedisClient(ctx, cfg)
		if err != nil {
			// Fall back to per-process limiting rather than refusing to start.
			logger.Warn("redis_unavailable", "error", err.Error())
		}
		if rdb != nil {
			defer rdb.Close()
		}
		limiter = app.NewLimiter(cfg, rdb)
	}

	router := app.NewRouter(cfg, logger, app.NewServices(store, cfg), store.Ping, limiter)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting_api_server",
		"addr", server.Addr,
		"store", cfg.StoreDriver,
		"env", cfg.GoEnv,
	)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		logger.Info("received_shutdown_signal")
		shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server_shutdown_failed", "error", err.Error())
			return
		}
		logger.Info("server_stopped_gracefully")
	case err := <-errChan:
		logger.Error("server_error", "error", err.Error())
		closeStore()
		os.Exit(1)
	}
}
