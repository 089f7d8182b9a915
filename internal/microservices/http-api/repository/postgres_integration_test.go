//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"filmhub/database"
	"filmhub/internal/config"
	"filmhub/internal/microservices/http-api/repository"
	"filmhub/internal/microservices/http-api/repository/storetest"
)

func skipIfNoDocker(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if exec.CommandContext(ctx, "docker", "info").Run() != nil {
		t.Skip("Skipping test: Docker not available")
	}
}

func TestPostgresStore(t *testing.T) {
	skipIfNoDocker(t)
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "filmhub",
				"POSTGRES_PASSWORD": "filmhub",
				"POSTGRES_DB":       "filmhub",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	cfg := &config.Config{
		DatabaseURL: fmt.Sprintf("postgres://filmhub:filmhub@%s:%s/filmhub?sslmode=disable", host, port.Port()),
		DBMaxConns:  4,
		LogLevel:    "info",
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	pg, err := database.ConnectPostgres(ctx, cfg, log)
	require.NoError(t, err)
	t.Cleanup(pg.Close)

	// A second run finds nothing to apply.
	require.NoError(t, database.RunMigrations(cfg.DatabaseURL, log))

	storetest.Run(t, repository.NewStore(pg.DB))
}
