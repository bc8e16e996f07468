// Package testhelper provides a migrated PostgreSQL for repository and
// end-to-end tests, plus fixtures for the activity and read-state tables.
package testhelper

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/sitetrack-backend/internal/adapter/postgres"
)

const (
	// TEST_DATABASE_DSN points the suite at an existing database instead
	// of starting a container.
	envDSN   = "TEST_DATABASE_DSN"
	envImage = "TEST_POSTGRES_IMAGE"

	defaultImage = "postgres:17-alpine"
)

var (
	dbOnce  sync.Once
	dbDSN   string
	dbSetup error
)

// SetupTestDB returns a pool on the shared, migrated test database. The
// database is prepared once per test binary; each caller gets its own
// pool, closed through t.Cleanup. Tests isolate themselves with
// UniqueProject rather than truncating tables.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dbOnce.Do(func() { dbDSN, dbSetup = prepareDatabase() })
	if dbSetup != nil {
		t.Fatalf("testhelper: prepare database: %v", dbSetup)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbDSN)
	if err != nil {
		t.Fatalf("testhelper: connect: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func prepareDatabase() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn := os.Getenv(envDSN)
	if dsn == "" {
		var err error
		if dsn, err = startContainer(ctx); err != nil {
			return "", err
		}
	}
	if err := Migrate(ctx, dsn); err != nil {
		return "", err
	}
	return dsn, nil
}

func startContainer(ctx context.Context) (string, error) {
	image := os.Getenv(envImage)
	if image == "" {
		image = defaultImage
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "sitetrack",
				"POSTGRES_PASSWORD": "sitetrack",
				"POSTGRES_DB":       "sitetrack_test",
			},
			// Postgres logs readiness twice: once for the init run, once for real.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start postgres container: %w", err)
	}

	endpoint, err := c.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("resolve postgres endpoint: %w", err)
	}
	return fmt.Sprintf("postgres://sitetrack:sitetrack@%s/sitetrack_test?sslmode=disable", endpoint), nil
}

// Migrate applies every embedded migration to the database at dsn.
func Migrate(ctx context.Context, dsn string) error {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close()

	_, err = m.Up(ctx)
	return err
}
