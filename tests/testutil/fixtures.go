package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/vkozyrev/fintrack/internal/infrastructure/postgres"
)

// TestDB provides an isolated test database connection. Tests that use it skip
// unless DATABASE_URL points at a disposable database.
type TestDB struct {
	Pool *pgxpool.Pool
	t    *testing.T
}

// NewTestDB connects to the database named by DATABASE_URL and applies
// migrations. The test is skipped when DATABASE_URL is unset.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = filepath.Join("..", "..", "migrations")
	}

	if err := postgres.RunMigrations(dbURL, migrationsPath, zerolog.Nop()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, dbURL, 5, 1)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	return &TestDB{Pool: pool, t: t}
}

// TruncateAll clears every application table.
func (db *TestDB) TruncateAll(ctx context.Context) {
	db.t.Helper()

	for _, table := range []string{"transactions", "debts", "savings_goals"} {
		if _, err := db.Pool.Exec(ctx, "TRUNCATE TABLE "+table); err != nil {
			db.t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}

// Cleanup closes the connection pool.
func (db *TestDB) Cleanup() {
	db.Pool.Close()
}
