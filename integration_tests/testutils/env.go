//go:build integration

// Package testutils provides the shared environment for integration tests:
// a live Postgres with every module's migrations applied.
package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/migrate"

	_ "github.com/jackc/pgx/v5/stdlib"

	economymigrations "github.com/aaravmaloo/blue-moon/app/modules/economy/infrastructure/repositories/migrations"
	guildmigrations "github.com/aaravmaloo/blue-moon/app/modules/guild/infrastructure/repositories/migrations"
	levelingmigrations "github.com/aaravmaloo/blue-moon/app/modules/leveling/infrastructure/repositories/migrations"
	moderationmigrations "github.com/aaravmaloo/blue-moon/app/modules/moderation/infrastructure/repositories/migrations"
	ticketmigrations "github.com/aaravmaloo/blue-moon/app/modules/ticket/infrastructure/repositories/migrations"
	"github.com/aaravmaloo/blue-moon/config"
	"github.com/aaravmaloo/blue-moon/db/bundb"
	"github.com/aaravmaloo/blue-moon/integration_tests/containers"
)

// TestEnvironment is a live Postgres with the schema migrated.
type TestEnvironment struct {
	DB  *bundb.DBService
	DSN string

	pgContainer *postgres.PostgresContainer
}

// NewTestEnvironment starts Postgres, runs every module's migrations, and
// returns the wired repositories. Cleanup is registered on t.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	ctx := context.Background()

	pgContainer, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		t.Fatalf("failed to start postgres: %v", err)
	}
	t.Cleanup(func() {
		_ = pgContainer.Terminate(context.Background())
	})

	if err := runMigrations(ctx, dsn); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	dbService, err := bundb.NewBunDBService(ctx, config.PostgresConfig{DSN: dsn})
	if err != nil {
		t.Fatalf("failed to build db service: %v", err)
	}
	t.Cleanup(func() {
		_ = dbService.GetDB().Close()
	})

	return &TestEnvironment{
		DB:          dbService,
		DSN:         dsn,
		pgContainer: pgContainer,
	}
}

// Logger returns a discard logger for wiring services under test.
func Logger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// EngineDefaults returns the per-guild fallback settings used by the
// services under test.
func EngineDefaults() config.EngineConfig {
	return config.EngineConfig{
		CapsRatioThreshold: 0.7,
		SpamMessageCount:   5,
		SpamWindowSeconds:  10,
		AntiAltMinAgeHours: 24,
		JoinBurstCount:     5,
		TicketSLAMinutes:   60,
	}
}

func runMigrations(ctx context.Context, dsn string) error {
	sqldb, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrationSets := map[string]*migrate.Migrations{
		"guild":      guildmigrations.Migrations,
		"moderation": moderationmigrations.Migrations,
		"leveling":   levelingmigrations.Migrations,
		"economy":    economymigrations.Migrations,
		"ticket":     ticketmigrations.Migrations,
	}

	for name, migrations := range migrationSets {
		migrator := migrate.NewMigrator(db, migrations)
		if err := migrator.Init(ctx); err != nil {
			return fmt.Errorf("init %s migrations: %w", name, err)
		}
		if _, err := migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate %s: %w", name, err)
		}
	}
	return nil
}
