// Package bundb owns the Postgres connection and hands out the per-module
// repository implementations over one shared bun.DB.
package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	economydb "github.com/aaravmaloo/blue-moon/app/modules/economy/infrastructure/repositories"
	guilddb "github.com/aaravmaloo/blue-moon/app/modules/guild/infrastructure/repositories"
	levelingdb "github.com/aaravmaloo/blue-moon/app/modules/leveling/infrastructure/repositories"
	moderationdb "github.com/aaravmaloo/blue-moon/app/modules/moderation/infrastructure/repositories"
	ticketdb "github.com/aaravmaloo/blue-moon/app/modules/ticket/infrastructure/repositories"
	"github.com/aaravmaloo/blue-moon/config"
)

// DBService bundles the repository implementations for module wiring.
type DBService struct {
	GuildDB      *guilddb.GuildDBImpl
	ModerationDB *moderationdb.ModerationDBImpl
	LevelingDB   *levelingdb.LevelingDBImpl
	EconomyDB    *economydb.EconomyDBImpl
	TicketDB     *ticketdb.TicketDBImpl

	db *bun.DB
}

// GetDB returns the underlying database connection pool.
func (dbService *DBService) GetDB() *bun.DB {
	return dbService.db
}

// NewBunDBService connects to Postgres and builds the repositories.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb, err := pgConn(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	db.RegisterModel(
		(*guilddb.GuildConfig)(nil),
		(*moderationdb.Warning)(nil),
		(*moderationdb.Restriction)(nil),
		(*levelingdb.UserState)(nil),
		(*levelingdb.UserItem)(nil),
		(*levelingdb.LevelRole)(nil),
		(*economydb.EconomyAccount)(nil),
		(*ticketdb.Ticket)(nil),
	)

	return &DBService{
		GuildDB:      &guilddb.GuildDBImpl{DB: db},
		ModerationDB: &moderationdb.ModerationDBImpl{DB: db},
		LevelingDB:   &levelingdb.LevelingDBImpl{DB: db},
		EconomyDB:    &economydb.EconomyDBImpl{DB: db},
		TicketDB:     &ticketdb.TicketDBImpl{DB: db},
		db:           db,
	}, nil
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqldb, nil
}
