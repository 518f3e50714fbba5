package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	ticketdb "github.com/aaravmaloo/blue-moon/app/modules/ticket/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Creating tickets table...")
			if _, err := db.NewCreateTable().Model((*ticketdb.Ticket)(nil)).IfNotExists().Exec(ctx); err != nil {
				return err
			}

			// One open ticket per opener; the application pre-checks but the
			// index is the authority under concurrency.
			if _, err := db.ExecContext(ctx,
				`CREATE UNIQUE INDEX IF NOT EXISTS tickets_one_open_per_opener_idx
				 ON tickets (guild_id, opener_id) WHERE status = 'open'`); err != nil {
				return err
			}

			if _, err := db.NewCreateIndex().
				Model((*ticketdb.Ticket)(nil)).
				Index("tickets_channel_idx").
				IfNotExists().
				Column("guild_id", "channel_id").
				Exec(ctx); err != nil {
				return err
			}
			return nil
		},
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Dropping tickets table...")
			if _, err := db.NewDropTable().Model((*ticketdb.Ticket)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
				return err
			}
			return nil
		},
	)
}
