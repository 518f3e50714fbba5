package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	guilddb "github.com/aaravmaloo/blue-moon/app/modules/guild/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Creating guild_configs table...")
			if _, err := db.NewCreateTable().Model((*guilddb.GuildConfig)(nil)).IfNotExists().Exec(ctx); err != nil {
				return err
			}
			return nil
		},
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Dropping guild_configs table...")
			if _, err := db.NewDropTable().Model((*guilddb.GuildConfig)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
				return err
			}
			return nil
		},
	)
}
