package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	moderationdb "github.com/aaravmaloo/blue-moon/app/modules/moderation/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Creating warnings table...")
			if _, err := db.NewCreateTable().Model((*moderationdb.Warning)(nil)).IfNotExists().Exec(ctx); err != nil {
				return err
			}
			if _, err := db.NewCreateIndex().
				Model((*moderationdb.Warning)(nil)).
				Index("warnings_guild_user_idx").
				IfNotExists().
				Column("guild_id", "user_id").
				Exec(ctx); err != nil {
				return err
			}

			fmt.Println("Creating restrictions table...")
			if _, err := db.NewCreateTable().Model((*moderationdb.Restriction)(nil)).IfNotExists().Exec(ctx); err != nil {
				return err
			}
			return nil
		},
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Dropping restrictions table...")
			if _, err := db.NewDropTable().Model((*moderationdb.Restriction)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
				return err
			}
			fmt.Println("Dropping warnings table...")
			if _, err := db.NewDropTable().Model((*moderationdb.Warning)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
				return err
			}
			return nil
		},
	)
}
