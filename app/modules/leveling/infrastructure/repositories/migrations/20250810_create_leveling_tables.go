package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	levelingdb "github.com/aaravmaloo/blue-moon/app/modules/leveling/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Creating user_states table...")
			if _, err := db.NewCreateTable().Model((*levelingdb.UserState)(nil)).IfNotExists().Exec(ctx); err != nil {
				return err
			}
			if _, err := db.NewCreateIndex().
				Model((*levelingdb.UserState)(nil)).
				Index("user_states_guild_xp_idx").
				IfNotExists().
				Column("guild_id").
				ColumnExpr("xp DESC").
				Exec(ctx); err != nil {
				return err
			}

			fmt.Println("Creating user_items table...")
			if _, err := db.NewCreateTable().Model((*levelingdb.UserItem)(nil)).IfNotExists().Exec(ctx); err != nil {
				return err
			}
			if _, err := db.NewCreateIndex().
				Model((*levelingdb.UserItem)(nil)).
				Index("user_items_owner_idx").
				IfNotExists().
				Column("guild_id", "user_id", "kind", "position").
				Exec(ctx); err != nil {
				return err
			}

			fmt.Println("Creating level_roles table...")
			if _, err := db.NewCreateTable().Model((*levelingdb.LevelRole)(nil)).IfNotExists().Exec(ctx); err != nil {
				return err
			}
			return nil
		},
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Dropping level_roles table...")
			if _, err := db.NewDropTable().Model((*levelingdb.LevelRole)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
				return err
			}
			fmt.Println("Dropping user_items table...")
			if _, err := db.NewDropTable().Model((*levelingdb.UserItem)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
				return err
			}
			fmt.Println("Dropping user_states table...")
			if _, err := db.NewDropTable().Model((*levelingdb.UserState)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
				return err
			}
			return nil
		},
	)
}
