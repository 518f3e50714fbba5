package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	economydb "github.com/aaravmaloo/blue-moon/app/modules/economy/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Creating economy_accounts table...")
			if _, err := db.NewCreateTable().Model((*economydb.EconomyAccount)(nil)).IfNotExists().Exec(ctx); err != nil {
				return err
			}
			return nil
		},
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Dropping economy_accounts table...")
			if _, err := db.NewDropTable().Model((*economydb.EconomyAccount)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
				return err
			}
			return nil
		},
	)
}
