package moderationdb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

type ModerationDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*ModerationDBImpl)(nil)

func (db *ModerationDBImpl) AddWarning(ctx context.Context, warning *Warning) (*Warning, int, error) {
	_, err := db.DB.NewInsert().
		Model(warning).
		Returning("id, created_at").
		Exec(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("insert warning: %w", err)
	}

	count, err := db.DB.NewSelect().
		Model((*Warning)(nil)).
		Where("guild_id = ?", warning.GuildID).
		Where("user_id = ?", warning.UserID).
		Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count warnings: %w", err)
	}

	return warning, count, nil
}

func (db *ModerationDBImpl) ListWarnings(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID) ([]Warning, error) {
	var warnings []Warning
	err := db.DB.NewSelect().
		Model(&warnings).
		Where("guild_id = ?", guildID).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list warnings: %w", err)
	}
	return warnings, nil
}

func (db *ModerationDBImpl) AddRestriction(ctx context.Context, restriction *Restriction) error {
	_, err := db.DB.NewInsert().
		Model(restriction).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert restriction: %w", err)
	}
	return nil
}
