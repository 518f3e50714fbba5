package levelingdb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

type LevelingDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*LevelingDBImpl)(nil)

func (db *LevelingDBImpl) AddXP(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, amount int64) (*UserState, error) {
	state := &UserState{GuildID: guildID, UserID: userID, XP: amount}

	// Upsert-increment keeps concurrent awards additive; the returned row
	// is the post-increment state.
	_, err := db.DB.NewInsert().
		Model(state).
		On("CONFLICT (guild_id, user_id) DO UPDATE").
		Set("xp = us.xp + EXCLUDED.xp").
		Set("updated_at = current_timestamp").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("add xp: %w", err)
	}
	return state, nil
}

func (db *LevelingDBImpl) AddVoice(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, seconds, xp int64) (*UserState, error) {
	state := &UserState{GuildID: guildID, UserID: userID, XP: xp, VoiceSeconds: seconds}

	_, err := db.DB.NewInsert().
		Model(state).
		On("CONFLICT (guild_id, user_id) DO UPDATE").
		Set("xp = us.xp + EXCLUDED.xp").
		Set("voice_seconds = us.voice_seconds + EXCLUDED.voice_seconds").
		Set("updated_at = current_timestamp").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("add voice session: %w", err)
	}
	return state, nil
}

func (db *LevelingDBImpl) SetLevel(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, level int) error {
	_, err := db.DB.NewUpdate().
		Model(&UserState{}).
		Set("level = ?", level).
		Set("updated_at = current_timestamp").
		Where("guild_id = ?", guildID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set level: %w", err)
	}
	return nil
}

func (db *LevelingDBImpl) GetUserState(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID) (*UserState, error) {
	var state UserState
	err := db.DB.NewSelect().
		Model(&state).
		Where("guild_id = ?", guildID).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

func (db *LevelingDBImpl) Leaderboard(ctx context.Context, guildID sharedtypes.GuildID, limit int) ([]UserState, error) {
	var states []UserState
	err := db.DB.NewSelect().
		Model(&states).
		Where("guild_id = ?", guildID).
		Order("xp DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	return states, nil
}

func (db *LevelingDBImpl) CountHigher(ctx context.Context, guildID sharedtypes.GuildID, xp int64) (int, error) {
	count, err := db.DB.NewSelect().
		Model((*UserState)(nil)).
		Where("guild_id = ?", guildID).
		Where("xp > ?", xp).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count higher: %w", err)
	}
	return count, nil
}

func (db *LevelingDBImpl) AddItem(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, kind, text string) (int, error) {
	item := &UserItem{GuildID: guildID, UserID: userID, Kind: kind, Text: text}

	// Position is the current count plus one; appends from one user arrive
	// serially through the router so the count does not race.
	count, err := db.DB.NewSelect().
		Model((*UserItem)(nil)).
		Where("guild_id = ?", guildID).
		Where("user_id = ?", userID).
		Where("kind = ?", kind).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}

	item.Position = count + 1
	if _, err := db.DB.NewInsert().Model(item).Exec(ctx); err != nil {
		return 0, fmt.Errorf("insert item: %w", err)
	}
	return item.Position, nil
}

func (db *LevelingDBImpl) RemoveItem(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, kind string, position int) (string, bool, error) {
	var removed UserItem
	err := db.DB.NewDelete().
		Model(&removed).
		Where("guild_id = ?", guildID).
		Where("user_id = ?", userID).
		Where("kind = ?", kind).
		Where("position = ?", position).
		Returning("text").
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("delete item: %w", err)
	}

	_, err = db.DB.NewUpdate().
		Model(&UserItem{}).
		Set("position = position - 1").
		Where("guild_id = ?", guildID).
		Where("user_id = ?", userID).
		Where("kind = ?", kind).
		Where("position > ?", position).
		Exec(ctx)
	if err != nil {
		return "", false, fmt.Errorf("renumber items: %w", err)
	}
	return removed.Text, true, nil
}

func (db *LevelingDBImpl) ListItems(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, kind string) ([]UserItem, error) {
	var items []UserItem
	err := db.DB.NewSelect().
		Model(&items).
		Where("guild_id = ?", guildID).
		Where("user_id = ?", userID).
		Where("kind = ?", kind).
		Order("position ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (db *LevelingDBImpl) GetLevelRole(ctx context.Context, guildID sharedtypes.GuildID, level int) (sharedtypes.RoleID, error) {
	var role LevelRole
	err := db.DB.NewSelect().
		Model(&role).
		Where("guild_id = ?", guildID).
		Where("level = ?", level).
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return role.RoleID, nil
}
