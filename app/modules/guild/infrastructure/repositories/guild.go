package guilddb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
	guildtypes "github.com/aaravmaloo/blue-moon/app/shared/types/guild"
)

type GuildDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*GuildDBImpl)(nil)

func (db *GuildDBImpl) GetConfig(ctx context.Context, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error) {
	var config GuildConfig
	err := db.DB.NewSelect().Model(&config).Where("guild_id = ?", guildID).Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return toSharedModel(&config), nil
}

func (db *GuildDBImpl) GetOrCreateConfig(ctx context.Context, defaults *guildtypes.GuildConfig) (*guildtypes.GuildConfig, error) {
	model := toDBModel(defaults)

	// Insert-if-absent keeps concurrent first accesses from racing; the
	// follow-up select returns whichever row won.
	_, err := db.DB.NewInsert().
		Model(model).
		On("CONFLICT (guild_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("insert default guild config: %w", err)
	}

	return db.GetConfig(ctx, defaults.GuildID)
}

func (db *GuildDBImpl) UpdateFields(ctx context.Context, guildID sharedtypes.GuildID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	q := db.DB.NewUpdate().Model(&GuildConfig{}).
		Set("updated_at = current_timestamp").
		Where("guild_id = ?", guildID)
	for k, v := range updates {
		q = q.Set(fmt.Sprintf("%s = ?", k), v)
	}
	_, err := q.Exec(ctx)
	return err
}

func toSharedModel(cfg *GuildConfig) *guildtypes.GuildConfig {
	if cfg == nil {
		return nil
	}
	return &guildtypes.GuildConfig{
		GuildID:                cfg.GuildID,
		LogChannelID:           sharedtypes.ChannelID(cfg.LogChannelID),
		WelcomeChannelID:       sharedtypes.ChannelID(cfg.WelcomeChannelID),
		GoodbyeChannelID:       sharedtypes.ChannelID(cfg.GoodbyeChannelID),
		StaffRoleID:            sharedtypes.RoleID(cfg.StaffRoleID),
		AutoroleID:             sharedtypes.RoleID(cfg.AutoroleID),
		ProfanityFilterEnabled: cfg.ProfanityFilterEnabled,
		LinkFilterEnabled:      cfg.LinkFilterEnabled,
		CapsRatioThreshold:     cfg.CapsRatioThreshold,
		SpamMessageCount:       cfg.SpamMessageCount,
		SpamWindowSeconds:      cfg.SpamWindowSeconds,
		AntiAltMinAgeHours:     cfg.AntiAltMinAgeHours,
		JoinBurstCount:         cfg.JoinBurstCount,
		CustomBadWords:         cfg.CustomBadWords,
		RegexFilters:           cfg.RegexFilters,
		TicketCategoryID:       sharedtypes.ChannelID(cfg.TicketCategoryID),
		TranscriptChannelID:    sharedtypes.ChannelID(cfg.TranscriptChannelID),
		TicketSLAMinutes:       cfg.TicketSLAMinutes,
		XPMessageRate:          cfg.XPMessageRate,
		XPVoiceRate:            cfg.XPVoiceRate,
		CreatedAt:              cfg.CreatedAt,
		UpdatedAt:              cfg.UpdatedAt,
	}
}

func toDBModel(cfg *guildtypes.GuildConfig) *GuildConfig {
	if cfg == nil {
		return nil
	}
	return &GuildConfig{
		GuildID:                cfg.GuildID,
		LogChannelID:           string(cfg.LogChannelID),
		WelcomeChannelID:       string(cfg.WelcomeChannelID),
		GoodbyeChannelID:       string(cfg.GoodbyeChannelID),
		StaffRoleID:            string(cfg.StaffRoleID),
		AutoroleID:             string(cfg.AutoroleID),
		ProfanityFilterEnabled: cfg.ProfanityFilterEnabled,
		LinkFilterEnabled:      cfg.LinkFilterEnabled,
		CapsRatioThreshold:     cfg.CapsRatioThreshold,
		SpamMessageCount:       cfg.SpamMessageCount,
		SpamWindowSeconds:      cfg.SpamWindowSeconds,
		AntiAltMinAgeHours:     cfg.AntiAltMinAgeHours,
		JoinBurstCount:         cfg.JoinBurstCount,
		CustomBadWords:         cfg.CustomBadWords,
		RegexFilters:           cfg.RegexFilters,
		TicketCategoryID:       string(cfg.TicketCategoryID),
		TranscriptChannelID:    string(cfg.TranscriptChannelID),
		TicketSLAMinutes:       cfg.TicketSLAMinutes,
		XPMessageRate:          cfg.XPMessageRate,
		XPVoiceRate:            cfg.XPVoiceRate,
	}
}
