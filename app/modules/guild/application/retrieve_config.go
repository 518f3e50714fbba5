package guildservice

import (
	"context"
	"fmt"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
	guildtypes "github.com/aaravmaloo/blue-moon/app/shared/types/guild"
)

// Config returns the guild's effective settings, creating a default row on
// first access. The row is never deleted afterwards.
func (s *GuildService) Config(ctx context.Context, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error) {
	if guildID == "" {
		return nil, ErrInvalidGuildID
	}

	cfg, err := s.repo.GetConfig(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("get guild config: %w", err)
	}
	if cfg != nil {
		return cfg, nil
	}

	cfg, err = s.repo.GetOrCreateConfig(ctx, s.defaultConfig(guildID))
	if err != nil {
		return nil, fmt.Errorf("create default guild config: %w", err)
	}
	return cfg, nil
}

// defaultConfig builds the settings row seeded for a guild seen for the
// first time.
func (s *GuildService) defaultConfig(guildID sharedtypes.GuildID) *guildtypes.GuildConfig {
	return &guildtypes.GuildConfig{
		GuildID:                guildID,
		ProfanityFilterEnabled: true,
		LinkFilterEnabled:      false,
		CapsRatioThreshold:     s.defaults.CapsRatioThreshold,
		SpamMessageCount:       s.defaults.SpamMessageCount,
		SpamWindowSeconds:      s.defaults.SpamWindowSeconds,
		AntiAltMinAgeHours:     s.defaults.AntiAltMinAgeHours,
		JoinBurstCount:         s.defaults.JoinBurstCount,
		TicketSLAMinutes:       s.defaults.TicketSLAMinutes,
		XPMessageRate:          1.0,
		XPVoiceRate:            1.0,
	}
}
