package guilddb

import (
	"context"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
	guildtypes "github.com/aaravmaloo/blue-moon/app/shared/types/guild"
)

// Repository is the persistence boundary for guild configuration.
type Repository interface {
	// GetConfig returns the stored config, or nil when the guild has none.
	GetConfig(ctx context.Context, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error)
	// GetOrCreateConfig returns the stored config, inserting defaults first
	// when the guild has none. Safe under concurrent first access.
	GetOrCreateConfig(ctx context.Context, defaults *guildtypes.GuildConfig) (*guildtypes.GuildConfig, error)
	// UpdateFields applies a partial column update. Callers clamp values
	// before handing them over.
	UpdateFields(ctx context.Context, guildID sharedtypes.GuildID, updates map[string]any) error
}
