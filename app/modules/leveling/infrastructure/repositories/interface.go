package levelingdb

import (
	"context"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

// Repository handles leveling persistence: user progression, notes/todos,
// and level role rewards.
type Repository interface {
	// AddXP atomically adds amount to a member's XP, creating the row when
	// absent, and returns the updated state.
	AddXP(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, amount int64) (*UserState, error)
	// AddVoice atomically adds a flushed voice session: seconds to the
	// voice counter and xp to the XP total.
	AddVoice(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, seconds, xp int64) (*UserState, error)
	// SetLevel stores the recomputed level cache.
	SetLevel(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, level int) error
	// GetUserState returns a member's state, or nil when none exists.
	GetUserState(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID) (*UserState, error)

	// Leaderboard returns the top limit members by XP.
	Leaderboard(ctx context.Context, guildID sharedtypes.GuildID, limit int) ([]UserState, error)
	// CountHigher returns how many members out-rank the given XP total.
	CountHigher(ctx context.Context, guildID sharedtypes.GuildID, xp int64) (int, error)

	// AddItem appends a note or todo and returns its 1-based position.
	AddItem(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, kind, text string) (int, error)
	// RemoveItem removes the item at a 1-based position, renumbering the
	// rest. Returns the removed text, or found=false when out of range.
	RemoveItem(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, kind string, position int) (string, bool, error)
	// ListItems returns a member's items of one kind in position order.
	ListItems(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, kind string) ([]UserItem, error)

	// GetLevelRole returns the reward role for a level, or "" when none is
	// configured.
	GetLevelRole(ctx context.Context, guildID sharedtypes.GuildID, level int) (sharedtypes.RoleID, error)
}
