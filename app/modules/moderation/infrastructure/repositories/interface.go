package moderationdb

import (
	"context"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

// Repository handles moderation persistence: warnings and the restriction
// audit trail.
type Repository interface {
	// AddWarning stores a warning and returns it with its ID assigned,
	// plus the member's total warning count including the new one.
	AddWarning(ctx context.Context, warning *Warning) (*Warning, int, error)
	// ListWarnings returns a member's warnings, oldest first.
	ListWarnings(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID) ([]Warning, error)
	// AddRestriction stores a temporary ban or timeout audit record.
	AddRestriction(ctx context.Context, restriction *Restriction) error
}
