package moderationdb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

// Warning is one moderator warning on a member. Warnings accumulate and are
// never deleted by the engine.
type Warning struct {
	bun.BaseModel `bun:"table:warnings,alias:w"`

	ID          int64                 `bun:"id,pk,autoincrement"`
	GuildID     sharedtypes.GuildID   `bun:"guild_id,notnull,type:varchar(20)"`
	UserID      sharedtypes.DiscordID `bun:"user_id,notnull,type:varchar(20)"`
	ModeratorID sharedtypes.DiscordID `bun:"moderator_id,notnull,type:varchar(20)"`
	Reason      string                `bun:"reason,notnull"`
	CreatedAt   time.Time             `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Restriction kinds.
const (
	RestrictionBan     = "ban"
	RestrictionTimeout = "timeout"
)

// Restriction is the audit record for a temporary ban or timeout. The
// platform action and its scheduled reversal live elsewhere; this row only
// records that the restriction happened and when it ends.
type Restriction struct {
	bun.BaseModel `bun:"table:restrictions,alias:rs"`

	ID          int64                 `bun:"id,pk,autoincrement"`
	GuildID     sharedtypes.GuildID   `bun:"guild_id,notnull,type:varchar(20)"`
	UserID      sharedtypes.DiscordID `bun:"user_id,notnull,type:varchar(20)"`
	ModeratorID sharedtypes.DiscordID `bun:"moderator_id,notnull,type:varchar(20)"`
	Kind        string                `bun:"kind,notnull,type:varchar(16)"`
	Reason      string                `bun:"reason,notnull"`
	ExpiresAt   time.Time             `bun:"expires_at,notnull"`
	CreatedAt   time.Time             `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
