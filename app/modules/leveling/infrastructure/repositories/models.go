package levelingdb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

// UserState is one member's progression record. XP and voice seconds only
// grow; level is derived from XP and cached so leaderboard reads skip the
// curve math.
type UserState struct {
	bun.BaseModel `bun:"table:user_states,alias:us"`

	GuildID sharedtypes.GuildID   `bun:"guild_id,pk,notnull,type:varchar(20)"`
	UserID  sharedtypes.DiscordID `bun:"user_id,pk,notnull,type:varchar(20)"`

	XP           int64 `bun:"xp,notnull,default:0"`
	Level        int   `bun:"level,notnull,default:0"`
	VoiceSeconds int64 `bun:"voice_seconds,notnull,default:0"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// Item kinds.
const (
	ItemNote = "note"
	ItemTodo = "todo"
)

// UserItem is one note or todo. Items are position-ordered per
// (guild, user, kind), positions are 1-based and renumbered on removal, and
// duplicate texts are allowed.
type UserItem struct {
	bun.BaseModel `bun:"table:user_items,alias:ui"`

	ID       int64                 `bun:"id,pk,autoincrement"`
	GuildID  sharedtypes.GuildID   `bun:"guild_id,notnull,type:varchar(20)"`
	UserID   sharedtypes.DiscordID `bun:"user_id,notnull,type:varchar(20)"`
	Kind     string                `bun:"kind,notnull,type:varchar(8)"`
	Position int                   `bun:"position,notnull"`
	Text     string                `bun:"text,notnull"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// LevelRole maps a level to the role granted on reaching it.
type LevelRole struct {
	bun.BaseModel `bun:"table:level_roles,alias:lr"`

	GuildID sharedtypes.GuildID `bun:"guild_id,pk,notnull,type:varchar(20)"`
	Level   int                 `bun:"level,pk,notnull"`
	RoleID  sharedtypes.RoleID  `bun:"role_id,notnull,type:varchar(20)"`
}
