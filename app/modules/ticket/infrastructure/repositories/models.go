package ticketdb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

// Ticket is one support ticket. Status open → closed is the only
// transition; a partial unique index keeps one open ticket per
// (guild, opener).
type Ticket struct {
	bun.BaseModel `bun:"table:tickets,alias:t"`

	ID      string                 `bun:"id,pk,type:uuid"`
	GuildID sharedtypes.GuildID    `bun:"guild_id,notnull,type:varchar(20)"`
	Opener  sharedtypes.DiscordID  `bun:"opener_id,notnull,type:varchar(20)"`
	Type    sharedtypes.TicketType `bun:"type,notnull,type:varchar(16)"`
	Subject string                 `bun:"subject,notnull"`

	Status     sharedtypes.TicketStatus `bun:"status,notnull,default:'open',type:varchar(8)"`
	AssigneeID sharedtypes.DiscordID    `bun:"assignee_id,nullzero,type:varchar(20)"`
	ChannelID  sharedtypes.ChannelID    `bun:"channel_id,nullzero,type:varchar(20)"`

	CreatedAt      time.Time `bun:"created_at,notnull"`
	LastActivityAt time.Time `bun:"last_activity_at,notnull"`
	ClosedAt       time.Time `bun:"closed_at,nullzero"`
}
