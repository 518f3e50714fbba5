package ticketdb

import (
	"context"
	"errors"
	"time"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

// ErrDuplicateOpen marks an insert that hit the one-open-ticket-per-opener
// index.
var ErrDuplicateOpen = errors.New("opener already has an open ticket")

// Repository handles ticket persistence.
type Repository interface {
	// CreateTicket inserts a new open ticket. Returns ErrDuplicateOpen when
	// the opener already has an open ticket in the guild.
	CreateTicket(ctx context.Context, ticket *Ticket) error
	// GetOpenByOpener returns the opener's open ticket, or nil, nil.
	GetOpenByOpener(ctx context.Context, guildID sharedtypes.GuildID, openerID sharedtypes.DiscordID) (*Ticket, error)
	// BindChannel records the gateway-created channel on the ticket.
	BindChannel(ctx context.Context, guildID sharedtypes.GuildID, ticketID string, channelID sharedtypes.ChannelID) error
	// Assign sets the assignee on an open ticket; ok is false when the
	// ticket is missing or closed.
	Assign(ctx context.Context, guildID sharedtypes.GuildID, ticketID string, assigneeID sharedtypes.DiscordID) (*Ticket, bool, error)
	// Close transitions open → closed; ok is false when the ticket is
	// missing or already closed, and nothing changes.
	Close(ctx context.Context, guildID sharedtypes.GuildID, ticketID string, closedAt time.Time) (*Ticket, bool, error)
	// TouchActivity bumps last_activity_at on the open ticket bound to the
	// channel, if any.
	TouchActivity(ctx context.Context, guildID sharedtypes.GuildID, channelID sharedtypes.ChannelID, at time.Time) error
	// ListOpenUnassigned returns every open ticket without an assignee,
	// across guilds.
	ListOpenUnassigned(ctx context.Context) ([]Ticket, error)
	// ListOpenInactiveSince returns open tickets whose last activity is at
	// or before cutoff.
	ListOpenInactiveSince(ctx context.Context, cutoff time.Time) ([]Ticket, error)
}
