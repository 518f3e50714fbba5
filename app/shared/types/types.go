package sharedtypes

import "time"

// GuildID is the Discord guild (server) snowflake under which all state is namespaced.
type GuildID string

// DiscordID is a Discord user snowflake.
type DiscordID string

// ChannelID is a Discord channel snowflake.
type ChannelID string

// RoleID is a Discord role snowflake.
type RoleID string

// MessageID is a Discord message snowflake.
type MessageID string

func (g GuildID) String() string   { return string(g) }
func (d DiscordID) String() string { return string(d) }
func (c ChannelID) String() string { return string(c) }

// TicketType classifies a support ticket.
type TicketType string

const (
	TicketTypeSupport TicketType = "support"
	TicketTypeReport  TicketType = "report"
	TicketTypeAppeal  TicketType = "appeal"
)

func (t TicketType) IsValid() bool {
	switch t {
	case TicketTypeSupport, TicketTypeReport, TicketTypeAppeal:
		return true
	}
	return false
}

// TicketStatus is the lifecycle state of a ticket. Closed is terminal.
type TicketStatus string

const (
	TicketStatusOpen   TicketStatus = "open"
	TicketStatusClosed TicketStatus = "closed"
)

// MemberInfo carries the privilege-relevant facts about the actor of an
// inbound gateway event. The gateway collaborator resolves roles and the
// administrator bit; the engine only evaluates them. A zero MemberInfo is
// treated as "not staff" everywhere (fail closed).
type MemberInfo struct {
	UserID           DiscordID `json:"user_id"`
	IsBot            bool      `json:"is_bot"`
	IsAdmin          bool      `json:"is_admin"`
	RoleIDs          []RoleID  `json:"role_ids,omitempty"`
	AccountCreatedAt time.Time `json:"account_created_at,omitzero"`
}

// HasRole reports whether the member carries the given role.
func (m MemberInfo) HasRole(role RoleID) bool {
	if role == "" {
		return false
	}
	for _, r := range m.RoleIDs {
		if r == role {
			return true
		}
	}
	return false
}
