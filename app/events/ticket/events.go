// Package ticketevents defines topics and payloads for the ticket
// lifecycle: creation, channel binding, assignment, closing, SLA
// escalation, and transcript export.
package ticketevents

import (
	"time"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

const (
	CreationRequestedV1 = "ticket.creation.requested.v1"
	CreatedV1           = "ticket.created.v1"
	CreationFailedV1    = "ticket.creation.failed.v1"

	// ChannelCreatedV1 is the gateway's confirmation that the ticket channel
	// exists; the payload's CorrelationRef carries the ticket ID.
	ChannelCreatedV1 = "ticket.channel.created.v1"

	AssignRequestedV1 = "ticket.assign.requested.v1"
	AssignedV1        = "ticket.assigned.v1"
	AssignFailedV1    = "ticket.assign.failed.v1"

	CloseRequestedV1 = "ticket.close.requested.v1"
	ClosedV1         = "ticket.closed.v1"
	CloseFailedV1    = "ticket.close.failed.v1"

	SLAEscalatedV1        = "ticket.sla.escalated.v1"
	TranscriptRequestedV1 = "ticket.transcript.requested.v1"
)

// Close initiators recorded on ClosedPayloadV1.
const (
	ClosedByStaff  = "staff"
	ClosedBySystem = "system"
)

// CreationRequestPayloadV1 opens a ticket for the requesting member.
type CreationRequestPayloadV1 struct {
	GuildID sharedtypes.GuildID    `json:"guild_id"`
	Opener  sharedtypes.MemberInfo `json:"opener"`
	Type    sharedtypes.TicketType `json:"type"`
	Subject string                 `json:"subject"`
}

// CreatedPayloadV1 confirms the open ticket. ChannelID is empty until the
// gateway confirms channel creation.
type CreatedPayloadV1 struct {
	GuildID   sharedtypes.GuildID    `json:"guild_id"`
	TicketID  string                 `json:"ticket_id"`
	OpenerID  sharedtypes.DiscordID  `json:"opener_id"`
	Type      sharedtypes.TicketType `json:"type"`
	Subject   string                 `json:"subject"`
	CreatedAt time.Time              `json:"created_at"`
}

// CreationFailedPayloadV1 reports a rejected creation (duplicate open
// ticket, invalid type).
type CreationFailedPayloadV1 struct {
	GuildID  sharedtypes.GuildID   `json:"guild_id"`
	OpenerID sharedtypes.DiscordID `json:"opener_id"`
	Reason   string                `json:"reason"`
}

// ChannelCreatedPayloadV1 binds a gateway-created channel to its ticket.
type ChannelCreatedPayloadV1 struct {
	GuildID        sharedtypes.GuildID   `json:"guild_id"`
	ChannelID      sharedtypes.ChannelID `json:"channel_id"`
	CorrelationRef string                `json:"correlation_ref"`
}

// AssignRequestPayloadV1 assigns a ticket to a staff member. Reassignment
// overwrites the previous assignee.
type AssignRequestPayloadV1 struct {
	GuildID    sharedtypes.GuildID    `json:"guild_id"`
	TicketID   string                 `json:"ticket_id"`
	Requester  sharedtypes.MemberInfo `json:"requester"`
	AssigneeID sharedtypes.DiscordID  `json:"assignee_id"`
}

// AssignedPayloadV1 confirms the assignment.
type AssignedPayloadV1 struct {
	GuildID    sharedtypes.GuildID   `json:"guild_id"`
	TicketID   string                `json:"ticket_id"`
	ChannelID  sharedtypes.ChannelID `json:"channel_id"`
	AssigneeID sharedtypes.DiscordID `json:"assignee_id"`
}

// AssignFailedPayloadV1 reports a rejected assignment.
type AssignFailedPayloadV1 struct {
	GuildID  sharedtypes.GuildID `json:"guild_id"`
	TicketID string              `json:"ticket_id"`
	Reason   string              `json:"reason"`
}

// CloseRequestPayloadV1 closes a ticket. Staff only; the auto-close sweep
// covers system closes.
type CloseRequestPayloadV1 struct {
	GuildID   sharedtypes.GuildID    `json:"guild_id"`
	TicketID  string                 `json:"ticket_id"`
	Requester sharedtypes.MemberInfo `json:"requester"`
	Reason    string                 `json:"reason"`
}

// ClosedPayloadV1 confirms the terminal transition. ClosedBy is one of the
// ClosedBy* constants.
type ClosedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	TicketID  string                `json:"ticket_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	ClosedBy  string                `json:"closed_by"`
	Reason    string                `json:"reason"`
	ClosedAt  time.Time             `json:"closed_at"`
}

// CloseFailedPayloadV1 reports a rejected close (already closed, missing
// privilege).
type CloseFailedPayloadV1 struct {
	GuildID  sharedtypes.GuildID `json:"guild_id"`
	TicketID string              `json:"ticket_id"`
	Reason   string              `json:"reason"`
}

// SLAEscalatedPayloadV1 nags staff about an open unassigned ticket past the
// SLA deadline. Published on every sweep until the ticket is assigned or
// closed.
type SLAEscalatedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	TicketID  string                `json:"ticket_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	OpenFor   time.Duration         `json:"open_for"`
	SLA       time.Duration         `json:"sla"`
}

// TranscriptRequestedPayloadV1 asks the gateway to export the ticket
// channel's history to the transcript channel before the channel is
// deleted.
type TranscriptRequestedPayloadV1 struct {
	GuildID             sharedtypes.GuildID   `json:"guild_id"`
	TicketID            string                `json:"ticket_id"`
	ChannelID           sharedtypes.ChannelID `json:"channel_id"`
	TranscriptChannelID sharedtypes.ChannelID `json:"transcript_channel_id"`
}
