// Package gatewayevents defines the event contract between the engine and
// the platform gateway collaborator (the Discord bot process). Inbound
// topics deliver raw platform events; outbound topics request platform
// actions. The gateway owns all embed/text formatting; payloads here carry
// structured facts only.
package gatewayevents

import (
	"time"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

// Inbound topics (gateway -> engine).
const (
	MessageCreatedV1    = "discord.message.created.v1"
	MessageDeletedV1    = "discord.message.deleted.v1"
	MemberJoinedV1      = "discord.member.joined.v1"
	MemberLeftV1        = "discord.member.left.v1"
	VoiceStateChangedV1 = "discord.voice.state_changed.v1"
)

// Outbound topics (engine -> gateway).
const (
	DeleteMessageRequestedV1 = "discord.message.delete.requested.v1"
	SendMessageRequestedV1   = "discord.message.send.requested.v1"
	CreateChannelRequestedV1 = "discord.channel.create.requested.v1"
	DeleteChannelRequestedV1 = "discord.channel.delete.requested.v1"
	AssignRoleRequestedV1    = "discord.role.assign.requested.v1"
	TimeoutMemberRequestedV1 = "discord.member.timeout.requested.v1"
	BanMemberRequestedV1     = "discord.member.ban.requested.v1"
	UnbanMemberRequestedV1   = "discord.member.unban.requested.v1"
)

// MessageCreatedPayloadV1 is an inbound guild message.
type MessageCreatedPayloadV1 struct {
	GuildID   sharedtypes.GuildID    `json:"guild_id"`
	ChannelID sharedtypes.ChannelID  `json:"channel_id"`
	MessageID sharedtypes.MessageID  `json:"message_id"`
	Author    sharedtypes.MemberInfo `json:"author"`
	Content   string                 `json:"content"`
	SentAt    time.Time              `json:"sent_at"`
}

// MessageDeletedPayloadV1 reports a message removed on the platform.
type MessageDeletedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	MessageID sharedtypes.MessageID `json:"message_id"`
	AuthorID  sharedtypes.DiscordID `json:"author_id"`
}

// MemberJoinedPayloadV1 reports a member joining a guild.
type MemberJoinedPayloadV1 struct {
	GuildID  sharedtypes.GuildID    `json:"guild_id"`
	Member   sharedtypes.MemberInfo `json:"member"`
	JoinedAt time.Time              `json:"joined_at"`
}

// MemberLeftPayloadV1 reports a member leaving a guild.
type MemberLeftPayloadV1 struct {
	GuildID sharedtypes.GuildID   `json:"guild_id"`
	UserID  sharedtypes.DiscordID `json:"user_id"`
	LeftAt  time.Time             `json:"left_at"`
}

// VoiceStateChangedPayloadV1 reports a voice channel join or leave.
// ChannelID is empty on a full disconnect.
type VoiceStateChangedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	UserID    sharedtypes.DiscordID `json:"user_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id,omitempty"`
	At        time.Time             `json:"at"`
}

// DeleteMessagePayloadV1 requests removal of a message.
type DeleteMessagePayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	MessageID sharedtypes.MessageID `json:"message_id"`
	Reason    string                `json:"reason,omitempty"`
}

// SendMessagePayloadV1 requests a message in a channel. MentionUserID, when
// set, asks the gateway to address the user.
type SendMessagePayloadV1 struct {
	GuildID       sharedtypes.GuildID   `json:"guild_id"`
	ChannelID     sharedtypes.ChannelID `json:"channel_id"`
	Content       string                `json:"content"`
	MentionUserID sharedtypes.DiscordID `json:"mention_user_id,omitempty"`
	MentionRoleID sharedtypes.RoleID    `json:"mention_role_id,omitempty"`
}

// CreateChannelPayloadV1 requests a private channel, used for tickets. The
// gateway replies on the requesting module's confirmation topic carrying
// CorrelationRef so the engine can bind the created channel.
type CreateChannelPayloadV1 struct {
	GuildID        sharedtypes.GuildID   `json:"guild_id"`
	Name           string                `json:"name"`
	CategoryID     sharedtypes.ChannelID `json:"category_id,omitempty"`
	VisibleTo      sharedtypes.DiscordID `json:"visible_to"`
	StaffRoleID    sharedtypes.RoleID    `json:"staff_role_id,omitempty"`
	CorrelationRef string                `json:"correlation_ref"`
}

// DeleteChannelPayloadV1 requests channel removal.
type DeleteChannelPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	Reason    string                `json:"reason,omitempty"`
}

// AssignRolePayloadV1 requests a role grant.
type AssignRolePayloadV1 struct {
	GuildID sharedtypes.GuildID   `json:"guild_id"`
	UserID  sharedtypes.DiscordID `json:"user_id"`
	RoleID  sharedtypes.RoleID    `json:"role_id"`
	Reason  string                `json:"reason,omitempty"`
}

// TimeoutMemberPayloadV1 requests a member timeout until the given time. A
// zero Until lifts the timeout.
type TimeoutMemberPayloadV1 struct {
	GuildID sharedtypes.GuildID   `json:"guild_id"`
	UserID  sharedtypes.DiscordID `json:"user_id"`
	Until   time.Time             `json:"until,omitzero"`
	Reason  string                `json:"reason,omitempty"`
}

// BanMemberPayloadV1 requests a ban.
type BanMemberPayloadV1 struct {
	GuildID sharedtypes.GuildID   `json:"guild_id"`
	UserID  sharedtypes.DiscordID `json:"user_id"`
	Reason  string                `json:"reason,omitempty"`
}

// UnbanMemberPayloadV1 requests an unban.
type UnbanMemberPayloadV1 struct {
	GuildID sharedtypes.GuildID   `json:"guild_id"`
	UserID  sharedtypes.DiscordID `json:"user_id"`
	Reason  string                `json:"reason,omitempty"`
}
