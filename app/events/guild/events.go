// Package guildevents defines topics and payloads for guild configuration
// operations.
package guildevents

import (
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

const (
	ConfigUpdateRequestedV1 = "guild.config.update.requested.v1"
	ConfigUpdatedV1         = "guild.config.updated.v1"
	ConfigUpdateFailedV1    = "guild.config.update.failed.v1"

	BadWordsSetRequestedV1 = "guild.config.badwords.set.requested.v1"
	BadWordsSetV1          = "guild.config.badwords.set.v1"
	BadWordsSetFailedV1    = "guild.config.badwords.set.failed.v1"

	RegexFilterAddRequestedV1    = "guild.config.regexfilter.add.requested.v1"
	RegexFilterAddedV1           = "guild.config.regexfilter.added.v1"
	RegexFilterAddFailedV1       = "guild.config.regexfilter.add.failed.v1"
	RegexFilterRemoveRequestedV1 = "guild.config.regexfilter.remove.requested.v1"
	RegexFilterRemovedV1         = "guild.config.regexfilter.removed.v1"
	RegexFilterRemoveFailedV1    = "guild.config.regexfilter.remove.failed.v1"
)

// ConfigUpdatePayloadV1 is a partial settings update. Nil fields are left
// untouched; present fields are clamped to their legal ranges before being
// written.
type ConfigUpdatePayloadV1 struct {
	GuildID   sharedtypes.GuildID    `json:"guild_id"`
	Requester sharedtypes.MemberInfo `json:"requester"`

	LogChannelID     *sharedtypes.ChannelID `json:"log_channel_id,omitempty"`
	WelcomeChannelID *sharedtypes.ChannelID `json:"welcome_channel_id,omitempty"`
	GoodbyeChannelID *sharedtypes.ChannelID `json:"goodbye_channel_id,omitempty"`
	StaffRoleID      *sharedtypes.RoleID    `json:"staff_role_id,omitempty"`
	AutoroleID       *sharedtypes.RoleID    `json:"autorole_id,omitempty"`

	ProfanityFilterEnabled *bool    `json:"profanity_filter_enabled,omitempty"`
	LinkFilterEnabled      *bool    `json:"link_filter_enabled,omitempty"`
	CapsRatioThreshold     *float64 `json:"caps_ratio_threshold,omitempty"`
	SpamMessageCount       *int     `json:"spam_message_count,omitempty"`
	SpamWindowSeconds      *int     `json:"spam_window_seconds,omitempty"`
	AntiAltMinAgeHours     *int     `json:"anti_alt_min_age_hours,omitempty"`
	JoinBurstCount         *int     `json:"join_burst_count,omitempty"`

	TicketCategoryID    *sharedtypes.ChannelID `json:"ticket_category_id,omitempty"`
	TranscriptChannelID *sharedtypes.ChannelID `json:"transcript_channel_id,omitempty"`
	TicketSLAMinutes    *int                   `json:"ticket_sla_minutes,omitempty"`

	XPMessageRate *float64 `json:"xp_message_rate,omitempty"`
	XPVoiceRate   *float64 `json:"xp_voice_rate,omitempty"`
}

// ConfigUpdatedPayloadV1 confirms an applied update and echoes the effective
// (clamped) values of the fields that changed.
type ConfigUpdatedPayloadV1 struct {
	GuildID       sharedtypes.GuildID `json:"guild_id"`
	UpdatedFields []string            `json:"updated_fields"`
}

// ConfigUpdateFailedPayloadV1 reports a rejected update.
type ConfigUpdateFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}

// BadWordsSetPayloadV1 replaces the guild's custom bad-word list.
type BadWordsSetPayloadV1 struct {
	GuildID   sharedtypes.GuildID    `json:"guild_id"`
	Requester sharedtypes.MemberInfo `json:"requester"`
	Words     []string               `json:"words"`
}

// BadWordsSetResultPayloadV1 confirms the stored list.
type BadWordsSetResultPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Count   int                 `json:"count"`
}

// BadWordsSetFailedPayloadV1 reports a rejected bad-word update.
type BadWordsSetFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}

// RegexFilterPayloadV1 adds or removes one regex filter pattern. Patterns
// are validated with regexp.Compile before being stored.
type RegexFilterPayloadV1 struct {
	GuildID   sharedtypes.GuildID    `json:"guild_id"`
	Requester sharedtypes.MemberInfo `json:"requester"`
	Pattern   string                 `json:"pattern"`
}

// RegexFilterResultPayloadV1 confirms a filter change.
type RegexFilterResultPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Pattern string              `json:"pattern"`
}

// RegexFilterFailedPayloadV1 reports a rejected filter change (bad pattern,
// missing privilege, unknown pattern on remove).
type RegexFilterFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Pattern string              `json:"pattern"`
	Reason  string              `json:"reason"`
}
