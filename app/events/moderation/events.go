// Package moderationevents defines topics and payloads for the moderation
// module: rule-pipeline verdicts, warnings, temporary restrictions, and the
// join-safety events.
package moderationevents

import (
	"time"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

const (
	// MessageAllowedV1 chains an inbound message that survived the rule
	// pipeline to downstream consumers (leveling XP, ticket activity).
	MessageAllowedV1 = "moderation.message.allowed.v1"
	// MessageBlockedV1 records a pipeline block; the delete request is
	// published to the gateway separately.
	MessageBlockedV1 = "moderation.message.blocked.v1"

	WarnRequestedV1  = "moderation.warn.requested.v1"
	WarnAddedV1      = "moderation.warn.added.v1"
	WarnFailedV1     = "moderation.warn.failed.v1"
	WarnsRequestedV1 = "moderation.warns.list.requested.v1"
	WarnsListedV1    = "moderation.warns.listed.v1"
	WarnsFailedV1    = "moderation.warns.list.failed.v1"

	TempBanRequestedV1 = "moderation.tempban.requested.v1"
	TempBanAppliedV1   = "moderation.tempban.applied.v1"
	TempBanFailedV1    = "moderation.tempban.failed.v1"

	TimeoutRequestedV1 = "moderation.timeout.requested.v1"
	TimeoutAppliedV1   = "moderation.timeout.applied.v1"
	TimeoutFailedV1    = "moderation.timeout.failed.v1"

	// JoinBurstDetectedV1 alerts staff that the per-guild join rate limit
	// tripped.
	JoinBurstDetectedV1 = "moderation.join_burst.detected.v1"
	// AltAccountTimedOutV1 records an anti-alt timeout applied on join.
	AltAccountTimedOutV1 = "moderation.alt_account.timed_out.v1"
)

// MessageAllowedPayloadV1 carries the surviving message downstream.
type MessageAllowedPayloadV1 struct {
	GuildID   sharedtypes.GuildID    `json:"guild_id"`
	ChannelID sharedtypes.ChannelID  `json:"channel_id"`
	MessageID sharedtypes.MessageID  `json:"message_id"`
	Author    sharedtypes.MemberInfo `json:"author"`
	SentAt    time.Time              `json:"sent_at"`
}

// MessageBlockedPayloadV1 records a blocked message and the rule that
// blocked it ("spam", "profanity", "regex:<pattern>", "links", "caps").
type MessageBlockedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	MessageID sharedtypes.MessageID `json:"message_id"`
	AuthorID  sharedtypes.DiscordID `json:"author_id"`
	Reason    string                `json:"reason"`
}

// WarnRequestPayloadV1 asks for a warning on TargetID.
type WarnRequestPayloadV1 struct {
	GuildID   sharedtypes.GuildID    `json:"guild_id"`
	Requester sharedtypes.MemberInfo `json:"requester"`
	TargetID  sharedtypes.DiscordID  `json:"target_id"`
	Reason    string                 `json:"reason"`
}

// WarnAddedPayloadV1 confirms a stored warning.
type WarnAddedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	TargetID  sharedtypes.DiscordID `json:"target_id"`
	WarnID    int64                 `json:"warn_id"`
	Reason    string                `json:"reason"`
	WarnCount int                   `json:"warn_count"`
}

// WarnFailedPayloadV1 reports a rejected warning.
type WarnFailedPayloadV1 struct {
	GuildID  sharedtypes.GuildID   `json:"guild_id"`
	TargetID sharedtypes.DiscordID `json:"target_id"`
	Reason   string                `json:"reason"`
}

// WarnsListRequestPayloadV1 asks for the warnings on TargetID.
type WarnsListRequestPayloadV1 struct {
	GuildID   sharedtypes.GuildID    `json:"guild_id"`
	ChannelID sharedtypes.ChannelID  `json:"channel_id"`
	Requester sharedtypes.MemberInfo `json:"requester"`
	TargetID  sharedtypes.DiscordID  `json:"target_id"`
}

// WarnRecordV1 is one stored warning.
type WarnRecordV1 struct {
	WarnID      int64                 `json:"warn_id"`
	ModeratorID sharedtypes.DiscordID `json:"moderator_id"`
	Reason      string                `json:"reason"`
	CreatedAt   time.Time             `json:"created_at"`
}

// WarnsListedPayloadV1 returns the warnings on TargetID.
type WarnsListedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	TargetID  sharedtypes.DiscordID `json:"target_id"`
	Warns     []WarnRecordV1        `json:"warns"`
}

// WarnsListFailedPayloadV1 reports a rejected listing.
type WarnsListFailedPayloadV1 struct {
	GuildID  sharedtypes.GuildID   `json:"guild_id"`
	TargetID sharedtypes.DiscordID `json:"target_id"`
	Reason   string                `json:"reason"`
}

// TempBanRequestPayloadV1 asks for a ban lasting Duration (compact syntax,
// e.g. "2h", "3d").
type TempBanRequestPayloadV1 struct {
	GuildID   sharedtypes.GuildID    `json:"guild_id"`
	Requester sharedtypes.MemberInfo `json:"requester"`
	TargetID  sharedtypes.DiscordID  `json:"target_id"`
	Duration  string                 `json:"duration"`
	Reason    string                 `json:"reason"`
}

// TempBanAppliedPayloadV1 confirms the ban and the scheduled reversal.
type TempBanAppliedPayloadV1 struct {
	GuildID  sharedtypes.GuildID   `json:"guild_id"`
	TargetID sharedtypes.DiscordID `json:"target_id"`
	Until    time.Time             `json:"until"`
	Reason   string                `json:"reason"`
}

// TempBanFailedPayloadV1 reports a rejected tempban.
type TempBanFailedPayloadV1 struct {
	GuildID  sharedtypes.GuildID   `json:"guild_id"`
	TargetID sharedtypes.DiscordID `json:"target_id"`
	Reason   string                `json:"reason"`
}

// TimeoutRequestPayloadV1 asks for a timeout lasting Duration.
type TimeoutRequestPayloadV1 struct {
	GuildID   sharedtypes.GuildID    `json:"guild_id"`
	Requester sharedtypes.MemberInfo `json:"requester"`
	TargetID  sharedtypes.DiscordID  `json:"target_id"`
	Duration  string                 `json:"duration"`
	Reason    string                 `json:"reason"`
}

// TimeoutAppliedPayloadV1 confirms the timeout and the scheduled reversal.
type TimeoutAppliedPayloadV1 struct {
	GuildID  sharedtypes.GuildID   `json:"guild_id"`
	TargetID sharedtypes.DiscordID `json:"target_id"`
	Until    time.Time             `json:"until"`
	Reason   string                `json:"reason"`
}

// TimeoutFailedPayloadV1 reports a rejected timeout.
type TimeoutFailedPayloadV1 struct {
	GuildID  sharedtypes.GuildID   `json:"guild_id"`
	TargetID sharedtypes.DiscordID `json:"target_id"`
	Reason   string                `json:"reason"`
}

// JoinBurstDetectedPayloadV1 alerts on a guild-wide join burst.
type JoinBurstDetectedPayloadV1 struct {
	GuildID       sharedtypes.GuildID `json:"guild_id"`
	JoinsInWindow int                 `json:"joins_in_window"`
	WindowSeconds int                 `json:"window_seconds"`
}

// AltAccountTimedOutPayloadV1 records an anti-alt timeout on join.
type AltAccountTimedOutPayloadV1 struct {
	GuildID    sharedtypes.GuildID   `json:"guild_id"`
	UserID     sharedtypes.DiscordID `json:"user_id"`
	AccountAge time.Duration         `json:"account_age"`
	MinAge     time.Duration         `json:"min_age"`
}
