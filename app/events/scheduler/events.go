// Package schedulerevents defines topics and payloads for deferred-action
// scheduling requests (reminders and scheduled messages; the restriction
// reversals are scheduled internally by the moderation module).
package schedulerevents

import (
	"time"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

const (
	ReminderRequestedV1 = "scheduler.reminder.requested.v1"
	ReminderScheduledV1 = "scheduler.reminder.scheduled.v1"
	ReminderFailedV1    = "scheduler.reminder.failed.v1"

	MessageScheduleRequestedV1 = "scheduler.message.requested.v1"
	MessageScheduledV1         = "scheduler.message.scheduled.v1"
	MessageScheduleFailedV1    = "scheduler.message.failed.v1"
)

// ReminderRequestPayloadV1 schedules a reminder for the requesting user.
// When holds the user-supplied time spec: compact duration ("10m") or
// natural language ("tomorrow at 9am").
type ReminderRequestPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	UserID    sharedtypes.DiscordID `json:"user_id"`
	When      string                `json:"when"`
	Text      string                `json:"text"`
}

// ReminderScheduledPayloadV1 confirms the scheduled reminder.
type ReminderScheduledPayloadV1 struct {
	GuildID sharedtypes.GuildID   `json:"guild_id"`
	UserID  sharedtypes.DiscordID `json:"user_id"`
	FireAt  time.Time             `json:"fire_at"`
	Text    string                `json:"text"`
}

// ReminderFailedPayloadV1 reports an unparseable time spec.
type ReminderFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID   `json:"guild_id"`
	UserID  sharedtypes.DiscordID `json:"user_id"`
	Reason  string                `json:"reason"`
}

// MessageScheduleRequestPayloadV1 schedules a one-shot channel message.
// Staff only.
type MessageScheduleRequestPayloadV1 struct {
	GuildID   sharedtypes.GuildID    `json:"guild_id"`
	ChannelID sharedtypes.ChannelID  `json:"channel_id"`
	Requester sharedtypes.MemberInfo `json:"requester"`
	When      string                 `json:"when"`
	Content   string                 `json:"content"`
}

// MessageScheduledPayloadV1 confirms the scheduled message.
type MessageScheduledPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	FireAt    time.Time             `json:"fire_at"`
}

// MessageScheduleFailedPayloadV1 reports a rejected schedule request.
type MessageScheduleFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}
