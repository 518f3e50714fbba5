package schedulerservice

import (
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

// Deferred action job kinds. Each kind carries exactly the facts its worker
// needs to publish the corresponding outbound event; nothing is recomputed
// at fire time.

// ReminderJob fires a user reminder into the channel it was created in.
type ReminderJob struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	UserID    sharedtypes.DiscordID `json:"user_id"`
	Text      string                `json:"text"`
}

func (ReminderJob) Kind() string { return "reminder" }

// ScheduledMessageJob fires a staff-scheduled channel message.
type ScheduledMessageJob struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	Content   string                `json:"content"`
}

func (ScheduledMessageJob) Kind() string { return "scheduled_message" }

// UnbanJob reverses a temporary ban.
type UnbanJob struct {
	GuildID sharedtypes.GuildID   `json:"guild_id"`
	UserID  sharedtypes.DiscordID `json:"user_id"`
	Reason  string                `json:"reason"`
}

func (UnbanJob) Kind() string { return "unban" }

// UntimeoutJob lifts a temporary timeout.
type UntimeoutJob struct {
	GuildID sharedtypes.GuildID   `json:"guild_id"`
	UserID  sharedtypes.DiscordID `json:"user_id"`
}

func (UntimeoutJob) Kind() string { return "untimeout" }

// ChannelDeleteJob removes a channel, used for closed ticket channels after
// the grace delay.
type ChannelDeleteJob struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	Reason    string                `json:"reason"`
}

func (ChannelDeleteJob) Kind() string { return "channel_delete" }
