// Package guildtypes holds the per-guild configuration domain type shared
// by every module that reads guild settings.
package guildtypes

import (
	"time"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

// GuildConfig is the canonical per-guild settings record. A row is created
// lazily with defaults on first access and never deleted; modules treat a
// missing row as "defaults apply".
type GuildConfig struct {
	GuildID sharedtypes.GuildID

	LogChannelID     sharedtypes.ChannelID
	WelcomeChannelID sharedtypes.ChannelID
	GoodbyeChannelID sharedtypes.ChannelID
	StaffRoleID      sharedtypes.RoleID
	AutoroleID       sharedtypes.RoleID

	ProfanityFilterEnabled bool
	LinkFilterEnabled      bool
	CapsRatioThreshold     float64
	SpamMessageCount       int
	SpamWindowSeconds      int
	AntiAltMinAgeHours     int
	JoinBurstCount         int

	CustomBadWords []string
	RegexFilters   []string

	TicketCategoryID    sharedtypes.ChannelID
	TranscriptChannelID sharedtypes.ChannelID
	TicketSLAMinutes    int

	XPMessageRate float64
	XPVoiceRate   float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SpamWindow returns the spam window as a duration.
func (c *GuildConfig) SpamWindow() time.Duration {
	return time.Duration(c.SpamWindowSeconds) * time.Second
}

// TicketSLA returns the ticket SLA as a duration.
func (c *GuildConfig) TicketSLA() time.Duration {
	return time.Duration(c.TicketSLAMinutes) * time.Minute
}

// AntiAltMinAge returns the minimum account age as a duration. Zero
// disables the anti-alt check.
func (c *GuildConfig) AntiAltMinAge() time.Duration {
	return time.Duration(c.AntiAltMinAgeHours) * time.Hour
}
