package guilddb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

// GuildConfig is the bun model backing per-guild settings.
type GuildConfig struct {
	bun.BaseModel `bun:"table:guild_configs,alias:gc"`

	GuildID   sharedtypes.GuildID `bun:"guild_id,pk,notnull,type:varchar(20)"`
	CreatedAt time.Time           `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time           `bun:"updated_at,nullzero,notnull,default:current_timestamp"`

	LogChannelID     string `bun:"log_channel_id,nullzero,type:varchar(20)"`
	WelcomeChannelID string `bun:"welcome_channel_id,nullzero,type:varchar(20)"`
	GoodbyeChannelID string `bun:"goodbye_channel_id,nullzero,type:varchar(20)"`
	StaffRoleID      string `bun:"staff_role_id,nullzero,type:varchar(20)"`
	AutoroleID       string `bun:"autorole_id,nullzero,type:varchar(20)"`

	ProfanityFilterEnabled bool    `bun:"profanity_filter_enabled,notnull,default:true"`
	LinkFilterEnabled      bool    `bun:"link_filter_enabled,notnull,default:false"`
	CapsRatioThreshold     float64 `bun:"caps_ratio_threshold,notnull,default:0.8"`
	SpamMessageCount       int     `bun:"spam_message_count,notnull,default:6"`
	SpamWindowSeconds      int     `bun:"spam_window_seconds,notnull,default:8"`
	AntiAltMinAgeHours     int     `bun:"anti_alt_min_age_hours,notnull,default:24"`
	JoinBurstCount         int     `bun:"join_burst_count,notnull,default:10"`

	CustomBadWords []string `bun:"custom_bad_words,array"`
	RegexFilters   []string `bun:"regex_filters,array"`

	TicketCategoryID    string `bun:"ticket_category_id,nullzero,type:varchar(20)"`
	TranscriptChannelID string `bun:"transcript_channel_id,nullzero,type:varchar(20)"`
	TicketSLAMinutes    int    `bun:"ticket_sla_minutes,notnull,default:60"`

	XPMessageRate float64 `bun:"xp_message_rate,notnull,default:1.0"`
	XPVoiceRate   float64 `bun:"xp_voice_rate,notnull,default:1.0"`
}
