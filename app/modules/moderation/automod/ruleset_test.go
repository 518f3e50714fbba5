package automod

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
	guildtypes "github.com/aaravmaloo/blue-moon/app/shared/types/guild"
)

func testConfig() *guildtypes.GuildConfig {
	return &guildtypes.GuildConfig{
		GuildID:                "g1",
		StaffRoleID:            "staff-role",
		ProfanityFilterEnabled: true,
		LinkFilterEnabled:      true,
		CapsRatioThreshold:     0.8,
		SpamMessageCount:       6,
		SpamWindowSeconds:      8,
	}
}

func newTestRuleset() *Ruleset {
	return NewRuleset(func(cfg *guildtypes.GuildConfig, m sharedtypes.MemberInfo) bool {
		return m.IsAdmin || m.HasRole(cfg.StaffRoleID)
	})
}

func msg(user, content string) Message {
	return Message{
		GuildID: "g1",
		Author:  sharedtypes.MemberInfo{UserID: sharedtypes.DiscordID(user)},
		Content: content,
		SentAt:  time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRuleset_Evaluate(t *testing.T) {
	tests := []struct {
		name       string
		configure  func(*guildtypes.GuildConfig)
		content    string
		wantReason string
	}{
		{
			name:    "plain message allowed",
			content: "hello there, how is everyone doing",
		},
		{
			name:       "static profanity blocked",
			content:    "well shit happens",
			wantReason: ReasonProfanity,
		},
		{
			name: "guild custom word blocked",
			configure: func(cfg *guildtypes.GuildConfig) {
				cfg.CustomBadWords = []string{"banana"}
			},
			content:    "I love Banana bread",
			wantReason: ReasonProfanity,
		},
		{
			name: "profanity filter off lets custom words through",
			configure: func(cfg *guildtypes.GuildConfig) {
				cfg.ProfanityFilterEnabled = false
				cfg.CustomBadWords = []string{"banana"}
			},
			content: "banana bread",
		},
		{
			name: "regex filter reason embeds pattern",
			configure: func(cfg *guildtypes.GuildConfig) {
				cfg.RegexFilters = []string{`discord\.gg/\w+`}
			},
			content:    "join discord.gg/abc123 now",
			wantReason: `regex:discord\.gg/\w+`,
		},
		{
			name: "first matching regex wins in insertion order",
			configure: func(cfg *guildtypes.GuildConfig) {
				cfg.RegexFilters = []string{`free`, `nitro`}
			},
			content:    "free nitro here",
			wantReason: "regex:free",
		},
		{
			name:       "link blocked",
			content:    "look at https://example.com please",
			wantReason: ReasonLinks,
		},
		{
			name: "link filter disabled allows links",
			configure: func(cfg *guildtypes.GuildConfig) {
				cfg.LinkFilterEnabled = false
			},
			content: "look at https://example.com please",
		},
		{
			name:       "caps ratio above threshold blocked",
			content:    "STOP YELLING AT ME",
			wantReason: ReasonCaps,
		},
		{
			name:    "short shouting tolerated",
			content: "STOP NOW",
		},
		{
			name:    "caps ratio exactly at threshold allowed",
			content: "AAAAAAAAbb..",
		},
		{
			name:    "digits and punctuation do not count toward caps",
			content: "1234567890!!!!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			if tt.configure != nil {
				tt.configure(cfg)
			}

			got := newTestRuleset().Evaluate(cfg, msg("u1", tt.content))

			if tt.wantReason == "" {
				assert.False(t, got.Blocked)
			} else {
				assert.True(t, got.Blocked)
				assert.Equal(t, tt.wantReason, got.Reason)
			}
		})
	}
}

func TestRuleset_RegexOutranksCaps(t *testing.T) {
	// A message matching both a regex filter and the caps rule blocks with
	// the regex reason: filters run before the caps rule.
	cfg := testConfig()
	cfg.RegexFilters = []string{`SALE`}

	got := newTestRuleset().Evaluate(cfg, msg("u1", "HUGE SALE BUY NOW!!!"))

	assert.True(t, got.Blocked)
	assert.Equal(t, "regex:SALE", got.Reason)
}

func TestRuleset_StaffExemptBeatsEverything(t *testing.T) {
	cfg := testConfig()
	cfg.RegexFilters = []string{`.`}

	m := msg("mod", "shit https://spam.example AAAAAAAAAAAAAA")
	m.Author.RoleIDs = []sharedtypes.RoleID{"staff-role"}

	got := newTestRuleset().Evaluate(cfg, m)
	assert.False(t, got.Blocked)
}

func TestRuleset_SpamThreshold(t *testing.T) {
	cfg := testConfig()
	cfg.SpamMessageCount = 3
	cfg.SpamWindowSeconds = 10

	rs := newTestRuleset()
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	send := func(user string, offset time.Duration) Verdict {
		m := msg(user, "normal message content")
		m.SentAt = base.Add(offset)
		return rs.Evaluate(cfg, m)
	}

	assert.False(t, send("u1", 0).Blocked)
	assert.False(t, send("u1", time.Second).Blocked)

	got := send("u1", 2*time.Second)
	assert.True(t, got.Blocked)
	assert.Equal(t, ReasonSpam, got.Reason)

	// Another user's window is untouched.
	assert.False(t, send("u2", 2*time.Second).Blocked)

	// Outside the window u1 starts over.
	assert.False(t, send("u1", 30*time.Second).Blocked)
}

func TestCapsRatio(t *testing.T) {
	assert.Equal(t, 0.0, capsRatio("12345 !!!"))
	assert.Equal(t, 1.0, capsRatio("ABC"))
	assert.Equal(t, 0.5, capsRatio("AbCd"))
}
