package moderationservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
	guildtypes "github.com/aaravmaloo/blue-moon/app/shared/types/guild"
)

func joinPayload(user string, joinedAt, accountCreated time.Time) *gatewayevents.MemberJoinedPayloadV1 {
	return &gatewayevents.MemberJoinedPayloadV1{
		GuildID: "g1",
		Member: sharedtypes.MemberInfo{
			UserID:           sharedtypes.DiscordID(user),
			AccountCreatedAt: accountCreated,
		},
		JoinedAt: joinedAt,
	}
}

func TestModerationService_MemberJoined_AntiAlt(t *testing.T) {
	ctx := context.Background()
	joinedAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	cfg := &guildtypes.GuildConfig{
		GuildID:            "g1",
		AntiAltMinAgeHours: 24,
		WelcomeChannelID:   "welcome",
		AutoroleID:         "member-role",
	}
	s := newTestService(&FakeModerationRepository{}, &fakeConfigProvider{cfg: cfg}, &fakeScheduler{}, nil)

	t.Run("young account timed out until old enough", func(t *testing.T) {
		// Account is 6 hours old; 18 hours remain to the minimum.
		result, err := s.MemberJoined(ctx, joinPayload("alt1", joinedAt, joinedAt.Add(-6*time.Hour)))
		require.NoError(t, err)

		outcome, ok := result.Success.(*JoinOutcome)
		require.True(t, ok)
		require.NotNil(t, outcome.AltTimeout)
		assert.Equal(t, joinedAt.Add(18*time.Hour), outcome.TimeoutUntil)
		assert.Equal(t, 6*time.Hour, outcome.AltTimeout.AccountAge)
		assert.Equal(t, sharedtypes.RoleID("member-role"), outcome.AutoroleID)
		assert.Equal(t, sharedtypes.ChannelID("welcome"), outcome.WelcomeChannelID)
	})

	t.Run("old account passes", func(t *testing.T) {
		result, err := s.MemberJoined(ctx, joinPayload("u1", joinedAt, joinedAt.Add(-48*time.Hour)))
		require.NoError(t, err)

		outcome := result.Success.(*JoinOutcome)
		assert.Nil(t, outcome.AltTimeout)
		assert.True(t, outcome.TimeoutUntil.IsZero())
	})

	t.Run("bots skip the age check", func(t *testing.T) {
		payload := joinPayload("bot1", joinedAt, joinedAt.Add(-time.Hour))
		payload.Member.IsBot = true

		result, err := s.MemberJoined(ctx, payload)
		require.NoError(t, err)
		assert.Nil(t, result.Success.(*JoinOutcome).AltTimeout)
	})
}

func TestModerationService_MemberJoined_JoinBurst(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	cfg := &guildtypes.GuildConfig{
		GuildID:        "g1",
		JoinBurstCount: 3,
	}
	s := newTestService(&FakeModerationRepository{}, &fakeConfigProvider{cfg: cfg}, &fakeScheduler{}, nil)

	join := func(user string, offset time.Duration) *JoinOutcome {
		payload := joinPayload(user, base.Add(offset), base.Add(-30*24*time.Hour))
		result, err := s.MemberJoined(ctx, payload)
		require.NoError(t, err)
		return result.Success.(*JoinOutcome)
	}

	assert.Nil(t, join("u1", 0).JoinBurst)
	assert.Nil(t, join("u2", time.Second).JoinBurst)

	// The third join within the window crosses the threshold.
	burst := join("u3", 2*time.Second).JoinBurst
	require.NotNil(t, burst)
	assert.Equal(t, 3, burst.JoinsInWindow)
	assert.Equal(t, 60, burst.WindowSeconds)

	// Joins past the crossing do not re-alert.
	assert.Nil(t, join("u4", 3*time.Second).JoinBurst)
}

func TestModerationService_MemberLeft(t *testing.T) {
	ctx := context.Background()

	t.Run("goodbye channel configured", func(t *testing.T) {
		cfg := &guildtypes.GuildConfig{GuildID: "g1", GoodbyeChannelID: "farewell"}
		s := newTestService(&FakeModerationRepository{}, &fakeConfigProvider{cfg: cfg}, &fakeScheduler{}, nil)

		result, err := s.MemberLeft(ctx, &gatewayevents.MemberLeftPayloadV1{
			GuildID: "g1",
			UserID:  "u1",
		})
		require.NoError(t, err)

		outcome, ok := result.Success.(*LeaveOutcome)
		require.True(t, ok)
		assert.Equal(t, sharedtypes.ChannelID("farewell"), outcome.GoodbyeChannelID)
	})

	t.Run("no goodbye channel means no action", func(t *testing.T) {
		cfg := &guildtypes.GuildConfig{GuildID: "g1"}
		s := newTestService(&FakeModerationRepository{}, &fakeConfigProvider{cfg: cfg}, &fakeScheduler{}, nil)

		result, err := s.MemberLeft(ctx, &gatewayevents.MemberLeftPayloadV1{GuildID: "g1", UserID: "u1"})
		require.NoError(t, err)
		assert.Nil(t, result.Success)
	})
}
