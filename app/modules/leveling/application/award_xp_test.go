package levelingservice

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	moderationevents "github.com/aaravmaloo/blue-moon/app/events/moderation"
	"github.com/aaravmaloo/blue-moon/app/shared/metrics"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

func newTestService(repo *FakeLevelingRepository, guilds *fakeConfigProvider, rollXP func() int) *LevelingService {
	return NewLevelingService(
		repo,
		guilds,
		rollXP,
		slog.New(slog.DiscardHandler),
		metrics.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
	)
}

func allowedMessage(user string) *moderationevents.MessageAllowedPayloadV1 {
	return &moderationevents.MessageAllowedPayloadV1{
		GuildID:   "g1",
		ChannelID: "c1",
		MessageID: "m1",
		Author:    sharedtypes.MemberInfo{UserID: sharedtypes.DiscordID(user)},
	}
}

func TestLevelingService_AwardMessageXP_CrossesThresholdOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewFakeLevelingRepository()

	rolls := []int{90, 25, 40}
	i := 0
	s := newTestService(repo, &fakeConfigProvider{}, func() int {
		v := rolls[i]
		i++
		return v
	})

	// 90 XP: well below the level 1 threshold of 150.
	result, err := s.AwardMessageXP(ctx, allowedMessage("u1"))
	require.NoError(t, err)
	outcome := result.Success.(*XPOutcome)
	assert.Equal(t, int64(90), outcome.Awarded.TotalXP)
	assert.Nil(t, outcome.LevelChanged)

	// 115 total: still level 0.
	result, err = s.AwardMessageXP(ctx, allowedMessage("u1"))
	require.NoError(t, err)
	outcome = result.Success.(*XPOutcome)
	assert.Equal(t, int64(115), outcome.Awarded.TotalXP)
	assert.Nil(t, outcome.LevelChanged)

	// 155 total crosses 150: exactly one level change to 1.
	result, err = s.AwardMessageXP(ctx, allowedMessage("u1"))
	require.NoError(t, err)
	outcome = result.Success.(*XPOutcome)
	assert.Equal(t, int64(155), outcome.Awarded.TotalXP)
	require.NotNil(t, outcome.LevelChanged)
	assert.Equal(t, 0, outcome.LevelChanged.OldLevel)
	assert.Equal(t, 1, outcome.LevelChanged.NewLevel)
	assert.Equal(t, 1, repo.state("g1", "u1").Level)
}

func TestLevelingService_AwardMessageXP_MultiLevelJumpSingleEvent(t *testing.T) {
	ctx := context.Background()
	repo := NewFakeLevelingRepository()

	// One award big enough to jump from 0 past levels 1 and 2.
	s := newTestService(repo, &fakeConfigProvider{}, func() int { return 20 })
	repo.state("g1", "u1").XP = 390 // just below level 2 at 400

	result, err := s.AwardMessageXP(ctx, allowedMessage("u1"))
	require.NoError(t, err)
	outcome := result.Success.(*XPOutcome)
	require.NotNil(t, outcome.LevelChanged)
	assert.Equal(t, 0, outcome.LevelChanged.OldLevel)
	assert.Equal(t, 2, outcome.LevelChanged.NewLevel)
}

func TestLevelingService_AwardMessageXP_RateScales(t *testing.T) {
	ctx := context.Background()
	repo := NewFakeLevelingRepository()

	// Rate 2.0 doubles the base roll.
	cfg := &fakeConfigProvider{}
	s := newTestService(repo, cfg, func() int { return 20 })
	provider, err := cfg.Config(ctx, "g1")
	require.NoError(t, err)
	provider.XPMessageRate = 2.0
	cfg.cfg = provider

	result, err := s.AwardMessageXP(ctx, allowedMessage("u1"))
	require.NoError(t, err)
	assert.Equal(t, int64(40), result.Success.(*XPOutcome).Awarded.Amount)
}

func TestLevelingService_AwardMessageXP_LevelRoleReward(t *testing.T) {
	ctx := context.Background()
	repo := NewFakeLevelingRepository()
	repo.LevelRoles[1] = "level-1-role"
	repo.state("g1", "u1").XP = 140

	s := newTestService(repo, &fakeConfigProvider{}, func() int { return 15 })

	result, err := s.AwardMessageXP(ctx, allowedMessage("u1"))
	require.NoError(t, err)
	outcome := result.Success.(*XPOutcome)
	require.NotNil(t, outcome.LevelChanged)
	assert.Equal(t, sharedtypes.RoleID("level-1-role"), outcome.RewardRoleID)
}

func TestLevelingService_AwardMessageXP_BotIgnored(t *testing.T) {
	repo := NewFakeLevelingRepository()
	s := newTestService(repo, &fakeConfigProvider{}, func() int { return 20 })

	payload := allowedMessage("bot1")
	payload.Author.IsBot = true

	result, err := s.AwardMessageXP(context.Background(), payload)
	require.NoError(t, err)
	assert.Nil(t, result.Success)
	assert.Empty(t, repo.States)
}
