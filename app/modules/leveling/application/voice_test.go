package levelingservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
)

func TestLevelingService_TrackVoiceState(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("session flush awards voice xp", func(t *testing.T) {
		repo := NewFakeLevelingRepository()
		s := newTestService(repo, &fakeConfigProvider{}, nil)

		// Join.
		result, err := s.TrackVoiceState(ctx, &gatewayevents.VoiceStateChangedPayloadV1{
			GuildID: "g1", UserID: "u1", ChannelID: "vc1", At: base,
		})
		require.NoError(t, err)
		assert.Nil(t, result.Success)

		// Leave 10 minutes later: 600s, 50 XP at rate 1.0.
		result, err = s.TrackVoiceState(ctx, &gatewayevents.VoiceStateChangedPayloadV1{
			GuildID: "g1", UserID: "u1", At: base.Add(10 * time.Minute),
		})
		require.NoError(t, err)

		outcome, ok := result.Success.(*XPOutcome)
		require.True(t, ok)
		assert.Equal(t, int64(50), outcome.Awarded.Amount)
		assert.Equal(t, "voice", outcome.Awarded.Source)
		assert.Equal(t, int64(600), repo.state("g1", "u1").VoiceSeconds)
	})

	t.Run("leave without recorded join is dropped", func(t *testing.T) {
		repo := NewFakeLevelingRepository()
		s := newTestService(repo, &fakeConfigProvider{}, nil)

		result, err := s.TrackVoiceState(ctx, &gatewayevents.VoiceStateChangedPayloadV1{
			GuildID: "g1", UserID: "u1", At: base,
		})
		require.NoError(t, err)
		assert.Nil(t, result.Success)
		assert.Empty(t, repo.States)
	})

	t.Run("short session records seconds without xp", func(t *testing.T) {
		repo := NewFakeLevelingRepository()
		s := newTestService(repo, &fakeConfigProvider{}, nil)

		_, err := s.TrackVoiceState(ctx, &gatewayevents.VoiceStateChangedPayloadV1{
			GuildID: "g1", UserID: "u1", ChannelID: "vc1", At: base,
		})
		require.NoError(t, err)

		// 5 seconds is below one XP; seconds still accumulate.
		result, err := s.TrackVoiceState(ctx, &gatewayevents.VoiceStateChangedPayloadV1{
			GuildID: "g1", UserID: "u1", At: base.Add(5 * time.Second),
		})
		require.NoError(t, err)
		assert.Nil(t, result.Success)
		assert.Equal(t, int64(5), repo.state("g1", "u1").VoiceSeconds)
	})
}
