package levelingservice

import (
	"context"
	"fmt"
	"time"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	"github.com/aaravmaloo/blue-moon/app/shared/attr"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
)

// voiceXPPerMinute is the base voice XP rate, scaled by the guild's voice
// rate setting.
const voiceXPPerMinute = 5

// TrackVoiceState records a voice join or flushes a finished session. A
// leave without a recorded join (restart, abnormal disconnect) is dropped;
// that session's XP is forfeit.
func (s *LevelingService) TrackVoiceState(ctx context.Context, payload *gatewayevents.VoiceStateChangedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "TrackVoiceState", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		key := fmt.Sprintf("%s:%s", payload.GuildID, payload.UserID)

		if payload.ChannelID != "" {
			s.voiceSessions.Store(key, payload.At)
			return results.OperationResult{}, nil
		}

		start, ok := s.voiceSessions.LoadAndDelete(key)
		if !ok {
			return results.OperationResult{}, nil
		}

		seconds := int64(payload.At.Sub(start) / time.Second)
		if seconds <= 0 {
			return results.OperationResult{}, nil
		}

		cfg, err := s.guilds.Config(ctx, payload.GuildID)
		if err != nil {
			return results.OperationResult{}, err
		}

		gain := int64(float64(seconds) / 60.0 * voiceXPPerMinute * cfg.XPVoiceRate)

		state, err := s.repo.AddVoice(ctx, payload.GuildID, payload.UserID, seconds, gain)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("flush voice session: %w", err)
		}

		s.logger.InfoContext(ctx, "Voice session flushed",
			attr.ExtractCorrelationID(ctx),
			attr.GuildID("guild_id", payload.GuildID),
			attr.UserID("user_id", payload.UserID),
			attr.Int64("seconds", seconds),
			attr.Int64("xp", gain),
		)

		if gain <= 0 {
			return results.OperationResult{}, nil
		}

		outcome, err := s.settleLevel(ctx, state, gain, "voice")
		if err != nil {
			return results.OperationResult{}, err
		}
		return results.SuccessResult(outcome), nil
	})
}
