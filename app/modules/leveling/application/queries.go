package levelingservice

import (
	"context"
	"fmt"

	levelingevents "github.com/aaravmaloo/blue-moon/app/events/leveling"
	"github.com/aaravmaloo/blue-moon/app/modules/leveling/xpmath"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 25
)

// Leaderboard returns the guild's top members by XP.
func (s *LevelingService) Leaderboard(ctx context.Context, payload *levelingevents.LeaderboardRequestPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "Leaderboard", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		limit := payload.Limit
		if limit <= 0 {
			limit = defaultLeaderboardLimit
		}
		if limit > maxLeaderboardLimit {
			limit = maxLeaderboardLimit
		}

		states, err := s.repo.Leaderboard(ctx, payload.GuildID, limit)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("leaderboard query: %w", err)
		}

		entries := make([]levelingevents.LeaderboardEntryV1, len(states))
		for i, st := range states {
			entries[i] = levelingevents.LeaderboardEntryV1{
				Rank:   i + 1,
				UserID: st.UserID,
				XP:     st.XP,
				Level:  st.Level,
			}
		}

		return results.SuccessResult(&levelingevents.LeaderboardRetrievedPayloadV1{
			GuildID:   payload.GuildID,
			ChannelID: payload.ChannelID,
			Entries:   entries,
		}), nil
	})
}

// Rank returns one member's standing, including the XP still needed for the
// next level.
func (s *LevelingService) Rank(ctx context.Context, payload *levelingevents.RankRequestPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "Rank", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		state, err := s.repo.GetUserState(ctx, payload.GuildID, payload.UserID)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("rank query: %w", err)
		}
		if state == nil {
			return results.FailureResult(&levelingevents.RankFailedPayloadV1{
				GuildID: payload.GuildID,
				UserID:  payload.UserID,
				Reason:  "no XP recorded",
			}), nil
		}

		return results.SuccessResult(&levelingevents.RankRetrievedPayloadV1{
			GuildID:      payload.GuildID,
			ChannelID:    payload.ChannelID,
			UserID:       payload.UserID,
			XP:           state.XP,
			Level:        state.Level,
			VoiceSeconds: state.VoiceSeconds,
			NextLevelXP:  xpmath.XPForLevel(state.Level+1) - state.XP,
		}), nil
	})
}
