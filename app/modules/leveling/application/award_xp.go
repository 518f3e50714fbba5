package levelingservice

import (
	"context"
	"fmt"

	levelingevents "github.com/aaravmaloo/blue-moon/app/events/leveling"
	moderationevents "github.com/aaravmaloo/blue-moon/app/events/moderation"
	levelingdb "github.com/aaravmaloo/blue-moon/app/modules/leveling/infrastructure/repositories"
	"github.com/aaravmaloo/blue-moon/app/modules/leveling/xpmath"
	"github.com/aaravmaloo/blue-moon/app/shared/attr"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

// XPOutcome is what one XP grant produced. LevelChanged and RewardRoleID are
// set only when the grant crossed a level threshold; a grant spanning
// several thresholds still yields a single level change.
type XPOutcome struct {
	Awarded      *levelingevents.XPAwardedPayloadV1
	LevelChanged *levelingevents.LevelChangedPayloadV1
	RewardRoleID sharedtypes.RoleID
}

// AwardMessageXP grants message XP: a uniform base roll scaled by the
// guild's message rate, added atomically, followed by a level recompute.
func (s *LevelingService) AwardMessageXP(ctx context.Context, payload *moderationevents.MessageAllowedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "AwardMessageXP", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		if payload.Author.IsBot {
			return results.OperationResult{}, nil
		}

		cfg, err := s.guilds.Config(ctx, payload.GuildID)
		if err != nil {
			return results.OperationResult{}, err
		}

		gain := int64(float64(s.rollXP()) * cfg.XPMessageRate)
		if gain <= 0 {
			return results.OperationResult{}, nil
		}

		state, err := s.repo.AddXP(ctx, payload.GuildID, payload.Author.UserID, gain)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("award message xp: %w", err)
		}

		outcome, err := s.settleLevel(ctx, state, gain, "message")
		if err != nil {
			return results.OperationResult{}, err
		}
		return results.SuccessResult(outcome), nil
	})
}

// settleLevel recomputes the level from the post-award state and builds the
// outcome. The cached level updates only upward; XP never shrinks, so a
// lower recomputed level means a concurrent award already advanced it.
func (s *LevelingService) settleLevel(ctx context.Context, state *levelingdb.UserState, gain int64, source string) (*XPOutcome, error) {
	outcome := &XPOutcome{
		Awarded: &levelingevents.XPAwardedPayloadV1{
			GuildID: state.GuildID,
			UserID:  state.UserID,
			Amount:  gain,
			Source:  source,
			TotalXP: state.XP,
		},
	}

	newLevel := xpmath.LevelFromXP(state.XP)
	if newLevel <= state.Level {
		return outcome, nil
	}

	if err := s.repo.SetLevel(ctx, state.GuildID, state.UserID, newLevel); err != nil {
		return nil, fmt.Errorf("store level: %w", err)
	}

	outcome.LevelChanged = &levelingevents.LevelChangedPayloadV1{
		GuildID:  state.GuildID,
		UserID:   state.UserID,
		OldLevel: state.Level,
		NewLevel: newLevel,
		TotalXP:  state.XP,
	}

	roleID, err := s.repo.GetLevelRole(ctx, state.GuildID, newLevel)
	if err != nil {
		return nil, fmt.Errorf("level role lookup: %w", err)
	}
	outcome.RewardRoleID = roleID

	s.logger.InfoContext(ctx, "Member leveled up",
		attr.ExtractCorrelationID(ctx),
		attr.GuildID("guild_id", state.GuildID),
		attr.UserID("user_id", state.UserID),
		attr.Int("new_level", newLevel),
	)
	return outcome, nil
}
