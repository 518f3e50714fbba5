package levelinghandlers

import (
	"context"
	"errors"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	levelingevents "github.com/aaravmaloo/blue-moon/app/events/leveling"
	moderationevents "github.com/aaravmaloo/blue-moon/app/events/moderation"
	levelingservice "github.com/aaravmaloo/blue-moon/app/modules/leveling/application"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
)

// xpOutcomeResults maps one XP grant onto its outbound events: the award,
// the level change when one happened, and the reward role grant when the
// new level has one configured.
func xpOutcomeResults(outcome *levelingservice.XPOutcome) []handlerwrapper.Result {
	if outcome == nil {
		return nil
	}

	out := []handlerwrapper.Result{
		{Topic: levelingevents.XPAwardedV1, Payload: outcome.Awarded},
	}

	if outcome.LevelChanged != nil {
		out = append(out, handlerwrapper.Result{
			Topic:   levelingevents.LevelChangedV1,
			Payload: outcome.LevelChanged,
		})
	}

	if outcome.RewardRoleID != "" {
		out = append(out, handlerwrapper.Result{
			Topic: gatewayevents.AssignRoleRequestedV1,
			Payload: &gatewayevents.AssignRolePayloadV1{
				GuildID: outcome.Awarded.GuildID,
				UserID:  outcome.Awarded.UserID,
				RoleID:  outcome.RewardRoleID,
				Reason:  "level role reward",
			},
		})
	}

	return out
}

// HandleMessageAllowed grants message XP for a message that survived the
// rule pipeline.
func (h *LevelingHandlers) HandleMessageAllowed(ctx context.Context, payload *moderationevents.MessageAllowedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.AwardMessageXP(ctx, payload)
	if err != nil {
		return nil, err
	}

	outcome, _ := result.Success.(*levelingservice.XPOutcome)
	return xpOutcomeResults(outcome), nil
}

// HandleVoiceStateChanged tracks voice sessions; only a flushed session
// produces events.
func (h *LevelingHandlers) HandleVoiceStateChanged(ctx context.Context, payload *gatewayevents.VoiceStateChangedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.TrackVoiceState(ctx, payload)
	if err != nil {
		return nil, err
	}

	outcome, _ := result.Success.(*levelingservice.XPOutcome)
	return xpOutcomeResults(outcome), nil
}

// HandleLeaderboardRequested handles LeaderboardRequested events.
func (h *LevelingHandlers) HandleLeaderboardRequested(ctx context.Context, payload *levelingevents.LeaderboardRequestPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Leaderboard(ctx, payload)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		levelingevents.LeaderboardRetrievedV1,
		levelingevents.LeaderboardFailedV1,
	), nil
}

// HandleRankRequested handles RankRequested events.
func (h *LevelingHandlers) HandleRankRequested(ctx context.Context, payload *levelingevents.RankRequestPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Rank(ctx, payload)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		levelingevents.RankRetrievedV1,
		levelingevents.RankFailedV1,
	), nil
}
