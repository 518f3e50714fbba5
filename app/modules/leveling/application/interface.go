package levelingservice

import (
	"context"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	levelingevents "github.com/aaravmaloo/blue-moon/app/events/leveling"
	moderationevents "github.com/aaravmaloo/blue-moon/app/events/moderation"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
)

// Service is the leveling module's application interface.
type Service interface {
	// AwardMessageXP grants XP for a message that survived moderation.
	// Success holds *XPOutcome; bot authors produce an empty result.
	AwardMessageXP(ctx context.Context, payload *moderationevents.MessageAllowedPayloadV1) (results.OperationResult, error)
	// TrackVoiceState records voice joins and flushes sessions on leave.
	// Success holds *XPOutcome when a session flushed.
	TrackVoiceState(ctx context.Context, payload *gatewayevents.VoiceStateChangedPayloadV1) (results.OperationResult, error)

	Leaderboard(ctx context.Context, payload *levelingevents.LeaderboardRequestPayloadV1) (results.OperationResult, error)
	Rank(ctx context.Context, payload *levelingevents.RankRequestPayloadV1) (results.OperationResult, error)

	AddItem(ctx context.Context, kind string, payload *levelingevents.ItemAddPayloadV1) (results.OperationResult, error)
	RemoveItem(ctx context.Context, kind string, payload *levelingevents.ItemRemovePayloadV1) (results.OperationResult, error)
	ListItems(ctx context.Context, kind string, payload *levelingevents.ItemsListRequestPayloadV1) (results.OperationResult, error)
}
