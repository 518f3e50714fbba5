package levelinghandlers

import (
	"context"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	levelingevents "github.com/aaravmaloo/blue-moon/app/events/leveling"
	moderationevents "github.com/aaravmaloo/blue-moon/app/events/moderation"
	levelingservice "github.com/aaravmaloo/blue-moon/app/modules/leveling/application"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
)

// Handlers is the set of typed event handlers the leveling router registers.
type Handlers interface {
	HandleMessageAllowed(ctx context.Context, payload *moderationevents.MessageAllowedPayloadV1) ([]handlerwrapper.Result, error)
	HandleVoiceStateChanged(ctx context.Context, payload *gatewayevents.VoiceStateChangedPayloadV1) ([]handlerwrapper.Result, error)
	HandleLeaderboardRequested(ctx context.Context, payload *levelingevents.LeaderboardRequestPayloadV1) ([]handlerwrapper.Result, error)
	HandleRankRequested(ctx context.Context, payload *levelingevents.RankRequestPayloadV1) ([]handlerwrapper.Result, error)

	HandleNoteAdd(ctx context.Context, payload *levelingevents.ItemAddPayloadV1) ([]handlerwrapper.Result, error)
	HandleNoteRemove(ctx context.Context, payload *levelingevents.ItemRemovePayloadV1) ([]handlerwrapper.Result, error)
	HandleNotesList(ctx context.Context, payload *levelingevents.ItemsListRequestPayloadV1) ([]handlerwrapper.Result, error)
	HandleTodoAdd(ctx context.Context, payload *levelingevents.ItemAddPayloadV1) ([]handlerwrapper.Result, error)
	HandleTodoRemove(ctx context.Context, payload *levelingevents.ItemRemovePayloadV1) ([]handlerwrapper.Result, error)
	HandleTodosList(ctx context.Context, payload *levelingevents.ItemsListRequestPayloadV1) ([]handlerwrapper.Result, error)
}

// LevelingHandlers implements the Handlers interface for leveling events.
type LevelingHandlers struct {
	service levelingservice.Service
}

// NewLevelingHandlers creates a new LevelingHandlers instance.
func NewLevelingHandlers(service levelingservice.Service) *LevelingHandlers {
	return &LevelingHandlers{service: service}
}

var _ Handlers = (*LevelingHandlers)(nil)

// mapOperationResult converts a service OperationResult to handler Results.
func mapOperationResult(
	result results.OperationResult,
	successTopic, failureTopic string,
) []handlerwrapper.Result {
	handlerResults := result.MapToHandlerResults(successTopic, failureTopic)

	wrapperResults := make([]handlerwrapper.Result, len(handlerResults))
	for i, hr := range handlerResults {
		wrapperResults[i] = handlerwrapper.Result{
			Topic:    hr.Topic,
			Payload:  hr.Payload,
			Metadata: hr.Metadata,
		}
	}

	return wrapperResults
}
