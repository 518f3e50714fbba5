package moderationhandlers

import (
	"context"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	moderationevents "github.com/aaravmaloo/blue-moon/app/events/moderation"
	moderationservice "github.com/aaravmaloo/blue-moon/app/modules/moderation/application"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
)

// Handlers is the set of typed event handlers the moderation router
// registers.
type Handlers interface {
	HandleMessageCreated(ctx context.Context, payload *gatewayevents.MessageCreatedPayloadV1) ([]handlerwrapper.Result, error)
	HandleWarnRequested(ctx context.Context, payload *moderationevents.WarnRequestPayloadV1) ([]handlerwrapper.Result, error)
	HandleWarnsListRequested(ctx context.Context, payload *moderationevents.WarnsListRequestPayloadV1) ([]handlerwrapper.Result, error)
	HandleTempBanRequested(ctx context.Context, payload *moderationevents.TempBanRequestPayloadV1) ([]handlerwrapper.Result, error)
	HandleTimeoutRequested(ctx context.Context, payload *moderationevents.TimeoutRequestPayloadV1) ([]handlerwrapper.Result, error)
	HandleMemberJoined(ctx context.Context, payload *gatewayevents.MemberJoinedPayloadV1) ([]handlerwrapper.Result, error)
	HandleMemberLeft(ctx context.Context, payload *gatewayevents.MemberLeftPayloadV1) ([]handlerwrapper.Result, error)
}

// ModerationHandlers implements the Handlers interface for moderation
// events.
type ModerationHandlers struct {
	service moderationservice.Service
}

// NewModerationHandlers creates a new ModerationHandlers instance.
func NewModerationHandlers(service moderationservice.Service) *ModerationHandlers {
	return &ModerationHandlers{service: service}
}

var _ Handlers = (*ModerationHandlers)(nil)

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
