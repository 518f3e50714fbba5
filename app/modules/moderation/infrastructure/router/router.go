package moderationrouter

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	moderationevents "github.com/aaravmaloo/blue-moon/app/events/moderation"
	"github.com/aaravmaloo/blue-moon/app/eventbus"
	moderationhandlers "github.com/aaravmaloo/blue-moon/app/modules/moderation/infrastructure/handlers"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
)

// ModerationRouter binds moderation module events to their handlers.
type ModerationRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	tracer     trace.Tracer
}

// NewModerationRouter creates a new ModerationRouter.
func NewModerationRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	tracer trace.Tracer,
) *ModerationRouter {
	return &ModerationRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		tracer:     tracer,
	}
}

type handlerDeps struct {
	router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	logger     *slog.Logger
	tracer     trace.Tracer
	metrics    handlerwrapper.ReturningMetrics
}

// registerHandler registers a pure transformation-pattern handler with typed payload.
func registerHandler[T any](
	deps handlerDeps,
	topic string,
	handler func(context.Context, *T) ([]handlerwrapper.Result, error),
) {
	handlerName := "moderation." + topic

	deps.router.AddHandler(
		handlerName,
		topic,
		deps.subscriber,
		"", // publish topic comes from message metadata
		deps.publisher,
		handlerwrapper.WrapTransformingTyped(
			handlerName,
			deps.logger,
			deps.tracer,
			deps.metrics,
			handler,
		),
	)
}

// Configure registers the moderation event handlers on the router.
func (r *ModerationRouter) Configure(_ context.Context, handlers moderationhandlers.Handlers) error {
	var metrics handlerwrapper.ReturningMetrics

	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
		metrics:    metrics,
	}

	registerHandler(deps, gatewayevents.MessageCreatedV1, handlers.HandleMessageCreated)
	registerHandler(deps, gatewayevents.MemberJoinedV1, handlers.HandleMemberJoined)
	registerHandler(deps, gatewayevents.MemberLeftV1, handlers.HandleMemberLeft)
	registerHandler(deps, moderationevents.WarnRequestedV1, handlers.HandleWarnRequested)
	registerHandler(deps, moderationevents.WarnsRequestedV1, handlers.HandleWarnsListRequested)
	registerHandler(deps, moderationevents.TempBanRequestedV1, handlers.HandleTempBanRequested)
	registerHandler(deps, moderationevents.TimeoutRequestedV1, handlers.HandleTimeoutRequested)

	return nil
}
