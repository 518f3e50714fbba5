package ticketrouter

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	ticketevents "github.com/aaravmaloo/blue-moon/app/events/ticket"
	"github.com/aaravmaloo/blue-moon/app/eventbus"
	tickethandlers "github.com/aaravmaloo/blue-moon/app/modules/ticket/infrastructure/handlers"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
)

// TicketRouter binds ticket module events to their handlers.
type TicketRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	tracer     trace.Tracer
}

// NewTicketRouter creates a new TicketRouter.
func NewTicketRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	tracer trace.Tracer,
) *TicketRouter {
	return &TicketRouter{
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
	handlerName := "ticket." + topic

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

// Configure registers the ticket event handlers on the router.
func (r *TicketRouter) Configure(_ context.Context, handlers tickethandlers.Handlers) error {
	var metrics handlerwrapper.ReturningMetrics

	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
		metrics:    metrics,
	}

	registerHandler(deps, ticketevents.CreationRequestedV1, handlers.HandleCreationRequested)
	registerHandler(deps, ticketevents.ChannelCreatedV1, handlers.HandleChannelCreated)
	registerHandler(deps, ticketevents.AssignRequestedV1, handlers.HandleAssignRequested)
	registerHandler(deps, ticketevents.CloseRequestedV1, handlers.HandleCloseRequested)
	registerHandler(deps, gatewayevents.MessageCreatedV1, handlers.HandleMessageCreated)

	return nil
}
