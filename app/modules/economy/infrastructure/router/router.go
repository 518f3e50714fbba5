package economyrouter

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	economyevents "github.com/aaravmaloo/blue-moon/app/events/economy"
	"github.com/aaravmaloo/blue-moon/app/eventbus"
	economyhandlers "github.com/aaravmaloo/blue-moon/app/modules/economy/infrastructure/handlers"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
)

// EconomyRouter binds economy module events to their handlers.
type EconomyRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	tracer     trace.Tracer
}

// NewEconomyRouter creates a new EconomyRouter.
func NewEconomyRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	tracer trace.Tracer,
) *EconomyRouter {
	return &EconomyRouter{
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
	handlerName := "economy." + topic

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

// Configure registers the economy event handlers on the router.
func (r *EconomyRouter) Configure(_ context.Context, handlers economyhandlers.Handlers) error {
	var metrics handlerwrapper.ReturningMetrics

	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
		metrics:    metrics,
	}

	registerHandler(deps, economyevents.BalanceRequestedV1, handlers.HandleBalanceRequested)
	registerHandler(deps, economyevents.RewardClaimRequestedV1, handlers.HandleRewardClaimRequested)
	registerHandler(deps, economyevents.TransferRequestedV1, handlers.HandleTransferRequested)

	return nil
}
