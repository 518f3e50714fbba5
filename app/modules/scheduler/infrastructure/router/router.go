package schedulerrouter

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	schedulerevents "github.com/aaravmaloo/blue-moon/app/events/scheduler"
	"github.com/aaravmaloo/blue-moon/app/eventbus"
	schedulerhandlers "github.com/aaravmaloo/blue-moon/app/modules/scheduler/infrastructure/handlers"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
)

// SchedulerRouter binds scheduling request events to their handlers.
type SchedulerRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	tracer     trace.Tracer
}

// NewSchedulerRouter creates a new SchedulerRouter.
func NewSchedulerRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	tracer trace.Tracer,
) *SchedulerRouter {
	return &SchedulerRouter{
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

func registerHandler[T any](
	deps handlerDeps,
	topic string,
	handler func(context.Context, *T) ([]handlerwrapper.Result, error),
) {
	handlerName := "scheduler." + topic

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

// Configure registers the scheduler event handlers on the router.
func (r *SchedulerRouter) Configure(_ context.Context, handlers schedulerhandlers.Handlers) error {
	var metrics handlerwrapper.ReturningMetrics

	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
		metrics:    metrics,
	}

	registerHandler(deps, schedulerevents.ReminderRequestedV1, handlers.HandleReminderRequest)
	registerHandler(deps, schedulerevents.MessageScheduleRequestedV1, handlers.HandleMessageScheduleRequest)

	return nil
}
