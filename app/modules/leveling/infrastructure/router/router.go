package levelingrouter

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	levelingevents "github.com/aaravmaloo/blue-moon/app/events/leveling"
	moderationevents "github.com/aaravmaloo/blue-moon/app/events/moderation"
	"github.com/aaravmaloo/blue-moon/app/eventbus"
	levelinghandlers "github.com/aaravmaloo/blue-moon/app/modules/leveling/infrastructure/handlers"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
)

// LevelingRouter binds leveling module events to their handlers.
type LevelingRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	tracer     trace.Tracer
}

// NewLevelingRouter creates a new LevelingRouter.
func NewLevelingRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	tracer trace.Tracer,
) *LevelingRouter {
	return &LevelingRouter{
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
	handlerName := "leveling." + topic

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

// Configure registers the leveling event handlers on the router.
func (r *LevelingRouter) Configure(_ context.Context, handlers levelinghandlers.Handlers) error {
	var metrics handlerwrapper.ReturningMetrics

	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
		metrics:    metrics,
	}

	registerHandler(deps, moderationevents.MessageAllowedV1, handlers.HandleMessageAllowed)
	registerHandler(deps, gatewayevents.VoiceStateChangedV1, handlers.HandleVoiceStateChanged)
	registerHandler(deps, levelingevents.LeaderboardRequestedV1, handlers.HandleLeaderboardRequested)
	registerHandler(deps, levelingevents.RankRequestedV1, handlers.HandleRankRequested)
	registerHandler(deps, levelingevents.NoteAddRequestedV1, handlers.HandleNoteAdd)
	registerHandler(deps, levelingevents.NoteRemoveRequestedV1, handlers.HandleNoteRemove)
	registerHandler(deps, levelingevents.NotesListRequestedV1, handlers.HandleNotesList)
	registerHandler(deps, levelingevents.TodoAddRequestedV1, handlers.HandleTodoAdd)
	registerHandler(deps, levelingevents.TodoRemoveRequestedV1, handlers.HandleTodoRemove)
	registerHandler(deps, levelingevents.TodosListRequestedV1, handlers.HandleTodosList)

	return nil
}
