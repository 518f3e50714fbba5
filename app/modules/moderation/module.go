// Package moderation wires the moderation module: the message rule
// pipeline, warnings, temporary restrictions, and join safety.
package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/aaravmaloo/blue-moon/app/eventbus"
	guildservice "github.com/aaravmaloo/blue-moon/app/modules/guild/application"
	moderationservice "github.com/aaravmaloo/blue-moon/app/modules/moderation/application"
	moderationhandlers "github.com/aaravmaloo/blue-moon/app/modules/moderation/infrastructure/handlers"
	moderationdb "github.com/aaravmaloo/blue-moon/app/modules/moderation/infrastructure/repositories"
	moderationrouter "github.com/aaravmaloo/blue-moon/app/modules/moderation/infrastructure/router"
	schedulerservice "github.com/aaravmaloo/blue-moon/app/modules/scheduler/application"
	"github.com/aaravmaloo/blue-moon/app/shared/metrics"
)

// Module represents the moderation module.
type Module struct {
	Service moderationservice.Service
	router  *moderationrouter.ModerationRouter
}

// NewModule creates the moderation module and registers its handlers.
func NewModule(
	ctx context.Context,
	repo moderationdb.Repository,
	guilds guildservice.ConfigProvider,
	scheduler schedulerservice.Service,
	eventBus eventbus.EventBus,
	router *message.Router,
	logger *slog.Logger,
	serviceMetrics metrics.OperationMetrics,
	tracer trace.Tracer,
) (*Module, error) {
	service := moderationservice.NewModerationService(repo, guilds, scheduler, nil, logger, serviceMetrics, tracer)
	handlers := moderationhandlers.NewModerationHandlers(service)

	moderationRouter := moderationrouter.NewModerationRouter(logger, router, eventBus, eventBus, tracer)
	if err := moderationRouter.Configure(ctx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure moderation router: %w", err)
	}

	return &Module{
		Service: service,
		router:  moderationRouter,
	}, nil
}
