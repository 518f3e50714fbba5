// Package guild wires the guild configuration module: lazily-created
// per-guild settings with staff-gated updates.
package guild

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/aaravmaloo/blue-moon/app/eventbus"
	guildservice "github.com/aaravmaloo/blue-moon/app/modules/guild/application"
	guildhandlers "github.com/aaravmaloo/blue-moon/app/modules/guild/infrastructure/handlers"
	guilddb "github.com/aaravmaloo/blue-moon/app/modules/guild/infrastructure/repositories"
	guildrouter "github.com/aaravmaloo/blue-moon/app/modules/guild/infrastructure/router"
	"github.com/aaravmaloo/blue-moon/app/shared/metrics"
	"github.com/aaravmaloo/blue-moon/config"
)

// Module represents the guild module.
type Module struct {
	Service guildservice.Service
	router  *guildrouter.GuildRouter
}

// NewModule creates the guild module and registers its handlers.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	repo guilddb.Repository,
	eventBus eventbus.EventBus,
	router *message.Router,
	logger *slog.Logger,
	serviceMetrics metrics.OperationMetrics,
	tracer trace.Tracer,
) (*Module, error) {
	service := guildservice.NewGuildService(repo, cfg.Engine, logger, serviceMetrics, tracer)
	handlers := guildhandlers.NewGuildHandlers(service)

	guildRouter := guildrouter.NewGuildRouter(logger, router, eventBus, eventBus, tracer)
	if err := guildRouter.Configure(ctx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure guild router: %w", err)
	}

	return &Module{
		Service: service,
		router:  guildRouter,
	}, nil
}
