// Package leveling wires the leveling module: XP from messages and voice,
// the level curve with role rewards, leaderboards, and user notes/todos.
package leveling

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/aaravmaloo/blue-moon/app/eventbus"
	guildservice "github.com/aaravmaloo/blue-moon/app/modules/guild/application"
	levelingservice "github.com/aaravmaloo/blue-moon/app/modules/leveling/application"
	levelinghandlers "github.com/aaravmaloo/blue-moon/app/modules/leveling/infrastructure/handlers"
	levelingdb "github.com/aaravmaloo/blue-moon/app/modules/leveling/infrastructure/repositories"
	levelingrouter "github.com/aaravmaloo/blue-moon/app/modules/leveling/infrastructure/router"
	"github.com/aaravmaloo/blue-moon/app/shared/metrics"
)

// Module represents the leveling module.
type Module struct {
	Service levelingservice.Service
	router  *levelingrouter.LevelingRouter
}

// NewModule creates the leveling module and registers its handlers.
func NewModule(
	ctx context.Context,
	repo levelingdb.Repository,
	guilds guildservice.ConfigProvider,
	eventBus eventbus.EventBus,
	router *message.Router,
	logger *slog.Logger,
	serviceMetrics metrics.OperationMetrics,
	tracer trace.Tracer,
) (*Module, error) {
	service := levelingservice.NewLevelingService(repo, guilds, nil, logger, serviceMetrics, tracer)
	handlers := levelinghandlers.NewLevelingHandlers(service)

	levelingRouter := levelingrouter.NewLevelingRouter(logger, router, eventBus, eventBus, tracer)
	if err := levelingRouter.Configure(ctx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure leveling router: %w", err)
	}

	return &Module{
		Service: service,
		router:  levelingRouter,
	}, nil
}
