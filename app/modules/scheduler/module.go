// Package scheduler wires the deferred-action module: River-backed
// one-shot jobs, periodic sweeps, and the reminder/scheduled-message
// request handlers.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/aaravmaloo/blue-moon/app/eventbus"
	guildservice "github.com/aaravmaloo/blue-moon/app/modules/guild/application"
	schedulerservice "github.com/aaravmaloo/blue-moon/app/modules/scheduler/application"
	schedulerhandlers "github.com/aaravmaloo/blue-moon/app/modules/scheduler/infrastructure/handlers"
	schedulerrouter "github.com/aaravmaloo/blue-moon/app/modules/scheduler/infrastructure/router"
	"github.com/aaravmaloo/blue-moon/app/shared/metrics"
	"github.com/aaravmaloo/blue-moon/config"
)

// Module represents the scheduler module.
type Module struct {
	Service schedulerservice.Service
	router  *schedulerrouter.SchedulerRouter
}

// NewModule creates the scheduler module and registers its handlers.
// Sweeps are registered on Service by other modules before app start.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	guilds guildservice.ConfigProvider,
	eventBus eventbus.EventBus,
	router *message.Router,
	logger *slog.Logger,
	serviceMetrics metrics.OperationMetrics,
	tracer trace.Tracer,
) (*Module, error) {
	service, err := schedulerservice.NewSchedulerService(ctx, cfg.Postgres.DSN, eventBus, logger, serviceMetrics)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler service: %w", err)
	}

	requests := schedulerservice.NewRequests(service, guilds, nil)
	handlers := schedulerhandlers.NewSchedulerHandlers(requests)

	moduleRouter := schedulerrouter.NewSchedulerRouter(logger, router, eventBus, eventBus, tracer)
	if err := moduleRouter.Configure(ctx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure scheduler router: %w", err)
	}

	return &Module{
		Service: service,
		router:  moduleRouter,
	}, nil
}

// Start starts the River client and the registered sweeps.
func (m *Module) Start(ctx context.Context) error {
	return m.Service.Start(ctx)
}

// Stop stops the sweeps and the River client.
func (m *Module) Stop(ctx context.Context) error {
	return m.Service.Stop(ctx)
}
