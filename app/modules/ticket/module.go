// Package ticket wires the ticket module: lifecycle handlers plus the SLA
// and auto-close sweeps registered with the scheduler.
package ticket

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/aaravmaloo/blue-moon/app/eventbus"
	guildservice "github.com/aaravmaloo/blue-moon/app/modules/guild/application"
	schedulerservice "github.com/aaravmaloo/blue-moon/app/modules/scheduler/application"
	ticketservice "github.com/aaravmaloo/blue-moon/app/modules/ticket/application"
	tickethandlers "github.com/aaravmaloo/blue-moon/app/modules/ticket/infrastructure/handlers"
	ticketdb "github.com/aaravmaloo/blue-moon/app/modules/ticket/infrastructure/repositories"
	ticketrouter "github.com/aaravmaloo/blue-moon/app/modules/ticket/infrastructure/router"
	"github.com/aaravmaloo/blue-moon/app/shared/metrics"
	"github.com/aaravmaloo/blue-moon/config"
)

// Module represents the ticket module.
type Module struct {
	Service ticketservice.Service
	router  *ticketrouter.TicketRouter
}

// NewModule creates the ticket module, registers its handlers, and adds the
// SLA and auto-close sweeps to the scheduler. Must run before the scheduler
// starts.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	repo ticketdb.Repository,
	guilds guildservice.ConfigProvider,
	scheduler schedulerservice.Service,
	eventBus eventbus.EventBus,
	router *message.Router,
	logger *slog.Logger,
	serviceMetrics metrics.OperationMetrics,
	tracer trace.Tracer,
) (*Module, error) {
	service := ticketservice.NewTicketService(
		repo, guilds, scheduler, eventBus,
		nil, nil, cfg.Engine.AutoCloseAfter,
		logger, serviceMetrics, tracer,
	)
	handlers := tickethandlers.NewTicketHandlers(service)

	ticketRouter := ticketrouter.NewTicketRouter(logger, router, eventBus, eventBus, tracer)
	if err := ticketRouter.Configure(ctx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure ticket router: %w", err)
	}

	scheduler.RegisterSweep("ticket_sla", cfg.Engine.SLASweepInterval, service.SweepSLA)
	scheduler.RegisterSweep("ticket_auto_close", cfg.Engine.AutoCloseSweepInterval, service.SweepAutoClose)

	return &Module{
		Service: service,
		router:  ticketRouter,
	}, nil
}
