// Package economy wires the economy module: balances, cooldown-gated
// rewards, and wallet/bank transfers.
package economy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/aaravmaloo/blue-moon/app/eventbus"
	economyservice "github.com/aaravmaloo/blue-moon/app/modules/economy/application"
	economyhandlers "github.com/aaravmaloo/blue-moon/app/modules/economy/infrastructure/handlers"
	economydb "github.com/aaravmaloo/blue-moon/app/modules/economy/infrastructure/repositories"
	economyrouter "github.com/aaravmaloo/blue-moon/app/modules/economy/infrastructure/router"
	"github.com/aaravmaloo/blue-moon/app/shared/metrics"
)

// Module represents the economy module.
type Module struct {
	Service economyservice.Service
	router  *economyrouter.EconomyRouter
}

// NewModule creates the economy module and registers its handlers.
func NewModule(
	ctx context.Context,
	repo economydb.Repository,
	eventBus eventbus.EventBus,
	router *message.Router,
	logger *slog.Logger,
	serviceMetrics metrics.OperationMetrics,
	tracer trace.Tracer,
) (*Module, error) {
	service := economyservice.NewEconomyService(repo, nil, nil, nil, logger, serviceMetrics, tracer)
	handlers := economyhandlers.NewEconomyHandlers(service)

	economyRouter := economyrouter.NewEconomyRouter(logger, router, eventBus, eventBus, tracer)
	if err := economyRouter.Configure(ctx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure economy router: %w", err)
	}

	return &Module{
		Service: service,
		router:  economyRouter,
	}, nil
}
