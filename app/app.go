// Package app wires configuration, storage, transport, and the engine
// modules into one runnable unit.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"

	"github.com/aaravmaloo/blue-moon/app/eventbus"
	"github.com/aaravmaloo/blue-moon/app/modules/economy"
	"github.com/aaravmaloo/blue-moon/app/modules/guild"
	"github.com/aaravmaloo/blue-moon/app/modules/leveling"
	"github.com/aaravmaloo/blue-moon/app/modules/moderation"
	"github.com/aaravmaloo/blue-moon/app/modules/scheduler"
	"github.com/aaravmaloo/blue-moon/app/modules/ticket"
	"github.com/aaravmaloo/blue-moon/app/ops"
	"github.com/aaravmaloo/blue-moon/app/shared/attr"
	"github.com/aaravmaloo/blue-moon/app/shared/metrics"
	"github.com/aaravmaloo/blue-moon/config"
	"github.com/aaravmaloo/blue-moon/db/bundb"
)

// streamName is the single JetStream stream carrying every engine subject.
const streamName = "bluemoon"

var streamSubjects = []string{
	"discord.>",
	"guild.>",
	"moderation.>",
	"leveling.>",
	"economy.>",
	"ticket.>",
	"scheduler.>",
}

// App holds the wired application.
type App struct {
	Config *config.Config

	logger    *slog.Logger
	db        *bundb.DBService
	eventBus  eventbus.EventBus
	router    *message.Router
	scheduler *scheduler.Module
	ops       *ops.Server
}

// Initialize connects to Postgres and NATS and wires every module onto the
// shared router. The ticket module registers its sweeps with the scheduler
// here; the scheduler does not start until Run.
func (app *App) Initialize(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	app.Config = cfg
	app.logger = logger

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	serviceMetrics := metrics.NewPrometheusMetrics(registry)
	tracer := otel.Tracer("blue-moon")

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("failed to initialize database service: %w", err)
	}
	app.db = dbService

	bus, err := eventbus.New(ctx, cfg.NATS.URL, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize event bus: %w", err)
	}
	app.eventBus = bus

	if err := bus.EnsureStream(ctx, streamName, streamSubjects); err != nil {
		return fmt.Errorf("failed to ensure stream: %w", err)
	}

	router, err := newMessageRouter(logger)
	if err != nil {
		return err
	}
	app.router = router

	guildModule, err := guild.NewModule(ctx, cfg, dbService.GuildDB, bus, router, logger, serviceMetrics, tracer)
	if err != nil {
		return fmt.Errorf("failed to initialize guild module: %w", err)
	}

	schedulerModule, err := scheduler.NewModule(ctx, cfg, guildModule.Service, bus, router, logger, serviceMetrics, tracer)
	if err != nil {
		return fmt.Errorf("failed to initialize scheduler module: %w", err)
	}
	app.scheduler = schedulerModule

	if _, err := moderation.NewModule(ctx, dbService.ModerationDB, guildModule.Service, schedulerModule.Service, bus, router, logger, serviceMetrics, tracer); err != nil {
		return fmt.Errorf("failed to initialize moderation module: %w", err)
	}

	if _, err := leveling.NewModule(ctx, dbService.LevelingDB, guildModule.Service, bus, router, logger, serviceMetrics, tracer); err != nil {
		return fmt.Errorf("failed to initialize leveling module: %w", err)
	}

	if _, err := economy.NewModule(ctx, dbService.EconomyDB, bus, router, logger, serviceMetrics, tracer); err != nil {
		return fmt.Errorf("failed to initialize economy module: %w", err)
	}

	if _, err := ticket.NewModule(ctx, cfg, dbService.TicketDB, guildModule.Service, schedulerModule.Service, bus, router, logger, serviceMetrics, tracer); err != nil {
		return fmt.Errorf("failed to initialize ticket module: %w", err)
	}

	app.ops = ops.NewServer(cfg.HTTP.Address, registry, app.ready, logger)

	return nil
}

// Run starts the ops listener and the scheduler, then blocks running the
// message router until ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	go func() {
		if err := app.ops.Start(); err != nil {
			app.logger.Error("Ops server failed", attr.Error(err))
		}
	}()

	if err := app.scheduler.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	app.logger.Info("Application started")
	return app.router.Run(ctx)
}

// Close stops the scheduler, the router, the bus, the database, and the
// ops listener, in that order.
func (app *App) Close(ctx context.Context) error {
	var errs []error

	if app.scheduler != nil {
		if err := app.scheduler.Stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("scheduler stop: %w", err))
		}
	}
	if app.router != nil {
		if err := app.router.Close(); err != nil {
			errs = append(errs, fmt.Errorf("router close: %w", err))
		}
	}
	if app.eventBus != nil {
		if err := app.eventBus.Close(); err != nil {
			errs = append(errs, fmt.Errorf("event bus close: %w", err))
		}
	}
	if app.db != nil {
		if err := app.db.GetDB().Close(); err != nil {
			errs = append(errs, fmt.Errorf("database close: %w", err))
		}
	}
	if app.ops != nil {
		if err := app.ops.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("ops server shutdown: %w", err))
		}
	}

	return errors.Join(errs...)
}

// ready reports readiness for the ops /readyz endpoint.
func (app *App) ready(ctx context.Context) error {
	if err := app.db.GetDB().PingContext(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}
	return nil
}
