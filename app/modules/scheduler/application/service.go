// Package schedulerservice owns deferred work: durable one-shot actions in
// a River-backed job queue, and in-process periodic sweeps. One-shot jobs
// survive restarts via the river_job table and fire once even when their
// target time is already in the past at insert; sweeps re-derive their work
// from the database every tick, so they need no durability of their own.
package schedulerservice

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	"github.com/aaravmaloo/blue-moon/app/eventbus"
	"github.com/aaravmaloo/blue-moon/app/shared/attr"
	"github.com/aaravmaloo/blue-moon/app/shared/metrics"
)

// SweepFunc is one periodic sweep pass. Errors are logged and the next tick
// runs regardless.
type SweepFunc func(ctx context.Context) error

// Service is the scheduler module's application interface.
type Service interface {
	ScheduleReminder(ctx context.Context, job ReminderJob, fireAt time.Time) error
	ScheduleMessage(ctx context.Context, job ScheduledMessageJob, fireAt time.Time) error
	ScheduleUnban(ctx context.Context, job UnbanJob, fireAt time.Time) error
	ScheduleUntimeout(ctx context.Context, job UntimeoutJob, fireAt time.Time) error
	ScheduleChannelDelete(ctx context.Context, job ChannelDeleteJob, fireAt time.Time) error

	// RegisterSweep adds a periodic pass; must be called before Start.
	RegisterSweep(name string, every time.Duration, fn SweepFunc)

	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

type sweep struct {
	name  string
	every time.Duration
	fn    SweepFunc
}

// SchedulerService implements Service on a River client.
type SchedulerService struct {
	client  *river.Client[pgx.Tx]
	pool    *pgxpool.Pool
	logger  *slog.Logger
	metrics metrics.OperationMetrics

	sweeps   []sweep
	sweepCtx context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

var _ Service = (*SchedulerService)(nil)

// NewSchedulerService builds the River client and registers the deferred
// action workers. River needs its own pgx pool; bun keeps database/sql.
func NewSchedulerService(
	ctx context.Context,
	dsn string,
	publisher eventbus.EventBus,
	logger *slog.Logger,
	serviceMetrics metrics.OperationMetrics,
) (*SchedulerService, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN for River: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, &reminderWorker{publisher: publisher, logger: logger})
	river.AddWorker(workers, &scheduledMessageWorker{publisher: publisher, logger: logger})
	river.AddWorker(workers, &unbanWorker{publisher: publisher, logger: logger})
	river.AddWorker(workers, &untimeoutWorker{publisher: publisher, logger: logger})
	river.AddWorker(workers, &channelDeleteWorker{publisher: publisher, logger: logger})

	client, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
		},
		Workers: workers,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	return &SchedulerService{
		client:  client,
		pool:    pool,
		logger:  logger,
		metrics: serviceMetrics,
	}, nil
}

// insert schedules one job. A fireAt in the past is legal: River makes the
// job available on its next fetch, so it fires once without backlog
// amplification. MaxAttempts of 1 keeps failed actions from retry storms;
// the worker logs and the action is spent.
func (s *SchedulerService) insert(ctx context.Context, args river.JobArgs, fireAt time.Time) error {
	s.metrics.RecordOperationAttempt(ctx, "schedule_"+args.Kind(), "SchedulerService")

	result, err := s.client.Insert(ctx, args, &river.InsertOpts{
		ScheduledAt: fireAt,
		MaxAttempts: 1,
	})
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "schedule_"+args.Kind(), "SchedulerService")
		return fmt.Errorf("schedule %s: %w", args.Kind(), err)
	}

	s.logger.InfoContext(ctx, "Deferred action scheduled",
		attr.ExtractCorrelationID(ctx),
		attr.String("kind", args.Kind()),
		attr.Time("fire_at", fireAt),
		attr.Int64("job_id", result.Job.ID),
	)
	s.metrics.RecordOperationSuccess(ctx, "schedule_"+args.Kind(), "SchedulerService")
	return nil
}

func (s *SchedulerService) ScheduleReminder(ctx context.Context, job ReminderJob, fireAt time.Time) error {
	return s.insert(ctx, job, fireAt)
}

func (s *SchedulerService) ScheduleMessage(ctx context.Context, job ScheduledMessageJob, fireAt time.Time) error {
	return s.insert(ctx, job, fireAt)
}

func (s *SchedulerService) ScheduleUnban(ctx context.Context, job UnbanJob, fireAt time.Time) error {
	return s.insert(ctx, job, fireAt)
}

func (s *SchedulerService) ScheduleUntimeout(ctx context.Context, job UntimeoutJob, fireAt time.Time) error {
	return s.insert(ctx, job, fireAt)
}

func (s *SchedulerService) ScheduleChannelDelete(ctx context.Context, job ChannelDeleteJob, fireAt time.Time) error {
	return s.insert(ctx, job, fireAt)
}

// RegisterSweep adds a periodic pass; must be called before Start.
func (s *SchedulerService) RegisterSweep(name string, every time.Duration, fn SweepFunc) {
	s.sweeps = append(s.sweeps, sweep{name: name, every: every, fn: fn})
}

// Start starts the River client and one goroutine per registered sweep.
func (s *SchedulerService) Start(ctx context.Context) error {
	if err := s.client.Start(ctx); err != nil {
		return fmt.Errorf("failed to start River client: %w", err)
	}

	s.sweepCtx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))
	for _, sw := range s.sweeps {
		s.wg.Add(1)
		go s.runSweep(s.sweepCtx, sw)
	}

	s.logger.Info("Scheduler started",
		attr.Int("sweeps", len(s.sweeps)),
	)
	return nil
}

func (s *SchedulerService) runSweep(ctx context.Context, sw sweep) {
	defer s.wg.Done()

	ticker := time.NewTicker(sw.every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.metrics.RecordOperationAttempt(ctx, "sweep_"+sw.name, "SchedulerService")
			start := time.Now()
			if err := sw.fn(ctx); err != nil {
				s.logger.ErrorContext(ctx, "Sweep pass failed",
					attr.String("sweep", sw.name),
					attr.Error(err),
				)
				s.metrics.RecordOperationFailure(ctx, "sweep_"+sw.name, "SchedulerService")
				continue
			}
			s.metrics.RecordOperationSuccess(ctx, "sweep_"+sw.name, "SchedulerService")
			s.metrics.RecordOperationDuration(ctx, "sweep_"+sw.name, "SchedulerService", time.Since(start))
		}
	}
}

// Stop stops the sweeps, then the River client, then the pool.
func (s *SchedulerService) Stop(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()

	if err := s.client.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	s.pool.Close()
	return nil
}
