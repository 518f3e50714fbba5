// Package ticketservice implements the ticket lifecycle: creation with the
// one-open-ticket-per-opener rule, channel binding, staff assignment,
// closing with transcript export and delayed channel deletion, and the SLA
// and auto-close sweeps.
package ticketservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	guildservice "github.com/aaravmaloo/blue-moon/app/modules/guild/application"
	schedulerservice "github.com/aaravmaloo/blue-moon/app/modules/scheduler/application"
	ticketdb "github.com/aaravmaloo/blue-moon/app/modules/ticket/infrastructure/repositories"
	"github.com/aaravmaloo/blue-moon/app/shared/attr"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
	"github.com/aaravmaloo/blue-moon/app/shared/metrics"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

const (
	// channelDeleteDelay is the grace period between closing a ticket and
	// deleting its channel, giving the transcript export time to run.
	channelDeleteDelay = 5 * time.Second

	// defaultAutoCloseAfter is the inactivity age at which the auto-close
	// sweep closes an open ticket, unless configured otherwise.
	defaultAutoCloseAfter = 72 * time.Hour
)

// TicketService implements the Service interface.
type TicketService struct {
	repo      ticketdb.Repository
	guilds    guildservice.ConfigProvider
	scheduler schedulerservice.Service
	publisher message.Publisher

	// now and newID are injectable for tests.
	now   func() time.Time
	newID func() string

	autoCloseAfter time.Duration

	logger  *slog.Logger
	metrics metrics.OperationMetrics
	tracer  trace.Tracer
}

var _ Service = (*TicketService)(nil)

// NewTicketService creates a new TicketService.
func NewTicketService(
	repo ticketdb.Repository,
	guilds guildservice.ConfigProvider,
	scheduler schedulerservice.Service,
	publisher message.Publisher,
	now func() time.Time,
	newID func() string,
	autoCloseAfter time.Duration,
	logger *slog.Logger,
	serviceMetrics metrics.OperationMetrics,
	tracer trace.Tracer,
) *TicketService {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = func() string { return uuid.New().String() }
	}
	if autoCloseAfter <= 0 {
		autoCloseAfter = defaultAutoCloseAfter
	}
	return &TicketService{
		repo:           repo,
		guilds:         guilds,
		scheduler:      scheduler,
		publisher:      publisher,
		now:            now,
		newID:          newID,
		autoCloseAfter: autoCloseAfter,
		logger:         logger,
		metrics:        serviceMetrics,
		tracer:         tracer,
	}
}

// publishEvent publishes a sweep-originated event. Publish failures are
// logged and swallowed; the next sweep pass re-derives the same work.
func (s *TicketService) publishEvent(ctx context.Context, topic string, payload any) {
	msg, err := handlerwrapper.NewResultMessage(handlerwrapper.Result{
		Topic:   topic,
		Payload: payload,
	}, attr.CorrelationIDFromContext(ctx))
	if err != nil {
		s.logger.ErrorContext(ctx, "Sweep event payload did not marshal",
			attr.String("topic", topic),
			attr.Error(err),
		)
		return
	}

	if err := s.publisher.Publish(topic, msg); err != nil {
		s.logger.ErrorContext(ctx, "Sweep event publish failed",
			attr.String("topic", topic),
			attr.Error(err),
		)
	}
}

// operationFunc is the signature for service operation functions.
type operationFunc func(ctx context.Context) (results.OperationResult, error)

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery. This standardizes observability across all service methods.
func (s *TicketService) withTelemetry(
	ctx context.Context,
	operationName string,
	guildID sharedtypes.GuildID,
	op operationFunc,
) (result results.OperationResult, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("guild_id", string(guildID)),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, "TicketService")

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, "TicketService", time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.GuildID("guild_id", guildID),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, "TicketService")
			span.RecordError(err)
			result = results.OperationResult{}
		}
	}()

	result, err = op(ctx)
	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.GuildID("guild_id", guildID),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName, "TicketService")
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.Failure != nil {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.GuildID("guild_id", guildID),
			attr.Any("failure_payload", result.Failure),
		)
	}

	s.metrics.RecordOperationSuccess(ctx, operationName, "TicketService")
	return result, nil
}
