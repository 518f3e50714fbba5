// Package moderationservice implements the moderation module: the message
// rule pipeline, warnings, temporary restrictions, and join safety.
package moderationservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	guildservice "github.com/aaravmaloo/blue-moon/app/modules/guild/application"
	"github.com/aaravmaloo/blue-moon/app/modules/moderation/automod"
	moderationdb "github.com/aaravmaloo/blue-moon/app/modules/moderation/infrastructure/repositories"
	schedulerservice "github.com/aaravmaloo/blue-moon/app/modules/scheduler/application"
	"github.com/aaravmaloo/blue-moon/app/shared/attr"
	"github.com/aaravmaloo/blue-moon/app/shared/metrics"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

// joinBurstWindow is the span the per-guild join counter measures over.
const joinBurstWindow = 60 * time.Second

// ModerationService implements the Service interface.
type ModerationService struct {
	repo      moderationdb.Repository
	guilds    guildservice.ConfigProvider
	scheduler schedulerservice.Service
	ruleset   *automod.Ruleset
	joins     *automod.WindowTracker
	now       func() time.Time
	logger    *slog.Logger
	metrics   metrics.OperationMetrics
	tracer    trace.Tracer
}

// NewModerationService creates a new ModerationService. now defaults to
// time.Now when nil.
func NewModerationService(
	repo moderationdb.Repository,
	guilds guildservice.ConfigProvider,
	scheduler schedulerservice.Service,
	now func() time.Time,
	logger *slog.Logger,
	serviceMetrics metrics.OperationMetrics,
	tracer trace.Tracer,
) *ModerationService {
	if now == nil {
		now = time.Now
	}
	return &ModerationService{
		repo:      repo,
		guilds:    guilds,
		scheduler: scheduler,
		ruleset:   automod.NewRuleset(guildservice.IsStaff),
		joins:     automod.NewWindowTracker(),
		now:       now,
		logger:    logger,
		metrics:   serviceMetrics,
		tracer:    tracer,
	}
}

var _ Service = (*ModerationService)(nil)

// operationFunc is the signature for service operation functions.
type operationFunc func(ctx context.Context) (results.OperationResult, error)

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery. This standardizes observability across all service methods.
func (s *ModerationService) withTelemetry(
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

	s.metrics.RecordOperationAttempt(ctx, operationName, "ModerationService")

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, "ModerationService", time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.GuildID("guild_id", guildID),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, "ModerationService")
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
		s.metrics.RecordOperationFailure(ctx, operationName, "ModerationService")
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

	s.metrics.RecordOperationSuccess(ctx, operationName, "ModerationService")
	return result, nil
}
