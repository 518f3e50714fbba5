package guildservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	guilddb "github.com/aaravmaloo/blue-moon/app/modules/guild/infrastructure/repositories"
	"github.com/aaravmaloo/blue-moon/app/shared/attr"
	"github.com/aaravmaloo/blue-moon/app/shared/metrics"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
	"github.com/aaravmaloo/blue-moon/config"
)

// GuildService implements the Service interface.
type GuildService struct {
	repo     guilddb.Repository
	defaults config.EngineConfig
	logger   *slog.Logger
	metrics  metrics.OperationMetrics
	tracer   trace.Tracer
}

// NewGuildService creates a new GuildService. defaults seed lazily-created
// guild configs.
func NewGuildService(
	repo guilddb.Repository,
	defaults config.EngineConfig,
	logger *slog.Logger,
	serviceMetrics metrics.OperationMetrics,
	tracer trace.Tracer,
) *GuildService {
	return &GuildService{
		repo:     repo,
		defaults: defaults,
		logger:   logger,
		metrics:  serviceMetrics,
		tracer:   tracer,
	}
}

// operationFunc is the signature for service operation functions.
type operationFunc func(ctx context.Context) (results.OperationResult, error)

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery. This standardizes observability across all service methods.
func (s *GuildService) withTelemetry(
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

	s.metrics.RecordOperationAttempt(ctx, operationName, "GuildService")

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, "GuildService", time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.GuildID("guild_id", guildID),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, "GuildService")
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
		s.metrics.RecordOperationFailure(ctx, operationName, "GuildService")
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

	s.metrics.RecordOperationSuccess(ctx, operationName, "GuildService")
	return result, nil
}
