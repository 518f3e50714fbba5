// Package economyservice implements the economy module: wallet and bank
// balances, cooldown-gated rewards, and wallet/bank transfers.
package economyservice

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	economydb "github.com/aaravmaloo/blue-moon/app/modules/economy/infrastructure/repositories"
	"github.com/aaravmaloo/blue-moon/app/shared/attr"
	"github.com/aaravmaloo/blue-moon/app/shared/metrics"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

// EconomyService implements the Service interface.
type EconomyService struct {
	repo economydb.Repository

	// now and the roll funcs are injectable for tests; nil means real
	// clock and math/rand.
	now      func() time.Time
	roll     func(min, max int64) int64
	crimeWin func() bool

	logger  *slog.Logger
	metrics metrics.OperationMetrics
	tracer  trace.Tracer
}

var _ Service = (*EconomyService)(nil)

// NewEconomyService creates a new EconomyService.
func NewEconomyService(
	repo economydb.Repository,
	now func() time.Time,
	roll func(min, max int64) int64,
	crimeWin func() bool,
	logger *slog.Logger,
	serviceMetrics metrics.OperationMetrics,
	tracer trace.Tracer,
) *EconomyService {
	if now == nil {
		now = time.Now
	}
	if roll == nil {
		roll = func(min, max int64) int64 {
			return min + rand.Int64N(max-min+1)
		}
	}
	if crimeWin == nil {
		crimeWin = func() bool { return rand.Float64() < crimeWinChance }
	}
	return &EconomyService{
		repo:     repo,
		now:      now,
		roll:     roll,
		crimeWin: crimeWin,
		logger:   logger,
		metrics:  serviceMetrics,
		tracer:   tracer,
	}
}

// operationFunc is the signature for service operation functions.
type operationFunc func(ctx context.Context) (results.OperationResult, error)

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery. This standardizes observability across all service methods.
func (s *EconomyService) withTelemetry(
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

	s.metrics.RecordOperationAttempt(ctx, operationName, "EconomyService")

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, "EconomyService", time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.GuildID("guild_id", guildID),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, "EconomyService")
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
		s.metrics.RecordOperationFailure(ctx, operationName, "EconomyService")
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

	s.metrics.RecordOperationSuccess(ctx, operationName, "EconomyService")
	return result, nil
}
