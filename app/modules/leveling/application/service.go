// Package levelingservice implements the leveling module: XP awards from
// messages and voice sessions, the level curve, leaderboard and rank
// queries, and per-user notes and todos.
package levelingservice

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	guildservice "github.com/aaravmaloo/blue-moon/app/modules/guild/application"
	levelingdb "github.com/aaravmaloo/blue-moon/app/modules/leveling/infrastructure/repositories"
	"github.com/aaravmaloo/blue-moon/app/shared/attr"
	"github.com/aaravmaloo/blue-moon/app/shared/metrics"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

// Message XP base range, scaled by the guild's message rate.
const (
	messageXPMin = 15
	messageXPMax = 25
)

// LevelingService implements the Service interface.
type LevelingService struct {
	repo   levelingdb.Repository
	guilds guildservice.ConfigProvider

	// In-flight voice sessions keyed "guild:user". Sessions are lost on
	// restart or abnormal disconnect; the XP is forfeit.
	voiceSessions *xsync.MapOf[string, time.Time]

	// rollXP returns the base message XP before rate scaling.
	rollXP func() int

	logger  *slog.Logger
	metrics metrics.OperationMetrics
	tracer  trace.Tracer
}

var _ Service = (*LevelingService)(nil)

// NewLevelingService creates a new LevelingService. rollXP defaults to a
// uniform roll in [15,25] when nil.
func NewLevelingService(
	repo levelingdb.Repository,
	guilds guildservice.ConfigProvider,
	rollXP func() int,
	logger *slog.Logger,
	serviceMetrics metrics.OperationMetrics,
	tracer trace.Tracer,
) *LevelingService {
	if rollXP == nil {
		rollXP = func() int {
			return messageXPMin + rand.IntN(messageXPMax-messageXPMin+1)
		}
	}
	return &LevelingService{
		repo:          repo,
		guilds:        guilds,
		voiceSessions: xsync.NewMapOf[string, time.Time](),
		rollXP:        rollXP,
		logger:        logger,
		metrics:       serviceMetrics,
		tracer:        tracer,
	}
}

// operationFunc is the signature for service operation functions.
type operationFunc func(ctx context.Context) (results.OperationResult, error)

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery. This standardizes observability across all service methods.
func (s *LevelingService) withTelemetry(
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

	s.metrics.RecordOperationAttempt(ctx, operationName, "LevelingService")

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, "LevelingService", time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.GuildID("guild_id", guildID),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, "LevelingService")
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
		s.metrics.RecordOperationFailure(ctx, operationName, "LevelingService")
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

	s.metrics.RecordOperationSuccess(ctx, operationName, "LevelingService")
	return result, nil
}
