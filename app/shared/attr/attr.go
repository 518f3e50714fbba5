// Package attr provides slog attribute helpers shared by every module, so
// log fields keep consistent keys across services, handlers and workers.
package attr

import (
	"context"
	"log/slog"
	"time"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

type correlationIDKey struct{}

// WithCorrelationID stores a correlation ID on the context for later extraction.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationIDFromContext returns the correlation ID stored on the context,
// or the empty string.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// ExtractCorrelationID produces a slog attribute for the context's
// correlation ID. Always safe to pass; logs "unknown" when absent.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	id := CorrelationIDFromContext(ctx)
	if id == "" {
		id = "unknown"
	}
	return slog.String("correlation_id", id)
}

func String(key, value string) slog.Attr          { return slog.String(key, value) }
func Int(key string, value int) slog.Attr         { return slog.Int(key, value) }
func Int64(key string, value int64) slog.Attr     { return slog.Int64(key, value) }
func Float64(key string, value float64) slog.Attr { return slog.Float64(key, value) }
func Bool(key string, value bool) slog.Attr       { return slog.Bool(key, value) }
func Any(key string, value any) slog.Attr         { return slog.Any(key, value) }
func Error(err error) slog.Attr                   { return slog.Any("error", err) }

func Duration(key string, d time.Duration) slog.Attr { return slog.Duration(key, d) }
func Time(key string, t time.Time) slog.Attr         { return slog.Time(key, t) }

func GuildID(key string, id sharedtypes.GuildID) slog.Attr {
	return slog.String(key, string(id))
}

func UserID(key string, id sharedtypes.DiscordID) slog.Attr {
	return slog.String(key, string(id))
}

func ChannelID(key string, id sharedtypes.ChannelID) slog.Attr {
	return slog.String(key, string(id))
}
