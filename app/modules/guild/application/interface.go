package guildservice

import (
	"context"

	guildevents "github.com/aaravmaloo/blue-moon/app/events/guild"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
	guildtypes "github.com/aaravmaloo/blue-moon/app/shared/types/guild"
)

// ConfigProvider is the read side other modules depend on: the effective
// settings for a guild, lazily created with defaults.
type ConfigProvider interface {
	Config(ctx context.Context, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error)
}

// Service is the guild module's application interface.
type Service interface {
	ConfigProvider

	UpdateConfig(ctx context.Context, payload *guildevents.ConfigUpdatePayloadV1) (results.OperationResult, error)
	SetBadWords(ctx context.Context, payload *guildevents.BadWordsSetPayloadV1) (results.OperationResult, error)
	AddRegexFilter(ctx context.Context, payload *guildevents.RegexFilterPayloadV1) (results.OperationResult, error)
	RemoveRegexFilter(ctx context.Context, payload *guildevents.RegexFilterPayloadV1) (results.OperationResult, error)
}
