package guildhandlers

import (
	"context"

	guildevents "github.com/aaravmaloo/blue-moon/app/events/guild"
	guildservice "github.com/aaravmaloo/blue-moon/app/modules/guild/application"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
)

// Handlers is the set of typed event handlers the guild router registers.
type Handlers interface {
	HandleUpdateConfig(ctx context.Context, payload *guildevents.ConfigUpdatePayloadV1) ([]handlerwrapper.Result, error)
	HandleSetBadWords(ctx context.Context, payload *guildevents.BadWordsSetPayloadV1) ([]handlerwrapper.Result, error)
	HandleAddRegexFilter(ctx context.Context, payload *guildevents.RegexFilterPayloadV1) ([]handlerwrapper.Result, error)
	HandleRemoveRegexFilter(ctx context.Context, payload *guildevents.RegexFilterPayloadV1) ([]handlerwrapper.Result, error)
}

// GuildHandlers implements the Handlers interface for guild events.
type GuildHandlers struct {
	service guildservice.Service
}

// NewGuildHandlers creates a new GuildHandlers instance.
func NewGuildHandlers(service guildservice.Service) *GuildHandlers {
	return &GuildHandlers{service: service}
}

var _ Handlers = (*GuildHandlers)(nil)

// mapOperationResult converts a service OperationResult to handler Results.
func mapOperationResult(
	result results.OperationResult,
	successTopic, failureTopic string,
) []handlerwrapper.Result {
	handlerResults := result.MapToHandlerResults(successTopic, failureTopic)

	wrapperResults := make([]handlerwrapper.Result, len(handlerResults))
	for i, hr := range handlerResults {
		wrapperResults[i] = handlerwrapper.Result{
			Topic:    hr.Topic,
			Payload:  hr.Payload,
			Metadata: hr.Metadata,
		}
	}

	return wrapperResults
}
