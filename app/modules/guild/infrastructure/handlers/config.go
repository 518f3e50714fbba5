package guildhandlers

import (
	"context"
	"errors"

	guildevents "github.com/aaravmaloo/blue-moon/app/events/guild"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
)

// HandleUpdateConfig handles ConfigUpdateRequested events.
func (h *GuildHandlers) HandleUpdateConfig(ctx context.Context, payload *guildevents.ConfigUpdatePayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.UpdateConfig(ctx, payload)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		guildevents.ConfigUpdatedV1,
		guildevents.ConfigUpdateFailedV1,
	), nil
}

// HandleSetBadWords handles BadWordsSetRequested events.
func (h *GuildHandlers) HandleSetBadWords(ctx context.Context, payload *guildevents.BadWordsSetPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.SetBadWords(ctx, payload)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		guildevents.BadWordsSetV1,
		guildevents.BadWordsSetFailedV1,
	), nil
}

// HandleAddRegexFilter handles RegexFilterAddRequested events.
func (h *GuildHandlers) HandleAddRegexFilter(ctx context.Context, payload *guildevents.RegexFilterPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.AddRegexFilter(ctx, payload)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		guildevents.RegexFilterAddedV1,
		guildevents.RegexFilterAddFailedV1,
	), nil
}

// HandleRemoveRegexFilter handles RegexFilterRemoveRequested events.
func (h *GuildHandlers) HandleRemoveRegexFilter(ctx context.Context, payload *guildevents.RegexFilterPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.RemoveRegexFilter(ctx, payload)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		guildevents.RegexFilterRemovedV1,
		guildevents.RegexFilterRemoveFailedV1,
	), nil
}
