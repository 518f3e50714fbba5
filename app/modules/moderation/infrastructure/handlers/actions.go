package moderationhandlers

import (
	"context"
	"errors"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	moderationevents "github.com/aaravmaloo/blue-moon/app/events/moderation"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
)

// HandleWarnRequested handles WarnRequested events.
func (h *ModerationHandlers) HandleWarnRequested(ctx context.Context, payload *moderationevents.WarnRequestPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.AddWarn(ctx, payload)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		moderationevents.WarnAddedV1,
		moderationevents.WarnFailedV1,
	), nil
}

// HandleWarnsListRequested handles WarnsRequested events.
func (h *ModerationHandlers) HandleWarnsListRequested(ctx context.Context, payload *moderationevents.WarnsListRequestPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.ListWarns(ctx, payload)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		moderationevents.WarnsListedV1,
		moderationevents.WarnsFailedV1,
	), nil
}

// HandleTempBanRequested handles TempBanRequested events. On success the
// gateway ban request precedes the applied event.
func (h *ModerationHandlers) HandleTempBanRequested(ctx context.Context, payload *moderationevents.TempBanRequestPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.TempBan(ctx, payload)
	if err != nil {
		return nil, err
	}

	if applied, ok := result.Success.(*moderationevents.TempBanAppliedPayloadV1); ok {
		return []handlerwrapper.Result{
			{Topic: gatewayevents.BanMemberRequestedV1, Payload: &gatewayevents.BanMemberPayloadV1{
				GuildID: applied.GuildID,
				UserID:  applied.TargetID,
				Reason:  applied.Reason,
			}},
			{Topic: moderationevents.TempBanAppliedV1, Payload: applied},
		}, nil
	}

	return mapOperationResult(result,
		moderationevents.TempBanAppliedV1,
		moderationevents.TempBanFailedV1,
	), nil
}

// HandleTimeoutRequested handles TimeoutRequested events. On success the
// gateway timeout request precedes the applied event.
func (h *ModerationHandlers) HandleTimeoutRequested(ctx context.Context, payload *moderationevents.TimeoutRequestPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Timeout(ctx, payload)
	if err != nil {
		return nil, err
	}

	if applied, ok := result.Success.(*moderationevents.TimeoutAppliedPayloadV1); ok {
		return []handlerwrapper.Result{
			{Topic: gatewayevents.TimeoutMemberRequestedV1, Payload: &gatewayevents.TimeoutMemberPayloadV1{
				GuildID: applied.GuildID,
				UserID:  applied.TargetID,
				Until:   applied.Until,
				Reason:  applied.Reason,
			}},
			{Topic: moderationevents.TimeoutAppliedV1, Payload: applied},
		}, nil
	}

	return mapOperationResult(result,
		moderationevents.TimeoutAppliedV1,
		moderationevents.TimeoutFailedV1,
	), nil
}
