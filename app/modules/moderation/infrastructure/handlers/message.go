package moderationhandlers

import (
	"context"
	"errors"
	"fmt"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	moderationevents "github.com/aaravmaloo/blue-moon/app/events/moderation"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
)

// HandleMessageCreated runs the rule pipeline on an inbound message. A
// blocked message yields the platform delete request plus the blocked event;
// a clean one yields the allowed event downstream modules chain from. Bot
// messages yield nothing.
func (h *ModerationHandlers) HandleMessageCreated(ctx context.Context, payload *gatewayevents.MessageCreatedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.ProcessMessage(ctx, payload)
	if err != nil {
		return nil, err
	}

	switch p := result.Success.(type) {
	case nil:
		return nil, nil
	case *moderationevents.MessageAllowedPayloadV1:
		return []handlerwrapper.Result{
			{Topic: moderationevents.MessageAllowedV1, Payload: p},
		}, nil
	case *moderationevents.MessageBlockedPayloadV1:
		return []handlerwrapper.Result{
			{Topic: gatewayevents.DeleteMessageRequestedV1, Payload: &gatewayevents.DeleteMessagePayloadV1{
				GuildID:   p.GuildID,
				ChannelID: p.ChannelID,
				MessageID: p.MessageID,
				Reason:    p.Reason,
			}},
			{Topic: moderationevents.MessageBlockedV1, Payload: p},
		}, nil
	default:
		return nil, fmt.Errorf("unexpected ProcessMessage payload type %T", p)
	}
}
