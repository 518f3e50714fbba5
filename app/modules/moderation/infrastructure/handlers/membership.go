package moderationhandlers

import (
	"context"
	"errors"
	"fmt"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	moderationevents "github.com/aaravmaloo/blue-moon/app/events/moderation"
	moderationservice "github.com/aaravmaloo/blue-moon/app/modules/moderation/application"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
)

// HandleMemberJoined maps a join outcome onto its outbound events: the
// anti-alt timeout, the burst alert, the autorole grant, and the welcome
// message.
func (h *ModerationHandlers) HandleMemberJoined(ctx context.Context, payload *gatewayevents.MemberJoinedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.MemberJoined(ctx, payload)
	if err != nil {
		return nil, err
	}

	outcome, ok := result.Success.(*moderationservice.JoinOutcome)
	if !ok {
		return nil, fmt.Errorf("unexpected MemberJoined payload type %T", result.Success)
	}

	var out []handlerwrapper.Result

	if outcome.AltTimeout != nil {
		out = append(out,
			handlerwrapper.Result{Topic: gatewayevents.TimeoutMemberRequestedV1, Payload: &gatewayevents.TimeoutMemberPayloadV1{
				GuildID: outcome.GuildID,
				UserID:  outcome.UserID,
				Until:   outcome.TimeoutUntil,
				Reason:  "account below minimum age",
			}},
			handlerwrapper.Result{Topic: moderationevents.AltAccountTimedOutV1, Payload: outcome.AltTimeout},
		)
	}

	if outcome.JoinBurst != nil {
		out = append(out, handlerwrapper.Result{
			Topic:   moderationevents.JoinBurstDetectedV1,
			Payload: outcome.JoinBurst,
		})
	}

	if outcome.AutoroleID != "" {
		out = append(out, handlerwrapper.Result{
			Topic: gatewayevents.AssignRoleRequestedV1,
			Payload: &gatewayevents.AssignRolePayloadV1{
				GuildID: outcome.GuildID,
				UserID:  outcome.UserID,
				RoleID:  outcome.AutoroleID,
				Reason:  "autorole on join",
			},
		})
	}

	if outcome.WelcomeChannelID != "" {
		out = append(out, handlerwrapper.Result{
			Topic: gatewayevents.SendMessageRequestedV1,
			Payload: &gatewayevents.SendMessagePayloadV1{
				GuildID:       outcome.GuildID,
				ChannelID:     outcome.WelcomeChannelID,
				Content:       "Welcome to the server!",
				MentionUserID: outcome.UserID,
			},
		})
	}

	return out, nil
}

// HandleMemberLeft posts the goodbye message when one is configured.
func (h *ModerationHandlers) HandleMemberLeft(ctx context.Context, payload *gatewayevents.MemberLeftPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.MemberLeft(ctx, payload)
	if err != nil {
		return nil, err
	}

	outcome, ok := result.Success.(*moderationservice.LeaveOutcome)
	if !ok {
		return nil, nil
	}

	return []handlerwrapper.Result{
		{Topic: gatewayevents.SendMessageRequestedV1, Payload: &gatewayevents.SendMessagePayloadV1{
			GuildID:   outcome.GuildID,
			ChannelID: outcome.GoodbyeChannelID,
			Content:   fmt.Sprintf("<@%s> has left the server.", outcome.UserID),
		}},
	}, nil
}
