package moderationservice

import (
	"context"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	moderationevents "github.com/aaravmaloo/blue-moon/app/events/moderation"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
)

// Service is the moderation module's application interface.
type Service interface {
	// ProcessMessage runs an inbound message through the rule pipeline.
	// Success holds *moderationevents.MessageAllowedPayloadV1 or
	// *moderationevents.MessageBlockedPayloadV1; bot messages produce an
	// empty result.
	ProcessMessage(ctx context.Context, payload *gatewayevents.MessageCreatedPayloadV1) (results.OperationResult, error)

	AddWarn(ctx context.Context, payload *moderationevents.WarnRequestPayloadV1) (results.OperationResult, error)
	ListWarns(ctx context.Context, payload *moderationevents.WarnsListRequestPayloadV1) (results.OperationResult, error)

	TempBan(ctx context.Context, payload *moderationevents.TempBanRequestPayloadV1) (results.OperationResult, error)
	Timeout(ctx context.Context, payload *moderationevents.TimeoutRequestPayloadV1) (results.OperationResult, error)

	// MemberJoined applies join safety checks. Success holds *JoinOutcome.
	MemberJoined(ctx context.Context, payload *gatewayevents.MemberJoinedPayloadV1) (results.OperationResult, error)
	// MemberLeft handles a departure. Success holds *LeaveOutcome when the
	// guild has a goodbye channel configured.
	MemberLeft(ctx context.Context, payload *gatewayevents.MemberLeftPayloadV1) (results.OperationResult, error)
}
