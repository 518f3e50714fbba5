package economyservice

import (
	"context"

	economyevents "github.com/aaravmaloo/blue-moon/app/events/economy"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
)

// Service handles economy business logic.
type Service interface {
	Balance(ctx context.Context, payload *economyevents.BalanceRequestPayloadV1) (results.OperationResult, error)
	ClaimReward(ctx context.Context, payload *economyevents.RewardClaimRequestPayloadV1) (results.OperationResult, error)
	Transfer(ctx context.Context, payload *economyevents.TransferRequestPayloadV1) (results.OperationResult, error)
}
