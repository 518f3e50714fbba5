package economyhandlers

import (
	"context"

	economyevents "github.com/aaravmaloo/blue-moon/app/events/economy"
	economyservice "github.com/aaravmaloo/blue-moon/app/modules/economy/application"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
)

// Handlers is the set of typed event handlers the economy router registers.
type Handlers interface {
	HandleBalanceRequested(ctx context.Context, payload *economyevents.BalanceRequestPayloadV1) ([]handlerwrapper.Result, error)
	HandleRewardClaimRequested(ctx context.Context, payload *economyevents.RewardClaimRequestPayloadV1) ([]handlerwrapper.Result, error)
	HandleTransferRequested(ctx context.Context, payload *economyevents.TransferRequestPayloadV1) ([]handlerwrapper.Result, error)
}

// EconomyHandlers implements the Handlers interface for economy events.
type EconomyHandlers struct {
	service economyservice.Service
}

// NewEconomyHandlers creates a new EconomyHandlers instance.
func NewEconomyHandlers(service economyservice.Service) *EconomyHandlers {
	return &EconomyHandlers{service: service}
}

var _ Handlers = (*EconomyHandlers)(nil)

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

// HandleBalanceRequested handles economy.balance.requested.v1.
func (h *EconomyHandlers) HandleBalanceRequested(ctx context.Context, payload *economyevents.BalanceRequestPayloadV1) ([]handlerwrapper.Result, error) {
	result, err := h.service.Balance(ctx, payload)
	if err != nil {
		return nil, err
	}
	return mapOperationResult(result, economyevents.BalanceRetrievedV1, economyevents.BalanceFailedV1), nil
}

// HandleRewardClaimRequested handles economy.reward.claim.requested.v1.
func (h *EconomyHandlers) HandleRewardClaimRequested(ctx context.Context, payload *economyevents.RewardClaimRequestPayloadV1) ([]handlerwrapper.Result, error) {
	result, err := h.service.ClaimReward(ctx, payload)
	if err != nil {
		return nil, err
	}
	return mapOperationResult(result, economyevents.RewardClaimedV1, economyevents.RewardClaimFailedV1), nil
}

// HandleTransferRequested handles economy.transfer.requested.v1.
func (h *EconomyHandlers) HandleTransferRequested(ctx context.Context, payload *economyevents.TransferRequestPayloadV1) ([]handlerwrapper.Result, error) {
	result, err := h.service.Transfer(ctx, payload)
	if err != nil {
		return nil, err
	}
	return mapOperationResult(result, economyevents.TransferCompletedV1, economyevents.TransferFailedV1), nil
}
