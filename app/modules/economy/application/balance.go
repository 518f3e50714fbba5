package economyservice

import (
	"context"

	economyevents "github.com/aaravmaloo/blue-moon/app/events/economy"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
)

// Balance returns a member's wallet and bank balances, creating a zeroed
// account on first sight.
func (s *EconomyService) Balance(ctx context.Context, payload *economyevents.BalanceRequestPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "Balance", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		account, err := s.repo.GetOrCreateAccount(ctx, payload.GuildID, payload.UserID)
		if err != nil {
			return results.OperationResult{}, err
		}

		return results.SuccessResult(&economyevents.BalanceRetrievedPayloadV1{
			GuildID:   payload.GuildID,
			ChannelID: payload.ChannelID,
			UserID:    payload.UserID,
			Wallet:    account.Wallet,
			Bank:      account.Bank,
		}), nil
	})
}
