package economyservice

import (
	"context"
	"fmt"

	economyevents "github.com/aaravmaloo/blue-moon/app/events/economy"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
)

// Transfer moves an amount between a member's wallet and bank. The amount
// must be positive and covered by the source balance.
func (s *EconomyService) Transfer(ctx context.Context, payload *economyevents.TransferRequestPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "Transfer", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		fail := func(reason string) results.OperationResult {
			return results.FailureResult(&economyevents.TransferFailedPayloadV1{
				GuildID: payload.GuildID,
				UserID:  payload.UserID,
				Reason:  reason,
			})
		}

		if payload.Amount <= 0 {
			return fail("amount must be positive"), nil
		}

		var walletDelta, bankDelta int64
		switch payload.Direction {
		case economyevents.TransferDeposit:
			walletDelta, bankDelta = -payload.Amount, payload.Amount
		case economyevents.TransferWithdraw:
			walletDelta, bankDelta = payload.Amount, -payload.Amount
		default:
			return fail(fmt.Sprintf("unknown transfer direction %q", payload.Direction)), nil
		}

		// The account row must exist before the guarded update can match.
		if _, err := s.repo.GetOrCreateAccount(ctx, payload.GuildID, payload.UserID); err != nil {
			return results.OperationResult{}, err
		}

		account, ok, err := s.repo.Transfer(ctx, payload.GuildID, payload.UserID, walletDelta, bankDelta)
		if err != nil {
			return results.OperationResult{}, err
		}
		if !ok {
			return fail("insufficient funds"), nil
		}

		return results.SuccessResult(&economyevents.TransferCompletedPayloadV1{
			GuildID:   payload.GuildID,
			ChannelID: payload.ChannelID,
			UserID:    payload.UserID,
			Direction: payload.Direction,
			Amount:    payload.Amount,
			Wallet:    account.Wallet,
			Bank:      account.Bank,
		}), nil
	})
}
