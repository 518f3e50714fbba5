package economyservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	economyevents "github.com/aaravmaloo/blue-moon/app/events/economy"
)

func transferRequest(direction string, amount int64) *economyevents.TransferRequestPayloadV1 {
	return &economyevents.TransferRequestPayloadV1{
		GuildID: "g1", ChannelID: "c1", UserID: "u1", Direction: direction, Amount: amount,
	}
}

func TestEconomyService_Transfer(t *testing.T) {
	ctx := context.Background()

	t.Run("deposit moves wallet into bank", func(t *testing.T) {
		repo := NewFakeEconomyRepository()
		repo.account("g1", "u1").Wallet = 500
		s := newTestService(repo, nil, nil, nil)

		result, err := s.Transfer(ctx, transferRequest(economyevents.TransferDeposit, 300))
		require.NoError(t, err)

		completed := result.Success.(*economyevents.TransferCompletedPayloadV1)
		assert.Equal(t, int64(200), completed.Wallet)
		assert.Equal(t, int64(300), completed.Bank)
	})

	t.Run("withdraw moves bank into wallet", func(t *testing.T) {
		repo := NewFakeEconomyRepository()
		repo.account("g1", "u1").Bank = 400
		s := newTestService(repo, nil, nil, nil)

		result, err := s.Transfer(ctx, transferRequest(economyevents.TransferWithdraw, 150))
		require.NoError(t, err)

		completed := result.Success.(*economyevents.TransferCompletedPayloadV1)
		assert.Equal(t, int64(150), completed.Wallet)
		assert.Equal(t, int64(250), completed.Bank)
	})

	t.Run("deposit beyond the wallet is rejected", func(t *testing.T) {
		repo := NewFakeEconomyRepository()
		repo.account("g1", "u1").Wallet = 100
		s := newTestService(repo, nil, nil, nil)

		result, err := s.Transfer(ctx, transferRequest(economyevents.TransferDeposit, 101))
		require.NoError(t, err)
		failed := result.Failure.(*economyevents.TransferFailedPayloadV1)
		assert.Equal(t, "insufficient funds", failed.Reason)
		assert.Equal(t, int64(100), repo.account("g1", "u1").Wallet)
	})

	t.Run("withdraw beyond the bank is rejected", func(t *testing.T) {
		repo := NewFakeEconomyRepository()
		s := newTestService(repo, nil, nil, nil)

		result, err := s.Transfer(ctx, transferRequest(economyevents.TransferWithdraw, 1))
		require.NoError(t, err)
		assert.NotNil(t, result.Failure)
	})

	t.Run("non-positive amounts are rejected", func(t *testing.T) {
		repo := NewFakeEconomyRepository()
		s := newTestService(repo, nil, nil, nil)

		for _, amount := range []int64{0, -50} {
			result, err := s.Transfer(ctx, transferRequest(economyevents.TransferDeposit, amount))
			require.NoError(t, err)
			failed := result.Failure.(*economyevents.TransferFailedPayloadV1)
			assert.Equal(t, "amount must be positive", failed.Reason)
		}
		assert.Empty(t, repo.Accounts)
	})

	t.Run("unknown direction is rejected", func(t *testing.T) {
		repo := NewFakeEconomyRepository()
		s := newTestService(repo, nil, nil, nil)

		result, err := s.Transfer(ctx, transferRequest("sideways", 10))
		require.NoError(t, err)
		assert.NotNil(t, result.Failure)
	})
}

func TestEconomyService_Balance(t *testing.T) {
	ctx := context.Background()
	repo := NewFakeEconomyRepository()
	repo.account("g1", "u1").Wallet = 75
	repo.account("g1", "u1").Bank = 25
	s := newTestService(repo, nil, nil, nil)

	result, err := s.Balance(ctx, &economyevents.BalanceRequestPayloadV1{
		GuildID: "g1", ChannelID: "c1", UserID: "u1",
	})
	require.NoError(t, err)

	retrieved := result.Success.(*economyevents.BalanceRetrievedPayloadV1)
	assert.Equal(t, int64(75), retrieved.Wallet)
	assert.Equal(t, int64(25), retrieved.Bank)

	// Unknown members get a zeroed account, not a failure.
	result, err = s.Balance(ctx, &economyevents.BalanceRequestPayloadV1{
		GuildID: "g1", ChannelID: "c1", UserID: "u2",
	})
	require.NoError(t, err)
	retrieved = result.Success.(*economyevents.BalanceRetrievedPayloadV1)
	assert.Zero(t, retrieved.Wallet)
	assert.Zero(t, retrieved.Bank)
}
