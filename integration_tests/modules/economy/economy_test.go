//go:build integration

package economyintegrationtests

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	economyevents "github.com/aaravmaloo/blue-moon/app/events/economy"
	economyservice "github.com/aaravmaloo/blue-moon/app/modules/economy/application"
	"github.com/aaravmaloo/blue-moon/app/shared/metrics"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
	"github.com/aaravmaloo/blue-moon/integration_tests/testutils"
)

func TestEconomyAgainstPostgres(t *testing.T) {
	ctx := context.Background()
	env := testutils.NewTestEnvironment(t)

	now := time.Now().UTC().Truncate(time.Second)
	s := economyservice.NewEconomyService(
		env.DB.EconomyDB,
		func() time.Time { return now },
		nil, nil,
		testutils.Logger(),
		metrics.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
	)

	guildID := sharedtypes.GuildID(gofakeit.DigitN(18))
	userID := sharedtypes.DiscordID(gofakeit.DigitN(18))

	claim := func() (any, any) {
		result, err := s.ClaimReward(ctx, &economyevents.RewardClaimRequestPayloadV1{
			GuildID: guildID,
			UserID:  userID,
			Kind:    economyevents.RewardDaily,
		})
		require.NoError(t, err)
		return result.Success, result.Failure
	}

	success, failure := claim()
	require.Nil(t, failure)
	claimed := success.(*economyevents.RewardClaimedPayloadV1)
	assert.Equal(t, int64(200), claimed.Amount)
	assert.Equal(t, int64(200), claimed.Wallet)

	// Immediate repeat is still on cooldown.
	success, failure = claim()
	require.Nil(t, success)
	rejected := failure.(*economyevents.RewardClaimFailedPayloadV1)
	assert.Greater(t, rejected.RetryAfter, 23*time.Hour)

	result, err := s.Transfer(ctx, &economyevents.TransferRequestPayloadV1{
		GuildID:   guildID,
		UserID:    userID,
		Direction: economyevents.TransferDeposit,
		Amount:    150,
	})
	require.NoError(t, err)
	transferred := result.Success.(*economyevents.TransferCompletedPayloadV1)
	assert.Equal(t, int64(50), transferred.Wallet)
	assert.Equal(t, int64(150), transferred.Bank)

	// The guarded update refuses an overdraft.
	result, err = s.Transfer(ctx, &economyevents.TransferRequestPayloadV1{
		GuildID:   guildID,
		UserID:    userID,
		Direction: economyevents.TransferWithdraw,
		Amount:    500,
	})
	require.NoError(t, err)
	assert.NotNil(t, result.Failure)

	result, err = s.Balance(ctx, &economyevents.BalanceRequestPayloadV1{
		GuildID: guildID,
		UserID:  userID,
	})
	require.NoError(t, err)
	balance := result.Success.(*economyevents.BalanceRetrievedPayloadV1)
	assert.Equal(t, int64(50), balance.Wallet)
	assert.Equal(t, int64(150), balance.Bank)
}
