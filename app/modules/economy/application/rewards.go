package economyservice

import (
	"context"
	"fmt"
	"time"

	economyevents "github.com/aaravmaloo/blue-moon/app/events/economy"
	economydb "github.com/aaravmaloo/blue-moon/app/modules/economy/infrastructure/repositories"
	"github.com/aaravmaloo/blue-moon/app/shared/attr"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
)

// Reward payouts and cooldowns.
const (
	dailyAmount   = 200
	dailyCooldown = 24 * time.Hour

	weeklyAmount   = 1000
	weeklyCooldown = 7 * 24 * time.Hour

	workMin      = 50
	workMax      = 220
	workCooldown = time.Hour

	crimeWinChance = 0.45
	crimeGainMin   = 120
	crimeGainMax   = 500
	crimeLossMin   = 80
	crimeLossMax   = 220
	crimeCooldown  = 2 * time.Hour
)

// rewardRule is the cooldown gate for one reward kind.
type rewardRule struct {
	column   string
	cooldown time.Duration
}

var rewardRules = map[string]rewardRule{
	economyevents.RewardDaily:  {economydb.CooldownDaily, dailyCooldown},
	economyevents.RewardWeekly: {economydb.CooldownWeekly, weeklyCooldown},
	economyevents.RewardWork:   {economydb.CooldownWork, workCooldown},
	economyevents.RewardCrime:  {economydb.CooldownCrime, crimeCooldown},
}

// ClaimReward pays out a cooldown-gated reward. A crime claim can lose: the
// published amount is negative and the wallet is clamped at zero.
func (s *EconomyService) ClaimReward(ctx context.Context, payload *economyevents.RewardClaimRequestPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "ClaimReward", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		rule, ok := rewardRules[payload.Kind]
		if !ok {
			return results.FailureResult(&economyevents.RewardClaimFailedPayloadV1{
				GuildID:   payload.GuildID,
				ChannelID: payload.ChannelID,
				UserID:    payload.UserID,
				Kind:      payload.Kind,
				Reason:    fmt.Sprintf("unknown reward kind %q", payload.Kind),
			}), nil
		}

		account, err := s.repo.GetOrCreateAccount(ctx, payload.GuildID, payload.UserID)
		if err != nil {
			return results.OperationResult{}, err
		}

		now := s.now()
		if last := account.CooldownAt(rule.column); !last.IsZero() {
			if elapsed := now.Sub(last); elapsed < rule.cooldown {
				return results.FailureResult(&economyevents.RewardClaimFailedPayloadV1{
					GuildID:    payload.GuildID,
					ChannelID:  payload.ChannelID,
					UserID:     payload.UserID,
					Kind:       payload.Kind,
					Reason:     "reward is on cooldown",
					RetryAfter: rule.cooldown - elapsed,
				}), nil
			}
		}

		var amount int64
		switch payload.Kind {
		case economyevents.RewardDaily:
			amount = dailyAmount
		case economyevents.RewardWeekly:
			amount = weeklyAmount
		case economyevents.RewardWork:
			amount = s.roll(workMin, workMax)
		case economyevents.RewardCrime:
			if s.crimeWin() {
				amount = s.roll(crimeGainMin, crimeGainMax)
			} else {
				amount = -s.roll(crimeLossMin, crimeLossMax)
			}
		}

		updated, err := s.repo.AdjustWallet(ctx, payload.GuildID, payload.UserID, amount, rule.column, now)
		if err != nil {
			return results.OperationResult{}, err
		}

		s.logger.InfoContext(ctx, "Reward claimed",
			attr.ExtractCorrelationID(ctx),
			attr.GuildID("guild_id", payload.GuildID),
			attr.String("user_id", string(payload.UserID)),
			attr.String("kind", payload.Kind),
			attr.Int64("amount", amount),
		)

		return results.SuccessResult(&economyevents.RewardClaimedPayloadV1{
			GuildID:   payload.GuildID,
			ChannelID: payload.ChannelID,
			UserID:    payload.UserID,
			Kind:      payload.Kind,
			Amount:    amount,
			Wallet:    updated.Wallet,
		}), nil
	})
}
