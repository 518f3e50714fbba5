// Package economyevents defines topics and payloads for the economy module.
package economyevents

import (
	"time"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

const (
	BalanceRequestedV1 = "economy.balance.requested.v1"
	BalanceRetrievedV1 = "economy.balance.retrieved.v1"
	BalanceFailedV1    = "economy.balance.failed.v1"

	RewardClaimRequestedV1 = "economy.reward.claim.requested.v1"
	RewardClaimedV1        = "economy.reward.claimed.v1"
	RewardClaimFailedV1    = "economy.reward.claim.failed.v1"

	TransferRequestedV1 = "economy.transfer.requested.v1"
	TransferCompletedV1 = "economy.transfer.completed.v1"
	TransferFailedV1    = "economy.transfer.failed.v1"
)

// Reward kinds accepted by RewardClaimRequestPayloadV1.
const (
	RewardDaily  = "daily"
	RewardWeekly = "weekly"
	RewardWork   = "work"
	RewardCrime  = "crime"
)

// Transfer directions accepted by TransferRequestPayloadV1.
const (
	TransferDeposit  = "deposit"
	TransferWithdraw = "withdraw"
)

// BalanceRequestPayloadV1 asks for a member's wallet and bank balances.
type BalanceRequestPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	UserID    sharedtypes.DiscordID `json:"user_id"`
}

// BalanceRetrievedPayloadV1 returns the balances.
type BalanceRetrievedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	UserID    sharedtypes.DiscordID `json:"user_id"`
	Wallet    int64                 `json:"wallet"`
	Bank      int64                 `json:"bank"`
}

// BalanceFailedPayloadV1 reports a failed balance query.
type BalanceFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID   `json:"guild_id"`
	UserID  sharedtypes.DiscordID `json:"user_id"`
	Reason  string                `json:"reason"`
}

// RewardClaimRequestPayloadV1 claims a cooldown-gated reward.
type RewardClaimRequestPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	UserID    sharedtypes.DiscordID `json:"user_id"`
	Kind      string                `json:"kind"`
}

// RewardClaimedPayloadV1 confirms the payout. Amount can be negative for a
// failed crime attempt.
type RewardClaimedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	UserID    sharedtypes.DiscordID `json:"user_id"`
	Kind      string                `json:"kind"`
	Amount    int64                 `json:"amount"`
	Wallet    int64                 `json:"wallet"`
}

// RewardClaimFailedPayloadV1 reports a rejected claim; RetryAfter is set
// when the rejection is a cooldown.
type RewardClaimFailedPayloadV1 struct {
	GuildID    sharedtypes.GuildID   `json:"guild_id"`
	ChannelID  sharedtypes.ChannelID `json:"channel_id"`
	UserID     sharedtypes.DiscordID `json:"user_id"`
	Kind       string                `json:"kind"`
	Reason     string                `json:"reason"`
	RetryAfter time.Duration         `json:"retry_after,omitempty"`
}

// TransferRequestPayloadV1 moves Amount between wallet and bank.
type TransferRequestPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	UserID    sharedtypes.DiscordID `json:"user_id"`
	Direction string                `json:"direction"`
	Amount    int64                 `json:"amount"`
}

// TransferCompletedPayloadV1 confirms the transfer and the new balances.
type TransferCompletedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	UserID    sharedtypes.DiscordID `json:"user_id"`
	Direction string                `json:"direction"`
	Amount    int64                 `json:"amount"`
	Wallet    int64                 `json:"wallet"`
	Bank      int64                 `json:"bank"`
}

// TransferFailedPayloadV1 reports a rejected transfer (insufficient funds,
// non-positive amount).
type TransferFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID   `json:"guild_id"`
	UserID  sharedtypes.DiscordID `json:"user_id"`
	Reason  string                `json:"reason"`
}
