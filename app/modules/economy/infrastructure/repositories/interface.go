package economydb

import (
	"context"
	"time"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

// Repository handles economy persistence.
type Repository interface {
	// GetOrCreateAccount returns a member's account, creating a zeroed row
	// when absent.
	GetOrCreateAccount(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID) (*EconomyAccount, error)
	// AdjustWallet atomically adds delta to the wallet, clamping at zero,
	// and stamps cooldownColumn with claimedAt when non-empty. Returns the
	// updated account.
	AdjustWallet(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, delta int64, cooldownColumn string, claimedAt time.Time) (*EconomyAccount, error)
	// Transfer atomically applies walletDelta and bankDelta. ok is false
	// when either balance would go negative; nothing changes in that case.
	Transfer(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, walletDelta, bankDelta int64) (*EconomyAccount, bool, error)
}
