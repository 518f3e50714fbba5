package economyservice

import (
	"context"
	"time"

	economydb "github.com/aaravmaloo/blue-moon/app/modules/economy/infrastructure/repositories"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

// FakeEconomyRepository is an in-memory Repository with the same clamping
// and guard semantics as the SQL implementation.
type FakeEconomyRepository struct {
	Accounts map[string]*economydb.EconomyAccount

	GetErr      error
	AdjustErr   error
	TransferErr error
}

var _ economydb.Repository = (*FakeEconomyRepository)(nil)

func NewFakeEconomyRepository() *FakeEconomyRepository {
	return &FakeEconomyRepository{Accounts: make(map[string]*economydb.EconomyAccount)}
}

func accountKey(guildID sharedtypes.GuildID, userID sharedtypes.DiscordID) string {
	return string(guildID) + ":" + string(userID)
}

func (f *FakeEconomyRepository) account(guildID sharedtypes.GuildID, userID sharedtypes.DiscordID) *economydb.EconomyAccount {
	key := accountKey(guildID, userID)
	if acct, ok := f.Accounts[key]; ok {
		return acct
	}
	acct := &economydb.EconomyAccount{GuildID: guildID, UserID: userID}
	f.Accounts[key] = acct
	return acct
}

func (f *FakeEconomyRepository) GetOrCreateAccount(_ context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID) (*economydb.EconomyAccount, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	acct := f.account(guildID, userID)
	copied := *acct
	return &copied, nil
}

func (f *FakeEconomyRepository) AdjustWallet(_ context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, delta int64, cooldownColumn string, claimedAt time.Time) (*economydb.EconomyAccount, error) {
	if f.AdjustErr != nil {
		return nil, f.AdjustErr
	}
	acct := f.account(guildID, userID)
	acct.Wallet += delta
	if acct.Wallet < 0 {
		acct.Wallet = 0
	}
	switch cooldownColumn {
	case economydb.CooldownDaily:
		acct.LastDaily = claimedAt
	case economydb.CooldownWeekly:
		acct.LastWeekly = claimedAt
	case economydb.CooldownWork:
		acct.LastWork = claimedAt
	case economydb.CooldownCrime:
		acct.LastCrime = claimedAt
	}
	copied := *acct
	return &copied, nil
}

func (f *FakeEconomyRepository) Transfer(_ context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, walletDelta, bankDelta int64) (*economydb.EconomyAccount, bool, error) {
	if f.TransferErr != nil {
		return nil, false, f.TransferErr
	}
	acct := f.account(guildID, userID)
	if acct.Wallet+walletDelta < 0 || acct.Bank+bankDelta < 0 {
		return nil, false, nil
	}
	acct.Wallet += walletDelta
	acct.Bank += bankDelta
	copied := *acct
	return &copied, true, nil
}
