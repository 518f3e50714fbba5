package economydb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

type EconomyDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*EconomyDBImpl)(nil)

func (db *EconomyDBImpl) GetOrCreateAccount(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID) (*EconomyAccount, error) {
	account := &EconomyAccount{GuildID: guildID, UserID: userID}

	_, err := db.DB.NewInsert().
		Model(account).
		On("CONFLICT (guild_id, user_id) DO UPDATE").
		Set("updated_at = ea.updated_at").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("get or create account: %w", err)
	}
	return account, nil
}

func (db *EconomyDBImpl) AdjustWallet(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, delta int64, cooldownColumn string, claimedAt time.Time) (*EconomyAccount, error) {
	account := &EconomyAccount{GuildID: guildID, UserID: userID}
	if delta > 0 {
		account.Wallet = delta
	}

	// Upsert so a first-ever claim creates the row; GREATEST clamps a
	// losing crime roll at zero instead of going negative.
	query := db.DB.NewInsert().
		Model(account).
		On("CONFLICT (guild_id, user_id) DO UPDATE").
		Set("wallet = GREATEST(0, ea.wallet + ?)", delta).
		Set("updated_at = current_timestamp")
	if cooldownColumn != "" {
		query = query.Set(fmt.Sprintf("%s = ?", cooldownColumn), claimedAt)
		switch cooldownColumn {
		case CooldownDaily:
			account.LastDaily = claimedAt
		case CooldownWeekly:
			account.LastWeekly = claimedAt
		case CooldownWork:
			account.LastWork = claimedAt
		case CooldownCrime:
			account.LastCrime = claimedAt
		}
	}

	_, err := query.Returning("*").Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("adjust wallet: %w", err)
	}
	return account, nil
}

func (db *EconomyDBImpl) Transfer(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, walletDelta, bankDelta int64) (*EconomyAccount, bool, error) {
	var account EconomyAccount

	// Guarded update: the WHERE clause rejects the transfer when either
	// side would go negative, so concurrent transfers cannot overdraw.
	err := db.DB.NewUpdate().
		Model(&account).
		Set("wallet = wallet + ?", walletDelta).
		Set("bank = bank + ?", bankDelta).
		Set("updated_at = current_timestamp").
		Where("guild_id = ?", guildID).
		Where("user_id = ?", userID).
		Where("wallet + ? >= 0", walletDelta).
		Where("bank + ? >= 0", bankDelta).
		Returning("*").
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("transfer: %w", err)
	}
	return &account, true, nil
}
