package economydb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

// Cooldown columns on the account row, one per reward kind.
const (
	CooldownDaily  = "last_daily"
	CooldownWeekly = "last_weekly"
	CooldownWork   = "last_work"
	CooldownCrime  = "last_crime"
)

// EconomyAccount is one member's currency state. Wallet and bank never go
// negative; the adjust queries clamp at zero.
type EconomyAccount struct {
	bun.BaseModel `bun:"table:economy_accounts,alias:ea"`

	GuildID sharedtypes.GuildID   `bun:"guild_id,pk,notnull,type:varchar(20)"`
	UserID  sharedtypes.DiscordID `bun:"user_id,pk,notnull,type:varchar(20)"`

	Wallet int64 `bun:"wallet,notnull,default:0"`
	Bank   int64 `bun:"bank,notnull,default:0"`

	LastDaily  time.Time `bun:"last_daily,nullzero"`
	LastWeekly time.Time `bun:"last_weekly,nullzero"`
	LastWork   time.Time `bun:"last_work,nullzero"`
	LastCrime  time.Time `bun:"last_crime,nullzero"`

	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// CooldownAt returns the stored claim time for a cooldown column.
func (a *EconomyAccount) CooldownAt(column string) time.Time {
	switch column {
	case CooldownDaily:
		return a.LastDaily
	case CooldownWeekly:
		return a.LastWeekly
	case CooldownWork:
		return a.LastWork
	case CooldownCrime:
		return a.LastCrime
	default:
		return time.Time{}
	}
}
