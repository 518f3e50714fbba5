package ticketdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

type TicketDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*TicketDBImpl)(nil)

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == "23505"
}

func (db *TicketDBImpl) CreateTicket(ctx context.Context, ticket *Ticket) error {
	_, err := db.DB.NewInsert().Model(ticket).Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateOpen
		}
		return fmt.Errorf("create ticket: %w", err)
	}
	return nil
}

func (db *TicketDBImpl) GetOpenByOpener(ctx context.Context, guildID sharedtypes.GuildID, openerID sharedtypes.DiscordID) (*Ticket, error) {
	var ticket Ticket
	err := db.DB.NewSelect().
		Model(&ticket).
		Where("guild_id = ?", guildID).
		Where("opener_id = ?", openerID).
		Where("status = ?", sharedtypes.TicketStatusOpen).
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

func (db *TicketDBImpl) BindChannel(ctx context.Context, guildID sharedtypes.GuildID, ticketID string, channelID sharedtypes.ChannelID) error {
	_, err := db.DB.NewUpdate().
		Model(&Ticket{}).
		Set("channel_id = ?", channelID).
		Where("guild_id = ?", guildID).
		Where("id = ?", ticketID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("bind channel: %w", err)
	}
	return nil
}

func (db *TicketDBImpl) Assign(ctx context.Context, guildID sharedtypes.GuildID, ticketID string, assigneeID sharedtypes.DiscordID) (*Ticket, bool, error) {
	var ticket Ticket
	err := db.DB.NewUpdate().
		Model(&ticket).
		Set("assignee_id = ?", assigneeID).
		Where("guild_id = ?", guildID).
		Where("id = ?", ticketID).
		Where("status = ?", sharedtypes.TicketStatusOpen).
		Returning("*").
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("assign ticket: %w", err)
	}
	return &ticket, true, nil
}

func (db *TicketDBImpl) Close(ctx context.Context, guildID sharedtypes.GuildID, ticketID string, closedAt time.Time) (*Ticket, bool, error) {
	var ticket Ticket

	// The status guard makes close idempotent: a second close matches no
	// row and re-runs no side effects.
	err := db.DB.NewUpdate().
		Model(&ticket).
		Set("status = ?", sharedtypes.TicketStatusClosed).
		Set("closed_at = ?", closedAt).
		Where("guild_id = ?", guildID).
		Where("id = ?", ticketID).
		Where("status = ?", sharedtypes.TicketStatusOpen).
		Returning("*").
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("close ticket: %w", err)
	}
	return &ticket, true, nil
}

func (db *TicketDBImpl) TouchActivity(ctx context.Context, guildID sharedtypes.GuildID, channelID sharedtypes.ChannelID, at time.Time) error {
	_, err := db.DB.NewUpdate().
		Model(&Ticket{}).
		Set("last_activity_at = ?", at).
		Where("guild_id = ?", guildID).
		Where("channel_id = ?", channelID).
		Where("status = ?", sharedtypes.TicketStatusOpen).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("touch activity: %w", err)
	}
	return nil
}

func (db *TicketDBImpl) ListOpenUnassigned(ctx context.Context) ([]Ticket, error) {
	var tickets []Ticket
	err := db.DB.NewSelect().
		Model(&tickets).
		Where("status = ?", sharedtypes.TicketStatusOpen).
		Where("assignee_id IS NULL").
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open unassigned: %w", err)
	}
	return tickets, nil
}

func (db *TicketDBImpl) ListOpenInactiveSince(ctx context.Context, cutoff time.Time) ([]Ticket, error) {
	var tickets []Ticket
	err := db.DB.NewSelect().
		Model(&tickets).
		Where("status = ?", sharedtypes.TicketStatusOpen).
		Where("last_activity_at <= ?", cutoff).
		Order("last_activity_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open inactive: %w", err)
	}
	return tickets, nil
}
