package ticketservice

import (
	"context"
	"fmt"

	ticketevents "github.com/aaravmaloo/blue-moon/app/events/ticket"
	"github.com/aaravmaloo/blue-moon/app/shared/attr"
	"github.com/aaravmaloo/blue-moon/app/shared/utils"
)

// SweepSLA nags staff about every open unassigned ticket past the guild's
// SLA. The nag repeats on every pass until the ticket is assigned or
// closed; re-validating against the database each tick is the cancellation
// mechanism.
func (s *TicketService) SweepSLA(ctx context.Context) error {
	tickets, err := s.repo.ListOpenUnassigned(ctx)
	if err != nil {
		return err
	}

	now := s.now()
	for i := range tickets {
		ticket := &tickets[i]

		cfg, err := s.guilds.Config(ctx, ticket.GuildID)
		if err != nil {
			s.logger.ErrorContext(ctx, "SLA sweep skipped guild with unreadable config",
				attr.GuildID("guild_id", ticket.GuildID),
				attr.Error(err),
			)
			continue
		}

		sla := cfg.TicketSLA()
		if sla <= 0 {
			continue
		}

		openFor := now.Sub(ticket.CreatedAt)
		if openFor < sla {
			continue
		}

		s.publishEvent(ctx, ticketevents.SLAEscalatedV1, &ticketevents.SLAEscalatedPayloadV1{
			GuildID:   ticket.GuildID,
			TicketID:  ticket.ID,
			ChannelID: ticket.ChannelID,
			OpenFor:   openFor,
			SLA:       sla,
		})
	}
	return nil
}

// SweepAutoClose closes open tickets whose last activity is at least
// autoCloseAfter old. The status guard on the close makes a racing manual
// close win cleanly.
func (s *TicketService) SweepAutoClose(ctx context.Context) error {
	now := s.now()
	tickets, err := s.repo.ListOpenInactiveSince(ctx, now.Add(-s.autoCloseAfter))
	if err != nil {
		return err
	}

	reason := fmt.Sprintf("closed automatically after %s of inactivity", utils.FormatDuration(s.autoCloseAfter))
	for i := range tickets {
		ticket := &tickets[i]

		// The config read happens before the close so an unreadable config
		// leaves the ticket open for the next pass instead of closing it
		// without the announcement events.
		cfg, err := s.guilds.Config(ctx, ticket.GuildID)
		if err != nil {
			s.logger.ErrorContext(ctx, "Auto-close skipped guild with unreadable config",
				attr.GuildID("guild_id", ticket.GuildID),
				attr.Error(err),
			)
			continue
		}

		closed, ok, err := s.repo.Close(ctx, ticket.GuildID, ticket.ID, now)
		if err != nil {
			s.logger.ErrorContext(ctx, "Auto-close failed",
				attr.GuildID("guild_id", ticket.GuildID),
				attr.String("ticket_id", ticket.ID),
				attr.Error(err),
			)
			continue
		}
		if !ok {
			continue
		}

		outcome := s.closeEffects(ctx, cfg, closed, ticketevents.ClosedBySystem, reason)
		s.publishEvent(ctx, ticketevents.ClosedV1, outcome.Closed)
		if outcome.Transcript != nil {
			s.publishEvent(ctx, ticketevents.TranscriptRequestedV1, outcome.Transcript)
		}

		s.logger.InfoContext(ctx, "Ticket auto-closed",
			attr.GuildID("guild_id", ticket.GuildID),
			attr.String("ticket_id", ticket.ID),
		)
	}
	return nil
}
