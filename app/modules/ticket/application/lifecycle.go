package ticketservice

import (
	"context"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	ticketevents "github.com/aaravmaloo/blue-moon/app/events/ticket"
	guildservice "github.com/aaravmaloo/blue-moon/app/modules/guild/application"
	schedulerservice "github.com/aaravmaloo/blue-moon/app/modules/scheduler/application"
	ticketdb "github.com/aaravmaloo/blue-moon/app/modules/ticket/infrastructure/repositories"
	"github.com/aaravmaloo/blue-moon/app/shared/attr"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
	guildtypes "github.com/aaravmaloo/blue-moon/app/shared/types/guild"
)

// Assign sets the assignee on an open ticket. Staff only; reassignment
// overwrites, and assigning the current assignee again is a no-op success.
func (s *TicketService) Assign(ctx context.Context, payload *ticketevents.AssignRequestPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "Assign", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		fail := func(reason string) results.OperationResult {
			return results.FailureResult(&ticketevents.AssignFailedPayloadV1{
				GuildID:  payload.GuildID,
				TicketID: payload.TicketID,
				Reason:   reason,
			})
		}

		cfg, err := s.guilds.Config(ctx, payload.GuildID)
		if err != nil {
			return results.OperationResult{}, err
		}
		if !guildservice.IsStaff(cfg, payload.Requester) {
			return fail(guildservice.ErrNotStaff.Error()), nil
		}

		ticket, ok, err := s.repo.Assign(ctx, payload.GuildID, payload.TicketID, payload.AssigneeID)
		if err != nil {
			return results.OperationResult{}, err
		}
		if !ok {
			return fail(ErrTicketNotOpen.Error()), nil
		}

		return results.SuccessResult(&ticketevents.AssignedPayloadV1{
			GuildID:    ticket.GuildID,
			TicketID:   ticket.ID,
			ChannelID:  ticket.ChannelID,
			AssigneeID: ticket.AssigneeID,
		}), nil
	})
}

// CloseOutcome is the success payload of Close: the closed event plus the
// transcript request when a transcript channel is configured.
type CloseOutcome struct {
	Closed     *ticketevents.ClosedPayloadV1
	Transcript *ticketevents.TranscriptRequestedPayloadV1
}

// Close transitions a ticket open → closed. Staff only; the auto-close
// sweep is the other path to closed. Closing an already-closed ticket fails
// without re-running side effects.
func (s *TicketService) Close(ctx context.Context, payload *ticketevents.CloseRequestPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "Close", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		fail := func(reason string) results.OperationResult {
			return results.FailureResult(&ticketevents.CloseFailedPayloadV1{
				GuildID:  payload.GuildID,
				TicketID: payload.TicketID,
				Reason:   reason,
			})
		}

		cfg, err := s.guilds.Config(ctx, payload.GuildID)
		if err != nil {
			return results.OperationResult{}, err
		}

		if !guildservice.IsStaff(cfg, payload.Requester) {
			return fail(guildservice.ErrNotStaff.Error()), nil
		}

		closed, ok, err := s.repo.Close(ctx, payload.GuildID, payload.TicketID, s.now())
		if err != nil {
			return results.OperationResult{}, err
		}
		if !ok {
			return fail(ErrTicketNotOpen.Error()), nil
		}

		outcome := s.closeEffects(ctx, cfg, closed, ticketevents.ClosedByStaff, payload.Reason)
		return results.SuccessResult(outcome), nil
	})
}

// closeEffects builds the close events and schedules the channel deletion.
// Shared by the request path and the auto-close sweep.
func (s *TicketService) closeEffects(
	ctx context.Context,
	cfg *guildtypes.GuildConfig,
	ticket *ticketdb.Ticket,
	closedBy, reason string,
) *CloseOutcome {
	outcome := &CloseOutcome{
		Closed: &ticketevents.ClosedPayloadV1{
			GuildID:   ticket.GuildID,
			TicketID:  ticket.ID,
			ChannelID: ticket.ChannelID,
			ClosedBy:  closedBy,
			Reason:    reason,
			ClosedAt:  ticket.ClosedAt,
		},
	}

	if ticket.ChannelID == "" {
		return outcome
	}

	if cfg.TranscriptChannelID != "" {
		outcome.Transcript = &ticketevents.TranscriptRequestedPayloadV1{
			GuildID:             ticket.GuildID,
			TicketID:            ticket.ID,
			ChannelID:           ticket.ChannelID,
			TranscriptChannelID: cfg.TranscriptChannelID,
		}
	}

	// The delay leaves the gateway time to export the transcript before
	// the channel goes away.
	err := s.scheduler.ScheduleChannelDelete(ctx, schedulerservice.ChannelDeleteJob{
		GuildID:   ticket.GuildID,
		ChannelID: ticket.ChannelID,
		Reason:    "ticket closed",
	}, ticket.ClosedAt.Add(channelDeleteDelay))
	if err != nil {
		s.logger.ErrorContext(ctx, "Ticket channel deletion not scheduled",
			attr.ExtractCorrelationID(ctx),
			attr.GuildID("guild_id", ticket.GuildID),
			attr.String("ticket_id", ticket.ID),
			attr.Error(err),
		)
	}

	return outcome
}

// TouchActivity bumps last_activity_at on the open ticket bound to the
// message's channel. Messages in non-ticket channels match no row.
func (s *TicketService) TouchActivity(ctx context.Context, payload *gatewayevents.MessageCreatedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "TouchActivity", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		if payload.Author.IsBot {
			return results.OperationResult{}, nil
		}
		if err := s.repo.TouchActivity(ctx, payload.GuildID, payload.ChannelID, payload.SentAt); err != nil {
			return results.OperationResult{}, err
		}
		return results.OperationResult{}, nil
	})
}
