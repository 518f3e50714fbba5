package ticketservice

import (
	"context"
	"errors"
	"fmt"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	ticketevents "github.com/aaravmaloo/blue-moon/app/events/ticket"
	ticketdb "github.com/aaravmaloo/blue-moon/app/modules/ticket/infrastructure/repositories"
	"github.com/aaravmaloo/blue-moon/app/shared/attr"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

// CreateOutcome is the success payload of CreateTicket: the created event
// plus the channel request that allocates the ticket's private channel.
type CreateOutcome struct {
	Created *ticketevents.CreatedPayloadV1
	Channel *gatewayevents.CreateChannelPayloadV1
}

// CreateTicket opens a ticket for the requesting member. One open ticket
// per (guild, opener): the pre-check catches the common case and the
// partial unique index the concurrent one.
func (s *TicketService) CreateTicket(ctx context.Context, payload *ticketevents.CreationRequestPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "CreateTicket", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		fail := func(reason string) results.OperationResult {
			return results.FailureResult(&ticketevents.CreationFailedPayloadV1{
				GuildID:  payload.GuildID,
				OpenerID: payload.Opener.UserID,
				Reason:   reason,
			})
		}

		if !payload.Type.IsValid() {
			return fail(fmt.Sprintf("%s: %q", ErrInvalidTicketType, payload.Type)), nil
		}

		cfg, err := s.guilds.Config(ctx, payload.GuildID)
		if err != nil {
			return results.OperationResult{}, err
		}

		existing, err := s.repo.GetOpenByOpener(ctx, payload.GuildID, payload.Opener.UserID)
		if err != nil {
			return results.OperationResult{}, err
		}
		if existing != nil {
			return fail(ErrTicketAlreadyOpen.Error()), nil
		}

		now := s.now()
		ticket := &ticketdb.Ticket{
			ID:             s.newID(),
			GuildID:        payload.GuildID,
			Opener:         payload.Opener.UserID,
			Type:           payload.Type,
			Subject:        payload.Subject,
			Status:         sharedtypes.TicketStatusOpen,
			CreatedAt:      now,
			LastActivityAt: now,
		}

		if err := s.repo.CreateTicket(ctx, ticket); err != nil {
			if errors.Is(err, ticketdb.ErrDuplicateOpen) {
				return fail(ErrTicketAlreadyOpen.Error()), nil
			}
			return results.OperationResult{}, err
		}

		s.logger.InfoContext(ctx, "Ticket created",
			attr.ExtractCorrelationID(ctx),
			attr.GuildID("guild_id", payload.GuildID),
			attr.String("ticket_id", ticket.ID),
			attr.String("type", string(ticket.Type)),
		)

		return results.SuccessResult(&CreateOutcome{
			Created: &ticketevents.CreatedPayloadV1{
				GuildID:   ticket.GuildID,
				TicketID:  ticket.ID,
				OpenerID:  ticket.Opener,
				Type:      ticket.Type,
				Subject:   ticket.Subject,
				CreatedAt: ticket.CreatedAt,
			},
			Channel: &gatewayevents.CreateChannelPayloadV1{
				GuildID:        ticket.GuildID,
				Name:           fmt.Sprintf("ticket-%s-%s", ticket.Type, ticket.Opener),
				CategoryID:     cfg.TicketCategoryID,
				VisibleTo:      ticket.Opener,
				StaffRoleID:    cfg.StaffRoleID,
				CorrelationRef: ticket.ID,
			},
		}), nil
	})
}

// BindChannel records the gateway-created channel against the ticket named
// by CorrelationRef. No events come out of the binding.
func (s *TicketService) BindChannel(ctx context.Context, payload *ticketevents.ChannelCreatedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "BindChannel", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		if err := s.repo.BindChannel(ctx, payload.GuildID, payload.CorrelationRef, payload.ChannelID); err != nil {
			return results.OperationResult{}, err
		}
		return results.OperationResult{}, nil
	})
}
