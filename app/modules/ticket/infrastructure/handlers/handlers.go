package tickethandlers

import (
	"context"
	"fmt"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	ticketevents "github.com/aaravmaloo/blue-moon/app/events/ticket"
	ticketservice "github.com/aaravmaloo/blue-moon/app/modules/ticket/application"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
)

// Handlers is the set of typed event handlers the ticket router registers.
type Handlers interface {
	HandleCreationRequested(ctx context.Context, payload *ticketevents.CreationRequestPayloadV1) ([]handlerwrapper.Result, error)
	HandleChannelCreated(ctx context.Context, payload *ticketevents.ChannelCreatedPayloadV1) ([]handlerwrapper.Result, error)
	HandleAssignRequested(ctx context.Context, payload *ticketevents.AssignRequestPayloadV1) ([]handlerwrapper.Result, error)
	HandleCloseRequested(ctx context.Context, payload *ticketevents.CloseRequestPayloadV1) ([]handlerwrapper.Result, error)
	HandleMessageCreated(ctx context.Context, payload *gatewayevents.MessageCreatedPayloadV1) ([]handlerwrapper.Result, error)
}

// TicketHandlers implements the Handlers interface for ticket events.
type TicketHandlers struct {
	service ticketservice.Service
}

// NewTicketHandlers creates a new TicketHandlers instance.
func NewTicketHandlers(service ticketservice.Service) *TicketHandlers {
	return &TicketHandlers{service: service}
}

var _ Handlers = (*TicketHandlers)(nil)

// mapOperationResult converts a service OperationResult to handler Results.
func mapOperationResult(
	result results.OperationResult,
	successTopic, failureTopic string,
) []handlerwrapper.Result {
	handlerResults := result.MapToHandlerResults(successTopic, failureTopic)

	wrapperResults := make([]handlerwrapper.Result, len(handlerResults))
	for i, hr := range handlerResults {
		wrapperResults[i] = handlerwrapper.Result{
			Topic:    hr.Topic,
			Payload:  hr.Payload,
			Metadata: hr.Metadata,
		}
	}

	return wrapperResults
}

// HandleCreationRequested handles ticket.creation.requested.v1. A created
// ticket fans out into the created event and the channel allocation
// request.
func (h *TicketHandlers) HandleCreationRequested(ctx context.Context, payload *ticketevents.CreationRequestPayloadV1) ([]handlerwrapper.Result, error) {
	result, err := h.service.CreateTicket(ctx, payload)
	if err != nil {
		return nil, err
	}

	switch success := result.Success.(type) {
	case nil:
		return mapOperationResult(result, "", ticketevents.CreationFailedV1), nil
	case *ticketservice.CreateOutcome:
		return []handlerwrapper.Result{
			{Topic: ticketevents.CreatedV1, Payload: success.Created},
			{Topic: gatewayevents.CreateChannelRequestedV1, Payload: success.Channel},
		}, nil
	default:
		return nil, fmt.Errorf("unexpected creation success payload %T", success)
	}
}

// HandleChannelCreated handles ticket.channel.created.v1.
func (h *TicketHandlers) HandleChannelCreated(ctx context.Context, payload *ticketevents.ChannelCreatedPayloadV1) ([]handlerwrapper.Result, error) {
	if _, err := h.service.BindChannel(ctx, payload); err != nil {
		return nil, err
	}
	return nil, nil
}

// HandleAssignRequested handles ticket.assign.requested.v1.
func (h *TicketHandlers) HandleAssignRequested(ctx context.Context, payload *ticketevents.AssignRequestPayloadV1) ([]handlerwrapper.Result, error) {
	result, err := h.service.Assign(ctx, payload)
	if err != nil {
		return nil, err
	}
	return mapOperationResult(result, ticketevents.AssignedV1, ticketevents.AssignFailedV1), nil
}

// HandleCloseRequested handles ticket.close.requested.v1.
func (h *TicketHandlers) HandleCloseRequested(ctx context.Context, payload *ticketevents.CloseRequestPayloadV1) ([]handlerwrapper.Result, error) {
	result, err := h.service.Close(ctx, payload)
	if err != nil {
		return nil, err
	}

	switch success := result.Success.(type) {
	case nil:
		return mapOperationResult(result, "", ticketevents.CloseFailedV1), nil
	case *ticketservice.CloseOutcome:
		out := []handlerwrapper.Result{
			{Topic: ticketevents.ClosedV1, Payload: success.Closed},
		}
		if success.Transcript != nil {
			out = append(out, handlerwrapper.Result{
				Topic:   ticketevents.TranscriptRequestedV1,
				Payload: success.Transcript,
			})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unexpected close success payload %T", success)
	}
}

// HandleMessageCreated keeps ticket last-activity fresh for the auto-close
// sweep. Messages outside ticket channels are a cheap no-op update.
func (h *TicketHandlers) HandleMessageCreated(ctx context.Context, payload *gatewayevents.MessageCreatedPayloadV1) ([]handlerwrapper.Result, error) {
	if _, err := h.service.TouchActivity(ctx, payload); err != nil {
		return nil, err
	}
	return nil, nil
}
