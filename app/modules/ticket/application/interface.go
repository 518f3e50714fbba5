package ticketservice

import (
	"context"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	ticketevents "github.com/aaravmaloo/blue-moon/app/events/ticket"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
)

// Service handles ticket lifecycle business logic. The Sweep methods are
// periodic passes registered with the scheduler; they publish their events
// directly instead of returning results.
type Service interface {
	CreateTicket(ctx context.Context, payload *ticketevents.CreationRequestPayloadV1) (results.OperationResult, error)
	BindChannel(ctx context.Context, payload *ticketevents.ChannelCreatedPayloadV1) (results.OperationResult, error)
	Assign(ctx context.Context, payload *ticketevents.AssignRequestPayloadV1) (results.OperationResult, error)
	Close(ctx context.Context, payload *ticketevents.CloseRequestPayloadV1) (results.OperationResult, error)
	TouchActivity(ctx context.Context, payload *gatewayevents.MessageCreatedPayloadV1) (results.OperationResult, error)

	SweepSLA(ctx context.Context) error
	SweepAutoClose(ctx context.Context) error
}
