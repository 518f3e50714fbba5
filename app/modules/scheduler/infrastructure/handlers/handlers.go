package schedulerhandlers

import (
	"context"
	"errors"

	schedulerevents "github.com/aaravmaloo/blue-moon/app/events/scheduler"
	schedulerservice "github.com/aaravmaloo/blue-moon/app/modules/scheduler/application"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
)

// Handlers is the set of typed event handlers the scheduler router registers.
type Handlers interface {
	HandleReminderRequest(ctx context.Context, payload *schedulerevents.ReminderRequestPayloadV1) ([]handlerwrapper.Result, error)
	HandleMessageScheduleRequest(ctx context.Context, payload *schedulerevents.MessageScheduleRequestPayloadV1) ([]handlerwrapper.Result, error)
}

// SchedulerHandlers implements Handlers.
type SchedulerHandlers struct {
	requests schedulerservice.RequestService
}

// NewSchedulerHandlers creates a new SchedulerHandlers instance.
func NewSchedulerHandlers(requests schedulerservice.RequestService) *SchedulerHandlers {
	return &SchedulerHandlers{requests: requests}
}

var _ Handlers = (*SchedulerHandlers)(nil)

func mapOperationResult(result results.OperationResult, successTopic, failureTopic string) []handlerwrapper.Result {
	handlerResults := result.MapToHandlerResults(successTopic, failureTopic)
	wrapperResults := make([]handlerwrapper.Result, len(handlerResults))
	for i, hr := range handlerResults {
		wrapperResults[i] = handlerwrapper.Result{Topic: hr.Topic, Payload: hr.Payload, Metadata: hr.Metadata}
	}
	return wrapperResults
}

// HandleReminderRequest handles ReminderRequested events.
func (h *SchedulerHandlers) HandleReminderRequest(ctx context.Context, payload *schedulerevents.ReminderRequestPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.requests.RequestReminder(ctx, payload)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		schedulerevents.ReminderScheduledV1,
		schedulerevents.ReminderFailedV1,
	), nil
}

// HandleMessageScheduleRequest handles MessageScheduleRequested events.
func (h *SchedulerHandlers) HandleMessageScheduleRequest(ctx context.Context, payload *schedulerevents.MessageScheduleRequestPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.requests.RequestScheduledMessage(ctx, payload)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		schedulerevents.MessageScheduledV1,
		schedulerevents.MessageScheduleFailedV1,
	), nil
}
