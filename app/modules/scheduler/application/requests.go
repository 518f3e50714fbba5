package schedulerservice

import (
	"context"
	"time"

	schedulerevents "github.com/aaravmaloo/blue-moon/app/events/scheduler"
	guildservice "github.com/aaravmaloo/blue-moon/app/modules/guild/application"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
	"github.com/aaravmaloo/blue-moon/app/shared/utils"
)

// RequestService handles user-facing scheduling requests: reminders and
// staff-scheduled messages. Separate from the Service so the job-queue core
// stays free of guild config concerns.
type RequestService interface {
	RequestReminder(ctx context.Context, payload *schedulerevents.ReminderRequestPayloadV1) (results.OperationResult, error)
	RequestScheduledMessage(ctx context.Context, payload *schedulerevents.MessageScheduleRequestPayloadV1) (results.OperationResult, error)
}

// Requests implements RequestService on top of the scheduler core.
type Requests struct {
	scheduler Service
	guilds    guildservice.ConfigProvider
	now       func() time.Time
}

// NewRequests creates the request layer. now is injectable for tests.
func NewRequests(scheduler Service, guilds guildservice.ConfigProvider, now func() time.Time) *Requests {
	if now == nil {
		now = time.Now
	}
	return &Requests{scheduler: scheduler, guilds: guilds, now: now}
}

var _ RequestService = (*Requests)(nil)

// RequestReminder parses the user-supplied time spec and schedules the
// reminder. An unparseable spec is a business failure; nothing is
// scheduled.
func (r *Requests) RequestReminder(ctx context.Context, payload *schedulerevents.ReminderRequestPayloadV1) (results.OperationResult, error) {
	fireAt, err := utils.ParseTimeSpec(payload.When, r.now())
	if err != nil {
		return results.FailureResult(&schedulerevents.ReminderFailedPayloadV1{
			GuildID: payload.GuildID,
			UserID:  payload.UserID,
			Reason:  err.Error(),
		}), nil
	}

	if err := r.scheduler.ScheduleReminder(ctx, ReminderJob{
		GuildID:   payload.GuildID,
		ChannelID: payload.ChannelID,
		UserID:    payload.UserID,
		Text:      payload.Text,
	}, fireAt); err != nil {
		return results.OperationResult{}, err
	}

	return results.SuccessResult(&schedulerevents.ReminderScheduledPayloadV1{
		GuildID: payload.GuildID,
		UserID:  payload.UserID,
		FireAt:  fireAt,
		Text:    payload.Text,
	}), nil
}

// RequestScheduledMessage schedules a one-shot channel message. Staff only.
func (r *Requests) RequestScheduledMessage(ctx context.Context, payload *schedulerevents.MessageScheduleRequestPayloadV1) (results.OperationResult, error) {
	cfg, err := r.guilds.Config(ctx, payload.GuildID)
	if err != nil {
		return results.OperationResult{}, err
	}
	if !guildservice.IsStaff(cfg, payload.Requester) {
		return results.FailureResult(&schedulerevents.MessageScheduleFailedPayloadV1{
			GuildID: payload.GuildID,
			Reason:  guildservice.ErrNotStaff.Error(),
		}), nil
	}

	fireAt, err := utils.ParseTimeSpec(payload.When, r.now())
	if err != nil {
		return results.FailureResult(&schedulerevents.MessageScheduleFailedPayloadV1{
			GuildID: payload.GuildID,
			Reason:  err.Error(),
		}), nil
	}

	if err := r.scheduler.ScheduleMessage(ctx, ScheduledMessageJob{
		GuildID:   payload.GuildID,
		ChannelID: payload.ChannelID,
		Content:   payload.Content,
	}, fireAt); err != nil {
		return results.OperationResult{}, err
	}

	return results.SuccessResult(&schedulerevents.MessageScheduledPayloadV1{
		GuildID:   payload.GuildID,
		ChannelID: payload.ChannelID,
		FireAt:    fireAt,
	}), nil
}
