package schedulerservice

import (
	"context"
	"log/slog"

	"github.com/riverqueue/river"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	"github.com/aaravmaloo/blue-moon/app/eventbus"
	"github.com/aaravmaloo/blue-moon/app/shared/attr"
	"github.com/aaravmaloo/blue-moon/app/shared/handlerwrapper"
)

// publishAction publishes one outbound event for a fired job. A publish
// failure is logged and swallowed: jobs are inserted with MaxAttempts 1, a
// fired action is spent whether or not the gateway heard about it.
func publishAction(ctx context.Context, publisher eventbus.EventBus, logger *slog.Logger, kind, topic string, payload any) error {
	msg, err := handlerwrapper.NewResultMessage(handlerwrapper.Result{
		Topic:   topic,
		Payload: payload,
	}, attr.CorrelationIDFromContext(ctx))
	if err != nil {
		logger.ErrorContext(ctx, "Deferred action payload did not marshal",
			attr.String("kind", kind),
			attr.String("topic", topic),
			attr.Error(err),
		)
		return nil
	}

	if err := publisher.Publish(topic, msg); err != nil {
		logger.ErrorContext(ctx, "Deferred action publish failed",
			attr.String("kind", kind),
			attr.String("topic", topic),
			attr.Error(err),
		)
		return nil
	}

	logger.InfoContext(ctx, "Deferred action fired",
		attr.String("kind", kind),
		attr.String("topic", topic),
	)
	return nil
}

type reminderWorker struct {
	river.WorkerDefaults[ReminderJob]
	publisher eventbus.EventBus
	logger    *slog.Logger
}

func (w *reminderWorker) Work(ctx context.Context, job *river.Job[ReminderJob]) error {
	return publishAction(ctx, w.publisher, w.logger, job.Args.Kind(),
		gatewayevents.SendMessageRequestedV1,
		&gatewayevents.SendMessagePayloadV1{
			GuildID:       job.Args.GuildID,
			ChannelID:     job.Args.ChannelID,
			Content:       job.Args.Text,
			MentionUserID: job.Args.UserID,
		})
}

type scheduledMessageWorker struct {
	river.WorkerDefaults[ScheduledMessageJob]
	publisher eventbus.EventBus
	logger    *slog.Logger
}

func (w *scheduledMessageWorker) Work(ctx context.Context, job *river.Job[ScheduledMessageJob]) error {
	return publishAction(ctx, w.publisher, w.logger, job.Args.Kind(),
		gatewayevents.SendMessageRequestedV1,
		&gatewayevents.SendMessagePayloadV1{
			GuildID:   job.Args.GuildID,
			ChannelID: job.Args.ChannelID,
			Content:   job.Args.Content,
		})
}

type unbanWorker struct {
	river.WorkerDefaults[UnbanJob]
	publisher eventbus.EventBus
	logger    *slog.Logger
}

func (w *unbanWorker) Work(ctx context.Context, job *river.Job[UnbanJob]) error {
	return publishAction(ctx, w.publisher, w.logger, job.Args.Kind(),
		gatewayevents.UnbanMemberRequestedV1,
		&gatewayevents.UnbanMemberPayloadV1{
			GuildID: job.Args.GuildID,
			UserID:  job.Args.UserID,
			Reason:  job.Args.Reason,
		})
}

type untimeoutWorker struct {
	river.WorkerDefaults[UntimeoutJob]
	publisher eventbus.EventBus
	logger    *slog.Logger
}

func (w *untimeoutWorker) Work(ctx context.Context, job *river.Job[UntimeoutJob]) error {
	// Zero Until lifts the timeout on the gateway side.
	return publishAction(ctx, w.publisher, w.logger, job.Args.Kind(),
		gatewayevents.TimeoutMemberRequestedV1,
		&gatewayevents.TimeoutMemberPayloadV1{
			GuildID: job.Args.GuildID,
			UserID:  job.Args.UserID,
			Reason:  "temporary restriction expired",
		})
}

type channelDeleteWorker struct {
	river.WorkerDefaults[ChannelDeleteJob]
	publisher eventbus.EventBus
	logger    *slog.Logger
}

func (w *channelDeleteWorker) Work(ctx context.Context, job *river.Job[ChannelDeleteJob]) error {
	return publishAction(ctx, w.publisher, w.logger, job.Args.Kind(),
		gatewayevents.DeleteChannelRequestedV1,
		&gatewayevents.DeleteChannelPayloadV1{
			GuildID:   job.Args.GuildID,
			ChannelID: job.Args.ChannelID,
			Reason:    job.Args.Reason,
		})
}
