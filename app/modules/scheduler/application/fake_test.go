package schedulerservice

import (
	"context"
	"time"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
	guildtypes "github.com/aaravmaloo/blue-moon/app/shared/types/guild"
)

// FakeScheduler records scheduled jobs for assertion.
type FakeScheduler struct {
	Reminders      []ReminderJob
	Messages       []ScheduledMessageJob
	Unbans         []UnbanJob
	Untimeouts     []UntimeoutJob
	ChannelDeletes []ChannelDeleteJob
	FireTimes      []time.Time

	ScheduleErr error
}

var _ Service = (*FakeScheduler)(nil)

func (f *FakeScheduler) ScheduleReminder(_ context.Context, job ReminderJob, fireAt time.Time) error {
	if f.ScheduleErr != nil {
		return f.ScheduleErr
	}
	f.Reminders = append(f.Reminders, job)
	f.FireTimes = append(f.FireTimes, fireAt)
	return nil
}

func (f *FakeScheduler) ScheduleMessage(_ context.Context, job ScheduledMessageJob, fireAt time.Time) error {
	if f.ScheduleErr != nil {
		return f.ScheduleErr
	}
	f.Messages = append(f.Messages, job)
	f.FireTimes = append(f.FireTimes, fireAt)
	return nil
}

func (f *FakeScheduler) ScheduleUnban(_ context.Context, job UnbanJob, fireAt time.Time) error {
	if f.ScheduleErr != nil {
		return f.ScheduleErr
	}
	f.Unbans = append(f.Unbans, job)
	f.FireTimes = append(f.FireTimes, fireAt)
	return nil
}

func (f *FakeScheduler) ScheduleUntimeout(_ context.Context, job UntimeoutJob, fireAt time.Time) error {
	if f.ScheduleErr != nil {
		return f.ScheduleErr
	}
	f.Untimeouts = append(f.Untimeouts, job)
	f.FireTimes = append(f.FireTimes, fireAt)
	return nil
}

func (f *FakeScheduler) ScheduleChannelDelete(_ context.Context, job ChannelDeleteJob, fireAt time.Time) error {
	if f.ScheduleErr != nil {
		return f.ScheduleErr
	}
	f.ChannelDeletes = append(f.ChannelDeletes, job)
	f.FireTimes = append(f.FireTimes, fireAt)
	return nil
}

func (f *FakeScheduler) RegisterSweep(string, time.Duration, SweepFunc) {}
func (f *FakeScheduler) Start(context.Context) error                   { return nil }
func (f *FakeScheduler) Stop(context.Context) error                    { return nil }

// fakeConfigProvider returns a fixed config for every guild.
type fakeConfigProvider struct {
	cfg *guildtypes.GuildConfig
}

func (f *fakeConfigProvider) Config(_ context.Context, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error) {
	if f.cfg != nil {
		return f.cfg, nil
	}
	return &guildtypes.GuildConfig{GuildID: guildID, StaffRoleID: "staff-role"}, nil
}
