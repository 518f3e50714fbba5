package moderationservice

import (
	"context"
	"time"

	moderationdb "github.com/aaravmaloo/blue-moon/app/modules/moderation/infrastructure/repositories"
	schedulerservice "github.com/aaravmaloo/blue-moon/app/modules/scheduler/application"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
	guildtypes "github.com/aaravmaloo/blue-moon/app/shared/types/guild"
)

// FakeModerationRepository provides a programmable stub for the
// moderationdb.Repository interface.
type FakeModerationRepository struct {
	Warnings     []moderationdb.Warning
	Restrictions []moderationdb.Restriction

	AddWarningErr     error
	ListWarningsErr   error
	AddRestrictionErr error
}

func (f *FakeModerationRepository) AddWarning(ctx context.Context, warning *moderationdb.Warning) (*moderationdb.Warning, int, error) {
	if f.AddWarningErr != nil {
		return nil, 0, f.AddWarningErr
	}
	warning.ID = int64(len(f.Warnings) + 1)
	warning.CreatedAt = time.Now()
	f.Warnings = append(f.Warnings, *warning)

	count := 0
	for _, w := range f.Warnings {
		if w.GuildID == warning.GuildID && w.UserID == warning.UserID {
			count++
		}
	}
	return warning, count, nil
}

func (f *FakeModerationRepository) ListWarnings(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID) ([]moderationdb.Warning, error) {
	if f.ListWarningsErr != nil {
		return nil, f.ListWarningsErr
	}
	var out []moderationdb.Warning
	for _, w := range f.Warnings {
		if w.GuildID == guildID && w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *FakeModerationRepository) AddRestriction(ctx context.Context, restriction *moderationdb.Restriction) error {
	if f.AddRestrictionErr != nil {
		return f.AddRestrictionErr
	}
	restriction.ID = int64(len(f.Restrictions) + 1)
	f.Restrictions = append(f.Restrictions, *restriction)
	return nil
}

var _ moderationdb.Repository = (*FakeModerationRepository)(nil)

// fakeConfigProvider serves a fixed config for any guild.
type fakeConfigProvider struct {
	cfg *guildtypes.GuildConfig
	err error
}

func (f *fakeConfigProvider) Config(ctx context.Context, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.cfg != nil {
		return f.cfg, nil
	}
	return &guildtypes.GuildConfig{
		GuildID:                guildID,
		StaffRoleID:            "staff-role",
		ProfanityFilterEnabled: true,
		LinkFilterEnabled:      true,
		CapsRatioThreshold:     0.8,
		SpamMessageCount:       6,
		SpamWindowSeconds:      8,
		AntiAltMinAgeHours:     24,
		JoinBurstCount:         10,
	}, nil
}

// fakeScheduler records scheduled reversal jobs.
type fakeScheduler struct {
	Unbans     []schedulerservice.UnbanJob
	Untimeouts []schedulerservice.UntimeoutJob
	FireTimes  []time.Time

	ScheduleErr error
}

func (f *fakeScheduler) ScheduleReminder(ctx context.Context, job schedulerservice.ReminderJob, fireAt time.Time) error {
	return f.ScheduleErr
}

func (f *fakeScheduler) ScheduleMessage(ctx context.Context, job schedulerservice.ScheduledMessageJob, fireAt time.Time) error {
	return f.ScheduleErr
}

func (f *fakeScheduler) ScheduleUnban(ctx context.Context, job schedulerservice.UnbanJob, fireAt time.Time) error {
	if f.ScheduleErr != nil {
		return f.ScheduleErr
	}
	f.Unbans = append(f.Unbans, job)
	f.FireTimes = append(f.FireTimes, fireAt)
	return nil
}

func (f *fakeScheduler) ScheduleUntimeout(ctx context.Context, job schedulerservice.UntimeoutJob, fireAt time.Time) error {
	if f.ScheduleErr != nil {
		return f.ScheduleErr
	}
	f.Untimeouts = append(f.Untimeouts, job)
	f.FireTimes = append(f.FireTimes, fireAt)
	return nil
}

func (f *fakeScheduler) ScheduleChannelDelete(ctx context.Context, job schedulerservice.ChannelDeleteJob, fireAt time.Time) error {
	return f.ScheduleErr
}

func (f *fakeScheduler) RegisterSweep(name string, every time.Duration, fn schedulerservice.SweepFunc) {}

func (f *fakeScheduler) Start(ctx context.Context) error { return nil }
func (f *fakeScheduler) Stop(ctx context.Context) error  { return nil }

var _ schedulerservice.Service = (*fakeScheduler)(nil)
