package ticketservice

import (
	"context"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	schedulerservice "github.com/aaravmaloo/blue-moon/app/modules/scheduler/application"
	ticketdb "github.com/aaravmaloo/blue-moon/app/modules/ticket/infrastructure/repositories"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
	guildtypes "github.com/aaravmaloo/blue-moon/app/shared/types/guild"
)

// FakeTicketRepository is an in-memory Repository with the same status
// guards as the SQL implementation.
type FakeTicketRepository struct {
	Tickets map[string]*ticketdb.Ticket

	CreateErr error
	QueryErr  error
}

var _ ticketdb.Repository = (*FakeTicketRepository)(nil)

func NewFakeTicketRepository() *FakeTicketRepository {
	return &FakeTicketRepository{Tickets: make(map[string]*ticketdb.Ticket)}
}

func (f *FakeTicketRepository) CreateTicket(_ context.Context, ticket *ticketdb.Ticket) error {
	if f.CreateErr != nil {
		return f.CreateErr
	}
	for _, t := range f.Tickets {
		if t.GuildID == ticket.GuildID && t.Opener == ticket.Opener && t.Status == sharedtypes.TicketStatusOpen {
			return ticketdb.ErrDuplicateOpen
		}
	}
	copied := *ticket
	f.Tickets[ticket.ID] = &copied
	return nil
}

func (f *FakeTicketRepository) GetOpenByOpener(_ context.Context, guildID sharedtypes.GuildID, openerID sharedtypes.DiscordID) (*ticketdb.Ticket, error) {
	if f.QueryErr != nil {
		return nil, f.QueryErr
	}
	for _, t := range f.Tickets {
		if t.GuildID == guildID && t.Opener == openerID && t.Status == sharedtypes.TicketStatusOpen {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *FakeTicketRepository) BindChannel(_ context.Context, guildID sharedtypes.GuildID, ticketID string, channelID sharedtypes.ChannelID) error {
	if t, ok := f.Tickets[ticketID]; ok && t.GuildID == guildID {
		t.ChannelID = channelID
	}
	return nil
}

func (f *FakeTicketRepository) Assign(_ context.Context, guildID sharedtypes.GuildID, ticketID string, assigneeID sharedtypes.DiscordID) (*ticketdb.Ticket, bool, error) {
	t, ok := f.Tickets[ticketID]
	if !ok || t.GuildID != guildID || t.Status != sharedtypes.TicketStatusOpen {
		return nil, false, nil
	}
	t.AssigneeID = assigneeID
	copied := *t
	return &copied, true, nil
}

func (f *FakeTicketRepository) Close(_ context.Context, guildID sharedtypes.GuildID, ticketID string, closedAt time.Time) (*ticketdb.Ticket, bool, error) {
	t, ok := f.Tickets[ticketID]
	if !ok || t.GuildID != guildID || t.Status != sharedtypes.TicketStatusOpen {
		return nil, false, nil
	}
	t.Status = sharedtypes.TicketStatusClosed
	t.ClosedAt = closedAt
	copied := *t
	return &copied, true, nil
}

func (f *FakeTicketRepository) TouchActivity(_ context.Context, guildID sharedtypes.GuildID, channelID sharedtypes.ChannelID, at time.Time) error {
	for _, t := range f.Tickets {
		if t.GuildID == guildID && t.ChannelID == channelID && t.Status == sharedtypes.TicketStatusOpen {
			t.LastActivityAt = at
		}
	}
	return nil
}

func (f *FakeTicketRepository) ListOpenUnassigned(_ context.Context) ([]ticketdb.Ticket, error) {
	if f.QueryErr != nil {
		return nil, f.QueryErr
	}
	var out []ticketdb.Ticket
	for _, t := range f.Tickets {
		if t.Status == sharedtypes.TicketStatusOpen && t.AssigneeID == "" {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *FakeTicketRepository) ListOpenInactiveSince(_ context.Context, cutoff time.Time) ([]ticketdb.Ticket, error) {
	if f.QueryErr != nil {
		return nil, f.QueryErr
	}
	var out []ticketdb.Ticket
	for _, t := range f.Tickets {
		if t.Status == sharedtypes.TicketStatusOpen && !t.LastActivityAt.After(cutoff) {
			out = append(out, *t)
		}
	}
	return out, nil
}

// fakeConfigProvider returns one fixed config for every guild.
type fakeConfigProvider struct {
	cfg *guildtypes.GuildConfig
	err error
}

func (f *fakeConfigProvider) Config(_ context.Context, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.cfg != nil {
		return f.cfg, nil
	}
	return &guildtypes.GuildConfig{
		GuildID:             guildID,
		StaffRoleID:         "staff-role",
		TicketCategoryID:    "cat-1",
		TranscriptChannelID: "transcripts",
		TicketSLAMinutes:    60,
	}, nil
}

// fakeScheduler records scheduled channel deletions.
type fakeScheduler struct {
	ChannelDeletes []schedulerservice.ChannelDeleteJob
	FireTimes      []time.Time
	ScheduleErr    error
}

var _ schedulerservice.Service = (*fakeScheduler)(nil)

func (f *fakeScheduler) ScheduleReminder(context.Context, schedulerservice.ReminderJob, time.Time) error {
	return f.ScheduleErr
}

func (f *fakeScheduler) ScheduleMessage(context.Context, schedulerservice.ScheduledMessageJob, time.Time) error {
	return f.ScheduleErr
}

func (f *fakeScheduler) ScheduleUnban(context.Context, schedulerservice.UnbanJob, time.Time) error {
	return f.ScheduleErr
}

func (f *fakeScheduler) ScheduleUntimeout(context.Context, schedulerservice.UntimeoutJob, time.Time) error {
	return f.ScheduleErr
}

func (f *fakeScheduler) ScheduleChannelDelete(_ context.Context, job schedulerservice.ChannelDeleteJob, fireAt time.Time) error {
	if f.ScheduleErr != nil {
		return f.ScheduleErr
	}
	f.ChannelDeletes = append(f.ChannelDeletes, job)
	f.FireTimes = append(f.FireTimes, fireAt)
	return nil
}

func (f *fakeScheduler) RegisterSweep(string, time.Duration, schedulerservice.SweepFunc) {}
func (f *fakeScheduler) Start(context.Context) error                                    { return nil }
func (f *fakeScheduler) Stop(context.Context) error                                     { return nil }

// fakePublisher records published sweep events by topic.
type fakePublisher struct {
	mu       sync.Mutex
	Topics   []string
	Messages map[string][]*message.Message
}

func (f *fakePublisher) Publish(topic string, msgs ...*message.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Topics = append(f.Topics, topic)
	if f.Messages == nil {
		f.Messages = make(map[string][]*message.Message)
	}
	f.Messages[topic] = append(f.Messages[topic], msgs...)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

func (f *fakePublisher) count(topic string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.Topics {
		if t == topic {
			n++
		}
	}
	return n
}

func (f *fakePublisher) last(topic string) *message.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	msgs := f.Messages[topic]
	if len(msgs) == 0 {
		return nil
	}
	return msgs[len(msgs)-1]
}
