package moderationservice

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	moderationevents "github.com/aaravmaloo/blue-moon/app/events/moderation"
	"github.com/aaravmaloo/blue-moon/app/shared/metrics"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

func newTestService(repo *FakeModerationRepository, guilds *fakeConfigProvider, scheduler *fakeScheduler, now func() time.Time) *ModerationService {
	return NewModerationService(
		repo,
		guilds,
		scheduler,
		now,
		slog.New(slog.DiscardHandler),
		metrics.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
	)
}

func inboundMessage(user, content string) *gatewayevents.MessageCreatedPayloadV1 {
	return &gatewayevents.MessageCreatedPayloadV1{
		GuildID:   "g1",
		ChannelID: "c1",
		MessageID: "m1",
		Author:    sharedtypes.MemberInfo{UserID: sharedtypes.DiscordID(user)},
		Content:   content,
		SentAt:    time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestModerationService_ProcessMessage_Allowed(t *testing.T) {
	s := newTestService(&FakeModerationRepository{}, &fakeConfigProvider{}, &fakeScheduler{}, nil)

	result, err := s.ProcessMessage(context.Background(), inboundMessage("u1", "hello everyone"))
	require.NoError(t, err)

	allowed, ok := result.Success.(*moderationevents.MessageAllowedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, sharedtypes.MessageID("m1"), allowed.MessageID)
	assert.Equal(t, sharedtypes.DiscordID("u1"), allowed.Author.UserID)
}

func TestModerationService_ProcessMessage_Blocked(t *testing.T) {
	s := newTestService(&FakeModerationRepository{}, &fakeConfigProvider{}, &fakeScheduler{}, nil)

	result, err := s.ProcessMessage(context.Background(), inboundMessage("u1", "spam link https://evil.example"))
	require.NoError(t, err)

	blocked, ok := result.Success.(*moderationevents.MessageBlockedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "links", blocked.Reason)
	assert.Equal(t, sharedtypes.DiscordID("u1"), blocked.AuthorID)
}

func TestModerationService_ProcessMessage_BotIgnored(t *testing.T) {
	s := newTestService(&FakeModerationRepository{}, &fakeConfigProvider{}, &fakeScheduler{}, nil)

	payload := inboundMessage("bot1", "shit https://spam.example")
	payload.Author.IsBot = true

	result, err := s.ProcessMessage(context.Background(), payload)
	require.NoError(t, err)
	assert.Nil(t, result.Success)
	assert.Nil(t, result.Failure)
}

func TestModerationService_ProcessMessage_StaffExempt(t *testing.T) {
	s := newTestService(&FakeModerationRepository{}, &fakeConfigProvider{}, &fakeScheduler{}, nil)

	payload := inboundMessage("mod1", "https://example.com look at this")
	payload.Author.RoleIDs = []sharedtypes.RoleID{"staff-role"}

	result, err := s.ProcessMessage(context.Background(), payload)
	require.NoError(t, err)
	_, ok := result.Success.(*moderationevents.MessageAllowedPayloadV1)
	assert.True(t, ok)
}

func TestModerationService_ProcessMessage_ConfigError(t *testing.T) {
	s := newTestService(&FakeModerationRepository{}, &fakeConfigProvider{err: errors.New("db down")}, &fakeScheduler{}, nil)

	_, err := s.ProcessMessage(context.Background(), inboundMessage("u1", "hello"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
