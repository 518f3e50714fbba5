package guildservice

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	guildevents "github.com/aaravmaloo/blue-moon/app/events/guild"
	"github.com/aaravmaloo/blue-moon/app/shared/metrics"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
	guildtypes "github.com/aaravmaloo/blue-moon/app/shared/types/guild"
	"github.com/aaravmaloo/blue-moon/config"
)

func newTestService(repo *FakeGuildRepository) *GuildService {
	return NewGuildService(
		repo,
		config.EngineConfig{
			CapsRatioThreshold: 0.8,
			SpamMessageCount:   6,
			SpamWindowSeconds:  8,
			AntiAltMinAgeHours: 24,
			JoinBurstCount:     10,
			TicketSLAMinutes:   60,
		},
		slog.New(slog.DiscardHandler),
		metrics.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
	)
}

func staffMember(id string) sharedtypes.MemberInfo {
	return sharedtypes.MemberInfo{UserID: sharedtypes.DiscordID(id), IsAdmin: true}
}

func storedConfig(guildID sharedtypes.GuildID) *guildtypes.GuildConfig {
	return &guildtypes.GuildConfig{
		GuildID:            guildID,
		StaffRoleID:        "staff-role",
		CapsRatioThreshold: 0.8,
		SpamMessageCount:   6,
		SpamWindowSeconds:  8,
		TicketSLAMinutes:   60,
		XPMessageRate:      1.0,
		XPVoiceRate:        1.0,
	}
}

func TestGuildService_UpdateConfig(t *testing.T) {
	ctx := context.Background()

	floatPtr := func(v float64) *float64 { return &v }
	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name        string
		payload     *guildevents.ConfigUpdatePayloadV1
		wantSuccess bool
		wantUpdates map[string]any
		failReason  string
	}{
		{
			name: "clamps caps ratio above range",
			payload: &guildevents.ConfigUpdatePayloadV1{
				GuildID:            "g1",
				Requester:          staffMember("u1"),
				CapsRatioThreshold: floatPtr(2.5),
			},
			wantSuccess: true,
			wantUpdates: map[string]any{"caps_ratio_threshold": 1.0},
		},
		{
			name: "clamps spam count below range",
			payload: &guildevents.ConfigUpdatePayloadV1{
				GuildID:          "g1",
				Requester:        staffMember("u1"),
				SpamMessageCount: intPtr(1),
			},
			wantSuccess: true,
			wantUpdates: map[string]any{"spam_message_count": 2},
		},
		{
			name: "clamps sla to at least one minute",
			payload: &guildevents.ConfigUpdatePayloadV1{
				GuildID:          "g1",
				Requester:        staffMember("u1"),
				TicketSLAMinutes: intPtr(0),
			},
			wantSuccess: true,
			wantUpdates: map[string]any{"ticket_sla_minutes": 1},
		},
		{
			name: "rejects non-staff requester",
			payload: &guildevents.ConfigUpdatePayloadV1{
				GuildID:          "g1",
				Requester:        sharedtypes.MemberInfo{UserID: "u2"},
				SpamMessageCount: intPtr(4),
			},
			failReason: ErrNotStaff.Error(),
		},
		{
			name: "staff role membership grants access",
			payload: &guildevents.ConfigUpdatePayloadV1{
				GuildID: "g1",
				Requester: sharedtypes.MemberInfo{
					UserID:  "u3",
					RoleIDs: []sharedtypes.RoleID{"staff-role"},
				},
				SpamWindowSeconds: intPtr(1),
			},
			wantSuccess: true,
			wantUpdates: map[string]any{"spam_window_seconds": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeGuildRepository()
			repo.GetConfigFunc = func(_ context.Context, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error) {
				return storedConfig(guildID), nil
			}
			s := newTestService(repo)

			got, err := s.UpdateConfig(ctx, tt.payload)
			require.NoError(t, err)

			if tt.wantSuccess {
				require.NotNil(t, got.Success)
				for col, want := range tt.wantUpdates {
					assert.Equal(t, want, repo.LastUpdates[col], "column %s", col)
				}
			} else {
				require.NotNil(t, got.Failure)
				failure, ok := got.Failure.(*guildevents.ConfigUpdateFailedPayloadV1)
				require.True(t, ok)
				assert.Equal(t, tt.failReason, failure.Reason)
				assert.Nil(t, repo.LastUpdates, "no update should be written")
			}
		})
	}
}

func TestGuildService_UpdateConfig_DBError(t *testing.T) {
	repo := NewFakeGuildRepository()
	repo.GetConfigFunc = func(_ context.Context, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error) {
		return storedConfig(guildID), nil
	}
	repo.UpdateFieldsFunc = func(context.Context, sharedtypes.GuildID, map[string]any) error {
		return errors.New("connection reset")
	}
	s := newTestService(repo)

	enabled := true
	_, err := s.UpdateConfig(context.Background(), &guildevents.ConfigUpdatePayloadV1{
		GuildID:           "g1",
		Requester:         staffMember("u1"),
		LinkFilterEnabled: &enabled,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestGuildService_Config_LazyCreation(t *testing.T) {
	repo := NewFakeGuildRepository()
	s := newTestService(repo)

	cfg, err := s.Config(context.Background(), "fresh-guild")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, sharedtypes.GuildID("fresh-guild"), cfg.GuildID)
	assert.Equal(t, 0.8, cfg.CapsRatioThreshold)
	assert.Equal(t, 6, cfg.SpamMessageCount)
	assert.Equal(t, 60, cfg.TicketSLAMinutes)
	assert.True(t, cfg.ProfanityFilterEnabled)
	assert.Equal(t, []string{"GetConfig", "GetOrCreateConfig"}, repo.Trace())
}

func TestGuildService_Config_EmptyGuildID(t *testing.T) {
	s := newTestService(NewFakeGuildRepository())

	_, err := s.Config(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidGuildID)
}
