package ticketservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketevents "github.com/aaravmaloo/blue-moon/app/events/ticket"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

func TestTicketService_SweepSLA(t *testing.T) {
	ctx := context.Background()

	t.Run("nags on every pass until assigned", func(t *testing.T) {
		s, env := newTestService(t)
		openTicket(t, s, env)

		// Not yet past the 60 minute SLA.
		env.now = env.now.Add(30 * time.Minute)
		require.NoError(t, s.SweepSLA(ctx))
		assert.Zero(t, env.publisher.count(ticketevents.SLAEscalatedV1))

		// Past the SLA: escalate on this pass and again on the next.
		env.now = env.now.Add(45 * time.Minute)
		require.NoError(t, s.SweepSLA(ctx))
		require.NoError(t, s.SweepSLA(ctx))
		assert.Equal(t, 2, env.publisher.count(ticketevents.SLAEscalatedV1))

		// Assignment silences the nag.
		_, err := s.Assign(ctx, &ticketevents.AssignRequestPayloadV1{
			GuildID: "g1", TicketID: "ticket-1", Requester: staffMember("mod1"), AssigneeID: "mod1",
		})
		require.NoError(t, err)
		require.NoError(t, s.SweepSLA(ctx))
		assert.Equal(t, 2, env.publisher.count(ticketevents.SLAEscalatedV1))
	})

	t.Run("closed tickets are not escalated", func(t *testing.T) {
		s, env := newTestService(t)
		openTicket(t, s, env)

		// The opener's close attempt is rejected and must not silence the
		// sweep by accident.
		result, err := s.Close(ctx, &ticketevents.CloseRequestPayloadV1{
			GuildID: "g1", TicketID: "ticket-1", Requester: opener("u1"),
		})
		require.NoError(t, err)
		require.IsType(t, &ticketevents.CloseFailedPayloadV1{}, result.Failure)

		result, err = s.Close(ctx, &ticketevents.CloseRequestPayloadV1{
			GuildID: "g1", TicketID: "ticket-1", Requester: staffMember("mod1"),
		})
		require.NoError(t, err)
		require.Nil(t, result.Failure)

		env.now = env.now.Add(2 * time.Hour)
		require.NoError(t, s.SweepSLA(ctx))
		assert.Zero(t, env.publisher.count(ticketevents.SLAEscalatedV1))
	})
}

func TestTicketService_SweepAutoClose(t *testing.T) {
	ctx := context.Background()

	t.Run("closes tickets inactive for 72h", func(t *testing.T) {
		s, env := newTestService(t)
		openTicket(t, s, env)

		env.now = env.now.Add(72 * time.Hour)
		require.NoError(t, s.SweepAutoClose(ctx))

		ticket := env.repo.Tickets["ticket-1"]
		assert.Equal(t, sharedtypes.TicketStatusClosed, ticket.Status)
		assert.Equal(t, env.now, ticket.ClosedAt)
		assert.Equal(t, 1, env.publisher.count(ticketevents.ClosedV1))
		assert.Equal(t, 1, env.publisher.count(ticketevents.TranscriptRequestedV1))
		require.Len(t, env.scheduler.ChannelDeletes, 1)

		// The reason reflects the configured threshold, not a hardcoded one.
		msg := env.publisher.last(ticketevents.ClosedV1)
		require.NotNil(t, msg)
		var closed ticketevents.ClosedPayloadV1
		require.NoError(t, json.Unmarshal(msg.Payload, &closed))
		assert.Equal(t, ticketevents.ClosedBySystem, closed.ClosedBy)
		assert.Equal(t, "closed automatically after 3d of inactivity", closed.Reason)
	})

	t.Run("custom threshold shows up in the close reason", func(t *testing.T) {
		s, env := newTestService(t, withAutoCloseAfter(36*time.Hour))
		openTicket(t, s, env)

		env.now = env.now.Add(36 * time.Hour)
		require.NoError(t, s.SweepAutoClose(ctx))

		msg := env.publisher.last(ticketevents.ClosedV1)
		require.NotNil(t, msg)
		var closed ticketevents.ClosedPayloadV1
		require.NoError(t, json.Unmarshal(msg.Payload, &closed))
		assert.Equal(t, "closed automatically after 36h of inactivity", closed.Reason)
	})

	t.Run("unreadable config defers the close", func(t *testing.T) {
		s, env := newTestService(t)
		openTicket(t, s, env)
		env.guilds.err = errors.New("config store down")

		env.now = env.now.Add(72 * time.Hour)
		require.NoError(t, s.SweepAutoClose(ctx))
		assert.Equal(t, sharedtypes.TicketStatusOpen, env.repo.Tickets["ticket-1"].Status)
		assert.Zero(t, env.publisher.count(ticketevents.ClosedV1))
		assert.Empty(t, env.scheduler.ChannelDeletes)

		// The next pass picks the ticket up once the config is back.
		env.guilds.err = nil
		require.NoError(t, s.SweepAutoClose(ctx))
		assert.Equal(t, sharedtypes.TicketStatusClosed, env.repo.Tickets["ticket-1"].Status)
		assert.Equal(t, 1, env.publisher.count(ticketevents.ClosedV1))
	})

	t.Run("recent activity keeps the ticket open", func(t *testing.T) {
		s, env := newTestService(t)
		openTicket(t, s, env)

		require.NoError(t, env.repo.TouchActivity(ctx, "g1", "chan-9", env.now.Add(48*time.Hour)))
		env.now = env.now.Add(72 * time.Hour)

		require.NoError(t, s.SweepAutoClose(ctx))
		assert.Equal(t, sharedtypes.TicketStatusOpen, env.repo.Tickets["ticket-1"].Status)
		assert.Zero(t, env.publisher.count(ticketevents.ClosedV1))
	})

	t.Run("second pass finds nothing to close", func(t *testing.T) {
		s, env := newTestService(t)
		openTicket(t, s, env)

		env.now = env.now.Add(72 * time.Hour)
		require.NoError(t, s.SweepAutoClose(ctx))
		require.NoError(t, s.SweepAutoClose(ctx))
		assert.Equal(t, 1, env.publisher.count(ticketevents.ClosedV1))
		assert.Len(t, env.scheduler.ChannelDeletes, 1)
	})
}
