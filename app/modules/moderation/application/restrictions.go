package moderationservice

import (
	"context"
	"fmt"

	moderationevents "github.com/aaravmaloo/blue-moon/app/events/moderation"
	guildservice "github.com/aaravmaloo/blue-moon/app/modules/guild/application"
	moderationdb "github.com/aaravmaloo/blue-moon/app/modules/moderation/infrastructure/repositories"
	schedulerservice "github.com/aaravmaloo/blue-moon/app/modules/scheduler/application"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
	"github.com/aaravmaloo/blue-moon/app/shared/utils"
)

// TempBan applies a staff-requested temporary ban: an audit row, the ban
// request for the gateway, and a durable unban scheduled for the expiry.
// The reversal outlives restarts because it lives in the job table, not in
// process memory.
func (s *ModerationService) TempBan(ctx context.Context, payload *moderationevents.TempBanRequestPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "TempBan", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		cfg, err := s.guilds.Config(ctx, payload.GuildID)
		if err != nil {
			return results.OperationResult{}, err
		}

		if !guildservice.IsStaff(cfg, payload.Requester) {
			return results.FailureResult(&moderationevents.TempBanFailedPayloadV1{
				GuildID:  payload.GuildID,
				TargetID: payload.TargetID,
				Reason:   guildservice.ErrNotStaff.Error(),
			}), nil
		}

		d, err := utils.ParseDuration(payload.Duration)
		if err != nil {
			return results.FailureResult(&moderationevents.TempBanFailedPayloadV1{
				GuildID:  payload.GuildID,
				TargetID: payload.TargetID,
				Reason:   err.Error(),
			}), nil
		}

		until := s.now().Add(d)

		if err := s.repo.AddRestriction(ctx, &moderationdb.Restriction{
			GuildID:     payload.GuildID,
			UserID:      payload.TargetID,
			ModeratorID: payload.Requester.UserID,
			Kind:        moderationdb.RestrictionBan,
			Reason:      payload.Reason,
			ExpiresAt:   until,
		}); err != nil {
			return results.OperationResult{}, fmt.Errorf("record tempban: %w", err)
		}

		if err := s.scheduler.ScheduleUnban(ctx, schedulerservice.UnbanJob{
			GuildID: payload.GuildID,
			UserID:  payload.TargetID,
			Reason:  "tempban expired",
		}, until); err != nil {
			return results.OperationResult{}, fmt.Errorf("schedule unban: %w", err)
		}

		return results.SuccessResult(&moderationevents.TempBanAppliedPayloadV1{
			GuildID:  payload.GuildID,
			TargetID: payload.TargetID,
			Until:    until,
			Reason:   payload.Reason,
		}), nil
	})
}

// Timeout applies a staff-requested temporary timeout. The platform enforces
// the expiry on its own; the scheduled untimeout is a belt on top of that so
// the lift happens even when the gateway applied a longer timeout than asked.
func (s *ModerationService) Timeout(ctx context.Context, payload *moderationevents.TimeoutRequestPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "Timeout", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		cfg, err := s.guilds.Config(ctx, payload.GuildID)
		if err != nil {
			return results.OperationResult{}, err
		}

		if !guildservice.IsStaff(cfg, payload.Requester) {
			return results.FailureResult(&moderationevents.TimeoutFailedPayloadV1{
				GuildID:  payload.GuildID,
				TargetID: payload.TargetID,
				Reason:   guildservice.ErrNotStaff.Error(),
			}), nil
		}

		d, err := utils.ParseDuration(payload.Duration)
		if err != nil {
			return results.FailureResult(&moderationevents.TimeoutFailedPayloadV1{
				GuildID:  payload.GuildID,
				TargetID: payload.TargetID,
				Reason:   err.Error(),
			}), nil
		}

		until := s.now().Add(d)

		if err := s.repo.AddRestriction(ctx, &moderationdb.Restriction{
			GuildID:     payload.GuildID,
			UserID:      payload.TargetID,
			ModeratorID: payload.Requester.UserID,
			Kind:        moderationdb.RestrictionTimeout,
			Reason:      payload.Reason,
			ExpiresAt:   until,
		}); err != nil {
			return results.OperationResult{}, fmt.Errorf("record timeout: %w", err)
		}

		if err := s.scheduler.ScheduleUntimeout(ctx, schedulerservice.UntimeoutJob{
			GuildID: payload.GuildID,
			UserID:  payload.TargetID,
		}, until); err != nil {
			return results.OperationResult{}, fmt.Errorf("schedule untimeout: %w", err)
		}

		return results.SuccessResult(&moderationevents.TimeoutAppliedPayloadV1{
			GuildID:  payload.GuildID,
			TargetID: payload.TargetID,
			Until:    until,
			Reason:   payload.Reason,
		}), nil
	})
}
