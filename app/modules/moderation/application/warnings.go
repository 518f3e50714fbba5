package moderationservice

import (
	"context"
	"fmt"

	moderationevents "github.com/aaravmaloo/blue-moon/app/events/moderation"
	guildservice "github.com/aaravmaloo/blue-moon/app/modules/guild/application"
	moderationdb "github.com/aaravmaloo/blue-moon/app/modules/moderation/infrastructure/repositories"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
)

// AddWarn stores a staff-issued warning and reports the member's new total.
func (s *ModerationService) AddWarn(ctx context.Context, payload *moderationevents.WarnRequestPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "AddWarn", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		cfg, err := s.guilds.Config(ctx, payload.GuildID)
		if err != nil {
			return results.OperationResult{}, err
		}

		if !guildservice.IsStaff(cfg, payload.Requester) {
			return results.FailureResult(&moderationevents.WarnFailedPayloadV1{
				GuildID:  payload.GuildID,
				TargetID: payload.TargetID,
				Reason:   guildservice.ErrNotStaff.Error(),
			}), nil
		}

		warning, count, err := s.repo.AddWarning(ctx, &moderationdb.Warning{
			GuildID:     payload.GuildID,
			UserID:      payload.TargetID,
			ModeratorID: payload.Requester.UserID,
			Reason:      payload.Reason,
		})
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("add warning: %w", err)
		}

		return results.SuccessResult(&moderationevents.WarnAddedPayloadV1{
			GuildID:   payload.GuildID,
			TargetID:  payload.TargetID,
			WarnID:    warning.ID,
			Reason:    payload.Reason,
			WarnCount: count,
		}), nil
	})
}

// ListWarns returns a member's warnings, oldest first. Staff only.
func (s *ModerationService) ListWarns(ctx context.Context, payload *moderationevents.WarnsListRequestPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "ListWarns", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		cfg, err := s.guilds.Config(ctx, payload.GuildID)
		if err != nil {
			return results.OperationResult{}, err
		}

		if !guildservice.IsStaff(cfg, payload.Requester) {
			return results.FailureResult(&moderationevents.WarnsListFailedPayloadV1{
				GuildID:  payload.GuildID,
				TargetID: payload.TargetID,
				Reason:   guildservice.ErrNotStaff.Error(),
			}), nil
		}

		warnings, err := s.repo.ListWarnings(ctx, payload.GuildID, payload.TargetID)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("list warnings: %w", err)
		}

		records := make([]moderationevents.WarnRecordV1, len(warnings))
		for i, w := range warnings {
			records[i] = moderationevents.WarnRecordV1{
				WarnID:      w.ID,
				ModeratorID: w.ModeratorID,
				Reason:      w.Reason,
				CreatedAt:   w.CreatedAt,
			}
		}

		return results.SuccessResult(&moderationevents.WarnsListedPayloadV1{
			GuildID:   payload.GuildID,
			ChannelID: payload.ChannelID,
			TargetID:  payload.TargetID,
			Warns:     records,
		}), nil
	})
}
