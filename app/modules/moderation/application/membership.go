package moderationservice

import (
	"context"
	"time"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	moderationevents "github.com/aaravmaloo/blue-moon/app/events/moderation"
	"github.com/aaravmaloo/blue-moon/app/shared/attr"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

// JoinOutcome is the set of actions a member join triggered. Zero-valued
// fields mean the corresponding action does not apply. The handler layer
// maps it onto outbound events.
type JoinOutcome struct {
	GuildID sharedtypes.GuildID
	UserID  sharedtypes.DiscordID

	// TimeoutUntil, when non-zero, times the member out until their account
	// reaches the guild's minimum age. AltTimeout carries the audit event.
	TimeoutUntil time.Time
	AltTimeout   *moderationevents.AltAccountTimedOutPayloadV1

	// JoinBurst is set on the join that crosses the guild's burst threshold.
	JoinBurst *moderationevents.JoinBurstDetectedPayloadV1

	AutoroleID       sharedtypes.RoleID
	WelcomeChannelID sharedtypes.ChannelID
}

// LeaveOutcome is the action a departure triggered.
type LeaveOutcome struct {
	GuildID          sharedtypes.GuildID
	UserID           sharedtypes.DiscordID
	GoodbyeChannelID sharedtypes.ChannelID
}

// MemberJoined applies the join safety checks: anti-alt account age, the
// guild-wide join burst counter, autorole, and the welcome message.
func (s *ModerationService) MemberJoined(ctx context.Context, payload *gatewayevents.MemberJoinedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "MemberJoined", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		cfg, err := s.guilds.Config(ctx, payload.GuildID)
		if err != nil {
			return results.OperationResult{}, err
		}

		outcome := &JoinOutcome{
			GuildID:          payload.GuildID,
			UserID:           payload.Member.UserID,
			AutoroleID:       cfg.AutoroleID,
			WelcomeChannelID: cfg.WelcomeChannelID,
		}

		minAge := cfg.AntiAltMinAge()
		if minAge > 0 && !payload.Member.IsBot && !payload.Member.AccountCreatedAt.IsZero() {
			age := payload.JoinedAt.Sub(payload.Member.AccountCreatedAt)
			if age < minAge {
				outcome.TimeoutUntil = payload.JoinedAt.Add(minAge - age)
				outcome.AltTimeout = &moderationevents.AltAccountTimedOutPayloadV1{
					GuildID:    payload.GuildID,
					UserID:     payload.Member.UserID,
					AccountAge: age,
					MinAge:     minAge,
				}
				s.logger.InfoContext(ctx, "Young account timed out on join",
					attr.ExtractCorrelationID(ctx),
					attr.GuildID("guild_id", payload.GuildID),
					attr.UserID("user_id", payload.Member.UserID),
					attr.Duration("account_age", age),
				)
			}
		}

		if cfg.JoinBurstCount > 0 {
			key := string(payload.GuildID)
			tripped := s.joins.RecordAndCheck(key, payload.JoinedAt, joinBurstWindow, cfg.JoinBurstCount)
			// Alert only on the crossing join, not on every join during
			// the burst.
			if tripped && s.joins.Count(key, payload.JoinedAt, joinBurstWindow) == cfg.JoinBurstCount {
				outcome.JoinBurst = &moderationevents.JoinBurstDetectedPayloadV1{
					GuildID:       payload.GuildID,
					JoinsInWindow: cfg.JoinBurstCount,
					WindowSeconds: int(joinBurstWindow / time.Second),
				}
				s.logger.WarnContext(ctx, "Join burst detected",
					attr.ExtractCorrelationID(ctx),
					attr.GuildID("guild_id", payload.GuildID),
					attr.Int("joins_in_window", cfg.JoinBurstCount),
				)
			}
		}

		return results.SuccessResult(outcome), nil
	})
}

// MemberLeft produces a goodbye action when the guild has a goodbye channel
// configured, and nothing otherwise.
func (s *ModerationService) MemberLeft(ctx context.Context, payload *gatewayevents.MemberLeftPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "MemberLeft", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		cfg, err := s.guilds.Config(ctx, payload.GuildID)
		if err != nil {
			return results.OperationResult{}, err
		}

		if cfg.GoodbyeChannelID == "" {
			return results.OperationResult{}, nil
		}

		return results.SuccessResult(&LeaveOutcome{
			GuildID:          payload.GuildID,
			UserID:           payload.UserID,
			GoodbyeChannelID: cfg.GoodbyeChannelID,
		}), nil
	})
}
