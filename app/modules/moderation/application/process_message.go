package moderationservice

import (
	"context"

	gatewayevents "github.com/aaravmaloo/blue-moon/app/events/gateway"
	moderationevents "github.com/aaravmaloo/blue-moon/app/events/moderation"
	"github.com/aaravmaloo/blue-moon/app/modules/moderation/automod"
	"github.com/aaravmaloo/blue-moon/app/shared/attr"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
)

// ProcessMessage runs an inbound message through the rule pipeline. A
// blocked verdict becomes a MessageBlocked payload; a surviving message
// becomes a MessageAllowed payload so downstream modules (XP, ticket
// activity) only ever see clean traffic. Bot messages are ignored entirely:
// they earn no XP and are never rate limited.
func (s *ModerationService) ProcessMessage(ctx context.Context, payload *gatewayevents.MessageCreatedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "ProcessMessage", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		if payload.Author.IsBot {
			return results.OperationResult{}, nil
		}

		cfg, err := s.guilds.Config(ctx, payload.GuildID)
		if err != nil {
			return results.OperationResult{}, err
		}

		verdict := s.ruleset.Evaluate(cfg, automod.Message{
			GuildID: payload.GuildID,
			Author:  payload.Author,
			Content: payload.Content,
			SentAt:  payload.SentAt,
		})

		if verdict.Blocked {
			s.logger.InfoContext(ctx, "Message blocked by rule pipeline",
				attr.ExtractCorrelationID(ctx),
				attr.GuildID("guild_id", payload.GuildID),
				attr.UserID("author_id", payload.Author.UserID),
				attr.String("reason", verdict.Reason),
			)
			return results.SuccessResult(&moderationevents.MessageBlockedPayloadV1{
				GuildID:   payload.GuildID,
				ChannelID: payload.ChannelID,
				MessageID: payload.MessageID,
				AuthorID:  payload.Author.UserID,
				Reason:    verdict.Reason,
			}), nil
		}

		return results.SuccessResult(&moderationevents.MessageAllowedPayloadV1{
			GuildID:   payload.GuildID,
			ChannelID: payload.ChannelID,
			MessageID: payload.MessageID,
			Author:    payload.Author,
			SentAt:    payload.SentAt,
		}), nil
	})
}
