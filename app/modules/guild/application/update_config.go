package guildservice

import (
	"context"
	"fmt"

	guildevents "github.com/aaravmaloo/blue-moon/app/events/guild"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
	"github.com/aaravmaloo/blue-moon/config"
)

// UpdateConfig applies a staff-gated partial settings update. Present
// fields are clamped to their legal ranges; absent fields are untouched.
func (s *GuildService) UpdateConfig(ctx context.Context, payload *guildevents.ConfigUpdatePayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "UpdateGuildConfig", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		cfg, err := s.Config(ctx, payload.GuildID)
		if err != nil {
			return results.OperationResult{}, err
		}

		if !IsStaff(cfg, payload.Requester) {
			return results.FailureResult(&guildevents.ConfigUpdateFailedPayloadV1{
				GuildID: payload.GuildID,
				Reason:  ErrNotStaff.Error(),
			}), nil
		}

		updates := map[string]any{}
		var fields []string
		record := func(column string, value any) {
			updates[column] = value
			fields = append(fields, column)
		}

		if payload.LogChannelID != nil {
			record("log_channel_id", string(*payload.LogChannelID))
		}
		if payload.WelcomeChannelID != nil {
			record("welcome_channel_id", string(*payload.WelcomeChannelID))
		}
		if payload.GoodbyeChannelID != nil {
			record("goodbye_channel_id", string(*payload.GoodbyeChannelID))
		}
		if payload.StaffRoleID != nil {
			record("staff_role_id", string(*payload.StaffRoleID))
		}
		if payload.AutoroleID != nil {
			record("autorole_id", string(*payload.AutoroleID))
		}
		if payload.ProfanityFilterEnabled != nil {
			record("profanity_filter_enabled", *payload.ProfanityFilterEnabled)
		}
		if payload.LinkFilterEnabled != nil {
			record("link_filter_enabled", *payload.LinkFilterEnabled)
		}
		if payload.CapsRatioThreshold != nil {
			record("caps_ratio_threshold", config.ClampRatio(*payload.CapsRatioThreshold))
		}
		if payload.SpamMessageCount != nil {
			record("spam_message_count", config.ClampCount(*payload.SpamMessageCount))
		}
		if payload.SpamWindowSeconds != nil {
			record("spam_window_seconds", config.ClampWindowSeconds(*payload.SpamWindowSeconds))
		}
		if payload.AntiAltMinAgeHours != nil {
			v := *payload.AntiAltMinAgeHours
			if v < 0 {
				v = 0
			}
			record("anti_alt_min_age_hours", v)
		}
		if payload.JoinBurstCount != nil {
			record("join_burst_count", config.ClampCount(*payload.JoinBurstCount))
		}
		if payload.TicketCategoryID != nil {
			record("ticket_category_id", string(*payload.TicketCategoryID))
		}
		if payload.TranscriptChannelID != nil {
			record("transcript_channel_id", string(*payload.TranscriptChannelID))
		}
		if payload.TicketSLAMinutes != nil {
			record("ticket_sla_minutes", config.ClampMinutes(*payload.TicketSLAMinutes))
		}
		if payload.XPMessageRate != nil {
			record("xp_message_rate", config.ClampXPRate(*payload.XPMessageRate))
		}
		if payload.XPVoiceRate != nil {
			record("xp_voice_rate", config.ClampXPRate(*payload.XPVoiceRate))
		}

		if len(updates) > 0 {
			if err := s.repo.UpdateFields(ctx, payload.GuildID, updates); err != nil {
				return results.OperationResult{}, fmt.Errorf("update guild config: %w", err)
			}
		}

		return results.SuccessResult(&guildevents.ConfigUpdatedPayloadV1{
			GuildID:       payload.GuildID,
			UpdatedFields: fields,
		}), nil
	})
}
