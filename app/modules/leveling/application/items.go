package levelingservice

import (
	"context"
	"fmt"
	"strings"

	levelingevents "github.com/aaravmaloo/blue-moon/app/events/leveling"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
)

// kindTitle maps an item kind onto its operation-name form.
func kindTitle(kind string) string {
	if kind == "todo" {
		return "Todo"
	}
	return "Note"
}

// AddItem appends a note or todo. Empty text is rejected.
func (s *LevelingService) AddItem(ctx context.Context, kind string, payload *levelingevents.ItemAddPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "Add"+kindTitle(kind), payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		text := strings.TrimSpace(payload.Text)
		if text == "" {
			return results.FailureResult(&levelingevents.ItemFailedPayloadV1{
				GuildID: payload.GuildID,
				UserID:  payload.UserID,
				Reason:  "text cannot be empty",
			}), nil
		}

		position, err := s.repo.AddItem(ctx, payload.GuildID, payload.UserID, kind, text)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("add %s: %w", kind, err)
		}

		return results.SuccessResult(&levelingevents.ItemAddedPayloadV1{
			GuildID:  payload.GuildID,
			UserID:   payload.UserID,
			Position: position,
			Text:     text,
		}), nil
	})
}

// RemoveItem deletes the item at a 1-based position and renumbers the rest.
func (s *LevelingService) RemoveItem(ctx context.Context, kind string, payload *levelingevents.ItemRemovePayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "Remove"+kindTitle(kind), payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		if payload.Position < 1 {
			return results.FailureResult(&levelingevents.ItemFailedPayloadV1{
				GuildID: payload.GuildID,
				UserID:  payload.UserID,
				Reason:  fmt.Sprintf("position %d out of range", payload.Position),
			}), nil
		}

		text, found, err := s.repo.RemoveItem(ctx, payload.GuildID, payload.UserID, kind, payload.Position)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("remove %s: %w", kind, err)
		}
		if !found {
			return results.FailureResult(&levelingevents.ItemFailedPayloadV1{
				GuildID: payload.GuildID,
				UserID:  payload.UserID,
				Reason:  fmt.Sprintf("position %d out of range", payload.Position),
			}), nil
		}

		return results.SuccessResult(&levelingevents.ItemRemovedPayloadV1{
			GuildID:  payload.GuildID,
			UserID:   payload.UserID,
			Position: payload.Position,
			Text:     text,
		}), nil
	})
}

// ListItems returns a user's notes or todos in position order.
func (s *LevelingService) ListItems(ctx context.Context, kind string, payload *levelingevents.ItemsListRequestPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "List"+kindTitle(kind)+"s", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		stored, err := s.repo.ListItems(ctx, payload.GuildID, payload.UserID, kind)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("list %ss: %w", kind, err)
		}

		items := make([]levelingevents.ItemV1, len(stored))
		for i, it := range stored {
			items[i] = levelingevents.ItemV1{
				Position:  it.Position,
				Text:      it.Text,
				CreatedAt: it.CreatedAt,
			}
		}

		return results.SuccessResult(&levelingevents.ItemsListedPayloadV1{
			GuildID:   payload.GuildID,
			ChannelID: payload.ChannelID,
			UserID:    payload.UserID,
			Items:     items,
		}), nil
	})
}
