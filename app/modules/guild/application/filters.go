package guildservice

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"

	guildevents "github.com/aaravmaloo/blue-moon/app/events/guild"
	"github.com/aaravmaloo/blue-moon/app/shared/results"
)

// SetBadWords replaces the guild's custom bad-word list. Words are
// lowercased and deduplicated; the static profanity list is unaffected.
func (s *GuildService) SetBadWords(ctx context.Context, payload *guildevents.BadWordsSetPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "SetBadWords", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		cfg, err := s.Config(ctx, payload.GuildID)
		if err != nil {
			return results.OperationResult{}, err
		}

		if !IsStaff(cfg, payload.Requester) {
			return results.FailureResult(&guildevents.BadWordsSetFailedPayloadV1{
				GuildID: payload.GuildID,
				Reason:  ErrNotStaff.Error(),
			}), nil
		}

		seen := make(map[string]bool, len(payload.Words))
		words := make([]string, 0, len(payload.Words))
		for _, w := range payload.Words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" || seen[w] {
				continue
			}
			seen[w] = true
			words = append(words, w)
		}

		if err := s.repo.UpdateFields(ctx, payload.GuildID, map[string]any{
			"custom_bad_words": words,
		}); err != nil {
			return results.OperationResult{}, fmt.Errorf("set bad words: %w", err)
		}

		return results.SuccessResult(&guildevents.BadWordsSetResultPayloadV1{
			GuildID: payload.GuildID,
			Count:   len(words),
		}), nil
	})
}

// AddRegexFilter appends a regex filter after validating the pattern.
// Filters keep their insertion order; that order is the pipeline's
// evaluation order.
func (s *GuildService) AddRegexFilter(ctx context.Context, payload *guildevents.RegexFilterPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "AddRegexFilter", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		cfg, err := s.Config(ctx, payload.GuildID)
		if err != nil {
			return results.OperationResult{}, err
		}

		if !IsStaff(cfg, payload.Requester) {
			return s.regexFailure(payload, ErrNotStaff.Error()), nil
		}

		if _, err := regexp.Compile(payload.Pattern); err != nil {
			return s.regexFailure(payload, fmt.Sprintf("%s: %v", ErrInvalidPattern, err)), nil
		}

		if slices.Contains(cfg.RegexFilters, payload.Pattern) {
			// Idempotent: adding a present pattern confirms it.
			return s.regexSuccess(payload), nil
		}

		filters := append(slices.Clone(cfg.RegexFilters), payload.Pattern)
		if err := s.repo.UpdateFields(ctx, payload.GuildID, map[string]any{
			"regex_filters": filters,
		}); err != nil {
			return results.OperationResult{}, fmt.Errorf("add regex filter: %w", err)
		}

		return s.regexSuccess(payload), nil
	})
}

// RemoveRegexFilter removes a stored regex filter by exact pattern.
func (s *GuildService) RemoveRegexFilter(ctx context.Context, payload *guildevents.RegexFilterPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "RemoveRegexFilter", payload.GuildID, func(ctx context.Context) (results.OperationResult, error) {
		cfg, err := s.Config(ctx, payload.GuildID)
		if err != nil {
			return results.OperationResult{}, err
		}

		if !IsStaff(cfg, payload.Requester) {
			return s.regexFailure(payload, ErrNotStaff.Error()), nil
		}

		idx := slices.Index(cfg.RegexFilters, payload.Pattern)
		if idx < 0 {
			return s.regexFailure(payload, ErrPatternNotFound.Error()), nil
		}

		filters := slices.Delete(slices.Clone(cfg.RegexFilters), idx, idx+1)
		if err := s.repo.UpdateFields(ctx, payload.GuildID, map[string]any{
			"regex_filters": filters,
		}); err != nil {
			return results.OperationResult{}, fmt.Errorf("remove regex filter: %w", err)
		}

		return s.regexSuccess(payload), nil
	})
}

func (s *GuildService) regexSuccess(payload *guildevents.RegexFilterPayloadV1) results.OperationResult {
	return results.SuccessResult(&guildevents.RegexFilterResultPayloadV1{
		GuildID: payload.GuildID,
		Pattern: payload.Pattern,
	})
}

func (s *GuildService) regexFailure(payload *guildevents.RegexFilterPayloadV1, reason string) results.OperationResult {
	return results.FailureResult(&guildevents.RegexFilterFailedPayloadV1{
		GuildID: payload.GuildID,
		Pattern: payload.Pattern,
		Reason:  reason,
	})
}
