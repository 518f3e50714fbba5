package guildservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	guildevents "github.com/aaravmaloo/blue-moon/app/events/guild"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
	guildtypes "github.com/aaravmaloo/blue-moon/app/shared/types/guild"
)

func TestGuildService_SetBadWords(t *testing.T) {
	repo := NewFakeGuildRepository()
	repo.GetConfigFunc = func(_ context.Context, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error) {
		return storedConfig(guildID), nil
	}
	s := newTestService(repo)

	got, err := s.SetBadWords(context.Background(), &guildevents.BadWordsSetPayloadV1{
		GuildID:   "g1",
		Requester: staffMember("u1"),
		Words:     []string{"Foo", "foo", "  bar ", ""},
	})
	require.NoError(t, err)
	require.NotNil(t, got.Success)

	success := got.Success.(*guildevents.BadWordsSetResultPayloadV1)
	assert.Equal(t, 2, success.Count)
	assert.Equal(t, []string{"foo", "bar"}, repo.LastUpdates["custom_bad_words"])
}

func TestGuildService_AddRegexFilter(t *testing.T) {
	tests := []struct {
		name        string
		existing    []string
		pattern     string
		wantStored  []string
		wantFailure string
	}{
		{
			name:       "appends in insertion order",
			existing:   []string{`\bfirst\b`},
			pattern:    `\bsecond\b`,
			wantStored: []string{`\bfirst\b`, `\bsecond\b`},
		},
		{
			name:        "rejects pattern that does not compile",
			pattern:     `(unclosed`,
			wantFailure: ErrInvalidPattern.Error(),
		},
		{
			name:     "adding present pattern is idempotent",
			existing: []string{`\bdup\b`},
			pattern:  `\bdup\b`,
			// No write expected.
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeGuildRepository()
			repo.GetConfigFunc = func(_ context.Context, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error) {
				cfg := storedConfig(guildID)
				cfg.RegexFilters = tt.existing
				return cfg, nil
			}
			s := newTestService(repo)

			got, err := s.AddRegexFilter(context.Background(), &guildevents.RegexFilterPayloadV1{
				GuildID:   "g1",
				Requester: staffMember("u1"),
				Pattern:   tt.pattern,
			})
			require.NoError(t, err)

			if tt.wantFailure != "" {
				require.NotNil(t, got.Failure)
				failure := got.Failure.(*guildevents.RegexFilterFailedPayloadV1)
				assert.Contains(t, failure.Reason, tt.wantFailure)
				return
			}

			require.NotNil(t, got.Success)
			if tt.wantStored != nil {
				assert.Equal(t, tt.wantStored, repo.LastUpdates["regex_filters"])
			} else {
				assert.Nil(t, repo.LastUpdates)
			}
		})
	}
}

func TestGuildService_RemoveRegexFilter(t *testing.T) {
	repo := NewFakeGuildRepository()
	repo.GetConfigFunc = func(_ context.Context, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error) {
		cfg := storedConfig(guildID)
		cfg.RegexFilters = []string{`a`, `b`, `c`}
		return cfg, nil
	}
	s := newTestService(repo)

	got, err := s.RemoveRegexFilter(context.Background(), &guildevents.RegexFilterPayloadV1{
		GuildID:   "g1",
		Requester: staffMember("u1"),
		Pattern:   `b`,
	})
	require.NoError(t, err)
	require.NotNil(t, got.Success)
	assert.Equal(t, []string{`a`, `c`}, repo.LastUpdates["regex_filters"])

	got, err = s.RemoveRegexFilter(context.Background(), &guildevents.RegexFilterPayloadV1{
		GuildID:   "g1",
		Requester: staffMember("u1"),
		Pattern:   `missing`,
	})
	require.NoError(t, err)
	require.NotNil(t, got.Failure)
	failure := got.Failure.(*guildevents.RegexFilterFailedPayloadV1)
	assert.Equal(t, ErrPatternNotFound.Error(), failure.Reason)
}
