package guildservice

import (
	"context"

	guilddb "github.com/aaravmaloo/blue-moon/app/modules/guild/infrastructure/repositories"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
	guildtypes "github.com/aaravmaloo/blue-moon/app/shared/types/guild"
)

// FakeGuildRepository provides a programmable stub for the
// guilddb.Repository interface.
type FakeGuildRepository struct {
	trace []string

	GetConfigFunc         func(ctx context.Context, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error)
	GetOrCreateConfigFunc func(ctx context.Context, defaults *guildtypes.GuildConfig) (*guildtypes.GuildConfig, error)
	UpdateFieldsFunc      func(ctx context.Context, guildID sharedtypes.GuildID, updates map[string]any) error

	// LastUpdates captures the most recent UpdateFields argument.
	LastUpdates map[string]any
}

func NewFakeGuildRepository() *FakeGuildRepository {
	return &FakeGuildRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeGuildRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeGuildRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeGuildRepository) GetConfig(ctx context.Context, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error) {
	f.record("GetConfig")
	if f.GetConfigFunc != nil {
		return f.GetConfigFunc(ctx, guildID)
	}
	return nil, nil
}

func (f *FakeGuildRepository) GetOrCreateConfig(ctx context.Context, defaults *guildtypes.GuildConfig) (*guildtypes.GuildConfig, error) {
	f.record("GetOrCreateConfig")
	if f.GetOrCreateConfigFunc != nil {
		return f.GetOrCreateConfigFunc(ctx, defaults)
	}
	return defaults, nil
}

func (f *FakeGuildRepository) UpdateFields(ctx context.Context, guildID sharedtypes.GuildID, updates map[string]any) error {
	f.record("UpdateFields")
	f.LastUpdates = updates
	if f.UpdateFieldsFunc != nil {
		return f.UpdateFieldsFunc(ctx, guildID, updates)
	}
	return nil
}

var _ guilddb.Repository = (*FakeGuildRepository)(nil)
