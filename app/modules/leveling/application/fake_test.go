package levelingservice

import (
	"context"
	"time"

	levelingdb "github.com/aaravmaloo/blue-moon/app/modules/leveling/infrastructure/repositories"
	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
	guildtypes "github.com/aaravmaloo/blue-moon/app/shared/types/guild"
)

// FakeLevelingRepository provides an in-memory stub for the
// levelingdb.Repository interface.
type FakeLevelingRepository struct {
	States     map[string]*levelingdb.UserState
	Items      map[string][]levelingdb.UserItem
	LevelRoles map[int]sharedtypes.RoleID

	AddXPErr error
	QueryErr error
}

func NewFakeLevelingRepository() *FakeLevelingRepository {
	return &FakeLevelingRepository{
		States:     map[string]*levelingdb.UserState{},
		Items:      map[string][]levelingdb.UserItem{},
		LevelRoles: map[int]sharedtypes.RoleID{},
	}
}

func stateKey(guildID sharedtypes.GuildID, userID sharedtypes.DiscordID) string {
	return string(guildID) + ":" + string(userID)
}

func (f *FakeLevelingRepository) state(guildID sharedtypes.GuildID, userID sharedtypes.DiscordID) *levelingdb.UserState {
	key := stateKey(guildID, userID)
	st, ok := f.States[key]
	if !ok {
		st = &levelingdb.UserState{GuildID: guildID, UserID: userID}
		f.States[key] = st
	}
	return st
}

func (f *FakeLevelingRepository) AddXP(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, amount int64) (*levelingdb.UserState, error) {
	if f.AddXPErr != nil {
		return nil, f.AddXPErr
	}
	st := f.state(guildID, userID)
	st.XP += amount
	out := *st
	return &out, nil
}

func (f *FakeLevelingRepository) AddVoice(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, seconds, xp int64) (*levelingdb.UserState, error) {
	if f.AddXPErr != nil {
		return nil, f.AddXPErr
	}
	st := f.state(guildID, userID)
	st.XP += xp
	st.VoiceSeconds += seconds
	out := *st
	return &out, nil
}

func (f *FakeLevelingRepository) SetLevel(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, level int) error {
	f.state(guildID, userID).Level = level
	return nil
}

func (f *FakeLevelingRepository) GetUserState(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID) (*levelingdb.UserState, error) {
	if f.QueryErr != nil {
		return nil, f.QueryErr
	}
	st, ok := f.States[stateKey(guildID, userID)]
	if !ok {
		return nil, nil
	}
	out := *st
	return &out, nil
}

func (f *FakeLevelingRepository) Leaderboard(ctx context.Context, guildID sharedtypes.GuildID, limit int) ([]levelingdb.UserState, error) {
	if f.QueryErr != nil {
		return nil, f.QueryErr
	}
	var out []levelingdb.UserState
	for _, st := range f.States {
		if st.GuildID == guildID {
			out = append(out, *st)
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].XP > out[i].XP {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *FakeLevelingRepository) CountHigher(ctx context.Context, guildID sharedtypes.GuildID, xp int64) (int, error) {
	count := 0
	for _, st := range f.States {
		if st.GuildID == guildID && st.XP > xp {
			count++
		}
	}
	return count, nil
}

func (f *FakeLevelingRepository) AddItem(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, kind, text string) (int, error) {
	if f.QueryErr != nil {
		return 0, f.QueryErr
	}
	key := stateKey(guildID, userID) + ":" + kind
	position := len(f.Items[key]) + 1
	f.Items[key] = append(f.Items[key], levelingdb.UserItem{
		GuildID:   guildID,
		UserID:    userID,
		Kind:      kind,
		Position:  position,
		Text:      text,
		CreatedAt: time.Now(),
	})
	return position, nil
}

func (f *FakeLevelingRepository) RemoveItem(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, kind string, position int) (string, bool, error) {
	if f.QueryErr != nil {
		return "", false, f.QueryErr
	}
	key := stateKey(guildID, userID) + ":" + kind
	items := f.Items[key]
	if position < 1 || position > len(items) {
		return "", false, nil
	}
	removed := items[position-1]
	items = append(items[:position-1], items[position:]...)
	for i := range items {
		items[i].Position = i + 1
	}
	f.Items[key] = items
	return removed.Text, true, nil
}

func (f *FakeLevelingRepository) ListItems(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.DiscordID, kind string) ([]levelingdb.UserItem, error) {
	if f.QueryErr != nil {
		return nil, f.QueryErr
	}
	return f.Items[stateKey(guildID, userID)+":"+kind], nil
}

func (f *FakeLevelingRepository) GetLevelRole(ctx context.Context, guildID sharedtypes.GuildID, level int) (sharedtypes.RoleID, error) {
	return f.LevelRoles[level], nil
}

var _ levelingdb.Repository = (*FakeLevelingRepository)(nil)

// fakeConfigProvider serves a fixed config for any guild.
type fakeConfigProvider struct {
	cfg *guildtypes.GuildConfig
	err error
}

func (f *fakeConfigProvider) Config(ctx context.Context, guildID sharedtypes.GuildID) (*guildtypes.GuildConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.cfg != nil {
		return f.cfg, nil
	}
	return &guildtypes.GuildConfig{
		GuildID:       guildID,
		XPMessageRate: 1.0,
		XPVoiceRate:   1.0,
	}, nil
}
