// Package levelingevents defines topics and payloads for the leveling
// module: XP awards, level changes, leaderboard queries, and the user
// notes/todos operations that live on the user state.
package levelingevents

import (
	"time"

	sharedtypes "github.com/aaravmaloo/blue-moon/app/shared/types"
)

const (
	XPAwardedV1    = "leveling.xp.awarded.v1"
	LevelChangedV1 = "leveling.level.changed.v1"

	LeaderboardRequestedV1 = "leveling.leaderboard.requested.v1"
	LeaderboardRetrievedV1 = "leveling.leaderboard.retrieved.v1"
	LeaderboardFailedV1    = "leveling.leaderboard.failed.v1"

	RankRequestedV1 = "leveling.rank.requested.v1"
	RankRetrievedV1 = "leveling.rank.retrieved.v1"
	RankFailedV1    = "leveling.rank.failed.v1"

	NoteAddRequestedV1    = "leveling.note.add.requested.v1"
	NoteAddedV1           = "leveling.note.added.v1"
	NoteAddFailedV1       = "leveling.note.add.failed.v1"
	NoteRemoveRequestedV1 = "leveling.note.remove.requested.v1"
	NoteRemovedV1         = "leveling.note.removed.v1"
	NoteRemoveFailedV1    = "leveling.note.remove.failed.v1"
	NotesListRequestedV1  = "leveling.notes.list.requested.v1"
	NotesListedV1         = "leveling.notes.listed.v1"
	NotesListFailedV1     = "leveling.notes.list.failed.v1"

	TodoAddRequestedV1    = "leveling.todo.add.requested.v1"
	TodoAddedV1           = "leveling.todo.added.v1"
	TodoAddFailedV1       = "leveling.todo.add.failed.v1"
	TodoRemoveRequestedV1 = "leveling.todo.remove.requested.v1"
	TodoRemovedV1         = "leveling.todo.removed.v1"
	TodoRemoveFailedV1    = "leveling.todo.remove.failed.v1"
	TodosListRequestedV1  = "leveling.todos.list.requested.v1"
	TodosListedV1         = "leveling.todos.listed.v1"
	TodosListFailedV1     = "leveling.todos.list.failed.v1"
)

// XPAwardedPayloadV1 records XP granted from a message or a flushed voice
// session. Source is "message" or "voice".
type XPAwardedPayloadV1 struct {
	GuildID sharedtypes.GuildID   `json:"guild_id"`
	UserID  sharedtypes.DiscordID `json:"user_id"`
	Amount  int64                 `json:"amount"`
	Source  string                `json:"source"`
	TotalXP int64                 `json:"total_xp"`
}

// LevelChangedPayloadV1 is published only on level increase; a single event
// is published even when one award crosses several thresholds.
type LevelChangedPayloadV1 struct {
	GuildID  sharedtypes.GuildID   `json:"guild_id"`
	UserID   sharedtypes.DiscordID `json:"user_id"`
	OldLevel int                   `json:"old_level"`
	NewLevel int                   `json:"new_level"`
	TotalXP  int64                 `json:"total_xp"`
}

// LeaderboardRequestPayloadV1 asks for the top Limit members by XP.
type LeaderboardRequestPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	Limit     int                   `json:"limit"`
}

// LeaderboardEntryV1 is one ranked member.
type LeaderboardEntryV1 struct {
	Rank   int                   `json:"rank"`
	UserID sharedtypes.DiscordID `json:"user_id"`
	XP     int64                 `json:"xp"`
	Level  int                   `json:"level"`
}

// LeaderboardRetrievedPayloadV1 returns the ranked entries.
type LeaderboardRetrievedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	Entries   []LeaderboardEntryV1  `json:"entries"`
}

// LeaderboardFailedPayloadV1 reports a failed leaderboard query.
type LeaderboardFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}

// RankRequestPayloadV1 asks for one member's XP standing.
type RankRequestPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	UserID    sharedtypes.DiscordID `json:"user_id"`
}

// RankRetrievedPayloadV1 returns one member's XP standing, including the XP
// still needed for the next level.
type RankRetrievedPayloadV1 struct {
	GuildID      sharedtypes.GuildID   `json:"guild_id"`
	ChannelID    sharedtypes.ChannelID `json:"channel_id"`
	UserID       sharedtypes.DiscordID `json:"user_id"`
	XP           int64                 `json:"xp"`
	Level        int                   `json:"level"`
	VoiceSeconds int64                 `json:"voice_seconds"`
	NextLevelXP  int64                 `json:"next_level_xp"`
}

// RankFailedPayloadV1 reports a failed rank query.
type RankFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID   `json:"guild_id"`
	UserID  sharedtypes.DiscordID `json:"user_id"`
	Reason  string                `json:"reason"`
}

// ItemAddPayloadV1 appends a note or todo for a user.
type ItemAddPayloadV1 struct {
	GuildID sharedtypes.GuildID   `json:"guild_id"`
	UserID  sharedtypes.DiscordID `json:"user_id"`
	Text    string                `json:"text"`
}

// ItemAddedPayloadV1 confirms the stored item and its position.
type ItemAddedPayloadV1 struct {
	GuildID  sharedtypes.GuildID   `json:"guild_id"`
	UserID   sharedtypes.DiscordID `json:"user_id"`
	Position int                   `json:"position"`
	Text     string                `json:"text"`
}

// ItemRemovePayloadV1 removes the item at a 1-based position.
type ItemRemovePayloadV1 struct {
	GuildID  sharedtypes.GuildID   `json:"guild_id"`
	UserID   sharedtypes.DiscordID `json:"user_id"`
	Position int                   `json:"position"`
}

// ItemRemovedPayloadV1 confirms the removal.
type ItemRemovedPayloadV1 struct {
	GuildID  sharedtypes.GuildID   `json:"guild_id"`
	UserID   sharedtypes.DiscordID `json:"user_id"`
	Position int                   `json:"position"`
	Text     string                `json:"text"`
}

// ItemFailedPayloadV1 reports a rejected note/todo operation (out-of-range
// position, empty text).
type ItemFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID   `json:"guild_id"`
	UserID  sharedtypes.DiscordID `json:"user_id"`
	Reason  string                `json:"reason"`
}

// ItemsListRequestPayloadV1 asks for a user's notes or todos.
type ItemsListRequestPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	UserID    sharedtypes.DiscordID `json:"user_id"`
}

// ItemV1 is one stored note or todo.
type ItemV1 struct {
	Position  int       `json:"position"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemsListedPayloadV1 returns a user's items in position order.
type ItemsListedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	UserID    sharedtypes.DiscordID `json:"user_id"`
	Items     []ItemV1              `json:"items"`
}
