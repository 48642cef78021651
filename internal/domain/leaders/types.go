package leaders

import "errors"

type WorshipLeader struct {
	LeaderID int64  `json:"leader_id"`
	Name     string `json:"name"`
}

// PreferredKey is the key a leader prefers for a song. A record is either
// tracked (SongID set, the song exists in the catalog) or untracked
// (SongTitle set, free text for songs not yet catalogued). ID is the
// surrogate key of the tracked table and is zero for untracked records.
type PreferredKey struct {
	ID        int64  `json:"id,omitempty"`
	LeaderID  int64  `json:"leader_id"`
	SongID    *int64 `json:"song_id,omitempty"`
	SongTitle string `json:"song_title,omitempty"`
	Key       string `json:"preferred_key"`
}

func (k PreferredKey) Tracked() bool {
	return k.SongID != nil
}

// PreferredKeyView is one row of the aggregate preferred-keys read, the
// union of tracked and untracked records. LeaderID, SongID and SongTitle
// are only populated by the per-leader variant of the query.
type PreferredKeyView struct {
	Title     string  `json:"title"`
	Key       string  `json:"preferred_key"`
	Leader    string  `json:"leader,omitempty"`
	LeaderID  *int64  `json:"leader_id,omitempty"`
	SongID    *int64  `json:"song_id,omitempty"`
	SongTitle *string `json:"song_title,omitempty"`
}

var (
	ErrNotFound     = errors.New("not found")
	ErrNameRequired = errors.New("name is required")
)
