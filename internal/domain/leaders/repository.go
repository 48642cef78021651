package leaders

import "context"

type Repository interface {
	ListLeaders(ctx context.Context) ([]WorshipLeader, error)
	CreateLeader(ctx context.Context, name string) (int64, error)
	UpdateLeader(ctx context.Context, leaderID int64, name string) error
	DeleteLeader(ctx context.Context, leaderID int64) error

	// CreatePreferredKey and its siblings dispatch on the record's
	// variant: tracked records target the catalogued-song table,
	// untracked records the free-text table.
	CreatePreferredKey(ctx context.Context, key PreferredKey) error
	UpdatePreferredKey(ctx context.Context, key PreferredKey) error
	DeletePreferredKey(ctx context.Context, key PreferredKey) error
	UpdatePreferredKeyByID(ctx context.Context, id int64, preferredKey string) error
	DeletePreferredKeyByID(ctx context.Context, id int64) error

	// ListPreferredKeys returns the union of tracked and untracked
	// records, filtered by leader display name when leaderName is
	// non-empty.
	ListPreferredKeys(ctx context.Context, leaderName string) ([]PreferredKeyView, error)
}
