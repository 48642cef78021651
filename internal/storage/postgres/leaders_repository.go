package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cbmworship/songlibrary/internal/domain/leaders"
)

var _ leaders.Repository = (*LeadersRepository)(nil)

type LeadersRepository struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
}

func (r *LeadersRepository) queryer() queryer {
	if r.tx != nil {
		return r.tx
	}
	return r.pool
}

func (r *LeadersRepository) ListLeaders(ctx context.Context) ([]leaders.WorshipLeader, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT leader_id, name
  FROM worship_leaders
 ORDER BY name
`)
	if err != nil {
		return nil, fmt.Errorf("list leaders: %w", err)
	}
	defer rows.Close()

	items := make([]leaders.WorshipLeader, 0)
	for rows.Next() {
		var leader leaders.WorshipLeader
		if err := rows.Scan(&leader.LeaderID, &leader.Name); err != nil {
			return nil, fmt.Errorf("scan leader: %w", err)
		}
		items = append(items, leader)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaders: %w", err)
	}
	return items, nil
}

func (r *LeadersRepository) CreateLeader(ctx context.Context, name string) (int64, error) {
	row := r.queryer().QueryRow(ctx, `
INSERT INTO worship_leaders (name) VALUES ($1) RETURNING leader_id
`, name)

	var leaderID int64
	if err := row.Scan(&leaderID); err != nil {
		return 0, fmt.Errorf("insert leader: %w", err)
	}
	return leaderID, nil
}

func (r *LeadersRepository) UpdateLeader(ctx context.Context, leaderID int64, name string) error {
	if _, err := r.queryer().Exec(ctx, `
UPDATE worship_leaders SET name = $1 WHERE leader_id = $2
`, name, leaderID); err != nil {
		return fmt.Errorf("update leader: %w", err)
	}
	return nil
}

func (r *LeadersRepository) DeleteLeader(ctx context.Context, leaderID int64) error {
	if _, err := r.queryer().Exec(ctx, `
DELETE FROM worship_leaders WHERE leader_id = $1
`, leaderID); err != nil {
		return fmt.Errorf("delete leader: %w", err)
	}
	return nil
}

func (r *LeadersRepository) CreatePreferredKey(ctx context.Context, key leaders.PreferredKey) error {
	if key.Tracked() {
		if _, err := r.queryer().Exec(ctx, `
INSERT INTO leader_preferred_keys (leader_id, song_id, preferred_key)
VALUES ($1, $2, $3)
`, key.LeaderID, *key.SongID, key.Key); err != nil {
			return fmt.Errorf("insert preferred key: %w", err)
		}
		return nil
	}

	if _, err := r.queryer().Exec(ctx, `
INSERT INTO leader_notrack_preferred_keys (leader_id, song_title, preferred_key)
VALUES ($1, $2, $3)
`, key.LeaderID, key.SongTitle, key.Key); err != nil {
		return fmt.Errorf("insert untracked preferred key: %w", err)
	}
	return nil
}

func (r *LeadersRepository) UpdatePreferredKey(ctx context.Context, key leaders.PreferredKey) error {
	if key.Tracked() {
		if _, err := r.queryer().Exec(ctx, `
UPDATE leader_preferred_keys
   SET preferred_key = $1
 WHERE leader_id = $2 AND song_id = $3
`, key.Key, key.LeaderID, *key.SongID); err != nil {
			return fmt.Errorf("update preferred key: %w", err)
		}
		return nil
	}

	if _, err := r.queryer().Exec(ctx, `
UPDATE leader_notrack_preferred_keys
   SET preferred_key = $1
 WHERE leader_id = $2 AND song_title = $3
`, key.Key, key.LeaderID, key.SongTitle); err != nil {
		return fmt.Errorf("update untracked preferred key: %w", err)
	}
	return nil
}

func (r *LeadersRepository) DeletePreferredKey(ctx context.Context, key leaders.PreferredKey) error {
	if key.Tracked() {
		if _, err := r.queryer().Exec(ctx, `
DELETE FROM leader_preferred_keys
 WHERE leader_id = $1 AND song_id = $2
`, key.LeaderID, *key.SongID); err != nil {
			return fmt.Errorf("delete preferred key: %w", err)
		}
		return nil
	}

	if _, err := r.queryer().Exec(ctx, `
DELETE FROM leader_notrack_preferred_keys
 WHERE leader_id = $1 AND song_title = $2
`, key.LeaderID, key.SongTitle); err != nil {
		return fmt.Errorf("delete untracked preferred key: %w", err)
	}
	return nil
}

func (r *LeadersRepository) UpdatePreferredKeyByID(ctx context.Context, id int64, preferredKey string) error {
	if _, err := r.queryer().Exec(ctx, `
UPDATE leader_preferred_keys SET preferred_key = $1 WHERE id = $2
`, preferredKey, id); err != nil {
		return fmt.Errorf("update preferred key by id: %w", err)
	}
	return nil
}

func (r *LeadersRepository) DeletePreferredKeyByID(ctx context.Context, id int64) error {
	if _, err := r.queryer().Exec(ctx, `
DELETE FROM leader_preferred_keys WHERE id = $1
`, id); err != nil {
		return fmt.Errorf("delete preferred key by id: %w", err)
	}
	return nil
}

func (r *LeadersRepository) ListPreferredKeys(ctx context.Context, leaderName string) ([]leaders.PreferredKeyView, error) {
	if leaderName == "" {
		return r.listAllPreferredKeys(ctx)
	}
	return r.listLeaderPreferredKeys(ctx, leaderName)
}

func (r *LeadersRepository) listAllPreferredKeys(ctx context.Context) ([]leaders.PreferredKeyView, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT s.title, lpk.preferred_key, wl.name AS leader
  FROM leader_preferred_keys lpk
  JOIN songs s ON lpk.song_id = s.song_id
  JOIN worship_leaders wl ON lpk.leader_id = wl.leader_id

 UNION

SELECT lnt.song_title AS title, lnt.preferred_key, wl.name AS leader
  FROM leader_notrack_preferred_keys lnt
  JOIN worship_leaders wl ON lnt.leader_id = wl.leader_id

 ORDER BY leader, title
`)
	if err != nil {
		return nil, fmt.Errorf("list preferred keys: %w", err)
	}
	defer rows.Close()

	items := make([]leaders.PreferredKeyView, 0)
	for rows.Next() {
		var view leaders.PreferredKeyView
		if err := rows.Scan(&view.Title, &view.Key, &view.Leader); err != nil {
			return nil, fmt.Errorf("scan preferred key: %w", err)
		}
		items = append(items, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate preferred keys: %w", err)
	}
	return items, nil
}

func (r *LeadersRepository) listLeaderPreferredKeys(ctx context.Context, leaderName string) ([]leaders.PreferredKeyView, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT s.title, lpk.preferred_key, lpk.leader_id, lpk.song_id, NULL::varchar AS song_title
  FROM leader_preferred_keys lpk
  JOIN songs s ON lpk.song_id = s.song_id
  JOIN worship_leaders wl ON lpk.leader_id = wl.leader_id
 WHERE wl.name = $1

 UNION

SELECT lnt.song_title AS title, lnt.preferred_key, lnt.leader_id, NULL::int AS song_id, lnt.song_title
  FROM leader_notrack_preferred_keys lnt
  JOIN worship_leaders wl ON lnt.leader_id = wl.leader_id
 WHERE wl.name = $1

 ORDER BY title
`, leaderName)
	if err != nil {
		return nil, fmt.Errorf("list preferred keys by leader: %w", err)
	}
	defer rows.Close()

	items := make([]leaders.PreferredKeyView, 0)
	for rows.Next() {
		var view leaders.PreferredKeyView
		var leaderID int64
		if err := rows.Scan(&view.Title, &view.Key, &leaderID, &view.SongID, &view.SongTitle); err != nil {
			return nil, fmt.Errorf("scan preferred key: %w", err)
		}
		view.LeaderID = &leaderID
		items = append(items, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate preferred keys: %w", err)
	}
	return items, nil
}
