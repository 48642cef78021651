package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cbmworship/songlibrary/internal/domain/services"
)

var _ services.Repository = (*ServicesRepository)(nil)

type ServicesRepository struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
}

func (r *ServicesRepository) queryer() queryer {
	if r.tx != nil {
		return r.tx
	}
	return r.pool
}

func (r *ServicesRepository) CreateService(ctx context.Context, serviceDate string) (int64, error) {
	row := r.queryer().QueryRow(ctx, `
INSERT INTO sunday_services (service_date) VALUES ($1::date) RETURNING service_id
`, serviceDate)

	var serviceID int64
	if err := row.Scan(&serviceID); err != nil {
		return 0, fmt.Errorf("insert service: %w", err)
	}
	return serviceID, nil
}

func (r *ServicesRepository) UpdateServiceDate(ctx context.Context, serviceID int64, serviceDate string) error {
	if _, err := r.queryer().Exec(ctx, `
UPDATE sunday_services SET service_date = $1::date WHERE service_id = $2
`, serviceDate, serviceID); err != nil {
		return fmt.Errorf("update service date: %w", err)
	}
	return nil
}

func (r *ServicesRepository) DeleteService(ctx context.Context, serviceID int64) error {
	return runInTx(ctx, r.pool, r.tx, func(q queryer) error {
		if _, err := q.Exec(ctx, `
DELETE FROM service_songs WHERE service_id = $1
`, serviceID); err != nil {
			return fmt.Errorf("delete service songs: %w", err)
		}

		if _, err := q.Exec(ctx, `
DELETE FROM sunday_services WHERE service_id = $1
`, serviceID); err != nil {
			return fmt.Errorf("delete service: %w", err)
		}
		return nil
	})
}

func (r *ServicesRepository) SetServiceLeader(ctx context.Context, serviceID, leaderID int64) error {
	if _, err := r.queryer().Exec(ctx, `
UPDATE sunday_services SET worship_leader_id = $1 WHERE service_id = $2
`, leaderID, serviceID); err != nil {
		return fmt.Errorf("set service leader: %w", err)
	}
	return nil
}

func (r *ServicesRepository) ListServiceSongs(ctx context.Context, serviceID int64) ([]services.ServiceSong, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT ss.service_song_id, ss.service_id, ss.song_id, ss.leader_id, ss.key_used, ss.order_number,
       s.title, l.name AS leader_name
  FROM service_songs ss
  JOIN songs s ON ss.song_id = s.song_id
  JOIN worship_leaders l ON ss.leader_id = l.leader_id
 WHERE ss.service_id = $1
 ORDER BY ss.order_number
`, serviceID)
	if err != nil {
		return nil, fmt.Errorf("list service songs: %w", err)
	}
	defer rows.Close()

	items := make([]services.ServiceSong, 0)
	for rows.Next() {
		var song services.ServiceSong
		if err := rows.Scan(
			&song.ServiceSongID,
			&song.ServiceID,
			&song.SongID,
			&song.LeaderID,
			&song.KeyUsed,
			&song.OrderNumber,
			&song.Title,
			&song.LeaderName,
		); err != nil {
			return nil, fmt.Errorf("scan service song: %w", err)
		}
		items = append(items, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate service songs: %w", err)
	}
	return items, nil
}

func (r *ServicesRepository) AddServiceSong(ctx context.Context, song services.ServiceSong) error {
	if _, err := r.queryer().Exec(ctx, `
INSERT INTO service_songs (service_id, leader_id, song_id, key_used, order_number)
VALUES ($1, $2, $3, $4, $5)
`, song.ServiceID, song.LeaderID, song.SongID, song.KeyUsed, song.OrderNumber); err != nil {
		return fmt.Errorf("insert service song: %w", err)
	}
	return nil
}

func (r *ServicesRepository) UpdateServiceSong(ctx context.Context, song services.ServiceSong) error {
	if _, err := r.queryer().Exec(ctx, `
UPDATE service_songs
   SET key_used = $1, order_number = $2, leader_id = $3
 WHERE service_id = $4 AND song_id = $5
`, song.KeyUsed, song.OrderNumber, song.LeaderID, song.ServiceID, song.SongID); err != nil {
		return fmt.Errorf("update service song: %w", err)
	}
	return nil
}

func (r *ServicesRepository) DeleteServiceSong(ctx context.Context, serviceID, leaderID, songID int64) error {
	if _, err := r.queryer().Exec(ctx, `
DELETE FROM service_songs
 WHERE service_id = $1 AND leader_id = $2 AND song_id = $3
`, serviceID, leaderID, songID); err != nil {
		return fmt.Errorf("delete service song: %w", err)
	}
	return nil
}

func (r *ServicesRepository) ReassignLeader(ctx context.Context, serviceID, leaderID int64) error {
	if _, err := r.queryer().Exec(ctx, `
UPDATE service_songs SET leader_id = $1 WHERE service_id = $2
`, leaderID, serviceID); err != nil {
		return fmt.Errorf("reassign service leader: %w", err)
	}
	return nil
}

func (r *ServicesRepository) ListRecent(ctx context.Context, leaderName string) ([]services.RecentSong, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT s.title, to_char(srv.service_date, 'YYYY-MM-DD') AS service_date, ss.key_used, wl.name AS leader
  FROM service_songs ss
  JOIN songs s ON ss.song_id = s.song_id
  JOIN sunday_services srv ON ss.service_id = srv.service_id
  JOIN worship_leaders wl ON ss.leader_id = wl.leader_id
 WHERE ($1 = '' OR wl.name = $1)
 ORDER BY srv.service_date DESC, ss.order_number
 LIMIT 10
`, leaderName)
	if err != nil {
		return nil, fmt.Errorf("list recent songs: %w", err)
	}
	defer rows.Close()

	items := make([]services.RecentSong, 0, 10)
	for rows.Next() {
		var song services.RecentSong
		if err := rows.Scan(&song.Title, &song.ServiceDate, &song.KeyUsed, &song.Leader); err != nil {
			return nil, fmt.Errorf("scan recent song: %w", err)
		}
		items = append(items, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent songs: %w", err)
	}
	return items, nil
}

func (r *ServicesRepository) ListMostPlayed(ctx context.Context, leaderName string) ([]services.MostPlayedSong, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT s.title, COUNT(*) AS times_played
  FROM service_songs ss
  JOIN songs s ON ss.song_id = s.song_id
  JOIN worship_leaders wl ON ss.leader_id = wl.leader_id
 WHERE ($1 = '' OR wl.name = $1)
 GROUP BY s.title
 ORDER BY times_played DESC
 LIMIT 10
`, leaderName)
	if err != nil {
		return nil, fmt.Errorf("list most played songs: %w", err)
	}
	defer rows.Close()

	items := make([]services.MostPlayedSong, 0, 10)
	for rows.Next() {
		var song services.MostPlayedSong
		if err := rows.Scan(&song.Title, &song.TimesPlayed); err != nil {
			return nil, fmt.Errorf("scan most played song: %w", err)
		}
		items = append(items, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate most played songs: %w", err)
	}
	return items, nil
}

func (r *ServicesRepository) ListServicesWithSongs(ctx context.Context) ([]services.ServiceWithSong, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT srv.service_id,
       to_char(srv.service_date, 'YYYY-MM-DD') AS service_date,
       wl.name AS worship_leader,
       s.title AS song_title,
       ss.key_used,
       ss.order_number,
       sl.name AS service_worship_leader
  FROM sunday_services srv
  LEFT JOIN service_songs ss ON srv.service_id = ss.service_id
  LEFT JOIN songs s ON ss.song_id = s.song_id
  LEFT JOIN worship_leaders wl ON ss.leader_id = wl.leader_id
  LEFT JOIN worship_leaders sl ON srv.worship_leader_id = sl.leader_id
 ORDER BY srv.service_date DESC, ss.order_number
`)
	if err != nil {
		return nil, fmt.Errorf("list services with songs: %w", err)
	}
	defer rows.Close()

	items := make([]services.ServiceWithSong, 0)
	for rows.Next() {
		var item services.ServiceWithSong
		if err := rows.Scan(
			&item.ServiceID,
			&item.ServiceDate,
			&item.WorshipLeader,
			&item.SongTitle,
			&item.KeyUsed,
			&item.OrderNumber,
			&item.ServiceWorshipLeader,
		); err != nil {
			return nil, fmt.Errorf("scan service with song: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services with songs: %w", err)
	}
	return items, nil
}
