package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cbmworship/songlibrary/internal/domain/catalog"
)

var _ catalog.Repository = (*CatalogRepository)(nil)

type CatalogRepository struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
}

func (r *CatalogRepository) queryer() queryer {
	if r.tx != nil {
		return r.tx
	}
	return r.pool
}

func (r *CatalogRepository) ListSongs(ctx context.Context) ([]catalog.Song, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT song_id, title
  FROM songs
 ORDER BY title
`)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	defer rows.Close()

	songs := make([]catalog.Song, 0)
	for rows.Next() {
		var song catalog.Song
		if err := rows.Scan(&song.SongID, &song.Title); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate songs: %w", err)
	}
	return songs, nil
}

func (r *CatalogRepository) ListSongsWithArtists(ctx context.Context) ([]catalog.SongWithArtist, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT s.song_id, s.title, a.name AS artist_name
  FROM songs s
  LEFT JOIN song_artists sa ON s.song_id = sa.song_id
  LEFT JOIN artists a ON sa.artist_id = a.artist_id
 ORDER BY s.title, artist_name
`)
	if err != nil {
		return nil, fmt.Errorf("list songs with artists: %w", err)
	}
	defer rows.Close()

	items := make([]catalog.SongWithArtist, 0)
	for rows.Next() {
		var item catalog.SongWithArtist
		if err := rows.Scan(&item.SongID, &item.Title, &item.ArtistName); err != nil {
			return nil, fmt.Errorf("scan song with artist: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate songs with artists: %w", err)
	}
	return items, nil
}

func (r *CatalogRepository) CreateSong(ctx context.Context, title string, artistID int64) (int64, error) {
	var songID int64
	err := runInTx(ctx, r.pool, r.tx, func(q queryer) error {
		row := q.QueryRow(ctx, `
INSERT INTO songs (title) VALUES ($1) RETURNING song_id
`, title)
		if err := row.Scan(&songID); err != nil {
			return fmt.Errorf("insert song: %w", err)
		}

		if _, err := q.Exec(ctx, `
INSERT INTO song_artists (song_id, artist_id) VALUES ($1, $2)
`, songID, artistID); err != nil {
			return fmt.Errorf("link song to artist: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return songID, nil
}

func (r *CatalogRepository) UpdateSong(ctx context.Context, songID int64, title string, artistID int64) error {
	return runInTx(ctx, r.pool, r.tx, func(q queryer) error {
		if _, err := q.Exec(ctx, `
UPDATE songs SET title = $1 WHERE song_id = $2
`, title, songID); err != nil {
			return fmt.Errorf("update song: %w", err)
		}

		if _, err := q.Exec(ctx, `
UPDATE song_artists SET artist_id = $1 WHERE song_id = $2
`, artistID, songID); err != nil {
			return fmt.Errorf("update song artist: %w", err)
		}
		return nil
	})
}

func (r *CatalogRepository) DeleteSong(ctx context.Context, songID int64) error {
	return runInTx(ctx, r.pool, r.tx, func(q queryer) error {
		if _, err := q.Exec(ctx, `
DELETE FROM song_artists WHERE song_id = $1
`, songID); err != nil {
			return fmt.Errorf("delete song artists: %w", err)
		}

		if _, err := q.Exec(ctx, `
DELETE FROM songs WHERE song_id = $1
`, songID); err != nil {
			return fmt.Errorf("delete song: %w", err)
		}
		return nil
	})
}

func (r *CatalogRepository) SongExists(ctx context.Context, title string, artistID int64) (bool, error) {
	row := r.queryer().QueryRow(ctx, `
SELECT EXISTS (
  SELECT 1
    FROM songs s
    JOIN song_artists sa ON s.song_id = sa.song_id
   WHERE s.title = $1 AND sa.artist_id = $2
)
`, title, artistID)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("check duplicate song: %w", err)
	}
	return exists, nil
}

func (r *CatalogRepository) ListArtists(ctx context.Context) ([]catalog.Artist, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT artist_id, name
  FROM artists
 ORDER BY name
`)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	artists := make([]catalog.Artist, 0)
	for rows.Next() {
		var artist catalog.Artist
		if err := rows.Scan(&artist.ArtistID, &artist.Name); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, artist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}
	return artists, nil
}

func (r *CatalogRepository) CreateArtist(ctx context.Context, name string) (int64, error) {
	row := r.queryer().QueryRow(ctx, `
INSERT INTO artists (name) VALUES ($1) RETURNING artist_id
`, name)

	var artistID int64
	if err := row.Scan(&artistID); err != nil {
		return 0, fmt.Errorf("insert artist: %w", err)
	}
	return artistID, nil
}

func (r *CatalogRepository) UpdateArtist(ctx context.Context, artistID int64, name string) error {
	if _, err := r.queryer().Exec(ctx, `
UPDATE artists SET name = $1 WHERE artist_id = $2
`, name, artistID); err != nil {
		return fmt.Errorf("update artist: %w", err)
	}
	return nil
}

func (r *CatalogRepository) DeleteArtist(ctx context.Context, artistID int64) error {
	if _, err := r.queryer().Exec(ctx, `
DELETE FROM artists WHERE artist_id = $1
`, artistID); err != nil {
		return fmt.Errorf("delete artist: %w", err)
	}
	return nil
}

func (r *CatalogRepository) ArtistLinkCount(ctx context.Context, artistID int64) (int64, error) {
	row := r.queryer().QueryRow(ctx, `
SELECT COUNT(*) FROM song_artists WHERE artist_id = $1
`, artistID)

	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count artist links: %w", err)
	}
	return count, nil
}
