package catalog

import "context"

type Repository interface {
	ListSongs(ctx context.Context) ([]Song, error)
	ListSongsWithArtists(ctx context.Context) ([]SongWithArtist, error)
	// CreateSong inserts the song and its artist link in one transaction
	// and returns the generated song id.
	CreateSong(ctx context.Context, title string, artistID int64) (int64, error)
	// UpdateSong updates the title and replaces the artist link in one
	// transaction.
	UpdateSong(ctx context.Context, songID int64, title string, artistID int64) error
	// DeleteSong removes the artist links and the song in one transaction.
	DeleteSong(ctx context.Context, songID int64) error
	SongExists(ctx context.Context, title string, artistID int64) (bool, error)

	ListArtists(ctx context.Context) ([]Artist, error)
	CreateArtist(ctx context.Context, name string) (int64, error)
	UpdateArtist(ctx context.Context, artistID int64, name string) error
	DeleteArtist(ctx context.Context, artistID int64) error
	ArtistLinkCount(ctx context.Context, artistID int64) (int64, error)
}
