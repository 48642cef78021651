package catalog

import "errors"

type Song struct {
	SongID int64  `json:"song_id"`
	Title  string `json:"title"`
}

type Artist struct {
	ArtistID int64  `json:"artist_id"`
	Name     string `json:"name"`
}

// SongWithArtist is one row of the songs-with-artists listing. ArtistName
// is nil for songs that have no link row (LEFT JOIN).
type SongWithArtist struct {
	SongID     int64   `json:"song_id"`
	Title      string  `json:"title"`
	ArtistName *string `json:"artist_name"`
}

var (
	ErrNotFound    = errors.New("not found")
	ErrArtistInUse = errors.New("artist is linked to one or more songs")
)
