package services

import "errors"

// SundayService is a calendar-dated worship event. ServiceDate is a plain
// yyyy-mm-dd date with no time component. WorshipLeaderID is the leader
// presiding over the whole service, distinct from the per-song leader.
type SundayService struct {
	ServiceID       int64  `json:"service_id"`
	ServiceDate     string `json:"service_date"`
	WorshipLeaderID *int64 `json:"worship_leader_id,omitempty"`
}

// ServiceSong is one performed-song record within a service's set list.
type ServiceSong struct {
	ServiceSongID int64  `json:"service_song_id"`
	ServiceID     int64  `json:"service_id"`
	SongID        int64  `json:"song_id"`
	LeaderID      int64  `json:"leader_id"`
	KeyUsed       string `json:"key_used"`
	OrderNumber   int    `json:"order_number"`
	Title         string `json:"title"`
	LeaderName    string `json:"leader_name"`
}

type RecentSong struct {
	Title       string `json:"title"`
	ServiceDate string `json:"service_date"`
	KeyUsed     string `json:"key_used"`
	Leader      string `json:"leader,omitempty"`
}

type MostPlayedSong struct {
	Title       string `json:"title"`
	TimesPlayed int64  `json:"times_played"`
}

// ServiceWithSong is one row of the denormalized services-with-songs
// display join. Song columns are nil for services with an empty set list.
type ServiceWithSong struct {
	ServiceID            int64   `json:"service_id"`
	ServiceDate          string  `json:"service_date"`
	WorshipLeader        *string `json:"worship_leader"`
	SongTitle            *string `json:"song_title"`
	KeyUsed              *string `json:"key_used"`
	OrderNumber          *int    `json:"order_number"`
	ServiceWorshipLeader *string `json:"service_worship_leader"`
}

var ErrNotFound = errors.New("not found")
