package services

import "context"

type Repository interface {
	CreateService(ctx context.Context, serviceDate string) (int64, error)
	UpdateServiceDate(ctx context.Context, serviceID int64, serviceDate string) error
	// DeleteService removes the service's set list and the service itself
	// in one transaction, children first.
	DeleteService(ctx context.Context, serviceID int64) error
	SetServiceLeader(ctx context.Context, serviceID, leaderID int64) error

	ListServiceSongs(ctx context.Context, serviceID int64) ([]ServiceSong, error)
	AddServiceSong(ctx context.Context, song ServiceSong) error
	// UpdateServiceSong matches by (service_id, song_id), replacing key,
	// order and leader.
	UpdateServiceSong(ctx context.Context, song ServiceSong) error
	DeleteServiceSong(ctx context.Context, serviceID, leaderID, songID int64) error
	// ReassignLeader moves every song of the service to the given leader.
	ReassignLeader(ctx context.Context, serviceID, leaderID int64) error

	// ListRecent returns the 10 most recent performances, service date
	// descending then set-list order, optionally filtered by leader
	// display name.
	ListRecent(ctx context.Context, leaderName string) ([]RecentSong, error)
	// ListMostPlayed returns the 10 most played titles by play count.
	ListMostPlayed(ctx context.Context, leaderName string) ([]MostPlayedSong, error)
	ListServicesWithSongs(ctx context.Context) ([]ServiceWithSong, error)
}
