package services

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateService(ctx context.Context, serviceDate string) (int64, error) {
	return s.repo.CreateService(ctx, serviceDate)
}

func (s *Service) UpdateServiceDate(ctx context.Context, serviceID int64, serviceDate string) error {
	return s.repo.UpdateServiceDate(ctx, serviceID, serviceDate)
}

func (s *Service) DeleteService(ctx context.Context, serviceID int64) error {
	return s.repo.DeleteService(ctx, serviceID)
}

func (s *Service) SetServiceLeader(ctx context.Context, serviceID, leaderID int64) error {
	return s.repo.SetServiceLeader(ctx, serviceID, leaderID)
}

func (s *Service) ListServiceSongs(ctx context.Context, serviceID int64) ([]ServiceSong, error) {
	return s.repo.ListServiceSongs(ctx, serviceID)
}

func (s *Service) AddServiceSong(ctx context.Context, song ServiceSong) error {
	return s.repo.AddServiceSong(ctx, song)
}

func (s *Service) UpdateServiceSong(ctx context.Context, song ServiceSong) error {
	return s.repo.UpdateServiceSong(ctx, song)
}

func (s *Service) DeleteServiceSong(ctx context.Context, serviceID, leaderID, songID int64) error {
	return s.repo.DeleteServiceSong(ctx, serviceID, leaderID, songID)
}

func (s *Service) ReassignLeader(ctx context.Context, serviceID, leaderID int64) error {
	return s.repo.ReassignLeader(ctx, serviceID, leaderID)
}

func (s *Service) ListRecent(ctx context.Context, leaderName string) ([]RecentSong, error) {
	return s.repo.ListRecent(ctx, leaderName)
}

func (s *Service) ListMostPlayed(ctx context.Context, leaderName string) ([]MostPlayedSong, error) {
	return s.repo.ListMostPlayed(ctx, leaderName)
}

func (s *Service) ListServicesWithSongs(ctx context.Context) ([]ServiceWithSong, error) {
	return s.repo.ListServicesWithSongs(ctx)
}
