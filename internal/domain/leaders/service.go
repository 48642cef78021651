package leaders

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListLeaders(ctx context.Context) ([]WorshipLeader, error) {
	return s.repo.ListLeaders(ctx)
}

// CreateLeader trims the name and rejects blank names, returning the
// stored (trimmed) name alongside the generated id.
func (s *Service) CreateLeader(ctx context.Context, name string) (*WorshipLeader, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrNameRequired
	}
	id, err := s.repo.CreateLeader(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	return &WorshipLeader{LeaderID: id, Name: trimmed}, nil
}

func (s *Service) UpdateLeader(ctx context.Context, leaderID int64, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameRequired
	}
	return s.repo.UpdateLeader(ctx, leaderID, trimmed)
}

func (s *Service) DeleteLeader(ctx context.Context, leaderID int64) error {
	return s.repo.DeleteLeader(ctx, leaderID)
}

func (s *Service) CreatePreferredKey(ctx context.Context, key PreferredKey) error {
	return s.repo.CreatePreferredKey(ctx, key)
}

func (s *Service) UpdatePreferredKey(ctx context.Context, key PreferredKey) error {
	return s.repo.UpdatePreferredKey(ctx, key)
}

func (s *Service) DeletePreferredKey(ctx context.Context, key PreferredKey) error {
	return s.repo.DeletePreferredKey(ctx, key)
}

func (s *Service) UpdatePreferredKeyByID(ctx context.Context, id int64, preferredKey string) error {
	return s.repo.UpdatePreferredKeyByID(ctx, id, preferredKey)
}

func (s *Service) DeletePreferredKeyByID(ctx context.Context, id int64) error {
	return s.repo.DeletePreferredKeyByID(ctx, id)
}

func (s *Service) ListPreferredKeys(ctx context.Context, leaderName string) ([]PreferredKeyView, error) {
	return s.repo.ListPreferredKeys(ctx, leaderName)
}
