package catalog

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

func (s *Service) ListSongs(ctx context.Context) ([]Song, error) {
	return s.repo.ListSongs(ctx)
}

func (s *Service) ListSongsWithArtists(ctx context.Context) ([]SongWithArtist, error) {
	return s.repo.ListSongsWithArtists(ctx)
}

func (s *Service) CreateSong(ctx context.Context, title string, artistID int64) (int64, error) {
	return s.repo.CreateSong(ctx, strings.TrimSpace(title), artistID)
}

func (s *Service) UpdateSong(ctx context.Context, songID int64, title string, artistID int64) error {
	return s.repo.UpdateSong(ctx, songID, strings.TrimSpace(title), artistID)
}

func (s *Service) DeleteSong(ctx context.Context, songID int64) error {
	return s.repo.DeleteSong(ctx, songID)
}

func (s *Service) SongExists(ctx context.Context, title string, artistID int64) (bool, error) {
	return s.repo.SongExists(ctx, title, artistID)
}

func (s *Service) ListArtists(ctx context.Context) ([]Artist, error) {
	return s.repo.ListArtists(ctx)
}

func (s *Service) CreateArtist(ctx context.Context, name string) (int64, error) {
	return s.repo.CreateArtist(ctx, strings.TrimSpace(name))
}

func (s *Service) UpdateArtist(ctx context.Context, artistID int64, name string) error {
	return s.repo.UpdateArtist(ctx, artistID, strings.TrimSpace(name))
}

// DeleteArtist refuses to delete an artist that still has song links. The
// pre-check lives here rather than relying on the store constraint so the
// caller gets a conflict error instead of a driver error.
func (s *Service) DeleteArtist(ctx context.Context, artistID int64) error {
	count, err := s.repo.ArtistLinkCount(ctx, artistID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrArtistInUse
	}
	return s.repo.DeleteArtist(ctx, artistID)
}
