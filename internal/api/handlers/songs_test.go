package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cbmworship/songlibrary/internal/domain/catalog"
)

type stubCatalogRepo struct {
	listSongsFn       func() ([]catalog.Song, error)
	listWithArtistsFn func() ([]catalog.SongWithArtist, error)
	createSongFn      func(title string, artistID int64) (int64, error)
	updateSongFn      func(songID int64, title string, artistID int64) error
	deleteSongFn      func(songID int64) error
	songExistsFn      func(title string, artistID int64) (bool, error)
	listArtistsFn     func() ([]catalog.Artist, error)
	createArtistFn    func(name string) (int64, error)
	updateArtistFn    func(artistID int64, name string) error
	deleteArtistFn    func(artistID int64) error
	artistLinkCountFn func(artistID int64) (int64, error)
}

func (s stubCatalogRepo) ListSongs(_ context.Context) ([]catalog.Song, error) {
	if s.listSongsFn == nil {
		return nil, errors.New("not implemented")
	}
	return s.listSongsFn()
}

func (s stubCatalogRepo) ListSongsWithArtists(_ context.Context) ([]catalog.SongWithArtist, error) {
	if s.listWithArtistsFn == nil {
		return nil, errors.New("not implemented")
	}
	return s.listWithArtistsFn()
}

func (s stubCatalogRepo) CreateSong(_ context.Context, title string, artistID int64) (int64, error) {
	if s.createSongFn == nil {
		return 0, errors.New("not implemented")
	}
	return s.createSongFn(title, artistID)
}

func (s stubCatalogRepo) UpdateSong(_ context.Context, songID int64, title string, artistID int64) error {
	if s.updateSongFn == nil {
		return errors.New("not implemented")
	}
	return s.updateSongFn(songID, title, artistID)
}

func (s stubCatalogRepo) DeleteSong(_ context.Context, songID int64) error {
	if s.deleteSongFn == nil {
		return errors.New("not implemented")
	}
	return s.deleteSongFn(songID)
}

func (s stubCatalogRepo) SongExists(_ context.Context, title string, artistID int64) (bool, error) {
	if s.songExistsFn == nil {
		return false, errors.New("not implemented")
	}
	return s.songExistsFn(title, artistID)
}

func (s stubCatalogRepo) ListArtists(_ context.Context) ([]catalog.Artist, error) {
	if s.listArtistsFn == nil {
		return nil, errors.New("not implemented")
	}
	return s.listArtistsFn()
}

func (s stubCatalogRepo) CreateArtist(_ context.Context, name string) (int64, error) {
	if s.createArtistFn == nil {
		return 0, errors.New("not implemented")
	}
	return s.createArtistFn(name)
}

func (s stubCatalogRepo) UpdateArtist(_ context.Context, artistID int64, name string) error {
	if s.updateArtistFn == nil {
		return errors.New("not implemented")
	}
	return s.updateArtistFn(artistID, name)
}

func (s stubCatalogRepo) DeleteArtist(_ context.Context, artistID int64) error {
	if s.deleteArtistFn == nil {
		return errors.New("not implemented")
	}
	return s.deleteArtistFn(artistID)
}

func (s stubCatalogRepo) ArtistLinkCount(_ context.Context, artistID int64) (int64, error) {
	if s.artistLinkCountFn == nil {
		return 0, errors.New("not implemented")
	}
	return s.artistLinkCountFn(artistID)
}

func TestSongsHandlerListSuccess(t *testing.T) {
	repo := stubCatalogRepo{
		listSongsFn: func() ([]catalog.Song, error) {
			return []catalog.Song{{SongID: 1, Title: "Amazing Grace"}}, nil
		},
	}

	h := NewSongsHandler(catalog.NewService(repo), "test")
	req := httptest.NewRequest(http.MethodGet, "/api/songs", nil)
	res := httptest.NewRecorder()

	h.List(res, req)

	require.Equal(t, http.StatusOK, res.Code)

	var songs []catalog.Song
	require.NoError(t, json.NewDecoder(res.Body).Decode(&songs))
	require.Len(t, songs, 1)
	require.Equal(t, "Amazing Grace", songs[0].Title)
}

func TestSongsHandlerListRepoError(t *testing.T) {
	repo := stubCatalogRepo{
		listSongsFn: func() ([]catalog.Song, error) {
			return nil, errors.New("connection refused")
		},
	}

	h := NewSongsHandler(catalog.NewService(repo), "test")
	req := httptest.NewRequest(http.MethodGet, "/api/songs", nil)
	res := httptest.NewRecorder()

	h.List(res, req)

	require.Equal(t, http.StatusInternalServerError, res.Code)
}

func TestSongsHandlerCreateSuccess(t *testing.T) {
	repo := stubCatalogRepo{
		createSongFn: func(title string, artistID int64) (int64, error) {
			require.Equal(t, "Amazing Grace", title)
			require.Equal(t, int64(3), artistID)
			return 42, nil
		},
	}

	h := NewSongsHandler(catalog.NewService(repo), "test")
	body := strings.NewReader(`{"title": "Amazing Grace", "artist_id": 3}`)
	req := httptest.NewRequest(http.MethodPost, "/api/songs", body)
	res := httptest.NewRecorder()

	h.Create(res, req)

	require.Equal(t, http.StatusOK, res.Code)

	var payload map[string]int64
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	require.Equal(t, int64(42), payload["song_id"])
}

func TestSongsHandlerCreateMissingTitle(t *testing.T) {
	h := NewSongsHandler(catalog.NewService(stubCatalogRepo{}), "test")
	body := strings.NewReader(`{"artist_id": 3}`)
	req := httptest.NewRequest(http.MethodPost, "/api/songs", body)
	res := httptest.NewRecorder()

	h.Create(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	require.Equal(t, "Title and artist are required.", payload["error"])
}

func TestSongsHandlerUpdateInvalidID(t *testing.T) {
	h := NewSongsHandler(catalog.NewService(stubCatalogRepo{}), "test")
	body := strings.NewReader(`{"title": "New Title", "artist_id": 3}`)
	req := httptest.NewRequest(http.MethodPut, "/api/songs/abc", body)
	req.SetPathValue("id", "abc")
	res := httptest.NewRecorder()

	h.Update(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestSongsHandlerDeleteSuccess(t *testing.T) {
	var deleted int64
	repo := stubCatalogRepo{
		deleteSongFn: func(songID int64) error {
			deleted = songID
			return nil
		},
	}

	h := NewSongsHandler(catalog.NewService(repo), "test")
	req := httptest.NewRequest(http.MethodDelete, "/api/songs/7", nil)
	req.SetPathValue("id", "7")
	res := httptest.NewRecorder()

	h.Delete(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	require.Equal(t, int64(7), deleted)

	var payload map[string]bool
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	require.True(t, payload["success"])
}

func TestSongsHandlerCheckDuplicate(t *testing.T) {
	repo := stubCatalogRepo{
		songExistsFn: func(title string, artistID int64) (bool, error) {
			return title == "Amazing Grace" && artistID == 3, nil
		},
	}

	h := NewSongsHandler(catalog.NewService(repo), "test")
	body := strings.NewReader(`{"title": "Amazing Grace", "artist_id": 3}`)
	req := httptest.NewRequest(http.MethodPost, "/api/songs/check-duplicate", body)
	res := httptest.NewRecorder()

	h.CheckDuplicate(res, req)

	require.Equal(t, http.StatusOK, res.Code)

	var payload map[string]bool
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	require.True(t, payload["exists"])
}
