package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cbmworship/songlibrary/internal/domain/catalog"
)

func TestArtistsHandlerCreateSuccess(t *testing.T) {
	repo := stubCatalogRepo{
		createArtistFn: func(name string) (int64, error) {
			require.Equal(t, "Chris Tomlin", name)
			return 5, nil
		},
	}

	h := NewArtistsHandler(catalog.NewService(repo), "test")
	body := strings.NewReader(`{"name": "Chris Tomlin"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/songs/artists", body)
	res := httptest.NewRecorder()

	h.Create(res, req)

	require.Equal(t, http.StatusOK, res.Code)

	var payload map[string]int64
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	require.Equal(t, int64(5), payload["artist_id"])
}

func TestArtistsHandlerCreateMissingName(t *testing.T) {
	h := NewArtistsHandler(catalog.NewService(stubCatalogRepo{}), "test")
	req := httptest.NewRequest(http.MethodPost, "/api/songs/artists", strings.NewReader(`{}`))
	res := httptest.NewRecorder()

	h.Create(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestArtistsHandlerDeleteLinkedArtist(t *testing.T) {
	repo := stubCatalogRepo{
		artistLinkCountFn: func(artistID int64) (int64, error) {
			return 2, nil
		},
	}

	h := NewArtistsHandler(catalog.NewService(repo), "test")
	req := httptest.NewRequest(http.MethodDelete, "/api/songs/artists/5", nil)
	req.SetPathValue("id", "5")
	res := httptest.NewRecorder()

	h.Delete(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	require.Equal(t, "Cannot delete: Artist is linked to one or more songs.", payload["error"])
}

func TestArtistsHandlerDeleteUnlinkedArtist(t *testing.T) {
	var deleted int64
	repo := stubCatalogRepo{
		artistLinkCountFn: func(artistID int64) (int64, error) {
			return 0, nil
		},
		deleteArtistFn: func(artistID int64) error {
			deleted = artistID
			return nil
		},
	}

	h := NewArtistsHandler(catalog.NewService(repo), "test")
	req := httptest.NewRequest(http.MethodDelete, "/api/songs/artists/5", nil)
	req.SetPathValue("id", "5")
	res := httptest.NewRecorder()

	h.Delete(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	require.Equal(t, int64(5), deleted)
}
