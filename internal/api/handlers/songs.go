package handlers

import (
	"net/http"

	"github.com/cbmworship/songlibrary/internal/api/respond"
	"github.com/cbmworship/songlibrary/internal/domain/catalog"
)

type SongsHandler struct {
	Service *catalog.Service
	Env     string
}

func NewSongsHandler(service *catalog.Service, env string) *SongsHandler {
	return &SongsHandler{Service: service, Env: env}
}

// List handles GET /api/songs.
func (h *SongsHandler) List(w http.ResponseWriter, r *http.Request) {
	songs, err := h.Service.ListSongs(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, songs)
}

// ListWithArtists handles GET /api/songs/songs-with-artists.
func (h *SongsHandler) ListWithArtists(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListSongsWithArtists(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

type createSongRequest struct {
	Title    string `json:"title" validate:"required"`
	ArtistID int64  `json:"artist_id" validate:"gt=0"`
}

type songCreatedResponse struct {
	SongID int64 `json:"song_id"`
}

// Create handles POST /api/songs. The song and its artist link are
// written in one transaction.
func (h *SongsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSongRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Title and artist are required.", err, h.Env)
		return
	}

	songID, err := h.Service.CreateSong(r.Context(), req.Title, req.ArtistID)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, songCreatedResponse{SongID: songID})
}

// Update handles PUT /api/songs/{id}: title update plus artist link
// replacement.
func (h *SongsHandler) Update(w http.ResponseWriter, r *http.Request) {
	songID, err := pathID(r, "id")
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid song id.", err, h.Env)
		return
	}

	var req createSongRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Title and artist are required.", err, h.Env)
		return
	}

	if err := h.Service.UpdateSong(r.Context(), songID, req.Title, req.ArtistID); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}

// Delete handles DELETE /api/songs/{id}: link rows first, then the song,
// in one transaction.
func (h *SongsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	songID, err := pathID(r, "id")
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid song id.", err, h.Env)
		return
	}

	if err := h.Service.DeleteSong(r.Context(), songID); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}

type checkDuplicateRequest struct {
	Title    string `json:"title" validate:"required"`
	ArtistID int64  `json:"artist_id" validate:"gt=0"`
}

type checkDuplicateResponse struct {
	Exists bool `json:"exists"`
}

// CheckDuplicate handles POST /api/songs/check-duplicate.
func (h *SongsHandler) CheckDuplicate(w http.ResponseWriter, r *http.Request) {
	var req checkDuplicateRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Title and artist are required.", err, h.Env)
		return
	}

	exists, err := h.Service.SongExists(r.Context(), req.Title, req.ArtistID)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, checkDuplicateResponse{Exists: exists})
}
