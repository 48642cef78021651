package handlers

import (
	"net/http"

	"github.com/cbmworship/songlibrary/internal/api/respond"
	"github.com/cbmworship/songlibrary/internal/domain/leaders"
)

// PreferredKeysHandler serves both identity schemes for preferred keys:
// the composite (leader + song or leader + free-text title) endpoints and
// the surrogate-id endpoints. Everything funnels into the tagged
// PreferredKey record.
type PreferredKeysHandler struct {
	Service *leaders.Service
	Env     string
}

func NewPreferredKeysHandler(service *leaders.Service, env string) *PreferredKeysHandler {
	return &PreferredKeysHandler{Service: service, Env: env}
}

// List handles GET /api/songs/preferred-keys and its per-leader variant
// GET /api/songs/preferred-keys/{leader}. The filter matches the
// leader's display name exactly.
func (h *PreferredKeysHandler) List(w http.ResponseWriter, r *http.Request) {
	leaderName := r.PathValue("leader")

	items, err := h.Service.ListPreferredKeys(r.Context(), leaderName)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

type trackedKeyRequest struct {
	LeaderID     int64  `json:"leader_id" validate:"gt=0"`
	SongID       int64  `json:"song_id" validate:"gt=0"`
	PreferredKey string `json:"preferred_key" validate:"required,max=10"`
}

// CreateTracked handles POST /api/songs/preferred-keys.
func (h *PreferredKeysHandler) CreateTracked(w http.ResponseWriter, r *http.Request) {
	var req trackedKeyRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Missing required fields.", err, h.Env)
		return
	}

	key := leaders.PreferredKey{LeaderID: req.LeaderID, SongID: &req.SongID, Key: req.PreferredKey}
	if err := h.Service.CreatePreferredKey(r.Context(), key); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}

// UpdateTracked handles PUT /api/songs/preferred-keys/track, matching by
// (leader_id, song_id).
func (h *PreferredKeysHandler) UpdateTracked(w http.ResponseWriter, r *http.Request) {
	var req trackedKeyRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Missing required fields.", err, h.Env)
		return
	}

	key := leaders.PreferredKey{LeaderID: req.LeaderID, SongID: &req.SongID, Key: req.PreferredKey}
	if err := h.Service.UpdatePreferredKey(r.Context(), key); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}

type trackedKeyIdentity struct {
	LeaderID int64 `json:"leader_id" validate:"gt=0"`
	SongID   int64 `json:"song_id" validate:"gt=0"`
}

// DeleteTracked handles DELETE /api/songs/preferred-keys/track.
func (h *PreferredKeysHandler) DeleteTracked(w http.ResponseWriter, r *http.Request) {
	var req trackedKeyIdentity
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Missing required fields.", err, h.Env)
		return
	}

	key := leaders.PreferredKey{LeaderID: req.LeaderID, SongID: &req.SongID}
	if err := h.Service.DeletePreferredKey(r.Context(), key); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}

type untrackedKeyRequest struct {
	LeaderID     int64  `json:"leader_id" validate:"gt=0"`
	SongTitle    string `json:"song_title" validate:"required,max=255"`
	PreferredKey string `json:"preferred_key" validate:"required,max=10"`
}

// CreateUntracked handles POST /api/songs/preferred-keys/notrack for
// songs not yet in the catalog.
func (h *PreferredKeysHandler) CreateUntracked(w http.ResponseWriter, r *http.Request) {
	var req untrackedKeyRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Missing required fields.", err, h.Env)
		return
	}

	key := leaders.PreferredKey{LeaderID: req.LeaderID, SongTitle: req.SongTitle, Key: req.PreferredKey}
	if err := h.Service.CreatePreferredKey(r.Context(), key); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}

// UpdateUntracked handles PUT /api/songs/preferred-keys/notrack,
// matching by (leader_id, song_title).
func (h *PreferredKeysHandler) UpdateUntracked(w http.ResponseWriter, r *http.Request) {
	var req untrackedKeyRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Missing required fields.", err, h.Env)
		return
	}

	key := leaders.PreferredKey{LeaderID: req.LeaderID, SongTitle: req.SongTitle, Key: req.PreferredKey}
	if err := h.Service.UpdatePreferredKey(r.Context(), key); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}

type untrackedKeyIdentity struct {
	LeaderID  int64  `json:"leader_id" validate:"gt=0"`
	SongTitle string `json:"song_title" validate:"required,max=255"`
}

// DeleteUntracked handles DELETE /api/songs/preferred-keys/notrack.
func (h *PreferredKeysHandler) DeleteUntracked(w http.ResponseWriter, r *http.Request) {
	var req untrackedKeyIdentity
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Missing required fields.", err, h.Env)
		return
	}

	key := leaders.PreferredKey{LeaderID: req.LeaderID, SongTitle: req.SongTitle}
	if err := h.Service.DeletePreferredKey(r.Context(), key); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}

type keyByIDRequest struct {
	PreferredKey string `json:"preferred_key" validate:"required,max=10"`
}

// UpdateByID handles PUT /api/songs/preferred-keys/{id} against the
// tracked table's surrogate key.
func (h *PreferredKeysHandler) UpdateByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid preferred key id.", err, h.Env)
		return
	}

	var req keyByIDRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Missing required fields.", err, h.Env)
		return
	}

	if err := h.Service.UpdatePreferredKeyByID(r.Context(), id, req.PreferredKey); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}

// DeleteByID handles DELETE /api/songs/preferred-keys/{id}.
func (h *PreferredKeysHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid preferred key id.", err, h.Env)
		return
	}

	if err := h.Service.DeletePreferredKeyByID(r.Context(), id); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}
