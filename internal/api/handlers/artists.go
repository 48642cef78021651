package handlers

import (
	"errors"
	"net/http"

	"github.com/cbmworship/songlibrary/internal/api/respond"
	"github.com/cbmworship/songlibrary/internal/domain/catalog"
)

type ArtistsHandler struct {
	Service *catalog.Service
	Env     string
}

func NewArtistsHandler(service *catalog.Service, env string) *ArtistsHandler {
	return &ArtistsHandler{Service: service, Env: env}
}

// List handles GET /api/songs/artists.
func (h *ArtistsHandler) List(w http.ResponseWriter, r *http.Request) {
	artists, err := h.Service.ListArtists(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, artists)
}

type artistRequest struct {
	Name string `json:"name" validate:"required"`
}

type artistCreatedResponse struct {
	ArtistID int64 `json:"artist_id"`
}

// Create handles POST /api/songs/artists.
func (h *ArtistsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req artistRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Name is required.", err, h.Env)
		return
	}

	artistID, err := h.Service.CreateArtist(r.Context(), req.Name)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, artistCreatedResponse{ArtistID: artistID})
}

// Update handles PUT /api/songs/artists/{id}.
func (h *ArtistsHandler) Update(w http.ResponseWriter, r *http.Request) {
	artistID, err := pathID(r, "id")
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid artist id.", err, h.Env)
		return
	}

	var req artistRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Name is required.", err, h.Env)
		return
	}

	if err := h.Service.UpdateArtist(r.Context(), artistID, req.Name); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}

// Delete handles DELETE /api/songs/artists/{id}. Artists still linked to
// a song are refused with a conflict message.
func (h *ArtistsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	artistID, err := pathID(r, "id")
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid artist id.", err, h.Env)
		return
	}

	if err := h.Service.DeleteArtist(r.Context(), artistID); err != nil {
		if errors.Is(err, catalog.ErrArtistInUse) {
			respond.Error(w, r, http.StatusBadRequest, "Cannot delete: Artist is linked to one or more songs.", nil, h.Env)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}
