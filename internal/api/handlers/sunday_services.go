package handlers

import (
	"net/http"

	"github.com/cbmworship/songlibrary/internal/api/respond"
	"github.com/cbmworship/songlibrary/internal/domain/services"
)

type ServicesHandler struct {
	Service *services.Service
	Env     string
}

func NewServicesHandler(service *services.Service, env string) *ServicesHandler {
	return &ServicesHandler{Service: service, Env: env}
}

type serviceDateRequest struct {
	ServiceDate string `json:"service_date" validate:"required,datetime=2006-01-02"`
}

type serviceCreatedResponse struct {
	ServiceID int64 `json:"service_id"`
}

// Create handles POST /api/songs/services.
func (h *ServicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req serviceDateRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Service date is required.", err, h.Env)
		return
	}

	serviceID, err := h.Service.CreateService(r.Context(), req.ServiceDate)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, serviceCreatedResponse{ServiceID: serviceID})
}

// UpdateDate handles PUT /api/songs/services/{service_id}.
func (h *ServicesHandler) UpdateDate(w http.ResponseWriter, r *http.Request) {
	serviceID, err := pathID(r, "service_id")
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid service id.", err, h.Env)
		return
	}

	var req serviceDateRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Service date is required.", err, h.Env)
		return
	}

	if err := h.Service.UpdateServiceDate(r.Context(), serviceID, req.ServiceDate); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}

// Delete handles DELETE /api/songs/services/{service_id}. The set list
// and the service are removed together in one transaction.
func (h *ServicesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	serviceID, err := pathID(r, "service_id")
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid service id.", err, h.Env)
		return
	}

	if err := h.Service.DeleteService(r.Context(), serviceID); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}

type leaderIDRequest struct {
	LeaderID int64 `json:"leader_id" validate:"gt=0"`
}

// SetLeader handles PUT /api/songs/services/{service_id}/leader, the
// leader presiding over the whole service.
func (h *ServicesHandler) SetLeader(w http.ResponseWriter, r *http.Request) {
	serviceID, err := pathID(r, "service_id")
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid service id.", err, h.Env)
		return
	}

	var req leaderIDRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Leader ID is required.", err, h.Env)
		return
	}

	if err := h.Service.SetServiceLeader(r.Context(), serviceID, req.LeaderID); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}

// ListSongs handles GET /api/songs/services/{service_id}/songs, the set
// list in performance order.
func (h *ServicesHandler) ListSongs(w http.ResponseWriter, r *http.Request) {
	serviceID, err := pathID(r, "service_id")
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid service id.", err, h.Env)
		return
	}

	items, err := h.Service.ListServiceSongs(r.Context(), serviceID)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

type serviceSongRequest struct {
	LeaderID    int64  `json:"leader_id" validate:"gt=0"`
	SongID      int64  `json:"song_id" validate:"gt=0"`
	KeyUsed     string `json:"key_used" validate:"required,max=10"`
	OrderNumber *int   `json:"order_number" validate:"required"`
}

// AddSong handles POST /api/songs/services/{service_id}/songs. All
// fields are required; order_number zero is a valid position.
func (h *ServicesHandler) AddSong(w http.ResponseWriter, r *http.Request) {
	serviceID, err := pathID(r, "service_id")
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid service id.", err, h.Env)
		return
	}

	var req serviceSongRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Missing required fields.", err, h.Env)
		return
	}

	song := services.ServiceSong{
		ServiceID:   serviceID,
		LeaderID:    req.LeaderID,
		SongID:      req.SongID,
		KeyUsed:     req.KeyUsed,
		OrderNumber: *req.OrderNumber,
	}
	if err := h.Service.AddServiceSong(r.Context(), song); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}

// UpdateSong handles PUT /api/songs/services/{service_id}/songs,
// matching by (service_id, song_id) and replacing key, order and leader.
func (h *ServicesHandler) UpdateSong(w http.ResponseWriter, r *http.Request) {
	serviceID, err := pathID(r, "service_id")
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid service id.", err, h.Env)
		return
	}

	var req serviceSongRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Missing required fields.", err, h.Env)
		return
	}

	song := services.ServiceSong{
		ServiceID:   serviceID,
		LeaderID:    req.LeaderID,
		SongID:      req.SongID,
		KeyUsed:     req.KeyUsed,
		OrderNumber: *req.OrderNumber,
	}
	if err := h.Service.UpdateServiceSong(r.Context(), song); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}

type serviceSongIdentity struct {
	LeaderID int64 `json:"leader_id" validate:"gt=0"`
	SongID   int64 `json:"song_id" validate:"gt=0"`
}

// DeleteSong handles DELETE /api/songs/services/{service_id}/songs,
// matching by (service_id, leader_id, song_id).
func (h *ServicesHandler) DeleteSong(w http.ResponseWriter, r *http.Request) {
	serviceID, err := pathID(r, "service_id")
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid service id.", err, h.Env)
		return
	}

	var req serviceSongIdentity
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Missing required fields.", err, h.Env)
		return
	}

	if err := h.Service.DeleteServiceSong(r.Context(), serviceID, req.LeaderID, req.SongID); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}

// BulkReassignLeader handles PUT
// /api/songs/services/{service_id}/songs/bulk-leader, moving every song
// of the service to one leader.
func (h *ServicesHandler) BulkReassignLeader(w http.ResponseWriter, r *http.Request) {
	serviceID, err := pathID(r, "service_id")
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid service id.", err, h.Env)
		return
	}

	var req leaderIDRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Leader ID is required.", err, h.Env)
		return
	}

	if err := h.Service.ReassignLeader(r.Context(), serviceID, req.LeaderID); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}

// Recent handles GET /api/songs/recent and /api/songs/recent/{leader}:
// the ten most recent performances, newest service first, set-list order
// within a service.
func (h *ServicesHandler) Recent(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListRecent(r.Context(), r.PathValue("leader"))
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

// MostPlayed handles GET /api/songs/most-played and its per-leader
// variant: the ten most played titles by play count.
func (h *ServicesHandler) MostPlayed(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListMostPlayed(r.Context(), r.PathValue("leader"))
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

// ListWithSongs handles GET /api/songs/services-with-songs, the
// denormalized display join.
func (h *ServicesHandler) ListWithSongs(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListServicesWithSongs(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}
