package handlers

import (
	"errors"
	"net/http"

	"github.com/cbmworship/songlibrary/internal/api/respond"
	"github.com/cbmworship/songlibrary/internal/domain/leaders"
)

type LeadersHandler struct {
	Service *leaders.Service
	Env     string
}

func NewLeadersHandler(service *leaders.Service, env string) *LeadersHandler {
	return &LeadersHandler{Service: service, Env: env}
}

// List handles GET /api/songs/worship-leaders.
func (h *LeadersHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListLeaders(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, items)
}

type leaderRequest struct {
	Name string `json:"name" validate:"required"`
}

// Create handles POST /api/songs/worship-leaders. The name is trimmed
// and echoed back with the generated id.
func (h *LeadersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req leaderRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Name is required.", err, h.Env)
		return
	}

	leader, err := h.Service.CreateLeader(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, leaders.ErrNameRequired) {
			respond.Error(w, r, http.StatusBadRequest, "Name is required.", nil, h.Env)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, leader)
}

// Update handles PUT /api/songs/worship-leaders/{leader_id}.
func (h *LeadersHandler) Update(w http.ResponseWriter, r *http.Request) {
	leaderID, err := pathID(r, "leader_id")
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid leader id.", err, h.Env)
		return
	}

	var req leaderRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Name is required.", err, h.Env)
		return
	}

	if err := h.Service.UpdateLeader(r.Context(), leaderID, req.Name); err != nil {
		if errors.Is(err, leaders.ErrNameRequired) {
			respond.Error(w, r, http.StatusBadRequest, "Name is required.", nil, h.Env)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}

// Delete handles DELETE /api/songs/worship-leaders/{leader_id}.
func (h *LeadersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	leaderID, err := pathID(r, "leader_id")
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid leader id.", err, h.Env)
		return
	}

	if err := h.Service.DeleteLeader(r.Context(), leaderID); err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, success)
}
