package handlers

import (
	"errors"
	"net/http"

	"github.com/cbmworship/songlibrary/internal/api/respond"
	"github.com/cbmworship/songlibrary/internal/domain/admins"
)

type AdminAuthHandler struct {
	Service *admins.Service
	Env     string
}

func NewAdminAuthHandler(service *admins.Service, env string) *AdminAuthHandler {
	return &AdminAuthHandler{Service: service, Env: env}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/admin/login.
func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Username and password are required.", err, h.Env)
		return
	}

	token, err := h.Service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, admins.ErrInvalidCredentials) {
			// Unknown username and wrong password produce the same
			// message so usernames cannot be enumerated.
			respond.Error(w, r, http.StatusUnauthorized, "Invalid credentials", nil, h.Env)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err, h.Env)
		return
	}

	respond.JSON(w, http.StatusOK, loginResponse{Token: token})
}
