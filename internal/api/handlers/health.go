package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/cbmworship/songlibrary/internal/api/respond"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	DB  Pinger
	Env string
}

func NewHealthHandler(db Pinger, env string) *HealthHandler {
	return &HealthHandler{DB: db, Env: env}
}

// Healthz reports process liveness only.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz reports readiness to serve traffic, which requires a reachable
// database.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		respond.Error(w, r, http.StatusServiceUnavailable, "database unavailable", err, h.Env)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
