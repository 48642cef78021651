package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(_ context.Context) error {
	return s.err
}

func TestHealthzAlwaysOK(t *testing.T) {
	h := NewHealthHandler(stubPinger{err: errors.New("db down")}, "test")
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	res := httptest.NewRecorder()

	h.Healthz(res, req)

	require.Equal(t, http.StatusOK, res.Code)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	require.Equal(t, "ok", payload["status"])
}

func TestReadyzReady(t *testing.T) {
	h := NewHealthHandler(stubPinger{}, "test")
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	res := httptest.NewRecorder()

	h.Readyz(res, req)

	require.Equal(t, http.StatusOK, res.Code)
}

func TestReadyzDatabaseDown(t *testing.T) {
	h := NewHealthHandler(stubPinger{err: errors.New("connection refused")}, "test")
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	res := httptest.NewRecorder()

	h.Readyz(res, req)

	require.Equal(t, http.StatusServiceUnavailable, res.Code)
}
