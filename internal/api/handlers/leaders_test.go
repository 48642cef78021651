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

	"github.com/cbmworship/songlibrary/internal/domain/leaders"
)

type stubLeadersRepo struct {
	listLeadersFn   func() ([]leaders.WorshipLeader, error)
	createLeaderFn  func(name string) (int64, error)
	updateLeaderFn  func(leaderID int64, name string) error
	deleteLeaderFn  func(leaderID int64) error
	createKeyFn     func(key leaders.PreferredKey) error
	updateKeyFn     func(key leaders.PreferredKey) error
	deleteKeyFn     func(key leaders.PreferredKey) error
	updateKeyByIDFn func(id int64, preferredKey string) error
	deleteKeyByIDFn func(id int64) error
	listKeysFn      func(leaderName string) ([]leaders.PreferredKeyView, error)
}

func (s stubLeadersRepo) ListLeaders(_ context.Context) ([]leaders.WorshipLeader, error) {
	if s.listLeadersFn == nil {
		return nil, errors.New("not implemented")
	}
	return s.listLeadersFn()
}

func (s stubLeadersRepo) CreateLeader(_ context.Context, name string) (int64, error) {
	if s.createLeaderFn == nil {
		return 0, errors.New("not implemented")
	}
	return s.createLeaderFn(name)
}

func (s stubLeadersRepo) UpdateLeader(_ context.Context, leaderID int64, name string) error {
	if s.updateLeaderFn == nil {
		return errors.New("not implemented")
	}
	return s.updateLeaderFn(leaderID, name)
}

func (s stubLeadersRepo) DeleteLeader(_ context.Context, leaderID int64) error {
	if s.deleteLeaderFn == nil {
		return errors.New("not implemented")
	}
	return s.deleteLeaderFn(leaderID)
}

func (s stubLeadersRepo) CreatePreferredKey(_ context.Context, key leaders.PreferredKey) error {
	if s.createKeyFn == nil {
		return errors.New("not implemented")
	}
	return s.createKeyFn(key)
}

func (s stubLeadersRepo) UpdatePreferredKey(_ context.Context, key leaders.PreferredKey) error {
	if s.updateKeyFn == nil {
		return errors.New("not implemented")
	}
	return s.updateKeyFn(key)
}

func (s stubLeadersRepo) DeletePreferredKey(_ context.Context, key leaders.PreferredKey) error {
	if s.deleteKeyFn == nil {
		return errors.New("not implemented")
	}
	return s.deleteKeyFn(key)
}

func (s stubLeadersRepo) UpdatePreferredKeyByID(_ context.Context, id int64, preferredKey string) error {
	if s.updateKeyByIDFn == nil {
		return errors.New("not implemented")
	}
	return s.updateKeyByIDFn(id, preferredKey)
}

func (s stubLeadersRepo) DeletePreferredKeyByID(_ context.Context, id int64) error {
	if s.deleteKeyByIDFn == nil {
		return errors.New("not implemented")
	}
	return s.deleteKeyByIDFn(id)
}

func (s stubLeadersRepo) ListPreferredKeys(_ context.Context, leaderName string) ([]leaders.PreferredKeyView, error) {
	if s.listKeysFn == nil {
		return nil, errors.New("not implemented")
	}
	return s.listKeysFn(leaderName)
}

func TestLeadersHandlerCreateEchoesTrimmedName(t *testing.T) {
	repo := stubLeadersRepo{
		createLeaderFn: func(name string) (int64, error) {
			require.Equal(t, "John Smith", name)
			return 9, nil
		},
	}

	h := NewLeadersHandler(leaders.NewService(repo), "test")
	body := strings.NewReader(`{"name": "  John Smith  "}`)
	req := httptest.NewRequest(http.MethodPost, "/api/songs/worship-leaders", body)
	res := httptest.NewRecorder()

	h.Create(res, req)

	require.Equal(t, http.StatusOK, res.Code)

	var payload leaders.WorshipLeader
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	require.Equal(t, int64(9), payload.LeaderID)
	require.Equal(t, "John Smith", payload.Name)
}

func TestLeadersHandlerCreateBlankName(t *testing.T) {
	h := NewLeadersHandler(leaders.NewService(stubLeadersRepo{}), "test")
	body := strings.NewReader(`{"name": "   "}`)
	req := httptest.NewRequest(http.MethodPost, "/api/songs/worship-leaders", body)
	res := httptest.NewRecorder()

	h.Create(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	require.Equal(t, "Name is required.", payload["error"])
}

func TestLeadersHandlerUpdateSuccess(t *testing.T) {
	repo := stubLeadersRepo{
		updateLeaderFn: func(leaderID int64, name string) error {
			require.Equal(t, int64(9), leaderID)
			require.Equal(t, "Jane Smith", name)
			return nil
		},
	}

	h := NewLeadersHandler(leaders.NewService(repo), "test")
	body := strings.NewReader(`{"name": "Jane Smith"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/songs/worship-leaders/9", body)
	req.SetPathValue("leader_id", "9")
	res := httptest.NewRecorder()

	h.Update(res, req)

	require.Equal(t, http.StatusOK, res.Code)
}

func TestLeadersHandlerDeleteSuccess(t *testing.T) {
	var deleted int64
	repo := stubLeadersRepo{
		deleteLeaderFn: func(leaderID int64) error {
			deleted = leaderID
			return nil
		},
	}

	h := NewLeadersHandler(leaders.NewService(repo), "test")
	req := httptest.NewRequest(http.MethodDelete, "/api/songs/worship-leaders/9", nil)
	req.SetPathValue("leader_id", "9")
	res := httptest.NewRecorder()

	h.Delete(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	require.Equal(t, int64(9), deleted)
}
