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

	"github.com/cbmworship/songlibrary/internal/domain/services"
)

type stubServicesRepo struct {
	createServiceFn     func(serviceDate string) (int64, error)
	updateDateFn        func(serviceID int64, serviceDate string) error
	deleteServiceFn     func(serviceID int64) error
	setLeaderFn         func(serviceID, leaderID int64) error
	listServiceSongsFn  func(serviceID int64) ([]services.ServiceSong, error)
	addServiceSongFn    func(song services.ServiceSong) error
	updateServiceSongFn func(song services.ServiceSong) error
	deleteServiceSongFn func(serviceID, leaderID, songID int64) error
	reassignLeaderFn    func(serviceID, leaderID int64) error
	listRecentFn        func(leaderName string) ([]services.RecentSong, error)
	listMostPlayedFn    func(leaderName string) ([]services.MostPlayedSong, error)
	listWithSongsFn     func() ([]services.ServiceWithSong, error)
}

func (s stubServicesRepo) CreateService(_ context.Context, serviceDate string) (int64, error) {
	if s.createServiceFn == nil {
		return 0, errors.New("not implemented")
	}
	return s.createServiceFn(serviceDate)
}

func (s stubServicesRepo) UpdateServiceDate(_ context.Context, serviceID int64, serviceDate string) error {
	if s.updateDateFn == nil {
		return errors.New("not implemented")
	}
	return s.updateDateFn(serviceID, serviceDate)
}

func (s stubServicesRepo) DeleteService(_ context.Context, serviceID int64) error {
	if s.deleteServiceFn == nil {
		return errors.New("not implemented")
	}
	return s.deleteServiceFn(serviceID)
}

func (s stubServicesRepo) SetServiceLeader(_ context.Context, serviceID, leaderID int64) error {
	if s.setLeaderFn == nil {
		return errors.New("not implemented")
	}
	return s.setLeaderFn(serviceID, leaderID)
}

func (s stubServicesRepo) ListServiceSongs(_ context.Context, serviceID int64) ([]services.ServiceSong, error) {
	if s.listServiceSongsFn == nil {
		return nil, errors.New("not implemented")
	}
	return s.listServiceSongsFn(serviceID)
}

func (s stubServicesRepo) AddServiceSong(_ context.Context, song services.ServiceSong) error {
	if s.addServiceSongFn == nil {
		return errors.New("not implemented")
	}
	return s.addServiceSongFn(song)
}

func (s stubServicesRepo) UpdateServiceSong(_ context.Context, song services.ServiceSong) error {
	if s.updateServiceSongFn == nil {
		return errors.New("not implemented")
	}
	return s.updateServiceSongFn(song)
}

func (s stubServicesRepo) DeleteServiceSong(_ context.Context, serviceID, leaderID, songID int64) error {
	if s.deleteServiceSongFn == nil {
		return errors.New("not implemented")
	}
	return s.deleteServiceSongFn(serviceID, leaderID, songID)
}

func (s stubServicesRepo) ReassignLeader(_ context.Context, serviceID, leaderID int64) error {
	if s.reassignLeaderFn == nil {
		return errors.New("not implemented")
	}
	return s.reassignLeaderFn(serviceID, leaderID)
}

func (s stubServicesRepo) ListRecent(_ context.Context, leaderName string) ([]services.RecentSong, error) {
	if s.listRecentFn == nil {
		return nil, errors.New("not implemented")
	}
	return s.listRecentFn(leaderName)
}

func (s stubServicesRepo) ListMostPlayed(_ context.Context, leaderName string) ([]services.MostPlayedSong, error) {
	if s.listMostPlayedFn == nil {
		return nil, errors.New("not implemented")
	}
	return s.listMostPlayedFn(leaderName)
}

func (s stubServicesRepo) ListServicesWithSongs(_ context.Context) ([]services.ServiceWithSong, error) {
	if s.listWithSongsFn == nil {
		return nil, errors.New("not implemented")
	}
	return s.listWithSongsFn()
}

func TestServicesHandlerCreateSuccess(t *testing.T) {
	repo := stubServicesRepo{
		createServiceFn: func(serviceDate string) (int64, error) {
			require.Equal(t, "2025-06-01", serviceDate)
			return 12, nil
		},
	}

	h := NewServicesHandler(services.NewService(repo), "test")
	body := strings.NewReader(`{"service_date": "2025-06-01"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/songs/services", body)
	res := httptest.NewRecorder()

	h.Create(res, req)

	require.Equal(t, http.StatusOK, res.Code)

	var payload map[string]int64
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	require.Equal(t, int64(12), payload["service_id"])
}

func TestServicesHandlerCreateInvalidDate(t *testing.T) {
	h := NewServicesHandler(services.NewService(stubServicesRepo{}), "test")
	body := strings.NewReader(`{"service_date": "June 1st"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/songs/services", body)
	res := httptest.NewRecorder()

	h.Create(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	require.Equal(t, "Service date is required.", payload["error"])
}

func TestServicesHandlerAddSongOrderZeroAccepted(t *testing.T) {
	var got services.ServiceSong
	repo := stubServicesRepo{
		addServiceSongFn: func(song services.ServiceSong) error {
			got = song
			return nil
		},
	}

	h := NewServicesHandler(services.NewService(repo), "test")
	body := strings.NewReader(`{"leader_id": 2, "song_id": 7, "key_used": "G", "order_number": 0}`)
	req := httptest.NewRequest(http.MethodPost, "/api/songs/services/12/songs", body)
	req.SetPathValue("service_id", "12")
	res := httptest.NewRecorder()

	h.AddSong(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	require.Equal(t, int64(12), got.ServiceID)
	require.Equal(t, 0, got.OrderNumber)
}

func TestServicesHandlerAddSongNullOrderRejected(t *testing.T) {
	h := NewServicesHandler(services.NewService(stubServicesRepo{}), "test")
	body := strings.NewReader(`{"leader_id": 2, "song_id": 7, "key_used": "G"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/songs/services/12/songs", body)
	req.SetPathValue("service_id", "12")
	res := httptest.NewRecorder()

	h.AddSong(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	require.Equal(t, "Missing required fields.", payload["error"])
}

func TestServicesHandlerDeleteSongIdentity(t *testing.T) {
	var gotService, gotLeader, gotSong int64
	repo := stubServicesRepo{
		deleteServiceSongFn: func(serviceID, leaderID, songID int64) error {
			gotService, gotLeader, gotSong = serviceID, leaderID, songID
			return nil
		},
	}

	h := NewServicesHandler(services.NewService(repo), "test")
	body := strings.NewReader(`{"leader_id": 2, "song_id": 7}`)
	req := httptest.NewRequest(http.MethodDelete, "/api/songs/services/12/songs", body)
	req.SetPathValue("service_id", "12")
	res := httptest.NewRecorder()

	h.DeleteSong(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	require.Equal(t, int64(12), gotService)
	require.Equal(t, int64(2), gotLeader)
	require.Equal(t, int64(7), gotSong)
}

func TestServicesHandlerBulkReassignLeader(t *testing.T) {
	repo := stubServicesRepo{
		reassignLeaderFn: func(serviceID, leaderID int64) error {
			require.Equal(t, int64(12), serviceID)
			require.Equal(t, int64(4), leaderID)
			return nil
		},
	}

	h := NewServicesHandler(services.NewService(repo), "test")
	body := strings.NewReader(`{"leader_id": 4}`)
	req := httptest.NewRequest(http.MethodPut, "/api/songs/services/12/songs/bulk-leader", body)
	req.SetPathValue("service_id", "12")
	res := httptest.NewRecorder()

	h.BulkReassignLeader(res, req)

	require.Equal(t, http.StatusOK, res.Code)
}

func TestServicesHandlerRecentPassesLeaderFilter(t *testing.T) {
	repo := stubServicesRepo{
		listRecentFn: func(leaderName string) ([]services.RecentSong, error) {
			require.Equal(t, "John Smith", leaderName)
			return []services.RecentSong{{Title: "Amazing Grace", ServiceDate: "2025-06-01", KeyUsed: "G"}}, nil
		},
	}

	h := NewServicesHandler(services.NewService(repo), "test")
	req := httptest.NewRequest(http.MethodGet, "/api/songs/recent/John%20Smith", nil)
	req.SetPathValue("leader", "John Smith")
	res := httptest.NewRecorder()

	h.Recent(res, req)

	require.Equal(t, http.StatusOK, res.Code)

	var payload []services.RecentSong
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	require.Len(t, payload, 1)
	require.Equal(t, "Amazing Grace", payload[0].Title)
}

func TestServicesHandlerMostPlayedUnfiltered(t *testing.T) {
	repo := stubServicesRepo{
		listMostPlayedFn: func(leaderName string) ([]services.MostPlayedSong, error) {
			require.Empty(t, leaderName)
			return []services.MostPlayedSong{{Title: "Amazing Grace", TimesPlayed: 14}}, nil
		},
	}

	h := NewServicesHandler(services.NewService(repo), "test")
	req := httptest.NewRequest(http.MethodGet, "/api/songs/most-played", nil)
	res := httptest.NewRecorder()

	h.MostPlayed(res, req)

	require.Equal(t, http.StatusOK, res.Code)
}
