//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lounge-engine/internal/domain/pricing"
	"lounge-engine/internal/domain/session"
	"lounge-engine/internal/infra"
	"lounge-engine/internal/infra/recordstore"
	"lounge-engine/internal/infra/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTable = pricing.Table{
	SinglePlayer:    100,
	MultiPlayer:     80,
	OverThreePlayer: 60,
	CreditRate:      0.1,
}

func newStubClient(t *testing.T, handler http.Handler) *recordstore.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return recordstore.NewClientWithHTTP(srv.URL, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateActive(t *testing.T) {
	t.Run("writes the occupancy guard fields", func(t *testing.T) {
		var captured map[string]any
		client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/collections/sessions/records", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			_, _ = w.Write([]byte(`{"id":"sess1"}`))
		}))

		now := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
		s, err := session.Start("dev1", "cust1", "staff1", "branch1", 3, 2, []string{"g1"}, testTable, now)
		require.NoError(t, err)

		repo := repository.NewSessionRepository(client)
		require.NoError(t, repo.CreateActive(context.Background(), s, "key-1"))

		assert.Equal(t, "sess1", s.ID())
		assert.Equal(t, "dev1", captured["device_id"])
		assert.Equal(t, "dev1", captured["active_device_id"], "conditional-create guard")
		assert.Equal(t, "key-1", captured["request_key"])
		assert.Equal(t, "occupied", captured["status"])
		assert.Equal(t, float64(480), captured["total_amount"])
		assert.Equal(t, "2025-06-01 14:00:00.000Z", captured["session_in"])
		assert.Equal(t, "2025-06-01 16:00:00.000Z", captured["session_out"])
	})

	t.Run("losing the race maps to conflict", func(t *testing.T) {
		client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":400,"message":"Failed to create record.","data":{"active_device_id":{"code":"validation_not_unique"}}}`))
		}))

		s, err := session.Start("dev1", "cust1", "staff1", "branch1", 1, 1, nil, testTable, time.Now())
		require.NoError(t, err)

		repo := repository.NewSessionRepository(client)
		err = repo.CreateActive(context.Background(), s, "key-1")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})
}

func TestSave(t *testing.T) {
	t.Run("closing clears the occupancy guard", func(t *testing.T) {
		var captured map[string]any
		client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPatch, r.Method)
			require.Equal(t, "/api/collections/sessions/records/sess1", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			_, _ = w.Write([]byte(`{"id":"sess1"}`))
		}))

		now := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
		s := session.Reconstruct("sess1", "dev1", "cust1", "staff1", "branch1", nil,
			2, now, now.Add(2*time.Hour), 2, 0, 320, session.StatusOccupied, 32)
		require.NoError(t, s.Close(now.Add(time.Hour)))

		repo := repository.NewSessionRepository(client)
		require.NoError(t, repo.Save(context.Background(), s))

		assert.Equal(t, "closed", captured["status"])
		assert.Equal(t, "", captured["active_device_id"])
	})

	t.Run("live session keeps the guard", func(t *testing.T) {
		var captured map[string]any
		client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			_, _ = w.Write([]byte(`{"id":"sess1"}`))
		}))

		now := time.Now().UTC().Truncate(time.Second)
		s := session.Reconstruct("sess1", "dev1", "cust1", "staff1", "branch1", nil,
			2, now, now.Add(time.Hour), 1, 0, 160, session.StatusOccupied, 16)
		_, err := s.Extend(1, 0, testTable)
		require.NoError(t, err)

		repo := repository.NewSessionRepository(client)
		require.NoError(t, repo.Save(context.Background(), s))

		assert.Equal(t, "extended", captured["status"])
		_, present := captured["active_device_id"]
		assert.False(t, present, "guard must not be cleared while live")
	})
}

func TestListLiveByBranch(t *testing.T) {
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("filter")
		assert.Equal(t, `(branch_id = "b1" && (status = "active" || status = "booked" || status = "occupied" || status = "extended"))`, filter)
		_, _ = w.Write([]byte(`{"page":1,"perPage":200,"totalItems":1,"items":[
			{"id":"sess1","device_id":"dev1","branch_id":"b1","no_of_players":2,
			 "session_in":"2025-06-01 14:00:00.000Z","session_out":"2025-06-01 16:00:00.000Z",
			 "duration_hours":2,"total_amount":320,"status":"occupied","reward_points_earned":32}
		]}`))
	}))

	repo := repository.NewSessionRepository(client)
	sessions, err := repo.ListLiveByBranch(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "dev1", sessions[0].DeviceID())
	assert.Equal(t, pricing.Amount(320), sessions[0].TotalAmount())
	assert.True(t, sessions[0].IsLive())
	assert.Equal(t, time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC), sessions[0].SessionIn())
}

func TestFindByIDNotFound(t *testing.T) {
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"message":"The requested resource wasn't found."}`))
	}))

	repo := repository.NewSessionRepository(client)
	_, err := repo.FindByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
