//go:build unit

package session_test

import (
	"testing"
	"time"

	"lounge-engine/internal/domain/pricing"
	"lounge-engine/internal/domain/session"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTable = pricing.Table{
	ID:              "price1",
	BranchID:        "branch1",
	SinglePlayer:    100,
	MultiPlayer:     80,
	OverThreePlayer: 60,
	CreditRate:      0.1,
}

func startTestSession(t *testing.T, players, hours int) (*session.Session, time.Time) {
	t.Helper()
	now := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	s, err := session.Start("dev1", "cust1", "staff1", "branch1", players, hours, []string{"game1"}, testTable, now)
	require.NoError(t, err)
	return s, now
}

func TestStart(t *testing.T) {
	t.Run("prices the whole booked window up front", func(t *testing.T) {
		s, now := startTestSession(t, 3, 2)

		assert.Equal(t, pricing.Amount(480), s.TotalAmount())
		assert.Equal(t, session.StatusOccupied, s.Status())
		assert.Equal(t, now, s.SessionIn())
		assert.Equal(t, now.Add(2*time.Hour), s.SessionOut())
		assert.Equal(t, 2, s.DurationHours())
		assert.Equal(t, 0, s.ExtendedHours())
		assert.Equal(t, 48, s.RewardPoints())
	})

	t.Run("single player flat rate", func(t *testing.T) {
		s, _ := startTestSession(t, 1, 2)
		assert.Equal(t, pricing.Amount(200), s.TotalAmount())
	})

	t.Run("validation before anything else", func(t *testing.T) {
		now := time.Now()
		_, err := session.Start("dev1", "cust1", "staff1", "branch1", 0, 2, nil, testTable, now)
		assert.ErrorIs(t, err, session.ErrInvalidPlayers)

		_, err = session.Start("dev1", "cust1", "staff1", "branch1", 1, 0, nil, testTable, now)
		assert.ErrorIs(t, err, session.ErrInvalidHours)
	})
}

func TestExtend(t *testing.T) {
	t.Run("charges added hours at the new player band", func(t *testing.T) {
		// spec'd counter scenario: 3 players 2h = 480, +1h +1p at 4-player rate = +240
		s, now := startTestSession(t, 3, 2)

		charge, err := s.Extend(1, 1, testTable)
		require.NoError(t, err)

		assert.Equal(t, pricing.Amount(240), charge)
		assert.Equal(t, pricing.Amount(720), s.TotalAmount())
		assert.Equal(t, 4, s.Players())
		assert.Equal(t, session.StatusExtended, s.Status())
		assert.Equal(t, now, s.SessionIn(), "session_in is immutable")
		assert.Equal(t, now.Add(3*time.Hour), s.SessionOut())
		assert.Equal(t, 3, s.DurationHours())
		assert.Equal(t, 1, s.ExtendedHours())
		assert.Equal(t, 72, s.RewardPoints())
	})

	t.Run("extra hours only, rate from current players", func(t *testing.T) {
		s, now := startTestSession(t, 1, 1)

		charge, err := s.Extend(2, 0, testTable)
		require.NoError(t, err)

		assert.Equal(t, pricing.Amount(200), charge)
		assert.Equal(t, now.Add(3*time.Hour), s.SessionOut())
	})

	t.Run("closed session cannot be extended", func(t *testing.T) {
		s, now := startTestSession(t, 2, 1)
		require.NoError(t, s.Close(now.Add(30*time.Minute)))

		_, err := s.Extend(1, 0, testTable)
		assert.ErrorIs(t, err, session.ErrAlreadyClosed)
	})

	t.Run("validation leaves the session untouched", func(t *testing.T) {
		s, _ := startTestSession(t, 2, 1)
		before := snapshot(s)

		_, err := s.Extend(0, 0, testTable)
		assert.ErrorIs(t, err, session.ErrInvalidHours)

		_, err = s.Extend(1, -1, testTable)
		assert.ErrorIs(t, err, session.ErrInvalidPlayers)

		if diff := cmp.Diff(before, snapshot(s)); diff != "" {
			t.Errorf("session mutated by rejected extension (-want +got):\n%s", diff)
		}
	})
}

func TestClose(t *testing.T) {
	t.Run("stamps actual end and frees billing", func(t *testing.T) {
		s, now := startTestSession(t, 2, 2)
		endedAt := now.Add(90 * time.Minute)

		require.NoError(t, s.Close(endedAt))

		assert.Equal(t, session.StatusClosed, s.Status())
		assert.Equal(t, endedAt, s.SessionOut())
		assert.InDelta(t, 1.5, s.ActualHours(), 0.001)
		// billed hours never shrink, even on an early close
		assert.Equal(t, 2, s.DurationHours())
		assert.Equal(t, pricing.Amount(320), s.TotalAmount())
	})

	t.Run("second close is a conflict", func(t *testing.T) {
		s, now := startTestSession(t, 1, 1)
		require.NoError(t, s.Close(now.Add(time.Hour)))

		err := s.Close(now.Add(2 * time.Hour))
		assert.ErrorIs(t, err, session.ErrAlreadyClosed)
	})

	t.Run("tombstoned session stays dead", func(t *testing.T) {
		s, now := startTestSession(t, 1, 1)
		s.Tombstone()

		assert.ErrorIs(t, s.Close(now), session.ErrTombstoned)
		assert.False(t, s.IsLive())
	})
}

type sessionSnapshot struct {
	Players      int
	SessionIn    time.Time
	SessionOut   time.Time
	Duration     int
	Extended     int
	Total        pricing.Amount
	Status       session.Status
	RewardPoints int
}

func snapshot(s *session.Session) sessionSnapshot {
	return sessionSnapshot{
		Players:      s.Players(),
		SessionIn:    s.SessionIn(),
		SessionOut:   s.SessionOut(),
		Duration:     s.DurationHours(),
		Extended:     s.ExtendedHours(),
		Total:        s.TotalAmount(),
		Status:       s.Status(),
		RewardPoints: s.RewardPoints(),
	}
}
