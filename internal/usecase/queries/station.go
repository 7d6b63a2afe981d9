package queries

import (
	"context"
	"log/slog"
	"time"

	"lounge-engine/internal/domain/session"
	"lounge-engine/internal/domain/station"
)

// Read models (DTO for read side)
type StationView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Available bool   `json:"available"`
	// LiveSessionID is set when a live session currently claims the station.
	LiveSessionID string `json:"live_session_id,omitempty"`
}

type LiveSessionView struct {
	ID           string    `json:"id"`
	DeviceID     string    `json:"device_id"`
	StationName  string    `json:"station_name"`
	CustomerID   string    `json:"customer_id"`
	Players      int       `json:"no_of_players"`
	SessionIn    time.Time `json:"session_in"`
	SessionOut   time.Time `json:"session_out"`
	Hours        int       `json:"duration_hours"`
	Status       string    `json:"status"`
	TotalAmount  int64     `json:"total_amount"`
	RewardPoints int       `json:"reward_points_earned"`
}

type StationQueries interface {
	ListStations(ctx context.Context, branchID string) ([]*StationView, error)
	ListAvailable(ctx context.Context, branchID string) ([]*StationView, error)
	ListLiveSessions(ctx context.Context, branchID string) ([]*LiveSessionView, error)
}

type StationReader interface {
	ListByBranch(ctx context.Context, branchID string) ([]*station.Station, error)
}

type LiveSessionReader interface {
	ListLiveByBranch(ctx context.Context, branchID string) ([]*session.Session, error)
}

type stationQueriesImpl struct {
	stations StationReader
	sessions LiveSessionReader
	logger   *slog.Logger
}

func NewStationQueries(stations StationReader, sessions LiveSessionReader, logger *slog.Logger) StationQueries {
	return &stationQueriesImpl{stations: stations, sessions: sessions, logger: logger}
}

// ListStations joins the station flags with the live sessions and resolves
// disagreements in the sessions' favour: a station flagged open with a live
// session is not available, a station flagged busy with no live session is.
// Only the unavailable flag (maintenance) is trusted on its own.
func (q *stationQueriesImpl) ListStations(ctx context.Context, branchID string) ([]*StationView, error) {
	stations, err := q.stations.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	live, err := q.sessions.ListLiveByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}

	claimed := make(map[string]*session.Session, len(live))
	for _, s := range live {
		claimed[s.DeviceID()] = s
	}

	views := make([]*StationView, len(stations))
	for i, st := range stations {
		v := &StationView{ID: st.ID(), Name: st.Name(), Status: string(st.Status())}
		if sess, ok := claimed[st.ID()]; ok {
			v.LiveSessionID = sess.ID()
			v.Available = false
			if st.IsOpen() {
				q.logger.Warn("station flagged open but has a live session",
					"station_id", st.ID(), "session_id", sess.ID())
			}
		} else {
			v.Available = st.Status() != station.StatusUnavailable
			if !st.IsOpen() && v.Available {
				q.logger.Warn("station flagged busy but has no live session",
					"station_id", st.ID(), "status", st.Status())
			}
		}
		views[i] = v
	}
	return views, nil
}

func (q *stationQueriesImpl) ListAvailable(ctx context.Context, branchID string) ([]*StationView, error) {
	all, err := q.ListStations(ctx, branchID)
	if err != nil {
		return nil, err
	}
	available := make([]*StationView, 0, len(all))
	for _, v := range all {
		if v.Available {
			available = append(available, v)
		}
	}
	return available, nil
}

func (q *stationQueriesImpl) ListLiveSessions(ctx context.Context, branchID string) ([]*LiveSessionView, error) {
	live, err := q.sessions.ListLiveByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	stations, err := q.stations.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(stations))
	for _, st := range stations {
		names[st.ID()] = st.Name()
	}

	views := make([]*LiveSessionView, len(live))
	for i, s := range live {
		views[i] = &LiveSessionView{
			ID:           s.ID(),
			DeviceID:     s.DeviceID(),
			StationName:  names[s.DeviceID()],
			CustomerID:   s.CustomerID(),
			Players:      s.Players(),
			SessionIn:    s.SessionIn(),
			SessionOut:   s.SessionOut(),
			Hours:        s.DurationHours(),
			Status:       s.Status().String(),
			TotalAmount:  int64(s.TotalAmount()),
			RewardPoints: s.RewardPoints(),
		}
	}
	return views, nil
}
