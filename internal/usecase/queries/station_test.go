//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lounge-engine/internal/domain/game"
	"lounge-engine/internal/domain/pricing"
	"lounge-engine/internal/domain/session"
	"lounge-engine/internal/domain/station"
	"lounge-engine/internal/pkg/errs"
	"lounge-engine/internal/usecase/queries"
	queriesmock "lounge-engine/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StationQueriesTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	stations *queriesmock.MockStationReader
	sessions *queriesmock.MockLiveSessionReader
	queries  queries.StationQueries
}

func (s *StationQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.stations = queriesmock.NewMockStationReader(s.ctrl)
	s.sessions = queriesmock.NewMockLiveSessionReader(s.ctrl)
	s.queries = queries.NewStationQueries(s.stations, s.sessions,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *StationQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStationQueriesSuite(t *testing.T) {
	suite.Run(t, new(StationQueriesTestSuite))
}

func occupiedSession(id, deviceID string) *session.Session {
	in := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	return session.Reconstruct(id, deviceID, "cust1", "staff1", "b1", nil,
		2, in, in.Add(2*time.Hour), 2, 0, 320, session.StatusOccupied, 32)
}

func (s *StationQueriesTestSuite) TestListStations_SessionTruthWins() {
	ctx := context.Background()
	all := []*station.Station{
		station.Reconstruct("dev1", "PS5 Bay 1", "b1", station.StatusOpen),
		// Flag says open, but a live session claims it
		station.Reconstruct("dev2", "PS5 Bay 2", "b1", station.StatusOpen),
		// Flag says occupied, but nothing live references it
		station.Reconstruct("dev3", "Xbox Bay 1", "b1", station.StatusOccupied),
		station.Reconstruct("dev4", "Sim Rig", "b1", station.StatusUnavailable),
	}
	s.stations.EXPECT().ListByBranch(ctx, "b1").Return(all, nil)
	s.sessions.EXPECT().ListLiveByBranch(ctx, "b1").
		Return([]*session.Session{occupiedSession("sess2", "dev2")}, nil)

	views, err := s.queries.ListStations(ctx, "b1")

	s.Require().NoError(err)
	s.Require().Len(views, 4)

	byID := make(map[string]*queries.StationView, len(views))
	for _, v := range views {
		byID[v.ID] = v
	}
	s.True(byID["dev1"].Available)
	s.False(byID["dev2"].Available)
	s.Equal("sess2", byID["dev2"].LiveSessionID)
	s.True(byID["dev3"].Available, "stale busy flag must not hide a free station")
	s.False(byID["dev4"].Available, "maintenance flag is trusted as-is")
}

func (s *StationQueriesTestSuite) TestListAvailable_FiltersUnavailable() {
	ctx := context.Background()
	all := []*station.Station{
		station.Reconstruct("dev1", "PS5 Bay 1", "b1", station.StatusOpen),
		station.Reconstruct("dev2", "PS5 Bay 2", "b1", station.StatusOpen),
	}
	s.stations.EXPECT().ListByBranch(ctx, "b1").Return(all, nil)
	s.sessions.EXPECT().ListLiveByBranch(ctx, "b1").
		Return([]*session.Session{occupiedSession("sess1", "dev1")}, nil)

	views, err := s.queries.ListAvailable(ctx, "b1")

	s.Require().NoError(err)
	s.Require().Len(views, 1)
	s.Equal("dev2", views[0].ID)
}

func (s *StationQueriesTestSuite) TestListLiveSessions_JoinsStationNames() {
	ctx := context.Background()
	s.sessions.EXPECT().ListLiveByBranch(ctx, "b1").
		Return([]*session.Session{occupiedSession("sess1", "dev1")}, nil)
	s.stations.EXPECT().ListByBranch(ctx, "b1").
		Return([]*station.Station{station.Reconstruct("dev1", "PS5 Bay 1", "b1", station.StatusOccupied)}, nil)

	views, err := s.queries.ListLiveSessions(ctx, "b1")

	s.Require().NoError(err)
	s.Require().Len(views, 1)
	s.Equal("PS5 Bay 1", views[0].StationName)
	s.Equal(int64(320), views[0].TotalAmount)
	s.Equal("occupied", views[0].Status)
}

// ================================================================================
// Quote
// ================================================================================

func TestQuoteQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	table := pricing.Table{
		BranchID: "b1", SinglePlayer: 100, MultiPlayer: 80, OverThreePlayer: 60,
		CreditRate: 0.1, RupeeConversion: 10,
	}
	pricingRepo := queriesmock.NewMockPricingReader(ctrl)
	q := queries.NewQuoteQueries(pricingRepo)
	ctx := context.Background()

	t.Run("quotes band pricing without writes", func(t *testing.T) {
		pricingRepo.EXPECT().FindByBranch(ctx, "b1").Return(table, nil)

		view, err := q.Quote(ctx, "b1", 2, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Total != 480 || view.HourlyRate != 160 || view.EarnablePoints != 48 {
			t.Errorf("got total=%d rate=%d points=%d", view.Total, view.HourlyRate, view.EarnablePoints)
		}
	})

	t.Run("rejects zero players", func(t *testing.T) {
		if _, err := q.Quote(ctx, "b1", 0, 2); err != errs.ErrInvalidPlayerCount {
			t.Errorf("expected invalid player error, got %v", err)
		}
	})
}

// ================================================================================
// Reports
// ================================================================================

func TestReportQueries_Revenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := queriesmock.NewMockClosedSessionReader(ctrl)
	games := queriesmock.NewMockGameReader(ctrl)
	q := queries.NewReportQueries(sessions, games)
	ctx := context.Background()

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	in := from.Add(14 * time.Hour)
	closed := []*session.Session{
		session.Reconstruct("s1", "dev1", "cust1", "staff1", "b1", nil,
			2, in, in.Add(3*time.Hour), 3, 0, 480, session.StatusClosed, 48),
		session.Reconstruct("s2", "dev2", "cust2", "staff1", "b1", nil,
			4, in, in.Add(4*time.Hour), 4, 1, 960, session.StatusClosed, 96),
		session.Reconstruct("s3", "dev1", "cust1", "staff1", "b1", nil,
			1, in, in.Add(time.Hour), 1, 0, 100, session.StatusClosed, 10),
	}
	sessions.EXPECT().ListClosedBetween(ctx, "b1", from, to).Return(closed, nil)

	summary, err := q.Revenue(ctx, "b1", from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.SessionsClosed != 3 {
		t.Errorf("sessions closed = %d", summary.SessionsClosed)
	}
	if summary.TotalRevenue != 1540 {
		t.Errorf("total revenue = %d", summary.TotalRevenue)
	}
	if summary.BilledHours != 8 || summary.ExtendedHours != 1 {
		t.Errorf("hours = %d/%d", summary.BilledHours, summary.ExtendedHours)
	}
	if summary.PointsIssued != 154 {
		t.Errorf("points issued = %d", summary.PointsIssued)
	}
	if summary.UniquePlayers != 2 {
		t.Errorf("unique players = %d", summary.UniquePlayers)
	}
}

func TestReportQueries_PopularGames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := queriesmock.NewMockClosedSessionReader(ctrl)
	gamesRepo := queriesmock.NewMockGameReader(ctrl)
	q := queries.NewReportQueries(sessions, gamesRepo)
	ctx := context.Background()

	gamesRepo.EXPECT().ListByBranch(ctx, "b1").Return([]game.Game{
		{ID: "g1", Name: "FIFA 25", PopularityScore: 40},
		{ID: "g2", Name: "Tekken 8", PopularityScore: 25},
		{ID: "g3", Name: "GT7", PopularityScore: 5},
	}, nil)

	views, err := q.PopularGames(ctx, "b1", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 2 || views[0].Name != "FIFA 25" {
		t.Errorf("unexpected views: %+v", views)
	}
}
