package queries

import (
	"context"
	"time"

	"lounge-engine/internal/domain/game"
	"lounge-engine/internal/domain/session"
)

type RevenueSummary struct {
	From           time.Time `json:"from"`
	To             time.Time `json:"to"`
	SessionsClosed int       `json:"sessions_closed"`
	TotalRevenue   int64     `json:"total_revenue"`
	BilledHours    int       `json:"billed_hours"`
	ExtendedHours  int       `json:"extended_hours"`
	PointsIssued   int       `json:"points_issued"`
	UniquePlayers  int       `json:"unique_players"`
}

type GameView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PopularityScore int    `json:"popularity_score"`
}

type ReportQueries interface {
	Revenue(ctx context.Context, branchID string, from, to time.Time) (*RevenueSummary, error)
	PopularGames(ctx context.Context, branchID string, limit int) ([]*GameView, error)
}

type ClosedSessionReader interface {
	ListClosedBetween(ctx context.Context, branchID string, from, to time.Time) ([]*session.Session, error)
}

type GameReader interface {
	ListByBranch(ctx context.Context, branchID string) ([]game.Game, error)
}

type reportQueriesImpl struct {
	sessions ClosedSessionReader
	games    GameReader
}

func NewReportQueries(sessions ClosedSessionReader, games GameReader) ReportQueries {
	return &reportQueriesImpl{sessions: sessions, games: games}
}

// Revenue folds the closed sessions of a window into a dashboard summary.
// Amounts come straight off the session records; a rate change after the
// fact never moves historical revenue.
func (q *reportQueriesImpl) Revenue(ctx context.Context, branchID string, from, to time.Time) (*RevenueSummary, error) {
	closed, err := q.sessions.ListClosedBetween(ctx, branchID, from, to)
	if err != nil {
		return nil, err
	}

	summary := &RevenueSummary{From: from, To: to, SessionsClosed: len(closed)}
	customers := make(map[string]struct{})
	for _, s := range closed {
		summary.TotalRevenue += int64(s.TotalAmount())
		summary.BilledHours += s.DurationHours()
		summary.ExtendedHours += s.ExtendedHours()
		summary.PointsIssued += s.RewardPoints()
		customers[s.CustomerID()] = struct{}{}
	}
	summary.UniquePlayers = len(customers)
	return summary, nil
}

func (q *reportQueriesImpl) PopularGames(ctx context.Context, branchID string, limit int) ([]*GameView, error) {
	if limit <= 0 {
		limit = 10
	}
	games, err := q.games.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if len(games) > limit {
		games = games[:limit]
	}
	views := make([]*GameView, len(games))
	for i, g := range games {
		views[i] = &GameView{ID: g.ID, Name: g.Name, PopularityScore: g.PopularityScore}
	}
	return views, nil
}
