package response

import (
	"time"

	"lounge-engine/internal/usecase/queries"
)

type StationResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	Available     bool   `json:"available"`
	LiveSessionID string `json:"liveSessionId,omitempty"`
}

type QuoteResponse struct {
	NoOfPlayers    int   `json:"noOfPlayers"`
	DurationHours  int   `json:"durationHours"`
	HourlyRate     int64 `json:"hourlyRate"`
	TotalAmount    int64 `json:"totalAmount"`
	EarnablePoints int   `json:"earnablePoints"`
}

type RevenueSummaryResponse struct {
	From           time.Time `json:"from"`
	To             time.Time `json:"to"`
	SessionsClosed int       `json:"sessionsClosed"`
	TotalRevenue   int64     `json:"totalRevenue"`
	BilledHours    int       `json:"billedHours"`
	ExtendedHours  int       `json:"extendedHours"`
	PointsIssued   int       `json:"pointsIssued"`
	UniquePlayers  int       `json:"uniquePlayers"`
}

type GameResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PopularityScore int    `json:"popularityScore"`
}

func FromStationView(v *queries.StationView) *StationResponse {
	return &StationResponse{
		ID:            v.ID,
		Name:          v.Name,
		Status:        v.Status,
		Available:     v.Available,
		LiveSessionID: v.LiveSessionID,
	}
}

func FromQuoteView(v *queries.QuoteView) QuoteResponse {
	return QuoteResponse{
		NoOfPlayers:    v.Players,
		DurationHours:  v.Hours,
		HourlyRate:     v.HourlyRate,
		TotalAmount:    v.Total,
		EarnablePoints: v.EarnablePoints,
	}
}

func FromRevenueSummary(s *queries.RevenueSummary) RevenueSummaryResponse {
	return RevenueSummaryResponse{
		From:           s.From,
		To:             s.To,
		SessionsClosed: s.SessionsClosed,
		TotalRevenue:   s.TotalRevenue,
		BilledHours:    s.BilledHours,
		ExtendedHours:  s.ExtendedHours,
		PointsIssued:   s.PointsIssued,
		UniquePlayers:  s.UniquePlayers,
	}
}

func FromGameView(v *queries.GameView) *GameResponse {
	return &GameResponse{
		ID:              v.ID,
		Name:            v.Name,
		PopularityScore: v.PopularityScore,
	}
}
