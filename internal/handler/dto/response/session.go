package response

import (
	"time"

	"lounge-engine/internal/domain/session"
	"lounge-engine/internal/usecase/commands"
	"lounge-engine/internal/usecase/queries"
)

type SessionResponse struct {
	ID            string    `json:"id"`
	DeviceID      string    `json:"deviceId"`
	CustomerID    string    `json:"customerId"`
	Games         []string  `json:"games,omitempty"`
	NoOfPlayers   int       `json:"noOfPlayers"`
	SessionIn     time.Time `json:"sessionIn"`
	SessionOut    time.Time `json:"sessionOut"`
	DurationHours int       `json:"durationHours"`
	ExtendedHours int       `json:"extendedHours"`
	TotalAmount   int64     `json:"totalAmount"`
	Status        string    `json:"status"`
	RewardPoints  int       `json:"rewardPoints"`
	Replayed      bool      `json:"replayed,omitempty"`
}

type ExtendSessionResponse struct {
	Session SessionResponse `json:"session"`
	Charge  int64           `json:"charge"`
}

type CloseSessionResponse struct {
	Session         SessionResponse `json:"session"`
	AmountDue       int64           `json:"amountDue"`
	RedeemedValue   int64           `json:"redeemedValue"`
	ActualHours     float64         `json:"actualHours"`
	StationReleased bool            `json:"stationReleased"`
}

type LiveSessionResponse struct {
	ID           string    `json:"id"`
	DeviceID     string    `json:"deviceId"`
	StationName  string    `json:"stationName"`
	CustomerID   string    `json:"customerId"`
	NoOfPlayers  int       `json:"noOfPlayers"`
	SessionIn    time.Time `json:"sessionIn"`
	SessionOut   time.Time `json:"sessionOut"`
	Hours        int       `json:"durationHours"`
	Status       string    `json:"status"`
	TotalAmount  int64     `json:"totalAmount"`
	RewardPoints int       `json:"rewardPoints"`
}

func FromSession(s *session.Session) SessionResponse {
	return SessionResponse{
		ID:            s.ID(),
		DeviceID:      s.DeviceID(),
		CustomerID:    s.CustomerID(),
		Games:         s.GameIDs(),
		NoOfPlayers:   s.Players(),
		SessionIn:     s.SessionIn(),
		SessionOut:    s.SessionOut(),
		DurationHours: s.DurationHours(),
		ExtendedHours: s.ExtendedHours(),
		TotalAmount:   int64(s.TotalAmount()),
		Status:        s.Status().String(),
		RewardPoints:  s.RewardPoints(),
	}
}

func FromStartResult(r *commands.StartSessionResult) SessionResponse {
	resp := FromSession(r.Session)
	resp.Replayed = r.IsReplayed
	return resp
}

func FromExtendResult(r *commands.ExtendSessionResult) ExtendSessionResponse {
	return ExtendSessionResponse{
		Session: FromSession(r.Session),
		Charge:  int64(r.Charge),
	}
}

func FromCloseResult(r *commands.CloseSessionResult) CloseSessionResponse {
	return CloseSessionResponse{
		Session:         FromSession(r.Session),
		AmountDue:       int64(r.AmountDue),
		RedeemedValue:   int64(r.RedeemedValue),
		ActualHours:     r.ActualHours,
		StationReleased: r.StationReleased,
	}
}

func FromLiveSessionView(v *queries.LiveSessionView) *LiveSessionResponse {
	return &LiveSessionResponse{
		ID:           v.ID,
		DeviceID:     v.DeviceID,
		StationName:  v.StationName,
		CustomerID:   v.CustomerID,
		NoOfPlayers:  v.Players,
		SessionIn:    v.SessionIn,
		SessionOut:   v.SessionOut,
		Hours:        v.Hours,
		Status:       v.Status,
		TotalAmount:  v.TotalAmount,
		RewardPoints: v.RewardPoints,
	}
}
