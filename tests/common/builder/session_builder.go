//go:build unit || e2e

package builder

import (
	reqdto "lounge-engine/internal/handler/dto/request"
)

type SessionBuilder struct {
	DeviceID      string
	CustomerName  string
	CustomerPhone string
	NoOfPlayers   int
	DurationHours int
	Games         []string
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		DeviceID:      "PS5-01",
		CustomerName:  "Walk-in Customer",
		CustomerPhone: "0300-1234567",
		NoOfPlayers:   2,
		DurationHours: 3,
		Games:         []string{},
	}
}

func (s *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(s)
	return s
}

func (s *SessionBuilder) BuildDTO() reqdto.StartSessionRequest {
	return reqdto.StartSessionRequest{
		DeviceID:      s.DeviceID,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		NoOfPlayers:   s.NoOfPlayers,
		DurationHours: s.DurationHours,
		Games:         s.Games,
	}
}
