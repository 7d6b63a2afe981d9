package request

import "strings"

type StartSessionRequest struct {
	DeviceID      string   `json:"device_id" binding:"required"`
	CustomerID    string   `json:"customer_id"`
	CustomerName  string   `json:"customer_name"`
	CustomerPhone string   `json:"customer_phone"`
	NoOfPlayers   int      `json:"no_of_players" binding:"required,min=1"`
	DurationHours int      `json:"duration_hours" binding:"required,min=1"`
	Games         []string `json:"games"`
}

// HasCustomer reports whether the request identifies a customer at all,
// either by id or by the name/phone pair used for walk-ins.
func (r StartSessionRequest) HasCustomer() bool {
	if strings.TrimSpace(r.CustomerID) != "" {
		return true
	}
	return strings.TrimSpace(r.CustomerName) != "" && strings.TrimSpace(r.CustomerPhone) != ""
}

type ExtendSessionRequest struct {
	ExtraHours   int `json:"extra_hours" binding:"required,min=1"`
	ExtraPlayers int `json:"extra_players" binding:"omitempty,min=0"`
}

type CloseSessionRequest struct {
	RedeemPoints int `json:"redeem_points" binding:"omitempty,min=0"`
}

type QuoteRequest struct {
	NoOfPlayers   int `form:"no_of_players" binding:"required,min=1"`
	DurationHours int `form:"duration_hours" binding:"required,min=1"`
}
