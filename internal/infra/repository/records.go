package repository

import (
	"lounge-engine/internal/domain/customer"
	"lounge-engine/internal/domain/pricing"
	"lounge-engine/internal/domain/session"
	"lounge-engine/internal/domain/station"
	"lounge-engine/internal/infra"
	"lounge-engine/internal/infra/recordstore"
)

// Collection names in the record store.
const (
	CollectionInventory = "inventory"
	CollectionSessions  = "sessions"
	CollectionPricing   = "pricing"
	CollectionCustomers = "customers"
)

// Inventory item types, discriminated by the "type" field.
const (
	InventoryTypeDevice = "device"
	InventoryTypeGame   = "game"
	InventoryTypeSnack  = "snack"
)

type inventoryRecord struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	BranchID        string `json:"branch_id"`
	Status          string `json:"status"`
	PopularityScore int    `json:"popularity_score"`
}

func (r inventoryRecord) toStation() *station.Station {
	return station.Reconstruct(r.ID, r.Name, r.BranchID, station.Status(r.Status))
}

type sessionRecord struct {
	ID             string               `json:"id"`
	DeviceID       string               `json:"device_id"`
	ActiveDeviceID string               `json:"active_device_id,omitempty"`
	RequestKey     string               `json:"request_key,omitempty"`
	CustomerID     string               `json:"customer_id"`
	GameIDs        []string             `json:"games"`
	BranchID       string               `json:"branch_id"`
	UserID         string               `json:"user_id"`
	NoOfPlayers    int                  `json:"no_of_players"`
	SessionIn      recordstore.DateTime `json:"session_in"`
	SessionOut     recordstore.DateTime `json:"session_out"`
	DurationHours  int                  `json:"duration_hours"`
	ExtendedHours  int                  `json:"extended_duration"`
	TotalAmount    int64                `json:"total_amount"`
	Status         string               `json:"status"`
	RewardPoints   int                  `json:"reward_points_earned"`
	Created        recordstore.DateTime `json:"created"`
}

func (r sessionRecord) toDomain() *session.Session {
	return session.Reconstruct(
		r.ID, r.DeviceID, r.CustomerID, r.UserID, r.BranchID,
		r.GameIDs,
		r.NoOfPlayers,
		r.SessionIn.Time, r.SessionOut.Time,
		r.DurationHours, r.ExtendedHours,
		pricing.Amount(r.TotalAmount),
		session.Status(r.Status),
		r.RewardPoints,
	)
}

type pricingRecord struct {
	ID              string  `json:"id"`
	BranchID        string  `json:"branch_id"`
	SinglePlayer    int64   `json:"single_player"`
	MultiPlayer     int64   `json:"multi_player"`
	OverThreePlayer int64   `json:"over_three_player"`
	CreditRate      float64 `json:"credit_rate"`
	RupeeConversion float64 `json:"rupee_conversion"`
	RedeemMinPoints int     `json:"redeem_limit_min_points"`
	RedeemMaxRate   float64 `json:"redeem_limit_max_rate"`
}

func (r pricingRecord) toDomain() pricing.Table {
	return pricing.Table{
		ID:              r.ID,
		BranchID:        r.BranchID,
		SinglePlayer:    pricing.Amount(r.SinglePlayer),
		MultiPlayer:     pricing.Amount(r.MultiPlayer),
		OverThreePlayer: pricing.Amount(r.OverThreePlayer),
		CreditRate:      r.CreditRate,
		RupeeConversion: r.RupeeConversion,
		RedeemMinPoints: r.RedeemMinPoints,
		RedeemMaxRate:   r.RedeemMaxRate,
	}
}

type customerRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	BranchID string `json:"branch_id"`
	Points   int    `json:"reward_points"`
}

func (r customerRecord) toDomain() *customer.Customer {
	return customer.Reconstruct(r.ID, r.Name, r.Phone, r.BranchID, r.Points)
}

// wrapStoreErr translates the record store client's failures into repository
// error kinds the usecase layer switches on.
func wrapStoreErr(msg string, err error) error {
	switch {
	case recordstore.IsNotFound(err):
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	case recordstore.IsUniqueViolation(err):
		return infra.WrapRepoErr(msg, err, infra.KindConflict)
	case recordstore.IsUnavailable(err):
		return infra.WrapRepoErr(msg, err, infra.KindUnavailable)
	default:
		return infra.WrapRepoErr(msg, err)
	}
}
