package pricing

import "errors"

var (
	ErrInvalidPlayers = errors.New("player count must be at least 1")
	ErrInvalidHours   = errors.New("hours must be at least 1")
	ErrNoRates        = errors.New("pricing table has no rates")
)

// Amount is a whole-rupee amount. The lounge bills in whole rupees; there is
// no sub-unit anywhere in the pricing records.
type Amount int64

// Table is the per-branch rate card. Exactly one active table per branch is
// consulted at calculation time; a rate change never touches amounts already
// stored on sessions.
type Table struct {
	ID              string
	BranchID        string
	SinglePlayer    Amount
	MultiPlayer     Amount
	OverThreePlayer Amount
	CreditRate      float64
	RupeeConversion float64
	RedeemMinPoints int
	RedeemMaxRate   float64
}

func (t Table) Validate() error {
	if t.SinglePlayer <= 0 && t.MultiPlayer <= 0 && t.OverThreePlayer <= 0 {
		return ErrNoRates
	}
	return nil
}
