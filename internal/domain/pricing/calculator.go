package pricing

import "math"

// Player bands are closed and non-overlapping: 1, 2-3, 4+.
//
// The 4+ band multiplies the per-player rate by the player count, same shape
// as the 2-3 band. The upstream screens disagreed with each other here (one
// billed 4+ flat); the per-player form is the one kept, see DESIGN.md.
func HourlyRate(players int, t Table) Amount {
	switch {
	case players <= 1:
		return t.SinglePlayer
	case players <= 3:
		return t.MultiPlayer * Amount(players)
	default:
		return t.OverThreePlayer * Amount(players)
	}
}

// Quote prices a fresh booking. Pure, no remote reads.
func Quote(players, hours int, t Table) (Amount, error) {
	if players < 1 {
		return 0, ErrInvalidPlayers
	}
	if hours < 1 {
		return 0, ErrInvalidHours
	}
	return HourlyRate(players, t) * Amount(hours), nil
}

// ExtensionCharge prices the added hours of an extension at the rate for the
// new total player count. Extensions are incremental: the charge covers
// extraHours only, hours already billed are never repriced.
func ExtensionCharge(newTotalPlayers, extraHours int, t Table) (Amount, error) {
	if newTotalPlayers < 1 {
		return 0, ErrInvalidPlayers
	}
	if extraHours < 1 {
		return 0, ErrInvalidHours
	}
	return HourlyRate(newTotalPlayers, t) * Amount(extraHours), nil
}

// RewardPoints derives loyalty points from an accumulated amount. Computed
// when the amount changes and stored on the session, never re-derived from
// the current table at read time.
func RewardPoints(total Amount, t Table) int {
	return int(math.Round(float64(total) * t.CreditRate))
}
