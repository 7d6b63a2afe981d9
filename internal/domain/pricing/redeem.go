package pricing

import (
	"errors"
	"math"
)

var (
	ErrRedeemBelowMinimum = errors.New("points below redeem minimum")
	ErrRedeemOverLimit    = errors.New("redeem value exceeds allowed share of the bill")
	ErrRedeemNotEnabled   = errors.New("redemption not configured for this branch")
)

// RedeemValue converts loyalty points into a rupee discount against a bill.
// RupeeConversion is points-per-rupee; RedeemMaxRate caps the discount as a
// fraction of the billed total. The discount reduces the amount due at the
// counter, never the stored session total.
func RedeemValue(points int, billTotal Amount, t Table) (Amount, error) {
	if t.RupeeConversion <= 0 {
		return 0, ErrRedeemNotEnabled
	}
	if points < t.RedeemMinPoints {
		return 0, ErrRedeemBelowMinimum
	}

	value := Amount(math.Floor(float64(points) / t.RupeeConversion))
	if t.RedeemMaxRate > 0 {
		cap := Amount(math.Floor(float64(billTotal) * t.RedeemMaxRate))
		if value > cap {
			return 0, ErrRedeemOverLimit
		}
	}
	if value > billTotal {
		value = billTotal
	}
	return value, nil
}
