//go:build unit

package pricing_test

import (
	"testing"

	"lounge-engine/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() pricing.Table {
	return pricing.Table{
		ID:              "price1",
		BranchID:        "branch1",
		SinglePlayer:    100,
		MultiPlayer:     80,
		OverThreePlayer: 60,
		CreditRate:      0.1,
		RupeeConversion: 10,
		RedeemMinPoints: 50,
		RedeemMaxRate:   0.5,
	}
}

func TestQuote(t *testing.T) {
	table := testTable()

	t.Run("band formulas", func(t *testing.T) {
		cases := []struct {
			name    string
			players int
			hours   int
			want    pricing.Amount
		}{
			{name: "single player flat rate", players: 1, hours: 2, want: 200},
			{name: "two players per-player rate", players: 2, hours: 2, want: 320},
			{name: "three players per-player rate", players: 3, hours: 2, want: 480},
			{name: "four players over-three rate", players: 4, hours: 1, want: 240},
			{name: "six players over-three rate", players: 6, hours: 3, want: 1080},
			{name: "one hour single", players: 1, hours: 1, want: 100},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, err := pricing.Quote(tc.players, tc.hours, table)
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			})
		}
	})

	t.Run("validation", func(t *testing.T) {
		_, err := pricing.Quote(0, 1, table)
		assert.ErrorIs(t, err, pricing.ErrInvalidPlayers)

		_, err = pricing.Quote(1, 0, table)
		assert.ErrorIs(t, err, pricing.ErrInvalidHours)

		_, err = pricing.Quote(-2, -1, table)
		assert.ErrorIs(t, err, pricing.ErrInvalidPlayers)
	})

	t.Run("monotone in players and hours", func(t *testing.T) {
		for p := 1; p <= 8; p++ {
			for h := 1; h <= 6; h++ {
				base, err := pricing.Quote(p, h, table)
				require.NoError(t, err)

				morePlayers, err := pricing.Quote(p+1, h, table)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, morePlayers, base, "players %d->%d hours %d", p, p+1, h)

				moreHours, err := pricing.Quote(p, h+1, table)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, moreHours, base, "players %d hours %d->%d", p, h, h+1)
			}
		}
	})
}

func TestExtensionCharge(t *testing.T) {
	table := testTable()

	t.Run("rate follows new total player count", func(t *testing.T) {
		// 3 players extended by 1 hour with 1 extra player: 1h at the 4-player rate
		charge, err := pricing.ExtensionCharge(4, 1, table)
		require.NoError(t, err)
		assert.Equal(t, pricing.Amount(240), charge)
	})

	t.Run("no extra players keeps current band", func(t *testing.T) {
		charge, err := pricing.ExtensionCharge(1, 2, table)
		require.NoError(t, err)
		assert.Equal(t, pricing.Amount(200), charge)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := pricing.ExtensionCharge(0, 1, table)
		assert.ErrorIs(t, err, pricing.ErrInvalidPlayers)

		_, err = pricing.ExtensionCharge(2, 0, table)
		assert.ErrorIs(t, err, pricing.ErrInvalidHours)
	})
}

func TestRewardPoints(t *testing.T) {
	table := testTable()

	assert.Equal(t, 20, pricing.RewardPoints(200, table))
	assert.Equal(t, 72, pricing.RewardPoints(720, table))
	assert.Equal(t, 0, pricing.RewardPoints(0, table))

	// rounding, not truncation
	odd := table
	odd.CreditRate = 0.015
	assert.Equal(t, 2, pricing.RewardPoints(100, odd))
}

func TestRedeemValue(t *testing.T) {
	table := testTable()

	t.Run("converts points at points-per-rupee", func(t *testing.T) {
		value, err := pricing.RedeemValue(100, 500, table)
		require.NoError(t, err)
		assert.Equal(t, pricing.Amount(10), value)
	})

	t.Run("below minimum rejected", func(t *testing.T) {
		_, err := pricing.RedeemValue(49, 500, table)
		assert.ErrorIs(t, err, pricing.ErrRedeemBelowMinimum)
	})

	t.Run("over the bill-share cap rejected", func(t *testing.T) {
		_, err := pricing.RedeemValue(5000, 500, table)
		assert.ErrorIs(t, err, pricing.ErrRedeemOverLimit)
	})

	t.Run("redemption disabled", func(t *testing.T) {
		disabled := table
		disabled.RupeeConversion = 0
		_, err := pricing.RedeemValue(100, 500, disabled)
		assert.ErrorIs(t, err, pricing.ErrRedeemNotEnabled)
	})
}
