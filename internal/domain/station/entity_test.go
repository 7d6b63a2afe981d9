//go:build unit

package station_test

import (
	"testing"

	"lounge-engine/internal/domain/station"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook(t *testing.T) {
	cases := []struct {
		name  string
		from  station.Status
		errIs error
	}{
		{name: "open station books", from: station.StatusOpen},
		{name: "stale booked flag re-claims", from: station.StatusBooked},
		{name: "stale occupied flag re-claims", from: station.StatusOccupied},
		{name: "unavailable station refuses", from: station.StatusUnavailable, errIs: station.ErrNotOpen},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := station.Reconstruct("dev1", "PS5 Station 1", "branch1", tc.from)
			err := st.Book()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.from, st.Status(), "failed booking must not move the station")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, station.StatusBooked, st.Status())
		})
	}
}

func TestRelease(t *testing.T) {
	st := station.Reconstruct("dev1", "PS5 Station 1", "branch1", station.StatusBooked)
	st.Release()
	assert.True(t, st.IsOpen())
}
