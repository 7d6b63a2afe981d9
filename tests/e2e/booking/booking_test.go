//go:build e2e

package booking_test

import (
	"net/http"
	"testing"

	"lounge-engine/internal/domain/station"
	"lounge-engine/internal/handler/dto/request"
	"lounge-engine/internal/handler/dto/response"
	"lounge-engine/tests/common/authtest"
	"lounge-engine/tests/common/builder"
	"lounge-engine/tests/common/httptest"
	"lounge-engine/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	sessionsURL = "/api/sessions"
	stationsURL = "/api/stations"
	quoteURL    = "/api/quote"
)

// newBranchID scopes each subtest to its own branch so store-wide uniqueness
// (device claims, request keys) never bleeds between tests sharing one
// container.
func newBranchID() string {
	return "branch-" + uuid.NewString()[:8]
}

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) staffToken(t *testing.T, branchID string) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, "staff-e2e", "staff", branchID)
}

// =============================================================================
// TestSessionLifecycle - book, extend and close over HTTP
// =============================================================================

func (s *BookingSuite) TestSessionLifecycle() {
	s.Run("Normal case: full start-extend-close flow settles and frees the station", func() {
		t := s.T()

		branchID := newBranchID()
		e2e.SeedPricing(t, s.Store, branchID)
		stationID := e2e.SeedStation(t, s.Store, branchID, "PS5-01", string(station.StatusOpen))
		token := s.staffToken(t, branchID)

		startReq := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.DeviceID = stationID
		}).BuildDTO()

		// Start: 2 players x 3h at the multi rate of 80.
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL, startReq, token)
		require.Equal(t, http.StatusCreated, w.Code, "Start failed: %s", w.Body.String())

		var started response.SessionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &started))
		require.NotEmpty(t, started.ID)
		require.Equal(t, int64(480), started.TotalAmount)
		require.Equal(t, "occupied", started.Status)

		// The station is now out of the available pool.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, stationsURL+"?available=true", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var available []response.StationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &available))
		require.Empty(t, available, "Busy station must not be listed as available")

		// Extend by 1h: still 2 players, so 80 an hour.
		extendReq := request.ExtendSessionRequest{ExtraHours: 1}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL+"/"+started.ID+"/extend", extendReq, token)
		require.Equal(t, http.StatusOK, w.Code, "Extend failed: %s", w.Body.String())

		var extended response.ExtendSessionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &extended))
		require.Equal(t, int64(160), extended.Charge)
		require.Equal(t, int64(640), extended.Session.TotalAmount)
		require.Equal(t, 1, extended.Session.ExtendedHours)

		// Close: full amount due, station released.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL+"/"+started.ID+"/close", nil, token)
		require.Equal(t, http.StatusOK, w.Code, "Close failed: %s", w.Body.String())

		var closed response.CloseSessionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &closed))
		require.Equal(t, int64(640), closed.AmountDue)
		require.Equal(t, "closed", closed.Session.Status)
		require.True(t, closed.StationReleased)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, stationsURL+"?available=true", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		available = nil
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &available))
		require.Len(t, available, 1, "Closed session must free the station")
	})

	s.Run("Normal case: closing with redeem deducts points from the bill", func() {
		t := s.T()

		branchID := newBranchID()
		e2e.SeedPricing(t, s.Store, branchID)
		stationID := e2e.SeedStation(t, s.Store, branchID, "PS5-02", string(station.StatusOpen))
		customerID := e2e.SeedCustomer(t, s.Store, branchID, "Regular", "0300-9999999", 200)
		token := s.staffToken(t, branchID)

		startReq := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.DeviceID = stationID
			b.CustomerName = ""
			b.CustomerPhone = ""
		}).BuildDTO()
		startReq.CustomerID = customerID

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL, startReq, token)
		require.Equal(t, http.StatusCreated, w.Code, "Start failed: %s", w.Body.String())
		var started response.SessionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &started))

		// 100 points at a conversion of 10 knock 10 off the 480 bill.
		closeReq := request.CloseSessionRequest{RedeemPoints: 100}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL+"/"+started.ID+"/close", closeReq, token)
		require.Equal(t, http.StatusOK, w.Code, "Close failed: %s", w.Body.String())

		var closed response.CloseSessionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &closed))
		require.Equal(t, int64(10), closed.RedeemedValue)
		require.Equal(t, int64(470), closed.AmountDue)
	})
}

// =============================================================================
// TestBookingConflicts - the store's unique index arbitrates races
// =============================================================================

func (s *BookingSuite) TestBookingConflicts() {
	s.Run("Error case: second booking for a busy station returns 409", func() {
		t := s.T()

		branchID := newBranchID()
		e2e.SeedPricing(t, s.Store, branchID)
		stationID := e2e.SeedStation(t, s.Store, branchID, "PS5-01", string(station.StatusOpen))
		token := s.staffToken(t, branchID)

		startReq := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.DeviceID = stationID
		}).BuildDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL, startReq, token)
		require.Equal(t, http.StatusCreated, w.Code, "First booking failed: %s", w.Body.String())

		secondReq := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.DeviceID = stationID
			b.CustomerName = "Second Customer"
			b.CustomerPhone = "0300-7777777"
		}).BuildDTO()

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL, secondReq, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("Normal case: replaying an Idempotency-Key returns the original session", func() {
		t := s.T()

		branchID := newBranchID()
		e2e.SeedPricing(t, s.Store, branchID)
		stationID := e2e.SeedStation(t, s.Store, branchID, "PS5-01", string(station.StatusOpen))
		token := s.staffToken(t, branchID)

		startReq := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
			b.DeviceID = stationID
		}).BuildDTO()
		headers := map[string]string{"Idempotency-Key": "booking-key-1"}

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, sessionsURL, startReq, token, headers)
		require.Equal(t, http.StatusCreated, w.Code, "First booking failed: %s", w.Body.String())
		var first response.SessionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &first))

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, sessionsURL, startReq, token, headers)
		require.Equal(t, http.StatusOK, w.Code, "Replay must not be treated as a new booking: %s", w.Body.String())
		var replayed response.SessionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &replayed))
		require.Equal(t, first.ID, replayed.ID)
		require.True(t, replayed.Replayed)
	})
}

// =============================================================================
// TestQuoteAndAuth
// =============================================================================

func (s *BookingSuite) TestQuoteAndAuth() {
	s.Run("Normal case: quote prices without touching any session", func() {
		t := s.T()

		branchID := newBranchID()
		e2e.SeedPricing(t, s.Store, branchID)
		token := s.staffToken(t, branchID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			quoteURL+"?no_of_players=2&duration_hours=3", nil, token)
		require.Equal(t, http.StatusOK, w.Code, "Quote failed: %s", w.Body.String())

		var quote response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &quote))
		require.Equal(t, int64(480), quote.TotalAmount)
		require.Equal(t, 48, quote.EarnablePoints)
	})

	s.Run("Error case: requests without a token are rejected", func() {
		t := s.T()

		startReq := builder.NewSessionBuilder().BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL, startReq, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: expired tokens are rejected", func() {
		t := s.T()

		token := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, "staff-e2e", "staff", newBranchID())
		startReq := builder.NewSessionBuilder().BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL, startReq, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
