//go:build unit

package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lounge-engine/internal/handler/api"
	"lounge-engine/internal/pkg/errs"
	"lounge-engine/internal/usecase/queries"
	queriesmock "lounge-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockStations *queriesmock.MockStationQueries
	mockQuotes   *queriesmock.MockQuoteQueries
	handler      *api.StationHandler
}

func (s *StationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockStations = queriesmock.NewMockStationQueries(s.mockCtrl)
	s.mockQuotes = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.handler = api.NewStationHandler(s.mockStations, s.mockQuotes)

	authMiddleware := func(c *gin.Context) {
		c.Set("staff_id", "staff1")
		c.Set("branch_id", "b1")
		c.Next()
	}

	s.router.GET("/stations", authMiddleware, s.handler.List)
	s.router.GET("/quote", authMiddleware, s.handler.Quote)
}

func (s *StationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStationHandlerSuite(t *testing.T) {
	suite.Run(t, new(StationHandlerTestSuite))
}

func (s *StationHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *StationHandlerTestSuite) TestList_AllStations() {
	s.mockStations.EXPECT().ListStations(gomock.Any(), "b1").Return([]*queries.StationView{
		{ID: "dev1", Name: "PS5 Bay 1", Status: "open", Available: true},
		{ID: "dev2", Name: "PS5 Bay 2", Status: "occupied", Available: false, LiveSessionID: "sess1"},
	}, nil)

	rec := s.get("/stations")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"liveSessionId":"sess1"`)
}

func (s *StationHandlerTestSuite) TestList_AvailableOnly() {
	s.mockStations.EXPECT().ListAvailable(gomock.Any(), "b1").Return([]*queries.StationView{
		{ID: "dev1", Name: "PS5 Bay 1", Status: "open", Available: true},
	}, nil)

	rec := s.get("/stations?available=true")

	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "dev2")
}

func (s *StationHandlerTestSuite) TestList_StoreUnavailable() {
	s.mockStations.EXPECT().ListStations(gomock.Any(), "b1").
		Return(nil, errs.ErrStoreUnavailable)

	rec := s.get("/stations")

	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *StationHandlerTestSuite) TestQuote_Success() {
	s.mockQuotes.EXPECT().Quote(gomock.Any(), "b1", 2, 3).Return(&queries.QuoteView{
		Players: 2, Hours: 3, HourlyRate: 160, Total: 480, EarnablePoints: 48,
	}, nil)

	rec := s.get("/quote?no_of_players=2&duration_hours=3")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"totalAmount":480`)
}

func (s *StationHandlerTestSuite) TestQuote_MissingParams() {
	rec := s.get("/quote?no_of_players=2")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *StationHandlerTestSuite) TestQuote_PricingMissing() {
	s.mockQuotes.EXPECT().Quote(gomock.Any(), "b1", 2, 3).
		Return(nil, errs.ErrPricingNotFound)

	rec := s.get("/quote?no_of_players=2&duration_hours=3")

	s.Equal(http.StatusNotFound, rec.Code)
}
