//go:build unit

package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lounge-engine/internal/handler/api"
	"lounge-engine/internal/usecase/queries"
	queriesmock "lounge-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockReports *queriesmock.MockReportQueries
	handler     *api.ReportHandler
}

func (s *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReports = queriesmock.NewMockReportQueries(s.mockCtrl)
	s.handler = api.NewReportHandler(s.mockReports)

	authMiddleware := func(c *gin.Context) {
		c.Set("staff_id", "staff1")
		c.Set("branch_id", "b1")
		c.Next()
	}

	s.router.GET("/reports/revenue", authMiddleware, s.handler.Revenue)
	s.router.GET("/reports/games", authMiddleware, s.handler.PopularGames)
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *ReportHandlerTestSuite) TestRevenue_Success() {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	s.mockReports.EXPECT().
		Revenue(gomock.Any(), "b1", from, to).
		Return(&queries.RevenueSummary{
			From:           from,
			To:             to,
			SessionsClosed: 3,
			TotalRevenue:   1540,
			BilledHours:    8,
			ExtendedHours:  1,
			PointsIssued:   154,
			UniquePlayers:  2,
		}, nil)

	rec := s.get("/reports/revenue?from=2025-06-01T00:00:00Z&to=2025-07-01T00:00:00Z")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"totalRevenue":1540`)
	s.Contains(rec.Body.String(), `"sessionsClosed":3`)
}

func (s *ReportHandlerTestSuite) TestRevenue_InvalidWindow() {
	rec := s.get("/reports/revenue?from=2025-07-01T00:00:00Z&to=2025-06-01T00:00:00Z")
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.get("/reports/revenue?from=not-a-date&to=2025-07-01T00:00:00Z")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ReportHandlerTestSuite) TestPopularGames_UsesLimit() {
	s.mockReports.EXPECT().
		PopularGames(gomock.Any(), "b1", 2).
		Return([]*queries.GameView{
			{ID: "g1", Name: "FIFA", PopularityScore: 12},
			{ID: "g2", Name: "Tekken", PopularityScore: 9},
		}, nil)

	rec := s.get("/reports/games?limit=2")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"name":"FIFA"`)
}

func (s *ReportHandlerTestSuite) TestPopularGames_RejectsBadLimit() {
	rec := s.get("/reports/games?limit=zero")
	s.Equal(http.StatusBadRequest, rec.Code)
}
