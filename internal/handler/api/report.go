package api

import (
	"net/http"
	"strconv"
	"time"

	resdto "lounge-engine/internal/handler/dto/response"
	"lounge-engine/internal/handler/middleware"
	"lounge-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reports queries.ReportQueries
}

func NewReportHandler(reports queries.ReportQueries) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// @Summary Revenue summary
// @Description Fold the branch's closed sessions of a window into revenue totals
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param from query string true "Window start (RFC3339)"
// @Param to query string true "Window end (RFC3339)"
// @Success 200 {object} resdto.RevenueSummaryResponse
// @Failure 400 {object} map[string]string
// @Router /reports/revenue [get]
func (h *ReportHandler) Revenue(c *gin.Context) {
	branchID, ok := middleware.GetBranchID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from parameter"})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to parameter"})
		return
	}
	if !to.After(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Window end must be after start"})
		return
	}

	summary, err := h.reports.Revenue(c.Request.Context(), branchID, from, to)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRevenueSummary(summary))
}

// @Summary Popular games
// @Description List the branch's games ordered by popularity
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum titles to return"
// @Success 200 {array} resdto.GameResponse
// @Router /reports/games [get]
func (h *ReportHandler) PopularGames(c *gin.Context) {
	branchID, ok := middleware.GetBranchID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	views, err := h.reports.PopularGames(c.Request.Context(), branchID, limit)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	responses := make([]*resdto.GameResponse, len(views))
	for i, v := range views {
		responses[i] = resdto.FromGameView(v)
	}
	c.JSON(http.StatusOK, responses)
}
