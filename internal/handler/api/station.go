package api

import (
	"net/http"

	reqdto "lounge-engine/internal/handler/dto/request"
	resdto "lounge-engine/internal/handler/dto/response"
	"lounge-engine/internal/handler/middleware"
	"lounge-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StationHandler struct {
	stations queries.StationQueries
	quotes   queries.QuoteQueries
}

func NewStationHandler(stations queries.StationQueries, quotes queries.QuoteQueries) *StationHandler {
	return &StationHandler{
		stations: stations,
		quotes:   quotes,
	}
}

// @Summary List stations
// @Description List the branch's stations with reconciled availability
// @Tags stations
// @Produce json
// @Security BearerAuth
// @Param available query bool false "Only return available stations"
// @Success 200 {array} resdto.StationResponse
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /stations [get]
func (h *StationHandler) List(c *gin.Context) {
	branchID, ok := middleware.GetBranchID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var (
		views []*queries.StationView
		err   error
	)
	if c.Query("available") == "true" {
		views, err = h.stations.ListAvailable(c.Request.Context(), branchID)
	} else {
		views, err = h.stations.ListStations(c.Request.Context(), branchID)
	}
	if err != nil {
		respondBookingError(c, err)
		return
	}

	responses := make([]*resdto.StationResponse, len(views))
	for i, v := range views {
		responses[i] = resdto.FromStationView(v)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Quote a session
// @Description Price a prospective session without creating anything
// @Tags stations
// @Produce json
// @Security BearerAuth
// @Param no_of_players query int true "Player count"
// @Param duration_hours query int true "Hours"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quote [get]
func (h *StationHandler) Quote(c *gin.Context) {
	branchID, ok := middleware.GetBranchID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.QuoteRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	view, err := h.quotes.Quote(c.Request.Context(), branchID, req.NoOfPlayers, req.DurationHours)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
