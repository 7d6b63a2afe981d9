package api

import (
	"errors"
	"net/http"

	reqdto "lounge-engine/internal/handler/dto/request"
	resdto "lounge-engine/internal/handler/dto/response"
	"lounge-engine/internal/handler/middleware"
	"lounge-engine/internal/pkg/errs"
	"lounge-engine/internal/usecase/commands"
	"lounge-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	booking commands.BookingCommands
	queries queries.StationQueries
}

func NewSessionHandler(booking commands.BookingCommands, stationQueries queries.StationQueries) *SessionHandler {
	return &SessionHandler{
		booking: booking,
		queries: stationQueries,
	}
}

// @Summary Start a session
// @Description Book a station and start a billed session for a customer
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key for duplicate prevention"
// @Param request body reqdto.StartSessionRequest true "Session request"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /sessions [post]
func (h *SessionHandler) Start(c *gin.Context) {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	branchID, ok := middleware.GetBranchID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.StartSessionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if !req.HasCustomer() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer id or name and phone required"})
		return
	}

	result, err := h.booking.StartSession(c.Request.Context(), commands.StartSessionParams{
		BranchID:      branchID,
		StaffID:       staffID,
		DeviceID:      req.DeviceID,
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Players:       req.NoOfPlayers,
		DurationHours: req.DurationHours,
		GameIDs:       req.Games,
		RequestKey:    c.GetHeader("Idempotency-Key"),
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromStartResult(result))
}

// @Summary Extend a session
// @Description Add hours (and optionally players) to a live session
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.ExtendSessionRequest true "Extension request"
// @Success 200 {object} resdto.ExtendSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sessions/{id}/extend [post]
func (h *SessionHandler) Extend(c *gin.Context) {
	branchID, ok := middleware.GetBranchID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ExtendSessionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.booking.ExtendSession(c.Request.Context(), c.Param("id"), commands.ExtendSessionParams{
		BranchID:     branchID,
		ExtraHours:   req.ExtraHours,
		ExtraPlayers: req.ExtraPlayers,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromExtendResult(result))
}

// @Summary Close a session
// @Description Settle a live session, optionally redeeming reward points
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.CloseSessionRequest false "Close request"
// @Success 200 {object} resdto.CloseSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sessions/{id}/close [post]
func (h *SessionHandler) Close(c *gin.Context) {
	branchID, ok := middleware.GetBranchID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CloseSessionRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	result, err := h.booking.CloseSession(c.Request.Context(), c.Param("id"), commands.CloseSessionParams{
		BranchID:     branchID,
		RedeemPoints: req.RedeemPoints,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCloseResult(result))
}

// @Summary List live sessions
// @Description List the branch's currently running sessions
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.LiveSessionResponse
// @Router /sessions [get]
func (h *SessionHandler) ListLive(c *gin.Context) {
	branchID, ok := middleware.GetBranchID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.queries.ListLiveSessions(c.Request.Context(), branchID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	responses := make([]*resdto.LiveSessionResponse, len(views))
	for i, v := range views {
		responses[i] = resdto.FromLiveSessionView(v)
	}
	c.JSON(http.StatusOK, responses)
}

// respondBookingError maps the booking error taxonomy onto HTTP. Conflicts
// carry the current state so the terminal can refresh instead of retrying.
func respondBookingError(c *gin.Context, err error) {
	var conflict *commands.StateConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, gin.H{
			"error":         conflict.Error(),
			"current_state": conflict.Current,
		})
		return
	}

	switch {
	case errors.Is(err, errs.ErrInvalidPlayerCount),
		errors.Is(err, errs.ErrInvalidHours),
		errors.Is(err, errs.ErrInvalidRedeem):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrStationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
	case errors.Is(err, errs.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, errs.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
	case errors.Is(err, errs.ErrPricingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pricing not configured for branch"})
	case errors.Is(err, errs.ErrStationNotOpen), errors.Is(err, errs.ErrStationBusy):
		c.JSON(http.StatusConflict, gin.H{"error": "Station is not available"})
	case errors.Is(err, errs.ErrSessionAlreadyClosed):
		c.JSON(http.StatusConflict, gin.H{"error": "Session is already closed"})
	case errors.Is(err, errs.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Record store unavailable, please retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
