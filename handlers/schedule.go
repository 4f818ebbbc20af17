package handlers

import (
	"errors"
	"net/http"
	"time"

	"barkbook/models"
	"barkbook/services/scheduling"
	"barkbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes the calendar-availability engine over HTTP.
type ScheduleHandler struct {
	Service scheduling.SchedulingService
	Logger  *zap.Logger
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(svc scheduling.SchedulingService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Service: svc, Logger: logger}
}

// ListTimeslotsHandler returns the windows in a date range together with the
// external busy-time overlay. Defaults to the next three weeks.
func (h *ScheduleHandler) ListTimeslotsHandler(c *gin.Context) {
	now := time.Now()
	from := now
	to := now.AddDate(0, 0, 21)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid 'from' parameter", "expected RFC3339 timestamp")
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid 'to' parameter", "expected RFC3339 timestamp")
			return
		}
		to = parsed
	}

	view, err := h.Service.ListAvailability(c.Request.Context(), from, to)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// BookTimeslotHandler books a one-hour session inside an open window.
func (h *ScheduleHandler) BookTimeslotHandler(c *gin.Context) {
	var req models.BookTimeslotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}

	resp, err := h.Service.BookTimeslot(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateTimeslotHandler adds a single open window.
func (h *ScheduleHandler) CreateTimeslotHandler(c *gin.Context) {
	var req models.CreateTimeslotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid timeslot payload", err.Error())
		return
	}

	slot, err := h.Service.CreateTimeslot(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// CreateRecurringSeriesHandler seeds a weekly recurring series of windows.
func (h *ScheduleHandler) CreateRecurringSeriesHandler(c *gin.Context) {
	var req models.CreateRecurringSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid recurring series payload", err.Error())
		return
	}

	slots, err := h.Service.CreateRecurringSeries(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"timeslots": slots})
}

// DeleteTimeslotHandler removes one window, or its entire recurring series
// when ?all=true.
func (h *ScheduleHandler) DeleteTimeslotHandler(c *gin.Context) {
	id := c.Param("id")
	all := c.Query("all") == "true"

	result, err := h.Service.DeleteTimeslot(c.Request.Context(), id, all)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RunAuditHandler triggers a recurring-series audit sweep on demand.
func (h *ScheduleHandler) RunAuditHandler(c *gin.Context) {
	report, err := h.Service.RunAudit(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// respondError maps the scheduling error taxonomy onto stable HTTP statuses.
// Store-specific details never cross the boundary.
func (h *ScheduleHandler) respondError(c *gin.Context, err error) {
	var (
		validationErr   scheduling.ValidationError
		notFoundErr     scheduling.NotFoundError
		invalidRangeErr scheduling.InvalidRangeError
		conflictErr     scheduling.ConflictError
		transientErr    scheduling.TransientError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", validationErr.Reason)
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, "timeslot not found", notFoundErr.Error())
	case errors.As(err, &invalidRangeErr):
		utils.JSONError(c, http.StatusUnprocessableEntity, "requested time out of range", invalidRangeErr.Error())
	case errors.As(err, &conflictErr):
		utils.JSONError(c, http.StatusConflict, "booking conflict", conflictErr.Reason+"; please refresh availability and retry")
	case errors.As(err, &transientErr):
		h.Logger.Error("scheduling operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "temporary scheduling failure", "please retry the request")
	default:
		h.Logger.Error("unexpected scheduling error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "")
	}
}
