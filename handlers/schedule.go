package handlers

import (
	"net/http"

	"scheduly/models"
	"scheduly/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes the booking pipeline over HTTP.
type ScheduleHandler struct {
	svc    scheduling.SchedulingService
	logger *zap.Logger
}

func NewScheduleHandler(svc scheduling.SchedulingService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, logger: logger}
}

// SetResponseHandler handles /setresponse: one free-text booking request in,
// one BookingOutcome out. Every outcome variant, including rejections,
// returns 200 with the outcome in the body; only an unreadable request body
// is a 400.
func (h *ScheduleHandler) SetResponseHandler(c *gin.Context) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid schedule request", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ErrorOutcome("Invalid input: "+err.Error()))
		return
	}

	h.logger.Info("Input received",
		zap.String("message", req.Message),
		zap.String("calendarID", req.Email),
	)

	outcome := h.svc.Schedule(c.Request.Context(), req.Message, req.Email)
	c.JSON(http.StatusOK, outcome)
}
