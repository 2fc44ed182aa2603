package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"overture/services/diary"
	"overture/utils"
)

// DiaryHandler exposes the calendar views over HTTP.
type DiaryHandler struct {
	Service diary.DiaryService
	Logger  *zap.Logger
}

// NewDiaryHandler constructs a DiaryHandler.
func NewDiaryHandler(svc diary.DiaryService, logger *zap.Logger) *DiaryHandler {
	return &DiaryHandler{Service: svc, Logger: logger}
}

// DayView renders one diary day: ?date=YYYY-MM-DD.
func (h *DiaryHandler) DayView(c *gin.Context) {
	view, err := h.Service.DayView(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.renderDiaryError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// WeekView renders the week containing ?date=YYYY-MM-DD.
func (h *DiaryHandler) WeekView(c *gin.Context) {
	view, err := h.Service.WeekView(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.renderDiaryError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// MonthView renders per-day counts for ?month=YYYY-MM.
func (h *DiaryHandler) MonthView(c *gin.Context) {
	view, err := h.Service.MonthView(c.Request.Context(), c.Query("month"))
	if err != nil {
		h.renderDiaryError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *DiaryHandler) renderDiaryError(c *gin.Context, err error) {
	if errors.Is(err, utils.ErrInvalidDate) {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}
	h.Logger.Error("diary view failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "diary view failed", err.Error())
}
