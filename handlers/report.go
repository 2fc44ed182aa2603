package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"overture/services/report"
	"overture/utils"
)

// ReportHandler exposes operational reports over HTTP.
type ReportHandler struct {
	Service report.ReportService
	Logger  *zap.Logger
}

// NewReportHandler constructs a ReportHandler.
func NewReportHandler(svc report.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{Service: svc, Logger: logger}
}

// Occupancy returns the per-room usage summary for ?from=&to=.
func (h *ReportHandler) Occupancy(c *gin.Context) {
	summary, err := h.Service.Occupancy(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		if errors.Is(err, utils.ErrInvalidDate) {
			utils.JSONError(c, http.StatusBadRequest, "invalid date range", err.Error())
			return
		}
		h.Logger.Error("occupancy report failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "occupancy report failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}
