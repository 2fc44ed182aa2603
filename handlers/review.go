package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"overture/models"
	"overture/services/review"
	"overture/utils"
)

// ReviewHandler exposes customer reviews over HTTP.
type ReviewHandler struct {
	Service review.ReviewService
	Logger  *zap.Logger
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(svc review.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{Service: svc, Logger: logger}
}

// List returns recent reviews, optionally filtered by ?event=.
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.Service.List(c.Request.Context(), c.Query("event"))
	if err != nil {
		h.Logger.Error("review listing failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "review listing failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// Add records a new review.
func (h *ReviewHandler) Add(c *gin.Context) {
	var input models.Review
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	record, err := h.Service.Add(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, review.ErrInvalidReview) {
			utils.JSONError(c, http.StatusUnprocessableEntity, "invalid review", err.Error())
			return
		}
		h.Logger.Error("review creation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "review creation failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, record)
}
