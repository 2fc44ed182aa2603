package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingRepo "overture/database/repository/booking"
	"overture/services/booking"
	"overture/services/pricing"
	"overture/utils"
)

// BookingHandler exposes booking operations over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// Quote prices a prospective booking without persisting it.
func (h *BookingHandler) Quote(c *gin.Context) {
	var input booking.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	total, err := h.Service.Quote(c.Request.Context(), input)
	if err != nil {
		h.renderBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_price": total})
}

// Create validates, prices and persists a booking.
func (h *BookingHandler) Create(c *gin.Context) {
	var input booking.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	record, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		h.renderBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// Get fetches one booking by reference.
func (h *BookingHandler) Get(c *gin.Context) {
	record, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// List returns confirmed bookings whose booked days intersect ?from=&to=.
func (h *BookingHandler) List(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "from and to query parameters are required")
		return
	}

	records, err := h.Service.ListRange(c.Request.Context(), from, to)
	if err != nil {
		h.renderBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records})
}

// Cancel marks a booking cancelled.
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.renderBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// renderBookingError maps service errors onto HTTP statuses.
func (h *BookingHandler) renderBookingError(c *gin.Context, err error) {
	var rateErr *pricing.RateLookupError
	switch {
	case errors.Is(err, booking.ErrInvalidInput), errors.Is(err, pricing.ErrInvalidRequest):
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid booking", err.Error())
	case errors.Is(err, booking.ErrRoomUnavailable):
		utils.JSONError(c, http.StatusConflict, "room unavailable", err.Error())
	case errors.Is(err, bookingRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
	case errors.As(err, &rateErr):
		utils.JSONError(c, http.StatusBadGateway, "rate lookup failed", err.Error())
	default:
		h.Logger.Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", err.Error())
	}
}
