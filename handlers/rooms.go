package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"overture/config"
	"overture/models"
)

// RoomsHandler returns the bookable spaces: the hall-like categories and
// the six named rooms with their 4-tuple rate table.
func RoomsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"halls": []models.RoomCategory{
			models.CategoryMainHall,
			models.CategorySmallHall,
			models.CategoryRehearsalSpace,
			models.CategoryVenue,
		},
		"rooms": config.RoomRateTable(),
	})
}
