package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"overture/handlers"
)

// Handlers bundles the constructed handlers for route registration.
type Handlers struct {
	Booking *handlers.BookingHandler
	Diary   *handlers.DiaryHandler
	Review  *handlers.ReviewHandler
	Report  *handlers.ReportHandler
}

// RegisterDiaryRoutes sets up the calendar view endpoints.
func RegisterDiaryRoutes(r *gin.Engine, h *Handlers) {
	diaryGroup := r.Group("/api/diary")
	{
		diaryGroup.GET("/day", h.Diary.DayView)
		diaryGroup.GET("/week", h.Diary.WeekView)
		diaryGroup.GET("/month", h.Diary.MonthView)
	}
}

// RegisterBookingRoutes sets up the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *Handlers) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.POST("/quote", h.Booking.Quote)
		bookingGroup.POST("", h.Booking.Create)
		bookingGroup.GET("", h.Booking.List)
		bookingGroup.GET("/:id", h.Booking.Get)
		bookingGroup.DELETE("/:id", h.Booking.Cancel)
	}
}

// RegisterReviewRoutes sets up the review endpoints.
func RegisterReviewRoutes(r *gin.Engine, h *Handlers) {
	reviewGroup := r.Group("/api/reviews")
	{
		reviewGroup.GET("", h.Review.List)
		reviewGroup.POST("", h.Review.Add)
	}
}

// RegisterReportRoutes sets up the reporting endpoints.
func RegisterReportRoutes(r *gin.Engine, h *Handlers) {
	reportGroup := r.Group("/api/reports")
	{
		reportGroup.GET("/occupancy", h.Report.Occupancy)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)
	r.GET("/api/rooms", handlers.RoomsHandler)

	RegisterDiaryRoutes(r, h)
	RegisterBookingRoutes(r, h)
	RegisterReviewRoutes(r, h)
	RegisterReportRoutes(r, h)
}
