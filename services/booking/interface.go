package booking

import (
	"context"

	bookingRepo "overture/database/repository/booking"
	"overture/models"
	"overture/services/diary"
	"overture/services/pricing"
)

// BookingInput is the raw booking form as submitted: dates and clock
// times as strings, validated and priced by the service.
type BookingInput struct {
	Room      string              `json:"room"`
	Category  models.RoomCategory `json:"category"`
	Client    string              `json:"client"`
	Title     string              `json:"title"`
	Date      string              `json:"date" binding:"required"`  // "YYYY-MM-DD"
	Start     string              `json:"start" binding:"required"` // "HH:MM"
	End       string              `json:"end" binding:"required"`   // "HH:MM"
	TotalDays int                 `json:"total_days"`
}

// BookingService defines the booking operations exposed to the handlers.
type BookingService interface {
	// Quote prices a prospective booking without persisting anything.
	Quote(ctx context.Context, input BookingInput) (float64, error)
	Create(ctx context.Context, input BookingInput) (*models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	ListRange(ctx context.Context, from, to string) ([]models.Booking, error)
	Cancel(ctx context.Context, id string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo  bookingRepo.BookingRepository
	Rates pricing.RateLookup
	Diary diary.DiaryService
}
