package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"overture/models"
	"overture/services/pricing"
	"overture/utils"
)

// Quote validates the form and runs the pricing engine. Nothing is
// persisted and no availability check is made; the form recalculates the
// total on every change.
func (s *DefaultBookingService) Quote(ctx context.Context, input BookingInput) (float64, error) {
	req, _, err := s.validate(input)
	if err != nil {
		return 0, err
	}
	return pricing.ComputePrice(ctx, req, s.Rates)
}

// Create validates, checks availability, prices and persists a booking,
// then drops the cached diary pages for every day the booking covers.
func (s *DefaultBookingService) Create(ctx context.Context, input BookingInput) (*models.Booking, error) {
	req, day, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	dateEnd := utils.FormatDate(day.AddDate(0, 0, input.TotalDays-1))
	clashes, err := s.Repo.CountOverlapping(ctx, input.Room, input.Date, dateEnd, req.Start, req.End)
	if err != nil {
		return nil, err
	}
	if clashes > 0 {
		return nil, fmt.Errorf("%w: %s on %s", ErrRoomUnavailable, input.Room, input.Date)
	}

	total, err := pricing.ComputePrice(ctx, req, s.Rates)
	if err != nil {
		return nil, err
	}

	record := models.Booking{
		ID:         uuid.New().String(),
		Room:       input.Room,
		Category:   input.Category,
		Client:     input.Client,
		Title:      input.Title,
		Date:       input.Date,
		DateEnd:    dateEnd,
		TotalDays:  input.TotalDays,
		Start:      req.Start,
		End:        req.End,
		TotalPrice: total,
		Status:     models.BookingStatusConfirmed,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, record); err != nil {
		return nil, err
	}

	s.invalidateDiary(ctx, day, input.TotalDays)
	utils.GetLogger().Info("booking created",
		zap.String("id", record.ID),
		zap.String("room", record.Room),
		zap.String("date", record.Date),
		zap.Float64("total", record.TotalPrice))
	return &record, nil
}

func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBookingService) ListRange(ctx context.Context, from, to string) ([]models.Booking, error) {
	if _, err := utils.ParseDate(from); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := utils.ParseDate(to); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.Repo.ListRange(ctx, from, to)
}

// Cancel marks a booking cancelled and drops its cached diary pages.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) error {
	record, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Cancel(ctx, id); err != nil {
		return err
	}

	if day, parseErr := utils.ParseDate(record.Date); parseErr == nil {
		s.invalidateDiary(ctx, day, record.TotalDays)
	}
	utils.GetLogger().Info("booking cancelled", zap.String("id", id))
	return nil
}

// validate checks the raw form and converts it into a pricing request.
func (s *DefaultBookingService) validate(input BookingInput) (models.PricingRequest, time.Time, error) {
	day, err := utils.ParseDate(input.Date)
	if err != nil {
		return models.PricingRequest{}, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	start, err := utils.ParseClock(input.Start)
	if err != nil {
		return models.PricingRequest{}, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	end, err := utils.ParseClock(input.End)
	if err != nil {
		return models.PricingRequest{}, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if input.TotalDays < 1 {
		return models.PricingRequest{}, time.Time{}, fmt.Errorf("%w: total days must be at least 1", ErrInvalidInput)
	}
	if end <= start {
		return models.PricingRequest{}, time.Time{}, fmt.Errorf("%w: end time must be after start time", ErrInvalidInput)
	}
	if start < utils.DayStartHour*60 || end > utils.DayEndHour*60 {
		return models.PricingRequest{}, time.Time{}, fmt.Errorf("%w: bookings run %02d:00 to %02d:00",
			ErrInvalidInput, utils.DayStartHour, utils.DayEndHour)
	}
	if input.Room == "" {
		return models.PricingRequest{}, time.Time{}, fmt.Errorf("%w: room is required", ErrInvalidInput)
	}

	return models.PricingRequest{
		Category:  input.Category,
		Room:      input.Room,
		Date:      day,
		Start:     start,
		End:       end,
		TotalDays: input.TotalDays,
	}, day, nil
}

func (s *DefaultBookingService) invalidateDiary(ctx context.Context, day time.Time, totalDays int) {
	if s.Diary == nil {
		return
	}
	dates := make([]string, 0, totalDays)
	for i := 0; i < totalDays; i++ {
		dates = append(dates, utils.FormatDate(day.AddDate(0, 0, i)))
	}
	s.Diary.Invalidate(ctx, dates...)
}
