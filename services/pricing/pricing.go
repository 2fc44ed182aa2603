package pricing

import (
	"context"
	"fmt"

	"overture/models"
	"overture/utils"
)

// Hourly hall hire carries a minimum charge of three hours. The floor
// applies only to hourly-tier calculations, never to flat or daily rates.
const minimumHours = 3

// A hire of exactly seven days uses the flat weekly rate where the
// category has one; any other multi-day hire is charged per day.
const weeklyHireDays = 7

// ComputePrice resolves the total price for a booking request: dispatch on
// the room category, then on the tier implied by day count and start time.
// The request's date and times are assumed validated by the caller; rates
// come from the supplied RateLookup.
func ComputePrice(ctx context.Context, req models.PricingRequest, rates RateLookup) (float64, error) {
	if err := validate(req); err != nil {
		return 0, err
	}

	switch req.Category {
	case models.CategoryMainHall, models.CategorySmallHall:
		return hallPrice(ctx, req, rates)
	case models.CategoryRehearsalSpace:
		return rehearsalPrice(ctx, req, rates)
	case models.CategoryVenue:
		return venuePrice(ctx, req, rates)
	case models.CategoryRoom:
		return roomPrice(ctx, req, rates)
	default:
		// Unrecognized categories are charged as Main Hall hourly hire.
		return fallbackPrice(ctx, req, rates)
	}
}

func validate(req models.PricingRequest) error {
	if req.TotalDays < 1 {
		return fmt.Errorf("%w: total days %d", ErrInvalidRequest, req.TotalDays)
	}
	if req.End <= req.Start {
		return fmt.Errorf("%w: end %s not after start %s",
			ErrInvalidRequest, utils.FormatClock(req.End), utils.FormatClock(req.Start))
	}
	return nil
}

// hallPrice covers Main Hall and Small Hall hire. Single-day bookings
// starting in the evening use the flat evening rate; other single-day
// bookings are hourly with the minimum charge. Multi-day hire is per day.
func hallPrice(ctx context.Context, req models.PricingRequest, rates RateLookup) (float64, error) {
	hall, err := rates.HallRates(ctx, req.Category, utils.FormatDate(req.Date))
	if err != nil {
		return 0, err
	}

	if req.TotalDays > 1 {
		return hall.Daily * float64(req.TotalDays), nil
	}
	if isEvening(req.Start) {
		return hall.Evening, nil
	}
	return hall.Hourly * float64(chargeableHours(req.Hours())), nil
}

// rehearsalPrice covers the Rehearsal Space: hourly with the minimum
// charge for a single day, a flat weekly rate at exactly seven days, and
// a daily rate otherwise. The space has no evening tier.
func rehearsalPrice(ctx context.Context, req models.PricingRequest, rates RateLookup) (float64, error) {
	hall, err := rates.HallRates(ctx, req.Category, utils.FormatDate(req.Date))
	if err != nil {
		return 0, err
	}

	switch {
	case req.TotalDays == 1:
		return hall.Hourly * float64(chargeableHours(req.Hours())), nil
	case req.TotalDays == weeklyHireDays:
		return hall.Weekly, nil
	default:
		return hall.Daily * float64(req.TotalDays), nil
	}
}

// venuePrice covers whole-venue hire, which is only sold as flat sessions:
// an evening rate, a full-day rate, or full-day times the day count.
func venuePrice(ctx context.Context, req models.PricingRequest, rates RateLookup) (float64, error) {
	hall, err := rates.HallRates(ctx, req.Category, utils.FormatDate(req.Date))
	if err != nil {
		return 0, err
	}

	if req.TotalDays > 1 {
		return hall.Daily * float64(req.TotalDays), nil
	}
	if isEvening(req.Start) {
		return hall.Evening, nil
	}
	return hall.Daily, nil
}

// roomPrice covers the six named rooms via the duration-bucket table.
func roomPrice(ctx context.Context, req models.PricingRequest, rates RateLookup) (float64, error) {
	room, err := rates.RoomRates(ctx, req.Room)
	if err != nil {
		return 0, err
	}

	switch {
	case req.TotalDays == 1:
		return room.Rate(models.BucketForHours(req.Hours())), nil
	case req.TotalDays == weeklyHireDays:
		return room.Week, nil
	default:
		return room.AllDay * float64(req.TotalDays), nil
	}
}

func fallbackPrice(ctx context.Context, req models.PricingRequest, rates RateLookup) (float64, error) {
	hall, err := rates.HallRates(ctx, models.CategoryMainHall, utils.FormatDate(req.Date))
	if err != nil {
		return 0, err
	}
	return hall.Hourly * float64(chargeableHours(req.Hours())), nil
}

func isEvening(startMinutes int) bool {
	return startMinutes >= utils.EveningStartHour*60
}

func chargeableHours(hours int) int {
	if hours < minimumHours {
		return minimumHours
	}
	return hours
}
