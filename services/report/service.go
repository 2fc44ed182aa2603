package report

import (
	"context"
	"fmt"

	bookingRepo "overture/database/repository/booking"
	"overture/models"
	"overture/utils"
)

// ReportService produces the summaries behind the reports screens.
type ReportService interface {
	Occupancy(ctx context.Context, from, to string) (*models.OccupancyReport, error)
}

// DefaultReportService implements ReportService.
type DefaultReportService struct {
	Repo bookingRepo.BookingRepository
}

// Occupancy summarises confirmed bookings per room over [from, to].
func (s *DefaultReportService) Occupancy(ctx context.Context, from, to string) (*models.OccupancyReport, error) {
	if _, err := utils.ParseDate(from); err != nil {
		return nil, err
	}
	if _, err := utils.ParseDate(to); err != nil {
		return nil, err
	}
	if from > to {
		return nil, fmt.Errorf("%w: range start %s after end %s", utils.ErrInvalidDate, from, to)
	}

	rooms, err := s.Repo.OccupancySummary(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &models.OccupancyReport{From: from, To: to, Rooms: rooms}, nil
}
