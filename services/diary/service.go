package diary

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	bookingRepo "overture/database/repository/booking"
	"overture/models"
	"overture/utils"
)

// DiaryService assembles the calendar views the operations staff work
// from: a laid-out day page, a week of day pages, and month counts.
type DiaryService interface {
	DayView(ctx context.Context, date string) (*models.DayView, error)
	WeekView(ctx context.Context, date string) (*models.WeekView, error)
	MonthView(ctx context.Context, month string) (*models.MonthView, error)
	Invalidate(ctx context.Context, dates ...string)
}

// DefaultDiaryService implements DiaryService.
type DefaultDiaryService struct {
	Repo  bookingRepo.BookingRepository
	Cache *redis.Client
}

func dayCacheKey(date string) string {
	return utils.DiaryCachePrefix + "day:" + date
}

// DayView returns the laid-out diary page for one day. Pages are cached
// briefly; booking writes invalidate the affected days.
func (s *DefaultDiaryService) DayView(ctx context.Context, date string) (*models.DayView, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, err
	}
	date = utils.FormatDate(day)

	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, dayCacheKey(date)).Result(); err == nil {
			var view models.DayView
			if err := json.Unmarshal([]byte(raw), &view); err == nil {
				return &view, nil
			}
		}
	}

	bookings, err := s.Repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	events := make([]models.TimedEvent, 0, len(bookings))
	for _, b := range bookings {
		events = append(events, eventForBooking(b, day))
	}

	layout := ComputeLayout(events, utils.SlotsPerDay)
	view := &models.DayView{
		Date:          date,
		MaxConcurrent: layout.MaxConcurrent,
		Events:        layout.Events,
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(view); err == nil {
			if err := s.Cache.Set(ctx, dayCacheKey(date), raw, utils.DiaryCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache diary day",
					zap.String("date", date), zap.Error(err))
			}
		}
	}
	return view, nil
}

// WeekView returns the seven day pages of the week containing the given
// date, Monday first.
func (s *DefaultDiaryService) WeekView(ctx context.Context, date string) (*models.WeekView, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, err
	}

	monday := day.AddDate(0, 0, -mondayOffset(day.Weekday()))
	view := &models.WeekView{
		WeekStart: utils.FormatDate(monday),
		Days:      make([]models.DayView, 0, 7),
	}
	for i := 0; i < 7; i++ {
		dayView, err := s.DayView(ctx, utils.FormatDate(monday.AddDate(0, 0, i)))
		if err != nil {
			return nil, err
		}
		view.Days = append(view.Days, *dayView)
	}
	return view, nil
}

// MonthView returns per-day booking counts for a "YYYY-MM" month.
func (s *DefaultDiaryService) MonthView(ctx context.Context, month string) (*models.MonthView, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", utils.ErrInvalidDate, month)
	}
	last := first.AddDate(0, 1, -1)

	counts, err := s.Repo.CountsByDay(ctx, utils.FormatDate(first), utils.FormatDate(last))
	if err != nil {
		return nil, err
	}
	return &models.MonthView{Month: month, Counts: counts}, nil
}

// Invalidate drops the cached pages for the given days.
func (s *DefaultDiaryService) Invalidate(ctx context.Context, dates ...string) {
	if s.Cache == nil || len(dates) == 0 {
		return
	}
	keys := make([]string, len(dates))
	for i, date := range dates {
		keys[i] = dayCacheKey(date)
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate diary cache",
			zap.Strings("dates", dates), zap.Error(err))
	}
}

// eventForBooking converts a stored booking into the layout engine's input
// shape for one diary day. Slot indices come from the hour offset against
// the grid's base hour; the end slot is the last hour the booking covers.
func eventForBooking(b models.Booking, day time.Time) models.TimedEvent {
	startSlot := utils.SlotForMinutes(b.Start)
	endSlot := utils.SlotForMinutes(b.End - 1)

	return models.TimedEvent{
		ID:        b.ID,
		Title:     b.Title,
		Room:      b.Room,
		StartSlot: startSlot,
		EndSlot:   endSlot,
		Start:     clockOn(day, b.Start),
		End:       clockOn(day, b.End),
	}
}

func clockOn(day time.Time, mins int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), mins/60, mins%60, 0, 0, day.Location())
}

func mondayOffset(w time.Weekday) int {
	if w == time.Sunday {
		return 6
	}
	return int(w - time.Monday)
}
