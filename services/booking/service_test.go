package booking

import (
	"context"
	"errors"
	"testing"

	bookingRepo "overture/database/repository/booking"
	"overture/models"
	"overture/services/pricing"
)

// fakeRepo is an in-memory BookingRepository.
type fakeRepo struct {
	bookings []models.Booking
}

func (f *fakeRepo) Insert(_ context.Context, b models.Booking) error {
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (f *fakeRepo) ListByDate(_ context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == models.BookingStatusConfirmed && b.Date <= date && b.DateEnd >= date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListRange(_ context.Context, from, to string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == models.BookingStatusConfirmed && b.Date <= to && b.DateEnd >= from {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) CountsByDay(_ context.Context, _, _ string) (map[string]int, error) {
	return map[string]int{}, nil
}

func (f *fakeRepo) CountOverlapping(_ context.Context, room, date, dateEnd string, start, end int) (int64, error) {
	var count int64
	for _, b := range f.bookings {
		if b.Status != models.BookingStatusConfirmed || b.Room != room {
			continue
		}
		if b.Date <= dateEnd && b.DateEnd >= date && b.Start < end && b.End > start {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id && f.bookings[i].Status == models.BookingStatusConfirmed {
			f.bookings[i].Status = models.BookingStatusCancelled
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}

func (f *fakeRepo) OccupancySummary(_ context.Context, _, _ string) ([]models.RoomOccupancy, error) {
	return nil, nil
}

func testService(repo *fakeRepo) *DefaultBookingService {
	return &DefaultBookingService{
		Repo: repo,
		Rates: pricing.StaticRates{
			Halls: map[models.RoomCategory]models.HallRates{
				models.CategoryMainHall: {Hourly: 50, Evening: 1850, Daily: 3800},
			},
			Rooms: models.RateTable{
				"Dickens Den": {Hourly: 40, MorningAfternoon: 75, AllDay: 130, Week: 500},
			},
		},
	}
}

func TestCreateComputesPriceAndPersists(t *testing.T) {
	repo := &fakeRepo{}
	svc := testService(repo)

	record, err := svc.Create(context.Background(), BookingInput{
		Room:      "Dickens Den",
		Category:  models.CategoryRoom,
		Client:    "B. Havisham",
		Title:     "Poetry night",
		Date:      "2026-05-20",
		Start:     "13:00",
		End:       "16:00",
		TotalDays: 1,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if record.TotalPrice != 75 {
		t.Errorf("TotalPrice = %v, want 75 (Morning/Afternoon bucket)", record.TotalPrice)
	}
	if record.Status != models.BookingStatusConfirmed {
		t.Errorf("Status = %s, want %s", record.Status, models.BookingStatusConfirmed)
	}
	if record.ID == "" {
		t.Error("booking reference not assigned")
	}
	if record.DateEnd != "2026-05-20" {
		t.Errorf("DateEnd = %s, want same day for a single-day booking", record.DateEnd)
	}
	if len(repo.bookings) != 1 {
		t.Errorf("stored %d bookings, want 1", len(repo.bookings))
	}
}

func TestCreateMultiDaySpansDates(t *testing.T) {
	repo := &fakeRepo{}
	svc := testService(repo)

	record, err := svc.Create(context.Background(), BookingInput{
		Room:      "Dickens Den",
		Category:  models.CategoryRoom,
		Date:      "2026-05-20",
		Start:     "10:00",
		End:       "17:00",
		TotalDays: 7,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if record.DateEnd != "2026-05-26" {
		t.Errorf("DateEnd = %s, want 2026-05-26", record.DateEnd)
	}
	if record.TotalPrice != 500 {
		t.Errorf("TotalPrice = %v, want flat week rate 500", record.TotalPrice)
	}
}

func TestCreateRejectsClash(t *testing.T) {
	repo := &fakeRepo{}
	svc := testService(repo)

	first := BookingInput{
		Room:      "Dickens Den",
		Category:  models.CategoryRoom,
		Date:      "2026-05-20",
		Start:     "13:00",
		End:       "16:00",
		TotalDays: 1,
	}
	if _, err := svc.Create(context.Background(), first); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	clash := first
	clash.Start = "15:00"
	clash.End = "18:00"
	if _, err := svc.Create(context.Background(), clash); !errors.Is(err, ErrRoomUnavailable) {
		t.Errorf("clashing Create() error = %v, want ErrRoomUnavailable", err)
	}

	// Back-to-back is not a clash: the earlier booking ends as this starts.
	adjacent := first
	adjacent.Start = "16:00"
	adjacent.End = "18:00"
	if _, err := svc.Create(context.Background(), adjacent); err != nil {
		t.Errorf("adjacent Create() error = %v, want nil", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := testService(&fakeRepo{})

	tests := []struct {
		name  string
		input BookingInput
	}{
		{
			name: "unparsable date",
			input: BookingInput{
				Room: "Dickens Den", Category: models.CategoryRoom,
				Date: "20/05/2026", Start: "13:00", End: "16:00", TotalDays: 1,
			},
		},
		{
			name: "unparsable start time",
			input: BookingInput{
				Room: "Dickens Den", Category: models.CategoryRoom,
				Date: "2026-05-20", Start: "1pm", End: "16:00", TotalDays: 1,
			},
		},
		{
			name: "end before start",
			input: BookingInput{
				Room: "Dickens Den", Category: models.CategoryRoom,
				Date: "2026-05-20", Start: "16:00", End: "13:00", TotalDays: 1,
			},
		},
		{
			name: "before the grid opens",
			input: BookingInput{
				Room: "Dickens Den", Category: models.CategoryRoom,
				Date: "2026-05-20", Start: "08:00", End: "12:00", TotalDays: 1,
			},
		},
		{
			name: "zero days",
			input: BookingInput{
				Room: "Dickens Den", Category: models.CategoryRoom,
				Date: "2026-05-20", Start: "13:00", End: "16:00", TotalDays: 0,
			},
		},
		{
			name: "missing room",
			input: BookingInput{
				Category: models.CategoryRoom,
				Date:     "2026-05-20", Start: "13:00", End: "16:00", TotalDays: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tt.input); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Create() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestQuoteDoesNotPersist(t *testing.T) {
	repo := &fakeRepo{}
	svc := testService(repo)

	total, err := svc.Quote(context.Background(), BookingInput{
		Room:      "Main Hall",
		Category:  models.CategoryMainHall,
		Date:      "2026-05-20",
		Start:     "14:00",
		End:       "16:00",
		TotalDays: 1,
	})
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	if total != 150 {
		t.Errorf("Quote() = %v, want 150 (hourly with three-hour floor)", total)
	}
	if len(repo.bookings) != 0 {
		t.Errorf("Quote persisted %d bookings", len(repo.bookings))
	}
}

func TestCancel(t *testing.T) {
	repo := &fakeRepo{}
	svc := testService(repo)

	record, err := svc.Create(context.Background(), BookingInput{
		Room:      "Dickens Den",
		Category:  models.CategoryRoom,
		Date:      "2026-05-20",
		Start:     "13:00",
		End:       "16:00",
		TotalDays: 1,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Cancel(context.Background(), record.ID); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if repo.bookings[0].Status != models.BookingStatusCancelled {
		t.Errorf("Status = %s after cancel", repo.bookings[0].Status)
	}

	if err := svc.Cancel(context.Background(), "no-such-ref"); !errors.Is(err, bookingRepo.ErrNotFound) {
		t.Errorf("Cancel(missing) error = %v, want ErrNotFound", err)
	}
}
