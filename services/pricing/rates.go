package pricing

import (
	"context"
	"fmt"

	"overture/models"
)

// RateLookup supplies the rate data the pricing engine dispatches over.
// Hall-like categories carry per-date tariffs from storage; the six named
// rooms use a fixed 4-tuple rate table.
type RateLookup interface {
	HallRates(ctx context.Context, category models.RoomCategory, date string) (models.HallRates, error)
	RoomRates(ctx context.Context, room string) (models.RoomRates, error)
}

// StaticRates is an in-memory RateLookup backed by fixed tables. Used in
// tests and anywhere a database-backed source is not wired.
type StaticRates struct {
	Halls map[models.RoomCategory]models.HallRates
	Rooms models.RateTable
}

func (s StaticRates) HallRates(_ context.Context, category models.RoomCategory, date string) (models.HallRates, error) {
	rates, ok := s.Halls[category]
	if !ok {
		return models.HallRates{}, &RateLookupError{Category: category, Date: date, Err: fmt.Errorf("no hall rates configured")}
	}
	return rates, nil
}

func (s StaticRates) RoomRates(_ context.Context, room string) (models.RoomRates, error) {
	rates, ok := s.Rooms[room]
	if !ok {
		return models.RoomRates{}, &RateLookupError{Category: models.CategoryRoom, Room: room, Err: fmt.Errorf("no room rates configured")}
	}
	return rates, nil
}
