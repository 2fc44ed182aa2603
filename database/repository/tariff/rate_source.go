// File: database/repository/tariff/rate_source.go
package tariffRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"overture/models"
	"overture/services/pricing"
	"overture/utils"
)

// RateSource implements pricing.RateLookup: hall rates come from the
// tariff collection (cached in Redis), room rates from the configured
// rate table.
type RateSource struct {
	repo  TariffRepository
	rooms models.RateTable
	cache *redis.Client
}

// NewRateSource builds the production rate source from a tariff repository,
// the configured room rate table, and an optional tariff cache client.
func NewRateSource(repo TariffRepository, rooms models.RateTable, cache *redis.Client) *RateSource {
	return &RateSource{repo: repo, rooms: rooms, cache: cache}
}

func (s *RateSource) HallRates(ctx context.Context, category models.RoomCategory, date string) (models.HallRates, error) {
	key := fmt.Sprintf("%s%s:%s", utils.TariffCachePrefix, category, date)

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var rates models.HallRates
			if err := json.Unmarshal([]byte(raw), &rates); err == nil {
				return rates, nil
			}
		}
	}

	rates, err := s.repo.HallRates(ctx, category, date)
	if err != nil {
		return models.HallRates{}, &pricing.RateLookupError{Category: category, Date: date, Err: err}
	}

	if s.cache != nil {
		if raw, err := json.Marshal(rates); err == nil {
			if err := s.cache.Set(ctx, key, raw, utils.TariffCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache tariff",
					zap.String("key", key), zap.Error(err))
			}
		}
	}
	return rates, nil
}

func (s *RateSource) RoomRates(_ context.Context, room string) (models.RoomRates, error) {
	rates, ok := s.rooms[room]
	if !ok {
		return models.RoomRates{}, &pricing.RateLookupError{
			Category: models.CategoryRoom,
			Room:     room,
			Err:      fmt.Errorf("room not in rate table"),
		}
	}
	return rates, nil
}

// WarmCache preloads today's hall tariffs into Redis at startup.
func (s *RateSource) WarmCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	today := time.Now().Format("2006-01-02")
	for _, category := range []models.RoomCategory{
		models.CategoryMainHall,
		models.CategorySmallHall,
		models.CategoryRehearsalSpace,
		models.CategoryVenue,
	} {
		if _, err := s.HallRates(ctx, category, today); err != nil {
			utils.GetLogger().Warn("tariff cache warm-up failed",
				zap.String("category", string(category)), zap.Error(err))
		}
	}
}
