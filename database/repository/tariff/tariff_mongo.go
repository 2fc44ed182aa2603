// File: database/repository/tariff/tariff_mongo.go
package tariffRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"overture/models"
)

// ErrNoTariff is returned when no tariff row covers the requested date.
var ErrNoTariff = errors.New("no tariff in force")

// HallRates returns the latest tariff whose effective_from is on or before
// the requested date.
func (r *mongoTariffRepo) HallRates(ctx context.Context, category models.RoomCategory, date string) (models.HallRates, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"category":       category,
		"effective_from": bson.M{"$lte": date},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "effective_from", Value: -1}})

	var tariff models.HallTariff
	err := r.coll.FindOne(ctx, filter, opts).Decode(&tariff)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.HallRates{}, fmt.Errorf("%w for %s on %s", ErrNoTariff, category, date)
		}
		return models.HallRates{}, fmt.Errorf("failed to fetch tariff for %s: %w", category, err)
	}
	return tariff.Rates, nil
}

func (r *mongoTariffRepo) Upsert(ctx context.Context, tariff models.HallTariff) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"category": tariff.Category, "effective_from": tariff.EffectiveFrom}
	update := bson.M{"$set": tariff}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert tariff for %s: %w", tariff.Category, err)
	}
	return nil
}

// SeedDefaults installs the opening tariff for each hall category so a
// fresh database can price bookings immediately. Existing rows win.
func (r *mongoTariffRepo) SeedDefaults(ctx context.Context) error {
	seeds := []models.HallTariff{
		{Category: models.CategoryMainHall, EffectiveFrom: "2000-01-01",
			Rates: models.HallRates{Hourly: 325, Evening: 1850, Daily: 3800}},
		{Category: models.CategorySmallHall, EffectiveFrom: "2000-01-01",
			Rates: models.HallRates{Hourly: 110, Evening: 950, Daily: 2200}},
		{Category: models.CategoryRehearsalSpace, EffectiveFrom: "2000-01-01",
			Rates: models.HallRates{Hourly: 60, Daily: 450, Weekly: 2000}},
		{Category: models.CategoryVenue, EffectiveFrom: "2000-01-01",
			Rates: models.HallRates{Evening: 2750, Daily: 4500}},
	}

	for _, seed := range seeds {
		count, err := r.coll.CountDocuments(ctx, bson.M{"category": seed.Category})
		if err != nil {
			return fmt.Errorf("failed to check tariff seed for %s: %w", seed.Category, err)
		}
		if count > 0 {
			continue
		}
		if err := r.Upsert(ctx, seed); err != nil {
			return err
		}
	}
	return nil
}
