// File: database/repository/tariff/interface.go
package tariffRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"overture/database"
	"overture/models"
)

type TariffRepository interface {
	// HallRates resolves the tariff in force for a hall category on a date.
	HallRates(ctx context.Context, category models.RoomCategory, date string) (models.HallRates, error)
	Upsert(ctx context.Context, tariff models.HallTariff) error
	SeedDefaults(ctx context.Context) error
}

type mongoTariffRepo struct {
	coll *mongo.Collection
}

// NewMongoTariffRepo constructs a new MongoDB TariffRepository.
func NewMongoTariffRepo() TariffRepository {
	return &mongoTariffRepo{
		coll: database.Collection("hall_tariffs"),
	}
}
