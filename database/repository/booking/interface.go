// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"overture/database"
	"overture/models"
	"overture/utils"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)
	ListRange(ctx context.Context, from, to string) ([]models.Booking, error)
	CountsByDay(ctx context.Context, from, to string) (map[string]int, error)
	CountOverlapping(ctx context.Context, room, date, dateEnd string, start, end int) (int64, error)
	Cancel(ctx context.Context, id string) error
	OccupancySummary(ctx context.Context, from, to string) ([]models.RoomOccupancy, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	repo := &mongoBookingRepo{
		coll: database.Collection("bookings"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to ensure booking indexes", zap.Error(err))
	}
	return repo
}
