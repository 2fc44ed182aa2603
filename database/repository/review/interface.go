// File: database/repository/review/interface.go
package reviewRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"overture/database"
	"overture/models"
)

type ReviewRepository interface {
	Insert(ctx context.Context, review models.Review) error
	List(ctx context.Context, event string, limit int64) ([]models.Review, error)
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo constructs a new MongoDB ReviewRepository.
func NewMongoReviewRepo() ReviewRepository {
	return &mongoReviewRepo{
		coll: database.Collection("reviews"),
	}
}
