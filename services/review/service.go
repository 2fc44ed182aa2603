package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	reviewRepo "overture/database/repository/review"
	"overture/models"
)

// ErrInvalidReview reports a review that fails validation.
var ErrInvalidReview = errors.New("invalid review")

const defaultListLimit = 50

// ReviewService manages customer reviews of events held at the venue.
type ReviewService interface {
	Add(ctx context.Context, review models.Review) (*models.Review, error)
	List(ctx context.Context, event string) ([]models.Review, error)
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo reviewRepo.ReviewRepository
}

func (s *DefaultReviewService) Add(ctx context.Context, review models.Review) (*models.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be 1 to 5", ErrInvalidReview)
	}
	if strings.TrimSpace(review.Reviewer) == "" {
		return nil, fmt.Errorf("%w: reviewer is required", ErrInvalidReview)
	}

	review.ID = uuid.New().String()
	review.CreatedAt = time.Now().UTC()
	if err := s.Repo.Insert(ctx, review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *DefaultReviewService) List(ctx context.Context, event string) ([]models.Review, error) {
	return s.Repo.List(ctx, event, defaultListLimit)
}
