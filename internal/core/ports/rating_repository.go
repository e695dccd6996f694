package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// RatingRepository defines persistence for ratings.
type RatingRepository interface {
	// Create persists a first-time rating. Returns domain.ErrRatingExists
	// when the (user_id, store_id) unique constraint rejects the insert,
	// which is what settles the race between concurrent first submissions.
	Create(ctx context.Context, rating *domain.Rating) error
	FindByUserAndStore(ctx context.Context, userID, storeID uint) (*domain.Rating, error)
	// UpdateValue overwrites the value of an existing rating.
	UpdateValue(ctx context.Context, id uint, value int) error
	Count(ctx context.Context) (int64, error)
}
