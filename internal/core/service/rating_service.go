package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// RatingService implements the submit/update pair for user ratings.
type RatingService struct {
	ratings ports.RatingRepository
	stores  ports.StoreRepository
	logger  zerolog.Logger
}

func NewRatingService(ratings ports.RatingRepository, stores ports.StoreRepository, logger zerolog.Logger) *RatingService {
	return &RatingService{ratings: ratings, stores: stores, logger: logger}
}

// Submit records a first-time rating for (userID, storeID). The existence
// pre-check narrows the common case; the composite unique index settles the
// race when two first submissions land concurrently, so a duplicate insert
// still comes back as domain.ErrRatingExists.
func (s *RatingService) Submit(ctx context.Context, userID, storeID uint, value int) error {
	if storeID == 0 {
		return fmt.Errorf("%w: storeId is required", domain.ErrValidation)
	}
	if err := domain.ValidateRatingValue(value); err != nil {
		return err
	}

	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		return err
	}

	if _, err := s.ratings.FindByUserAndStore(ctx, userID, storeID); err == nil {
		return domain.ErrRatingExists
	} else if !errors.Is(err, domain.ErrRatingNotFound) {
		return err
	}

	rating := &domain.Rating{UserID: userID, StoreID: storeID, Value: value}
	if err := s.ratings.Create(ctx, rating); err != nil {
		return err
	}

	s.logger.Info().Uint("user_id", userID).Uint("store_id", storeID).Int("value", value).Msg("rating submitted")
	return nil
}

// Update overwrites the value of an existing rating; only the value changes.
func (s *RatingService) Update(ctx context.Context, userID, storeID uint, value int) error {
	if storeID == 0 {
		return fmt.Errorf("%w: storeId is required", domain.ErrValidation)
	}
	if err := domain.ValidateRatingValue(value); err != nil {
		return err
	}

	rating, err := s.ratings.FindByUserAndStore(ctx, userID, storeID)
	if err != nil {
		return err
	}

	if err := s.ratings.UpdateValue(ctx, rating.ID, value); err != nil {
		return err
	}

	s.logger.Info().Uint("user_id", userID).Uint("store_id", storeID).Int("value", value).Msg("rating updated")
	return nil
}
