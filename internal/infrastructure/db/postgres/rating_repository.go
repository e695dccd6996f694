package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// RatingRepository persists ratings through gorm.
type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Create inserts a first-time rating. The composite unique index on
// (user_id, store_id) rejects a duplicate even when two submissions race;
// the translated duplicate-key error comes back as domain.ErrRatingExists so
// callers can answer 409 deterministically.
func (r *RatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	if err := r.db.WithContext(ctx).Create(rating).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrRatingExists
		}
		return fmt.Errorf("create rating: %w", err)
	}
	return nil
}

func (r *RatingRepository) FindByUserAndStore(ctx context.Context, userID, storeID uint) (*domain.Rating, error) {
	var rating domain.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND store_id = ?", userID, storeID).
		First(&rating).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRatingNotFound
		}
		return nil, fmt.Errorf("find rating: %w", err)
	}
	return &rating, nil
}

func (r *RatingRepository) UpdateValue(ctx context.Context, id uint, value int) error {
	result := r.db.WithContext(ctx).Model(&domain.Rating{}).Where("id = ?", id).Update("value", value)
	if result.Error != nil {
		return fmt.Errorf("update rating: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRatingNotFound
	}
	return nil
}

func (r *RatingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Rating{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count ratings: %w", err)
	}
	return n, nil
}
