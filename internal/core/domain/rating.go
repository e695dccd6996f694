package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	RatingMin = 1
	RatingMax = 5
)

// AverageRatingEmpty is reported when a store has no ratings yet.
const AverageRatingEmpty = "N/A"

var ErrRatingExists = errors.New("store already rated by this user")
var ErrRatingNotFound = errors.New("rating not found")

// Rating is one user's 1-5 star verdict on one store. The composite unique
// index is the correctness mechanism: two concurrent first submissions for the
// same (user, store) pair race to insert and the database rejects the loser.
type Rating struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex:idx_ratings_user_store;not null"`
	StoreID   uint      `json:"storeId" gorm:"uniqueIndex:idx_ratings_user_store;not null"`
	Value     int       `json:"value" gorm:"not null"`
	User      *User     `json:"-" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// ValidateRatingValue enforces the [1,5] range.
func ValidateRatingValue(value int) error {
	if value < RatingMin || value > RatingMax {
		return fmt.Errorf("%w: rating value must be between 1 and 5", ErrValidation)
	}
	return nil
}

// AverageRating renders the mean of the given ratings rounded to one decimal,
// or "N/A" when there are none. The string form matches what clients display.
func AverageRating(ratings []Rating) string {
	if len(ratings) == 0 {
		return AverageRatingEmpty
	}
	var total int
	for _, r := range ratings {
		total += r.Value
	}
	mean := float64(total) / float64(len(ratings))
	return strconv.FormatFloat(math.Round(mean*10)/10, 'f', 1, 64)
}
