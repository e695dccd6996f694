package ports

import "context"

// RatingService defines the submit/update pair for a (user, store) rating.
// The pair's state machine is absent → rated via Submit, then rated → rated
// via Update; nothing in scope deletes a rating.
type RatingService interface {
	// Submit records a first-time rating. Fails with domain.ErrRatingExists
	// when the pair is already rated; the caller retries as an update.
	Submit(ctx context.Context, userID, storeID uint, value int) error
	// Update overwrites the value of an existing rating. Fails with
	// domain.ErrRatingNotFound when there is nothing to update.
	Update(ctx context.Context, userID, storeID uint, value int) error
}
