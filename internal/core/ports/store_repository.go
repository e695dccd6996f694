package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// StoreSort names the columns the public store list may be ordered by.
// Anything outside the closed set silently falls back to SortByName.
type StoreSort string

const (
	SortByName  StoreSort = "name"
	SortByEmail StoreSort = "email"
)

// SortOrder is asc or desc; anything else falls back to ascending.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// StoreSearch carries the public store-list query: a substring matched
// against name OR address plus the sort column and direction.
type StoreSearch struct {
	Query  string
	SortBy StoreSort
	Order  SortOrder
}

// StoreFilter carries the admin store-list filters, AND-combined,
// case-insensitive substring each.
type StoreFilter struct {
	Name    string
	Email   string
	Address string
}

// StoreRepository defines persistence for stores. Finders that feed
// aggregate views preload the ratings collection (and rater or owner
// associations where named) so the service layer computes averages without
// further round-trips.
type StoreRepository interface {
	// Create persists a new store. Returns domain.ErrOwnerHasStore when the
	// owner_id unique constraint rejects the insert and
	// domain.ErrStoreEmailExists on a duplicate store email.
	Create(ctx context.Context, store *domain.Store) error
	FindByID(ctx context.Context, id uint) (*domain.Store, error)
	// Search returns stores matching the query with Owner and Ratings loaded.
	Search(ctx context.Context, search StoreSearch) ([]domain.Store, error)
	// ListByOwner returns the owner's stores with Ratings and each rating's
	// User loaded.
	ListByOwner(ctx context.Context, ownerID uint) ([]domain.Store, error)
	// ListWithRatings returns every store with Ratings loaded.
	ListWithRatings(ctx context.Context) ([]domain.Store, error)
	Filter(ctx context.Context, filter StoreFilter) ([]domain.Store, error)
	Count(ctx context.Context) (int64, error)
}
