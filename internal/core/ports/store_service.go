package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// ListStoresInput carries the public store-list request together with the
// verified identity of the requester (never taken from ambient state).
type ListStoresInput struct {
	Search      string
	SortBy      string
	Order       string
	RequesterID uint
	Role        domain.Role
}

// OwnerInfo is the owner's public contact view embedded in store listings.
type OwnerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StoreListItem is one row of the public store list. UserSubmittedRating is
// populated only for requesters with the USER role; nil otherwise or when the
// requester has not rated the store.
type StoreListItem struct {
	ID                  uint      `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Address             string    `json:"address"`
	AverageRating       string    `json:"averageRating"`
	Owner               OwnerInfo `json:"owner"`
	UserSubmittedRating *int      `json:"userSubmittedRating"`
}

// CreateStoreInput carries an admin store-provisioning request.
type CreateStoreInput struct {
	Name    string
	Email   string
	Address string
	OwnerID uint
}

// RaterEntry is one rating with the rater's public contact details, shown to
// the store's owner.
type RaterEntry struct {
	User  OwnerInfo `json:"user"`
	Value int       `json:"value"`
}

// OwnerStoreRatings is the owner-dashboard view of one owned store.
type OwnerStoreRatings struct {
	StoreID       uint         `json:"storeId"`
	StoreName     string       `json:"storeName"`
	Ratings       []RaterEntry `json:"ratings"`
	AverageRating string       `json:"averageRating"`
}

// StoreService defines store browsing and provisioning operations.
type StoreService interface {
	ListStores(ctx context.Context, input ListStoresInput) ([]StoreListItem, error)
	CreateStore(ctx context.Context, input CreateStoreInput) (*domain.Store, error)
	OwnerRatings(ctx context.Context, ownerID uint) ([]OwnerStoreRatings, error)
}
