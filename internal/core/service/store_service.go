package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// StoreService implements store browsing, provisioning and the owner's
// ratings view.
type StoreService struct {
	stores ports.StoreRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewStoreService(stores ports.StoreRepository, users ports.UserRepository, logger zerolog.Logger) *StoreService {
	return &StoreService{stores: stores, users: users, logger: logger}
}

// ListStores returns stores whose name or address contain the search query,
// annotated with the computed average and the owner's contact details. For
// requesters with the USER role, each row echoes back that user's own prior
// rating so the client renders it pre-filled.
func (s *StoreService) ListStores(ctx context.Context, input ports.ListStoresInput) ([]ports.StoreListItem, error) {
	stores, err := s.stores.Search(ctx, ports.StoreSearch{
		Query:  input.Search,
		SortBy: normalizeSort(input.SortBy),
		Order:  normalizeOrder(input.Order),
	})
	if err != nil {
		return nil, err
	}

	items := make([]ports.StoreListItem, 0, len(stores))
	for _, st := range stores {
		item := ports.StoreListItem{
			ID:            st.ID,
			Name:          st.Name,
			Email:         st.Email,
			Address:       st.Address,
			AverageRating: domain.AverageRating(st.Ratings),
		}
		if st.Owner != nil {
			item.Owner = ports.OwnerInfo{Name: st.Owner.Name, Email: st.Owner.Email}
		}
		if input.Role == domain.RoleUser {
			for _, r := range st.Ratings {
				if r.UserID == input.RequesterID {
					value := r.Value
					item.UserSubmittedRating = &value
					break
				}
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// CreateStore provisions a store for an existing owner account. Route policy
// restricts it to admins.
func (s *StoreService) CreateStore(ctx context.Context, input ports.CreateStoreInput) (*domain.Store, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateAddress(input.Address); err != nil {
		return nil, err
	}
	if input.OwnerID == 0 {
		return nil, fmt.Errorf("%w: ownerId is required", domain.ErrValidation)
	}

	if _, err := s.users.FindByID(ctx, input.OwnerID); err != nil {
		return nil, err
	}

	store := &domain.Store{
		Name:    input.Name,
		Email:   input.Email,
		Address: input.Address,
		OwnerID: input.OwnerID,
	}
	if err := s.stores.Create(ctx, store); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("store_id", store.ID).Uint("owner_id", store.OwnerID).Msg("store created")
	return store, nil
}

// OwnerRatings returns, per store owned by the caller, every rating with the
// rater's public contact details plus the computed average.
func (s *StoreService) OwnerRatings(ctx context.Context, ownerID uint) ([]ports.OwnerStoreRatings, error) {
	stores, err := s.stores.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]ports.OwnerStoreRatings, 0, len(stores))
	for _, st := range stores {
		entry := ports.OwnerStoreRatings{
			StoreID:       st.ID,
			StoreName:     st.Name,
			Ratings:       make([]ports.RaterEntry, 0, len(st.Ratings)),
			AverageRating: domain.AverageRating(st.Ratings),
		}
		for _, r := range st.Ratings {
			rater := ports.OwnerInfo{}
			if r.User != nil {
				rater = ports.OwnerInfo{Name: r.User.Name, Email: r.User.Email}
			}
			entry.Ratings = append(entry.Ratings, ports.RaterEntry{User: rater, Value: r.Value})
		}
		result = append(result, entry)
	}
	return result, nil
}

// normalizeSort and normalizeOrder fall back silently on unknown values;
// a bad sort parameter is a defensive default, not an error.
func normalizeSort(s string) ports.StoreSort {
	if ports.StoreSort(s) == ports.SortByEmail {
		return ports.SortByEmail
	}
	return ports.SortByName
}

func normalizeOrder(s string) ports.SortOrder {
	if ports.SortOrder(strings.ToLower(s)) == ports.OrderDesc {
		return ports.OrderDesc
	}
	return ports.OrderAsc
}
