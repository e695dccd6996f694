package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

func seedStoreWithRatings(t *testing.T, stores *stubStoreRepo) {
	t.Helper()
	owner := &domain.User{ID: 9, Name: "Owen Owner", Email: "owen@example.com"}
	err := stores.Create(context.Background(), &domain.Store{
		Name:    "Fresh Mart",
		Email:   "fresh@example.com",
		Address: "2 Side St",
		OwnerID: 9,
	})
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	stores.stores[0].Owner = owner
	stores.stores[0].Ratings = []domain.Rating{
		{ID: 1, UserID: 1, StoreID: 1, Value: 4, User: &domain.User{ID: 1, Name: "Alice Example", Email: "alice@example.com"}},
		{ID: 2, UserID: 2, StoreID: 1, Value: 5, User: &domain.User{ID: 2, Name: "Bob Example", Email: "bob@example.com"}},
	}
}

func TestStoreService_ListStores_AnnotatesAverageAndOwnRating(t *testing.T) {
	stores := newStubStoreRepo()
	seedStoreWithRatings(t, stores)
	svc := NewStoreService(stores, newStubUserRepo(), zerolog.Nop())

	items, err := svc.ListStores(context.Background(), ports.ListStoresInput{RequesterID: 1, Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("ListStores failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 store, got %d", len(items))
	}

	item := items[0]
	if item.AverageRating != "4.5" {
		t.Fatalf("expected average 4.5, got %q", item.AverageRating)
	}
	if item.Owner.Name != "Owen Owner" || item.Owner.Email != "owen@example.com" {
		t.Fatalf("owner contact missing: %+v", item.Owner)
	}
	if item.UserSubmittedRating == nil || *item.UserSubmittedRating != 4 {
		t.Fatalf("expected requester's own rating 4, got %v", item.UserSubmittedRating)
	}
}

func TestStoreService_ListStores_NoOwnRatingForNonUsers(t *testing.T) {
	stores := newStubStoreRepo()
	seedStoreWithRatings(t, stores)
	svc := NewStoreService(stores, newStubUserRepo(), zerolog.Nop())

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleOwner} {
		items, err := svc.ListStores(context.Background(), ports.ListStoresInput{RequesterID: 1, Role: role})
		if err != nil {
			t.Fatalf("ListStores failed: %v", err)
		}
		if items[0].UserSubmittedRating != nil {
			t.Fatalf("role %s must not receive a personal rating echo", role)
		}
	}
}

func TestStoreService_ListStores_SortFallback(t *testing.T) {
	stores := newStubStoreRepo()
	seedStoreWithRatings(t, stores)
	svc := NewStoreService(stores, newStubUserRepo(), zerolog.Nop())

	cases := []struct {
		sortBy, order string
		wantSort      ports.StoreSort
		wantOrder     ports.SortOrder
	}{
		{"", "", ports.SortByName, ports.OrderAsc},
		{"email", "desc", ports.SortByEmail, ports.OrderDesc},
		{"email", "DESC", ports.SortByEmail, ports.OrderDesc},
		{"address", "sideways", ports.SortByName, ports.OrderAsc},
		{"name; DROP TABLE stores", "asc", ports.SortByName, ports.OrderAsc},
	}
	for _, tc := range cases {
		if _, err := svc.ListStores(context.Background(), ports.ListStoresInput{SortBy: tc.sortBy, Order: tc.order, Role: domain.RoleUser}); err != nil {
			t.Fatalf("ListStores failed: %v", err)
		}
		if stores.lastSearch.SortBy != tc.wantSort || stores.lastSearch.Order != tc.wantOrder {
			t.Fatalf("sortBy=%q order=%q: normalized to %q/%q, want %q/%q",
				tc.sortBy, tc.order, stores.lastSearch.SortBy, stores.lastSearch.Order, tc.wantSort, tc.wantOrder)
		}
	}
}

func TestStoreService_CreateStore(t *testing.T) {
	stores := newStubStoreRepo()
	users := newStubUserRepo()
	owner := &domain.User{Name: "Owen Owner", Email: "owen@example.com", Password: "x", Role: domain.RoleOwner}
	if err := users.Create(context.Background(), owner); err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	svc := NewStoreService(stores, users, zerolog.Nop())

	store, err := svc.CreateStore(context.Background(), ports.CreateStoreInput{
		Name:    "Fresh Mart",
		Email:   "fresh@example.com",
		Address: "2 Side St",
		OwnerID: owner.ID,
	})
	if err != nil {
		t.Fatalf("CreateStore failed: %v", err)
	}
	if store.ID == 0 {
		t.Fatalf("expected store id to be assigned")
	}

	// Unknown owner.
	if _, err := svc.CreateStore(context.Background(), ports.CreateStoreInput{Name: "Another Shop", Email: "a@example.com", Address: "x", OwnerID: 99}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	// Same owner cannot hold a second store.
	if _, err := svc.CreateStore(context.Background(), ports.CreateStoreInput{Name: "Second Shop", Email: "second@example.com", Address: "x", OwnerID: owner.ID}); !errors.Is(err, domain.ErrOwnerHasStore) {
		t.Fatalf("expected ErrOwnerHasStore, got %v", err)
	}

	// Validation.
	if _, err := svc.CreateStore(context.Background(), ports.CreateStoreInput{Name: "ab", Email: "b@example.com", Address: "x", OwnerID: owner.ID}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for short name, got %v", err)
	}
	if _, err := svc.CreateStore(context.Background(), ports.CreateStoreInput{Name: "Valid Name", Email: "c@example.com", Address: "x"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing owner, got %v", err)
	}
}

func TestStoreService_OwnerRatings(t *testing.T) {
	stores := newStubStoreRepo()
	seedStoreWithRatings(t, stores)
	svc := NewStoreService(stores, newStubUserRepo(), zerolog.Nop())

	result, err := svc.OwnerRatings(context.Background(), 9)
	if err != nil {
		t.Fatalf("OwnerRatings failed: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 store, got %d", len(result))
	}

	view := result[0]
	if view.StoreName != "Fresh Mart" || view.AverageRating != "4.5" {
		t.Fatalf("unexpected view: %+v", view)
	}
	if len(view.Ratings) != 2 {
		t.Fatalf("expected 2 rater entries, got %d", len(view.Ratings))
	}
	if view.Ratings[0].User.Name != "Alice Example" || view.Ratings[0].Value != 4 {
		t.Fatalf("unexpected rater entry: %+v", view.Ratings[0])
	}

	// An owner with no stores gets an empty list, not an error.
	empty, err := svc.OwnerRatings(context.Background(), 1234)
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty result, got %v %v", empty, err)
	}
}
