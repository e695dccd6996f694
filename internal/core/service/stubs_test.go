package service

import (
	"context"
	"strings"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// In-memory repository stubs. They mirror the constraint behaviour of the
// real gorm repositories: duplicate email, duplicate owner and duplicate
// (user, store) inserts fail with the same domain errors.

type stubUserRepo struct {
	seq   uint
	users map[uint]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailExists
		}
	}
	r.seq++
	user.ID = r.seq
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id uint, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Password = passwordHash
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for i := uint(1); i <= r.seq; i++ {
		if u, ok := r.users[i]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Filter(_ context.Context, filter ports.UserFilter) ([]domain.User, error) {
	var out []domain.User
	for i := uint(1); i <= r.seq; i++ {
		u, ok := r.users[i]
		if !ok {
			continue
		}
		if !containsFold(u.Name, filter.Name) || !containsFold(u.Email, filter.Email) || !containsFold(u.Address, filter.Address) {
			continue
		}
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type stubStoreRepo struct {
	seq        uint
	stores     []*domain.Store
	lastSearch ports.StoreSearch
}

func newStubStoreRepo() *stubStoreRepo {
	return &stubStoreRepo{}
}

func (r *stubStoreRepo) Create(_ context.Context, store *domain.Store) error {
	for _, s := range r.stores {
		if s.OwnerID == store.OwnerID {
			return domain.ErrOwnerHasStore
		}
		if s.Email == store.Email {
			return domain.ErrStoreEmailExists
		}
	}
	r.seq++
	store.ID = r.seq
	clone := *store
	r.stores = append(r.stores, &clone)
	return nil
}

func (r *stubStoreRepo) FindByID(_ context.Context, id uint) (*domain.Store, error) {
	for _, s := range r.stores {
		if s.ID == id {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrStoreNotFound
}

func (r *stubStoreRepo) Search(_ context.Context, search ports.StoreSearch) ([]domain.Store, error) {
	r.lastSearch = search
	var out []domain.Store
	for _, s := range r.stores {
		if search.Query != "" && !containsFold(s.Name, search.Query) && !containsFold(s.Address, search.Query) {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubStoreRepo) ListByOwner(_ context.Context, ownerID uint) ([]domain.Store, error) {
	var out []domain.Store
	for _, s := range r.stores {
		if s.OwnerID == ownerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubStoreRepo) ListWithRatings(_ context.Context) ([]domain.Store, error) {
	out := make([]domain.Store, 0, len(r.stores))
	for _, s := range r.stores {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubStoreRepo) Filter(_ context.Context, filter ports.StoreFilter) ([]domain.Store, error) {
	var out []domain.Store
	for _, s := range r.stores {
		if containsFold(s.Name, filter.Name) && containsFold(s.Email, filter.Email) && containsFold(s.Address, filter.Address) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubStoreRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.stores)), nil
}

type stubRatingRepo struct {
	seq     uint
	ratings map[[2]uint]*domain.Rating
}

func newStubRatingRepo() *stubRatingRepo {
	return &stubRatingRepo{ratings: make(map[[2]uint]*domain.Rating)}
}

func (r *stubRatingRepo) Create(_ context.Context, rating *domain.Rating) error {
	key := [2]uint{rating.UserID, rating.StoreID}
	if _, exists := r.ratings[key]; exists {
		return domain.ErrRatingExists
	}
	r.seq++
	rating.ID = r.seq
	clone := *rating
	r.ratings[key] = &clone
	return nil
}

func (r *stubRatingRepo) FindByUserAndStore(_ context.Context, userID, storeID uint) (*domain.Rating, error) {
	rt, ok := r.ratings[[2]uint{userID, storeID}]
	if !ok {
		return nil, domain.ErrRatingNotFound
	}
	clone := *rt
	return &clone, nil
}

func (r *stubRatingRepo) UpdateValue(_ context.Context, id uint, value int) error {
	for _, rt := range r.ratings {
		if rt.ID == id {
			rt.Value = value
			return nil
		}
	}
	return domain.ErrRatingNotFound
}

func (r *stubRatingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.ratings)), nil
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
