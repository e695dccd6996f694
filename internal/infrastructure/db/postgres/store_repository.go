package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// StoreRepository persists stores through gorm.
type StoreRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) Create(ctx context.Context, store *domain.Store) error {
	if err := r.db.WithContext(ctx).Create(store).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Two unique indexes can reject the insert; a follow-up lookup
			// tells which one fired.
			var n int64
			if lookErr := r.db.WithContext(ctx).Model(&domain.Store{}).
				Where("owner_id = ?", store.OwnerID).Count(&n).Error; lookErr == nil && n > 0 {
				return domain.ErrOwnerHasStore
			}
			return domain.ErrStoreEmailExists
		}
		return fmt.Errorf("create store: %w", err)
	}
	return nil
}

func (r *StoreRepository) FindByID(ctx context.Context, id uint) (*domain.Store, error) {
	var store domain.Store
	if err := r.db.WithContext(ctx).First(&store, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("find store by id: %w", err)
	}
	return &store, nil
}

func (r *StoreRepository) Search(ctx context.Context, search ports.StoreSearch) ([]domain.Store, error) {
	q := r.db.WithContext(ctx).Model(&domain.Store{}).
		Preload("Ratings").
		Preload("Owner")

	if search.Query != "" {
		pattern := "%" + strings.ToLower(search.Query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(address) LIKE ?", pattern, pattern)
	}

	var stores []domain.Store
	if err := q.Order(orderClause(search.SortBy, search.Order)).Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("search stores: %w", err)
	}
	return stores, nil
}

func (r *StoreRepository) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Store, error) {
	var stores []domain.Store
	if err := r.db.WithContext(ctx).
		Preload("Ratings").
		Preload("Ratings.User").
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("list stores by owner: %w", err)
	}
	return stores, nil
}

func (r *StoreRepository) ListWithRatings(ctx context.Context) ([]domain.Store, error) {
	var stores []domain.Store
	if err := r.db.WithContext(ctx).Preload("Ratings").Order("id").Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return stores, nil
}

func (r *StoreRepository) Filter(ctx context.Context, filter ports.StoreFilter) ([]domain.Store, error) {
	q := r.db.WithContext(ctx).Model(&domain.Store{}).
		Preload("Ratings").
		Preload("Owner")
	q = likeClause(q, "name", filter.Name)
	q = likeClause(q, "email", filter.Email)
	q = likeClause(q, "address", filter.Address)

	var stores []domain.Store
	if err := q.Order("id").Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("filter stores: %w", err)
	}
	return stores, nil
}

func (r *StoreRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Store{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count stores: %w", err)
	}
	return n, nil
}

// orderClause builds the ORDER BY from the closed sort enums. Values outside
// the enums never reach here: the service normalizes first.
func orderClause(sortBy ports.StoreSort, order ports.SortOrder) string {
	column := "name"
	if sortBy == ports.SortByEmail {
		column = "email"
	}
	direction := "asc"
	if order == ports.OrderDesc {
		direction = "desc"
	}
	return column + " " + direction
}
