package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// AdminService implements the admin console: dashboard metrics, account
// provisioning and filtered listings. All reads are full scans over the three
// tables, which is fine at admin-console scale.
type AdminService struct {
	auth    ports.AuthService
	users   ports.UserRepository
	stores  ports.StoreRepository
	ratings ports.RatingRepository
	logger  zerolog.Logger
}

func NewAdminService(auth ports.AuthService, users ports.UserRepository, stores ports.StoreRepository, ratings ports.RatingRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{auth: auth, users: users, stores: stores, ratings: ratings, logger: logger}
}

func (s *AdminService) Dashboard(ctx context.Context) (*ports.DashboardResult, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalStores, err := s.stores.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalRatings, err := s.ratings.Count(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	profiles := make([]domain.PublicProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Public())
	}

	stores, err := s.stores.ListWithRatings(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]ports.DashboardStore, 0, len(stores))
	for _, st := range stores {
		summaries = append(summaries, ports.DashboardStore{
			ID:            st.ID,
			Name:          st.Name,
			Email:         st.Email,
			Address:       st.Address,
			AverageRating: domain.AverageRating(st.Ratings),
		})
	}

	return &ports.DashboardResult{
		Stats: ports.DashboardStats{
			TotalUsers:   totalUsers,
			TotalStores:  totalStores,
			TotalRatings: totalRatings,
		},
		Users:  profiles,
		Stores: summaries,
	}, nil
}

// CreateUser runs the exact same validation pipeline as self-registration;
// only the route policy differs.
func (s *AdminService) CreateUser(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	id, err := s.auth.Register(ctx, input)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Uint("user_id", user.ID).Str("role", string(user.Role)).Msg("user created by admin")
	return user, nil
}

func (s *AdminService) FilterUsers(ctx context.Context, filter ports.UserFilter) ([]domain.PublicProfile, error) {
	users, err := s.users.Filter(ctx, filter)
	if err != nil {
		return nil, err
	}
	profiles := make([]domain.PublicProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Public())
	}
	return profiles, nil
}

func (s *AdminService) FilterStores(ctx context.Context, filter ports.StoreFilter) ([]ports.StoreSummary, error) {
	stores, err := s.stores.Filter(ctx, filter)
	if err != nil {
		return nil, err
	}
	summaries := make([]ports.StoreSummary, 0, len(stores))
	for _, st := range stores {
		summary := ports.StoreSummary{
			ID:            st.ID,
			Name:          st.Name,
			Email:         st.Email,
			Address:       st.Address,
			AverageRating: domain.AverageRating(st.Ratings),
		}
		if st.Owner != nil {
			summary.Owner = &ports.OwnerInfo{Name: st.Owner.Name, Email: st.Owner.Email}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// UserDetails returns one account's profile; for owners it also reports the
// average rating of their store.
func (s *AdminService) UserDetails(ctx context.Context, id uint) (*ports.UserDetail, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ports.UserDetail{
		Name:    user.Name,
		Email:   user.Email,
		Address: user.Address,
		Role:    user.Role,
	}

	if user.Role == domain.RoleOwner {
		stores, err := s.stores.ListByOwner(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		detail.AverageRating = domain.AverageRatingEmpty
		if len(stores) > 0 {
			detail.AverageRating = domain.AverageRating(stores[0].Ratings)
		}
	}
	return detail, nil
}
