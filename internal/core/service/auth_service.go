package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// bcryptCost is pinned rather than bcrypt.DefaultCost so stored hashes do not
// silently change strength across library upgrades.
const bcryptCost = 10

// AuthService implements registration, login, session introspection and
// password changes.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (uint, error) {
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return 0, err
	}
	if err := domain.ValidateName(input.Name); err != nil {
		return 0, err
	}
	if err := domain.ValidateAddress(input.Address); err != nil {
		return 0, err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return 0, err
	}

	// Pre-check narrows the common case; the unique index on email is what
	// actually rejects a concurrent duplicate.
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return 0, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return 0, err
	}

	user := &domain.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
		Address:  input.Address,
		Role:     role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*domain.User, string, error) {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if domain.Role(input.Role) != user.Role {
		return nil, "", domain.ErrRoleMismatch
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Me(ctx context.Context, userID uint) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) UpdatePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	if err := domain.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, string(hash))
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
