package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of actor roles.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
	RoleOwner Role = "OWNER"
)

// ParseRole converts a wire string into a Role. The zero value "" and any
// unknown string are rejected.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	case RoleOwner:
		return RoleOwner, nil
	default:
		return "", fmt.Errorf("%w: role must be one of ADMIN, USER, OWNER", ErrValidation)
	}
}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser || r == RoleOwner
}

var ErrValidation = errors.New("invalid input")
var ErrUnauthorized = errors.New("unauthorized")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrRoleMismatch = errors.New("role mismatch")
var ErrForbidden = errors.New("access forbidden")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailExists = errors.New("email already exists")

// User models an account on the platform. The password hash never leaves the
// server; it is excluded from every serialized form.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"size:60;not null"`
	Email     string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Address   string    `json:"address" gorm:"size:400"`
	Role      Role      `json:"role" gorm:"size:16;not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// PublicProfile is the client-facing view of a User.
type PublicProfile struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Role    Role   `json:"role"`
}

// Public strips everything a client is not allowed to see.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
		Role:    u.Role,
	}
}

const (
	nameMinLen      = 3
	nameMaxLen      = 60
	addressMaxLen   = 400
	passwordMinLen  = 8
	passwordMaxLen  = 16
	passwordSymbols = "!@#$%^&*"
)

// ValidateName enforces the [3,60] character bound on account and store names.
func ValidateName(name string) error {
	if l := len(name); l < nameMinLen || l > nameMaxLen {
		return fmt.Errorf("%w: name must be between 3 and 60 characters", ErrValidation)
	}
	return nil
}

// ValidateAddress enforces the 400 character ceiling on addresses.
func ValidateAddress(address string) error {
	if len(address) > addressMaxLen {
		return fmt.Errorf("%w: address must be under 400 characters", ErrValidation)
	}
	return nil
}

// ValidatePassword enforces the registration password rule: 8-16 characters
// with at least one uppercase letter and one symbol from !@#$%^&*.
// Implemented as a scan because Go's regexp has no lookahead.
func ValidatePassword(password string) error {
	if l := len(password); l < passwordMinLen || l > passwordMaxLen {
		return passwordRuleError()
	}
	var upper, symbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	if !upper || !symbol {
		return passwordRuleError()
	}
	return nil
}

func passwordRuleError() error {
	return fmt.Errorf("%w: password must be 8-16 characters and include one uppercase and one special character", ErrValidation)
}
