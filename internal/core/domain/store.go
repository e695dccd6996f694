package domain

import (
	"errors"
	"time"
)

var ErrStoreNotFound = errors.New("store not found")
var ErrOwnerHasStore = errors.New("owner already has a store")
var ErrStoreEmailExists = errors.New("store email already exists")

// Store is a rateable business listing. Each store belongs to exactly one
// owner, and an owner holds at most one store (unique index on owner_id).
type Store struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"size:60;not null"`
	Email     string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Address   string    `json:"address" gorm:"size:400"`
	OwnerID   uint      `json:"ownerId" gorm:"uniqueIndex;not null"`
	Owner     *User     `json:"-" gorm:"foreignKey:OwnerID"`
	Ratings   []Rating  `json:"-" gorm:"foreignKey:StoreID"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
