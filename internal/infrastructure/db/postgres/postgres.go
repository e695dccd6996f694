// Package postgres provides the gorm-backed repositories for users, stores
// and ratings. Uniqueness (account email, store email, one store per owner,
// one rating per user/store pair) is enforced by database constraints;
// TranslateError is enabled so constraint violations surface as
// gorm.ErrDuplicatedKey and can be mapped to domain conflicts.
package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// Open connects to PostgreSQL and returns a configured *gorm.DB.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the three-table schema, including the unique
// indexes the domain invariants depend on.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.User{}, &domain.Store{}, &domain.Rating{})
}
