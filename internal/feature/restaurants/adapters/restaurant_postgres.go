// Package adapters provides repository implementations for the restaurants feature.
package adapters

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"rapideat_backend/internal/feature/restaurants/domain/entity"
	"rapideat_backend/internal/feature/restaurants/usecase"
)

// queryLimit bounds how many rows a catalog query pulls from the database.
const queryLimit = 60

// restaurantPostgres is a Postgres implementation of the RestaurantRepository interface.
type restaurantPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure restaurantPostgres implements RestaurantRepository.
var _ usecase.RestaurantRepository = (*restaurantPostgres)(nil)

// NewRestaurantPostgres creates a new instance of restaurantPostgres.
func NewRestaurantPostgres(db *gorm.DB) *restaurantPostgres {
	return &restaurantPostgres{db: db}
}

// Query pushes the scalar predicates down to SQL. Free text also scans the
// serialized cuisines column, so a cuisine-only hit still comes back from the
// database; the Cuisines list filter stays in the usecase, which re-applies
// every predicate precisely.
func (r *restaurantPostgres) Query(ctx context.Context, f usecase.Filters) ([]entity.Restaurant, error) {
	tx := r.db.WithContext(ctx).Model(&entity.Restaurant{})

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		pattern := "%" + q + "%"
		tx = tx.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(locality) LIKE ? OR LOWER(cuisines) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if f.MinRating > 0 {
		tx = tx.Where("rating >= ?", f.MinRating)
	}
	if f.MaxCost > 0 {
		tx = tx.Where("cost_for_two <= ?", f.MaxCost)
	}

	var out []entity.Restaurant
	if err := tx.Limit(queryLimit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceAll swaps the catalog contents in one transaction, so readers never
// observe a half-seeded table.
func (r *restaurantPostgres) ReplaceAll(ctx context.Context, restaurants []entity.Restaurant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.Restaurant{}).Error; err != nil {
			return err
		}
		if len(restaurants) == 0 {
			return nil
		}
		return tx.CreateInBatches(restaurants, 100).Error
	})
}
