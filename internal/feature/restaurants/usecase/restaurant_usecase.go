// Package usecase implements the business logic for the restaurants feature.
package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"rapideat_backend/internal/feature/restaurants/domain/entity"
)

// maxResults caps how many restaurants a single query returns.
const maxResults = 60

// SortKey selects the ordering of query results.
type SortKey string

const (
	// SortRelevance is the default ordering: promoted entries first, then by rating.
	SortRelevance SortKey = "relevance"
	// SortRating orders by rating, best first.
	SortRating SortKey = "rating"
	// SortDelivery orders by delivery time, fastest first.
	SortDelivery SortKey = "delivery"
	// SortCost orders by cost for two, cheapest first.
	SortCost SortKey = "cost"
)

// Filters narrows a catalog query.
type Filters struct {
	Query     string   // free-text search over name, description, locality, cuisines
	Cuisines  []string // match any of these cuisines
	MinRating float64  // 0 disables the predicate
	MaxCost   int      // 0 disables the predicate
	Sort      SortKey
}

// Source reports which backing data served a query result.
type Source string

const (
	// SourceDatabase means the result came from the primary store.
	SourceDatabase Source = "database"
	// SourceStatic means the built-in sample catalog served the result.
	SourceStatic Source = "static"
)

// QueryResult is a filtered, sorted catalog slice plus its origin.
type QueryResult struct {
	Restaurants []entity.Restaurant
	Source      Source
}

// RestaurantRepository abstracts the persistence layer for the catalog.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type RestaurantRepository interface {
	// Query returns restaurants matching the pushdown-friendly subset of the
	// filters. Callers must not rely on it applying every predicate.
	Query(ctx context.Context, f Filters) ([]entity.Restaurant, error)

	// ReplaceAll atomically swaps the catalog contents, used by seeding.
	ReplaceAll(ctx context.Context, restaurants []entity.Restaurant) error
}

// RestaurantUsecase serves catalog queries with a static fallback: when the
// database is unreachable or empty the built-in sample list answers instead,
// and the result reports which source was used.
type RestaurantUsecase struct {
	repo     RestaurantRepository
	fallback []entity.Restaurant
}

// NewRestaurantUsecase creates a RestaurantUsecase. The repository may be nil
// when the process runs without a database; every query then serves the
// fallback catalog.
func NewRestaurantUsecase(repo RestaurantRepository, fallback []entity.Restaurant) *RestaurantUsecase {
	return &RestaurantUsecase{repo: repo, fallback: fallback}
}

// Search returns the catalog entries matching the filters, sorted and capped.
// A repository failure is logged and degrades to the static catalog rather
// than failing the request.
func (u *RestaurantUsecase) Search(ctx context.Context, f Filters) (*QueryResult, error) {
	rows := u.fallback
	source := SourceStatic

	if u.repo != nil {
		dbRows, err := u.repo.Query(ctx, f)
		switch {
		case err != nil:
			slog.Error("restaurant query failed, serving static catalog", "error", err)
		case len(dbRows) > 0:
			rows = dbRows
			source = SourceDatabase
		}
	}

	// The repository only pushes down part of the filters, and the static
	// catalog none of them, so every predicate is re-applied here.
	matched := make([]entity.Restaurant, 0, len(rows))
	for _, r := range rows {
		if matches(r, f) {
			matched = append(matched, r)
		}
	}

	sortRestaurants(matched, f.Sort)

	if len(matched) > maxResults {
		matched = matched[:maxResults]
	}

	return &QueryResult{Restaurants: matched, Source: source}, nil
}

// matches applies every filter predicate to one restaurant.
func matches(r entity.Restaurant, f Filters) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		haystack := strings.ToLower(strings.Join(append([]string{r.Name, r.Description, r.Locality}, r.Cuisines...), " "))
		if !strings.Contains(haystack, q) {
			return false
		}
	}

	if len(f.Cuisines) > 0 && !hasAnyCuisine(r.Cuisines, f.Cuisines) {
		return false
	}

	if f.MinRating > 0 && r.Rating < f.MinRating {
		return false
	}

	if f.MaxCost > 0 && r.CostForTwo > f.MaxCost {
		return false
	}

	return true
}

func hasAnyCuisine(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

// sortRestaurants orders the slice in place according to the sort key.
func sortRestaurants(rows []entity.Restaurant, key SortKey) {
	switch key {
	case SortRating:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Rating > rows[j].Rating })
	case SortDelivery:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].DeliveryTime < rows[j].DeliveryTime })
	case SortCost:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].CostForTwo < rows[j].CostForTwo })
	default: // SortRelevance
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].Promoted != rows[j].Promoted {
				return rows[i].Promoted
			}
			return rows[i].Rating > rows[j].Rating
		})
	}
}
