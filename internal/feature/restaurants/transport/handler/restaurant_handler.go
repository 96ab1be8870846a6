// Package handler provides the HTTP handlers for the restaurants feature.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"rapideat_backend/internal/api"
	"rapideat_backend/internal/feature/restaurants/usecase"
)

// RestaurantsUsecase defines the catalog operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type RestaurantsUsecase interface {
	Search(ctx context.Context, f usecase.Filters) (*usecase.QueryResult, error)
}

// RestaurantsHandler handles HTTP requests for the discovery catalog.
type RestaurantsHandler struct {
	uc RestaurantsUsecase
}

// NewRestaurantsHandler creates a new instance of RestaurantsHandler.
func NewRestaurantsHandler(uc RestaurantsUsecase) *RestaurantsHandler {
	return &RestaurantsHandler{uc: uc}
}

// List returns catalog entries matching the query parameters.
//
// Endpoint example:
// GET /restaurants?q=dosa&cuisine=South%20Indian&cuisine=Breakfast&minRating=4&maxCost=400&sort=rating
func (h *RestaurantsHandler) List(c *gin.Context) {
	f := usecase.Filters{
		Query:    c.Query("q"),
		Cuisines: splitCuisines(c.QueryArray("cuisine")),
		Sort:     usecase.SortKey(c.DefaultQuery("sort", string(usecase.SortRelevance))),
	}
	// Unparsable numbers just disable the predicate
	f.MinRating, _ = strconv.ParseFloat(c.Query("minRating"), 64)
	f.MaxCost, _ = strconv.Atoi(c.Query("maxCost"))

	result, err := h.uc.Search(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "catalog unavailable"})
		return
	}

	c.JSON(http.StatusOK, api.RestaurantListResponse{
		Data:   result.Restaurants,
		Source: string(result.Source),
	})
}

// splitCuisines accepts both repeated cuisine params and a single
// comma-separated value, which is what the frontend sends.
func splitCuisines(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
