// Package router wires the HTTP routes of the RapidEat backend.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "rapideat_backend/internal/feature/auth/transport/handler"
	restauranthandler "rapideat_backend/internal/feature/restaurants/transport/handler"
	"rapideat_backend/internal/platform/http/handler"
	"rapideat_backend/internal/shared/ratelimiter"
)

// loginRateLimit caps credential attempts per IP per minute.
const loginRateLimit = 10

// NewRouter builds the gin engine with all routes registered. The session
// travels in a cookie, so CORS must allow credentials and may not use a
// wildcard origin.
func NewRouter(corsOrigins []string, authH *authhandler.AuthHandler, restaurantsH *restauranthandler.RestaurantsHandler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Liveness probe
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	// Auth flow; all session state lives in the HttpOnly cookie.
	// The credential endpoints are rate limited to slow down brute force.
	limited := ratelimiter.Middleware(ratelimiter.NewRateLimiter(loginRateLimit, time.Minute))
	r.POST("/auth/register", limited, authH.Register)
	r.POST("/auth/login", limited, authH.Login)
	r.POST("/auth/logout", authH.Logout)
	r.GET("/auth/me", authH.Me)

	// Discovery catalog, intentionally public
	r.GET("/restaurants", restaurantsH.List)

	return r
}
