package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"rapideat_backend/internal/app/di"
	"rapideat_backend/internal/app/router"
	authadapters "rapideat_backend/internal/feature/auth/adapters"
	authhandler "rapideat_backend/internal/feature/auth/transport/handler"
	authusecase "rapideat_backend/internal/feature/auth/usecase"
	restaurantadapters "rapideat_backend/internal/feature/restaurants/adapters"
	"rapideat_backend/internal/feature/restaurants/data"
	restauranthandler "rapideat_backend/internal/feature/restaurants/transport/handler"
	restaurantusecase "rapideat_backend/internal/feature/restaurants/usecase"
	"rapideat_backend/internal/platform/cache"
	"rapideat_backend/internal/platform/config"
	infradb "rapideat_backend/internal/platform/db"
	"rapideat_backend/internal/platform/password"
	infraredis "rapideat_backend/internal/platform/redis"
	"rapideat_backend/internal/platform/token"
)

func main() {
	cfg := config.Load()

	if cfg.AuthSecret == "" {
		log.Println("[WARN] AUTH_SECRET is not set. Set a strong secret in production.")
	}

	// db; without a DSN the server still starts and serves the static catalog
	var db *gorm.DB
	if cfg.DatabaseDSN == "" {
		log.Println("[WARN] DATABASE_DSN is not set. Serving the static catalog only; auth requires a database.")
	} else {
		db = infradb.OpenDB(cfg.DatabaseDSN, cfg.UsersTable, cfg.SessionsTable)
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.RedisAddr == "" {
		log.Println("[WARN] Redis not configured. Running without cache.")
	} else if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	var userRepo authusecase.UserRepository = authadapters.NewUserUnavailable()
	var restaurantRepo restaurantusecase.RestaurantRepository
	if db != nil {
		userRepo = authadapters.NewUserPostgres(db, cfg.UsersTable)
		// Catalog reads go through the Redis cache when available
		restaurantRepo = cache.NewCachingRestaurantRepository(rdb, 5*time.Minute,
			restaurantadapters.NewRestaurantPostgres(db), "restaurants")
	}
	sessionRepo := di.NewSessionRepository(rdb, db, cfg.SessionsTable)

	// Usecase
	authUC := authusecase.NewAuthUsecase(
		userRepo,
		sessionRepo,
		password.NewHasher(),
		token.NewCodec(cfg.AuthSecret),
		cfg.SessionTTL,
	)
	restaurantsUC := restaurantusecase.NewRestaurantUsecase(restaurantRepo, data.SampleRestaurants())

	// Handler
	authH := authhandler.NewAuthHandler(authUC, authhandler.CookieConfig{
		Name:   cfg.CookieName,
		MaxAge: cfg.CookieMaxAge(),
		Secure: cfg.Production,
	})
	restaurantsH := restauranthandler.NewRestaurantsHandler(restaurantsUC)

	r := router.NewRouter(cfg.CORSOrigins, authH, restaurantsH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
