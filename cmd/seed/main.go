// Command seed loads the restaurant catalog into the database, replacing
// whatever is there. Without -file it loads the built-in sample catalog.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"rapideat_backend/internal/feature/restaurants/adapters"
	"rapideat_backend/internal/feature/restaurants/data"
	"rapideat_backend/internal/platform/config"
	infradb "rapideat_backend/internal/platform/db"
)

func main() {
	file := flag.String("file", "", "path to a JSON array of restaurants; empty seeds the built-in catalog")
	flag.Parse()

	cfg := config.Load()
	db := infradb.OpenDB(cfg.DatabaseDSN, cfg.UsersTable, cfg.SessionsTable)
	repo := adapters.NewRestaurantPostgres(db)

	restaurants := data.SampleRestaurants()
	if *file != "" {
		b, err := os.ReadFile(*file)
		if err != nil {
			log.Fatal("failed to read seed file:", err)
		}
		restaurants = nil
		if err := json.Unmarshal(b, &restaurants); err != nil {
			log.Fatal("failed to parse seed file:", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := repo.ReplaceAll(ctx, restaurants); err != nil {
		log.Fatal(err)
	}
	log.Printf("seed ok: %d restaurants", len(restaurants))
}
