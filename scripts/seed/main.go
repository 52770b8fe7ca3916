// Standalone seeder: populates the database with sample clients, tracking
// history and calculation snapshots.
package main

import (
	"log"

	"github.com/nutricoach/coach-api/internal/config"
	"github.com/nutricoach/coach-api/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
}
