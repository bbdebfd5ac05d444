package main

import (
	"context"
	"fmt"

	"github.com/bounty-bunny/DataSage/internal/config"
	"github.com/bounty-bunny/DataSage/internal/repository/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	fmt.Printf("Opening database at %s...\n", cfg.Database.Path)

	db, err := sqlite.NewDB(context.Background(), cfg.Database)
	if err != nil {
		panic(fmt.Sprintf("Failed to open database: %v", err))
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		panic(fmt.Sprintf("Failed to run migrations: %v", err))
	}

	fmt.Println("Migrations applied successfully")
}
