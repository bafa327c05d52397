package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/database"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command line flags
	reset := flag.Bool("reset", false, "Delete every restaurant, pizza and price before seeding")
	flag.Parse()

	_ = godotenv.Load()

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.InitDatabase(database.FromAppConfig(conf))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if *reset {
		if err := database.Reset(db); err != nil {
			log.Fatal("Failed to reset database:", err)
		}
		fmt.Println("✓ Existing data removed")
	}

	seeded, err := database.SeedIfEmpty(db)
	if err != nil {
		log.Fatal("Failed to seed database:", err)
	}
	if !seeded {
		fmt.Println("Database already has restaurants, nothing seeded (use -reset to start over)")
		return
	}
	fmt.Println("✓ Seeded restaurants, pizzas and prices")
}
