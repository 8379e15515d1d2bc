package main

import (
	"log"
	"os"

	"github.com/mdaamman/caloriestracker/config"
	"github.com/mdaamman/caloriestracker/routes"
	"github.com/mdaamman/caloriestracker/services"
)

func main() {
	config.InitDB()

	// `./caloriestracker seed` loads the food catalog and exits. Safe to
	// re-run; the loader upserts by name.
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		created, updated, err := services.SeedFoods()
		if err != nil {
			log.Fatalf("food seed failed: %v", err)
		}
		log.Printf("food seed completed: %d created, %d updated", created, updated)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	r.Run(":" + port)
}
