// Command seed fills the development database with fake data.
package main

import (
	"flag"
	"log"

	"bloglist/internal/config"
	"bloglist/internal/database"
	"bloglist/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 5, "number of users to create")
	numBlogs := flag.Int("blogs", 25, "number of blogs to create")
	clean := flag.Bool("clean", false, "delete existing data first")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumBlogs:    *numBlogs,
		ShouldClean: *clean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
