package main

import (
	"log"
	"os"
	"time"

	"livescore-service/database"
	"livescore-service/services"
)

// 重建并填充演示比赛数据
func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := database.Connect(dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Connected to database successfully")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	repo := database.NewMatchRepository(db)

	if err := repo.Truncate(); err != nil {
		log.Fatalf("Failed to truncate tables: %v", err)
	}

	matches := services.SeedMatches(time.Now())
	for _, m := range matches {
		if err := repo.InsertMatch(m); err != nil {
			log.Fatalf("Failed to insert match %d: %v", m.ID, err)
		}
		log.Printf("Seeded match %d: %s vs %s (%s)", m.ID, m.HomeTeam, m.AwayTeam, m.Status)
	}

	log.Printf("Database seeded with %d matches", len(matches))
}
