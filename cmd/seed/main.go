package main

import (
	"log"
	"math/rand"
	"time"

	"go-inventory-pro/internal/config"
	"go-inventory-pro/internal/model"
	"go-inventory-pro/internal/repository"
	"go-inventory-pro/internal/seed"
	"go-inventory-pro/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(database.Options{Driver: cfg.DBDriver, DSN: cfg.DatabaseURL})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := model.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to migrate database: %v", err)
	}

	if _, err := seed.Admin(repository.NewUserRepo(db), cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		log.Fatalf("❌ Failed to seed admin: %v", err)
	}
	if err := seed.Samples(db, rand.New(rand.NewSource(time.Now().UnixNano()))); err != nil {
		log.Fatalf("❌ Failed to seed sample data: %v", err)
	}

	log.Println("✅ Seeding finished")
}
