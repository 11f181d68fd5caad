package main

import (
	"flag"
	"log"
	"os"

	"go-inventory-pro/internal/config"
	"go-inventory-pro/internal/repository"
	"go-inventory-pro/pkg/database"
)

func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "new password")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	// 1. Load Env
	cfg := config.Load()

	// 2. Setup Database
	db, err := database.Connect(database.Options{Driver: cfg.DBDriver, DSN: cfg.DatabaseURL})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// 3. Find user
	users := repository.NewUserRepo(db)
	user, err := users.FindByEmail(*email)
	if err != nil {
		log.Fatalf("❌ User %s not found in database: %v", *email, err)
	}

	// 4. Hash new password
	if err := user.SetPassword(*password); err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	// 5. Update
	if err := users.UpdatePassword(user.ID, user.Password); err != nil {
		log.Fatalf("❌ Failed to update password in DB: %v", err)
	}

	log.Printf("✅ Password for %s has been reset", user.Email)
}
