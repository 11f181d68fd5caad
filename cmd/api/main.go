package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-inventory-pro/internal/config"
	"go-inventory-pro/internal/mailer"
	"go-inventory-pro/internal/model"
	"go-inventory-pro/internal/repository"
	"go-inventory-pro/internal/seed"
	"go-inventory-pro/internal/server"
	"go-inventory-pro/internal/ws"
	"go-inventory-pro/pkg/database"
	"go-inventory-pro/pkg/jwt"
)

func main() {
	// 1. Load Env
	cfg := config.Load()

	// 2. Setup Database
	db, err := database.Connect(database.Options{Driver: cfg.DBDriver, DSN: cfg.DatabaseURL})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to migrate database: %v", err)
	}
	log.Println("✅ Database connected")

	// 3. Seed default admin user
	if _, err := seed.Admin(repository.NewUserRepo(db), cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		log.Printf("Warning: Failed to seed admin user: %v", err)
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Mail
	var sender mailer.Sender = mailer.LogSender{}
	if cfg.EmailUser != "" {
		smtp, err := mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.EmailUser,
			Password: cfg.EmailPass,
			From:     cfg.EmailFrom,
		})
		if err != nil {
			log.Fatalf("❌ Failed to configure mailer: %v", err)
		}
		sender = smtp
	} else {
		log.Println("[WARN] EMAIL_USER is not set, reset emails are written to the log")
	}

	// 6. Setup Fiber
	app := server.New(server.Deps{
		Config: cfg,
		DB:     db,
		Tokens: jwt.NewManager(cfg.JWTSecret, jwt.DefaultTTL),
		Mailer: sender,
		Hub:    wsHub,
	})

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("❌ Server stopped: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	wsHub.Stop()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	if err := database.Close(db); err != nil {
		log.Printf("Warning: closing database: %v", err)
	}

	log.Println("Server exited")
}
