package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is only used when JWT_SECRET is unset. Never rely on it in production.
const DefaultJWTSecret = "your-super-secret-key-change-in-production"

type Config struct {
	Port string

	DBDriver    string
	DatabaseURL string

	JWTSecret string

	FrontendOrigin string
	ResetURLBase   string

	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string
	EmailFrom string

	SeedAdminEmail    string
	SeedAdminPassword string

	ServeFrontend bool
	FrontendDist  string

	LowStockThreshold int
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	cfg := &Config{
		Port:              getEnv("PORT", "5000"),
		DBDriver:          strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		FrontendOrigin:    getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),
		SMTPHost:          getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:          getEnvInt("SMTP_PORT", 587),
		EmailUser:         getEnv("EMAIL_USER", ""),
		EmailPass:         getEnv("EMAIL_PASS", ""),
		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@example.com"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASS", "password"),
		ServeFrontend:     getEnv("SERVE_FRONTEND", "false") == "true",
		FrontendDist:      getEnv("FRONTEND_DIST", "../frontend/dist"),
		LowStockThreshold: getEnvInt("LOW_STOCK_THRESHOLD", 10),
	}
	cfg.ResetURLBase = getEnv("RESET_URL_BASE", cfg.FrontendOrigin)
	cfg.EmailFrom = getEnv("EMAIL_FROM", cfg.EmailUser)

	if cfg.DatabaseURL == "" && cfg.DBDriver == "postgres" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_NAME", "inventorypro"),
			getEnv("DB_PORT", "5432"),
		)
	}
	if cfg.DatabaseURL == "" && cfg.DBDriver == "sqlite" {
		cfg.DatabaseURL = "inventorypro.db"
	}

	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set, falling back to the built-in development secret")
		cfg.JWTSecret = DefaultJWTSecret
	}
	if cfg.FrontendOrigin == "*" {
		log.Println("[WARN] FRONTEND_ORIGIN is '*', every browser origin is allowed")
	}
	if cfg.ResetURLBase == "*" {
		// Reset links need a concrete host.
		cfg.ResetURLBase = "http://localhost:5173"
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[WARN] %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return n
}
