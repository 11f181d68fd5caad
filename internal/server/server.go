package server

import (
	"errors"
	"log"
	"path/filepath"
	"runtime/debug"
	"strings"

	"go-inventory-pro/internal/config"
	"go-inventory-pro/internal/handler"
	"go-inventory-pro/internal/mailer"
	"go-inventory-pro/internal/middleware"
	"go-inventory-pro/internal/repository"
	"go-inventory-pro/internal/service"
	"go-inventory-pro/internal/ws"
	"go-inventory-pro/pkg/jwt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

const bodyLimit = 10 * 1024 * 1024

// Deps are the long-lived resources the HTTP layer is built on.
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	Tokens *jwt.Manager
	Mailer mailer.Sender
	Hub    *ws.Hub
}

// New wires repositories, services and handlers into a Fiber app.
func New(d Deps) *fiber.App {
	cfg := d.Config

	// Repositories
	productRepo := repository.NewProductRepo(d.DB)
	supplierRepo := repository.NewSupplierRepo(d.DB)
	userRepo := repository.NewUserRepo(d.DB)
	stockLogRepo := repository.NewStockLogRepo(d.DB)

	var notifier service.Notifier
	if d.Hub != nil {
		notifier = d.Hub
	}

	// Services
	authService := service.NewAuthService(userRepo, d.Tokens, d.Mailer, cfg.ResetURLBase)
	productService := service.NewProductService(productRepo, supplierRepo, notifier)
	supplierService := service.NewSupplierService(supplierRepo)
	stockService := service.NewStockService(productRepo, stockLogRepo, d.DB, notifier)
	dashService := service.NewDashboardService(stockLogRepo, cfg.LowStockThreshold)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	stockHandler := handler.NewStockHandler(stockService)
	dashHandler := handler.NewDashboardHandler(dashService)

	app := fiber.New(fiber.Config{
		AppName:      "InventoryPro API",
		BodyLimit:    bodyLimit,
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(helmet.New(helmet.Config{
		CrossOriginEmbedderPolicy: "unsafe-none",
	}))
	app.Use(middleware.RestrictOrigin(cfg.FrontendOrigin))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendOrigin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: cfg.FrontendOrigin != "*",
	}))

	app.Get("/health", handler.Health)

	api := app.Group("/api")
	api.Get("/health", handler.Health)

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/forgot", authHandler.Forgot)
	auth.Post("/reset", authHandler.Reset)

	// ============ PROTECTED ROUTES ============
	requireAuth := middleware.RequireAuth(d.Tokens)
	auth.Get("/me", requireAuth, authHandler.Me)

	products := api.Group("/products", requireAuth)
	products.Get("/", productHandler.GetProducts)
	products.Get("/:id", productHandler.GetProduct)
	products.Post("/", productHandler.CreateProduct)
	products.Put("/:id", productHandler.UpdateProduct)
	products.Delete("/:id", productHandler.DeleteProduct)

	suppliers := api.Group("/suppliers", requireAuth)
	suppliers.Get("/", supplierHandler.GetSuppliers)
	suppliers.Get("/:id", supplierHandler.GetSupplier)
	suppliers.Post("/", supplierHandler.CreateSupplier)
	suppliers.Put("/:id", supplierHandler.UpdateSupplier)
	suppliers.Delete("/:id", supplierHandler.DeleteSupplier)

	stock := api.Group("/stock", requireAuth)
	stock.Post("/update", stockHandler.AdjustStock)
	stock.Get("/logs/:productId", stockHandler.GetLogs)

	dashboard := api.Group("/dashboard", requireAuth)
	dashboard.Get("/stats", dashHandler.GetDashboardStats)
	dashboard.Get("/stock-movement", dashHandler.GetStockMovement)

	api.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// WebSocket Route
	if d.Hub != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if !websocket.IsWebSocketUpgrade(c) {
				return fiber.ErrUpgradeRequired
			}
			if _, err := d.Tokens.ValidateToken(c.Query("token")); err != nil {
				return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
			}
			return c.Next()
		})
		app.Get("/ws", websocket.New(d.Hub.Serve))
	}

	if cfg.ServeFrontend {
		serveFrontend(app, cfg.FrontendDist)
	}

	return app
}

// serveFrontend serves the built SPA and falls back to index.html so
// client-side routes survive a reload.
func serveFrontend(app *fiber.App, dist string) {
	app.Static("/", dist)
	index := filepath.Join(dist, "index.html")
	app.Get("/*", func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return fiber.ErrNotFound
		}
		return c.SendFile(index)
	})
}

// errorHandler renders handler errors as {"msg": ...}. Origin rejections and
// unexpected failures use {"error": ...}.
func errorHandler(c *fiber.Ctx, err error) error {
	if errors.Is(err, middleware.ErrOriginNotAllowed) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": middleware.ErrOriginNotAllowed.Message})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"msg": fe.Message})
	}

	log.Printf("[ERROR] %s %s: %v\n%s", c.Method(), c.Path(), err, debug.Stack())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
}
