package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rajifPy/kantin-stok/internal/handler"
	"github.com/rajifPy/kantin-stok/internal/middleware"
	"github.com/rajifPy/kantin-stok/internal/model"
	"github.com/rajifPy/kantin-stok/internal/repository"
	"github.com/rajifPy/kantin-stok/internal/service"
	"github.com/rajifPy/kantin-stok/internal/ws"
	"github.com/rajifPy/kantin-stok/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	db.AutoMigrate(&model.Product{}, &model.Transaction{}, &model.User{})

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	userRepo := repository.NewUserRepo(db)

	catalogService := service.NewCatalogService(productRepo, wsHub)
	checkoutService := service.NewCheckoutService(txRepo, db, wsHub)
	reportService := service.NewReportService(txRepo)
	authService := service.NewAuthService(userRepo)

	productHandler := handler.NewProductHandler(catalogService)
	txHandler := handler.NewTransactionHandler(checkoutService)
	barcodeHandler := handler.NewBarcodeHandler(catalogService)
	reportHandler := handler.NewReportHandler(reportService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Kantin Stok v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// Barcode rendering tidak butuh login (dipakai halaman cetak label)
	api.Post("/barcode/generate", barcodeHandler.Generate)
	api.Get("/barcode/generate", barcodeHandler.GenerateQuery)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Product Routes
	protected.Get("/products", productHandler.GetProducts)
	protected.Post("/products", productHandler.CreateProduct)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Put("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", productHandler.DeleteProduct)
	protected.Patch("/products/:id", productHandler.AdjustStock)

	// Barcode Routes
	protected.Post("/barcode/scan", barcodeHandler.Scan)
	protected.Get("/barcode/scan", barcodeHandler.ScanQuery)
	protected.Get("/barcode/new-id", barcodeHandler.NewID)

	// Transaction Routes
	protected.Get("/transactions", txHandler.GetTransactions)
	protected.Get("/transactions/:id", txHandler.GetTransaction)
	protected.Post("/transactions", txHandler.CreateTransaction)
	protected.Post("/transactions/cart", txHandler.CheckoutCart)

	// Report Routes
	protected.Get("/reports/stats", reportHandler.GetStats)
	protected.Get("/reports/export", reportHandler.Export)

	// WebSocket Route (live update stok untuk dashboard)
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByUsername("admin"); err == nil {
		return
	}

	admin := &model.User{
		Username: "admin",
		FullName: "Administrator Kantin",
		IsActive: true,
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created: admin")
	}
}
