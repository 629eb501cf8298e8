package main

import (
	"log"
	"time"

	"distribution_manager/internal/config"
	"distribution_manager/internal/database"
	"distribution_manager/internal/handlers"
	"distribution_manager/internal/migrations"
	"distribution_manager/internal/redis"
	"distribution_manager/internal/repository"
	"distribution_manager/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reportRepo := repository.NewReportRepository(db)
	retailerRepo := repository.NewRetailerRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	wholesalerRepo := repository.NewWholesalerRepository(db)
	designerRepo := repository.NewDesignerRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo, redisClient, time.Duration(cfg.CacheTTL)*time.Second)
	inventoryService := services.NewInventoryService(inventoryRepo)
	orderService := services.NewOrderService(orderRepo, orderItemRepo, productRepo, cfg.DefaultTaxRate)
	paymentService := services.NewPaymentService(paymentRepo, orderRepo)
	reportService := services.NewReportService(orderRepo, reportRepo, inventoryService)
	partnerService := services.NewPartnerService(retailerRepo, customerRepo, wholesalerRepo, designerRepo)

	// Initialize handlers
	apiHandler := handlers.NewAPIHandler(
		userService,
		productService,
		inventoryService,
		orderService,
		paymentService,
		reportService,
		partnerService,
		redisClient,
		time.Duration(cfg.SessionTimeout)*time.Second,
	)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.POST("/auth/login", apiHandler.Login)
		api.POST("/auth/logout", apiHandler.Logout)
		api.POST("/users", apiHandler.CreateUser)

		api.POST("/products", apiHandler.CreateProduct)
		api.GET("/products", apiHandler.ListProducts)
		api.GET("/products/:id", apiHandler.GetProduct)
		api.PUT("/products/:id", apiHandler.UpdateProduct)
		api.DELETE("/products/:id", apiHandler.DeleteProduct)

		api.POST("/inventory", apiHandler.CreateInventoryRecord)
		api.GET("/inventory", apiHandler.ListInventory)
		api.GET("/inventory/:product_id", apiHandler.GetInventoryRecord)
		api.POST("/inventory/:product_id/adjust", apiHandler.AdjustInventory)
		api.PUT("/inventory/:product_id/quantity", apiHandler.SetInventoryQuantity)
		api.PUT("/inventory/:product_id/thresholds", apiHandler.UpdateInventoryThresholds)
		api.GET("/inventory/:product_id/movements", apiHandler.GetInventoryMovements)

		api.POST("/orders", apiHandler.CreateOrder)
		api.POST("/orders/preview", apiHandler.PreviewOrderTotals)
		api.GET("/orders", apiHandler.ListOrders)
		api.GET("/orders/:id", apiHandler.GetOrder)
		api.PUT("/orders/:id/status", apiHandler.UpdateOrderStatus)
		api.POST("/orders/:id/payments", apiHandler.RecordPayment)
		api.GET("/orders/:id/balance", apiHandler.GetOrderBalance)

		api.POST("/retailers", apiHandler.CreateRetailer)
		api.GET("/retailers", apiHandler.ListRetailers)
		api.GET("/retailers/:id", apiHandler.GetRetailer)
		api.GET("/retailers/:id/orders", apiHandler.GetRetailerOrders)
		api.POST("/customers", apiHandler.CreateCustomer)
		api.GET("/customers", apiHandler.ListCustomers)
		api.GET("/customers/:id", apiHandler.GetCustomer)
		api.GET("/customers/:id/orders", apiHandler.GetCustomerOrders)
		api.POST("/wholesalers", apiHandler.CreateWholesaler)
		api.GET("/wholesalers", apiHandler.ListWholesalers)
		api.POST("/designers", apiHandler.CreateDesigner)
		api.GET("/designers", apiHandler.ListDesigners)

		api.GET("/reports/sales", apiHandler.SalesSummary)
		api.GET("/reports/low-stock", apiHandler.LowStockReport)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
