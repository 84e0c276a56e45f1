package main

import (
	"log"
	"time"

	"storefront-app/config"
	"storefront-app/internal/address"
	"storefront-app/internal/cart"
	"storefront-app/internal/checkout"
	"storefront-app/internal/client"
	"storefront-app/internal/coupon"
	"storefront-app/internal/draft"
	"storefront-app/internal/handler"
	"storefront-app/internal/middleware"
	"storefront-app/internal/models"
	"storefront-app/internal/orders"
	"storefront-app/pkg/database"
	"storefront-app/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	appLog := logger.New(config.AppConfig.Server.Env)

	// 2. Connect to Database
	database.Connect()

	// 3. Auto-Migrate Models
	log.Println("Running migrations...")
	err := database.DB.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully.")

	// 3a. Seed Data
	database.SeedAdmin()

	// 4. Build checkout components
	catalog, err := address.LoadCatalog(config.AppConfig.Checkout.AddressCatalogPath)
	if err != nil {
		log.Fatalf("Failed to load address catalog: %v", err)
	}

	var drafts draft.Store
	if addr := config.AppConfig.Checkout.RedisAddr; addr != "" {
		drafts = draft.NewRedisStore(addr, config.AppConfig.Checkout.RedisPassword)
	} else {
		appLog.Warn().Msg("REDIS_ADDR not set, checkout drafts will not survive restarts")
		drafts = draft.NewMemoryStore()
	}

	couponClient := client.NewCouponClient(config.AppConfig.Checkout.CouponServiceURL)
	orderClient := client.NewOrderClient(config.AppConfig.Checkout.OrderServiceURL)

	carts := cart.NewStore(database.DB)
	orderStore := orders.NewStore(database.DB)
	sessions := checkout.NewManager(drafts, appLog)
	couponEngine := coupon.NewEngine(couponClient)
	composer := checkout.NewComposer(
		catalog,
		carts,
		orderClient,
		couponClient,
		drafts,
		orderStore,
		checkout.Config{
			StoreID:        config.AppConfig.Checkout.StoreID,
			SalesChannelID: config.AppConfig.Checkout.SalesChannelID,
		},
		appLog,
	)

	// 5. Initialize Router
	r := gin.Default()

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 6. Setup Routes
	authHandler := &handler.AuthHandler{}
	authRoutes := r.Group("/api/v1/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	userRoutes := r.Group("/api/v1/user")
	userRoutes.Use(middleware.RequireAuth())
	{
		userRoutes.PUT("/profile", authHandler.UpdateProfile)
		userRoutes.PUT("/password", authHandler.ChangePassword)
	}

	publicHandler := &handler.PublicHandler{}
	publicRoutes := r.Group("/api/v1/public")
	{
		publicRoutes.GET("/site-info", publicHandler.GetSiteInfo)
		publicRoutes.GET("/products", publicHandler.ListProducts)
		publicRoutes.GET("/products/:slug", publicHandler.GetProduct)
		publicRoutes.GET("/payment-methods", publicHandler.ListPaymentMethods)
	}

	cartHandler := &handler.CartHandler{Carts: carts, Sessions: sessions}
	cartRoutes := r.Group("/api/v1/cart")
	cartRoutes.Use(middleware.RequireAuth())
	{
		cartRoutes.GET("", cartHandler.List)
		cartRoutes.POST("/items", cartHandler.AddItem)
		cartRoutes.PATCH("/items/:id", cartHandler.UpdateItem)
		cartRoutes.DELETE("/items/:id", cartHandler.RemoveItem)
	}

	checkoutHandler := &handler.CheckoutHandler{
		Catalog:  catalog,
		Carts:    carts,
		Coupons:  couponEngine,
		Composer: composer,
		Sessions: sessions,
		Orders:   orderStore,
		Tracking: orderClient,
	}
	checkoutRoutes := r.Group("/api/v1/checkout")
	checkoutRoutes.Use(middleware.RequireAuth())
	{
		checkoutRoutes.GET("/address/options", checkoutHandler.AddressOptions)
		checkoutRoutes.POST("/address/select", checkoutHandler.SelectAddress)
		checkoutRoutes.GET("/quote", checkoutHandler.Quote)
		checkoutRoutes.POST("/coupon", checkoutHandler.ApplyCoupon)
		checkoutRoutes.DELETE("/coupon", checkoutHandler.RemoveCoupon)
		checkoutRoutes.POST("/submit", checkoutHandler.Submit)
	}

	orderRoutes := r.Group("/api/v1/orders")
	orderRoutes.Use(middleware.RequireAuth())
	{
		orderRoutes.GET("", checkoutHandler.ListOrders)
		orderRoutes.GET("/:invoice_id/status", checkoutHandler.TrackOrder)
	}

	adminHandler := &handler.CatalogAdminHandler{}
	adminRoutes := r.Group("/api/v1/admin")
	adminRoutes.Use(middleware.RequireAuth(models.RoleAdmin))
	{
		adminRoutes.POST("/products", adminHandler.CreateProduct)
		adminRoutes.PUT("/products/:id/active", adminHandler.SetProductActive)
		adminRoutes.GET("/brands", adminHandler.ListBrands)
		adminRoutes.POST("/categories", adminHandler.CreateCategory)
		adminRoutes.GET("/categories", adminHandler.ListCategories)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 7. Start Server
	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
