package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/catalog"
	"storefront/config"
	"storefront/events"
	"storefront/handlers"
	"storefront/middleware"
	"storefront/persistence"
	"storefront/store"

	"github.com/IBM/sarama"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize OpenTelemetry
	shutdownTracing, err := middleware.InitTracing("storefront")
	if err != nil {
		logger.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer shutdownTracing()

	// Select the persistence gateway: Redis when configured, otherwise the
	// in-memory gateway (session state then lives only for the process).
	var gateway persistence.Gateway
	if cfg.RedisAddr != "" {
		redisClient, err := persistence.InitRedis(cfg.RedisAddr, cfg.RedisPassword, logger)
		if err != nil {
			logger.Fatal("Failed to initialize Redis", zap.Error(err))
		}
		defer redisClient.Close()
		gateway = persistence.NewRedis(redisClient, logger)
	} else {
		logger.Info("No Redis configured, using in-memory persistence")
		gateway = persistence.NewMemory()
	}

	// Load the catalog: Postgres when configured, built-in seed otherwise.
	products := catalog.Products()
	if cfg.DatabaseURL != "" {
		db, err := catalog.InitDB(cfg.DatabaseURL, logger)
		if err != nil {
			logger.Fatal("Failed to initialize database", zap.Error(err))
		}
		defer db.Close()

		products, err = catalog.Load(context.Background(), db, logger)
		if err != nil {
			logger.Fatal("Failed to load catalog", zap.Error(err))
		}
	}

	// Optional order-event producer.
	var producer sarama.SyncProducer
	if cfg.KafkaBrokers != "" {
		producer, err = events.InitProducer(cfg.KafkaBrokers, logger)
		if err != nil {
			logger.Fatal("Failed to initialize Kafka producer", zap.Error(err))
		}
		defer producer.Close()
	}

	// Construct the stores. The auth store hydrates persisted session state
	// as part of construction.
	cartStore := store.NewCartStore(logger)
	productStore := store.NewProductStore(products, cfg.SearchDebounce, logger)
	authStore := store.NewAuthStore(gateway, cfg.AuthLatency, logger)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("storefront"))
	router.Use(middleware.LoggerMiddleware(logger))
	router.Use(middleware.MetricsMiddleware())

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", middleware.PrometheusHandler())

	productHandler := handlers.NewProductHandler(productStore, logger)
	router.GET("/products", productHandler.GetProducts)
	router.GET("/products/:id", productHandler.GetProduct)
	router.POST("/products/filter", productHandler.Filter)
	router.GET("/categories", productHandler.GetCategories)

	cartHandler := handlers.NewCartHandler(cartStore, productStore, logger)
	router.GET("/cart", cartHandler.GetCart)
	router.POST("/cart/items", cartHandler.AddItem)
	router.PUT("/cart/items/:id", cartHandler.UpdateQuantity)
	router.DELETE("/cart/items/:id", cartHandler.RemoveItem)
	router.DELETE("/cart", cartHandler.ClearCart)

	authHandler := handlers.NewAuthHandler(authStore, []byte(cfg.JWTSecret), logger)
	router.POST("/login", authHandler.Login)
	router.POST("/signup", authHandler.Signup)
	router.POST("/logout", authHandler.Logout)

	checkoutHandler := handlers.NewCheckoutHandler(cartStore, authStore, producer, cfg.OrderTopic, logger)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware([]byte(cfg.JWTSecret)))
	{
		protected.GET("/profile", authHandler.GetProfile)
		protected.GET("/wishlist", authHandler.GetWishlist)
		protected.POST("/wishlist/:id", authHandler.AddToWishlist)
		protected.DELETE("/wishlist/:id", authHandler.RemoveFromWishlist)
		protected.GET("/orders", authHandler.GetOrders)
		protected.POST("/checkout", checkoutHandler.Checkout)
	}

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Storefront started", zap.String("port", cfg.Port))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
