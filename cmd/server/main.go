package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/ordersperf/orders-api/internal/middleware"
	orderDelivery "github.com/ordersperf/orders-api/internal/order/delivery/http"
	orderRepository "github.com/ordersperf/orders-api/internal/order/repository"
	productDelivery "github.com/ordersperf/orders-api/internal/product/delivery/http"
	productRepository "github.com/ordersperf/orders-api/internal/product/repository"
	userDelivery "github.com/ordersperf/orders-api/internal/user/delivery/http"
	userRepository "github.com/ordersperf/orders-api/internal/user/repository"
	userQuery "github.com/ordersperf/orders-api/internal/user/usecase/query"
	"github.com/ordersperf/orders-api/pkg/cache"
	"github.com/ordersperf/orders-api/pkg/database"
	"github.com/ordersperf/orders-api/pkg/logger"
)

// topBuyersCacheTTL bounds how stale a cached top-buyers page may get.
const topBuyersCacheTTL = 5 * time.Minute

func main() {
	// Load .env file if exists
	_ = godotenv.Load()

	// Initialize logger
	serviceName := getEnv("SERVICE_NAME", "orders-api")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting orders API")

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "ordersdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Initialize repositories; users and products migrate first so the
	// order tables can reference them
	userRepo := userRepository.NewGormUserRepository(db)
	productRepo := productRepository.NewGormProductRepository(db)
	orderRepo := orderRepository.NewGormOrderRepository(db)

	if err := userRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run user migrations")
	}
	if err := productRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run product migrations")
	}
	if err := orderRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run order migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Top-buyers report cache, shared for the process lifetime
	reportCache := cache.New(topBuyersCacheTTL)

	// Initialize handlers
	userHandler := userDelivery.NewUserHandler(userRepo, userQuery.NewTopBuyersHandler(userRepo, reportCache))
	productHandler := productDelivery.NewProductHandler(productRepo)
	orderHandler := orderDelivery.NewOrderHandler(orderRepo)

	// Setup router
	router := mux.NewRouter()
	router.Use(middleware.Recovery)
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)

	userHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)

	// Health check endpoint
	productHandler.RegisterHealthCheck(router, sqlDB)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	productDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8080")
	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/").
			Msg("HTTP server started")

		if err := http.ListenAndServe(":"+httpPort, c.Handler(router)); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
