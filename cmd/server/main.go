package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"gorm.io/gorm"

	"github.com/fixhub/repairshop/internal/shop"
	httpDelivery "github.com/fixhub/repairshop/internal/shop/delivery/http"
	"github.com/fixhub/repairshop/internal/shop/repository"
	"github.com/fixhub/repairshop/kafka"
	"github.com/fixhub/repairshop/pkg/database"
	"github.com/fixhub/repairshop/pkg/logger"
	"github.com/fixhub/repairshop/pkg/tracing"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	serviceName := getEnv("OTEL_SERVICE_NAME", "repairshop")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting repair shop service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "repairshopdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	if err := repository.AutoMigrate(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka is optional; without brokers the publisher is nil and event
	// publishing becomes a no-op.
	brokers := kafkaBrokers()
	var publisher *kafka.Publisher
	if len(brokers) > 0 {
		publisher, err = kafka.NewPublisher(brokers)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize Kafka publisher, events disabled")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Redis response cache for the catalog reads, also optional.
	var cacheMiddleware func(http.HandlerFunc) http.HandlerFunc
	if redisAddr := getEnv("REDIS_ADDR", ""); redisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})
		cacheMiddleware = httpDelivery.CacheMiddleware(redisClient, httpDelivery.DefaultCacheConfig())
		logger.Logger.Info().Str("addr", redisAddr).Msg("Catalog response cache enabled")
	}

	handlers, err := shop.InitializeHandlers(db, publisher, cacheMiddleware)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handlers")
	}

	// Stock consumer: item.requested events decrement variant stock. Gated
	// on the broker config itself, a failed publisher never disables it.
	if len(brokers) > 0 {
		startStockConsumer(db, brokers)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	go startHTTPServer(handlers, db, httpPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startStockConsumer(db *gorm.DB, brokers []string) {
	groupID := getEnv("KAFKA_GROUP_ID", "repairshop-stock")

	consumer, err := kafka.NewConsumer(brokers, groupID, []string{kafka.TopicItemRequested})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize Kafka consumer, stock sync disabled")
		return
	}

	variants := repository.NewGormVariantRepository(db)
	consumer.RegisterHandler(kafka.EventTypeItemRequested, func(ctx context.Context, event kafka.ItemRequestedEvent) error {
		return variants.DecrementStock(event.ProductVariantID, event.Quantity)
	})

	if err := consumer.Start(context.Background()); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to start Kafka consumer")
	}
}

func startHTTPServer(handlers *shop.Handlers, db *gorm.DB, port string) {
	router := mux.NewRouter()

	httpDelivery.RegisterAll(
		router,
		handlers.Customers,
		handlers.Services,
		handlers.Repairs,
		handlers.Items,
		handlers.Products,
		handlers.Variants,
	)
	httpDelivery.RegisterHealthCheck(router, db)
	httpDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := otelhttp.NewHandler(c.Handler(router), "repairshop-http")

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// kafkaBrokers returns the configured broker list. An empty result disables
// both event publishing and the stock consumer.
func kafkaBrokers() []string {
	raw := getEnv("KAFKA_BROKERS", "")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
