package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/franciscosanchezn/pizza-order-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-order-api/internal/config"
	"github.com/franciscosanchezn/pizza-order-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-order-api/internal/database"
	"github.com/franciscosanchezn/pizza-order-api/internal/events"
	"github.com/franciscosanchezn/pizza-order-api/internal/idempotency"
	"github.com/franciscosanchezn/pizza-order-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-order-api/internal/services"
	"github.com/franciscosanchezn/pizza-order-api/internal/stock"
	"github.com/franciscosanchezn/pizza-order-api/internal/tracing"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// @title Pizza Order API
// @version 1.0
// @description Catalog browsing, price quotes and inventory-safe order placement
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()

	ctx := context.Background()

	shutdownTracing, err := tracing.Init(ctx, configuration.OTelEndpoint)
	checkPanicErr(err)

	// Initialize database connection
	db := setupDatabase(configuration)

	store := setupIdempotencyStore(ctx, configuration)
	publisher := setupPublisher(configuration)

	// Initialize services and controllers
	ledger := stock.NewLedger(db)
	catalogService := services.NewCatalogService(db, ledger)
	orderService := services.NewOrderService(db, ledger, store, publisher)

	router := setupRouter(
		controllers.NewPizzaController(catalogService, orderService),
		controllers.NewOrderController(orderService, configuration.CommitTimeout),
		controllers.NewStockController(catalogService),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf("%v:%d", configuration.Host, configuration.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start the server
	go func() {
		log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
	if err := publisher.Close(); err != nil {
		log.WithError(err).Warn("Failed to close event publisher")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.WithError(err).Warn("Failed to flush traces")
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info("Server exited")
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment.
// LOG_LEVEL overrides the environment default.
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	level := config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development"))
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		parsed, err := log.ParseLevel(raw)
		if err != nil {
			log.WithField("log_level", raw).Warn("Invalid LOG_LEVEL, keeping environment default")
		} else {
			level = parsed
		}
	}
	log.SetLevel(level)
	services.SetLogLevel(level)
	middleware.SetLogLevel(level)
	database.SetLogLevel(level)
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase connects, migrates and optionally seeds the catalog
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(conf.Database())
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	if conf.SeedOnStart {
		checkPanicErr(database.Seed(db, conf.InitialStock))
	} else {
		log.Info("Seeding disabled, using existing catalog")
	}
	return db
}

// setupIdempotencyStore uses Redis when configured, so keys are shared across replicas
func setupIdempotencyStore(ctx context.Context, conf *config.Config) idempotency.Store {
	if conf.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, keeping idempotency keys in memory")
		return idempotency.NewMemoryStore(conf.IdempotencyTTL)
	}
	client, err := idempotency.Connect(ctx, conf.RedisAddr, conf.RedisPassword, conf.RedisDB)
	checkPanicErr(err)
	log.WithField("redis_addr", conf.RedisAddr).Info("Using Redis for idempotency keys")
	return idempotency.NewRedisStore(client, conf.IdempotencyTTL)
}

func setupPublisher(conf *config.Config) events.Publisher {
	if len(conf.KafkaBrokers) == 0 {
		log.Info("KAFKA_BROKERS not set, order events disabled")
		return events.NoopPublisher{}
	}
	log.WithFields(log.Fields{"brokers": conf.KafkaBrokers, "topic": conf.KafkaTopic}).Info("Publishing order events to Kafka")
	return events.NewKafkaPublisher(conf.KafkaBrokers, conf.KafkaTopic)
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter(pizzas controllers.PizzaController, orders controllers.OrderController, stockAdmin controllers.StockController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.Metrics())

	// Health check endpoint
	router.GET("/health", healthCheckHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	controllers.RegisterRoutes(router, pizzas, orders, stockAdmin)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   tracing.ServiceName,
	})
}
