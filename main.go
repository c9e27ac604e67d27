package main

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Abdessamed08/boutique-api/events"
	"github.com/Abdessamed08/boutique-api/geodata"
	"github.com/Abdessamed08/boutique-api/models"
	"github.com/Abdessamed08/boutique-api/pkg/config"
	"github.com/Abdessamed08/boutique-api/routes"
	"github.com/Abdessamed08/boutique-api/session"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}

	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("Starting boutique API")

	// Init DB
	db := initDatabase(cfg, logger)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductImage{},
		&models.Wilaya{},
		&models.Daira{},
		&models.Commune{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		logger.Fatal("AutoMigrate failed", zap.Error(err))
	}

	// Seed the wilaya/daira/commune tree on first boot
	if err := geodata.Seed(db, cfg.GeoDatasetPath, logger); err != nil {
		logger.Fatal("Geo seed failed", zap.Error(err))
	}

	// Session cart store
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	carts := session.NewStore(rdb, cfg.CartTTL, cfg.CookieSecure)

	// Order event fanout (no-op without brokers)
	producer := events.NewProducer(cfg.KafkaBrokers, cfg.OrderTopic, logger)
	defer producer.Close()

	// Gin setup
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, db, carts, producer, logger)

	logger.Info("Server running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// initLogger builds the process logger at the configured level.
func initLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zcfg.Build()
	if err != nil {
		panic(fmt.Sprintf("logger: %v", err))
	}
	return logger
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg *config.Config, logger *zap.Logger) *gorm.DB {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect DB", zap.Error(err))
	}
	return db
}
