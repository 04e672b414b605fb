package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"aurum-pay.backend/internal/config"
	"aurum-pay.backend/internal/infrastructure/blockchain"
	"aurum-pay.backend/internal/infrastructure/repositories"
	"aurum-pay.backend/internal/interfaces/http/handlers"
	"aurum-pay.backend/internal/interfaces/http/middleware"
	"aurum-pay.backend/internal/usecases"
	"aurum-pay.backend/pkg/logger"
	"aurum-pay.backend/pkg/redis"
)

const version = "1.0.0"

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis. The rate limiter fails open, so a missing Redis
	// degrades limiting instead of blocking startup.
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Warn(context.Background(), "Redis unavailable, rate limiting disabled", zap.Error(err))
	} else {
		logger.Info(context.Background(), "Redis initialized")
	}

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (merchant endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize repositories
	merchantRepo := repositories.NewMerchantRepository(db)
	paymentRepo := repositories.NewPaymentRecordRepository(db)
	qrRepo := repositories.NewQRCodeRepository(db)

	// Initialize the route detection core
	registry := usecases.DefaultChainRegistry()
	oracle := usecases.DefaultGasOracle(registry)
	parser := usecases.NewQRParser(registry)

	var balances usecases.BalanceProvider
	if cfg.Blockchain.UseMockBalances {
		balances = usecases.NewMockBalanceProvider(registry)
	} else {
		balances = usecases.NewRPCBalanceProvider(registry, blockchain.NewClientFactory())
	}

	routeUsecase := usecases.NewRouteUsecase(registry, oracle, balances, parser)
	txBuilder := usecases.NewTransactionBuilder(registry)

	// Initialize handlers
	routeHandler := handlers.NewRouteHandler(routeUsecase, txBuilder, registry, oracle)
	chainHandler := handlers.NewChainHandler(registry)
	balanceHandler := handlers.NewBalanceHandler(balances)
	merchantHandler := handlers.NewMerchantHandler(merchantRepo, registry)
	transactionHandler := handlers.NewTransactionHandler(paymentRepo, merchantRepo)
	qrHandler := handlers.NewQRHandler(qrRepo, merchantRepo)
	healthHandler := handlers.NewHealthHandler(version).WithDBPing(sqlDB.PingContext)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigin))

	registerAPIRoutes(r, routeDeps{
		routeHandler:       routeHandler,
		chainHandler:       chainHandler,
		balanceHandler:     balanceHandler,
		merchantHandler:    merchantHandler,
		transactionHandler: transactionHandler,
		qrHandler:          qrHandler,
		healthHandler:      healthHandler,
		rateLimit:          middleware.RateLimitMiddleware(cfg.RateLimit.Window, cfg.RateLimit.MaxRequests),
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
	}()

	// Start server
	log.Printf("🚀 AurumPay Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/api/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
