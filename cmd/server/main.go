package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"refgate.backend/internal/config"
	"refgate.backend/internal/infrastructure/affiliate"
	"refgate.backend/internal/infrastructure/blockchain"
	"refgate.backend/internal/infrastructure/jobs"
	"refgate.backend/internal/infrastructure/repositories"
	"refgate.backend/internal/interfaces/http/handlers"
	"refgate.backend/internal/interfaces/http/middleware"
	"refgate.backend/internal/usecases"
	"refgate.backend/pkg/logger"
	"refgate.backend/pkg/redis"
)

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
			PrepareStmt:    false,
			TranslateError: true,
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

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

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
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize repositories
	nonceRepo := repositories.NewNonceRepository(db)
	activationRepo := repositories.NewActivationRepository(db)
	affiliateRepo := repositories.NewAffiliateRepository(db)
	attributionRepo := repositories.NewAttributionRepository(db)
	conversionRepo := repositories.NewConversionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// External collaborators
	provisioner := affiliate.NewClient(cfg.Affiliate.BaseURL, cfg.Affiliate.APIKey, cfg.Affiliate.Timeout)
	eligibility, err := buildEligibilityChecker(cfg)
	if err != nil {
		return err
	}

	// Initialize usecases
	activationUsecase := usecases.NewActivationUsecase(nonceRepo, activationRepo)
	affiliateUsecase := usecases.NewAffiliateUsecase(activationUsecase, affiliateRepo, provisioner)
	attributionUsecase := usecases.NewAttributionUsecase(activationUsecase, affiliateRepo, attributionRepo)
	completionUsecase := usecases.NewCompletionUsecase(affiliateRepo, conversionRepo, eligibility, uow)
	progressUsecase := usecases.NewProgressUsecase(conversionRepo)

	// Initialize handlers
	activationHandler := handlers.NewActivationHandler(activationUsecase)
	affiliateHandler := handlers.NewAffiliateHandler(affiliateUsecase)
	attributionHandler := handlers.NewAttributionHandler(attributionUsecase)
	webhookHandler := handlers.NewWebhookHandler(completionUsecase)
	progressHandler := handlers.NewProgressHandler(progressUsecase)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewNonceExpiryJob(nonceRepo)
	go expiryJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		activationHandler:  activationHandler,
		affiliateHandler:   affiliateHandler,
		attributionHandler: attributionHandler,
		webhookHandler:     webhookHandler,
		progressHandler:    progressHandler,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 RefGate Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func buildEligibilityChecker(cfg *config.Config) (usecases.EligibilityChecker, error) {
	if !cfg.Eligibility.Enabled {
		return blockchain.AllowAllEligibilityChecker{}, nil
	}

	minBalance, ok := new(big.Int).SetString(cfg.Eligibility.MinBalanceWei, 10)
	if !ok {
		return nil, fmt.Errorf("invalid ELIGIBILITY_MIN_BALANCE_WEI: %q", cfg.Eligibility.MinBalanceWei)
	}

	client, err := blockchain.NewEVMClient(cfg.Eligibility.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect eligibility RPC: %w", err)
	}

	return blockchain.NewBalanceEligibilityChecker(client, cfg.Eligibility.TokenAddress, minBalance, cfg.Eligibility.Timeout), nil
}
