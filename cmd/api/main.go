package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/query"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/transfer"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/messaging"
	timeProvider "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	warnInsecureProductionConfig(cfg)

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.IsProduction(), cfg.Logger.Level)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()
	ids := idgen.NewUUIDGenerator()

	startCtx, cancelStart := context.WithTimeout(context.Background(), time.Minute)
	defer cancelStart()

	store, err := openStore(startCtx, cfg, appLogger, ids, tp)
	if err != nil {
		appLogger.Error("Failed to open ledger store", map[string]any{
			"driver": cfg.Database.Driver,
			"error":  err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}

	publisher, err := messaging.NewPublisher(cfg.Events, appLogger)
	if err != nil {
		appLogger.Error("Failed to create event publisher", map[string]any{
			"driver": cfg.Events.Driver,
			"error":  err.Error(),
		})
		store.close(context.Background(), appLogger)
		_ = appLogger.Flush()
		os.Exit(1)
	}

	// Balance changes go through one poster so per-account queues are shared
	poster := ledger.NewPoster(
		store.uow,
		ledger.NewAccountQueue(appLogger, cfg.Transaction.QueueSize),
		store.locker,
		tp,
		appLogger,
		ledger.PosterConfig{
			MaxRetries: cfg.Transaction.MaxRetries,
			RetryDelay: cfg.Transaction.RetryDelay,
			LockTTL:    cfg.Transaction.LockTTL,
		},
	)

	// Initialize use cases
	accountUseCase := account.NewAccountUseCase(
		store.uow.Accounts(context.Background()),
		poster,
		ids,
		publisher,
		tp,
		appLogger,
		account.Config{OpeningBalance: cfg.Account.OpeningBalance},
	)
	transferService := transfer.NewTransferService(poster, publisher, tp, appLogger, transfer.Config{
		RequireRegisteredCounterparty: cfg.Transfer.RequireRegisteredCounterparty,
	})
	queryUseCase := query.NewQueryUseCase(store.uow.Transactions(context.Background()), appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, ids, tp)
	routes.SetupRoutes(router, routes.Handlers{
		Account:  handler.NewAccountHandler(accountUseCase, appLogger),
		Transfer: handler.NewTransferHandler(transferService, accountUseCase, appLogger),
		Query:    handler.NewQueryHandler(queryUseCase, accountUseCase, tp, appLogger),
		Health:   handler.NewHealthHandler(appLogger, 2*time.Second, store.checks...),
	}, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":   server.Addr,
			"env":    cfg.Environment,
			"store":  cfg.Database.Driver,
			"events": cfg.Events.Driver,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		appLogger.Info("Shutting down server...", nil)
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop accepting requests before draining the account queues
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Shutting down account queues...", nil)
	poster.Shutdown()

	if err := publisher.Close(); err != nil {
		appLogger.Warn("Failed to close event publisher", map[string]any{"error": err.Error()})
	}
	store.close(ctx, appLogger)

	appLogger.Info("Server exited gracefully", nil)
}

// warnInsecureProductionConfig flags settings that work but should not reach production
func warnInsecureProductionConfig(cfg *config.Config) {
	if !cfg.IsProduction() {
		return
	}

	var warnings []string
	if cfg.Database.Driver == config.DriverMemory {
		warnings = append(warnings, "database.driver is memory; balances will not survive a restart")
	}
	if cfg.Database.Driver == config.DriverPostgres {
		switch strings.ToLower(cfg.Database.SSLMode) {
		case "require", "verify-ca", "verify-full":
		default:
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
	}
	if cfg.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if cfg.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server.writeTimeout is too low for production")
	}

	if len(warnings) > 0 {
		log.Printf("Warning: potential security issues in production configuration: %v", warnings)
	}
}
