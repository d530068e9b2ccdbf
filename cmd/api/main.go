package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chain-inventory-gateway/config"
	httpHandler "chain-inventory-gateway/internal/adapter/http/handler"
	"chain-inventory-gateway/internal/adapter/ledger"
	memoryStorage "chain-inventory-gateway/internal/adapter/storage/memory"
	redisStorage "chain-inventory-gateway/internal/adapter/storage/redis"
	"chain-inventory-gateway/internal/core/ports"
	"chain-inventory-gateway/internal/service"
	"chain-inventory-gateway/pkg/logger"
	"chain-inventory-gateway/pkg/retry"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Chain Inventory Gateway")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx := context.Background()

	// Connect to the ledger RPC endpoint
	client, err := ledger.Dial(ctx, cfg.Ledger, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to ledger")
	}
	// Ownership / funding mismatches are warnings, not fatal
	client.VerifyAccount(ctx)

	txBuilder := ledger.NewTxBuilder(client, cfg.Ledger, log)

	// Select the cache backend
	var cache ports.ProductCache
	healthCheckers := []ports.HealthChecker{ledger.NewHealthCheck(client.Node())}
	switch cfg.Cache.Backend {
	case "redis":
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		cache = redisStorage.NewProductCache(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	default:
		cache = memoryStorage.NewProductCache()
	}
	log.Info().Str("backend", cfg.Cache.Backend).Msg("Product cache ready")

	// Initialize business service
	policy := retry.Policy{Attempts: cfg.Retry.Attempts, Delay: cfg.Retry.Delay}
	inventorySvc := service.NewInventoryService(client, txBuilder, cache, policy, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		InventorySvc:   inventorySvc,
		Pages:          httpHandler.NewPageRenderer(cfg.Ledger.ExplorerURL, cfg.Ledger.HomeURL),
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
