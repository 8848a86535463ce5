package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crypto-order-agent/config"
	channelAdapter "crypto-order-agent/internal/adapter/channel"
	"crypto-order-agent/internal/adapter/feed"
	httpHandler "crypto-order-agent/internal/adapter/http/handler"
	redisStorage "crypto-order-agent/internal/adapter/storage/redis"
	"crypto-order-agent/internal/adapter/wallet"
	"crypto-order-agent/internal/clock"
	"crypto-order-agent/internal/core/ports"
	"crypto-order-agent/internal/service"
	"crypto-order-agent/pkg/logger"
	"crypto-order-agent/pkg/retryhttp"

	"github.com/shopspring/decimal"
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
		Msg("Starting crypto order agent")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}

	// Initialize stores
	orderStore := redisStorage.NewOrderStore(rdb, encSvc, log)
	rateStore := redisStorage.NewRateStore(rdb)
	catalogStore := redisStorage.NewCatalogStore(rdb, log)

	// Outbound HTTP goes through one retrying client
	httpClient := retryhttp.New(&http.Client{Timeout: 30 * time.Second}, cfg.Retry.Delay, log)

	walletClient := wallet.NewElectrumClient(
		httpClient,
		cfg.Wallet.URL,
		cfg.Wallet.User,
		cfg.Wallet.Password,
		cfg.Wallet.RequestAmount,
		log,
	)
	krakenFeed := feed.NewKrakenFeed(httpClient, cfg.Feeds.KrakenURL)
	bitstampFeed := feed.NewBitstampFeed(httpClient, cfg.Feeds.BitstampURL)

	clk := clock.NewSystem()
	channel := channelAdapter.NewRedisChannel(rdb, encSvc, clk, log)

	tolerance, err := decimal.NewFromString(cfg.Feeds.DisparityTolerance)
	if err != nil {
		log.Warn().Str("value", cfg.Feeds.DisparityTolerance).Msg("invalid disparity tolerance, using default")
		tolerance = decimal.Decimal{}
	}

	// Initialize business services
	rateSvc := service.NewRateService(krakenFeed, bitstampFeed, rateStore, clk, log, service.RateServiceOpts{
		PollInterval:    cfg.Feeds.PollInterval,
		StalenessWindow: cfg.Feeds.StalenessWindow,
		Tolerance:       tolerance,
	})
	monitorSvc := service.NewMonitorService(walletClient, orderStore, channel, cfg.Monitor.PollInterval, log)
	brokerSvc := service.NewBrokerService(
		walletClient,
		orderStore,
		channel,
		rateSvc,
		monitorSvc,
		cfg.Wallet.NotifyBaseURL,
		cfg.Broker.RetryDelay,
		log,
	)
	lifecycleSvc := service.NewLifecycleService(
		orderStore,
		catalogStore,
		brokerSvc,
		monitorSvc,
		channel,
		encSvc.Key(),
		clk,
		log,
	)

	// Start the rate aggregator and the order lifecycle loop
	rateSvc.Start(ctx)
	go func() {
		if err := lifecycleSvc.Run(ctx); err != nil && ctx.Err() == nil {
			log.Fatal().Err(err).Msg("Order lifecycle loop failed")
		}
	}()

	// Initialize health checkers
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Watcher:        monitorSvc,
		HealthCheckers: []ports.HealthChecker{redisHealth},
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
	<-ctx.Done()
	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	rateSvc.Wait()
	lifecycleSvc.Wait()

	log.Info().Msg("Agent exited")
}
