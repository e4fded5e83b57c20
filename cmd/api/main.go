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

	"gold-ledger/config"
	httpHandler "gold-ledger/internal/adapter/http/handler"
	"gold-ledger/internal/adapter/http/middleware"
	"gold-ledger/internal/adapter/pricefeed"
	redisStorage "gold-ledger/internal/adapter/storage/redis"
	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"
	"gold-ledger/internal/service"
	"gold-ledger/internal/worker"
	"gold-ledger/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("GLD_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Msg("Starting gold ledger")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret is required (GLD_JWT_SECRET)")
	}

	ctx := context.Background()

	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("Failed to open storage")
	}
	defer store.close()

	// Redis backs the rate cache, the rate limiter and the fetch lock. All
	// three are optional.
	var (
		rateCache ports.RateCache
		limiter   ports.RateLimiter
		jobLock   worker.JobLock
	)
	healthCheckers := store.health
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		rateCache = redisStorage.NewRateCache(rdb, cfg.Redis.RateTTL)
		if cfg.RateLimit.Enabled {
			limiter = redisStorage.NewRateLimitStore(rdb)
		}
		jobLock = redisStorage.NewFetchLock(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	var feed ports.PriceFeed
	if cfg.PriceFeed.Enabled {
		if cfg.PriceFeed.APIKey == "" {
			log.Warn().Msg("price feed enabled without an API key, requests will be rejected upstream")
		}
		feed = pricefeed.NewGoldAPI(cfg.PriceFeed)
	}

	// Services
	sellModel := domain.ParseDeductionModel(cfg.Ledger.SellDeduction)
	coinModel := domain.ParseDeductionModel(cfg.Ledger.CoinDeduction)

	rateOracle := service.NewRateOracle(store.rates, rateCache, feed, log)
	walletSvc := service.NewWalletService(service.WalletRepos{
		Customers: store.customers,
		Balances:  store.balances,
		Entries:   store.entries,
		Sells:     store.sells,
		Coins:     store.coins,
		Charges:   store.charges,
	}, rateOracle, store.transactor, sellModel, coinModel, log)
	allotmentSvc := service.NewAllotmentService(
		store.customers,
		store.balances,
		store.entries,
		store.allotments,
		store.transactor,
		log,
	)
	reportSvc := service.NewReportService(service.ReportRepos{
		Customers: store.customers,
		Balances:  store.balances,
		Entries:   store.entries,
		Sells:     store.sells,
		Coins:     store.coins,
	}, rateOracle, service.ReportOptions{
		MaxEvents:       cfg.Report.MaxEvents,
		DefaultPageSize: cfg.Report.DefaultPageSize,
		SellModel:       sellModel,
		CoinModel:       coinModel,
	}, log)
	auditSvc := service.NewAuditService(store.audit, log)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Rate fetcher
	var fetcher *worker.RateFetcher
	if feed != nil {
		fetcher = worker.NewRateFetcher(rateOracle, jobLock, cfg.PriceFeed.Schedule, cfg.PriceFeed.Timeout, log)
		if err := fetcher.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start rate fetcher")
		}
	}

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		AllotmentSvc:   allotmentSvc,
		ReportSvc:      reportSvc,
		RateOracle:     rateOracle,
		TokenSvc:       tokenSvc,
		RateLimiter:    limiter,
		PublicLimit:    &middleware.RateLimitRule{Limit: cfg.RateLimit.Limit, Window: cfg.RateLimit.Window},
		HealthCheckers: healthCheckers,
		AuditSvc:       auditSvc,
		StorageDriver:  cfg.Storage.Driver,
		CORSOrigins:    cfg.Server.CORSOrigins,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if fetcher != nil {
		fetcher.Stop(shutdownCtx)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
