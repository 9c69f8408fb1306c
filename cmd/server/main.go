package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	httpAdapter "github.com/iho/ohadacore/internal/adapter/http"
	"github.com/iho/ohadacore/internal/adapter/http/handler"
	"github.com/iho/ohadacore/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/ohadacore/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/ohadacore/internal/adapter/repository/redis"
	"github.com/iho/ohadacore/internal/chart"
	"github.com/iho/ohadacore/internal/infrastructure/config"
	"github.com/iho/ohadacore/internal/infrastructure/logger"
	"github.com/iho/ohadacore/internal/infrastructure/metrics"
	"github.com/iho/ohadacore/internal/infrastructure/postgres"
	"github.com/iho/ohadacore/internal/infrastructure/redis"
	"github.com/iho/ohadacore/internal/tax"
	"github.com/iho/ohadacore/internal/usecase"
)

const poolStatsInterval = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

// chartRules loads the chart of accounts and derives the VAT rules from it.
func chartRules(path string) (chart.Plan, tax.Rules, error) {
	f, err := chart.Load(path)
	if err != nil {
		return chart.Plan{}, tax.Rules{}, err
	}
	rules, err := tax.RulesFromChart(f)
	if err != nil {
		return chart.Plan{}, tax.Rules{}, err
	}
	return f.Accounts, rules, nil
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	plan, rules, err := chartRules(cfg.ChartFile)
	if err != nil {
		return err
	}

	m := metrics.New()

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		return err
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if cfg.AutoMigrate {
		if err := postgres.RunMigrations(ctx, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			return err
		}
	}
	go postgres.ReportPoolStats(ctx, pool, m, poolStatsInterval)

	// Connect to Redis
	var (
		reportCache      usecase.ReportCache
		idempotencyStore middleware.IdempotencyStore
	)
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	switch {
	case errors.Is(err, redis.ErrDisabled):
		log.Info().Msg("redis disabled: report cache and idempotency keys are off")
	case err != nil:
		return err
	default:
		defer redisClient.Close()
		reportCache = redisRepo.NewReportCache(redisClient)
		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
	}

	// Initialize repositories
	retrier := postgresRepo.NewRetrier(m)
	guard := postgresRepo.NewGuard("postgres", retrier, m)
	txManager := postgresRepo.NewTxManager(pool, retrier)
	entryRepo := postgresRepo.NewEntryRepository(pool, guard)
	partyRepo := postgresRepo.NewThirdPartyRepository(pool, guard)
	assetRepo := postgresRepo.NewAssetRepository(pool, guard)
	provisionRepo := postgresRepo.NewProvisionRepository(pool, guard)
	fiscalRepo := postgresRepo.NewFiscalRepository(pool, guard)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	opts := usecase.Options{IncludeDrafts: cfg.IncludeDrafts}
	taxUC := usecase.NewTaxUseCase(entryRepo, rules, m)
	agingUC := usecase.NewAgingUseCase(entryRepo, partyRepo, plan, opts, m)
	provisionUC := usecase.NewProvisionUseCase(agingUC, provisionRepo, txManager, idGen, m)
	depreciationUC := usecase.NewDepreciationUseCase(entryRepo, assetRepo, fiscalRepo, plan, opts, m)
	reportingUC := usecase.NewReportingUseCase(entryRepo, fiscalRepo, reportCache, cfg.ReportCacheTTL, plan, opts, m)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		Logger:              log,
		TaxHandler:          handler.NewTaxHandler(taxUC),
		AgingHandler:        handler.NewAgingHandler(agingUC),
		ProvisionHandler:    handler.NewProvisionHandler(provisionUC),
		FiscalHandler:       handler.NewFiscalHandler(usecase.NewFiscalUseCase(fiscalRepo)),
		DepreciationHandler: handler.NewDepreciationHandler(depreciationUC),
		ReportHandler:       handler.NewReportHandler(reportingUC),
		HealthHandler:       handler.NewHealthHandler(pool.Ping, redisPing(redisClient)),
		IdempotencyStore:    idempotencyStore,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}

func redisPing(client *goredis.Client) handler.PingFunc {
	return redis.Ping(client)
}
