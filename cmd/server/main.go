package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/vkozyrev/fintrack/internal/adapter/exchangerate"
	httpAdapter "github.com/vkozyrev/fintrack/internal/adapter/http"
	"github.com/vkozyrev/fintrack/internal/adapter/http/handler"
	postgresRepo "github.com/vkozyrev/fintrack/internal/adapter/repository/postgres"
	redisRepo "github.com/vkozyrev/fintrack/internal/adapter/repository/redis"
	"github.com/vkozyrev/fintrack/internal/domain"
	"github.com/vkozyrev/fintrack/internal/infrastructure/config"
	"github.com/vkozyrev/fintrack/internal/infrastructure/logger"
	"github.com/vkozyrev/fintrack/internal/infrastructure/metrics"
	"github.com/vkozyrev/fintrack/internal/infrastructure/postgres"
	"github.com/vkozyrev/fintrack/internal/infrastructure/redis"
	"github.com/vkozyrev/fintrack/internal/usecase"
)

func main() {
	// .env is optional, environment variables win either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	var (
		redisClient *goredis.Client
		rateCache   usecase.Cache
	)
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")

		rateCache = redisRepo.NewCache(redisClient)
	} else {
		log.Info().Msg("redis disabled, running without the rate cache")
	}

	budgets, err := domain.ParseBudgets(cfg.Budgets)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid budgets configuration")
	}

	if err := os.MkdirAll(cfg.ReportDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("failed to create report directory")
	}

	var rateOpts []exchangerate.Option
	if cfg.ExchangeRateBaseURL != "" {
		rateOpts = append(rateOpts, exchangerate.WithBaseURL(cfg.ExchangeRateBaseURL))
	}
	rateSource := exchangerate.NewClient(cfg.ExchangeRateAPIKey, rateOpts...)

	svc := usecase.NewFinanceService(usecase.FinanceServiceConfig{
		TxManager:       postgresRepo.NewTxManager(pool),
		TransactionRepo: postgresRepo.NewTransactionRepository(pool),
		DebtRepo:        postgresRepo.NewDebtRepository(pool),
		GoalRepo:        postgresRepo.NewGoalRepository(pool),
		IDGenerator:     postgresRepo.NewULIDGenerator(),
		Retrier:         postgresRepo.NewRetrier(log),
		RateSource:      rateSource,
		RateCache:       rateCache,
		RateTTL:         cfg.RateCacheTTL,
		ReportDir:       cfg.ReportDir,
		Budgets:         budgets,
	})

	// Rebuild session accounts from the stored transaction log.
	if err := svc.Ledger.Restore(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to restore ledger state")
	}
	log.Info().Int("accounts", len(svc.Ledger.ListAccounts())).Msg("ledger state restored")

	m := metrics.New()

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:     handler.NewAccountHandler(svc.Ledger),
		TransactionHandler: handler.NewTransactionHandler(svc.Ledger, m),
		DebtHandler:        handler.NewDebtHandler(svc.Debts, m),
		GoalHandler:        handler.NewGoalHandler(svc.Goals, m),
		ReportHandler:      handler.NewReportHandler(svc.Reports, svc.Ledger, m),
		RateHandler:        handler.NewRateHandler(svc.Rates, m),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		Logger:             log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
