package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/vkozyrev/fintrack/internal/adapter/http/handler"
	"github.com/vkozyrev/fintrack/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler     *handler.AccountHandler
	TransactionHandler *handler.TransactionHandler
	DebtHandler        *handler.DebtHandler
	GoalHandler        *handler.GoalHandler
	ReportHandler      *handler.ReportHandler
	RateHandler        *handler.RateHandler
	HealthHandler      *handler.HealthHandler
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(chimiddleware.Recoverer)

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Open)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Get("/{id}/balance", cfg.AccountHandler.Balance)
			r.Get("/{id}/history", cfg.AccountHandler.History)
			r.Post("/{id}/interest", cfg.AccountHandler.ApplyInterest)
		})

		// Transactions
		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", cfg.TransactionHandler.Record)
			r.Delete("/{id}", cfg.TransactionHandler.Delete)
		})

		// Debts
		r.Route("/debts", func(r chi.Router) {
			r.Post("/", cfg.DebtHandler.Add)
			r.Get("/", cfg.DebtHandler.List)
			r.Get("/totals", cfg.DebtHandler.Totals)
			r.Get("/{id}", cfg.DebtHandler.Get)
			r.Post("/{id}/pay", cfg.DebtHandler.Pay)
		})

		// Savings goals
		r.Route("/goals", func(r chi.Router) {
			r.Post("/", cfg.GoalHandler.Create)
			r.Get("/", cfg.GoalHandler.List)
			r.Get("/{id}", cfg.GoalHandler.Get)
			r.Post("/{id}/contributions", cfg.GoalHandler.Contribute)
			r.Get("/{id}/progress", cfg.GoalHandler.Progress)
		})

		// Reports and analysis
		r.Route("/reports", func(r chi.Router) {
			r.Get("/", cfg.ReportHandler.Kinds)
			r.Get("/{kind}", cfg.ReportHandler.Generate)
		})
		r.Route("/analysis", func(r chi.Router) {
			r.Get("/spending", cfg.ReportHandler.SpendingAnalysis)
			r.Get("/budgets", cfg.ReportHandler.BudgetStatuses)
		})
		r.Get("/ledger/consistency", cfg.ReportHandler.Consistency)

		// Exchange rates
		r.Route("/rates", func(r chi.Router) {
			r.Get("/", cfg.RateHandler.Get)
			r.Get("/convert", cfg.RateHandler.Convert)
		})
	})

	return r
}
