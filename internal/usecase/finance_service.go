package usecase

import (
	"time"

	"github.com/vkozyrev/fintrack/internal/domain"
)

// FinanceService is the facade the presentation layer talks to. It composes
// the per-aggregate use cases; callers never reach the repositories directly.
type FinanceService struct {
	Ledger  *LedgerUseCase
	Debts   *DebtUseCase
	Goals   *GoalUseCase
	Reports *ReportUseCase
	Rates   *RateUseCase
}

// FinanceServiceConfig holds the collaborators the service is wired from.
type FinanceServiceConfig struct {
	TxManager       TxManager
	TransactionRepo TransactionRepository
	DebtRepo        DebtRepository
	GoalRepo        GoalRepository
	IDGenerator     IDGenerator
	Retrier         Retrier
	RateSource      RateSource
	RateCache       Cache
	RateTTL         time.Duration
	ReportDir       string
	Budgets         []domain.Budget
}

// NewFinanceService wires the full service.
func NewFinanceService(cfg FinanceServiceConfig) *FinanceService {
	ledger := NewLedgerUseCase(cfg.TransactionRepo, cfg.IDGenerator, cfg.Budgets)

	return &FinanceService{
		Ledger:  ledger,
		Debts:   NewDebtUseCase(cfg.DebtRepo, cfg.IDGenerator),
		Goals:   NewGoalUseCase(cfg.TxManager, cfg.GoalRepo, cfg.TransactionRepo, ledger, cfg.IDGenerator, cfg.Retrier),
		Reports: NewReportUseCase(ledger, cfg.ReportDir),
		Rates:   NewRateUseCase(cfg.RateSource, cfg.RateCache, cfg.RateTTL),
	}
}
