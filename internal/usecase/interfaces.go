package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkozyrev/fintrack/internal/domain"
)

// TransactionRepository defines data access for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, t *domain.Transaction) error
	CreateTx(ctx context.Context, tx Tx, t *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Transaction, error)
	ListAccountIDs(ctx context.Context) ([]string, error)
	SumByAccount(ctx context.Context, accountID string) (decimal.Decimal, error)
	Delete(ctx context.Context, id string) error
}

// DebtRepository defines data access for debts.
type DebtRepository interface {
	Create(ctx context.Context, d *domain.Debt) error
	GetByID(ctx context.Context, id string) (*domain.Debt, error)
	List(ctx context.Context) ([]*domain.Debt, error)
	SetPaid(ctx context.Context, id string, updatedAt time.Time) error
}

// GoalRepository defines data access for savings goals.
type GoalRepository interface {
	Create(ctx context.Context, g *domain.SavingsGoal) error
	GetByID(ctx context.Context, id string) (*domain.SavingsGoal, error)
	List(ctx context.Context) ([]*domain.SavingsGoal, error)
	UpdateAccumulated(ctx context.Context, tx Tx, id string, accumulated decimal.Decimal, updatedAt time.Time) error
}

// Tx represents a database transaction.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxManager handles transaction lifecycle.
type TxManager interface {
	Begin(ctx context.Context) (Tx, error)
}

// Retrier re-runs an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// RateSource is a read-only external currency-rate lookup.
type RateSource interface {
	GetRate(ctx context.Context, base, quote string) (decimal.Decimal, error)
}
