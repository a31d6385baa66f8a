package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkozyrev/fintrack/internal/domain"
	"github.com/vkozyrev/fintrack/internal/usecase"
)

// MockTransactionRepository is a mock implementation of TransactionRepository.
// Without an override it behaves as an in-memory store.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction

	CreateFunc         func(ctx context.Context, t *domain.Transaction) error
	CreateTxFunc       func(ctx context.Context, tx usecase.Tx, t *domain.Transaction) error
	GetByIDFunc        func(ctx context.Context, id string) (*domain.Transaction, error)
	ListByAccountFunc  func(ctx context.Context, accountID string) ([]*domain.Transaction, error)
	ListAccountIDsFunc func(ctx context.Context) ([]string, error)
	SumByAccountFunc   func(ctx context.Context, accountID string) (decimal.Decimal, error)
	DeleteFunc         func(ctx context.Context, id string) error
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append(m.transactions, t)
	return nil
}

func (m *MockTransactionRepository) CreateTx(ctx context.Context, tx usecase.Tx, t *domain.Transaction) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, t)
	}
	return m.Create(ctx, t)
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Transaction
	for _, t := range m.transactions {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OccurredAt.Before(out[j].OccurredAt) })
	return out, nil
}

func (m *MockTransactionRepository) ListAccountIDs(ctx context.Context) ([]string, error) {
	if m.ListAccountIDsFunc != nil {
		return m.ListAccountIDsFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[string]bool)
	var ids []string
	for _, t := range m.transactions {
		if !seen[t.AccountID] {
			seen[t.AccountID] = true
			ids = append(ids, t.AccountID)
		}
	}
	return ids, nil
}

func (m *MockTransactionRepository) SumByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	if m.SumByAccountFunc != nil {
		return m.SumByAccountFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, t := range m.transactions {
		if t.AccountID == accountID {
			sum = sum.Add(t.Amount)
		}
	}
	return sum, nil
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.transactions {
		if t.ID == id {
			m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
			return nil
		}
	}
	return domain.ErrTransactionNotFound
}

// Stored returns the raw stored transactions for assertions.
func (m *MockTransactionRepository) Stored() []*domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out
}

// MockDebtRepository is a mock implementation of DebtRepository.
type MockDebtRepository struct {
	mu    sync.RWMutex
	debts []*domain.Debt

	CreateFunc  func(ctx context.Context, d *domain.Debt) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Debt, error)
	ListFunc    func(ctx context.Context) ([]*domain.Debt, error)
	SetPaidFunc func(ctx context.Context, id string, updatedAt time.Time) error
}

func NewMockDebtRepository() *MockDebtRepository {
	return &MockDebtRepository{}
}

func (m *MockDebtRepository) Create(ctx context.Context, d *domain.Debt) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.debts = append(m.debts, d)
	return nil
}

func (m *MockDebtRepository) GetByID(ctx context.Context, id string) (*domain.Debt, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.debts {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, domain.ErrDebtNotFound
}

func (m *MockDebtRepository) List(ctx context.Context) ([]*domain.Debt, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Debt, len(m.debts))
	copy(out, m.debts)
	return out, nil
}

func (m *MockDebtRepository) SetPaid(ctx context.Context, id string, updatedAt time.Time) error {
	if m.SetPaidFunc != nil {
		return m.SetPaidFunc(ctx, id, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.debts {
		if d.ID == id {
			d.Paid = true
			d.UpdatedAt = updatedAt
			return nil
		}
	}
	return domain.ErrDebtNotFound
}

// MockGoalRepository is a mock implementation of GoalRepository.
type MockGoalRepository struct {
	mu    sync.RWMutex
	goals []*domain.SavingsGoal

	CreateFunc            func(ctx context.Context, g *domain.SavingsGoal) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.SavingsGoal, error)
	ListFunc              func(ctx context.Context) ([]*domain.SavingsGoal, error)
	UpdateAccumulatedFunc func(ctx context.Context, tx usecase.Tx, id string, accumulated decimal.Decimal, updatedAt time.Time) error
}

func NewMockGoalRepository() *MockGoalRepository {
	return &MockGoalRepository{}
}

func (m *MockGoalRepository) Create(ctx context.Context, g *domain.SavingsGoal) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, g)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.goals = append(m.goals, g)
	return nil
}

func (m *MockGoalRepository) GetByID(ctx context.Context, id string) (*domain.SavingsGoal, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, g := range m.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, domain.ErrGoalNotFound
}

func (m *MockGoalRepository) List(ctx context.Context) ([]*domain.SavingsGoal, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.SavingsGoal, len(m.goals))
	copy(out, m.goals)
	return out, nil
}

func (m *MockGoalRepository) UpdateAccumulated(ctx context.Context, tx usecase.Tx, id string, accumulated decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateAccumulatedFunc != nil {
		return m.UpdateAccumulatedFunc(ctx, tx, id, accumulated, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.goals {
		if g.ID == id {
			g.Accumulated = accumulated
			g.UpdatedAt = updatedAt
			return nil
		}
	}
	return domain.ErrGoalNotFound
}

// MockTx is a mock database transaction.
type MockTx struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *MockTx) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTx) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TxManager.
type MockTransactionManager struct {
	LastTx *MockTx

	BeginFunc func(ctx context.Context) (usecase.Tx, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Tx, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.LastTx = &MockTx{}
	return m.LastTx, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("id-%d", m.next)
}
