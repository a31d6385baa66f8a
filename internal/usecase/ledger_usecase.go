package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkozyrev/fintrack/internal/domain"
)

// ErrInconsistentLedger is returned when a cached balance does not match the store.
var ErrInconsistentLedger = errors.New("ledger is inconsistent: cached balance does not match stored transactions")

// LedgerUseCase owns the session's accounts: in-memory balance and history,
// written through to the transaction repository. The presentation layer issues
// one request at a time; the mutex only serializes overlapping HTTP requests.
type LedgerUseCase struct {
	mu       sync.Mutex
	txRepo   TransactionRepository
	idGen    IDGenerator
	accounts map[string]*domain.Account
	budgets  []domain.Budget
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(txRepo TransactionRepository, idGen IDGenerator, budgets []domain.Budget) *LedgerUseCase {
	return &LedgerUseCase{
		txRepo:   txRepo,
		idGen:    idGen,
		accounts: make(map[string]*domain.Account),
		budgets:  budgets,
	}
}

// OpenAccountInput represents input for opening an account.
type OpenAccountInput struct {
	Name         string
	Kind         domain.AccountKind
	InterestRate decimal.Decimal
}

// OpenAccount creates a session account. The account identifier is its name;
// transactions reference it, which is how accounts are rebuilt on restart.
func (uc *LedgerUseCase) OpenAccount(ctx context.Context, input OpenAccountInput) (*domain.Account, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	kind := input.Kind
	if kind == "" {
		kind = domain.AccountStandard
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.accounts[input.Name]; ok {
		return nil, domain.ErrAccountExists
	}

	account := &domain.Account{
		ID:           input.Name,
		Name:         input.Name,
		Kind:         kind,
		InterestRate: input.InterestRate,
		Balance:      decimal.Zero,
		CreatedAt:    time.Now().UTC(),
	}
	uc.accounts[input.Name] = account

	return account, nil
}

// Restore rebuilds all accounts from the transaction log. Called once at
// startup. Only the log is persisted, so rebuilt accounts come back as
// standard accounts: a savings kind and its interest rate last for the
// session they were opened in.
func (uc *LedgerUseCase) Restore(ctx context.Context) error {
	ids, err := uc.txRepo.ListAccountIDs(ctx)
	if err != nil {
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, id := range ids {
		account, err := uc.loadAccount(ctx, id)
		if err != nil {
			return err
		}

		uc.accounts[id] = account
	}

	return nil
}

// loadAccount folds the stored transaction log into an account. Folding is raw
// (not re-validated): after explicit deletions a historical replay may pass
// through states the validation rules would reject.
func (uc *LedgerUseCase) loadAccount(ctx context.Context, id string) (*domain.Account, error) {
	txs, err := uc.txRepo.ListByAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		ID:      id,
		Name:    id,
		Kind:    domain.AccountStandard,
		Balance: decimal.Zero,
	}
	for _, t := range txs {
		account.Balance = account.Balance.Add(t.Amount)
		account.Transactions = append(account.Transactions, t)
	}

	return account, nil
}

// RecordTransactionInput represents input for recording a transaction.
// Amount is a positive magnitude; Kind determines the sign.
type RecordTransactionInput struct {
	OccurredAt     *time.Time
	AccountID      string
	Description    string
	Category       string
	Kind           domain.TransactionKind
	Amount         decimal.Decimal
	RecurrenceDays int
}

// RecordTransaction validates the entry, writes it through to the store, and
// only then applies it to the in-memory account. A failed write leaves the
// session state unchanged.
func (uc *LedgerUseCase) RecordTransaction(ctx context.Context, input RecordTransactionInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if err := domain.ValidateCategory(input.Category); err != nil {
		return nil, err
	}

	signed := input.Amount
	switch input.Kind {
	case domain.KindIncome:
	case domain.KindExpense:
		signed = signed.Neg()
	default:
		return nil, domain.ErrInvalidKind
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	account, ok := uc.accounts[input.AccountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	now := time.Now().UTC()

	occurredAt := now
	if input.OccurredAt != nil {
		occurredAt = *input.OccurredAt
	}

	t := &domain.Transaction{
		ID:             uc.idGen.Generate(),
		AccountID:      account.ID,
		Amount:         signed,
		OccurredAt:     occurredAt,
		Description:    input.Description,
		Category:       input.Category,
		RecurrenceDays: input.RecurrenceDays,
		CreatedAt:      now,
	}

	if err := account.ValidateApply(t); err != nil {
		return nil, err
	}

	if err := uc.txRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	if err := account.Apply(t); err != nil {
		return nil, err
	}

	return t, nil
}

// DeleteTransaction removes a transaction from the store and rebuilds the
// owning account's session state from the remaining log.
func (uc *LedgerUseCase) DeleteTransaction(ctx context.Context, id string) error {
	t, err := uc.txRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.txRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	existing, ok := uc.accounts[t.AccountID]
	if !ok {
		return nil
	}

	account, err := uc.loadAccount(ctx, t.AccountID)
	if err != nil {
		return err
	}

	account.Kind = existing.Kind
	account.InterestRate = existing.InterestRate
	account.CreatedAt = existing.CreatedAt
	uc.accounts[t.AccountID] = account

	return nil
}

// Balance returns the cached balance of an account.
func (uc *LedgerUseCase) Balance(accountID string) (decimal.Decimal, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	account, ok := uc.accounts[accountID]
	if !ok {
		return decimal.Zero, domain.ErrAccountNotFound
	}

	return account.Balance, nil
}

// History returns the chronological transactions of an account, optionally
// restricted to a period.
func (uc *LedgerUseCase) History(accountID string, p domain.Period) ([]*domain.Transaction, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	account, ok := uc.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return account.TransactionsIn(p), nil
}

// ListAccounts returns all session accounts.
func (uc *LedgerUseCase) ListAccounts() []*domain.Account {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	accounts := make([]*domain.Account, 0, len(uc.accounts))
	for _, a := range uc.accounts {
		accounts = append(accounts, a)
	}

	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Name < accounts[j].Name })

	return accounts
}

// GetAccount returns one session account.
func (uc *LedgerUseCase) GetAccount(accountID string) (*domain.Account, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	account, ok := uc.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return account, nil
}

// SpendingAnalysis returns the top categories by summed expense within p,
// descending by amount with ties broken by category name.
func (uc *LedgerUseCase) SpendingAnalysis(accountID string, p domain.Period) ([]domain.ReportLine, error) {
	txs, err := uc.History(accountID, p)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, t := range txs {
		if !t.IsExpense() {
			continue
		}

		category := t.Category
		if category == "" {
			category = "uncategorized"
		}

		totals[category] = totals[category].Add(t.Magnitude())
	}

	lines := make([]domain.ReportLine, 0, len(totals))
	for name, amount := range totals {
		lines = append(lines, domain.ReportLine{Name: name, Amount: amount})
	}

	sort.Slice(lines, func(i, j int) bool {
		if !lines[i].Amount.Equal(lines[j].Amount) {
			return lines[i].Amount.GreaterThan(lines[j].Amount)
		}

		return lines[i].Name < lines[j].Name
	})

	if len(lines) > TopSpendingCategories {
		lines = lines[:TopSpendingCategories]
	}

	return lines, nil
}

// BudgetStatus reports per-budget spending for an account within p.
type BudgetStatus struct {
	Budget   domain.Budget
	Spent    decimal.Decimal
	Exceeded bool
}

// BudgetStatuses evaluates the configured budgets against an account's history.
func (uc *LedgerUseCase) BudgetStatuses(accountID string, p domain.Period) ([]BudgetStatus, error) {
	txs, err := uc.History(accountID, p)
	if err != nil {
		return nil, err
	}

	statuses := make([]BudgetStatus, 0, len(uc.budgets))
	for _, b := range uc.budgets {
		spent := b.SpentIn(txs, p)
		statuses = append(statuses, BudgetStatus{
			Budget:   b,
			Spent:    spent,
			Exceeded: spent.GreaterThan(b.Limit),
		})
	}

	return statuses, nil
}

// ApplyInterest records an interest income transaction on a savings account.
func (uc *LedgerUseCase) ApplyInterest(ctx context.Context, accountID string) (*domain.Transaction, error) {
	uc.mu.Lock()
	account, ok := uc.accounts[accountID]
	if !ok {
		uc.mu.Unlock()
		return nil, domain.ErrAccountNotFound
	}

	if !account.IsSavings() {
		uc.mu.Unlock()
		return nil, domain.ErrNotSavingsAccount
	}

	interest := account.InterestAmount()
	uc.mu.Unlock()

	if interest.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	return uc.RecordTransaction(ctx, RecordTransactionInput{
		AccountID:   accountID,
		Kind:        domain.KindIncome,
		Amount:      interest,
		Description: "Interest accrual",
		Category:    "income",
	})
}

// CheckConsistency verifies that every cached balance equals the stored fold of
// its transaction log.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) (bool, error) {
	uc.mu.Lock()
	accounts := make([]*domain.Account, 0, len(uc.accounts))
	for _, a := range uc.accounts {
		accounts = append(accounts, a)
	}
	uc.mu.Unlock()

	for _, account := range accounts {
		stored, err := uc.txRepo.SumByAccount(ctx, account.ID)
		if err != nil {
			return false, err
		}

		if !stored.Equal(account.Balance) {
			return false, ErrInconsistentLedger
		}
	}

	return true, nil
}

// account looks up a session account for same-package collaborators.
func (uc *LedgerUseCase) account(accountID string) (*domain.Account, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	account, ok := uc.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return account, nil
}

// applyCommitted applies a transaction that is already durable in the store.
func (uc *LedgerUseCase) applyCommitted(t *domain.Transaction) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	account, ok := uc.accounts[t.AccountID]
	if !ok {
		return domain.ErrAccountNotFound
	}

	return account.Apply(t)
}
