package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind distinguishes ordinary accounts from savings accounts.
type AccountKind string

const (
	AccountStandard AccountKind = "standard"
	AccountSavings  AccountKind = "savings"
)

// Account holds a cached running balance and the chronological transaction
// history it was folded from. The cached balance always equals the signed sum
// of applied transactions.
type Account struct {
	CreatedAt    time.Time
	ID           string
	Name         string
	Kind         AccountKind
	Balance      decimal.Decimal
	InterestRate decimal.Decimal
	Transactions []*Transaction
}

// ValidateDebit checks whether the account can be debited by amount (a positive
// magnitude) without going negative.
func (a *Account) ValidateDebit(amount decimal.Decimal) error {
	if a.Balance.Sub(amount).IsNegative() {
		return ErrInsufficientFunds
	}

	return nil
}

// ValidateApply checks whether t can be applied to the account.
func (a *Account) ValidateApply(t *Transaction) error {
	if t.Amount.IsZero() {
		return ErrInvalidAmount
	}

	if t.IsExpense() {
		return a.ValidateDebit(t.Magnitude())
	}

	return nil
}

// Apply appends t to the history and updates the cached balance. The account is
// unchanged when validation fails.
func (a *Account) Apply(t *Transaction) error {
	if err := a.ValidateApply(t); err != nil {
		return err
	}

	a.Balance = a.Balance.Add(t.Amount)
	a.Transactions = append(a.Transactions, t)

	return nil
}

// TransactionsIn returns the chronological transactions within p. A zero period
// returns the full history.
func (a *Account) TransactionsIn(p Period) []*Transaction {
	if p.IsZero() {
		return a.Transactions
	}

	var out []*Transaction
	for _, t := range a.Transactions {
		if p.Contains(t.OccurredAt) {
			out = append(out, t)
		}
	}

	return out
}

// IsSavings reports whether the account accrues interest.
func (a *Account) IsSavings() bool {
	return a.Kind == AccountSavings
}

// InterestAmount returns the interest due on the current balance.
func (a *Account) InterestAmount() decimal.Decimal {
	return a.Balance.Mul(a.InterestRate)
}
