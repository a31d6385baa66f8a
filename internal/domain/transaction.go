package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes income from expense entries.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Transaction is an immutable record of a single ledger entry. Amount is signed:
// income is positive, expense is negative. Category and RecurrenceDays are
// optional; a recurring transaction carries its interval for display only, no
// scheduling happens here.
type Transaction struct {
	CreatedAt      time.Time
	OccurredAt     time.Time
	ID             string
	AccountID      string
	Description    string
	Category       string
	Amount         decimal.Decimal
	RecurrenceDays int
}

// Kind derives the transaction kind from the sign of the amount.
func (t *Transaction) Kind() TransactionKind {
	if t.Amount.IsNegative() {
		return KindExpense
	}

	return KindIncome
}

// IsExpense reports whether the transaction debited the account.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsIncome reports whether the transaction credited the account.
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsRecurring reports whether the transaction carries a recurrence interval.
func (t *Transaction) IsRecurring() bool {
	return t.RecurrenceDays > 0
}

// NextDue returns the next due date for a recurring transaction.
// Zero time for one-off transactions.
func (t *Transaction) NextDue() time.Time {
	if !t.IsRecurring() {
		return time.Time{}
	}

	return t.OccurredAt.AddDate(0, 0, t.RecurrenceDays)
}

// Magnitude returns the unsigned amount.
func (t *Transaction) Magnitude() decimal.Decimal {
	return t.Amount.Abs()
}
