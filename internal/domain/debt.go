package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtDirection tells who owes whom.
type DebtDirection string

const (
	OwedByMe DebtDirection = "owed_by_me"
	OwedToMe DebtDirection = "owed_to_me"
)

// ValidDirection reports whether d is a known debt direction.
func ValidDirection(d DebtDirection) bool {
	return d == OwedByMe || d == OwedToMe
}

// Debt records a single debt or loan. It is never partially settled: the only
// state transition is unpaid to paid.
type Debt struct {
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DueDate      *time.Time
	ID           string
	Counterparty string
	Direction    DebtDirection
	Amount       decimal.Decimal
	Paid         bool
}

// MarkPaid transitions the debt to paid and reports whether state changed.
// Marking an already-paid debt is a no-op.
func (d *Debt) MarkPaid() bool {
	if d.Paid {
		return false
	}

	d.Paid = true

	return true
}
