package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Budget is read-only reference data: a spending limit for one category over a
// named period (e.g. "monthly"). It carries no ledger state of its own.
type Budget struct {
	Category string
	Period   string
	Limit    decimal.Decimal
}

// SpentIn sums the expenses in txs that match the budget's category within p.
func (b Budget) SpentIn(txs []*Transaction, p Period) decimal.Decimal {
	spent := decimal.Zero
	for _, t := range txs {
		if !t.IsExpense() || t.Category != b.Category {
			continue
		}

		if !p.IsZero() && !p.Contains(t.OccurredAt) {
			continue
		}

		spent = spent.Add(t.Magnitude())
	}

	return spent
}

// Exceeded reports whether spending within p is over the limit.
func (b Budget) Exceeded(txs []*Transaction, p Period) bool {
	return b.SpentIn(txs, p).GreaterThan(b.Limit)
}

// ParseBudgets parses a comma-separated "category=limit" list into monthly
// budgets. An empty string yields no budgets.
func ParseBudgets(s string) ([]Budget, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var budgets []Budget
	for _, part := range strings.Split(s, ",") {
		category, limit, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return nil, fmt.Errorf("invalid budget entry %q, want category=limit", part)
		}

		category = strings.TrimSpace(category)
		if category == "" {
			return nil, fmt.Errorf("invalid budget entry %q, empty category", part)
		}
		if err := ValidateCategory(category); err != nil {
			return nil, err
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(limit))
		if err != nil {
			return nil, fmt.Errorf("invalid budget limit %q: %w", limit, err)
		}
		if amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("budget limit for %s must be positive", category)
		}

		budgets = append(budgets, Budget{Category: category, Period: "monthly", Limit: amount})
	}

	return budgets, nil
}
