package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ReportKind selects a report generator at runtime.
type ReportKind string

const (
	ReportSpending ReportKind = "spending"
	ReportIncome   ReportKind = "income"
)

// ReportLine is one aggregated row of a report.
type ReportLine struct {
	Name   string
	Amount decimal.Decimal
}

// ReportGenerator is a stateless transformation from a transaction set and a
// period to formatted text.
type ReportGenerator interface {
	Kind() ReportKind
	Generate(txs []*Transaction, p Period) string
}

// SpendingReport summarizes expenses grouped by category.
type SpendingReport struct{}

func (SpendingReport) Kind() ReportKind { return ReportSpending }

func (SpendingReport) Generate(txs []*Transaction, p Period) string {
	lines := aggregate(txs, p, func(t *Transaction) (string, decimal.Decimal, bool) {
		if !t.IsExpense() {
			return "", decimal.Zero, false
		}

		category := t.Category
		if category == "" {
			category = "uncategorized"
		}

		return category, t.Magnitude(), true
	})

	return format("Spending report", p, lines)
}

// IncomeReport summarizes income grouped by description.
type IncomeReport struct{}

func (IncomeReport) Kind() ReportKind { return ReportIncome }

func (IncomeReport) Generate(txs []*Transaction, p Period) string {
	lines := aggregate(txs, p, func(t *Transaction) (string, decimal.Decimal, bool) {
		if !t.IsIncome() {
			return "", decimal.Zero, false
		}

		source := t.Description
		if source == "" {
			source = "other"
		}

		return source, t.Amount, true
	})

	return format("Income report", p, lines)
}

// aggregate groups transaction amounts by the key pick returns, ordered by
// descending amount with ties broken by name for determinism.
func aggregate(txs []*Transaction, p Period, pick func(*Transaction) (string, decimal.Decimal, bool)) []ReportLine {
	totals := make(map[string]decimal.Decimal)
	for _, t := range txs {
		if !p.IsZero() && !p.Contains(t.OccurredAt) {
			continue
		}

		key, amount, ok := pick(t)
		if !ok {
			continue
		}

		totals[key] = totals[key].Add(amount)
	}

	lines := make([]ReportLine, 0, len(totals))
	for name, amount := range totals {
		lines = append(lines, ReportLine{Name: name, Amount: amount})
	}

	sort.Slice(lines, func(i, j int) bool {
		if !lines[i].Amount.Equal(lines[j].Amount) {
			return lines[i].Amount.GreaterThan(lines[j].Amount)
		}

		return lines[i].Name < lines[j].Name
	})

	return lines
}

func format(title string, p Period, lines []ReportLine) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n", title, p)

	if len(lines) == 0 {
		b.WriteString("No data for this period.\n")

		return b.String()
	}

	total := decimal.Zero
	for _, line := range lines {
		fmt.Fprintf(&b, "- %s: %s\n", line.Name, line.Amount.StringFixed(2))
		total = total.Add(line.Amount)
	}

	fmt.Fprintf(&b, "\nTotal: %s\n", total.StringFixed(2))

	return b.String()
}
