package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func septemberPeriod(t *testing.T) Period {
	t.Helper()

	p, err := NewPeriod(
		tx(0, 1, "").OccurredAt.AddDate(0, 0, -1),
		tx(0, 30, "").OccurredAt,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return p
}

func TestSpendingReport_Generate(t *testing.T) {
	txs := []*Transaction{
		tx(-30, 5, "food"),
		tx(-20, 10, "transport"),
		tx(500, 15, ""),
	}
	txs[2].Description = "salary"

	out := SpendingReport{}.Generate(txs, septemberPeriod(t))

	if !strings.Contains(out, "- food: 30.00") {
		t.Errorf("missing food line:\n%s", out)
	}

	if !strings.Contains(out, "- transport: 20.00") {
		t.Errorf("missing transport line:\n%s", out)
	}

	if strings.Contains(out, "salary") {
		t.Errorf("income leaked into spending report:\n%s", out)
	}

	if !strings.Contains(out, "Total: 50.00") {
		t.Errorf("wrong total:\n%s", out)
	}

	// Larger category is listed first.
	if strings.Index(out, "food") > strings.Index(out, "transport") {
		t.Errorf("lines not ordered by descending amount:\n%s", out)
	}
}

func TestSpendingReport_TieBrokenByName(t *testing.T) {
	txs := []*Transaction{
		tx(-25, 5, "transport"),
		tx(-25, 6, "food"),
	}

	out := SpendingReport{}.Generate(txs, Period{})

	if strings.Index(out, "food") > strings.Index(out, "transport") {
		t.Errorf("equal amounts should be ordered by name:\n%s", out)
	}
}

func TestIncomeReport_Generate(t *testing.T) {
	salary := tx(500, 15, "")
	salary.Description = "salary"
	freelance := tx(120, 20, "")
	freelance.Description = "freelance"
	expense := tx(-30, 5, "food")

	out := IncomeReport{}.Generate([]*Transaction{salary, freelance, expense}, septemberPeriod(t))

	if !strings.Contains(out, "- salary: 500.00") {
		t.Errorf("missing salary line:\n%s", out)
	}

	if !strings.Contains(out, "- freelance: 120.00") {
		t.Errorf("missing freelance line:\n%s", out)
	}

	if strings.Contains(out, "food") {
		t.Errorf("expense leaked into income report:\n%s", out)
	}

	if !strings.Contains(out, "Total: 620.00") {
		t.Errorf("wrong total:\n%s", out)
	}
}

func TestReport_EmptyPeriod(t *testing.T) {
	out := IncomeReport{}.Generate(nil, septemberPeriod(t))

	if !strings.Contains(out, "No data for this period.") {
		t.Errorf("expected empty-period message:\n%s", out)
	}
}

func TestSpendingReport_RespectsPeriod(t *testing.T) {
	inside := tx(-40, 10, "food")
	outside := tx(-99, 10, "travel")
	outside.OccurredAt = outside.OccurredAt.AddDate(0, 2, 0)

	out := SpendingReport{}.Generate([]*Transaction{inside, outside}, septemberPeriod(t))

	if strings.Contains(out, "travel") {
		t.Errorf("transaction outside period included:\n%s", out)
	}

	if !strings.Contains(out, "Total: 40.00") {
		t.Errorf("wrong total:\n%s", out)
	}
}

func TestAggregate_SumsPerKey(t *testing.T) {
	txs := []*Transaction{
		tx(-30, 5, "food"),
		tx(-20, 6, "food"),
	}

	lines := aggregate(txs, Period{}, func(tr *Transaction) (string, decimal.Decimal, bool) {
		return tr.Category, tr.Magnitude(), tr.IsExpense()
	})

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	if !lines[0].Amount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected food 50, got %s", lines[0].Amount)
	}
}
