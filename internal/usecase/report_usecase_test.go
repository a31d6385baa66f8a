package usecase_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkozyrev/fintrack/internal/domain"
	"github.com/vkozyrev/fintrack/internal/usecase"
	"github.com/vkozyrev/fintrack/internal/usecase/mocks"
)

func seedSeptember(t *testing.T, ledger *usecase.LedgerUseCase) {
	t.Helper()

	openAccount(t, ledger, "main")

	entries := []struct {
		day         int
		kind        domain.TransactionKind
		amount      string
		category    string
		description string
	}{
		{1, domain.KindIncome, "500", "", "Salary"},
		{10, domain.KindExpense, "30", "food", "Groceries"},
		{15, domain.KindExpense, "20", "transport", "Bus pass"},
	}
	for _, e := range entries {
		ts := time.Date(2025, 9, e.day, 12, 0, 0, 0, time.UTC)
		if _, err := ledger.RecordTransaction(context.Background(), usecase.RecordTransactionInput{
			AccountID:   "main",
			Kind:        e.kind,
			Amount:      decimal.RequireFromString(e.amount),
			Category:    e.category,
			Description: e.description,
			OccurredAt:  &ts,
		}); err != nil {
			t.Fatalf("RecordTransaction: %v", err)
		}
	}
}

func TestReportUseCase_GenerateReport(t *testing.T) {
	ledger := usecase.NewLedgerUseCase(mocks.NewMockTransactionRepository(), mocks.NewMockIDGenerator(), nil)
	seedSeptember(t, ledger)

	dir := t.TempDir()
	uc := usecase.NewReportUseCase(ledger, dir)

	report, err := uc.GenerateReport(context.Background(), usecase.GenerateReportInput{
		AccountID: "main",
		Kind:      domain.ReportSpending,
		Period:    domain.MonthOf(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}

	if !strings.Contains(report.Text, "food: 30.00") {
		t.Errorf("report missing food line:\n%s", report.Text)
	}
	if !strings.Contains(report.Text, "Total: 50.00") {
		t.Errorf("report missing total:\n%s", report.Text)
	}
	if strings.Contains(report.Text, "Salary") {
		t.Errorf("spending report must not include income:\n%s", report.Text)
	}

	// The text is archived to a month-stamped file.
	if !strings.HasSuffix(report.Path, "spending_report_2025-09.txt") {
		t.Errorf("unexpected path %q", report.Path)
	}
	data, err := os.ReadFile(report.Path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != report.Text {
		t.Error("file contents differ from returned text")
	}
}

func TestReportUseCase_GenerateReport_FullHistory(t *testing.T) {
	ledger := usecase.NewLedgerUseCase(mocks.NewMockTransactionRepository(), mocks.NewMockIDGenerator(), nil)
	seedSeptember(t, ledger)

	uc := usecase.NewReportUseCase(ledger, t.TempDir())

	report, err := uc.GenerateReport(context.Background(), usecase.GenerateReportInput{
		AccountID: "main",
		Kind:      domain.ReportSpending,
	})
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}

	if !strings.Contains(report.Text, "food: 30.00") {
		t.Errorf("report missing food line:\n%s", report.Text)
	}
	if !strings.HasSuffix(report.Path, "spending_report_all_time.txt") {
		t.Errorf("unexpected path %q", report.Path)
	}
}

func TestReportUseCase_GenerateReport_Income(t *testing.T) {
	ledger := usecase.NewLedgerUseCase(mocks.NewMockTransactionRepository(), mocks.NewMockIDGenerator(), nil)
	seedSeptember(t, ledger)

	uc := usecase.NewReportUseCase(ledger, t.TempDir())

	report, err := uc.GenerateReport(context.Background(), usecase.GenerateReportInput{
		AccountID: "main",
		Kind:      domain.ReportIncome,
		Period:    domain.MonthOf(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}

	if !strings.Contains(report.Text, "Salary: 500.00") {
		t.Errorf("income report missing salary line:\n%s", report.Text)
	}
	if strings.Contains(report.Text, "food") {
		t.Errorf("income report must not include expenses:\n%s", report.Text)
	}
}

func TestReportUseCase_GenerateReport_Errors(t *testing.T) {
	ledger := usecase.NewLedgerUseCase(mocks.NewMockTransactionRepository(), mocks.NewMockIDGenerator(), nil)
	seedSeptember(t, ledger)

	uc := usecase.NewReportUseCase(ledger, t.TempDir())

	period := domain.MonthOf(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))

	_, err := uc.GenerateReport(context.Background(), usecase.GenerateReportInput{
		AccountID: "main",
		Kind:      "weekly",
		Period:    period,
	})
	if !errors.Is(err, domain.ErrUnknownReportKind) {
		t.Errorf("expected ErrUnknownReportKind, got %v", err)
	}

	_, err = uc.GenerateReport(context.Background(), usecase.GenerateReportInput{
		AccountID: "ghost",
		Kind:      domain.ReportSpending,
		Period:    period,
	})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestReportUseCase_Kinds(t *testing.T) {
	ledger := usecase.NewLedgerUseCase(mocks.NewMockTransactionRepository(), mocks.NewMockIDGenerator(), nil)
	uc := usecase.NewReportUseCase(ledger, t.TempDir())

	kinds := uc.Kinds()
	if len(kinds) != 2 {
		t.Fatalf("kinds = %d, want 2", len(kinds))
	}

	seen := make(map[domain.ReportKind]bool)
	for _, k := range kinds {
		seen[k] = true
	}
	if !seen[domain.ReportSpending] || !seen[domain.ReportIncome] {
		t.Errorf("kinds = %v, want spending and income", kinds)
	}
}
