package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkozyrev/fintrack/internal/domain"
	"github.com/vkozyrev/fintrack/internal/usecase"
	"github.com/vkozyrev/fintrack/internal/usecase/mocks"
)

func TestDebtUseCase_AddDebt(t *testing.T) {
	due := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		input       usecase.AddDebtInput
		expectError error
	}{
		{
			name: "owed by me",
			input: usecase.AddDebtInput{
				Counterparty: "Alice",
				Direction:    domain.OwedByMe,
				Amount:       decimal.NewFromInt(150),
				DueDate:      &due,
			},
		},
		{
			name: "owed to me without due date",
			input: usecase.AddDebtInput{
				Counterparty: "Bob",
				Direction:    domain.OwedToMe,
				Amount:       decimal.NewFromInt(75),
			},
		},
		{
			name: "zero amount",
			input: usecase.AddDebtInput{
				Counterparty: "Alice",
				Direction:    domain.OwedByMe,
				Amount:       decimal.Zero,
			},
			expectError: domain.ErrInvalidAmount,
		},
		{
			name: "unknown direction",
			input: usecase.AddDebtInput{
				Counterparty: "Alice",
				Direction:    "sideways",
				Amount:       decimal.NewFromInt(10),
			},
			expectError: domain.ErrInvalidDirection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewDebtUseCase(mocks.NewMockDebtRepository(), mocks.NewMockIDGenerator())

			debt, err := uc.AddDebt(context.Background(), tt.input)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Fatalf("expected %v, got %v", tt.expectError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if debt.ID == "" {
				t.Error("expected generated ID")
			}
			if debt.Paid {
				t.Error("new debt must start unpaid")
			}
			if debt.Counterparty != tt.input.Counterparty {
				t.Errorf("counterparty = %q, want %q", debt.Counterparty, tt.input.Counterparty)
			}
		})
	}
}

func TestDebtUseCase_MarkPaid(t *testing.T) {
	repo := mocks.NewMockDebtRepository()
	uc := usecase.NewDebtUseCase(repo, mocks.NewMockIDGenerator())

	debt, err := uc.AddDebt(context.Background(), usecase.AddDebtInput{
		Counterparty: "Alice",
		Direction:    domain.OwedByMe,
		Amount:       decimal.NewFromInt(150),
	})
	if err != nil {
		t.Fatalf("AddDebt: %v", err)
	}

	paid, err := uc.MarkPaid(context.Background(), debt.ID)
	if err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}
	if !paid.Paid {
		t.Error("debt should be paid")
	}

	// Marking again is a no-op and must not hit the store.
	repo.SetPaidFunc = func(ctx context.Context, id string, updatedAt time.Time) error {
		t.Error("SetPaid called for an already-paid debt")
		return nil
	}

	again, err := uc.MarkPaid(context.Background(), debt.ID)
	if err != nil {
		t.Fatalf("MarkPaid (second): %v", err)
	}
	if !again.Paid {
		t.Error("debt should remain paid")
	}

	if _, err := uc.MarkPaid(context.Background(), "missing"); !errors.Is(err, domain.ErrDebtNotFound) {
		t.Errorf("expected ErrDebtNotFound, got %v", err)
	}
}

func TestDebtUseCase_Totals(t *testing.T) {
	uc := usecase.NewDebtUseCase(mocks.NewMockDebtRepository(), mocks.NewMockIDGenerator())

	add := func(counterparty string, direction domain.DebtDirection, amount int64) *domain.Debt {
		t.Helper()
		debt, err := uc.AddDebt(context.Background(), usecase.AddDebtInput{
			Counterparty: counterparty,
			Direction:    direction,
			Amount:       decimal.NewFromInt(amount),
		})
		if err != nil {
			t.Fatalf("AddDebt(%s): %v", counterparty, err)
		}
		return debt
	}

	add("Alice", domain.OwedByMe, 150)
	add("Carol", domain.OwedByMe, 50)
	add("Bob", domain.OwedToMe, 75)
	settled := add("Dave", domain.OwedByMe, 999)

	if _, err := uc.MarkPaid(context.Background(), settled.ID); err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}

	totals, err := uc.Totals(context.Background())
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}

	// Paid debts are excluded from both sides.
	if !totals.OwedByMe.Equal(decimal.NewFromInt(200)) {
		t.Errorf("OwedByMe = %s, want 200", totals.OwedByMe)
	}
	if !totals.OwedToMe.Equal(decimal.NewFromInt(75)) {
		t.Errorf("OwedToMe = %s, want 75", totals.OwedToMe)
	}
}
