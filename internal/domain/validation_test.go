package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{name: "valid name", input: "Main account"},
		{name: "empty", input: "", expectError: true},
		{name: "whitespace only", input: "   ", expectError: true},
		{name: "too long", input: strings.Repeat("a", 256), expectError: true},
		{name: "max length", input: strings.Repeat("a", 255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateCurrency(t *testing.T) {
	for _, code := range []string{"USD", "uah", " EUR "} {
		if err := ValidateCurrency(code); err != nil {
			t.Errorf("expected %q valid: %v", code, err)
		}
	}

	for _, code := range []string{"", "XXX", "DOLLARS"} {
		if err := ValidateCurrency(code); !errors.Is(err, ErrInvalidCurrency) {
			t.Errorf("expected ErrInvalidCurrency for %q, got %v", code, err)
		}
	}
}

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(decimal.NewFromFloat(10.50)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateAmount(decimal.Zero); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}

	if err := ValidateAmount(decimal.NewFromInt(-5)); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}

	huge, _ := decimal.NewFromString("1000000001")
	if err := ValidateAmount(huge); !errors.Is(err, ErrAmountTooLarge) {
		t.Errorf("expected ErrAmountTooLarge, got %v", err)
	}
}

func TestNewPeriod(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)

	if _, err := NewPeriod(start, end); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if _, err := NewPeriod(end, start); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestMonthOf(t *testing.T) {
	p := MonthOf(time.Date(2025, 9, 15, 10, 30, 0, 0, time.UTC))

	if !p.Contains(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("month start excluded")
	}

	if !p.Contains(time.Date(2025, 9, 30, 23, 59, 59, 0, time.UTC)) {
		t.Error("month end excluded")
	}

	if p.Contains(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("next month included")
	}
}

func TestDebt_MarkPaidIdempotent(t *testing.T) {
	d := &Debt{ID: "d1", Counterparty: "Oleh", Amount: decimal.NewFromInt(100), Direction: OwedByMe}

	if changed := d.MarkPaid(); !changed {
		t.Error("first MarkPaid should change state")
	}

	if changed := d.MarkPaid(); changed {
		t.Error("second MarkPaid should be a no-op")
	}

	if !d.Paid {
		t.Error("debt should be paid")
	}
}
