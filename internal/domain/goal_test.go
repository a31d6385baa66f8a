package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestSavingsGoal_ValidateContribution(t *testing.T) {
	tests := []struct {
		name        string
		accumulated decimal.Decimal
		amount      decimal.Decimal
		expectError error
	}{
		{
			name:        "fits under target",
			accumulated: decimal.NewFromInt(150),
			amount:      decimal.NewFromInt(50),
		},
		{
			name:        "overshoots target",
			accumulated: decimal.NewFromInt(150),
			amount:      decimal.NewFromInt(80),
			expectError: ErrGoalTargetExceeded,
		},
		{
			name:        "zero amount",
			accumulated: decimal.Zero,
			amount:      decimal.Zero,
			expectError: ErrInvalidAmount,
		},
		{
			name:        "negative amount",
			accumulated: decimal.Zero,
			amount:      decimal.NewFromInt(-10),
			expectError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &SavingsGoal{
				ID:          "g1",
				Target:      decimal.NewFromInt(200),
				Accumulated: tt.accumulated,
			}

			err := g.ValidateContribution(tt.amount)
			if err != tt.expectError {
				t.Fatalf("expected %v, got %v", tt.expectError, err)
			}
		})
	}
}

func TestSavingsGoal_ProgressMonotonicBounded(t *testing.T) {
	g := &SavingsGoal{ID: "g1", Target: decimal.NewFromInt(200)}

	one := decimal.NewFromInt(1)
	prev := g.Progress()

	for i := 0; i < 4; i++ {
		if err := g.ValidateContribution(decimal.NewFromInt(50)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		g.ApplyContribution(decimal.NewFromInt(50), time.Now())

		p := g.Progress()
		if p.LessThan(prev) {
			t.Fatalf("progress decreased: %s -> %s", prev, p)
		}

		if p.IsNegative() || p.GreaterThan(one) {
			t.Fatalf("progress out of bounds: %s", p)
		}

		prev = p
	}

	if !g.Reached() {
		t.Error("expected goal reached at full target")
	}

	if !g.Progress().Equal(one) {
		t.Errorf("expected progress 1, got %s", g.Progress())
	}
}

func TestSavingsGoal_AccumulatedEqualsContributions(t *testing.T) {
	g := &SavingsGoal{ID: "g1", Target: decimal.NewFromInt(500)}

	for _, a := range []int64{100, 25, 75} {
		g.ApplyContribution(decimal.NewFromInt(a), time.Now())
	}

	sum := decimal.Zero
	for _, c := range g.Contributions {
		sum = sum.Add(c.Amount)
	}

	if !g.Accumulated.Equal(sum) {
		t.Errorf("accumulated %s does not equal contribution sum %s", g.Accumulated, sum)
	}

	if !g.Remaining().Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected remaining 300, got %s", g.Remaining())
	}
}
