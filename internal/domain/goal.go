package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contribution is a single payment into a savings goal.
type Contribution struct {
	At     time.Time
	Amount decimal.Decimal
}

// SavingsGoal tracks progress toward a target amount. Accumulated always equals
// the sum of contributions and never exceeds the target: contributions that
// would overshoot are rejected rather than clamped.
type SavingsGoal struct {
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ID            string
	Name          string
	Target        decimal.Decimal
	Accumulated   decimal.Decimal
	Contributions []Contribution
}

// ValidateContribution checks that amount is positive and fits under the target.
func (g *SavingsGoal) ValidateContribution(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if g.Accumulated.Add(amount).GreaterThan(g.Target) {
		return ErrGoalTargetExceeded
	}

	return nil
}

// ApplyContribution records a validated contribution.
func (g *SavingsGoal) ApplyContribution(amount decimal.Decimal, at time.Time) {
	g.Accumulated = g.Accumulated.Add(amount)
	g.Contributions = append(g.Contributions, Contribution{Amount: amount, At: at})
	g.UpdatedAt = at
}

// Remaining returns the amount still needed to reach the target.
func (g *SavingsGoal) Remaining() decimal.Decimal {
	return g.Target.Sub(g.Accumulated)
}

// Progress returns accumulated/target as a fraction in [0, 1].
func (g *SavingsGoal) Progress() decimal.Decimal {
	if g.Target.LessThanOrEqual(decimal.Zero) {
		return decimal.NewFromInt(1)
	}

	p := g.Accumulated.DivRound(g.Target, 4)
	if p.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}

	return p
}

// Reached reports whether the goal is fully funded.
func (g *SavingsGoal) Reached() bool {
	return g.Accumulated.GreaterThanOrEqual(g.Target)
}
