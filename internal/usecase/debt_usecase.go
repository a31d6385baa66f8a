package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkozyrev/fintrack/internal/domain"
)

// DebtUseCase handles debt bookkeeping.
type DebtUseCase struct {
	debtRepo DebtRepository
	idGen    IDGenerator
}

// NewDebtUseCase creates a new DebtUseCase.
func NewDebtUseCase(debtRepo DebtRepository, idGen IDGenerator) *DebtUseCase {
	return &DebtUseCase{
		debtRepo: debtRepo,
		idGen:    idGen,
	}
}

// AddDebtInput represents input for logging a debt.
type AddDebtInput struct {
	DueDate      *time.Time
	Counterparty string
	Direction    domain.DebtDirection
	Amount       decimal.Decimal
}

// AddDebt logs a new debt. The only business validation is a positive amount
// and a known direction.
func (uc *DebtUseCase) AddDebt(ctx context.Context, input AddDebtInput) (*domain.Debt, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if !domain.ValidDirection(input.Direction) {
		return nil, domain.ErrInvalidDirection
	}

	now := time.Now().UTC()

	debt := &domain.Debt{
		ID:           uc.idGen.Generate(),
		Counterparty: input.Counterparty,
		Amount:       input.Amount,
		Direction:    input.Direction,
		DueDate:      input.DueDate,
		Paid:         false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, err
	}

	return debt, nil
}

// MarkPaid transitions a debt to paid. Marking an already-paid debt is a
// silent no-op, so the operation is idempotent.
func (uc *DebtUseCase) MarkPaid(ctx context.Context, id string) (*domain.Debt, error) {
	debt, err := uc.debtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !debt.MarkPaid() {
		return debt, nil
	}

	now := time.Now().UTC()
	if err := uc.debtRepo.SetPaid(ctx, id, now); err != nil {
		return nil, err
	}

	debt.UpdatedAt = now

	return debt, nil
}

// GetDebt retrieves a debt by ID.
func (uc *DebtUseCase) GetDebt(ctx context.Context, id string) (*domain.Debt, error) {
	return uc.debtRepo.GetByID(ctx, id)
}

// ListDebts lists all debts.
func (uc *DebtUseCase) ListDebts(ctx context.Context) ([]*domain.Debt, error) {
	return uc.debtRepo.List(ctx)
}

// DebtTotals are the aggregate principals over unpaid debts.
type DebtTotals struct {
	OwedByMe decimal.Decimal
	OwedToMe decimal.Decimal
}

// Totals sums unpaid debts by direction.
func (uc *DebtUseCase) Totals(ctx context.Context) (DebtTotals, error) {
	debts, err := uc.debtRepo.List(ctx)
	if err != nil {
		return DebtTotals{}, err
	}

	totals := DebtTotals{OwedByMe: decimal.Zero, OwedToMe: decimal.Zero}
	for _, d := range debts {
		if d.Paid {
			continue
		}

		switch d.Direction {
		case domain.OwedByMe:
			totals.OwedByMe = totals.OwedByMe.Add(d.Amount)
		case domain.OwedToMe:
			totals.OwedToMe = totals.OwedToMe.Add(d.Amount)
		}
	}

	return totals, nil
}
