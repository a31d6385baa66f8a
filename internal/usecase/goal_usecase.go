package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkozyrev/fintrack/internal/domain"
)

// GoalUseCase handles savings goals, including the compound contribution
// operation that spans the account ledger and the goal row.
type GoalUseCase struct {
	txManager TxManager
	goalRepo  GoalRepository
	txRepo    TransactionRepository
	ledger    *LedgerUseCase
	idGen     IDGenerator
	retrier   Retrier
}

// NewGoalUseCase creates a new GoalUseCase. retrier may be nil, in which case
// contributions run without retries.
func NewGoalUseCase(
	txManager TxManager,
	goalRepo GoalRepository,
	txRepo TransactionRepository,
	ledger *LedgerUseCase,
	idGen IDGenerator,
	retrier Retrier,
) *GoalUseCase {
	return &GoalUseCase{
		txManager: txManager,
		goalRepo:  goalRepo,
		txRepo:    txRepo,
		ledger:    ledger,
		idGen:     idGen,
		retrier:   retrier,
	}
}

// CreateGoalInput represents input for creating a savings goal.
type CreateGoalInput struct {
	Name   string
	Target decimal.Decimal
}

// CreateGoal creates a new savings goal with a positive target.
func (uc *GoalUseCase) CreateGoal(ctx context.Context, input CreateGoalInput) (*domain.SavingsGoal, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	if input.Target.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidTarget
	}

	now := time.Now().UTC()

	goal := &domain.SavingsGoal{
		ID:          uc.idGen.Generate(),
		Name:        input.Name,
		Target:      input.Target,
		Accumulated: decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// ContributeInput represents input for contributing to a goal.
type ContributeInput struct {
	GoalID    string
	AccountID string
	Amount    decimal.Decimal
}

// Contribute debits the source account and credits the goal, all or nothing:
// the expense transaction row and the goal row are written in one database
// transaction, and session state is touched only after commit.
//
// The funds check and the post-commit apply take the ledger lock separately.
// Callers are a single session issuing one request at a time; overlapping
// contributions could both pass the check, and a divergence would surface
// through CheckConsistency.
func (uc *GoalUseCase) Contribute(ctx context.Context, input ContributeInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	goal, err := uc.goalRepo.GetByID(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}

	if err := goal.ValidateContribution(input.Amount); err != nil {
		return nil, err
	}

	account, err := uc.ledger.account(input.AccountID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	t := &domain.Transaction{
		ID:          uc.idGen.Generate(),
		AccountID:   account.ID,
		Amount:      input.Amount.Neg(),
		OccurredAt:  now,
		Description: fmt.Sprintf("Contribution to goal: %s", goal.Name),
		Category:    contributionCategory,
		CreatedAt:   now,
	}

	if err := account.ValidateApply(t); err != nil {
		return nil, err
	}

	accumulated := goal.Accumulated.Add(input.Amount)

	write := func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.txRepo.CreateTx(ctx, tx, t); err != nil {
			return err
		}

		if err := uc.goalRepo.UpdateAccumulated(ctx, tx, goal.ID, accumulated, now); err != nil {
			return err
		}

		return tx.Commit(ctx)
	}

	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, write)
	} else {
		err = write()
	}
	if err != nil {
		return nil, err
	}

	if err := uc.ledger.applyCommitted(t); err != nil {
		return nil, err
	}

	goal.ApplyContribution(input.Amount, now)

	return t, nil
}

// GetGoal retrieves a goal by ID.
func (uc *GoalUseCase) GetGoal(ctx context.Context, id string) (*domain.SavingsGoal, error) {
	return uc.goalRepo.GetByID(ctx, id)
}

// ListGoals lists all savings goals.
func (uc *GoalUseCase) ListGoals(ctx context.Context) ([]*domain.SavingsGoal, error) {
	return uc.goalRepo.List(ctx)
}

// Progress returns a goal's accumulated/target fraction in [0, 1].
func (uc *GoalUseCase) Progress(ctx context.Context, id string) (decimal.Decimal, error) {
	goal, err := uc.goalRepo.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}

	return goal.Progress(), nil
}
