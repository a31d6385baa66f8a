package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkozyrev/fintrack/internal/domain"
	"github.com/vkozyrev/fintrack/internal/usecase"
)

// OpenAccountRequest represents a request to open an account.
type OpenAccountRequest struct {
	Name         string          `json:"name"`
	Kind         string          `json:"kind,omitempty"`
	InterestRate decimal.Decimal `json:"interest_rate,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *OpenAccountRequest) ToUseCaseInput() usecase.OpenAccountInput {
	return usecase.OpenAccountInput{
		Name:         r.Name,
		Kind:         domain.AccountKind(r.Kind),
		InterestRate: r.InterestRate,
	}
}

// RecordTransactionRequest represents a request to record a transaction.
type RecordTransactionRequest struct {
	AccountID      string          `json:"account_id"`
	Description    string          `json:"description,omitempty"`
	Category       string          `json:"category,omitempty"`
	Kind           string          `json:"kind"`
	Amount         decimal.Decimal `json:"amount"`
	OccurredAt     *time.Time      `json:"occurred_at,omitempty"`
	RecurrenceDays int             `json:"recurrence_days,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordTransactionRequest) ToUseCaseInput() usecase.RecordTransactionInput {
	return usecase.RecordTransactionInput{
		AccountID:      r.AccountID,
		Description:    r.Description,
		Category:       r.Category,
		Kind:           domain.TransactionKind(r.Kind),
		Amount:         r.Amount,
		OccurredAt:     r.OccurredAt,
		RecurrenceDays: r.RecurrenceDays,
	}
}

// AddDebtRequest represents a request to log a debt.
type AddDebtRequest struct {
	Counterparty string          `json:"counterparty"`
	Direction    string          `json:"direction"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      *time.Time      `json:"due_date,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *AddDebtRequest) ToUseCaseInput() usecase.AddDebtInput {
	return usecase.AddDebtInput{
		Counterparty: r.Counterparty,
		Direction:    domain.DebtDirection(r.Direction),
		Amount:       r.Amount,
		DueDate:      r.DueDate,
	}
}

// CreateGoalRequest represents a request to create a savings goal.
type CreateGoalRequest struct {
	Name   string          `json:"name"`
	Target decimal.Decimal `json:"target"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateGoalRequest) ToUseCaseInput() usecase.CreateGoalInput {
	return usecase.CreateGoalInput{
		Name:   r.Name,
		Target: r.Target,
	}
}

// ContributeRequest represents a request to contribute to a goal.
type ContributeRequest struct {
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
}

// ConvertRequest represents a request to convert an amount between currencies.
type ConvertRequest struct {
	Amount decimal.Decimal `json:"amount"`
	From   string          `json:"from"`
	To     string          `json:"to"`
}
