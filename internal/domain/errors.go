package domain

import "errors"

var (
	// Account errors
	ErrInsufficientFunds = errors.New("insufficient funds on account")
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountExists     = errors.New("account already exists")
	ErrNotSavingsAccount = errors.New("account does not accrue interest")

	// Transaction errors
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidKind         = errors.New("unknown transaction kind")
	ErrTransactionNotFound = errors.New("transaction not found")

	// Debt errors
	ErrDebtNotFound     = errors.New("debt not found")
	ErrInvalidDirection = errors.New("invalid debt direction")

	// Goal errors
	ErrGoalNotFound       = errors.New("savings goal not found")
	ErrInvalidTarget      = errors.New("goal target must be positive")
	ErrGoalTargetExceeded = errors.New("contribution would exceed goal target")

	// Report errors
	ErrUnknownReportKind = errors.New("unknown report kind")
	ErrInvalidPeriod     = errors.New("period end must not precede start")

	// External source errors
	ErrRateUnavailable = errors.New("exchange rate unavailable")
)
