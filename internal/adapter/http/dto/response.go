package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkozyrev/fintrack/internal/domain"
	"github.com/vkozyrev/fintrack/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Kind         string          `json:"kind"`
	Balance      decimal.Decimal `json:"balance"`
	InterestRate decimal.Decimal `json:"interest_rate,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:           a.ID,
		Name:         a.Name,
		Kind:         string(a.Kind),
		Balance:      a.Balance,
		InterestRate: a.InterestRate,
		CreatedAt:    a.CreatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// BalanceResponse represents an account balance.
type BalanceResponse struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID             string          `json:"id"`
	AccountID      string          `json:"account_id"`
	Kind           string          `json:"kind"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description,omitempty"`
	Category       string          `json:"category,omitempty"`
	OccurredAt     time.Time       `json:"occurred_at"`
	RecurrenceDays int             `json:"recurrence_days,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:             t.ID,
		AccountID:      t.AccountID,
		Kind:           string(t.Kind()),
		Amount:         t.Amount,
		Description:    t.Description,
		Category:       t.Category,
		OccurredAt:     t.OccurredAt,
		RecurrenceDays: t.RecurrenceDays,
		CreatedAt:      t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txs []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txs))
	for i, t := range txs {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// DebtResponse represents a debt in API responses.
type DebtResponse struct {
	ID           string          `json:"id"`
	Counterparty string          `json:"counterparty"`
	Direction    string          `json:"direction"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      *time.Time      `json:"due_date,omitempty"`
	Paid         bool            `json:"paid"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// DebtFromDomain converts a domain debt to a response.
func DebtFromDomain(d *domain.Debt) *DebtResponse {
	return &DebtResponse{
		ID:           d.ID,
		Counterparty: d.Counterparty,
		Direction:    string(d.Direction),
		Amount:       d.Amount,
		DueDate:      d.DueDate,
		Paid:         d.Paid,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// DebtsFromDomain converts domain debts to responses.
func DebtsFromDomain(debts []*domain.Debt) []*DebtResponse {
	result := make([]*DebtResponse, len(debts))
	for i, d := range debts {
		result[i] = DebtFromDomain(d)
	}
	return result
}

// DebtTotalsResponse represents aggregate unpaid debt principals.
type DebtTotalsResponse struct {
	OwedByMe decimal.Decimal `json:"owed_by_me"`
	OwedToMe decimal.Decimal `json:"owed_to_me"`
}

// GoalResponse represents a savings goal in API responses.
type GoalResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Target      decimal.Decimal `json:"target"`
	Accumulated decimal.Decimal `json:"accumulated"`
	Remaining   decimal.Decimal `json:"remaining"`
	Progress    decimal.Decimal `json:"progress"`
	Reached     bool            `json:"reached"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// GoalFromDomain converts a domain goal to a response.
func GoalFromDomain(g *domain.SavingsGoal) *GoalResponse {
	return &GoalResponse{
		ID:          g.ID,
		Name:        g.Name,
		Target:      g.Target,
		Accumulated: g.Accumulated,
		Remaining:   g.Remaining(),
		Progress:    g.Progress(),
		Reached:     g.Reached(),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// GoalsFromDomain converts domain goals to responses.
func GoalsFromDomain(goals []*domain.SavingsGoal) []*GoalResponse {
	result := make([]*GoalResponse, len(goals))
	for i, g := range goals {
		result[i] = GoalFromDomain(g)
	}
	return result
}

// ReportResponse represents a generated report.
type ReportResponse struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
	Path string `json:"path"`
}

// ReportFromUseCase converts a generated report to a response.
func ReportFromUseCase(r *usecase.GeneratedReport) *ReportResponse {
	return &ReportResponse{
		Kind: string(r.Kind),
		Text: r.Text,
		Path: r.Path,
	}
}

// ReportLineResponse represents one aggregated report row.
type ReportLineResponse struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// ReportLinesFromDomain converts domain report lines to responses.
func ReportLinesFromDomain(lines []domain.ReportLine) []ReportLineResponse {
	result := make([]ReportLineResponse, len(lines))
	for i, l := range lines {
		result[i] = ReportLineResponse{Name: l.Name, Amount: l.Amount}
	}
	return result
}

// BudgetStatusResponse represents one budget's spending status.
type BudgetStatusResponse struct {
	Category string          `json:"category"`
	Period   string          `json:"period"`
	Limit    decimal.Decimal `json:"limit"`
	Spent    decimal.Decimal `json:"spent"`
	Exceeded bool            `json:"exceeded"`
}

// BudgetStatusesFromUseCase converts budget statuses to responses.
func BudgetStatusesFromUseCase(statuses []usecase.BudgetStatus) []BudgetStatusResponse {
	result := make([]BudgetStatusResponse, len(statuses))
	for i, s := range statuses {
		result[i] = BudgetStatusResponse{
			Category: s.Budget.Category,
			Period:   s.Budget.Period,
			Limit:    s.Budget.Limit,
			Spent:    s.Spent,
			Exceeded: s.Exceeded,
		}
	}
	return result
}

// RateResponse represents an exchange rate lookup result.
type RateResponse struct {
	Base  string          `json:"base"`
	Quote string          `json:"quote"`
	Rate  decimal.Decimal `json:"rate"`
}

// ConvertResponse represents a currency conversion result.
type ConvertResponse struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Amount    decimal.Decimal `json:"amount"`
	Converted decimal.Decimal `json:"converted"`
	Rate      decimal.Decimal `json:"rate"`
}

// ConsistencyResponse reports a ledger consistency check.
type ConsistencyResponse struct {
	Consistent bool `json:"consistent"`
}
