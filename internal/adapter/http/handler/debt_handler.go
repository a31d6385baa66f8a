package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vkozyrev/fintrack/internal/adapter/http/dto"
	"github.com/vkozyrev/fintrack/internal/domain"
	"github.com/vkozyrev/fintrack/internal/infrastructure/metrics"
	"github.com/vkozyrev/fintrack/internal/usecase"
)

// DebtService defines the behavior needed by DebtHandler.
type DebtService interface {
	AddDebt(ctx context.Context, input usecase.AddDebtInput) (*domain.Debt, error)
	MarkPaid(ctx context.Context, id string) (*domain.Debt, error)
	GetDebt(ctx context.Context, id string) (*domain.Debt, error)
	ListDebts(ctx context.Context) ([]*domain.Debt, error)
	Totals(ctx context.Context) (usecase.DebtTotals, error)
}

// DebtHandler handles debt-related HTTP requests.
type DebtHandler struct {
	debts   DebtService
	metrics *metrics.Metrics
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debts DebtService, m *metrics.Metrics) *DebtHandler {
	return &DebtHandler{debts: debts, metrics: m}
}

// Add logs a new debt.
func (h *DebtHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	debt, err := h.debts.AddDebt(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add debt", err.Error())
		return
	}

	h.metrics.RecordDebtCreated()

	writeJSON(w, http.StatusCreated, dto.DebtFromDomain(debt))
}

// List lists all debts.
func (h *DebtHandler) List(w http.ResponseWriter, r *http.Request) {
	debts, err := h.debts.ListDebts(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list debts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DebtsFromDomain(debts))
}

// Get retrieves a debt by ID.
func (h *DebtHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	debt, err := h.debts.GetDebt(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get debt", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DebtFromDomain(debt))
}

// Pay marks a debt as paid. Paying an already-paid debt succeeds unchanged.
func (h *DebtHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	debt, err := h.debts.MarkPaid(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to mark debt paid", err.Error())
		return
	}

	h.metrics.RecordDebtPaid()

	writeJSON(w, http.StatusOK, dto.DebtFromDomain(debt))
}

// Totals sums unpaid debts by direction.
func (h *DebtHandler) Totals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.debts.Totals(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to sum debts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DebtTotalsResponse{
		OwedByMe: totals.OwedByMe,
		OwedToMe: totals.OwedToMe,
	})
}
