package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/vkozyrev/fintrack/internal/adapter/http/dto"
	"github.com/vkozyrev/fintrack/internal/domain"
	"github.com/vkozyrev/fintrack/internal/infrastructure/metrics"
	"github.com/vkozyrev/fintrack/internal/usecase"
)

// GoalService defines the behavior needed by GoalHandler.
type GoalService interface {
	CreateGoal(ctx context.Context, input usecase.CreateGoalInput) (*domain.SavingsGoal, error)
	Contribute(ctx context.Context, input usecase.ContributeInput) (*domain.Transaction, error)
	GetGoal(ctx context.Context, id string) (*domain.SavingsGoal, error)
	ListGoals(ctx context.Context) ([]*domain.SavingsGoal, error)
	Progress(ctx context.Context, id string) (decimal.Decimal, error)
}

// GoalHandler handles savings-goal HTTP requests.
type GoalHandler struct {
	goals   GoalService
	metrics *metrics.Metrics
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goals GoalService, m *metrics.Metrics) *GoalHandler {
	return &GoalHandler{goals: goals, metrics: m}
}

// Create creates a new savings goal.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	goal, err := h.goals.CreateGoal(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create goal", err.Error())
		return
	}

	h.metrics.RecordGoalCreated()

	writeJSON(w, http.StatusCreated, dto.GoalFromDomain(goal))
}

// List lists all savings goals.
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goals.ListGoals(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list goals", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.GoalsFromDomain(goals))
}

// Get retrieves a goal by ID.
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	goal, err := h.goals.GetGoal(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get goal", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.GoalFromDomain(goal))
}

// Contribute moves money from an account into a goal.
func (h *GoalHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.ContributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tx, err := h.goals.Contribute(r.Context(), usecase.ContributeInput{
		GoalID:    id,
		AccountID: req.AccountID,
		Amount:    req.Amount,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to contribute", err.Error())
		return
	}

	h.metrics.RecordContribution(tx.Magnitude().InexactFloat64())

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(tx))
}

// Progress returns a goal's completion fraction.
func (h *GoalHandler) Progress(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	progress, err := h.goals.Progress(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get progress", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]decimal.Decimal{"progress": progress})
}
