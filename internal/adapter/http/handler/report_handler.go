package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vkozyrev/fintrack/internal/adapter/http/dto"
	"github.com/vkozyrev/fintrack/internal/domain"
	"github.com/vkozyrev/fintrack/internal/infrastructure/metrics"
	"github.com/vkozyrev/fintrack/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	GenerateReport(ctx context.Context, input usecase.GenerateReportInput) (*usecase.GeneratedReport, error)
	Kinds() []domain.ReportKind
}

// AnalysisService defines the spending-analysis behavior needed by ReportHandler.
type AnalysisService interface {
	SpendingAnalysis(accountID string, p domain.Period) ([]domain.ReportLine, error)
	BudgetStatuses(accountID string, p domain.Period) ([]usecase.BudgetStatus, error)
	CheckConsistency(ctx context.Context) (bool, error)
}

// ReportHandler handles report and analysis HTTP requests.
type ReportHandler struct {
	reports ReportService
	ledger  AnalysisService
	metrics *metrics.Metrics
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports ReportService, ledger AnalysisService, m *metrics.Metrics) *ReportHandler {
	return &ReportHandler{reports: reports, ledger: ledger, metrics: m}
}

// Generate runs the report generator named in the URL for an account and
// period given as query parameters.
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	accountID := r.URL.Query().Get("account_id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account_id", "")
		return
	}

	period, err := parsePeriod(r)
	if err != nil {
		writeError(w, mapDomainError(err), "invalid period", err.Error())
		return
	}

	report, err := h.reports.GenerateReport(r.Context(), usecase.GenerateReportInput{
		AccountID: accountID,
		Kind:      domain.ReportKind(kind),
		Period:    period,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to generate report", err.Error())
		return
	}

	h.metrics.RecordReport(string(report.Kind))

	writeJSON(w, http.StatusOK, dto.ReportFromUseCase(report))
}

// Kinds lists the available report kinds.
func (h *ReportHandler) Kinds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reports.Kinds())
}

// SpendingAnalysis returns the top spending categories for an account.
func (h *ReportHandler) SpendingAnalysis(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("account_id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account_id", "")
		return
	}

	period, err := parsePeriod(r)
	if err != nil {
		writeError(w, mapDomainError(err), "invalid period", err.Error())
		return
	}

	lines, err := h.ledger.SpendingAnalysis(accountID, period)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to analyze spending", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReportLinesFromDomain(lines))
}

// BudgetStatuses evaluates configured budgets for an account.
func (h *ReportHandler) BudgetStatuses(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("account_id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account_id", "")
		return
	}

	period, err := parsePeriod(r)
	if err != nil {
		writeError(w, mapDomainError(err), "invalid period", err.Error())
		return
	}

	statuses, err := h.ledger.BudgetStatuses(accountID, period)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to evaluate budgets", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BudgetStatusesFromUseCase(statuses))
}

// Consistency verifies cached balances against the stored transaction log.
// A detected mismatch is reported as a result, not an error.
func (h *ReportHandler) Consistency(w http.ResponseWriter, r *http.Request) {
	ok, err := h.ledger.CheckConsistency(r.Context())
	if err != nil && !errors.Is(err, usecase.ErrInconsistentLedger) {
		writeError(w, http.StatusInternalServerError, "consistency check failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyResponse{Consistent: ok})
}
