package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/vkozyrev/fintrack/internal/adapter/http/dto"
	"github.com/vkozyrev/fintrack/internal/domain"
	"github.com/vkozyrev/fintrack/internal/usecase"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrDebtNotFound),
		errors.Is(err, domain.ErrGoalNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccountExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrGoalTargetExceeded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrRateUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, usecase.ErrInconsistentLedger):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrAmountTooLarge),
		errors.Is(err, domain.ErrInvalidKind),
		errors.Is(err, domain.ErrInvalidDirection),
		errors.Is(err, domain.ErrInvalidTarget),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidCurrency),
		errors.Is(err, domain.ErrNotSavingsAccount),
		errors.Is(err, domain.ErrUnknownReportKind),
		errors.Is(err, domain.ErrInvalidPeriod):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parsePeriod reads an optional reporting period from query parameters. Either
// month=2006-01, or from=2006-01-02&to=2006-01-02. Absent parameters yield the
// zero period, meaning the full history.
func parsePeriod(r *http.Request) (domain.Period, error) {
	q := r.URL.Query()

	if month := q.Get("month"); month != "" {
		t, err := time.Parse("2006-01", month)
		if err != nil {
			return domain.Period{}, domain.ErrInvalidPeriod
		}

		return domain.MonthOf(t), nil
	}

	from := q.Get("from")
	to := q.Get("to")
	if from == "" && to == "" {
		return domain.Period{}, nil
	}
	if from == "" || to == "" {
		return domain.Period{}, domain.ErrInvalidPeriod
	}

	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return domain.Period{}, domain.ErrInvalidPeriod
	}

	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return domain.Period{}, domain.ErrInvalidPeriod
	}

	// The to day is inclusive, so the period runs to its last instant.
	end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)

	return domain.NewPeriod(start, end)
}
