package handler

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/vkozyrev/fintrack/internal/adapter/http/dto"
	"github.com/vkozyrev/fintrack/internal/infrastructure/metrics"
)

// RateService defines the behavior needed by RateHandler.
type RateService interface {
	GetRate(ctx context.Context, base, quote string) (decimal.Decimal, error)
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error)
}

// RateHandler handles currency-rate HTTP requests.
type RateHandler struct {
	rates   RateService
	metrics *metrics.Metrics
}

// NewRateHandler creates a new RateHandler.
func NewRateHandler(rates RateService, m *metrics.Metrics) *RateHandler {
	return &RateHandler{rates: rates, metrics: m}
}

// Get returns the exchange rate between two currencies.
func (h *RateHandler) Get(w http.ResponseWriter, r *http.Request) {
	base := r.URL.Query().Get("base")
	quote := r.URL.Query().Get("quote")

	rate, err := h.rates.GetRate(r.Context(), base, quote)
	if err != nil {
		h.metrics.RecordRateLookup("error")
		writeError(w, mapDomainError(err), "failed to get rate", err.Error())
		return
	}

	h.metrics.RecordRateLookup("ok")

	writeJSON(w, http.StatusOK, dto.RateResponse{Base: base, Quote: quote, Rate: rate})
}

// Convert converts an amount between currencies at the current rate.
func (h *RateHandler) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := q.Get("from")
	to := q.Get("to")

	amount, err := decimal.NewFromString(q.Get("amount"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err.Error())
		return
	}

	converted, err := h.rates.Convert(r.Context(), amount, from, to)
	if err != nil {
		h.metrics.RecordRateLookup("error")
		writeError(w, mapDomainError(err), "failed to convert", err.Error())
		return
	}

	h.metrics.RecordRateLookup("ok")

	rate := converted.Div(amount)

	writeJSON(w, http.StatusOK, dto.ConvertResponse{
		From:      from,
		To:        to,
		Amount:    amount,
		Converted: converted,
		Rate:      rate,
	})
}
