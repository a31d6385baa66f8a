package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkozyrev/fintrack/internal/domain"
)

// RateUseCase answers currency-rate lookups through the external source with a
// TTL'd cache in front. A source failure is always surfaced; the cache is never
// used as a stale fallback.
type RateUseCase struct {
	source RateSource
	cache  Cache
	ttl    time.Duration
}

// NewRateUseCase creates a new RateUseCase. cache may be nil to disable caching.
func NewRateUseCase(source RateSource, cache Cache, ttl time.Duration) *RateUseCase {
	if ttl <= 0 {
		ttl = DefaultRateTTL
	}

	return &RateUseCase{
		source: source,
		cache:  cache,
		ttl:    ttl,
	}
}

// GetRate returns the base→quote exchange rate.
func (uc *RateUseCase) GetRate(ctx context.Context, base, quote string) (decimal.Decimal, error) {
	if err := domain.ValidateCurrency(base); err != nil {
		return decimal.Zero, err
	}

	if err := domain.ValidateCurrency(quote); err != nil {
		return decimal.Zero, err
	}

	base = strings.ToUpper(strings.TrimSpace(base))
	quote = strings.ToUpper(strings.TrimSpace(quote))

	key := fmt.Sprintf("rate:%s:%s", base, quote)

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, key); err == nil {
			if rate, err := decimal.NewFromString(cached); err == nil {
				return rate, nil
			}
		}
	}

	rate, err := uc.source.GetRate(ctx, base, quote)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrRateUnavailable, err)
	}

	if uc.cache != nil {
		// Best effort: a cache write failure must not fail the lookup.
		_ = uc.cache.Set(ctx, key, rate.String(), uc.ttl)
	}

	return rate, nil
}

// Convert converts amount from one currency to another at the current rate.
func (uc *RateUseCase) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	rate, err := uc.GetRate(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}

	return amount.Mul(rate), nil
}
