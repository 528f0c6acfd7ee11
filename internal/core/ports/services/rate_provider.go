package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RateSnapshot is the full set of (currency code, price) pairs returned by
// the provider for one base currency on one date.
type RateSnapshot struct {
	Date  string                     `json:"date"`
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// RateProvider is the external rate source the sync engine pulls missing
// days from. Implementations own transport concerns (timeouts, no retries
// are expected); failures surface as apperrors.ErrProviderUnavailable.
type RateProvider interface {
	FetchRates(ctx context.Context, baseShortName string, date time.Time) (*RateSnapshot, error)
}
