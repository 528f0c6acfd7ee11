package repositories

import (
	"context"
	"time"

	"github.com/ratehub/fx_rates_service/internal/core/domain"
)

// RateReader defines read operations for persisted exchange rates
type RateReader interface {
	// HasRatesForDate reports whether any rate exists for the base currency
	// on the given date. The sync engine treats a true result as "already
	// synced" for that day.
	HasRatesForDate(ctx context.Context, baseID int64, date time.Time) (bool, error)

	// ListRates retrieves rates for the base currency. With both bounds nil
	// it returns every stored rate for the base; with only date set it
	// returns that single day; with both set it returns the inclusive range.
	// Results are ordered by date, then target currency code.
	ListRates(ctx context.Context, baseID int64, date, untilDate *time.Time) ([]domain.Rate, error)
}

// RateWriter defines write operations for persisted exchange rates
type RateWriter interface {
	// SaveRates persists one day's snapshot rows in a single transaction, so
	// a day is either fully stored or not stored at all. The store enforces
	// uniqueness of (base, currency, date) as a hard constraint: a
	// conflicting write means the row is already synced and is not an error.
	SaveRates(ctx context.Context, rates []domain.Rate) error
}

// RateRepositoryFacade combines all rate-related repository interfaces
// This is a facade for clients that need access to all operations
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}

// RateRepositoryWithTx extends RateRepositoryFacade with transaction capabilities
type RateRepositoryWithTx interface {
	RateRepositoryFacade
	TransactionManager
}
