package repositories

import (
	"context"

	"github.com/ratehub/fx_rates_service/internal/core/domain"
)

// CurrencyReader defines read operations for currency reference data
type CurrencyReader interface {
	// FindCurrencyByShortName retrieves a currency by its unique 3-letter code.
	FindCurrencyByShortName(ctx context.Context, shortName string) (*domain.Currency, error)

	// FindCurrencyByName retrieves a currency by its unique display name.
	FindCurrencyByName(ctx context.Context, name string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency reference data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

// CurrencyRepositoryWithTx extends CurrencyRepositoryFacade with transaction capabilities
type CurrencyRepositoryWithTx interface {
	CurrencyRepositoryFacade
	TransactionManager
}
