package services

import (
	"context"

	"github.com/ratehub/fx_rates_service/internal/core/domain"
	"github.com/ratehub/fx_rates_service/internal/dto"
)

// CurrencyReaderSvc defines read operations of the currency directory
type CurrencyReaderSvc interface {
	// GetCurrencyByShortName retrieves a currency by its 3-letter code.
	GetCurrencyByShortName(ctx context.Context, shortName string) (*domain.Currency, error)

	// GetCurrencyByName retrieves a currency by its full display name.
	GetCurrencyByName(ctx context.Context, name string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations of the currency directory
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency (seed/reference data plane).
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
