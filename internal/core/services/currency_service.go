package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ratehub/fx_rates_service/internal/core/domain"
	portsrepo "github.com/ratehub/fx_rates_service/internal/core/ports/repositories"
	"github.com/ratehub/fx_rates_service/internal/dto"
)

// CurrencyService is the currency directory: it resolves currency codes and
// names against the seeded reference data.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

// CreateCurrency persists a new currency. This is the seed/reference data
// plane; the sync engine never creates currencies.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	// Basic validation already handled by DTO binding (required, len=3, uppercase)
	now := time.Now()

	currency := domain.Currency{
		ShortName: req.ShortName,
		Name:      req.Name,
		Symbol:    req.Symbol,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	created, err := s.currencyRepo.SaveCurrency(ctx, currency)
	if err != nil {
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	return created, nil
}

// GetCurrencyByShortName resolves a 3-letter code to a currency. Returns
// apperrors.ErrCurrencyNotFound when no currency carries the code.
func (s *CurrencyService) GetCurrencyByShortName(ctx context.Context, shortName string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByShortName(ctx, strings.ToUpper(shortName))
	if err != nil {
		return nil, err
	}
	return currency, nil
}

// GetCurrencyByName resolves a full display name to a currency.
func (s *CurrencyService) GetCurrencyByName(ctx context.Context, name string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return currency, nil
}

// ListCurrencies returns every seeded currency.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
