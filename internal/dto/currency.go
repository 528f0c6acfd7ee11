package dto

import (
	"time"

	"github.com/ratehub/fx_rates_service/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	ShortName string `json:"shortName" binding:"required,uppercase,len=3"`
	Name      string `json:"name" binding:"required"`
	Symbol    string `json:"symbol" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID    int64     `json:"id"`
	ShortName     string    `json:"shortName"`
	Name          string    `json:"name"`
	Symbol        string    `json:"symbol"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID:    curr.CurrencyID,
		ShortName:     curr.ShortName,
		Name:          curr.Name,
		Symbol:        curr.Symbol,
		CreatedAt:     curr.CreatedAt,
		LastUpdatedAt: curr.LastUpdatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain Currencies to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
