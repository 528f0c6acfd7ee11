package dto

import (
	"time"

	"github.com/ratehub/fx_rates_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListRatesRequest carries the query parameters of the rates endpoint.
// Dates use the 2006-01-02 format and are parsed by the handler.
type ListRatesRequest struct {
	Date      string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	UntilDate string `form:"until_date" binding:"omitempty,datetime=2006-01-02"`
	RateBase  string `form:"rate_base" binding:"omitempty,alpha,len=3"`
}

// RateResponse defines the external representation of a stored rate, with
// both currencies expanded to their identity fields.
type RateResponse struct {
	RateID        string           `json:"id"`
	Base          CurrencyResponse `json:"base"`
	Currency      CurrencyResponse `json:"currency"`
	Date          string           `json:"date"`
	Price         decimal.Decimal  `json:"price"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ToRateResponse converts a domain.Rate to RateResponse DTO
func ToRateResponse(rate *domain.Rate) RateResponse {
	return RateResponse{
		RateID:        rate.RateID,
		Base:          ToCurrencyResponse(&rate.Base),
		Currency:      ToCurrencyResponse(&rate.Currency),
		Date:          rate.Date.Format("2006-01-02"),
		Price:         rate.Price,
		CreatedAt:     rate.CreatedAt,
		LastUpdatedAt: rate.LastUpdatedAt,
	}
}

// ToListRateResponse converts a slice of domain Rates to a slice of RateResponse DTOs.
func ToListRateResponse(rates []domain.Rate) []RateResponse {
	responses := make([]RateResponse, len(rates))
	for i, rate := range rates {
		responses[i] = ToRateResponse(&rate)
	}
	return responses
}
