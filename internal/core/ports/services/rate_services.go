package services

import (
	"context"
	"time"

	"github.com/ratehub/fx_rates_service/internal/core/domain"
)

// RateSvcFacade is the rate synchronization engine surface.
type RateSvcFacade interface {
	// GetRates ensures the requested window is synced and returns the stored
	// rates for it. A nil date means "all stored rates for the base"; a date
	// without untilDate is a single-day query; both bounds expand to the
	// business days between them, capped at 5 per call.
	GetRates(ctx context.Context, baseShortName string, date, untilDate *time.Time) ([]domain.Rate, error)
}
