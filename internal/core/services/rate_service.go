package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ratehub/fx_rates_service/internal/apperrors"
	"github.com/ratehub/fx_rates_service/internal/core/domain"
	portsrepo "github.com/ratehub/fx_rates_service/internal/core/ports/repositories"
	portssvc "github.com/ratehub/fx_rates_service/internal/core/ports/services"
	"github.com/ratehub/fx_rates_service/internal/metrics"
	"github.com/ratehub/fx_rates_service/internal/utils/busdays"
)

// maxBusinessDays caps how many business days a single query may span.
const maxBusinessDays = 5

// RateService is the rate synchronization engine: it determines which
// business days of a query are missing locally, pulls only those from the
// provider, persists the snapshots and returns the stored rates for the
// window.
type RateService struct {
	rateRepo    portsrepo.RateRepositoryFacade
	currencySvc portssvc.CurrencyReaderSvc
	provider    portssvc.RateProvider
}

// NewRateService creates a new RateService.
func NewRateService(rateRepo portsrepo.RateRepositoryFacade, currencySvc portssvc.CurrencyReaderSvc, provider portssvc.RateProvider) *RateService {
	return &RateService{
		rateRepo:    rateRepo,
		currencySvc: currencySvc,
		provider:    provider,
	}
}

// GetRates resolves the base currency, syncs every missing business day of
// the requested window and returns the committed rates for it. The returned
// slice is always a fresh read of the store, so rows persisted by earlier
// calls are included. Failure aborts the whole call; rows already committed
// before the failing step stay persisted.
func (s *RateService) GetRates(ctx context.Context, baseShortName string, date, untilDate *time.Time) ([]domain.Rate, error) {
	metrics.RateRequestsTotal.Inc()

	base, err := s.currencySvc.GetCurrencyByShortName(ctx, baseShortName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base currency %q: %w", baseShortName, err)
	}

	// No filter: unbounded listing of everything stored for this base.
	if date == nil {
		return s.rateRepo.ListRates(ctx, base.CurrencyID, nil, nil)
	}

	days, err := s.resolveDays(*date, untilDate)
	if err != nil {
		return nil, err
	}
	if len(days) > maxBusinessDays {
		return nil, fmt.Errorf("%w: %d business days requested, limit is %d",
			apperrors.ErrRangeTooLarge, len(days), maxBusinessDays)
	}

	for _, day := range days {
		if err := s.syncDay(ctx, base, day); err != nil {
			return nil, err
		}
	}

	from := busdays.Normalize(*date)
	var until *time.Time
	if untilDate != nil {
		u := busdays.Normalize(*untilDate)
		until = &u
	}
	return s.rateRepo.ListRates(ctx, base.CurrencyID, &from, until)
}

// resolveDays builds the ordered day set of a query. A query without an
// until date is a single-day request and never trips the range cap, even on
// a weekend.
func (s *RateService) resolveDays(date time.Time, untilDate *time.Time) ([]time.Time, error) {
	if untilDate == nil {
		return []time.Time{busdays.Normalize(date)}, nil
	}
	return busdays.ExpandBusinessDays(date, *untilDate)
}

// syncDay persists the provider snapshot for one day unless the store
// already holds rates for it. The day-level existence check is the only
// engine dedup guard; the store's uniqueness constraint covers concurrent
// callers racing on the same day.
func (s *RateService) syncDay(ctx context.Context, base *domain.Currency, day time.Time) error {
	exists, err := s.rateRepo.HasRatesForDate(ctx, base.CurrencyID, day)
	if err != nil {
		return fmt.Errorf("failed to check synced state for %s: %w", day.Format("2006-01-02"), err)
	}
	if exists {
		return nil
	}

	metrics.ProviderFetchesTotal.WithLabelValues(base.ShortName).Inc()
	snapshot, err := s.provider.FetchRates(ctx, base.ShortName, day)
	if err != nil {
		metrics.ProviderFetchFailuresTotal.Inc()
		return fmt.Errorf("failed to fetch snapshot for %s on %s: %w", base.ShortName, day.Format("2006-01-02"), err)
	}

	now := time.Now()
	rates := make([]domain.Rate, 0, len(snapshot.Rates))
	for code, price := range snapshot.Rates {
		target, err := s.currencySvc.GetCurrencyByShortName(ctx, code)
		if err != nil {
			// Unknown codes returned by the provider are dropped, not an
			// engine-level failure.
			if errors.Is(err, apperrors.ErrCurrencyNotFound) {
				continue
			}
			return fmt.Errorf("failed to resolve snapshot currency %q: %w", code, err)
		}

		rates = append(rates, domain.Rate{
			RateID:   uuid.NewString(),
			Base:     *base,
			Currency: *target,
			Date:     day,
			Price:    price,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		})
	}
	if len(rates) == 0 {
		return nil
	}

	// The day's pairs commit as one transaction, so a partially stored day
	// can never satisfy a later HasRatesForDate check.
	if err := s.rateRepo.SaveRates(ctx, rates); err != nil {
		return fmt.Errorf("failed to save rates for %s on %s: %w",
			base.ShortName, day.Format("2006-01-02"), err)
	}
	metrics.RatesSyncedTotal.Add(float64(len(rates)))
	return nil
}
