package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ratehub/fx_rates_service/internal/core/domain"
	portsrepo "github.com/ratehub/fx_rates_service/internal/core/ports/repositories"
	"github.com/ratehub/fx_rates_service/internal/models"
	"github.com/ratehub/fx_rates_service/internal/utils/mapping"
)

// PgxRateRepository implements the rate store over pgxpool. The rates table
// carries a unique index on (base_id, currency_id, date); inserts ride on it
// so concurrent callers syncing the same day cannot produce duplicates.
type PgxRateRepository struct {
	BaseRepository
}

// newPgxRateRepository creates a new repository for rate data.
func newPgxRateRepository(pool *pgxpool.Pool) portsrepo.RateRepositoryWithTx {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RateRepositoryWithTx = (*PgxRateRepository)(nil)

// HasRatesForDate reports whether any rate row exists for the base on the date.
func (r *PgxRateRepository) HasRatesForDate(ctx context.Context, baseID int64, date time.Time) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM rates WHERE base_id = $1 AND date = $2);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, baseID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check rates for %s: %w", date.Format("2006-01-02"), err)
	}
	return exists, nil
}

// SaveRates inserts a day's snapshot rows inside one transaction: the whole
// batch commits or none of it does. A conflicting (base, currency, date)
// triple means the row was already synced; that insert becomes a no-op.
func (r *PgxRateRepository) SaveRates(ctx context.Context, rates []domain.Rate) error {
	if len(rates) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }() // No-op once committed

	query := `
		INSERT INTO rates (rate_id, base_id, currency_id, date, price, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (base_id, currency_id, date) DO NOTHING;
	`

	for _, rate := range rates {
		modelRate := mapping.ToModelRate(rate)
		_, err := tx.Exec(ctx, query,
			modelRate.RateID,
			modelRate.BaseID,
			modelRate.CurrencyID,
			modelRate.Date,
			modelRate.Price,
			modelRate.CreatedAt,
			modelRate.LastUpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save rate %s on %s: %w",
				modelRate.RateID, modelRate.Date.Format("2006-01-02"), err)
		}
	}

	return r.Commit(ctx, tx)
}

// ListRates retrieves rates for a base currency with both currencies
// expanded. Nil bounds list everything for the base; a single date bound
// lists that day; both bounds list the inclusive range.
func (r *PgxRateRepository) ListRates(ctx context.Context, baseID int64, date, untilDate *time.Time) ([]domain.Rate, error) {
	query := `
		SELECT
			r.rate_id, r.date, r.price, r.created_at, r.last_updated_at,
			b.currency_id, b.short_name, b.name, b.symbol, b.created_at, b.last_updated_at,
			c.currency_id, c.short_name, c.name, c.symbol, c.created_at, c.last_updated_at
		FROM rates r
		JOIN currencies b ON b.currency_id = r.base_id
		JOIN currencies c ON c.currency_id = r.currency_id
		WHERE r.base_id = $1
	`
	args := []interface{}{baseID}

	switch {
	case date != nil && untilDate != nil:
		query += " AND r.date BETWEEN $2 AND $3"
		args = append(args, *date, *untilDate)
	case date != nil:
		query += " AND r.date = $2"
		args = append(args, *date)
	}

	query += " ORDER BY r.date, c.short_name;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}
	defer rows.Close()

	var rates []domain.Rate
	for rows.Next() {
		var (
			modelRate models.Rate
			base      models.Currency
			currency  models.Currency
		)
		err := rows.Scan(
			&modelRate.RateID, &modelRate.Date, &modelRate.Price,
			&modelRate.CreatedAt, &modelRate.LastUpdatedAt,
			&base.CurrencyID, &base.ShortName, &base.Name, &base.Symbol,
			&base.CreatedAt, &base.LastUpdatedAt,
			&currency.CurrencyID, &currency.ShortName, &currency.Name, &currency.Symbol,
			&currency.CreatedAt, &currency.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rate: %w", err)
		}
		modelRate.BaseID = base.CurrencyID
		modelRate.CurrencyID = currency.CurrencyID
		rates = append(rates, mapping.ToDomainRate(modelRate, base, currency))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rates: %w", err)
	}

	if rates == nil {
		rates = []domain.Rate{}
	}
	return rates, nil
}
