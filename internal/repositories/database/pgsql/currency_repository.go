package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ratehub/fx_rates_service/internal/apperrors"
	"github.com/ratehub/fx_rates_service/internal/core/domain"
	portsrepo "github.com/ratehub/fx_rates_service/internal/core/ports/repositories"
	"github.com/ratehub/fx_rates_service/internal/models"
	"github.com/ratehub/fx_rates_service/internal/utils/mapping"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryWithTx {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryWithTx = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts a currency (seed/reference data plane).
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (short_name, name, symbol, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING currency_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		strings.ToUpper(modelCurr.ShortName),
		modelCurr.Name,
		modelCurr.Symbol,
		modelCurr.CreatedAt,
		modelCurr.LastUpdatedAt,
	).Scan(&modelCurr.CurrencyID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: currency %s", apperrors.ErrDuplicate, modelCurr.ShortName)
		}
		return nil, fmt.Errorf("failed to save currency %s: %w", modelCurr.ShortName, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// FindCurrencyByShortName retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByShortName(ctx context.Context, shortName string) (*domain.Currency, error) {
	query := `
		SELECT currency_id, short_name, name, symbol, created_at, last_updated_at
		FROM currencies
		WHERE short_name = $1;
	`
	return r.findOne(ctx, query, shortName)
}

// FindCurrencyByName retrieves a currency by its unique display name.
func (r *PgxCurrencyRepository) FindCurrencyByName(ctx context.Context, name string) (*domain.Currency, error) {
	query := `
		SELECT currency_id, short_name, name, symbol, created_at, last_updated_at
		FROM currencies
		WHERE name = $1;
	`
	return r.findOne(ctx, query, name)
}

func (r *PgxCurrencyRepository) findOne(ctx context.Context, query string, arg any) (*domain.Currency, error) {
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelCurr.CurrencyID,
		&modelCurr.ShortName,
		&modelCurr.Name,
		&modelCurr.Symbol,
		&modelCurr.CreatedAt,
		&modelCurr.LastUpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrCurrencyNotFound, arg)
		}
		return nil, fmt.Errorf("failed to find currency %v: %w", arg, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT currency_id, short_name, name, symbol, created_at, last_updated_at
		FROM currencies
		ORDER BY short_name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.CurrencyID,
			&currency.ShortName,
			&currency.Name,
			&currency.Symbol,
			&currency.CreatedAt,
			&currency.LastUpdatedAt,
		)
		return currency, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Currency{}, nil
		}
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
