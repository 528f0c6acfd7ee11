package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/ratehub/fx_rates_service/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	currencyRepo := newPgxCurrencyRepository(dbPool)
	rateRepo := newPgxRateRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CurrencyRepo: currencyRepo,
		RateRepo:     rateRepo,
	}
}
