package mapping

import (
	"github.com/ratehub/fx_rates_service/internal/core/domain"
	"github.com/ratehub/fx_rates_service/internal/models"
)

// ToModelRate converts a domain Rate to a model Rate row.
func ToModelRate(d domain.Rate) models.Rate {
	return models.Rate{
		RateID:     d.RateID,
		BaseID:     d.Base.CurrencyID,
		CurrencyID: d.Currency.CurrencyID,
		Date:       d.Date,
		Price:      d.Price,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainRate converts a model Rate row plus its expanded currencies to a
// domain Rate.
func ToDomainRate(m models.Rate, base, currency models.Currency) domain.Rate {
	return domain.Rate{
		RateID:   m.RateID,
		Base:     ToDomainCurrency(base),
		Currency: ToDomainCurrency(currency),
		Date:     m.Date,
		Price:    m.Price,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
