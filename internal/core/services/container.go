package services

import (
	portsrepo "github.com/ratehub/fx_rates_service/internal/core/ports/repositories"
	portssvc "github.com/ratehub/fx_rates_service/internal/core/ports/services"
)

// NewServiceContainer wires concrete services over the repository provider
// and the rate provider client.
func NewServiceContainer(repos portsrepo.RepositoryProvider, provider portssvc.RateProvider) *portssvc.ServiceContainer {
	currencySvc := NewCurrencyService(repos.CurrencyRepo)
	rateSvc := NewRateService(repos.RateRepo, currencySvc, provider)

	return &portssvc.ServiceContainer{
		Currency: currencySvc,
		Rate:     rateSvc,
	}
}
