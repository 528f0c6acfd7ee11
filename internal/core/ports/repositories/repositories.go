package repositories

// RepositoryProvider holds instances of all repository implementations.
// It is assembled once at startup and handed to the service container.
type RepositoryProvider struct {
	CurrencyRepo CurrencyRepositoryWithTx
	RateRepo     RateRepositoryWithTx
}
