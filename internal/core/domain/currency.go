package domain

// Currency represents a supported currency in the domain.
// Rows are seed/reference data; the sync engine only reads them.
type Currency struct {
	CurrencyID int64  `json:"currencyID"`
	ShortName  string `json:"shortName"` // Unique 3-letter code (e.g., "USD")
	Name       string `json:"name"`      // Unique display name (e.g., "US Dollar")
	Symbol     string `json:"symbol"`    // e.g., "$"
	AuditFields
}
