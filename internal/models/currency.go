package models

// Currency mirrors a row of the currencies table.
type Currency struct {
	CurrencyID int64  `db:"currency_id"`
	ShortName  string `db:"short_name"`
	Name       string `db:"name"`
	Symbol     string `db:"symbol"`
	AuditFields
}
