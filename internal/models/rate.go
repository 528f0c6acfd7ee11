package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate mirrors a row of the rates table. Base and target currencies are
// stored by id; queries join the currencies table to expand them.
type Rate struct {
	RateID     string          `db:"rate_id"`
	BaseID     int64           `db:"base_id"`
	CurrencyID int64           `db:"currency_id"`
	Date       time.Time       `db:"date"`
	Price      decimal.Decimal `db:"price"`
	AuditFields
}
