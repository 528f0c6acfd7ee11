package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is the price of one unit of Currency expressed in Base currency on
// Date. At most one Rate exists per (base, currency, date); the store
// enforces this as a hard constraint.
type Rate struct {
	RateID   string          `json:"rateID"` // Primary Key (UUID)
	Base     Currency        `json:"base"`
	Currency Currency        `json:"currency"`
	Date     time.Time       `json:"date"` // Calendar date, midnight UTC
	Price    decimal.Decimal `json:"price"`
	AuditFields
}
