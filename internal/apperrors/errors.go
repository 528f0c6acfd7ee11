package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
// Resource-specific not-found errors wrap it so handlers can map the whole
// family with a single errors.Is check.
var ErrNotFound = errors.New("not found")

// ErrCurrencyNotFound indicates that a currency code or name did not resolve
// to a known currency.
var ErrCurrencyNotFound = fmt.Errorf("currency %w", ErrNotFound)

// ErrValidation indicates that input data failed validation checks. Query
// shape errors wrap it.
var ErrValidation = errors.New("validation error")

// ErrInvalidRange indicates that a date range's end precedes its start.
var ErrInvalidRange = fmt.Errorf("%w: until date must not be before date", ErrValidation)

// ErrRangeTooLarge indicates that a query spans more business days than the
// service allows in a single call.
var ErrRangeTooLarge = fmt.Errorf("%w: date range exceeds the allowed number of business days", ErrValidation)

// ErrProviderUnavailable indicates a transport failure or non-success
// response from the external rate provider.
var ErrProviderUnavailable = errors.New("rate provider unavailable")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")
