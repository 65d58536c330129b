package taxerr

import (
	"errors"
	"fmt"
)

// ValidationError reports input or entity state that violates a business rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidation builds a ValidationError without a field reference.
func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NewFieldValidation builds a ValidationError tied to a named field.
func NewFieldValidation(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// RuleResolutionError reports that no tax rule could be resolved for a
// country pair. Computation must stop rather than assume a zero rate.
type RuleResolutionError struct {
	CompanyCountry    string
	FreelancerCountry string
	Detail            string
}

func (e *RuleResolutionError) Error() string {
	return fmt.Sprintf("no tax rule resolved for %s -> %s: %s", e.FreelancerCountry, e.CompanyCountry, e.Detail)
}

// RateUnavailableError reports that no usable exchange rate exists for a
// currency pair on the requested date.
type RateUnavailableError struct {
	FromCurrency string
	ToCurrency   string
	Date         string
}

func (e *RateUnavailableError) Error() string {
	return fmt.Sprintf("no exchange rate available for %s/%s on %s", e.FromCurrency, e.ToCurrency, e.Date)
}

// InvalidCurrencyError reports a currency code outside the supported set.
type InvalidCurrencyError struct {
	Currency string
}

func (e *InvalidCurrencyError) Error() string {
	return fmt.Sprintf("unsupported currency %q", e.Currency)
}

// ConcurrentModificationError reports a stale write detected through the
// entity version column.
type ConcurrentModificationError struct {
	Entity string
	ID     string
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s %s was modified concurrently", e.Entity, e.ID)
}

// ExternalServiceTimeoutError reports an outbound dependency that did not
// answer within its deadline.
type ExternalServiceTimeoutError struct {
	Service string
	Err     error
}

func (e *ExternalServiceTimeoutError) Error() string {
	return fmt.Sprintf("%s did not respond in time: %v", e.Service, e.Err)
}

func (e *ExternalServiceTimeoutError) Unwrap() error {
	return e.Err
}

// EmptyPaymentError reports a payment submitted for approval with no line
// items and a zero base amount.
type EmptyPaymentError struct {
	PaymentID string
}

func (e *EmptyPaymentError) Error() string {
	return fmt.Sprintf("payment %s has no items and no base amount", e.PaymentID)
}

// ErrNotFound is the lookup miss sentinel shared by services so handlers can
// map it to a 404 regardless of which entity was requested.
var ErrNotFound = errors.New("record not found")

// IsValidation reports whether err is any client-correctable input error.
func IsValidation(err error) bool {
	var ve *ValidationError
	var ce *InvalidCurrencyError
	var pe *EmptyPaymentError
	return errors.As(err, &ve) || errors.As(err, &ce) || errors.As(err, &pe)
}

// IsConflict reports whether err is an optimistic locking conflict.
func IsConflict(err error) bool {
	var cm *ConcurrentModificationError
	return errors.As(err, &cm)
}

// IsUnavailable reports whether err means a dependency cannot serve the
// request right now and a retry may succeed.
func IsUnavailable(err error) bool {
	var ru *RateUnavailableError
	var et *ExternalServiceTimeoutError
	return errors.As(err, &ru) || errors.As(err, &et)
}

// IsRuleResolution reports whether err is a missing tax rule.
func IsRuleResolution(err error) bool {
	var rr *RuleResolutionError
	return errors.As(err, &rr)
}
