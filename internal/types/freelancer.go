package types

import "github.com/shopspring/decimal"

// CreateFreelancerRequest registers a new freelancer profile. Dates use
// the 2006-01-02 form.
type CreateFreelancerRequest struct {
	FullName                string `json:"full_name" binding:"required"`
	Email                   string `json:"email" binding:"required,email"`
	Country                 string `json:"country" binding:"required,len=2"`
	DefaultCurrency         string `json:"default_currency" binding:"required,len=3"`
	VATNumber               string `json:"vat_number,omitempty"`
	VATRegistered           bool   `json:"vat_registered"`
	TaxID                   string `json:"tax_id,omitempty"`
	TaxResidencyCountry     string `json:"tax_residency_country,omitempty"`
	ResidencyCertificateRef string `json:"residency_certificate_ref,omitempty"`
	CertificateValidUntil   string `json:"certificate_valid_until,omitempty"`
	IBAN                    string `json:"iban,omitempty"`
	DefaultRate             string `json:"default_rate,omitempty"`
	RateUnit                string `json:"rate_unit,omitempty" binding:"omitempty,oneof=hourly daily"`
}

// UpdateFreelancerRequest replaces the mutable fields of a profile.
type UpdateFreelancerRequest struct {
	FullName                string `json:"full_name" binding:"required"`
	Email                   string `json:"email" binding:"required,email"`
	Country                 string `json:"country" binding:"required,len=2"`
	DefaultCurrency         string `json:"default_currency" binding:"required,len=3"`
	Status                  string `json:"status,omitempty" binding:"omitempty,oneof=active inactive exited"`
	VATNumber               string `json:"vat_number,omitempty"`
	VATRegistered           bool   `json:"vat_registered"`
	TaxID                   string `json:"tax_id,omitempty"`
	TaxResidencyCountry     string `json:"tax_residency_country,omitempty"`
	ResidencyCertificateRef string `json:"residency_certificate_ref,omitempty"`
	CertificateValidUntil   string `json:"certificate_valid_until,omitempty"`
	IBAN                    string `json:"iban,omitempty"`
	DefaultRate             string `json:"default_rate,omitempty"`
	RateUnit                string `json:"rate_unit,omitempty" binding:"omitempty,oneof=hourly daily"`
}

// ConsentRequest records or revokes one GDPR consent category.
type ConsentRequest struct {
	ConsentType string `json:"consent_type" binding:"required,oneof=data_processing marketing profiling data_transfer third_party_sharing"`
	Granted     bool   `json:"granted"`
}

// FreelancerSummary aggregates a freelancer's contract and payment position.
type FreelancerSummary struct {
	FreelancerID      string          `json:"freelancer_id"`
	FullName          string          `json:"full_name"`
	Country           string          `json:"country"`
	Status            string          `json:"status"`
	ActiveContracts   int             `json:"active_contracts"`
	TotalContracts    int             `json:"total_contracts"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	TotalPending      decimal.Decimal `json:"total_pending"`
	TotalWithheld     decimal.Decimal `json:"total_withheld"`
	PaymentCount      int64           `json:"payment_count"`
	VATRegistered     bool            `json:"vat_registered"`
	VATValidated      bool            `json:"vat_validated"`
	CertificateOnFile bool            `json:"certificate_on_file"`
}
