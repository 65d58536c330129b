package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClassificationInput describes a freelancer/company pairing to classify
// for VAT and withholding purposes.
type ClassificationInput struct {
	FreelancerCountry string
	CompanyCountry    string
	VATRegistered     bool
	VATValidated      bool
	CertificateOnFile bool
	IncomeCategory    string
	AsOf              time.Time
}

// TaxClassification is the resolved tax treatment for a country pairing.
// Rates are percentages; amounts are computed separately against the
// payment's gross.
type TaxClassification struct {
	FreelancerCountry string          `json:"freelancer_country"`
	CompanyCountry    string          `json:"company_country"`
	IsCrossBorder     bool            `json:"is_cross_border"`
	VATRate           decimal.Decimal `json:"vat_rate"`
	ReverseCharge     bool            `json:"reverse_charge"`
	VATTreatment      string          `json:"vat_treatment"`
	WithholdingRate   decimal.Decimal `json:"withholding_rate"`
	TreatyApplied     bool            `json:"treaty_applied"`
	ComplianceNotes   []string        `json:"compliance_notes"`
}

// TaxBreakdown is the full amount set computed for one payment. All amounts
// are rounded to two decimals; the classification fields mirror the
// TaxClassification that produced them.
type TaxBreakdown struct {
	BaseAmount        decimal.Decimal `json:"base_amount"`
	ExpenseTotal      decimal.Decimal `json:"expense_total"`
	GrossAmount       decimal.Decimal `json:"gross_amount"`
	VATRate           decimal.Decimal `json:"vat_rate"`
	VATAmount         decimal.Decimal `json:"vat_amount"`
	ReverseCharge     bool            `json:"reverse_charge"`
	VATTreatment      string          `json:"vat_treatment"`
	WithholdingRate   decimal.Decimal `json:"withholding_rate"`
	WithholdingAmount decimal.Decimal `json:"withholding_amount"`
	TreatyApplied     bool            `json:"treaty_applied"`
	NetAmount         decimal.Decimal `json:"net_amount"`
	ComplianceNotes   []string        `json:"compliance_notes"`
}

// TreatyRequest is the admin payload for registering a tax treaty record.
type TreatyRequest struct {
	CountryA            string `json:"country_a" binding:"required,len=2"`
	CountryB            string `json:"country_b" binding:"required,len=2"`
	IncomeCategory      string `json:"income_category" binding:"required,oneof=services royalties interest dividends rental"`
	TreatyRate          string `json:"treaty_rate" binding:"required"`
	ReducedRate         string `json:"reduced_rate,omitempty"`
	CertificateRequired bool   `json:"certificate_required"`
	EffectiveFrom       string `json:"effective_from" binding:"required"`
	EffectiveTo         string `json:"effective_to,omitempty"`
	Notes               string `json:"notes,omitempty"`
}

// TaxConfigRequest upserts the VAT configuration of one country.
type TaxConfigRequest struct {
	Country      string `json:"country" binding:"required,len=2"`
	CountryName  string `json:"country_name" binding:"required"`
	StandardRate string `json:"standard_rate" binding:"required"`
	ReducedRate  string `json:"reduced_rate,omitempty"`
	IsEU         bool   `json:"is_eu"`
	Currency     string `json:"currency" binding:"required,len=3"`
}

// VATValidationResult is the outcome of a VAT registry lookup. Advisory
// means the registry could not be reached in time and the format check
// alone was applied.
type VATValidationResult struct {
	CountryCode string    `json:"country_code"`
	VATNumber   string    `json:"vat_number"`
	Valid       bool      `json:"valid"`
	Name        string    `json:"name,omitempty"`
	Address     string    `json:"address,omitempty"`
	Advisory    bool      `json:"advisory"`
	Message     string    `json:"message,omitempty"`
	CheckedAt   time.Time `json:"checked_at"`
}
