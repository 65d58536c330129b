package handlers

import (
	"time"

	"github.com/hrplatform/freelancer-api/internal/db"
	"github.com/hrplatform/freelancer-api/internal/helpers"
)

// FreelancerResponse represents the standardized API response for
// freelancer operations.
type FreelancerResponse struct {
	ID                      string `json:"id"`
	Object                  string `json:"object"`
	FullName                string `json:"full_name"`
	Email                   string `json:"email"`
	Country                 string `json:"country"`
	DefaultCurrency         string `json:"default_currency"`
	Status                  string `json:"status"`
	VATNumber               string `json:"vat_number,omitempty"`
	VATRegistered           bool   `json:"vat_registered"`
	VATValidated            bool   `json:"vat_validated"`
	TaxID                   string `json:"tax_id,omitempty"`
	ResidencyCertificateRef string `json:"residency_certificate_ref,omitempty"`
	CertificateValidUntil   string `json:"certificate_valid_until,omitempty"`
	IBAN                    string `json:"iban,omitempty"`
	TaxResidencyCountry     string `json:"tax_residency_country,omitempty"`
	DefaultRate             string `json:"default_rate,omitempty"`
	RateUnit                string `json:"rate_unit,omitempty"`
	CreatedAt               int64  `json:"created_at"`
	UpdatedAt               int64  `json:"updated_at"`
}

func toFreelancerResponse(f db.Freelancer) FreelancerResponse {
	resp := FreelancerResponse{
		ID:                      f.ID.String(),
		Object:                  "freelancer",
		FullName:                f.FullName,
		Email:                   f.Email,
		Country:                 f.Country,
		DefaultCurrency:         f.DefaultCurrency,
		Status:                  f.Status,
		VATNumber:               helpers.TextToString(f.VatNumber),
		VATRegistered:           f.VatRegistered.Bool,
		VATValidated:            f.VatValidated.Bool,
		TaxID:                   helpers.TextToString(f.TaxID),
		ResidencyCertificateRef: helpers.TextToString(f.ResidencyCertificateRef),
		CertificateValidUntil:   formatDate(f.CertificateValidUntil.Time, f.CertificateValidUntil.Valid),
		IBAN:                    helpers.TextToString(f.Iban),
		TaxResidencyCountry:     helpers.TextToString(f.TaxResidencyCountry),
		RateUnit:                helpers.TextToString(f.RateUnit),
		CreatedAt:               f.CreatedAt.Time.Unix(),
		UpdatedAt:               f.UpdatedAt.Time.Unix(),
	}
	if f.DefaultRate.Valid {
		resp.DefaultRate = helpers.NumericToDecimal(f.DefaultRate).String()
	}
	return resp
}

// MilestoneResponse represents one contract milestone.
type MilestoneResponse struct {
	ID                string `json:"id"`
	ContractID        string `json:"contract_id"`
	Title             string `json:"title"`
	Description       string `json:"description,omitempty"`
	Amount            string `json:"amount"`
	PercentOfContract string `json:"percent_of_contract,omitempty"`
	DueDate           string `json:"due_date,omitempty"`
	Status            string `json:"status"`
	SortOrder         int32  `json:"sort_order"`
	CompletedAt       int64  `json:"completed_at,omitempty"`
	ApprovedAt        int64  `json:"approved_at,omitempty"`
	PaidAt            int64  `json:"paid_at,omitempty"`
}

func toMilestoneResponse(m db.Milestone) MilestoneResponse {
	resp := MilestoneResponse{
		ID:          m.ID.String(),
		ContractID:  m.ContractID.String(),
		Title:       m.Title,
		Description: helpers.TextToString(m.Description),
		Amount:      helpers.NumericToDecimal(m.Amount).StringFixed(2),
		DueDate:     formatDate(m.DueDate.Time, m.DueDate.Valid),
		Status:      m.Status,
		SortOrder:   m.SortOrder.Int32,
	}
	if m.PercentOfContract.Valid {
		resp.PercentOfContract = helpers.NumericToDecimal(m.PercentOfContract).String()
	}
	if m.CompletedAt.Valid {
		resp.CompletedAt = m.CompletedAt.Time.Unix()
	}
	if m.ApprovedAt.Valid {
		resp.ApprovedAt = m.ApprovedAt.Time.Unix()
	}
	if m.PaidAt.Valid {
		resp.PaidAt = m.PaidAt.Time.Unix()
	}
	return resp
}

// ContractResponse represents the standardized API response for contract
// operations.
type ContractResponse struct {
	ID                string              `json:"id"`
	Object            string              `json:"object"`
	ContractNumber    string              `json:"contract_number"`
	FreelancerID      string              `json:"freelancer_id"`
	Title             string              `json:"title,omitempty"`
	CompanyCountry    string              `json:"company_country"`
	CompanyCurrency   string              `json:"company_currency"`
	ContractType      string              `json:"contract_type"`
	PaymentFrequency  string              `json:"payment_frequency"`
	Status            string              `json:"status"`
	StartDate         string              `json:"start_date"`
	EndDate           string              `json:"end_date,omitempty"`
	ContractValue     string              `json:"contract_value"`
	Currency          string              `json:"currency"`
	PaymentTermsDays  int32               `json:"payment_terms_days,omitempty"`
	NoticePeriodDays  int32               `json:"notice_period_days,omitempty"`
	AutoRenew         bool                `json:"auto_renew"`
	RenewedFromID     string              `json:"renewed_from_id,omitempty"`
	RenewedToID       string              `json:"renewed_to_id,omitempty"`
	TerminationDate   string              `json:"termination_date,omitempty"`
	TerminationReason string              `json:"termination_reason,omitempty"`
	Version           int32               `json:"version"`
	Milestones        []MilestoneResponse `json:"milestones,omitempty"`
	CreatedAt         int64               `json:"created_at"`
	UpdatedAt         int64               `json:"updated_at"`
}

func toContractResponse(contract db.Contract, milestones []db.Milestone) ContractResponse {
	resp := ContractResponse{
		ID:                contract.ID.String(),
		Object:            "contract",
		ContractNumber:    contract.ContractNumber,
		FreelancerID:      contract.FreelancerID.String(),
		Title:             helpers.TextToString(contract.Title),
		CompanyCountry:    contract.CompanyCountry,
		CompanyCurrency:   contract.CompanyCurrency,
		ContractType:      contract.ContractType,
		PaymentFrequency:  contract.PaymentFrequency,
		Status:            contract.Status,
		StartDate:         formatDate(contract.StartDate.Time, contract.StartDate.Valid),
		EndDate:           formatDate(contract.EndDate.Time, contract.EndDate.Valid),
		ContractValue:     helpers.NumericToDecimal(contract.ContractValue).StringFixed(2),
		Currency:          contract.Currency,
		PaymentTermsDays:  contract.PaymentTermsDays.Int32,
		NoticePeriodDays:  contract.NoticePeriodDays.Int32,
		AutoRenew:         contract.AutoRenew.Bool,
		TerminationDate:   formatDate(contract.TerminationDate.Time, contract.TerminationDate.Valid),
		TerminationReason: helpers.TextToString(contract.TerminationReason),
		Version:           contract.Version,
		CreatedAt:         contract.CreatedAt.Time.Unix(),
		UpdatedAt:         contract.UpdatedAt.Time.Unix(),
	}
	if contract.RenewedFromID.Valid {
		resp.RenewedFromID = helpers.PgUUIDToUUID(contract.RenewedFromID).String()
	}
	if contract.RenewedToID.Valid {
		resp.RenewedToID = helpers.PgUUIDToUUID(contract.RenewedToID).String()
	}
	for _, m := range milestones {
		resp.Milestones = append(resp.Milestones, toMilestoneResponse(m))
	}
	return resp
}

// PaymentItemResponse represents one payment line item.
type PaymentItemResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	Amount      string `json:"amount"`
	MilestoneID string `json:"milestone_id,omitempty"`
}

func toPaymentItemResponse(item db.PaymentItem) PaymentItemResponse {
	resp := PaymentItemResponse{
		ID:          item.ID.String(),
		Description: item.Description,
		Quantity:    helpers.NumericToDecimal(item.Quantity).String(),
		Rate:        helpers.NumericToDecimal(item.Rate).String(),
		Amount:      helpers.NumericToDecimal(item.Amount).StringFixed(2),
	}
	if item.MilestoneID.Valid {
		resp.MilestoneID = helpers.PgUUIDToUUID(item.MilestoneID).String()
	}
	return resp
}

// PaymentExpenseResponse represents one reimbursable expense.
type PaymentExpenseResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	ReceiptRef  string `json:"receipt_ref,omitempty"`
	Approved    bool   `json:"approved"`
}

func toPaymentExpenseResponse(expense db.PaymentExpense) PaymentExpenseResponse {
	return PaymentExpenseResponse{
		ID:          expense.ID.String(),
		Description: expense.Description,
		Amount:      helpers.NumericToDecimal(expense.Amount).StringFixed(2),
		ReceiptRef:  helpers.TextToString(expense.ReceiptRef),
		Approved:    expense.Approved.Bool,
	}
}

// PaymentResponse represents the standardized API response for payment
// operations, including the computed tax breakdown.
type PaymentResponse struct {
	ID                   string                   `json:"id"`
	Object               string                   `json:"object"`
	PaymentNumber        string                   `json:"payment_number"`
	ContractID           string                   `json:"contract_id"`
	FreelancerID         string                   `json:"freelancer_id"`
	Status               string                   `json:"status"`
	PaymentDate          string                   `json:"payment_date,omitempty"`
	PeriodStart          string                   `json:"period_start,omitempty"`
	PeriodEnd            string                   `json:"period_end,omitempty"`
	BaseAmount           string                   `json:"base_amount"`
	ExpenseTotal         string                   `json:"expense_total"`
	GrossAmount          string                   `json:"gross_amount"`
	Currency             string                   `json:"currency"`
	VATRate              string                   `json:"vat_rate"`
	VATAmount            string                   `json:"vat_amount"`
	ReverseCharge        bool                     `json:"reverse_charge"`
	VATTreatment         string                   `json:"vat_treatment,omitempty"`
	WithholdingRate      string                   `json:"withholding_rate"`
	WithholdingAmount    string                   `json:"withholding_amount"`
	TreatyApplied        bool                     `json:"treaty_applied"`
	NetAmount            string                   `json:"net_amount"`
	CompanyCurrency      string                   `json:"company_currency,omitempty"`
	ExchangeRate         string                   `json:"exchange_rate,omitempty"`
	CompanyCurrencyGross string                   `json:"company_currency_gross,omitempty"`
	CompanyCurrencyNet   string                   `json:"company_currency_net,omitempty"`
	ComplianceNotes      string                   `json:"compliance_notes,omitempty"`
	Notes                string                   `json:"notes,omitempty"`
	RejectionReason      string                   `json:"rejection_reason,omitempty"`
	ApprovedBy           string                   `json:"approved_by,omitempty"`
	ApprovedAt           int64                    `json:"approved_at,omitempty"`
	PaidAt               int64                    `json:"paid_at,omitempty"`
	PaymentReference     string                   `json:"payment_reference,omitempty"`
	Version              int32                    `json:"version"`
	Items                []PaymentItemResponse    `json:"items,omitempty"`
	Expenses             []PaymentExpenseResponse `json:"expenses,omitempty"`
	CreatedAt            int64                    `json:"created_at"`
	UpdatedAt            int64                    `json:"updated_at"`
}

func toPaymentResponse(p db.Payment, items []db.PaymentItem, expenses []db.PaymentExpense) PaymentResponse {
	resp := PaymentResponse{
		ID:                p.ID.String(),
		Object:            "payment",
		PaymentNumber:     p.PaymentNumber,
		ContractID:        p.ContractID.String(),
		FreelancerID:      p.FreelancerID.String(),
		Status:            p.Status,
		PaymentDate:       formatDate(p.PaymentDate.Time, p.PaymentDate.Valid),
		PeriodStart:       formatDate(p.PeriodStart.Time, p.PeriodStart.Valid),
		PeriodEnd:         formatDate(p.PeriodEnd.Time, p.PeriodEnd.Valid),
		BaseAmount:        helpers.NumericToDecimal(p.BaseAmount).StringFixed(2),
		ExpenseTotal:      helpers.NumericToDecimal(p.ExpenseTotal).StringFixed(2),
		GrossAmount:       helpers.NumericToDecimal(p.GrossAmount).StringFixed(2),
		Currency:          p.Currency,
		VATRate:           helpers.NumericToDecimal(p.VatRate).String(),
		VATAmount:         helpers.NumericToDecimal(p.VatAmount).StringFixed(2),
		ReverseCharge:     p.ReverseCharge.Bool,
		VATTreatment:      helpers.TextToString(p.VatTreatment),
		WithholdingRate:   helpers.NumericToDecimal(p.WithholdingRate).String(),
		WithholdingAmount: helpers.NumericToDecimal(p.WithholdingAmount).StringFixed(2),
		TreatyApplied:     p.TreatyApplied.Bool,
		NetAmount:         helpers.NumericToDecimal(p.NetAmount).StringFixed(2),
		CompanyCurrency:   helpers.TextToString(p.CompanyCurrency),
		ComplianceNotes:   helpers.TextToString(p.ComplianceNotes),
		Notes:             helpers.TextToString(p.Notes),
		RejectionReason:   helpers.TextToString(p.RejectionReason),
		ApprovedBy:        helpers.TextToString(p.ApprovedBy),
		PaymentReference:  helpers.TextToString(p.PaymentReference),
		Version:           p.Version,
		CreatedAt:         p.CreatedAt.Time.Unix(),
		UpdatedAt:         p.UpdatedAt.Time.Unix(),
	}
	if p.ExchangeRate.Valid {
		resp.ExchangeRate = helpers.NumericToDecimal(p.ExchangeRate).String()
		resp.CompanyCurrencyGross = helpers.NumericToDecimal(p.CompanyCurrencyGross).StringFixed(2)
		resp.CompanyCurrencyNet = helpers.NumericToDecimal(p.CompanyCurrencyNet).StringFixed(2)
	}
	if p.ApprovedAt.Valid {
		resp.ApprovedAt = p.ApprovedAt.Time.Unix()
	}
	if p.PaidAt.Valid {
		resp.PaidAt = p.PaidAt.Time.Unix()
	}
	for _, item := range items {
		resp.Items = append(resp.Items, toPaymentItemResponse(item))
	}
	for _, expense := range expenses {
		resp.Expenses = append(resp.Expenses, toPaymentExpenseResponse(expense))
	}
	return resp
}

// ExchangeRateResponse represents one stored exchange rate.
type ExchangeRateResponse struct {
	FromCurrency string `json:"from_currency"`
	ToCurrency   string `json:"to_currency"`
	Rate         string `json:"rate"`
	RateDate     string `json:"rate_date"`
	Source       string `json:"source"`
}

func toExchangeRateResponse(r db.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		FromCurrency: r.FromCurrency,
		ToCurrency:   r.ToCurrency,
		Rate:         helpers.NumericToDecimal(r.Rate).String(),
		RateDate:     formatDate(r.RateDate.Time, r.RateDate.Valid),
		Source:       r.Source,
	}
}

// TaxConfigResponse represents a per-country VAT configuration.
type TaxConfigResponse struct {
	Country      string `json:"country"`
	CountryName  string `json:"country_name"`
	StandardRate string `json:"standard_rate"`
	ReducedRate  string `json:"reduced_rate,omitempty"`
	IsEU         bool   `json:"is_eu"`
	Currency     string `json:"currency"`
}

func toTaxConfigResponse(config db.TaxConfig) TaxConfigResponse {
	resp := TaxConfigResponse{
		Country:      config.Country,
		CountryName:  config.CountryName,
		StandardRate: helpers.NumericToDecimal(config.StandardRate).String(),
		IsEU:         config.IsEu,
		Currency:     config.Currency,
	}
	if config.ReducedRate.Valid {
		resp.ReducedRate = helpers.NumericToDecimal(config.ReducedRate).String()
	}
	return resp
}

// TreatyResponse represents one tax treaty record.
type TreatyResponse struct {
	ID                  string `json:"id"`
	CountryA            string `json:"country_a"`
	CountryB            string `json:"country_b"`
	IncomeCategory      string `json:"income_category"`
	TreatyRate          string `json:"treaty_rate"`
	CertificateRequired bool   `json:"certificate_required"`
	EffectiveFrom       string `json:"effective_from"`
	EffectiveTo         string `json:"effective_to,omitempty"`
	Active              bool   `json:"active"`
}

func toTreatyResponse(treaty db.TaxTreaty) TreatyResponse {
	return TreatyResponse{
		ID:                  treaty.ID.String(),
		CountryA:            treaty.CountryA,
		CountryB:            treaty.CountryB,
		IncomeCategory:      treaty.IncomeCategory,
		TreatyRate:          helpers.NumericToDecimal(treaty.TreatyRate).String(),
		CertificateRequired: treaty.CertificateRequired.Bool,
		EffectiveFrom:       formatDate(treaty.EffectiveFrom.Time, treaty.EffectiveFrom.Valid),
		EffectiveTo:         formatDate(treaty.EffectiveTo.Time, treaty.EffectiveTo.Valid),
		Active:              treaty.Active.Bool,
	}
}

// ConsentResponse represents one data processing consent record.
type ConsentResponse struct {
	ID          string `json:"id"`
	ConsentType string `json:"consent_type"`
	Granted     bool   `json:"granted"`
	GrantedAt   int64  `json:"granted_at,omitempty"`
	RevokedAt   int64  `json:"revoked_at,omitempty"`
}

func toConsentResponse(consent db.FreelancerConsent) ConsentResponse {
	resp := ConsentResponse{
		ID:          consent.ID.String(),
		ConsentType: consent.ConsentType,
		Granted:     consent.Granted,
	}
	if consent.GrantedAt.Valid {
		resp.GrantedAt = consent.GrantedAt.Time.Unix()
	}
	if consent.RevokedAt.Valid {
		resp.RevokedAt = consent.RevokedAt.Time.Unix()
	}
	return resp
}

func formatDate(t time.Time, valid bool) string {
	if !valid || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
