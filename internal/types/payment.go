package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentItemInput declares one line on a payment. Amount overrides
// Quantity*Rate when both are given.
type PaymentItemInput struct {
	Description string `json:"description" binding:"required"`
	Quantity    string `json:"quantity,omitempty"`
	Rate        string `json:"rate,omitempty"`
	Amount      string `json:"amount,omitempty"`
	MilestoneID string `json:"milestone_id,omitempty" binding:"omitempty,uuid"`
}

// PaymentExpenseInput declares one reimbursable expense on a payment.
type PaymentExpenseInput struct {
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	ReceiptRef  string `json:"receipt_ref,omitempty"`
}

// CreatePaymentRequest opens a draft payment under a contract.
type CreatePaymentRequest struct {
	ContractID  string                `json:"contract_id" binding:"required,uuid"`
	PaymentDate string                `json:"payment_date,omitempty"`
	PeriodStart string                `json:"period_start,omitempty"`
	PeriodEnd   string                `json:"period_end,omitempty"`
	BaseAmount  string                `json:"base_amount,omitempty"`
	Currency    string                `json:"currency,omitempty" binding:"omitempty,len=3"`
	Notes       string                `json:"notes,omitempty"`
	Items       []PaymentItemInput    `json:"items,omitempty"`
	Expenses    []PaymentExpenseInput `json:"expenses,omitempty"`
}

// UpdatePaymentRequest edits a draft payment. Omitted fields keep their
// current value; amounts are recomputed after the edit.
type UpdatePaymentRequest struct {
	PaymentDate string `json:"payment_date,omitempty"`
	PeriodStart string `json:"period_start,omitempty"`
	PeriodEnd   string `json:"period_end,omitempty"`
	BaseAmount  string `json:"base_amount,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// ApprovePaymentRequest records who signed off.
type ApprovePaymentRequest struct {
	ApprovedBy string `json:"approved_by" binding:"required"`
}

// RejectPaymentRequest sends a payment back with a reason.
type RejectPaymentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// MarkPaidRequest closes an approved payment with its bank reference.
type MarkPaidRequest struct {
	PaymentReference string `json:"payment_reference,omitempty"`
	PaidAt           string `json:"paid_at,omitempty"`
}

// PaymentPreview shows the computed amounts for a payment without
// persisting anything.
type PaymentPreview struct {
	PaymentID            string           `json:"payment_id"`
	Currency             string           `json:"currency"`
	Breakdown            TaxBreakdown     `json:"breakdown"`
	CompanyCurrency      string           `json:"company_currency,omitempty"`
	ExchangeRate         *decimal.Decimal `json:"exchange_rate,omitempty"`
	CompanyCurrencyGross *decimal.Decimal `json:"company_currency_gross,omitempty"`
	CompanyCurrencyNet   *decimal.Decimal `json:"company_currency_net,omitempty"`
	PreviewedAt          time.Time        `json:"previewed_at"`
}

// AccountingEvent is the message dispatched to the accounting queue when
// a payment is marked paid.
type AccountingEvent struct {
	EntryID           string          `json:"entry_id"`
	EntryType         string          `json:"entry_type"`
	PaymentID         string          `json:"payment_id"`
	PaymentNumber     string          `json:"payment_number"`
	ContractID        string          `json:"contract_id"`
	FreelancerID      string          `json:"freelancer_id"`
	Currency          string          `json:"currency"`
	GrossAmount       decimal.Decimal `json:"gross_amount"`
	VATAmount         decimal.Decimal `json:"vat_amount"`
	WithholdingAmount decimal.Decimal `json:"withholding_amount"`
	NetAmount         decimal.Decimal `json:"net_amount"`
	PaidAt            time.Time       `json:"paid_at"`
}
