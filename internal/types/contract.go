package types

import "github.com/shopspring/decimal"

// MilestoneInput declares one milestone on contract creation. Amount and
// PercentOfContract are decimal strings; percent entries on a
// milestone-frequency contract should sum to 100.
type MilestoneInput struct {
	Title             string `json:"title" binding:"required"`
	Description       string `json:"description,omitempty"`
	Amount            string `json:"amount" binding:"required"`
	PercentOfContract string `json:"percent_of_contract,omitempty"`
	DueDate           string `json:"due_date,omitempty"`
	SortOrder         int32  `json:"sort_order,omitempty"`
}

// CreateContractRequest opens a draft contract for a freelancer.
type CreateContractRequest struct {
	FreelancerID     string           `json:"freelancer_id" binding:"required,uuid"`
	Title            string           `json:"title,omitempty"`
	CompanyCountry   string           `json:"company_country" binding:"required,len=2"`
	CompanyCurrency  string           `json:"company_currency" binding:"required,len=3"`
	ContractType     string           `json:"contract_type" binding:"required,oneof=fixed_term open_ended project_based retainer"`
	PaymentFrequency string           `json:"payment_frequency,omitempty" binding:"omitempty,oneof=monthly milestone weekly"`
	StartDate        string           `json:"start_date" binding:"required"`
	EndDate          string           `json:"end_date,omitempty"`
	ContractValue    string           `json:"contract_value,omitempty"`
	Currency         string           `json:"currency" binding:"required,len=3"`
	PaymentTermsDays int32            `json:"payment_terms_days,omitempty"`
	NoticePeriodDays int32            `json:"notice_period_days,omitempty"`
	AutoRenew        bool             `json:"auto_renew"`
	Milestones       []MilestoneInput `json:"milestones,omitempty"`
}

// TerminateContractRequest ends an active contract early.
type TerminateContractRequest struct {
	Reason          string `json:"reason" binding:"required"`
	TerminationDate string `json:"termination_date,omitempty"`
}

// RenewContractRequest opens a successor contract. ExtensionMonths defaults
// to twelve when zero.
type RenewContractRequest struct {
	ExtensionMonths int `json:"extension_months,omitempty"`
}

// MilestoneStatusRequest moves a milestone through its lifecycle.
type MilestoneStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress completed approved paid"`
}

// ContractSummary aggregates the financial position of one contract.
type ContractSummary struct {
	ContractID          string          `json:"contract_id"`
	ContractNumber      string          `json:"contract_number"`
	Status              string          `json:"status"`
	ContractValue       decimal.Decimal `json:"contract_value"`
	Currency            string          `json:"currency"`
	TotalInvoiced       decimal.Decimal `json:"total_invoiced"`
	TotalPaid           decimal.Decimal `json:"total_paid"`
	TotalWithheld       decimal.Decimal `json:"total_withheld"`
	Outstanding         decimal.Decimal `json:"outstanding"`
	RemainingValue      decimal.Decimal `json:"remaining_value"`
	PendingPayments     int64           `json:"pending_payments"`
	PaymentCount        int64           `json:"payment_count"`
	MilestonesTotal     int             `json:"milestones_total"`
	MilestonesCompleted int             `json:"milestones_completed"`
	CompletionPercent   decimal.Decimal `json:"completion_percent"`
	DaysRemaining       int             `json:"days_remaining"`
}
