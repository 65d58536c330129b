package constants

// Contract statuses
const (
	ContractStatusDraft      = "draft"
	ContractStatusActive     = "active"
	ContractStatusExpired    = "expired"
	ContractStatusTerminated = "terminated"
	ContractStatusRenewed    = "renewed"
)

// Contract types
const (
	ContractTypeFixedTerm    = "fixed_term"
	ContractTypeOpenEnded    = "open_ended"
	ContractTypeProjectBased = "project_based"
	ContractTypeRetainer     = "retainer"
)

// Payment frequencies
const (
	PaymentFrequencyMonthly   = "monthly"
	PaymentFrequencyMilestone = "milestone"
	PaymentFrequencyWeekly    = "weekly"
)

// Rate units for freelancer default rates.
const (
	RateUnitHourly = "hourly"
	RateUnitDaily  = "daily"
)

// Milestone statuses
const (
	MilestoneStatusPending    = "pending"
	MilestoneStatusInProgress = "in_progress"
	MilestoneStatusCompleted  = "completed"
	MilestoneStatusApproved   = "approved"
	MilestoneStatusPaid       = "paid"
)

// Payment statuses
const (
	PaymentStatusDraft           = "draft"
	PaymentStatusPendingApproval = "pending_approval"
	PaymentStatusApproved        = "approved"
	PaymentStatusPaid            = "paid"
	PaymentStatusRejected        = "rejected"
)

// Income categories recognised by treaty records.
const (
	IncomeCategoryServices  = "services"
	IncomeCategoryRoyalties = "royalties"
	IncomeCategoryInterest  = "interest"
	IncomeCategoryDividends = "dividends"
	IncomeCategoryRental    = "rental"
)

// VAT treatment outcomes recorded on computed payments.
const (
	VATTreatmentReverseCharge       = "reverse_charge"
	VATTreatmentImportReverseCharge = "import_reverse_charge"
	VATTreatmentZeroRatedExport     = "zero_rated_export"
	VATTreatmentStandardRate        = "standard_rate"
)

// Accounting entry types dispatched to the ledger queue.
const (
	AccountingEntryPurchaseInvoice    = "purchase_invoice"
	AccountingEntryWithholdingJournal = "withholding_journal"
)

// Accounting entry dispatch statuses
const (
	AccountingStatusPending    = "pending"
	AccountingStatusDispatched = "dispatched"
	AccountingStatusFailed     = "failed"
)

// Notification types recorded in the notification log.
const (
	NotificationPaymentApproved  = "payment_approved"
	NotificationPaymentPaid      = "payment_paid"
	NotificationContractExpiring = "contract_expiring"
	NotificationMilestoneDue     = "milestone_due"
)

// Notification entity types
const (
	EntityTypePayment   = "payment"
	EntityTypeContract  = "contract"
	EntityTypeMilestone = "milestone"
)

// Freelancer statuses
const (
	FreelancerStatusActive    = "active"
	FreelancerStatusInactive  = "inactive"
	FreelancerStatusExited    = "exited"
	FreelancerStatusAnonymous = "anonymized"
)

// GDPR consent types tracked per freelancer.
const (
	ConsentDataProcessing    = "data_processing"
	ConsentMarketing         = "marketing"
	ConsentProfiling         = "profiling"
	ConsentDataTransfer      = "data_transfer"
	ConsentThirdPartySharing = "third_party_sharing"
)
