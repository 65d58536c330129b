package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hrplatform/freelancer-api/internal/constants"
	"github.com/hrplatform/freelancer-api/internal/db"
	"github.com/hrplatform/freelancer-api/internal/helpers"
	"github.com/hrplatform/freelancer-api/internal/logger"
	"github.com/hrplatform/freelancer-api/internal/taxerr"
	"github.com/hrplatform/freelancer-api/internal/types"
)

// PaymentService owns the payment lifecycle: draft, submit, approve or
// reject, mark paid. Every amount-changing step recomputes the tax
// breakdown and persists it under the payment's version so concurrent
// edits surface as conflicts instead of silent overwrites.
type PaymentService struct {
	queries    db.Querier
	calculator *PaymentCalculator
	sink       AccountingSink
	email      *EmailService
	logger     *zap.Logger
}

// NewPaymentService creates a new payment service. The accounting sink and
// email service may be nil; dispatch and notification are then skipped.
func NewPaymentService(queries db.Querier, calculator *PaymentCalculator, sink AccountingSink, email *EmailService) *PaymentService {
	return &PaymentService{
		queries:    queries,
		calculator: calculator,
		sink:       sink,
		email:      email,
		logger:     logger.Log,
	}
}

// PaymentDetail bundles a payment with its lines and expenses.
type PaymentDetail struct {
	Payment  db.Payment          `json:"payment"`
	Items    []db.PaymentItem    `json:"items"`
	Expenses []db.PaymentExpense `json:"expenses"`
}

// Create opens a draft payment under an active contract, loads its lines
// and expenses, and stores the computed amounts.
func (s *PaymentService) Create(ctx context.Context, req types.CreatePaymentRequest) (*PaymentDetail, error) {
	contractID, err := uuid.Parse(req.ContractID)
	if err != nil {
		return nil, taxerr.NewFieldValidation("contract_id", "must be a UUID")
	}

	contract, err := s.queries.GetContract(ctx, contractID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taxerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	if contract.Status != constants.ContractStatusActive {
		return nil, taxerr.NewValidation("payments can only be created on active contracts, contract is %s", contract.Status)
	}

	currency := helpers.NormalizeCurrency(req.Currency)
	if currency == "" {
		currency = contract.Currency
	}
	if !helpers.IsSupportedCurrency(currency) {
		return nil, &taxerr.InvalidCurrencyError{Currency: req.Currency}
	}

	baseAmount := decimal.Zero
	if req.BaseAmount != "" {
		if baseAmount, err = decimal.NewFromString(req.BaseAmount); err != nil {
			return nil, taxerr.NewFieldValidation("base_amount", "must be a decimal")
		}
		if baseAmount.IsNegative() {
			return nil, taxerr.NewFieldValidation("base_amount", "must not be negative")
		}
	}

	paymentDate, err := parseOptionalDate(req.PaymentDate)
	if err != nil {
		return nil, taxerr.NewFieldValidation("payment_date", "%v", err)
	}
	periodStart, err := parseOptionalDate(req.PeriodStart)
	if err != nil {
		return nil, taxerr.NewFieldValidation("period_start", "%v", err)
	}
	periodEnd, err := parseOptionalDate(req.PeriodEnd)
	if err != nil {
		return nil, taxerr.NewFieldValidation("period_end", "%v", err)
	}
	if !periodStart.IsZero() && !periodEnd.IsZero() && periodEnd.Before(periodStart) {
		return nil, taxerr.NewFieldValidation("period_end", "must not be before period_start")
	}

	payment, err := s.queries.CreatePayment(ctx, db.CreatePaymentParams{
		PaymentNumber:   generateDocumentNumber("PAY", time.Now()),
		ContractID:      contract.ID,
		FreelancerID:    contract.FreelancerID,
		Status:          constants.PaymentStatusDraft,
		PaymentDate:     helpers.TimeToNullableDate(paymentDate),
		PeriodStart:     helpers.TimeToNullableDate(periodStart),
		PeriodEnd:       helpers.TimeToNullableDate(periodEnd),
		BaseAmount:      helpers.DecimalToNumeric(baseAmount),
		Currency:        currency,
		CompanyCurrency: helpers.StringToNullableText(contract.CompanyCurrency),
		Notes:           helpers.StringToNullableText(req.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	for _, item := range req.Items {
		if _, err := s.addItem(ctx, payment, contract, item); err != nil {
			return nil, err
		}
	}
	for _, expense := range req.Expenses {
		if _, err := s.addExpense(ctx, payment.ID, expense); err != nil {
			return nil, err
		}
	}

	updated, err := s.recompute(ctx, payment.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Created payment",
		zap.String("payment_id", payment.ID.String()),
		zap.String("payment_number", payment.PaymentNumber),
		zap.String("contract_id", contract.ID.String()),
		zap.String("currency", currency))
	return updated, nil
}

// Update edits the dates, base amount, and notes of a draft payment and
// recomputes its amounts. Omitted fields keep their current value.
func (s *PaymentService) Update(ctx context.Context, id uuid.UUID, req types.UpdatePaymentRequest) (*PaymentDetail, error) {
	payment, err := s.mutablePayment(ctx, id)
	if err != nil {
		return nil, err
	}

	params := db.UpdatePaymentDetailsParams{
		ID:          payment.ID,
		PaymentDate: payment.PaymentDate,
		PeriodStart: payment.PeriodStart,
		PeriodEnd:   payment.PeriodEnd,
		BaseAmount:  payment.BaseAmount,
		Notes:       payment.Notes,
		Version:     payment.Version,
	}
	if req.PaymentDate != "" {
		date, err := parseOptionalDate(req.PaymentDate)
		if err != nil {
			return nil, taxerr.NewFieldValidation("payment_date", "%v", err)
		}
		params.PaymentDate = helpers.TimeToNullableDate(date)
	}
	if req.PeriodStart != "" {
		date, err := parseOptionalDate(req.PeriodStart)
		if err != nil {
			return nil, taxerr.NewFieldValidation("period_start", "%v", err)
		}
		params.PeriodStart = helpers.TimeToNullableDate(date)
	}
	if req.PeriodEnd != "" {
		date, err := parseOptionalDate(req.PeriodEnd)
		if err != nil {
			return nil, taxerr.NewFieldValidation("period_end", "%v", err)
		}
		params.PeriodEnd = helpers.TimeToNullableDate(date)
	}
	if params.PeriodStart.Valid && params.PeriodEnd.Valid && params.PeriodEnd.Time.Before(params.PeriodStart.Time) {
		return nil, taxerr.NewFieldValidation("period_end", "must not be before period_start")
	}
	if req.BaseAmount != "" {
		amount, err := decimal.NewFromString(req.BaseAmount)
		if err != nil {
			return nil, taxerr.NewFieldValidation("base_amount", "must be a decimal")
		}
		if amount.IsNegative() {
			return nil, taxerr.NewFieldValidation("base_amount", "must not be negative")
		}
		params.BaseAmount = helpers.DecimalToNumeric(amount)
	}
	if req.Notes != "" {
		params.Notes = helpers.StringToNullableText(req.Notes)
	}

	if _, err := s.queries.UpdatePaymentDetails(ctx, params); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &taxerr.ConcurrentModificationError{Entity: "payment", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	detail, err := s.recompute(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Updated payment", zap.String("payment_id", id.String()))
	return detail, nil
}

// Get returns a payment with its lines and expenses.
func (s *PaymentService) Get(ctx context.Context, id uuid.UUID) (*PaymentDetail, error) {
	payment, err := s.queries.GetPayment(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taxerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return s.loadDetail(ctx, payment)
}

func (s *PaymentService) loadDetail(ctx context.Context, payment db.Payment) (*PaymentDetail, error) {
	items, err := s.queries.ListPaymentItems(ctx, payment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment items: %w", err)
	}
	expenses, err := s.queries.ListPaymentExpenses(ctx, payment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment expenses: %w", err)
	}
	return &PaymentDetail{Payment: payment, Items: items, Expenses: expenses}, nil
}

// List returns payments, newest first.
func (s *PaymentService) List(ctx context.Context, limit, offset int32) ([]db.Payment, int64, error) {
	payments, err := s.queries.ListPayments(ctx, db.ListPaymentsParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}
	total, err := s.queries.CountPayments(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return payments, total, nil
}

// ListByContract returns every payment under one contract.
func (s *PaymentService) ListByContract(ctx context.Context, contractID uuid.UUID) ([]db.Payment, error) {
	payments, err := s.queries.ListPaymentsByContract(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments by contract: %w", err)
	}
	return payments, nil
}

// ListByFreelancer returns a freelancer's payments, newest first.
func (s *PaymentService) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID, limit, offset int32) ([]db.Payment, error) {
	payments, err := s.queries.ListPaymentsByFreelancer(ctx, db.ListPaymentsByFreelancerParams{
		FreelancerID: freelancerID,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list payments by freelancer: %w", err)
	}
	return payments, nil
}

// AddItem appends a line to a draft payment and recomputes its amounts.
func (s *PaymentService) AddItem(ctx context.Context, paymentID uuid.UUID, input types.PaymentItemInput) (*PaymentDetail, error) {
	payment, err := s.mutablePayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	contract, err := s.queries.GetContract(ctx, payment.ContractID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	if _, err := s.addItem(ctx, *payment, contract, input); err != nil {
		return nil, err
	}
	return s.recompute(ctx, paymentID)
}

func (s *PaymentService) addItem(ctx context.Context, payment db.Payment, contract db.Contract, input types.PaymentItemInput) (*db.PaymentItem, error) {
	quantity := decimal.NewFromInt(1)
	var err error
	if input.Quantity != "" {
		if quantity, err = decimal.NewFromString(input.Quantity); err != nil || !quantity.IsPositive() {
			return nil, taxerr.NewFieldValidation("quantity", "must be a positive decimal")
		}
	}
	rate := decimal.Zero
	if input.Rate != "" {
		if rate, err = decimal.NewFromString(input.Rate); err != nil || rate.IsNegative() {
			return nil, taxerr.NewFieldValidation("rate", "must be a non-negative decimal")
		}
	}

	amount := quantity.Mul(rate)
	if input.Amount != "" {
		if amount, err = decimal.NewFromString(input.Amount); err != nil {
			return nil, taxerr.NewFieldValidation("amount", "must be a decimal")
		}
	}
	if amount.IsNegative() {
		return nil, taxerr.NewFieldValidation("amount", "must not be negative")
	}

	milestoneID := pgtype.UUID{Valid: false}
	if input.MilestoneID != "" {
		parsed, err := uuid.Parse(input.MilestoneID)
		if err != nil {
			return nil, taxerr.NewFieldValidation("milestone_id", "must be a UUID")
		}
		milestone, err := s.queries.GetMilestone(ctx, parsed)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, taxerr.NewFieldValidation("milestone_id", "milestone not found")
			}
			return nil, fmt.Errorf("failed to get milestone: %w", err)
		}
		if milestone.ContractID != contract.ID {
			return nil, taxerr.NewFieldValidation("milestone_id", "milestone belongs to another contract")
		}
		if milestone.Status != constants.MilestoneStatusCompleted && milestone.Status != constants.MilestoneStatusApproved {
			return nil, taxerr.NewFieldValidation("milestone_id", "milestone must be completed or approved, is %s", milestone.Status)
		}
		claimed, err := s.queries.CountNonRejectedPaymentsForMilestone(ctx, helpers.UUIDToPgUUID(parsed))
		if err != nil {
			return nil, fmt.Errorf("failed to check milestone payments: %w", err)
		}
		if claimed > 0 {
			return nil, taxerr.NewFieldValidation("milestone_id", "milestone already has a payment")
		}
		milestoneID = helpers.UUIDToPgUUID(parsed)
	}

	item, err := s.queries.CreatePaymentItem(ctx, db.CreatePaymentItemParams{
		PaymentID:   payment.ID,
		Description: input.Description,
		Quantity:    helpers.DecimalToNumeric(quantity),
		Rate:        helpers.DecimalToNumeric(rate),
		Amount:      helpers.DecimalToNumeric(helpers.RoundMoney(amount)),
		MilestoneID: milestoneID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment item: %w", err)
	}
	return &item, nil
}

// RemoveItem deletes a line from a draft payment and recomputes its amounts.
func (s *PaymentService) RemoveItem(ctx context.Context, paymentID, itemID uuid.UUID) (*PaymentDetail, error) {
	if _, err := s.mutablePayment(ctx, paymentID); err != nil {
		return nil, err
	}
	if err := s.queries.DeletePaymentItem(ctx, itemID); err != nil {
		return nil, fmt.Errorf("failed to delete payment item: %w", err)
	}
	return s.recompute(ctx, paymentID)
}

// AddExpense attaches a reimbursable expense to a draft payment.
func (s *PaymentService) AddExpense(ctx context.Context, paymentID uuid.UUID, input types.PaymentExpenseInput) (*PaymentDetail, error) {
	if _, err := s.mutablePayment(ctx, paymentID); err != nil {
		return nil, err
	}
	if _, err := s.addExpense(ctx, paymentID, input); err != nil {
		return nil, err
	}
	return s.recompute(ctx, paymentID)
}

func (s *PaymentService) addExpense(ctx context.Context, paymentID uuid.UUID, input types.PaymentExpenseInput) (*db.PaymentExpense, error) {
	amount, err := decimal.NewFromString(input.Amount)
	if err != nil || amount.IsNegative() {
		return nil, taxerr.NewFieldValidation("amount", "must be a non-negative decimal")
	}
	expense, err := s.queries.CreatePaymentExpense(ctx, db.CreatePaymentExpenseParams{
		PaymentID:   paymentID,
		Description: input.Description,
		Amount:      helpers.DecimalToNumeric(helpers.RoundMoney(amount)),
		Approved:    helpers.BoolToNullableBool(true),
		ReceiptRef:  helpers.StringToNullableText(input.ReceiptRef),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment expense: %w", err)
	}
	return &expense, nil
}

// SetExpenseApproval toggles whether an expense counts toward the gross.
func (s *PaymentService) SetExpenseApproval(ctx context.Context, paymentID, expenseID uuid.UUID, approved bool) (*PaymentDetail, error) {
	if _, err := s.mutablePayment(ctx, paymentID); err != nil {
		return nil, err
	}
	if _, err := s.queries.UpdatePaymentExpenseApproval(ctx, db.UpdatePaymentExpenseApprovalParams{
		ID:       expenseID,
		Approved: helpers.BoolToNullableBool(approved),
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taxerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update expense approval: %w", err)
	}
	return s.recompute(ctx, paymentID)
}

// Preview computes the amounts a payment would carry right now without
// persisting anything.
func (s *PaymentService) Preview(ctx context.Context, id uuid.UUID) (*types.PaymentPreview, error) {
	computation, payment, err := s.compute(ctx, id)
	if err != nil {
		return nil, err
	}

	preview := &types.PaymentPreview{
		PaymentID:   payment.ID.String(),
		Currency:    payment.Currency,
		Breakdown:   computation.Breakdown,
		PreviewedAt: time.Now(),
	}
	if computation.HasMirror {
		rate := computation.ExchangeRate
		gross := computation.CompanyCurrencyGross
		net := computation.CompanyCurrencyNet
		preview.CompanyCurrency = computation.CompanyCurrency
		preview.ExchangeRate = &rate
		preview.CompanyCurrencyGross = &gross
		preview.CompanyCurrencyNet = &net
	}
	return preview, nil
}

// Submit moves a draft payment to pending approval. The amounts are
// recomputed first; a payment with no lines and no base amount is refused.
func (s *PaymentService) Submit(ctx context.Context, id uuid.UUID) (*PaymentDetail, error) {
	detail, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	payment := detail.Payment
	if payment.Status != constants.PaymentStatusDraft {
		return nil, taxerr.NewValidation("only draft payments can be submitted, payment is %s", payment.Status)
	}
	if len(detail.Items) == 0 && helpers.NumericToDecimal(payment.BaseAmount).IsZero() {
		return nil, &taxerr.EmptyPaymentError{PaymentID: payment.ID.String()}
	}

	refreshed, err := s.recompute(ctx, id)
	if err != nil {
		return nil, err
	}

	submitted, err := s.queries.SubmitPayment(ctx, db.SubmitPaymentParams{
		ID:      id,
		Version: refreshed.Payment.Version,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &taxerr.ConcurrentModificationError{Entity: "payment", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to submit payment: %w", err)
	}

	s.logger.Info("Submitted payment",
		zap.String("payment_id", id.String()),
		zap.String("net_amount", helpers.NumericToDecimal(submitted.NetAmount).String()))
	refreshed.Payment = submitted
	return refreshed, nil
}

// Approve signs off a pending payment. The stored amounts are verified
// against a fresh computation first; drift beyond the reconciliation
// tolerance refuses the approval so nobody signs off on stale numbers.
func (s *PaymentService) Approve(ctx context.Context, id uuid.UUID, req types.ApprovePaymentRequest) (*db.Payment, error) {
	computation, payment, err := s.compute(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.Status != constants.PaymentStatusPendingApproval {
		return nil, taxerr.NewValidation("only pending payments can be approved, payment is %s", payment.Status)
	}
	if !s.calculator.Matches(*payment, computation) {
		return nil, taxerr.NewValidation("stored amounts no longer match the computed breakdown, recompute before approving")
	}

	approved, err := s.queries.ApprovePayment(ctx, db.ApprovePaymentParams{
		ID:         id,
		ApprovedBy: helpers.StringToNullableText(req.ApprovedBy),
		Version:    payment.Version,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &taxerr.ConcurrentModificationError{Entity: "payment", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to approve payment: %w", err)
	}

	s.notifyApproved(ctx, approved)
	s.logger.Info("Approved payment",
		zap.String("payment_id", id.String()),
		zap.String("approved_by", req.ApprovedBy))
	return &approved, nil
}

// Reject sends a pending payment back with a reason.
func (s *PaymentService) Reject(ctx context.Context, id uuid.UUID, req types.RejectPaymentRequest) (*db.Payment, error) {
	payment, err := s.queries.GetPayment(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taxerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	if payment.Status != constants.PaymentStatusPendingApproval {
		return nil, taxerr.NewValidation("only pending payments can be rejected, payment is %s", payment.Status)
	}

	rejected, err := s.queries.RejectPayment(ctx, db.RejectPaymentParams{
		ID:              id,
		RejectionReason: helpers.StringToNullableText(req.Reason),
		Version:         payment.Version,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &taxerr.ConcurrentModificationError{Entity: "payment", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to reject payment: %w", err)
	}

	s.logger.Info("Rejected payment",
		zap.String("payment_id", id.String()),
		zap.String("reason", req.Reason))
	return &rejected, nil
}

// MarkPaid closes an approved payment and dispatches its accounting
// entries. Dispatch failures do not roll back the payment; pending entries
// are retried by the scheduler.
func (s *PaymentService) MarkPaid(ctx context.Context, id uuid.UUID, req types.MarkPaidRequest) (*db.Payment, error) {
	payment, err := s.queries.GetPayment(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taxerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	if payment.Status != constants.PaymentStatusApproved {
		return nil, taxerr.NewValidation("only approved payments can be marked paid, payment is %s", payment.Status)
	}

	paidAt := time.Now()
	if req.PaidAt != "" {
		if paidAt, err = parseDate(req.PaidAt); err != nil {
			return nil, taxerr.NewFieldValidation("paid_at", "%v", err)
		}
	}

	paid, err := s.queries.MarkPaymentPaid(ctx, db.MarkPaymentPaidParams{
		ID:               id,
		PaidAt:           helpers.TimeToNullableTimestamptz(paidAt),
		PaymentReference: helpers.StringToNullableText(req.PaymentReference),
		Version:          payment.Version,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &taxerr.ConcurrentModificationError{Entity: "payment", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to mark payment paid: %w", err)
	}

	s.dispatchAccounting(ctx, paid)
	s.logger.Info("Marked payment paid",
		zap.String("payment_id", id.String()),
		zap.String("payment_reference", req.PaymentReference))
	return &paid, nil
}

// Recompute refreshes the stored amounts of a payment from its current
// lines, expenses, and tax rules.
func (s *PaymentService) Recompute(ctx context.Context, id uuid.UUID) (*PaymentDetail, error) {
	return s.recompute(ctx, id)
}

// MarkOverdue flags unpaid payments whose due date passed before the given
// date. Returns the flagged payments.
func (s *PaymentService) MarkOverdue(ctx context.Context, asOf time.Time) ([]db.Payment, error) {
	payments, err := s.queries.MarkPaymentsOverdue(ctx, helpers.TimeToDate(asOf))
	if err != nil {
		return nil, fmt.Errorf("failed to mark payments overdue: %w", err)
	}
	if len(payments) > 0 {
		s.logger.Warn("Flagged overdue payments", zap.Int("count", len(payments)))
	}
	return payments, nil
}

// compute loads everything a computation needs and runs the calculator.
func (s *PaymentService) compute(ctx context.Context, id uuid.UUID) (*PaymentComputation, *db.Payment, error) {
	payment, err := s.queries.GetPayment(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, taxerr.ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get payment: %w", err)
	}
	contract, err := s.queries.GetContract(ctx, payment.ContractID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get contract: %w", err)
	}
	freelancer, err := s.queries.GetFreelancer(ctx, payment.FreelancerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get freelancer: %w", err)
	}
	items, err := s.queries.ListPaymentItems(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list payment items: %w", err)
	}
	expenses, err := s.queries.ListPaymentExpenses(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list payment expenses: %w", err)
	}

	computation, err := s.calculator.Compute(ctx, freelancer, contract, payment, items, expenses)
	if err != nil {
		return nil, nil, err
	}
	return computation, &payment, nil
}

func (s *PaymentService) recompute(ctx context.Context, id uuid.UUID) (*PaymentDetail, error) {
	computation, payment, err := s.compute(ctx, id)
	if err != nil {
		return nil, err
	}

	params := db.UpdatePaymentComputationParams{
		ID:                id,
		ExpenseTotal:      helpers.DecimalToNumeric(computation.Breakdown.ExpenseTotal),
		GrossAmount:       helpers.DecimalToNumeric(computation.Breakdown.GrossAmount),
		VatRate:           helpers.DecimalToNumeric(computation.Breakdown.VATRate),
		VatAmount:         helpers.DecimalToNumeric(computation.Breakdown.VATAmount),
		ReverseCharge:     helpers.BoolToNullableBool(computation.Breakdown.ReverseCharge),
		VatTreatment:      helpers.StringToNullableText(computation.Breakdown.VATTreatment),
		WithholdingRate:   helpers.DecimalToNumeric(computation.Breakdown.WithholdingRate),
		WithholdingAmount: helpers.DecimalToNumeric(computation.Breakdown.WithholdingAmount),
		TreatyApplied:     helpers.BoolToNullableBool(computation.Breakdown.TreatyApplied),
		NetAmount:         helpers.DecimalToNumeric(computation.Breakdown.NetAmount),
		ComplianceNotes:   helpers.StringToNullableText(joinNotes(computation.Breakdown.ComplianceNotes)),
		Version:           payment.Version,
	}
	if computation.HasMirror {
		params.ExchangeRate = helpers.DecimalToNumeric(computation.ExchangeRate)
		params.CompanyCurrencyGross = helpers.DecimalToNumeric(computation.CompanyCurrencyGross)
		params.CompanyCurrencyNet = helpers.DecimalToNumeric(computation.CompanyCurrencyNet)
	}

	updated, err := s.queries.UpdatePaymentComputation(ctx, params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &taxerr.ConcurrentModificationError{Entity: "payment", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to store payment computation: %w", err)
	}
	return s.loadDetail(ctx, updated)
}

// dispatchAccounting creates and dispatches the ledger entries for a paid
// payment at most once each. The withholding journal is only produced when
// tax was actually withheld.
func (s *PaymentService) dispatchAccounting(ctx context.Context, payment db.Payment) {
	entryTypes := []string{constants.AccountingEntryPurchaseInvoice}
	if helpers.NumericToDecimal(payment.WithholdingAmount).IsPositive() {
		entryTypes = append(entryTypes, constants.AccountingEntryWithholdingJournal)
	}

	for _, entryType := range entryTypes {
		if _, err := s.queries.GetAccountingEntry(ctx, db.GetAccountingEntryParams{
			PaymentID: payment.ID,
			EntryType: entryType,
		}); err == nil {
			continue
		} else if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error("Failed to check accounting entry",
				zap.String("payment_id", payment.ID.String()),
				zap.String("entry_type", entryType),
				zap.Error(err))
			continue
		}

		entry, err := s.queries.CreateAccountingEntry(ctx, db.CreateAccountingEntryParams{
			PaymentID: payment.ID,
			EntryType: entryType,
			Status:    constants.AccountingStatusPending,
		})
		if err != nil {
			s.logger.Error("Failed to create accounting entry",
				zap.String("payment_id", payment.ID.String()),
				zap.String("entry_type", entryType),
				zap.Error(err))
			continue
		}

		s.DispatchEntry(ctx, entry, payment)
	}
}

// DispatchEntry sends one accounting entry to the sink and records the
// outcome. Used on mark-paid and by the scheduler's retry pass.
func (s *PaymentService) DispatchEntry(ctx context.Context, entry db.AccountingEntry, payment db.Payment) {
	if s.sink == nil {
		return
	}

	event := types.AccountingEvent{
		EntryID:           entry.ID.String(),
		EntryType:         entry.EntryType,
		PaymentID:         payment.ID.String(),
		PaymentNumber:     payment.PaymentNumber,
		ContractID:        payment.ContractID.String(),
		FreelancerID:      payment.FreelancerID.String(),
		Currency:          payment.Currency,
		GrossAmount:       helpers.NumericToDecimal(payment.GrossAmount),
		VATAmount:         helpers.NumericToDecimal(payment.VatAmount),
		WithholdingAmount: helpers.NumericToDecimal(payment.WithholdingAmount),
		NetAmount:         helpers.NumericToDecimal(payment.NetAmount),
		PaidAt:            payment.PaidAt.Time,
	}

	messageID, err := s.sink.Dispatch(ctx, event)
	if err != nil {
		s.logger.Error("Failed to dispatch accounting entry",
			zap.String("entry_id", entry.ID.String()),
			zap.String("entry_type", entry.EntryType),
			zap.Error(err))
		if _, markErr := s.queries.MarkAccountingEntryFailed(ctx, db.MarkAccountingEntryFailedParams{
			ID:          entry.ID,
			ErrorDetail: helpers.StringToNullableText(err.Error()),
		}); markErr != nil {
			s.logger.Error("Failed to record accounting dispatch failure", zap.Error(markErr))
		}
		return
	}

	if _, err := s.queries.MarkAccountingEntryDispatched(ctx, db.MarkAccountingEntryDispatchedParams{
		ID:        entry.ID,
		MessageID: helpers.StringToNullableText(messageID),
	}); err != nil {
		s.logger.Error("Failed to record accounting dispatch", zap.Error(err))
	}
}

// notifyApproved emails the freelancer once per approval, guarded by the
// notification log.
func (s *PaymentService) notifyApproved(ctx context.Context, payment db.Payment) {
	if s.email == nil {
		return
	}
	if _, err := s.queries.GetNotificationLogByEntityAndType(ctx, db.GetNotificationLogByEntityAndTypeParams{
		EntityID:         payment.ID,
		NotificationType: constants.NotificationPaymentApproved,
	}); err == nil {
		return
	}

	freelancer, err := s.queries.GetFreelancer(ctx, payment.FreelancerID)
	if err != nil {
		s.logger.Error("Failed to load freelancer for approval notification", zap.Error(err))
		return
	}
	if err := s.email.SendPaymentApproved(ctx, freelancer, payment); err != nil {
		s.logger.Error("Failed to send approval notification",
			zap.String("payment_id", payment.ID.String()),
			zap.Error(err))
		return
	}
	if _, err := s.queries.CreateNotificationLog(ctx, db.CreateNotificationLogParams{
		EntityType:       constants.EntityTypePayment,
		EntityID:         payment.ID,
		NotificationType: constants.NotificationPaymentApproved,
		Recipient:        helpers.StringToNullableText(freelancer.Email),
	}); err != nil {
		s.logger.Error("Failed to record approval notification", zap.Error(err))
	}
}

// mutablePayment loads a payment and refuses edits outside draft.
func (s *PaymentService) mutablePayment(ctx context.Context, id uuid.UUID) (*db.Payment, error) {
	payment, err := s.queries.GetPayment(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taxerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	if payment.Status != constants.PaymentStatusDraft {
		return nil, taxerr.NewValidation("payment lines can only change while draft, payment is %s", payment.Status)
	}
	return &payment, nil
}

func joinNotes(notes []string) string {
	return strings.Join(notes, "; ")
}
