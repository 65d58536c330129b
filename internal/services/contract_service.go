package services

import (
	"context"
	"errors"
	"fmt"
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

// defaultRenewalMonths is the successor term when a renewal does not name
// one.
const defaultRenewalMonths = 12

// ContractService owns the contract lifecycle: draft, activate, terminate,
// expire, renew. Milestones live under their contract and move through
// their own statuses.
type ContractService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewContractService creates a new contract service
func NewContractService(queries db.Querier) *ContractService {
	return &ContractService{
		queries: queries,
		logger:  logger.Log,
	}
}

// ContractDetail bundles a contract with its milestones.
type ContractDetail struct {
	Contract   db.Contract    `json:"contract"`
	Milestones []db.Milestone `json:"milestones"`
}

// Create opens a draft contract, with its milestones when given. On a
// milestone-frequency contract the declared percentages must sum to one
// hundred.
func (s *ContractService) Create(ctx context.Context, req types.CreateContractRequest) (*ContractDetail, error) {
	freelancerID, err := uuid.Parse(req.FreelancerID)
	if err != nil {
		return nil, taxerr.NewFieldValidation("freelancer_id", "must be a UUID")
	}
	freelancer, err := s.queries.GetFreelancer(ctx, freelancerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taxerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get freelancer: %w", err)
	}
	if freelancer.Status == constants.FreelancerStatusExited || freelancer.Status == constants.FreelancerStatusAnonymous {
		return nil, taxerr.NewValidation("cannot open a contract for a %s freelancer", freelancer.Status)
	}

	currency := helpers.NormalizeCurrency(req.Currency)
	if !helpers.IsSupportedCurrency(currency) {
		return nil, &taxerr.InvalidCurrencyError{Currency: req.Currency}
	}
	companyCurrency := helpers.NormalizeCurrency(req.CompanyCurrency)
	if !helpers.IsSupportedCurrency(companyCurrency) {
		return nil, &taxerr.InvalidCurrencyError{Currency: req.CompanyCurrency}
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, taxerr.NewFieldValidation("start_date", "%v", err)
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return nil, taxerr.NewFieldValidation("end_date", "%v", err)
	}
	if !endDate.IsZero() && endDate.Before(startDate) {
		return nil, taxerr.NewFieldValidation("end_date", "must not be before start_date")
	}
	if req.ContractType == constants.ContractTypeFixedTerm && endDate.IsZero() {
		return nil, taxerr.NewFieldValidation("end_date", "required for fixed_term contracts")
	}
	if !endDate.IsZero() && endDate.After(startDate.AddDate(3, 0, 0)) {
		s.logger.Warn("Contract term exceeds three years",
			zap.String("freelancer_id", freelancerID.String()),
			zap.Time("start_date", startDate),
			zap.Time("end_date", endDate))
	}

	contractValue := decimal.Zero
	if req.ContractValue != "" {
		if contractValue, err = decimal.NewFromString(req.ContractValue); err != nil {
			return nil, taxerr.NewFieldValidation("contract_value", "must be a decimal")
		}
		if contractValue.IsNegative() {
			return nil, taxerr.NewFieldValidation("contract_value", "must not be negative")
		}
	}

	frequency := req.PaymentFrequency
	if frequency == "" {
		frequency = constants.PaymentFrequencyMonthly
		if len(req.Milestones) > 0 {
			frequency = constants.PaymentFrequencyMilestone
		}
	}

	milestones, err := s.validateMilestones(req.Milestones, frequency, startDate, endDate, contractValue)
	if err != nil {
		return nil, err
	}

	contract, err := s.queries.CreateContract(ctx, db.CreateContractParams{
		ContractNumber:   generateDocumentNumber("CTR", time.Now()),
		FreelancerID:     freelancerID,
		Title:            helpers.StringToNullableText(req.Title),
		CompanyCountry:   req.CompanyCountry,
		CompanyCurrency:  companyCurrency,
		ContractType:     req.ContractType,
		Status:           constants.ContractStatusDraft,
		StartDate:        helpers.TimeToDate(startDate),
		EndDate:          helpers.TimeToNullableDate(endDate),
		ContractValue:    helpers.DecimalToNumeric(contractValue),
		Currency:         currency,
		PaymentTermsDays: helpers.Int32ToNullableInt4(req.PaymentTermsDays),
		NoticePeriodDays: helpers.Int32ToNullableInt4(req.NoticePeriodDays),
		AutoRenew:        helpers.BoolToNullableBool(req.AutoRenew),
		RenewedFromID:    pgtypeUUIDNull(),
		PaymentFrequency: frequency,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	created := make([]db.Milestone, 0, len(milestones))
	for i, m := range milestones {
		milestone, err := s.queries.CreateMilestone(ctx, db.CreateMilestoneParams{
			ContractID:        contract.ID,
			Title:             m.title,
			Description:       helpers.StringToNullableText(m.description),
			Amount:            helpers.DecimalToNumeric(m.amount),
			PercentOfContract: m.percent,
			DueDate:           helpers.TimeToNullableDate(m.dueDate),
			Status:            constants.MilestoneStatusPending,
			SortOrder:         helpers.Int32ToNullableInt4(m.sortOrder(i)),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create milestone: %w", err)
		}
		created = append(created, milestone)
	}

	s.logger.Info("Created contract",
		zap.String("contract_id", contract.ID.String()),
		zap.String("contract_number", contract.ContractNumber),
		zap.String("freelancer_id", freelancerID.String()),
		zap.String("contract_type", contract.ContractType),
		zap.Int("milestones", len(created)))
	return &ContractDetail{Contract: contract, Milestones: created}, nil
}

type milestoneDraft struct {
	title       string
	description string
	amount      decimal.Decimal
	percent     pgtype.Numeric
	dueDate     time.Time
	order       int32
}

func (m milestoneDraft) sortOrder(index int) int32 {
	if m.order != 0 {
		return m.order
	}
	return int32(index + 1)
}

func (s *ContractService) validateMilestones(inputs []types.MilestoneInput, frequency string, startDate, endDate time.Time, contractValue decimal.Decimal) ([]milestoneDraft, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	drafts := make([]milestoneDraft, 0, len(inputs))
	amountTotal := decimal.Zero
	percentTotal := decimal.Zero
	percentSeen := false

	for _, input := range inputs {
		amount, err := decimal.NewFromString(input.Amount)
		if err != nil || amount.IsNegative() {
			return nil, taxerr.NewFieldValidation("milestones.amount", "must be a non-negative decimal")
		}
		amountTotal = amountTotal.Add(amount)

		draft := milestoneDraft{
			title:       input.Title,
			description: input.Description,
			amount:      helpers.RoundMoney(amount),
			percent:     pgtype.Numeric{Valid: false},
			order:       input.SortOrder,
		}

		if input.PercentOfContract != "" {
			percent, err := helpers.ParseRate(input.PercentOfContract)
			if err != nil {
				return nil, taxerr.NewFieldValidation("milestones.percent_of_contract", "%v", err)
			}
			draft.percent = helpers.DecimalToNumeric(percent)
			percentTotal = percentTotal.Add(percent)
			percentSeen = true
		}

		if input.DueDate != "" {
			dueDate, err := parseDate(input.DueDate)
			if err != nil {
				return nil, taxerr.NewFieldValidation("milestones.due_date", "%v", err)
			}
			if dueDate.Before(startDate) || (!endDate.IsZero() && dueDate.After(endDate)) {
				return nil, taxerr.NewFieldValidation("milestones.due_date", "must fall within the contract term")
			}
			draft.dueDate = dueDate
		}

		drafts = append(drafts, draft)
	}

	if frequency == constants.PaymentFrequencyMilestone && percentSeen {
		if !helpers.WithinTolerance(percentTotal, decimal.NewFromInt(100)) {
			return nil, taxerr.NewFieldValidation("milestones.percent_of_contract",
				"percentages must sum to 100, got %s", percentTotal.String())
		}
	}
	if contractValue.IsPositive() && amountTotal.Sub(contractValue).Abs().GreaterThan(helpers.ReconciliationTolerance) {
		s.logger.Warn("Milestone amounts do not match contract value",
			zap.String("milestone_total", amountTotal.String()),
			zap.String("contract_value", contractValue.String()))
	}

	return drafts, nil
}

// Get returns a contract with its milestones.
func (s *ContractService) Get(ctx context.Context, id uuid.UUID) (*ContractDetail, error) {
	contract, err := s.queries.GetContract(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taxerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	milestones, err := s.queries.ListMilestonesByContract(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}
	return &ContractDetail{Contract: contract, Milestones: milestones}, nil
}

// List returns contracts, newest first, with the total count.
func (s *ContractService) List(ctx context.Context, limit, offset int32) ([]db.Contract, int64, error) {
	contracts, err := s.queries.ListContracts(ctx, db.ListContractsParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contracts: %w", err)
	}
	total, err := s.queries.CountContracts(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count contracts: %w", err)
	}
	return contracts, total, nil
}

// ListByFreelancer returns a freelancer's contracts, newest first.
func (s *ContractService) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]db.Contract, error) {
	contracts, err := s.queries.ListContractsByFreelancer(ctx, freelancerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts by freelancer: %w", err)
	}
	return contracts, nil
}

// Activate moves a draft contract to active.
func (s *ContractService) Activate(ctx context.Context, id uuid.UUID) (*db.Contract, error) {
	contract, err := s.getContract(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract.Status != constants.ContractStatusDraft {
		return nil, taxerr.NewValidation("only draft contracts can be activated, contract is %s", contract.Status)
	}

	activated, err := s.queries.ActivateContract(ctx, db.ActivateContractParams{ID: id, Version: contract.Version})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &taxerr.ConcurrentModificationError{Entity: "contract", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to activate contract: %w", err)
	}

	s.logger.Info("Activated contract", zap.String("contract_id", id.String()))
	return &activated, nil
}

// Terminate ends an active contract early. A termination date inside the
// notice period is allowed but logged.
func (s *ContractService) Terminate(ctx context.Context, id uuid.UUID, req types.TerminateContractRequest) (*db.Contract, error) {
	contract, err := s.getContract(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract.Status != constants.ContractStatusActive {
		return nil, taxerr.NewValidation("only active contracts can be terminated, contract is %s", contract.Status)
	}

	terminationDate := time.Now()
	if req.TerminationDate != "" {
		if terminationDate, err = parseDate(req.TerminationDate); err != nil {
			return nil, taxerr.NewFieldValidation("termination_date", "%v", err)
		}
	}
	if contract.NoticePeriodDays.Valid && contract.NoticePeriodDays.Int32 > 0 {
		earliest := time.Now().AddDate(0, 0, int(contract.NoticePeriodDays.Int32))
		if terminationDate.Before(earliest) {
			s.logger.Warn("Termination inside the notice period",
				zap.String("contract_id", id.String()),
				zap.Time("termination_date", terminationDate),
				zap.Int32("notice_period_days", contract.NoticePeriodDays.Int32))
		}
	}

	terminated, err := s.queries.TerminateContract(ctx, db.TerminateContractParams{
		ID:                id,
		TerminationDate:   helpers.TimeToDate(terminationDate),
		TerminationReason: helpers.StringToNullableText(req.Reason),
		Version:           contract.Version,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &taxerr.ConcurrentModificationError{Entity: "contract", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to terminate contract: %w", err)
	}

	s.logger.Info("Terminated contract",
		zap.String("contract_id", id.String()),
		zap.String("reason", req.Reason))
	return &terminated, nil
}

// Expire moves an active contract past its end date to expired. Calling
// it on an already expired contract is a no-op.
func (s *ContractService) Expire(ctx context.Context, id uuid.UUID) (*db.Contract, error) {
	contract, err := s.getContract(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract.Status == constants.ContractStatusExpired {
		return contract, nil
	}
	if contract.Status != constants.ContractStatusActive {
		return nil, taxerr.NewValidation("only active contracts can expire, contract is %s", contract.Status)
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !contract.EndDate.Valid || !contract.EndDate.Time.Before(today) {
		return nil, taxerr.NewValidation("contract end date has not passed")
	}

	expired, err := s.queries.ExpireContract(ctx, db.ExpireContractParams{ID: id, Version: contract.Version})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &taxerr.ConcurrentModificationError{Entity: "contract", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to expire contract: %w", err)
	}

	s.logger.Info("Expired contract", zap.String("contract_id", id.String()))
	return &expired, nil
}

// Renew opens a draft successor contract and marks the predecessor
// renewed. Only active and expired contracts can be renewed; a terminated
// contract stays terminated.
func (s *ContractService) Renew(ctx context.Context, id uuid.UUID, req types.RenewContractRequest) (*db.Contract, error) {
	contract, err := s.getContract(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract.Status != constants.ContractStatusActive && contract.Status != constants.ContractStatusExpired {
		return nil, taxerr.NewValidation("only active or expired contracts can be renewed, contract is %s", contract.Status)
	}

	months := req.ExtensionMonths
	if months <= 0 {
		months = defaultRenewalMonths
	}

	successorStart := time.Now()
	if contract.EndDate.Valid {
		successorStart = contract.EndDate.Time.AddDate(0, 0, 1)
	}
	successorEnd := successorStart.AddDate(0, months, -1)

	successor, err := s.queries.CreateContract(ctx, db.CreateContractParams{
		ContractNumber:   generateDocumentNumber("CTR", time.Now()),
		FreelancerID:     contract.FreelancerID,
		Title:            contract.Title,
		CompanyCountry:   contract.CompanyCountry,
		CompanyCurrency:  contract.CompanyCurrency,
		ContractType:     contract.ContractType,
		Status:           constants.ContractStatusDraft,
		StartDate:        helpers.TimeToDate(successorStart),
		EndDate:          helpers.TimeToDate(successorEnd),
		ContractValue:    contract.ContractValue,
		Currency:         contract.Currency,
		PaymentTermsDays: contract.PaymentTermsDays,
		NoticePeriodDays: contract.NoticePeriodDays,
		AutoRenew:        contract.AutoRenew,
		RenewedFromID:    helpers.UUIDToPgUUID(contract.ID),
		PaymentFrequency: contract.PaymentFrequency,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create renewal contract: %w", err)
	}

	if _, err := s.queries.MarkContractRenewed(ctx, db.MarkContractRenewedParams{
		ID:          contract.ID,
		RenewedToID: helpers.UUIDToPgUUID(successor.ID),
		Version:     contract.Version,
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &taxerr.ConcurrentModificationError{Entity: "contract", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to mark contract renewed: %w", err)
	}

	s.logger.Info("Renewed contract",
		zap.String("contract_id", id.String()),
		zap.String("successor_id", successor.ID.String()),
		zap.Int("extension_months", months))
	return &successor, nil
}

// Summary aggregates the financial position of one contract.
func (s *ContractService) Summary(ctx context.Context, id uuid.UUID) (*types.ContractSummary, error) {
	contract, err := s.getContract(ctx, id)
	if err != nil {
		return nil, err
	}
	totals, err := s.queries.GetContractPaymentTotals(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get contract payment totals: %w", err)
	}
	milestones, err := s.queries.ListMilestonesByContract(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}

	contractValue := helpers.NumericToDecimal(contract.ContractValue)
	totalGross := helpers.NumericToDecimal(totals.TotalGross)
	totalNet := helpers.NumericToDecimal(totals.TotalNet)
	totalPaid := helpers.NumericToDecimal(totals.TotalPaid)

	completed := 0
	for _, m := range milestones {
		switch m.Status {
		case constants.MilestoneStatusCompleted, constants.MilestoneStatusApproved, constants.MilestoneStatusPaid:
			completed++
		}
	}
	completion := decimal.Zero
	if len(milestones) > 0 {
		completion = decimal.NewFromInt(int64(completed)).
			Div(decimal.NewFromInt(int64(len(milestones)))).
			Mul(decimal.NewFromInt(100)).Round(1)
	}

	daysRemaining := 0
	if contract.EndDate.Valid {
		if remaining := int(time.Until(contract.EndDate.Time).Hours() / 24); remaining > 0 {
			daysRemaining = remaining
		}
	}

	remainingValue := contractValue.Sub(totalGross)
	if remainingValue.IsNegative() {
		remainingValue = decimal.Zero
	}

	return &types.ContractSummary{
		ContractID:          contract.ID.String(),
		ContractNumber:      contract.ContractNumber,
		Status:              contract.Status,
		ContractValue:       contractValue,
		Currency:            contract.Currency,
		TotalInvoiced:       totalGross,
		TotalPaid:           totalPaid,
		TotalWithheld:       helpers.NumericToDecimal(totals.TotalWithheld),
		Outstanding:         helpers.RoundMoney(totalNet.Sub(totalPaid)),
		RemainingValue:      helpers.RoundMoney(remainingValue),
		PendingPayments:     totals.PendingCount,
		PaymentCount:        totals.PaymentCount,
		MilestonesTotal:     len(milestones),
		MilestonesCompleted: completed,
		CompletionPercent:   completion,
		DaysRemaining:       daysRemaining,
	}, nil
}

// ExpiringWithin returns active contracts ending inside the window.
func (s *ContractService) ExpiringWithin(ctx context.Context, days int) ([]db.Contract, error) {
	if days <= 0 {
		days = 30
	}
	now := time.Now()
	contracts, err := s.queries.ListContractsExpiringBetween(ctx, db.ListContractsExpiringBetweenParams{
		StartDate: helpers.TimeToDate(now),
		EndDate:   helpers.TimeToDate(now.AddDate(0, 0, days)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring contracts: %w", err)
	}
	return contracts, nil
}

// milestoneTransitions maps each milestone status to the statuses it may
// move to next.
var milestoneTransitions = map[string][]string{
	constants.MilestoneStatusPending:    {constants.MilestoneStatusInProgress, constants.MilestoneStatusCompleted},
	constants.MilestoneStatusInProgress: {constants.MilestoneStatusCompleted},
	constants.MilestoneStatusCompleted:  {constants.MilestoneStatusApproved},
	constants.MilestoneStatusApproved:   {constants.MilestoneStatusPaid},
	constants.MilestoneStatusPaid:       {},
}

// UpdateMilestoneStatus moves a milestone through its lifecycle, stamping
// the completion, approval, and payment times as it goes.
func (s *ContractService) UpdateMilestoneStatus(ctx context.Context, contractID, milestoneID uuid.UUID, status string) (*db.Milestone, error) {
	milestone, err := s.queries.GetMilestone(ctx, milestoneID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taxerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get milestone: %w", err)
	}
	if milestone.ContractID != contractID {
		return nil, taxerr.NewValidation("milestone belongs to another contract")
	}

	allowed := false
	for _, next := range milestoneTransitions[milestone.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, taxerr.NewValidation("milestone cannot move from %s to %s", milestone.Status, status)
	}

	now := helpers.TimeToNullableTimestamptz(time.Now())
	params := db.UpdateMilestoneStatusParams{
		ID:          milestoneID,
		Status:      status,
		CompletedAt: milestone.CompletedAt,
		ApprovedAt:  milestone.ApprovedAt,
		PaidAt:      milestone.PaidAt,
	}
	switch status {
	case constants.MilestoneStatusCompleted:
		params.CompletedAt = now
	case constants.MilestoneStatusApproved:
		params.ApprovedAt = now
	case constants.MilestoneStatusPaid:
		params.PaidAt = now
	}

	updated, err := s.queries.UpdateMilestoneStatus(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to update milestone status: %w", err)
	}

	s.logger.Info("Updated milestone status",
		zap.String("milestone_id", milestoneID.String()),
		zap.String("from", milestone.Status),
		zap.String("to", status))
	return &updated, nil
}

func (s *ContractService) getContract(ctx context.Context, id uuid.UUID) (*db.Contract, error) {
	contract, err := s.queries.GetContract(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taxerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	return &contract, nil
}
