package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/hrplatform/freelancer-api/internal/constants"
	"github.com/hrplatform/freelancer-api/internal/db"
	"github.com/hrplatform/freelancer-api/internal/helpers"
	"github.com/hrplatform/freelancer-api/internal/logger"
)

// expiryNoticeDays is the lookahead window for contract expiry warnings.
const expiryNoticeDays = 7

// SchedulerService runs the periodic housekeeping: contract expiry,
// overdue payment flagging, expiry and milestone reminders, exchange rate
// refresh, and retrying accounting entries that failed to dispatch.
type SchedulerService struct {
	queries      db.Querier
	rates        *ExchangeRateService
	payments     *PaymentService
	email        *EmailService
	baseCurrency string
	logger       *zap.Logger
}

// NewSchedulerService creates a new scheduler service
func NewSchedulerService(queries db.Querier, rates *ExchangeRateService, payments *PaymentService, email *EmailService, baseCurrency string) *SchedulerService {
	if baseCurrency == "" {
		baseCurrency = "EUR"
	}
	return &SchedulerService{
		queries:      queries,
		rates:        rates,
		payments:     payments,
		email:        email,
		baseCurrency: baseCurrency,
		logger:       logger.Log,
	}
}

// RunDaily executes every daily task, continuing past individual failures
// so one broken dependency cannot starve the rest.
func (s *SchedulerService) RunDaily(ctx context.Context) error {
	var firstErr error
	record := func(task string, err error) {
		if err == nil {
			return
		}
		s.logger.Error("Scheduled task failed", zap.String("task", task), zap.Error(err))
		if firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", task, err)
		}
	}

	record("refresh_rates", s.RefreshRates(ctx))
	record("expire_contracts", s.ExpireContracts(ctx))
	record("flag_overdue_payments", s.FlagOverduePayments(ctx))
	record("notify_expiring_contracts", s.NotifyExpiringContracts(ctx))
	record("notify_due_milestones", s.NotifyDueMilestones(ctx))
	record("retry_accounting", s.RetryAccountingDispatch(ctx))
	return firstErr
}

// RefreshRates pulls the latest rates for the base currency.
func (s *SchedulerService) RefreshRates(ctx context.Context) error {
	written, err := s.rates.RefreshLatest(ctx, s.baseCurrency)
	if err != nil {
		return err
	}
	s.logger.Info("Rate refresh complete", zap.Int("written", written))
	return nil
}

// ExpireContracts moves every active contract whose end date has passed to
// expired.
func (s *SchedulerService) ExpireContracts(ctx context.Context) error {
	expired, err := s.queries.ExpireContracts(ctx, helpers.TimeToDate(time.Now()))
	if err != nil {
		return fmt.Errorf("failed to expire contracts: %w", err)
	}
	if len(expired) > 0 {
		s.logger.Info("Expired contracts", zap.Int("count", len(expired)))
	}
	return nil
}

// FlagOverduePayments marks unpaid payments past their due date.
func (s *SchedulerService) FlagOverduePayments(ctx context.Context) error {
	_, err := s.payments.MarkOverdue(ctx, time.Now())
	return err
}

// NotifyExpiringContracts warns freelancers whose active contracts end
// within the notice window. The notification log keeps each warning to
// one send per contract.
func (s *SchedulerService) NotifyExpiringContracts(ctx context.Context) error {
	if s.email == nil {
		return nil
	}

	now := time.Now()
	contracts, err := s.queries.ListContractsExpiringBetween(ctx, db.ListContractsExpiringBetweenParams{
		StartDate: helpers.TimeToDate(now),
		EndDate:   helpers.TimeToDate(now.AddDate(0, 0, expiryNoticeDays)),
	})
	if err != nil {
		return fmt.Errorf("failed to list expiring contracts: %w", err)
	}

	for _, contract := range contracts {
		if _, err := s.queries.GetNotificationLogByEntityAndType(ctx, db.GetNotificationLogByEntityAndTypeParams{
			EntityID:         contract.ID,
			NotificationType: constants.NotificationContractExpiring,
		}); err == nil {
			continue
		} else if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error("Failed to check notification log", zap.Error(err))
			continue
		}

		freelancer, err := s.queries.GetFreelancer(ctx, contract.FreelancerID)
		if err != nil {
			s.logger.Error("Failed to load freelancer for expiry notice",
				zap.String("contract_id", contract.ID.String()),
				zap.Error(err))
			continue
		}
		if err := s.email.SendContractExpiring(ctx, freelancer, contract); err != nil {
			s.logger.Error("Failed to send expiry notice",
				zap.String("contract_id", contract.ID.String()),
				zap.Error(err))
			continue
		}
		if _, err := s.queries.CreateNotificationLog(ctx, db.CreateNotificationLogParams{
			EntityType:       constants.EntityTypeContract,
			EntityID:         contract.ID,
			NotificationType: constants.NotificationContractExpiring,
			Recipient:        helpers.StringToNullableText(freelancer.Email),
		}); err != nil {
			s.logger.Error("Failed to record expiry notice", zap.Error(err))
		}
	}
	return nil
}

// NotifyDueMilestones reminds freelancers about open milestones due within
// the notice window, one reminder per milestone.
func (s *SchedulerService) NotifyDueMilestones(ctx context.Context) error {
	if s.email == nil {
		return nil
	}

	now := time.Now()
	milestones, err := s.queries.ListMilestonesDueBetween(ctx, db.ListMilestonesDueBetweenParams{
		StartDate: helpers.TimeToDate(now),
		EndDate:   helpers.TimeToDate(now.AddDate(0, 0, expiryNoticeDays)),
	})
	if err != nil {
		return fmt.Errorf("failed to list due milestones: %w", err)
	}

	for _, milestone := range milestones {
		if _, err := s.queries.GetNotificationLogByEntityAndType(ctx, db.GetNotificationLogByEntityAndTypeParams{
			EntityID:         milestone.ID,
			NotificationType: constants.NotificationMilestoneDue,
		}); err == nil {
			continue
		} else if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error("Failed to check notification log", zap.Error(err))
			continue
		}

		contract, err := s.queries.GetContract(ctx, milestone.ContractID)
		if err != nil {
			s.logger.Error("Failed to load contract for milestone reminder",
				zap.String("milestone_id", milestone.ID.String()),
				zap.Error(err))
			continue
		}
		freelancer, err := s.queries.GetFreelancer(ctx, contract.FreelancerID)
		if err != nil {
			s.logger.Error("Failed to load freelancer for milestone reminder",
				zap.String("milestone_id", milestone.ID.String()),
				zap.Error(err))
			continue
		}
		if err := s.email.SendMilestoneDue(ctx, freelancer, contract, milestone); err != nil {
			s.logger.Error("Failed to send milestone reminder",
				zap.String("milestone_id", milestone.ID.String()),
				zap.Error(err))
			continue
		}
		if _, err := s.queries.CreateNotificationLog(ctx, db.CreateNotificationLogParams{
			EntityType:       constants.EntityTypeMilestone,
			EntityID:         milestone.ID,
			NotificationType: constants.NotificationMilestoneDue,
			Recipient:        helpers.StringToNullableText(freelancer.Email),
		}); err != nil {
			s.logger.Error("Failed to record milestone reminder", zap.Error(err))
		}
	}
	return nil
}

// RetryAccountingDispatch re-sends accounting entries still pending after
// a failed or interrupted dispatch.
func (s *SchedulerService) RetryAccountingDispatch(ctx context.Context) error {
	entries, err := s.queries.ListPendingAccountingEntries(ctx, 100)
	if err != nil {
		return fmt.Errorf("failed to list pending accounting entries: %w", err)
	}

	for _, entry := range entries {
		payment, err := s.queries.GetPayment(ctx, entry.PaymentID)
		if err != nil {
			s.logger.Error("Failed to load payment for accounting retry",
				zap.String("entry_id", entry.ID.String()),
				zap.Error(err))
			continue
		}
		s.payments.DispatchEntry(ctx, entry, payment)
	}

	if len(entries) > 0 {
		s.logger.Info("Retried accounting dispatch", zap.Int("entries", len(entries)))
	}
	return nil
}
