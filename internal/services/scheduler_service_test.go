package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hrplatform/freelancer-api/internal/constants"
	"github.com/hrplatform/freelancer-api/internal/db"
	"github.com/hrplatform/freelancer-api/internal/helpers"
	"github.com/hrplatform/freelancer-api/internal/mocks"
	"github.com/hrplatform/freelancer-api/internal/services"
)

type schedulerFixture struct {
	querier *mocks.MockQuerier
	sender  *mocks.MockEmailSender
	service *services.SchedulerService
}

func newSchedulerFixture(t *testing.T, withEmail bool) *schedulerFixture {
	ctrl := gomock.NewController(t)
	querier := mocks.NewMockQuerier(ctrl)
	sink := mocks.NewMockAccountingSink(ctrl)
	rates := services.NewExchangeRateService(querier, nil)
	payments := services.NewPaymentService(querier, newCalculator(querier), sink, nil)

	var sender *mocks.MockEmailSender
	var email *services.EmailService
	if withEmail {
		sender = mocks.NewMockEmailSender(ctrl)
		email = services.NewEmailService(sender, "HR Platform")
	}

	return &schedulerFixture{
		querier: querier,
		sender:  sender,
		service: services.NewSchedulerService(querier, rates, payments, email, "EUR"),
	}
}

func TestSchedulerService_ExpireContracts(t *testing.T) {
	f := newSchedulerFixture(t, false)

	f.querier.EXPECT().ExpireContracts(gomock.Any(), gomock.Any()).
		Return([]db.Contract{eurContract("NL"), eurContract("DE")}, nil)

	require.NoError(t, f.service.ExpireContracts(context.Background()))
}

func TestSchedulerService_NotifyDueMilestones_NoSenderConfigured(t *testing.T) {
	f := newSchedulerFixture(t, false)

	require.NoError(t, f.service.NotifyDueMilestones(context.Background()))
}

func TestSchedulerService_NotifyDueMilestones_SkipsAlreadyNotified(t *testing.T) {
	f := newSchedulerFixture(t, true)

	milestone := db.Milestone{
		ID:         uuid.New(),
		ContractID: uuid.New(),
		Title:      "Design phase",
		Status:     constants.MilestoneStatusPending,
	}
	f.querier.EXPECT().ListMilestonesDueBetween(gomock.Any(), gomock.Any()).
		Return([]db.Milestone{milestone}, nil)
	f.querier.EXPECT().GetNotificationLogByEntityAndType(gomock.Any(), db.GetNotificationLogByEntityAndTypeParams{
		EntityID:         milestone.ID,
		NotificationType: constants.NotificationMilestoneDue,
	}).Return(db.NotificationLog{ID: uuid.New()}, nil)

	require.NoError(t, f.service.NotifyDueMilestones(context.Background()))
}

func TestSchedulerService_NotifyDueMilestones_SendsAndLogs(t *testing.T) {
	f := newSchedulerFixture(t, true)

	freelancer := euroFreelancer("DE", true)
	contract := eurContract("NL")
	contract.FreelancerID = freelancer.ID
	milestone := db.Milestone{
		ID:         uuid.New(),
		ContractID: contract.ID,
		Title:      "Delivery",
		Status:     constants.MilestoneStatusInProgress,
	}

	f.querier.EXPECT().ListMilestonesDueBetween(gomock.Any(), gomock.Any()).
		Return([]db.Milestone{milestone}, nil)
	f.querier.EXPECT().GetNotificationLogByEntityAndType(gomock.Any(), gomock.Any()).
		Return(db.NotificationLog{}, pgx.ErrNoRows)
	f.querier.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
	f.querier.EXPECT().GetFreelancer(gomock.Any(), freelancer.ID).Return(freelancer, nil)
	f.sender.EXPECT().Send(gomock.Any(), freelancer.Email, gomock.Any(), gomock.Any()).
		Return("msg-1", nil)
	f.querier.EXPECT().CreateNotificationLog(gomock.Any(), db.CreateNotificationLogParams{
		EntityType:       constants.EntityTypeMilestone,
		EntityID:         milestone.ID,
		NotificationType: constants.NotificationMilestoneDue,
		Recipient:        helpers.StringToNullableText(freelancer.Email),
	}).Return(db.NotificationLog{ID: uuid.New()}, nil)

	require.NoError(t, f.service.NotifyDueMilestones(context.Background()))
}

func TestSchedulerService_NotifyDueMilestones_SendFailureContinues(t *testing.T) {
	f := newSchedulerFixture(t, true)

	freelancer := euroFreelancer("DE", true)
	contract := eurContract("NL")
	contract.FreelancerID = freelancer.ID
	milestone := db.Milestone{
		ID:         uuid.New(),
		ContractID: contract.ID,
		Title:      "Delivery",
		Status:     constants.MilestoneStatusPending,
	}

	f.querier.EXPECT().ListMilestonesDueBetween(gomock.Any(), gomock.Any()).
		Return([]db.Milestone{milestone}, nil)
	f.querier.EXPECT().GetNotificationLogByEntityAndType(gomock.Any(), gomock.Any()).
		Return(db.NotificationLog{}, pgx.ErrNoRows)
	f.querier.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
	f.querier.EXPECT().GetFreelancer(gomock.Any(), freelancer.ID).Return(freelancer, nil)
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("resend unavailable"))

	require.NoError(t, f.service.NotifyDueMilestones(context.Background()))
}

func TestSchedulerService_RunDaily_ContinuesPastFailures(t *testing.T) {
	f := newSchedulerFixture(t, false)

	f.querier.EXPECT().ExpireContracts(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))
	f.querier.EXPECT().MarkPaymentsOverdue(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.querier.EXPECT().ListPendingAccountingEntries(gomock.Any(), int32(100)).Return(nil, nil)

	err := f.service.RunDaily(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh_rates")
}
