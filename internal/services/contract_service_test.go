package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

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
	"github.com/hrplatform/freelancer-api/internal/taxerr"
	"github.com/hrplatform/freelancer-api/internal/types"
)

func activeContract(freelancerID uuid.UUID) db.Contract {
	return db.Contract{
		ID:               uuid.New(),
		ContractNumber:   "CTR-2026-11AA22",
		FreelancerID:     freelancerID,
		CompanyCountry:   "NL",
		CompanyCurrency:  "EUR",
		ContractType:     constants.ContractTypeFixedTerm,
		PaymentFrequency: constants.PaymentFrequencyMonthly,
		Status:           constants.ContractStatusActive,
		StartDate:        helpers.TimeToDate(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:          helpers.TimeToDate(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)),
		Currency:         "EUR",
		Version:          2,
	}
}

func TestContractService_Create_MilestonePercentagesMustSum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewContractService(mockQuerier)

	freelancer := euroFreelancer("DE", true)
	mockQuerier.EXPECT().GetFreelancer(gomock.Any(), freelancer.ID).Return(freelancer, nil)

	_, err := service.Create(context.Background(), types.CreateContractRequest{
		FreelancerID:     freelancer.ID.String(),
		CompanyCountry:   "NL",
		CompanyCurrency:  "EUR",
		ContractType:     constants.ContractTypeProjectBased,
		PaymentFrequency: constants.PaymentFrequencyMilestone,
		Currency:         "EUR",
		StartDate:        "2026-01-01",
		EndDate:          "2026-06-30",
		ContractValue:    "10000",
		Milestones: []types.MilestoneInput{
			{Title: "Discovery", Amount: "4000", PercentOfContract: "40"},
			{Title: "Build", Amount: "6000", PercentOfContract: "50"},
		},
	})
	require.Error(t, err)
	assert.True(t, taxerr.IsValidation(err))
	assert.Contains(t, err.Error(), "percentages must sum to 100")
}

func TestContractService_Create_RefusesExitedFreelancer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewContractService(mockQuerier)

	freelancer := euroFreelancer("DE", true)
	freelancer.Status = constants.FreelancerStatusExited
	mockQuerier.EXPECT().GetFreelancer(gomock.Any(), freelancer.ID).Return(freelancer, nil)

	_, err := service.Create(context.Background(), types.CreateContractRequest{
		FreelancerID:    freelancer.ID.String(),
		CompanyCountry:  "NL",
		CompanyCurrency: "EUR",
		ContractType:    constants.ContractTypeProjectBased,
		Currency:        "EUR",
		StartDate:       "2026-01-01",
	})
	require.Error(t, err)
	assert.True(t, taxerr.IsValidation(err))
}

func TestContractService_Create_FixedTermNeedsEndDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewContractService(mockQuerier)

	freelancer := euroFreelancer("DE", true)
	mockQuerier.EXPECT().GetFreelancer(gomock.Any(), freelancer.ID).Return(freelancer, nil)

	_, err := service.Create(context.Background(), types.CreateContractRequest{
		FreelancerID:    freelancer.ID.String(),
		CompanyCountry:  "NL",
		CompanyCurrency: "EUR",
		ContractType:    constants.ContractTypeFixedTerm,
		Currency:        "EUR",
		StartDate:       "2026-01-01",
	})
	require.Error(t, err)
	assert.True(t, taxerr.IsValidation(err))
	assert.Contains(t, err.Error(), "end_date")
}

func TestContractService_Activate_OnlyFromDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewContractService(mockQuerier)

	contract := activeContract(uuid.New())
	mockQuerier.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)

	_, err := service.Activate(context.Background(), contract.ID)
	require.Error(t, err)
	assert.True(t, taxerr.IsValidation(err))
	assert.Contains(t, err.Error(), "only draft contracts")
}

func TestContractService_Terminate_VersionConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewContractService(mockQuerier)

	contract := activeContract(uuid.New())
	mockQuerier.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
	mockQuerier.EXPECT().TerminateContract(gomock.Any(), gomock.Any()).Return(db.Contract{}, pgx.ErrNoRows)

	_, err := service.Terminate(context.Background(), contract.ID, types.TerminateContractRequest{
		Reason:          "project cancelled",
		TerminationDate: "2026-09-30",
	})
	require.Error(t, err)
	var conflict *taxerr.ConcurrentModificationError
	assert.True(t, errors.As(err, &conflict))
}

func TestContractService_Renew_TerminatedStaysTerminated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewContractService(mockQuerier)

	contract := activeContract(uuid.New())
	contract.Status = constants.ContractStatusTerminated
	mockQuerier.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)

	_, err := service.Renew(context.Background(), contract.ID, types.RenewContractRequest{})
	require.Error(t, err)
	assert.True(t, taxerr.IsValidation(err))
	assert.Contains(t, err.Error(), "only active or expired contracts can be renewed")
}

func TestContractService_Renew_SuccessorStartsAfterPredecessor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewContractService(mockQuerier)

	contract := activeContract(uuid.New())
	contract.Status = constants.ContractStatusExpired
	mockQuerier.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)

	var successorParams db.CreateContractParams
	successor := contract
	successor.ID = uuid.New()
	successor.Status = constants.ContractStatusDraft
	mockQuerier.EXPECT().CreateContract(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params db.CreateContractParams) (db.Contract, error) {
			successorParams = params
			return successor, nil
		})
	mockQuerier.EXPECT().MarkContractRenewed(gomock.Any(), db.MarkContractRenewedParams{
		ID:          contract.ID,
		RenewedToID: helpers.UUIDToPgUUID(successor.ID),
		Version:     contract.Version,
	}).Return(contract, nil)

	result, err := service.Renew(context.Background(), contract.ID, types.RenewContractRequest{ExtensionMonths: 6})
	require.NoError(t, err)
	assert.Equal(t, successor.ID, result.ID)

	wantStart := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, wantStart, successorParams.StartDate.Time)
	assert.Equal(t, wantStart.AddDate(0, 6, -1), successorParams.EndDate.Time)
	assert.Equal(t, constants.ContractStatusDraft, successorParams.Status)
	assert.Equal(t, helpers.UUIDToPgUUID(contract.ID), successorParams.RenewedFromID)
}

func TestContractService_Expire_OnlyFromActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewContractService(mockQuerier)

	contract := activeContract(uuid.New())
	contract.Status = constants.ContractStatusDraft
	mockQuerier.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)

	_, err := service.Expire(context.Background(), contract.ID)
	require.Error(t, err)
	assert.True(t, taxerr.IsValidation(err))
}

func TestContractService_Expire_AlreadyExpiredIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewContractService(mockQuerier)

	contract := activeContract(uuid.New())
	contract.Status = constants.ContractStatusExpired
	mockQuerier.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)

	result, err := service.Expire(context.Background(), contract.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.ContractStatusExpired, result.Status)
	assert.Equal(t, contract.Version, result.Version)
}

func TestContractService_Expire_EndDateNotPassed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewContractService(mockQuerier)

	contract := activeContract(uuid.New())
	contract.EndDate = helpers.TimeToDate(time.Now().AddDate(0, 0, 30))
	mockQuerier.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)

	_, err := service.Expire(context.Background(), contract.ID)
	require.Error(t, err)
	assert.True(t, taxerr.IsValidation(err))
	assert.Contains(t, err.Error(), "end date has not passed")
}

func TestContractService_Expire_PastEndDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewContractService(mockQuerier)

	contract := activeContract(uuid.New())
	contract.EndDate = helpers.TimeToDate(time.Now().AddDate(0, 0, -1))
	mockQuerier.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)

	expired := contract
	expired.Status = constants.ContractStatusExpired
	expired.Version = contract.Version + 1
	mockQuerier.EXPECT().ExpireContract(gomock.Any(), db.ExpireContractParams{
		ID:      contract.ID,
		Version: contract.Version,
	}).Return(expired, nil)

	result, err := service.Expire(context.Background(), contract.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.ContractStatusExpired, result.Status)
}

func TestContractService_UpdateMilestoneStatus(t *testing.T) {
	contractID := uuid.New()
	milestoneID := uuid.New()

	tests := []struct {
		name        string
		current     string
		target      string
		wantErr     bool
		errorString string
	}{
		{
			name:    "pending to in_progress",
			current: constants.MilestoneStatusPending,
			target:  constants.MilestoneStatusInProgress,
		},
		{
			name:    "completed to approved",
			current: constants.MilestoneStatusCompleted,
			target:  constants.MilestoneStatusApproved,
		},
		{
			name:        "paid is terminal",
			current:     constants.MilestoneStatusPaid,
			target:      constants.MilestoneStatusApproved,
			wantErr:     true,
			errorString: "milestone cannot move from paid to approved",
		},
		{
			name:        "cannot skip back to pending",
			current:     constants.MilestoneStatusInProgress,
			target:      constants.MilestoneStatusPending,
			wantErr:     true,
			errorString: "milestone cannot move from in_progress to pending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			service := services.NewContractService(mockQuerier)

			milestone := db.Milestone{
				ID:         milestoneID,
				ContractID: contractID,
				Title:      "Delivery",
				Status:     tt.current,
			}
			mockQuerier.EXPECT().GetMilestone(gomock.Any(), milestoneID).Return(milestone, nil)

			if !tt.wantErr {
				updated := milestone
				updated.Status = tt.target
				mockQuerier.EXPECT().UpdateMilestoneStatus(gomock.Any(), gomock.Any()).Return(updated, nil)
			}

			result, err := service.UpdateMilestoneStatus(context.Background(), contractID, milestoneID, tt.target)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, result.Status)
		})
	}
}

func TestContractService_UpdateMilestoneStatus_WrongContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewContractService(mockQuerier)

	milestone := db.Milestone{
		ID:         uuid.New(),
		ContractID: uuid.New(),
		Status:     constants.MilestoneStatusPending,
	}
	mockQuerier.EXPECT().GetMilestone(gomock.Any(), milestone.ID).Return(milestone, nil)

	_, err := service.UpdateMilestoneStatus(context.Background(), uuid.New(), milestone.ID, constants.MilestoneStatusInProgress)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "belongs to another contract")
}
