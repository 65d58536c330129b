package services_test

import (
	"context"
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
	"github.com/hrplatform/freelancer-api/internal/taxerr"
	"github.com/hrplatform/freelancer-api/internal/types"
)

func TestFreelancerService_Create(t *testing.T) {
	tests := []struct {
		name        string
		req         types.CreateFreelancerRequest
		setupMocks  func(m *mocks.MockQuerier)
		wantErr     bool
		errorString string
	}{
		{
			name: "valid German freelancer",
			req: types.CreateFreelancerRequest{
				FullName:        "Anna Schmidt",
				Email:           "anna@example.com",
				Country:         "de",
				DefaultCurrency: "eur",
				VATNumber:       "DE123456789",
				VATRegistered:   true,
				DefaultRate:     "95",
				RateUnit:        constants.RateUnitHourly,
			},
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetFreelancerByEmail(gomock.Any(), "anna@example.com").Return(db.Freelancer{}, pgx.ErrNoRows)
				m.EXPECT().CreateFreelancer(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, params db.CreateFreelancerParams) (db.Freelancer, error) {
						assert.Equal(t, "DE", params.Country)
						assert.Equal(t, "EUR", params.DefaultCurrency)
						assert.Equal(t, "DE123456789", params.VatNumber.String)
						return db.Freelancer{ID: uuid.New(), FullName: params.FullName, Country: params.Country}, nil
					})
			},
		},
		{
			name: "duplicate email",
			req: types.CreateFreelancerRequest{
				FullName:        "Anna Schmidt",
				Email:           "anna@example.com",
				Country:         "DE",
				DefaultCurrency: "EUR",
			},
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetFreelancerByEmail(gomock.Any(), "anna@example.com").Return(db.Freelancer{ID: uuid.New()}, nil)
			},
			wantErr:     true,
			errorString: "already registered",
		},
		{
			name: "unsupported currency",
			req: types.CreateFreelancerRequest{
				FullName:        "Anna Schmidt",
				Email:           "anna@example.com",
				Country:         "DE",
				DefaultCurrency: "XTS",
			},
			wantErr:     true,
			errorString: "XTS",
		},
		{
			name: "registered without VAT number",
			req: types.CreateFreelancerRequest{
				FullName:        "Anna Schmidt",
				Email:           "anna@example.com",
				Country:         "DE",
				DefaultCurrency: "EUR",
				VATRegistered:   true,
			},
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetFreelancerByEmail(gomock.Any(), "anna@example.com").Return(db.Freelancer{}, pgx.ErrNoRows)
			},
			wantErr:     true,
			errorString: "required when vat_registered",
		},
		{
			name: "malformed VAT number",
			req: types.CreateFreelancerRequest{
				FullName:        "Anna Schmidt",
				Email:           "anna@example.com",
				Country:         "DE",
				DefaultCurrency: "EUR",
				VATNumber:       "DE12",
			},
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetFreelancerByEmail(gomock.Any(), "anna@example.com").Return(db.Freelancer{}, pgx.ErrNoRows)
			},
			wantErr:     true,
			errorString: "vat_number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(mockQuerier)
			}
			service := services.NewFreelancerService(mockQuerier, nil)

			result, err := service.Create(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorString)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, result)
		})
	}
}

func TestFreelancerService_ValidateVAT_NilValidatorIsAdvisory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewFreelancerService(mockQuerier, nil)

	freelancer := euroFreelancer("DE", false)
	freelancer.VatNumber = helpers.StringToNullableText("DE123456789")
	mockQuerier.EXPECT().GetFreelancer(gomock.Any(), freelancer.ID).Return(freelancer, nil)

	result, err := service.ValidateVAT(context.Background(), freelancer.ID)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.True(t, result.Advisory)
}

func TestFreelancerService_ValidateVAT_RegistryTimeoutDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	validator := mocks.NewMockVATRegistryValidator(ctrl)
	service := services.NewFreelancerService(mockQuerier, validator)

	freelancer := euroFreelancer("DE", false)
	freelancer.VatNumber = helpers.StringToNullableText("DE123456789")
	mockQuerier.EXPECT().GetFreelancer(gomock.Any(), freelancer.ID).Return(freelancer, nil)
	validator.EXPECT().CheckVAT(gomock.Any(), "DE", "DE123456789").
		Return(nil, &taxerr.ExternalServiceTimeoutError{Service: "vies", Err: context.DeadlineExceeded})

	result, err := service.ValidateVAT(context.Background(), freelancer.ID)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.True(t, result.Advisory)
	assert.Contains(t, result.Message, "registry did not respond")
}

func TestFreelancerService_ValidateVAT_RecordsConfirmedRegistration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	validator := mocks.NewMockVATRegistryValidator(ctrl)
	service := services.NewFreelancerService(mockQuerier, validator)

	freelancer := euroFreelancer("DE", false)
	freelancer.VatNumber = helpers.StringToNullableText("DE123456789")
	mockQuerier.EXPECT().GetFreelancer(gomock.Any(), freelancer.ID).Return(freelancer, nil)
	validator.EXPECT().CheckVAT(gomock.Any(), "DE", "DE123456789").Return(&types.VATValidationResult{
		CountryCode: "DE",
		VATNumber:   "DE123456789",
		Valid:       true,
		Name:        "Anna Schmidt IT Consulting",
	}, nil)
	mockQuerier.EXPECT().UpdateFreelancerVATStatus(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params db.UpdateFreelancerVATStatusParams) (db.Freelancer, error) {
			assert.True(t, params.VatRegistered.Bool)
			assert.True(t, params.VatValidated.Bool)
			return freelancer, nil
		})

	result, err := service.ValidateVAT(context.Background(), freelancer.ID)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.False(t, result.Advisory)
}

func TestFreelancerService_ValidateVAT_NoNumberOnFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewFreelancerService(mockQuerier, nil)

	freelancer := euroFreelancer("DE", false)
	mockQuerier.EXPECT().GetFreelancer(gomock.Any(), freelancer.ID).Return(freelancer, nil)

	_, err := service.ValidateVAT(context.Background(), freelancer.ID)
	require.Error(t, err)
	assert.True(t, taxerr.IsValidation(err))
}

func TestFreelancerService_Anonymize(t *testing.T) {
	tests := []struct {
		name        string
		contracts   []db.Contract
		wantErr     bool
		errorString string
	}{
		{
			name: "no open contracts",
			contracts: []db.Contract{
				{Status: constants.ContractStatusTerminated},
				{Status: constants.ContractStatusExpired},
			},
		},
		{
			name: "active contract blocks erasure",
			contracts: []db.Contract{
				{Status: constants.ContractStatusActive},
			},
			wantErr:     true,
			errorString: "open contracts",
		},
		{
			name: "draft contract blocks erasure",
			contracts: []db.Contract{
				{Status: constants.ContractStatusDraft},
			},
			wantErr:     true,
			errorString: "open contracts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			service := services.NewFreelancerService(mockQuerier, nil)

			freelancer := euroFreelancer("DE", false)
			mockQuerier.EXPECT().GetFreelancer(gomock.Any(), freelancer.ID).Return(freelancer, nil)
			mockQuerier.EXPECT().ListContractsByFreelancer(gomock.Any(), freelancer.ID).Return(tt.contracts, nil)

			if !tt.wantErr {
				mockQuerier.EXPECT().AnonymizeFreelancer(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, params db.AnonymizeFreelancerParams) (db.Freelancer, error) {
						assert.Equal(t, "Anonymized Freelancer", params.FullName)
						assert.Contains(t, params.Email, "@redacted.invalid")
						anonymized := freelancer
						anonymized.FullName = params.FullName
						anonymized.Email = params.Email
						anonymized.Status = constants.FreelancerStatusAnonymous
						return anonymized, nil
					})
			}

			result, err := service.Anonymize(context.Background(), freelancer.ID)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, constants.FreelancerStatusAnonymous, result.Status)
		})
	}
}

func TestFreelancerService_Anonymize_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewFreelancerService(mockQuerier, nil)

	freelancer := euroFreelancer("DE", false)
	freelancer.Status = constants.FreelancerStatusAnonymous
	mockQuerier.EXPECT().GetFreelancer(gomock.Any(), freelancer.ID).Return(freelancer, nil)

	result, err := service.Anonymize(context.Background(), freelancer.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.FreelancerStatusAnonymous, result.Status)
}

func TestFreelancerService_GrantConsent_RevokeOnFalse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewFreelancerService(mockQuerier, nil)

	freelancer := euroFreelancer("DE", false)
	mockQuerier.EXPECT().GetFreelancer(gomock.Any(), freelancer.ID).Return(freelancer, nil)
	mockQuerier.EXPECT().RevokeFreelancerConsent(gomock.Any(), db.RevokeFreelancerConsentParams{
		FreelancerID: freelancer.ID,
		ConsentType:  "marketing",
	}).Return(db.FreelancerConsent{FreelancerID: freelancer.ID, ConsentType: "marketing"}, nil)

	result, err := service.GrantConsent(context.Background(), freelancer.ID, types.ConsentRequest{
		ConsentType: "marketing",
		Granted:     false,
	})
	require.NoError(t, err)
	assert.Equal(t, "marketing", result.ConsentType)
}
