package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hrplatform/freelancer-api/internal/constants"
	"github.com/hrplatform/freelancer-api/internal/db"
	"github.com/hrplatform/freelancer-api/internal/helpers"
	"github.com/hrplatform/freelancer-api/internal/logger"
	"github.com/hrplatform/freelancer-api/internal/mocks"
	"github.com/hrplatform/freelancer-api/internal/services"
	"github.com/hrplatform/freelancer-api/internal/taxerr"
	"github.com/hrplatform/freelancer-api/internal/types"
)

func init() {
	logger.InitLogger("test")
}

func TestTaxService_Classify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTaxService(mockQuerier)
	ctx := context.Background()
	asOf := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name              string
		input             types.ClassificationInput
		setupMocks        func()
		wantErr           bool
		errorString       string
		wantVATRate       string
		wantReverseCharge bool
		wantTreatment     string
		wantWithholding   string
		wantTreatyApplied bool
		wantCrossBorder   bool
	}{
		{
			name: "EU cross-border B2B applies reverse charge",
			input: types.ClassificationInput{
				FreelancerCountry: "DE",
				CompanyCountry:    "NL",
				VATRegistered:     true,
				VATValidated:      true,
				AsOf:              asOf,
			},
			setupMocks:        func() {},
			wantVATRate:       "0",
			wantReverseCharge: true,
			wantTreatment:     constants.VATTreatmentReverseCharge,
			wantWithholding:   "0",
			wantCrossBorder:   true,
		},
		{
			name: "domestic supply uses the local standard rate",
			input: types.ClassificationInput{
				FreelancerCountry: "NL",
				CompanyCountry:    "NL",
				VATRegistered:     true,
				AsOf:              asOf,
			},
			setupMocks: func() {
				mockQuerier.EXPECT().GetTaxConfig(gomock.Any(), "NL").Return(db.TaxConfig{
					Country:      "NL",
					StandardRate: helpers.DecimalToNumeric(decimal.RequireFromString("21")),
					IsEu:         true,
				}, nil)
			},
			wantVATRate:     "21",
			wantTreatment:   constants.VATTreatmentStandardRate,
			wantWithholding: "0",
		},
		{
			name: "unregistered EU freelancer charges local VAT",
			input: types.ClassificationInput{
				FreelancerCountry: "DE",
				CompanyCountry:    "NL",
				VATRegistered:     false,
				AsOf:              asOf,
			},
			setupMocks: func() {
				mockQuerier.EXPECT().GetTaxConfig(gomock.Any(), "DE").Return(db.TaxConfig{
					Country:      "DE",
					StandardRate: helpers.DecimalToNumeric(decimal.RequireFromString("19")),
					IsEu:         true,
				}, nil)
			},
			wantVATRate:     "19",
			wantTreatment:   constants.VATTreatmentStandardRate,
			wantWithholding: "0",
			wantCrossBorder: true,
		},
		{
			name: "non-EU freelancer to EU company is an import reverse charge with statutory withholding",
			input: types.ClassificationInput{
				FreelancerCountry: "US",
				CompanyCountry:    "NL",
				VATRegistered:     false,
				AsOf:              asOf,
			},
			setupMocks: func() {
				mockQuerier.EXPECT().GetActiveTreaty(gomock.Any(), gomock.Any()).Return(db.TaxTreaty{}, pgx.ErrNoRows)
			},
			wantVATRate:       "0",
			wantReverseCharge: true,
			wantTreatment:     constants.VATTreatmentImportReverseCharge,
			wantWithholding:   "30",
			wantCrossBorder:   true,
		},
		{
			name: "treaty rate applies when no certificate is needed",
			input: types.ClassificationInput{
				FreelancerCountry: "IN",
				CompanyCountry:    "NL",
				AsOf:              asOf,
			},
			setupMocks: func() {
				mockQuerier.EXPECT().GetActiveTreaty(gomock.Any(), db.GetActiveTreatyParams{
					CountryA:       "IN",
					CountryB:       "NL",
					IncomeCategory: constants.IncomeCategoryServices,
					AsOf:           helpers.TimeToDate(asOf),
				}).Return(db.TaxTreaty{
					CountryA:            "IN",
					CountryB:            "NL",
					IncomeCategory:      constants.IncomeCategoryServices,
					TreatyRate:          helpers.DecimalToNumeric(decimal.RequireFromString("10")),
					CertificateRequired: helpers.BoolToNullableBool(false),
				}, nil)
			},
			wantVATRate:       "0",
			wantReverseCharge: true,
			wantTreatment:     constants.VATTreatmentImportReverseCharge,
			wantWithholding:   "10",
			wantTreatyApplied: true,
			wantCrossBorder:   true,
		},
		{
			name: "treaty without certificate falls back to the statutory rate",
			input: types.ClassificationInput{
				FreelancerCountry: "US",
				CompanyCountry:    "NL",
				CertificateOnFile: false,
				AsOf:              asOf,
			},
			setupMocks: func() {
				mockQuerier.EXPECT().GetActiveTreaty(gomock.Any(), gomock.Any()).Return(db.TaxTreaty{
					CountryA:            "US",
					CountryB:            "NL",
					TreatyRate:          helpers.DecimalToNumeric(decimal.RequireFromString("15")),
					CertificateRequired: helpers.BoolToNullableBool(true),
				}, nil)
			},
			wantVATRate:       "0",
			wantReverseCharge: true,
			wantTreatment:     constants.VATTreatmentImportReverseCharge,
			wantWithholding:   "30",
			wantCrossBorder:   true,
		},
		{
			name: "EU freelancer exporting outside the EU is zero-rated",
			input: types.ClassificationInput{
				FreelancerCountry: "NL",
				CompanyCountry:    "US",
				VATRegistered:     true,
				AsOf:              asOf,
			},
			setupMocks: func() {
				mockQuerier.EXPECT().GetActiveTreaty(gomock.Any(), gomock.Any()).Return(db.TaxTreaty{}, pgx.ErrNoRows)
			},
			wantVATRate:     "0",
			wantTreatment:   constants.VATTreatmentZeroRatedExport,
			wantWithholding: "30",
			wantCrossBorder: true,
		},
		{
			name: "missing VAT configuration stops the computation",
			input: types.ClassificationInput{
				FreelancerCountry: "XX",
				CompanyCountry:    "XX",
				AsOf:              asOf,
			},
			setupMocks: func() {
				mockQuerier.EXPECT().GetTaxConfig(gomock.Any(), "XX").Return(db.TaxConfig{}, pgx.ErrNoRows)
			},
			wantErr:     true,
			errorString: "no tax rule resolved",
		},
		{
			name:        "missing countries are rejected",
			input:       types.ClassificationInput{AsOf: asOf},
			setupMocks:  func() {},
			wantErr:     true,
			errorString: "countries are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			result, err := service.Classify(ctx, tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorString)
				return
			}

			require.NoError(t, err)
			assert.True(t, result.VATRate.Equal(decimal.RequireFromString(tt.wantVATRate)),
				"vat rate: want %s got %s", tt.wantVATRate, result.VATRate)
			assert.Equal(t, tt.wantReverseCharge, result.ReverseCharge)
			assert.Equal(t, tt.wantTreatment, result.VATTreatment)
			assert.True(t, result.WithholdingRate.Equal(decimal.RequireFromString(tt.wantWithholding)),
				"withholding rate: want %s got %s", tt.wantWithholding, result.WithholdingRate)
			assert.Equal(t, tt.wantTreatyApplied, result.TreatyApplied)
			assert.Equal(t, tt.wantCrossBorder, result.IsCrossBorder)
			assert.NotEmpty(t, result.ComplianceNotes)
		})
	}
}

func TestTaxService_Classify_NoWithholdingBetweenEUStates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTaxService(mockQuerier)

	result, err := service.Classify(context.Background(), types.ClassificationInput{
		FreelancerCountry: "DE",
		CompanyCountry:    "FR",
		VATRegistered:     true,
	})
	require.NoError(t, err)

	assert.True(t, result.WithholdingRate.IsZero())
	assert.False(t, result.TreatyApplied)
	assert.Contains(t, result.ComplianceNotes, "No withholding tax between EU member states")
}

func TestTaxService_CreateTreaty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTaxService(mockQuerier)
	ctx := context.Background()

	tests := []struct {
		name        string
		req         types.TreatyRequest
		setupMocks  func()
		wantErr     bool
		errorString string
	}{
		{
			name: "valid treaty",
			req: types.TreatyRequest{
				CountryA:       "NL",
				CountryB:       "IN",
				IncomeCategory: constants.IncomeCategoryServices,
				TreatyRate:     "10",
				EffectiveFrom:  "2020-01-01",
			},
			setupMocks: func() {
				mockQuerier.EXPECT().CreateTaxTreaty(gomock.Any(), gomock.Any()).Return(db.TaxTreaty{
					CountryA: "NL",
					CountryB: "IN",
				}, nil)
			},
		},
		{
			name: "same country pair rejected",
			req: types.TreatyRequest{
				CountryA:       "NL",
				CountryB:       "NL",
				IncomeCategory: constants.IncomeCategoryServices,
				TreatyRate:     "10",
				EffectiveFrom:  "2020-01-01",
			},
			setupMocks:  func() {},
			wantErr:     true,
			errorString: "must differ",
		},
		{
			name: "rate above 100 rejected",
			req: types.TreatyRequest{
				CountryA:       "NL",
				CountryB:       "IN",
				IncomeCategory: constants.IncomeCategoryServices,
				TreatyRate:     "120",
				EffectiveFrom:  "2020-01-01",
			},
			setupMocks:  func() {},
			wantErr:     true,
			errorString: "out of range",
		},
		{
			name: "expiry before effective date rejected",
			req: types.TreatyRequest{
				CountryA:       "NL",
				CountryB:       "IN",
				IncomeCategory: constants.IncomeCategoryServices,
				TreatyRate:     "10",
				EffectiveFrom:  "2020-01-01",
				EffectiveTo:    "2019-01-01",
			},
			setupMocks:  func() {},
			wantErr:     true,
			errorString: "after effective_from",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			treaty, err := service.CreateTreaty(ctx, tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorString)
				assert.True(t, taxerr.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "NL", treaty.CountryA)
		})
	}
}

func TestTaxService_SeedReferenceData_InstallsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTaxService(mockQuerier)
	ctx := context.Background()

	configCount := len(constants.EUCountries) + len(constants.NonEUConfigs)
	mockQuerier.EXPECT().UpsertTaxConfig(gomock.Any(), gomock.Any()).
		Return(db.TaxConfig{}, nil).Times(configCount)
	mockQuerier.EXPECT().GetActiveTreaty(gomock.Any(), gomock.Any()).
		Return(db.TaxTreaty{}, pgx.ErrNoRows).Times(len(constants.TreatySeeds))

	var created []db.CreateTaxTreatyParams
	mockQuerier.EXPECT().CreateTaxTreaty(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateTaxTreatyParams) (db.TaxTreaty, error) {
			created = append(created, arg)
			return db.TaxTreaty{CountryA: arg.CountryA, CountryB: arg.CountryB}, nil
		}).Times(len(constants.TreatySeeds))

	require.NoError(t, service.SeedReferenceData(ctx))

	require.Len(t, created, 4)
	pairs := make(map[string]db.CreateTaxTreatyParams, len(created))
	for _, arg := range created {
		pairs[arg.CountryA+"-"+arg.CountryB] = arg
		assert.Equal(t, constants.IncomeCategoryServices, arg.IncomeCategory)
		assert.True(t, arg.CertificateRequired.Bool)
		assert.True(t, arg.Active.Bool)
	}
	for _, pair := range []string{"NL-US", "NL-GB", "DE-US"} {
		arg, ok := pairs[pair]
		require.True(t, ok, "missing treaty %s", pair)
		assert.True(t, helpers.NumericToDecimal(arg.TreatyRate).IsZero())
	}
	nlIN, ok := pairs["NL-IN"]
	require.True(t, ok, "missing treaty NL-IN")
	assert.True(t, helpers.NumericToDecimal(nlIN.TreatyRate).Equal(decimal.NewFromInt(10)))
	assert.True(t, helpers.NumericToDecimal(nlIN.ReducedRate).Equal(decimal.NewFromInt(10)))
}

func TestTaxService_SeedReferenceData_SkipsExistingTreaties(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTaxService(mockQuerier)
	ctx := context.Background()

	configCount := len(constants.EUCountries) + len(constants.NonEUConfigs)
	mockQuerier.EXPECT().UpsertTaxConfig(gomock.Any(), gomock.Any()).
		Return(db.TaxConfig{}, nil).Times(configCount)
	mockQuerier.EXPECT().GetActiveTreaty(gomock.Any(), gomock.Any()).
		Return(db.TaxTreaty{CountryA: "NL"}, nil).Times(len(constants.TreatySeeds))

	require.NoError(t, service.SeedReferenceData(ctx))
}

func TestTaxService_UpsertConfig_RejectsUnsupportedCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTaxService(mockQuerier)

	_, err := service.UpsertConfig(context.Background(), types.TaxConfigRequest{
		Country:      "NL",
		CountryName:  "Netherlands",
		StandardRate: "21",
		Currency:     "XTS",
	})
	require.Error(t, err)

	var currencyErr *taxerr.InvalidCurrencyError
	assert.True(t, errors.As(err, &currencyErr))
}
