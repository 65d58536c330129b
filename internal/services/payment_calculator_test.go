package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hrplatform/freelancer-api/internal/constants"
	"github.com/hrplatform/freelancer-api/internal/db"
	"github.com/hrplatform/freelancer-api/internal/helpers"
	"github.com/hrplatform/freelancer-api/internal/mocks"
	"github.com/hrplatform/freelancer-api/internal/services"
)

func newCalculator(q *mocks.MockQuerier) *services.PaymentCalculator {
	tax := services.NewTaxService(q)
	rates := services.NewExchangeRateService(q, nil)
	return services.NewPaymentCalculator(tax, rates)
}

func euroFreelancer(country string, registered bool) db.Freelancer {
	return db.Freelancer{
		ID:              uuid.New(),
		FullName:        "Test Freelancer",
		Email:           "freelancer@example.com",
		Country:         country,
		DefaultCurrency: "EUR",
		Status:          constants.FreelancerStatusActive,
		VatRegistered:   helpers.BoolToNullableBool(registered),
		VatValidated:    helpers.BoolToNullableBool(registered),
	}
}

func eurContract(companyCountry string) db.Contract {
	return db.Contract{
		ID:              uuid.New(),
		ContractNumber:  "CTR-2026-TEST",
		CompanyCountry:  companyCountry,
		CompanyCurrency: "EUR",
		ContractType:    constants.ContractTypeProjectBased,
		Currency:        "EUR",
		Status:          constants.ContractStatusActive,
	}
}

func draftPayment(base string, currency string) db.Payment {
	return db.Payment{
		ID:          uuid.New(),
		Status:      constants.PaymentStatusDraft,
		BaseAmount:  helpers.DecimalToNumeric(decimal.RequireFromString(base)),
		Currency:    currency,
		PaymentDate: helpers.TimeToDate(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)),
	}
}

func TestPaymentCalculator_ReverseChargeNetEqualsGross(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	calculator := newCalculator(mockQuerier)

	freelancer := euroFreelancer("DE", true)
	contract := eurContract("NL")
	payment := draftPayment("5000", "EUR")
	payment.CompanyCurrency = helpers.StringToNullableText("EUR")

	result, err := calculator.Compute(context.Background(), freelancer, contract, payment, nil, nil)
	require.NoError(t, err)

	breakdown := result.Breakdown
	assert.True(t, breakdown.ReverseCharge)
	assert.Equal(t, constants.VATTreatmentReverseCharge, breakdown.VATTreatment)
	assert.True(t, breakdown.VATAmount.IsZero())
	assert.True(t, breakdown.WithholdingAmount.IsZero())
	assert.True(t, breakdown.NetAmount.Equal(breakdown.GrossAmount),
		"net %s should equal gross %s under reverse charge", breakdown.NetAmount, breakdown.GrossAmount)
	assert.False(t, result.HasMirror)
}

func TestPaymentCalculator_TreatyWithholding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	calculator := newCalculator(mockQuerier)

	freelancer := euroFreelancer("IN", false)
	freelancer.DefaultCurrency = "EUR"
	contract := eurContract("NL")
	payment := draftPayment("2000", "EUR")
	payment.CompanyCurrency = helpers.StringToNullableText("EUR")

	mockQuerier.EXPECT().GetActiveTreaty(gomock.Any(), gomock.Any()).Return(db.TaxTreaty{
		CountryA:            "IN",
		CountryB:            "NL",
		IncomeCategory:      constants.IncomeCategoryServices,
		TreatyRate:          helpers.DecimalToNumeric(decimal.RequireFromString("10")),
		CertificateRequired: helpers.BoolToNullableBool(false),
	}, nil)

	result, err := calculator.Compute(context.Background(), freelancer, contract, payment, nil, nil)
	require.NoError(t, err)

	breakdown := result.Breakdown
	assert.True(t, breakdown.TreatyApplied)
	assert.True(t, breakdown.WithholdingAmount.Equal(decimal.RequireFromString("200")),
		"withholding: got %s", breakdown.WithholdingAmount)
	assert.True(t, breakdown.VATAmount.IsZero())
	assert.True(t, breakdown.NetAmount.Equal(decimal.RequireFromString("1800")),
		"net: got %s", breakdown.NetAmount)
}

func TestPaymentCalculator_ItemsOverrideBaseAndOnlyApprovedExpensesCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	calculator := newCalculator(mockQuerier)

	freelancer := euroFreelancer("DE", true)
	contract := eurContract("NL")
	payment := draftPayment("9999", "EUR")
	payment.CompanyCurrency = helpers.StringToNullableText("EUR")

	items := []db.PaymentItem{
		{Amount: helpers.DecimalToNumeric(decimal.RequireFromString("1200"))},
		{Amount: helpers.DecimalToNumeric(decimal.RequireFromString("800"))},
	}
	expenses := []db.PaymentExpense{
		{Amount: helpers.DecimalToNumeric(decimal.RequireFromString("150")), Approved: helpers.BoolToNullableBool(true)},
		{Amount: helpers.DecimalToNumeric(decimal.RequireFromString("75")), Approved: helpers.BoolToNullableBool(false)},
	}

	result, err := calculator.Compute(context.Background(), freelancer, contract, payment, items, expenses)
	require.NoError(t, err)

	breakdown := result.Breakdown
	assert.True(t, breakdown.BaseAmount.Equal(decimal.RequireFromString("2000")),
		"base: got %s", breakdown.BaseAmount)
	assert.True(t, breakdown.ExpenseTotal.Equal(decimal.RequireFromString("150")),
		"expenses: got %s", breakdown.ExpenseTotal)
	assert.True(t, breakdown.GrossAmount.Equal(decimal.RequireFromString("2150")),
		"gross: got %s", breakdown.GrossAmount)
}

func TestPaymentCalculator_CompanyCurrencyMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	calculator := newCalculator(mockQuerier)

	freelancer := euroFreelancer("DE", true)
	contract := eurContract("NL")
	contract.CompanyCurrency = "USD"
	payment := draftPayment("1000", "EUR")
	payment.CompanyCurrency = helpers.StringToNullableText("USD")

	mockQuerier.EXPECT().GetRateOnOrBefore(gomock.Any(), gomock.Any()).Return(db.ExchangeRate{
		FromCurrency: "EUR",
		ToCurrency:   "USD",
		Rate:         helpers.DecimalToNumeric(decimal.RequireFromString("1.08")),
		RateDate:     payment.PaymentDate,
		Source:       "ecb",
	}, nil)

	result, err := calculator.Compute(context.Background(), freelancer, contract, payment, nil, nil)
	require.NoError(t, err)

	assert.True(t, result.HasMirror)
	assert.Equal(t, "USD", result.CompanyCurrency)
	assert.True(t, result.CompanyCurrencyGross.Equal(decimal.RequireFromString("1080")),
		"mirror gross: got %s", result.CompanyCurrencyGross)
	assert.True(t, result.CompanyCurrencyNet.Equal(decimal.RequireFromString("1080")),
		"mirror net: got %s", result.CompanyCurrencyNet)
}

func TestPaymentCalculator_DomesticStandardRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	calculator := newCalculator(mockQuerier)

	freelancer := euroFreelancer("NL", true)
	contract := eurContract("NL")
	payment := draftPayment("1000", "EUR")
	payment.CompanyCurrency = helpers.StringToNullableText("EUR")

	mockQuerier.EXPECT().GetTaxConfig(gomock.Any(), "NL").Return(db.TaxConfig{
		Country:      "NL",
		StandardRate: helpers.DecimalToNumeric(decimal.RequireFromString("21")),
		IsEu:         true,
	}, nil)

	result, err := calculator.Compute(context.Background(), freelancer, contract, payment, nil, nil)
	require.NoError(t, err)

	breakdown := result.Breakdown
	assert.False(t, breakdown.ReverseCharge)
	assert.True(t, breakdown.VATAmount.Equal(decimal.RequireFromString("210")),
		"vat: got %s", breakdown.VATAmount)
	assert.True(t, breakdown.NetAmount.Equal(decimal.RequireFromString("1210")),
		"net: got %s", breakdown.NetAmount)
	assert.True(t, breakdown.WithholdingAmount.IsZero())
}

func TestPaymentCalculator_ExpiredCertificateFallsBackToStatutory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	calculator := newCalculator(mockQuerier)

	freelancer := euroFreelancer("US", false)
	freelancer.ResidencyCertificateRef = helpers.StringToNullableText("CERT-001")
	freelancer.CertificateValidUntil = helpers.TimeToDate(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	contract := eurContract("NL")
	payment := draftPayment("1000", "EUR")
	payment.CompanyCurrency = helpers.StringToNullableText("EUR")

	mockQuerier.EXPECT().GetActiveTreaty(gomock.Any(), gomock.Any()).Return(db.TaxTreaty{
		CountryA:            "US",
		CountryB:            "NL",
		TreatyRate:          helpers.DecimalToNumeric(decimal.RequireFromString("15")),
		CertificateRequired: helpers.BoolToNullableBool(true),
	}, nil)

	result, err := calculator.Compute(context.Background(), freelancer, contract, payment, nil, nil)
	require.NoError(t, err)

	breakdown := result.Breakdown
	assert.False(t, breakdown.TreatyApplied)
	assert.True(t, breakdown.WithholdingRate.Equal(decimal.RequireFromString("30")),
		"withholding rate: got %s", breakdown.WithholdingRate)
	assert.True(t, breakdown.WithholdingAmount.Equal(decimal.RequireFromString("300")),
		"withholding: got %s", breakdown.WithholdingAmount)
}

func TestPaymentCalculator_Matches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	calculator := newCalculator(mockQuerier)

	freelancer := euroFreelancer("DE", true)
	contract := eurContract("NL")
	payment := draftPayment("5000", "EUR")
	payment.CompanyCurrency = helpers.StringToNullableText("EUR")

	computation, err := calculator.Compute(context.Background(), freelancer, contract, payment, nil, nil)
	require.NoError(t, err)

	stored := payment
	stored.GrossAmount = helpers.DecimalToNumeric(decimal.RequireFromString("5000"))
	stored.VatAmount = helpers.DecimalToNumeric(decimal.Zero)
	stored.WithholdingAmount = helpers.DecimalToNumeric(decimal.Zero)
	stored.NetAmount = helpers.DecimalToNumeric(decimal.RequireFromString("5000.005"))
	assert.True(t, calculator.Matches(stored, computation), "drift within tolerance should match")

	stored.NetAmount = helpers.DecimalToNumeric(decimal.RequireFromString("5001"))
	assert.False(t, calculator.Matches(stored, computation), "drift beyond tolerance should not match")
}
