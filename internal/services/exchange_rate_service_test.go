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

	"github.com/hrplatform/freelancer-api/internal/db"
	"github.com/hrplatform/freelancer-api/internal/helpers"
	"github.com/hrplatform/freelancer-api/internal/mocks"
	"github.com/hrplatform/freelancer-api/internal/services"
	"github.com/hrplatform/freelancer-api/internal/taxerr"
	"github.com/hrplatform/freelancer-api/internal/types"
)

func TestExchangeRateService_GetRate(t *testing.T) {
	ctx := context.Background()
	rateDate := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		from         string
		to           string
		setupMocks   func(q *mocks.MockQuerier, p *mocks.MockRateProvider)
		wantErr      bool
		errorString  string
		wantRate     string
		wantInverted bool
	}{
		{
			name: "same currency is identity",
			from: "EUR", to: "EUR",
			setupMocks: func(q *mocks.MockQuerier, p *mocks.MockRateProvider) {},
			wantRate:   "1",
		},
		{
			name: "stored rate wins",
			from: "EUR", to: "USD",
			setupMocks: func(q *mocks.MockQuerier, p *mocks.MockRateProvider) {
				q.EXPECT().GetRateOnOrBefore(gomock.Any(), db.GetRateOnOrBeforeParams{
					FromCurrency: "EUR",
					ToCurrency:   "USD",
					RateDate:     helpers.TimeToDate(rateDate),
				}).Return(db.ExchangeRate{
					FromCurrency: "EUR",
					ToCurrency:   "USD",
					Rate:         helpers.DecimalToNumeric(decimal.RequireFromString("1.08")),
					RateDate:     helpers.TimeToDate(rateDate),
					Source:       "ecb",
				}, nil)
			},
			wantRate: "1.08",
		},
		{
			name: "reverse pair is inverted",
			from: "USD", to: "EUR",
			setupMocks: func(q *mocks.MockQuerier, p *mocks.MockRateProvider) {
				q.EXPECT().GetRateOnOrBefore(gomock.Any(), gomock.Any()).Return(db.ExchangeRate{}, pgx.ErrNoRows)
				q.EXPECT().GetRateOnOrBefore(gomock.Any(), db.GetRateOnOrBeforeParams{
					FromCurrency: "EUR",
					ToCurrency:   "USD",
					RateDate:     helpers.TimeToDate(rateDate),
				}).Return(db.ExchangeRate{
					FromCurrency: "EUR",
					ToCurrency:   "USD",
					Rate:         helpers.DecimalToNumeric(decimal.RequireFromString("1.25")),
					RateDate:     helpers.TimeToDate(rateDate),
					Source:       "ecb",
				}, nil)
			},
			wantRate:     "0.8",
			wantInverted: true,
		},
		{
			name: "provider fetch fills a gap and is stored",
			from: "EUR", to: "GBP",
			setupMocks: func(q *mocks.MockQuerier, p *mocks.MockRateProvider) {
				q.EXPECT().GetRateOnOrBefore(gomock.Any(), gomock.Any()).Return(db.ExchangeRate{}, pgx.ErrNoRows).Times(2)
				p.EXPECT().FetchRate(gomock.Any(), "EUR", "GBP", rateDate).Return(decimal.RequireFromString("0.86"), nil)
				p.EXPECT().Name().Return("frankfurter")
				q.EXPECT().InsertExchangeRateIfAbsent(gomock.Any(), gomock.Any()).Return(db.ExchangeRate{
					FromCurrency: "EUR",
					ToCurrency:   "GBP",
					Rate:         helpers.DecimalToNumeric(decimal.RequireFromString("0.86")),
					RateDate:     helpers.TimeToDate(rateDate),
					Source:       "frankfurter",
				}, nil)
			},
			wantRate: "0.86",
		},
		{
			name: "no rate anywhere",
			from: "EUR", to: "JPY",
			setupMocks: func(q *mocks.MockQuerier, p *mocks.MockRateProvider) {
				q.EXPECT().GetRateOnOrBefore(gomock.Any(), gomock.Any()).Return(db.ExchangeRate{}, pgx.ErrNoRows).Times(2)
				p.EXPECT().FetchRate(gomock.Any(), "EUR", "JPY", rateDate).Return(decimal.Zero, errors.New("upstream down"))
			},
			wantErr:     true,
			errorString: "no exchange rate available",
		},
		{
			name: "unsupported currency refused",
			from: "EUR", to: "XTS",
			setupMocks:  func(q *mocks.MockQuerier, p *mocks.MockRateProvider) {},
			wantErr:     true,
			errorString: "unsupported currency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			mockProvider := mocks.NewMockRateProvider(ctrl)
			tt.setupMocks(mockQuerier, mockProvider)

			service := services.NewExchangeRateService(mockQuerier, mockProvider)
			result, err := service.GetRate(ctx, tt.from, tt.to, rateDate)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorString)
				return
			}

			require.NoError(t, err)
			assert.True(t, result.Rate.Equal(decimal.RequireFromString(tt.wantRate)),
				"rate: want %s got %s", tt.wantRate, result.Rate)
			assert.Equal(t, tt.wantInverted, result.Inverted)
		})
	}
}

func TestExchangeRateService_GetRate_CachesLookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	rateDate := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	mockQuerier.EXPECT().GetRateOnOrBefore(gomock.Any(), gomock.Any()).Return(db.ExchangeRate{
		FromCurrency: "EUR",
		ToCurrency:   "USD",
		Rate:         helpers.DecimalToNumeric(decimal.RequireFromString("1.08")),
		RateDate:     helpers.TimeToDate(rateDate),
		Source:       "ecb",
	}, nil).Times(1)

	service := services.NewExchangeRateService(mockQuerier, nil)

	first, err := service.GetRate(context.Background(), "EUR", "USD", rateDate)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := service.GetRate(context.Background(), "EUR", "USD", rateDate)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.True(t, second.Rate.Equal(first.Rate))
}

func TestExchangeRateService_Convert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	rateDate := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	mockQuerier.EXPECT().GetRateOnOrBefore(gomock.Any(), gomock.Any()).Return(db.ExchangeRate{
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		Rate:         helpers.DecimalToNumeric(decimal.RequireFromString("0.926")),
		RateDate:     helpers.TimeToDate(rateDate),
		Source:       "ecb",
	}, nil)

	service := services.NewExchangeRateService(mockQuerier, nil)
	result, err := service.Convert(context.Background(), decimal.RequireFromString("1000"), "USD", "EUR", rateDate)
	require.NoError(t, err)

	assert.True(t, result.ConvertedAmount.Equal(decimal.RequireFromString("926")),
		"converted: got %s", result.ConvertedAmount)
	assert.Equal(t, "USD", result.FromCurrency)
	assert.Equal(t, "EUR", result.ToCurrency)
}

func TestExchangeRateService_RefreshLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockProvider := mocks.NewMockRateProvider(ctrl)
	rateDate := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	mockProvider.EXPECT().FetchLatest(gomock.Any(), "EUR").Return(map[string]decimal.Decimal{
		"USD": decimal.RequireFromString("1.08"),
		"GBP": decimal.RequireFromString("0.86"),
		"ZZZ": decimal.RequireFromString("9.99"),
	}, rateDate, nil)
	mockProvider.EXPECT().Name().Return("frankfurter").Times(2)
	mockQuerier.EXPECT().InsertExchangeRateIfAbsent(gomock.Any(), gomock.Any()).Return(db.ExchangeRate{}, nil).Times(2)

	service := services.NewExchangeRateService(mockQuerier, mockProvider)
	written, err := service.RefreshLatest(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, 2, written)
}

func TestExchangeRateService_RefreshLatest_KeepsStoredRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockProvider := mocks.NewMockRateProvider(ctrl)
	rateDate := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	mockProvider.EXPECT().FetchLatest(gomock.Any(), "EUR").Return(map[string]decimal.Decimal{
		"USD": decimal.RequireFromString("1.09"),
	}, rateDate, nil)
	mockProvider.EXPECT().Name().Return("frankfurter")
	mockQuerier.EXPECT().InsertExchangeRateIfAbsent(gomock.Any(), gomock.Any()).
		Return(db.ExchangeRate{}, pgx.ErrNoRows)

	service := services.NewExchangeRateService(mockQuerier, mockProvider)
	written, err := service.RefreshLatest(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, 0, written)
}

func TestExchangeRateService_UpsertManual_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewExchangeRateService(mockQuerier, nil)

	tests := []struct {
		name        string
		req         types.UpsertRateRequest
		errorString string
	}{
		{
			name:        "same pair",
			req:         types.UpsertRateRequest{FromCurrency: "EUR", ToCurrency: "EUR", Rate: "1", RateDate: "2026-02-10"},
			errorString: "must differ",
		},
		{
			name:        "negative rate",
			req:         types.UpsertRateRequest{FromCurrency: "EUR", ToCurrency: "USD", Rate: "-1", RateDate: "2026-02-10"},
			errorString: "positive decimal",
		},
		{
			name:        "bad date",
			req:         types.UpsertRateRequest{FromCurrency: "EUR", ToCurrency: "USD", Rate: "1.08", RateDate: "10/02/2026"},
			errorString: "invalid date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.UpsertManual(context.Background(), tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
			assert.True(t, taxerr.IsValidation(err))
		})
	}
}
