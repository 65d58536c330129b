package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hrplatform/freelancer-api/internal/db"
	"github.com/hrplatform/freelancer-api/internal/helpers"
	"github.com/hrplatform/freelancer-api/internal/logger"
	"github.com/hrplatform/freelancer-api/internal/taxerr"
	"github.com/hrplatform/freelancer-api/internal/types"
)

// PaymentComputation is the complete derived amount set for one payment,
// including the company-currency mirror when the payment currency differs
// from the company's books.
type PaymentComputation struct {
	Breakdown            types.TaxBreakdown
	CompanyCurrency      string
	ExchangeRate         decimal.Decimal
	CompanyCurrencyGross decimal.Decimal
	CompanyCurrencyNet   decimal.Decimal
	HasMirror            bool
}

// PaymentCalculator derives the amounts of a payment from its line items,
// approved expenses, and the tax classification of its parties. Amounts are
// computed at full precision and rounded to two decimals only on the
// persisted fields; withholding applies to the VAT-exclusive gross.
type PaymentCalculator struct {
	tax    *TaxService
	rates  *ExchangeRateService
	logger *zap.Logger
}

// NewPaymentCalculator creates a new payment calculator
func NewPaymentCalculator(tax *TaxService, rates *ExchangeRateService) *PaymentCalculator {
	return &PaymentCalculator{
		tax:    tax,
		rates:  rates,
		logger: logger.Log,
	}
}

// Compute derives the full amount set for a payment.
func (c *PaymentCalculator) Compute(ctx context.Context, freelancer db.Freelancer, contract db.Contract, payment db.Payment, items []db.PaymentItem, expenses []db.PaymentExpense) (*PaymentComputation, error) {
	asOf := payment.PaymentDate.Time
	if !payment.PaymentDate.Valid || asOf.IsZero() {
		asOf = time.Now()
	}

	base := helpers.NumericToDecimal(payment.BaseAmount)
	if len(items) > 0 {
		base = decimal.Zero
		for _, item := range items {
			base = base.Add(helpers.NumericToDecimal(item.Amount))
		}
	}

	expenseTotal := decimal.Zero
	for _, expense := range expenses {
		if expense.Approved.Bool {
			expenseTotal = expenseTotal.Add(helpers.NumericToDecimal(expense.Amount))
		}
	}

	gross := base.Add(expenseTotal)
	if gross.IsNegative() {
		return nil, taxerr.NewValidation("payment gross amount is negative")
	}

	classification, err := c.tax.Classify(ctx, types.ClassificationInput{
		FreelancerCountry: residencyCountry(freelancer),
		CompanyCountry:    contract.CompanyCountry,
		VATRegistered:     freelancer.VatRegistered.Bool,
		VATValidated:      freelancer.VatValidated.Bool,
		CertificateOnFile: certificateOnFile(freelancer, asOf),
		AsOf:              asOf,
	})
	if err != nil {
		return nil, err
	}

	vatAmount := decimal.Zero
	if !classification.ReverseCharge && classification.VATRate.IsPositive() {
		vatAmount = helpers.ApplyPercent(gross, classification.VATRate)
	}
	withholdingAmount := decimal.Zero
	if classification.WithholdingRate.IsPositive() {
		withholdingAmount = helpers.ApplyPercent(gross, classification.WithholdingRate)
	}
	net := gross.Add(vatAmount).Sub(withholdingAmount)
	if net.IsNegative() {
		return nil, taxerr.NewValidation("computed net amount is negative")
	}

	computation := &PaymentComputation{
		Breakdown: types.TaxBreakdown{
			BaseAmount:        helpers.RoundMoney(base),
			ExpenseTotal:      helpers.RoundMoney(expenseTotal),
			GrossAmount:       helpers.RoundMoney(gross),
			VATRate:           classification.VATRate,
			VATAmount:         helpers.RoundMoney(vatAmount),
			ReverseCharge:     classification.ReverseCharge,
			VATTreatment:      classification.VATTreatment,
			WithholdingRate:   classification.WithholdingRate,
			WithholdingAmount: helpers.RoundMoney(withholdingAmount),
			TreatyApplied:     classification.TreatyApplied,
			NetAmount:         helpers.RoundMoney(net),
			ComplianceNotes:   classification.ComplianceNotes,
		},
	}

	companyCurrency := helpers.NormalizeCurrency(helpers.TextToString(payment.CompanyCurrency))
	if companyCurrency == "" {
		companyCurrency = helpers.NormalizeCurrency(contract.CompanyCurrency)
	}
	computation.CompanyCurrency = companyCurrency

	if companyCurrency != "" && companyCurrency != helpers.NormalizeCurrency(payment.Currency) {
		rate, err := c.rates.GetRate(ctx, payment.Currency, companyCurrency, asOf)
		if err != nil {
			return nil, err
		}
		computation.ExchangeRate = rate.Rate
		computation.CompanyCurrencyGross = helpers.RoundMoney(computation.Breakdown.GrossAmount.Mul(rate.Rate))
		computation.CompanyCurrencyNet = helpers.RoundMoney(computation.Breakdown.NetAmount.Mul(rate.Rate))
		computation.HasMirror = true
	}

	c.logger.Debug("Computed payment amounts",
		zap.String("payment_id", payment.ID.String()),
		zap.String("gross", computation.Breakdown.GrossAmount.String()),
		zap.String("net", computation.Breakdown.NetAmount.String()),
		zap.String("vat_treatment", computation.Breakdown.VATTreatment))

	return computation, nil
}

// Matches reports whether the stored amounts on a payment agree with a
// fresh computation within the reconciliation tolerance.
func (c *PaymentCalculator) Matches(payment db.Payment, computation *PaymentComputation) bool {
	stored := []decimal.Decimal{
		helpers.NumericToDecimal(payment.GrossAmount),
		helpers.NumericToDecimal(payment.VatAmount),
		helpers.NumericToDecimal(payment.WithholdingAmount),
		helpers.NumericToDecimal(payment.NetAmount),
	}
	fresh := []decimal.Decimal{
		computation.Breakdown.GrossAmount,
		computation.Breakdown.VATAmount,
		computation.Breakdown.WithholdingAmount,
		computation.Breakdown.NetAmount,
	}
	for i := range stored {
		if !helpers.WithinTolerance(stored[i], fresh[i]) {
			return false
		}
	}
	return true
}

// residencyCountry prefers the declared tax residency over the profile
// country.
func residencyCountry(freelancer db.Freelancer) string {
	if freelancer.TaxResidencyCountry.Valid && freelancer.TaxResidencyCountry.String != "" {
		return freelancer.TaxResidencyCountry.String
	}
	return freelancer.Country
}

// certificateOnFile reports whether a residency certificate is on file and
// still valid on the given date.
func certificateOnFile(freelancer db.Freelancer, asOf time.Time) bool {
	if !freelancer.ResidencyCertificateRef.Valid || freelancer.ResidencyCertificateRef.String == "" {
		return false
	}
	if freelancer.CertificateValidUntil.Valid && freelancer.CertificateValidUntil.Time.Before(asOf) {
		return false
	}
	return true
}
