package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hrplatform/freelancer-api/internal/constants"
	"github.com/hrplatform/freelancer-api/internal/db"
	"github.com/hrplatform/freelancer-api/internal/helpers"
	"github.com/hrplatform/freelancer-api/internal/logger"
	"github.com/hrplatform/freelancer-api/internal/taxerr"
	"github.com/hrplatform/freelancer-api/internal/types"
)

// TaxService resolves the VAT treatment and withholding rate for a
// freelancer/company country pairing, and manages the reference data
// (country VAT configuration, treaty records) behind those decisions.
type TaxService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewTaxService creates a new tax service
func NewTaxService(queries db.Querier) *TaxService {
	return &TaxService{
		queries: queries,
		logger:  logger.Log,
	}
}

// Classify resolves the tax treatment for one payment. VAT is decided by
// the country pairing and EU membership; withholding by treaty lookup with
// statutory fallback. Classification never assumes a zero rate on missing
// reference data: an unconfigured country fails with a rule resolution error.
func (s *TaxService) Classify(ctx context.Context, in types.ClassificationInput) (*types.TaxClassification, error) {
	freelancerCountry := strings.ToUpper(strings.TrimSpace(in.FreelancerCountry))
	companyCountry := strings.ToUpper(strings.TrimSpace(in.CompanyCountry))
	if freelancerCountry == "" || companyCountry == "" {
		return nil, taxerr.NewValidation("freelancer and company countries are required")
	}

	asOf := in.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	result := &types.TaxClassification{
		FreelancerCountry: freelancerCountry,
		CompanyCountry:    companyCountry,
		IsCrossBorder:     freelancerCountry != companyCountry,
		ComplianceNotes:   []string{},
	}

	if err := s.resolveVAT(ctx, in, freelancerCountry, companyCountry, result); err != nil {
		return nil, err
	}
	if err := s.resolveWithholding(ctx, in, freelancerCountry, companyCountry, asOf, result); err != nil {
		return nil, err
	}

	s.logger.Info("Resolved tax classification",
		zap.String("freelancer_country", freelancerCountry),
		zap.String("company_country", companyCountry),
		zap.String("vat_treatment", result.VATTreatment),
		zap.String("vat_rate", result.VATRate.String()),
		zap.String("withholding_rate", result.WithholdingRate.String()),
		zap.Bool("treaty_applied", result.TreatyApplied))

	return result, nil
}

func (s *TaxService) resolveVAT(ctx context.Context, in types.ClassificationInput, freelancerCountry, companyCountry string, result *types.TaxClassification) error {
	freelancerEU := constants.IsEUCountry(freelancerCountry)
	companyEU := constants.IsEUCountry(companyCountry)

	switch {
	case freelancerCountry == companyCountry:
		rate, err := s.standardRate(ctx, freelancerCountry)
		if err != nil {
			return err
		}
		result.VATRate = rate
		result.VATTreatment = constants.VATTreatmentStandardRate
		result.ComplianceNotes = append(result.ComplianceNotes,
			fmt.Sprintf("Domestic supply taxed at %s%% %s VAT", rate.String(), freelancerCountry))

	case freelancerEU && companyEU && in.VATRegistered:
		result.VATRate = decimal.Zero
		result.ReverseCharge = true
		result.VATTreatment = constants.VATTreatmentReverseCharge
		result.ComplianceNotes = append(result.ComplianceNotes,
			"Reverse charge applies: EU cross-border B2B supply of services (Article 196, EU VAT Directive)")
		if !in.VATValidated {
			result.ComplianceNotes = append(result.ComplianceNotes,
				"Freelancer VAT number not yet confirmed against the registry")
		}

	case freelancerEU && companyEU:
		rate, err := s.standardRate(ctx, freelancerCountry)
		if err != nil {
			return err
		}
		result.VATRate = rate
		result.VATTreatment = constants.VATTreatmentStandardRate
		result.ComplianceNotes = append(result.ComplianceNotes,
			fmt.Sprintf("Freelancer not VAT registered: local %s VAT at %s%% applies", freelancerCountry, rate.String()))

	case !freelancerEU && companyEU:
		result.VATRate = decimal.Zero
		result.ReverseCharge = true
		result.VATTreatment = constants.VATTreatmentImportReverseCharge
		result.ComplianceNotes = append(result.ComplianceNotes,
			"Reverse charge on import of services from outside the EU")

	case freelancerEU && !companyEU:
		result.VATRate = decimal.Zero
		result.VATTreatment = constants.VATTreatmentZeroRatedExport
		result.ComplianceNotes = append(result.ComplianceNotes,
			"Zero-rated export of services outside the EU")

	default:
		rate, err := s.standardRate(ctx, freelancerCountry)
		if err != nil {
			return err
		}
		result.VATRate = rate
		result.VATTreatment = constants.VATTreatmentStandardRate
		result.ComplianceNotes = append(result.ComplianceNotes,
			fmt.Sprintf("Local %s VAT at %s%% applies", freelancerCountry, rate.String()))
	}

	return nil
}

func (s *TaxService) standardRate(ctx context.Context, country string) (decimal.Decimal, error) {
	config, err := s.queries.GetTaxConfig(ctx, country)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, &taxerr.RuleResolutionError{
				FreelancerCountry: country,
				CompanyCountry:    country,
				Detail:            fmt.Sprintf("no VAT configuration for %s", country),
			}
		}
		return decimal.Zero, fmt.Errorf("failed to load tax config for %s: %w", country, err)
	}
	return helpers.NumericToDecimal(config.StandardRate), nil
}

func (s *TaxService) resolveWithholding(ctx context.Context, in types.ClassificationInput, freelancerCountry, companyCountry string, asOf time.Time, result *types.TaxClassification) error {
	if !result.IsCrossBorder {
		result.WithholdingRate = decimal.Zero
		result.ComplianceNotes = append(result.ComplianceNotes, "Domestic payment: no withholding tax")
		return nil
	}
	if constants.IsEUCountry(freelancerCountry) && constants.IsEUCountry(companyCountry) {
		result.WithholdingRate = decimal.Zero
		result.ComplianceNotes = append(result.ComplianceNotes, "No withholding tax between EU member states")
		return nil
	}

	category := in.IncomeCategory
	if category == "" {
		category = constants.IncomeCategoryServices
	}

	treaty, err := s.queries.GetActiveTreaty(ctx, db.GetActiveTreatyParams{
		CountryA:       freelancerCountry,
		CountryB:       companyCountry,
		IncomeCategory: category,
		AsOf:           helpers.TimeToDate(asOf),
	})
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to look up tax treaty: %w", err)
		}
		rate := s.statutoryRate(freelancerCountry)
		result.WithholdingRate = rate
		result.ComplianceNotes = append(result.ComplianceNotes,
			fmt.Sprintf("No tax treaty on file for %s/%s: statutory withholding at %s%%", freelancerCountry, companyCountry, rate.String()))
		return nil
	}

	rate := helpers.NumericToDecimal(treaty.TreatyRate)
	if rate.IsPositive() && treaty.CertificateRequired.Bool && !in.CertificateOnFile {
		statutory := s.statutoryRate(freelancerCountry)
		result.WithholdingRate = statutory
		result.ComplianceNotes = append(result.ComplianceNotes,
			fmt.Sprintf("Treaty rate requires a residency certificate; statutory withholding at %s%% applied", statutory.String()))
		return nil
	}

	result.WithholdingRate = rate
	result.TreatyApplied = true
	result.ComplianceNotes = append(result.ComplianceNotes,
		fmt.Sprintf("Tax treaty %s/%s applied: withholding at %s%% on %s income", treaty.CountryA, treaty.CountryB, rate.String(), category))
	return nil
}

// statutoryRate returns the non-treaty withholding rate for the
// freelancer's country of residence.
func (s *TaxService) statutoryRate(country string) decimal.Decimal {
	if rate, ok := constants.DefaultWithholdingRates[country]; ok {
		return decimal.RequireFromString(rate)
	}
	return decimal.RequireFromString(constants.FallbackWithholdingRate)
}

// GetConfig returns the VAT configuration of one country.
func (s *TaxService) GetConfig(ctx context.Context, country string) (*db.TaxConfig, error) {
	config, err := s.queries.GetTaxConfig(ctx, strings.ToUpper(strings.TrimSpace(country)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taxerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tax config: %w", err)
	}
	return &config, nil
}

// ListConfigs returns every configured country.
func (s *TaxService) ListConfigs(ctx context.Context) ([]db.TaxConfig, error) {
	configs, err := s.queries.ListTaxConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax configs: %w", err)
	}
	return configs, nil
}

// UpsertConfig creates or replaces the VAT configuration of a country.
func (s *TaxService) UpsertConfig(ctx context.Context, req types.TaxConfigRequest) (*db.TaxConfig, error) {
	standard, err := helpers.ParseRate(req.StandardRate)
	if err != nil {
		return nil, taxerr.NewFieldValidation("standard_rate", "%v", err)
	}
	reduced := decimal.Zero
	if req.ReducedRate != "" {
		if reduced, err = helpers.ParseRate(req.ReducedRate); err != nil {
			return nil, taxerr.NewFieldValidation("reduced_rate", "%v", err)
		}
	}
	currency := helpers.NormalizeCurrency(req.Currency)
	if !helpers.IsSupportedCurrency(currency) {
		return nil, &taxerr.InvalidCurrencyError{Currency: req.Currency}
	}

	config, err := s.queries.UpsertTaxConfig(ctx, db.UpsertTaxConfigParams{
		Country:      strings.ToUpper(strings.TrimSpace(req.Country)),
		CountryName:  req.CountryName,
		StandardRate: helpers.DecimalToNumeric(standard),
		ReducedRate:  helpers.DecimalToNumeric(reduced),
		IsEu:         req.IsEU,
		Currency:     currency,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert tax config: %w", err)
	}

	s.logger.Info("Upserted tax config",
		zap.String("country", config.Country),
		zap.String("standard_rate", standard.String()))
	return &config, nil
}

// treatySeedEffectiveFrom is the effective date assigned to the default
// treaty records installed by SeedReferenceData.
const treatySeedEffectiveFrom = "2020-01-01"

// SeedReferenceData installs the country VAT configurations and the default
// treaty records. Configs are upserted, so reruns refresh them in place;
// a treaty is only inserted when the pair has no active record yet.
func (s *TaxService) SeedReferenceData(ctx context.Context) error {
	if err := s.SeedEUConfigs(ctx); err != nil {
		return err
	}
	for code, profile := range constants.NonEUConfigs {
		if err := s.seedConfig(ctx, code, profile, false); err != nil {
			return err
		}
	}
	return s.seedTreaties(ctx)
}

// SeedEUConfigs loads the VAT configuration of every EU member state.
// Existing rows are overwritten, so it is safe to run on every boot.
func (s *TaxService) SeedEUConfigs(ctx context.Context) error {
	for code, profile := range constants.EUCountries {
		if err := s.seedConfig(ctx, code, profile, true); err != nil {
			return err
		}
	}
	s.logger.Info("Seeded EU tax configs", zap.Int("countries", len(constants.EUCountries)))
	return nil
}

func (s *TaxService) seedConfig(ctx context.Context, code string, profile constants.CountryVATProfile, isEU bool) error {
	_, err := s.queries.UpsertTaxConfig(ctx, db.UpsertTaxConfigParams{
		Country:      code,
		CountryName:  profile.Name,
		StandardRate: helpers.DecimalToNumeric(decimal.RequireFromString(profile.StandardRate)),
		ReducedRate:  helpers.DecimalToNumeric(decimal.RequireFromString(profile.ReducedRate)),
		IsEu:         isEU,
		Currency:     profile.Currency,
	})
	if err != nil {
		return fmt.Errorf("failed to seed tax config for %s: %w", code, err)
	}
	return nil
}

func (s *TaxService) seedTreaties(ctx context.Context) error {
	asOf := helpers.TimeToDate(time.Now())
	for _, seed := range constants.TreatySeeds {
		_, err := s.queries.GetActiveTreaty(ctx, db.GetActiveTreatyParams{
			CountryA:       seed.CountryA,
			CountryB:       seed.CountryB,
			IncomeCategory: constants.IncomeCategoryServices,
			AsOf:           asOf,
		})
		if err == nil {
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to check treaty %s/%s: %w", seed.CountryA, seed.CountryB, err)
		}
		if _, err := s.CreateTreaty(ctx, types.TreatyRequest{
			CountryA:            seed.CountryA,
			CountryB:            seed.CountryB,
			IncomeCategory:      constants.IncomeCategoryServices,
			TreatyRate:          seed.TreatyRate,
			ReducedRate:         seed.ReducedRate,
			CertificateRequired: seed.CertificateRequired,
			EffectiveFrom:       treatySeedEffectiveFrom,
		}); err != nil {
			return err
		}
	}
	return nil
}

// CreateTreaty registers a treaty record for a country pair and income
// category. The pair is stored as given; lookups match either direction.
func (s *TaxService) CreateTreaty(ctx context.Context, req types.TreatyRequest) (*db.TaxTreaty, error) {
	countryA := strings.ToUpper(strings.TrimSpace(req.CountryA))
	countryB := strings.ToUpper(strings.TrimSpace(req.CountryB))
	if countryA == countryB {
		return nil, taxerr.NewValidation("treaty countries must differ")
	}

	treatyRate, err := helpers.ParseRate(req.TreatyRate)
	if err != nil {
		return nil, taxerr.NewFieldValidation("treaty_rate", "%v", err)
	}
	reduced := pgtypeNumericOrNull(req.ReducedRate)
	if req.ReducedRate != "" {
		if _, err := helpers.ParseRate(req.ReducedRate); err != nil {
			return nil, taxerr.NewFieldValidation("reduced_rate", "%v", err)
		}
	}

	effectiveFrom, err := parseDate(req.EffectiveFrom)
	if err != nil {
		return nil, taxerr.NewFieldValidation("effective_from", "%v", err)
	}
	var effectiveTo time.Time
	if req.EffectiveTo != "" {
		if effectiveTo, err = parseDate(req.EffectiveTo); err != nil {
			return nil, taxerr.NewFieldValidation("effective_to", "%v", err)
		}
		if !effectiveTo.After(effectiveFrom) {
			return nil, taxerr.NewFieldValidation("effective_to", "must be after effective_from")
		}
	}

	treaty, err := s.queries.CreateTaxTreaty(ctx, db.CreateTaxTreatyParams{
		CountryA:            countryA,
		CountryB:            countryB,
		IncomeCategory:      req.IncomeCategory,
		TreatyRate:          helpers.DecimalToNumeric(treatyRate),
		ReducedRate:         reduced,
		CertificateRequired: helpers.BoolToNullableBool(req.CertificateRequired),
		Active:              helpers.BoolToNullableBool(true),
		EffectiveFrom:       helpers.TimeToDate(effectiveFrom),
		EffectiveTo:         helpers.TimeToNullableDate(effectiveTo),
		Notes:               helpers.StringToNullableText(req.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tax treaty: %w", err)
	}

	s.logger.Info("Created tax treaty",
		zap.String("country_a", countryA),
		zap.String("country_b", countryB),
		zap.String("income_category", req.IncomeCategory),
		zap.String("treaty_rate", treatyRate.String()))
	return &treaty, nil
}

// ListTreaties returns treaty records, most recent first.
func (s *TaxService) ListTreaties(ctx context.Context, limit, offset int32) ([]db.TaxTreaty, error) {
	treaties, err := s.queries.ListTaxTreaties(ctx, db.ListTaxTreatiesParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("failed to list tax treaties: %w", err)
	}
	return treaties, nil
}

// DeactivateTreaty retires a treaty record without deleting its history.
func (s *TaxService) DeactivateTreaty(ctx context.Context, id uuid.UUID) (*db.TaxTreaty, error) {
	treaty, err := s.queries.DeactivateTaxTreaty(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taxerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to deactivate tax treaty: %w", err)
	}
	return &treaty, nil
}
