package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
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

// FreelancerService manages freelancer profiles, their tax identifiers,
// VAT registration checks, GDPR consents, and anonymization.
type FreelancerService struct {
	queries   db.Querier
	validator VATRegistryValidator
	logger    *zap.Logger
}

// NewFreelancerService creates a new freelancer service. The registry
// validator may be nil; VAT checks then stop at the format stage.
func NewFreelancerService(queries db.Querier, validator VATRegistryValidator) *FreelancerService {
	return &FreelancerService{
		queries:   queries,
		validator: validator,
		logger:    logger.Log,
	}
}

// Create registers a freelancer profile. Tax identifiers and VAT numbers
// are format-checked up front; countries without a known format pass
// unvalidated.
func (s *FreelancerService) Create(ctx context.Context, req types.CreateFreelancerRequest) (*db.Freelancer, error) {
	country := strings.ToUpper(strings.TrimSpace(req.Country))
	currency := helpers.NormalizeCurrency(req.DefaultCurrency)
	if !helpers.IsSupportedCurrency(currency) {
		return nil, &taxerr.InvalidCurrencyError{Currency: req.DefaultCurrency}
	}

	if _, err := s.queries.GetFreelancerByEmail(ctx, req.Email); err == nil {
		return nil, taxerr.NewFieldValidation("email", "already registered")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	taxIDValidated := false
	if req.TaxID != "" {
		check := helpers.ValidateTaxID(req.TaxID, country)
		if !check.Valid {
			return nil, taxerr.NewFieldValidation("tax_id", "%s", check.Message)
		}
		taxIDValidated = check.Validated
	}

	if err := validateVATFields(req.VATRegistered, req.VATNumber, country); err != nil {
		return nil, err
	}

	defaultRate, rateUnit, err := parseRateFields(req.DefaultRate, req.RateUnit)
	if err != nil {
		return nil, err
	}
	certificateValidUntil, err := parseOptionalDate(req.CertificateValidUntil)
	if err != nil {
		return nil, taxerr.NewFieldValidation("certificate_valid_until", "%v", err)
	}

	freelancer, err := s.queries.CreateFreelancer(ctx, db.CreateFreelancerParams{
		FullName:                req.FullName,
		Email:                   req.Email,
		Country:                 country,
		DefaultCurrency:         currency,
		Status:                  constants.FreelancerStatusActive,
		VatNumber:               helpers.StringToNullableText(helpers.NormalizeVATNumber(req.VATNumber)),
		VatRegistered:           helpers.BoolToNullableBool(req.VATRegistered),
		TaxID:                   helpers.StringToNullableText(req.TaxID),
		TaxIDValidated:          helpers.BoolToNullableBool(taxIDValidated),
		ResidencyCertificateRef: helpers.StringToNullableText(req.ResidencyCertificateRef),
		CertificateValidUntil:   helpers.TimeToNullableDate(certificateValidUntil),
		Iban:                    helpers.StringToNullableText(req.IBAN),
		TaxResidencyCountry:     helpers.StringToNullableText(strings.ToUpper(strings.TrimSpace(req.TaxResidencyCountry))),
		DefaultRate:             defaultRate,
		RateUnit:                rateUnit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create freelancer: %w", err)
	}

	s.logger.Info("Created freelancer",
		zap.String("freelancer_id", freelancer.ID.String()),
		zap.String("country", country),
		zap.Bool("vat_registered", req.VATRegistered))
	return &freelancer, nil
}

// validateVATFields requires a VAT number whenever the profile claims VAT
// registration, and format-checks any number given. A number without
// registration is allowed; registry validation can confirm it later.
func validateVATFields(registered bool, vatNumber, country string) error {
	if registered && vatNumber == "" {
		return taxerr.NewFieldValidation("vat_number", "required when vat_registered is set")
	}
	if vatNumber != "" {
		if err := helpers.CheckVATNumberFormat(vatNumber, country); err != nil {
			return taxerr.NewFieldValidation("vat_number", "%v", err)
		}
	}
	return nil
}

// Update replaces the mutable fields of a profile.
func (s *FreelancerService) Update(ctx context.Context, id uuid.UUID, req types.UpdateFreelancerRequest) (*db.Freelancer, error) {
	current, err := s.getFreelancer(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == constants.FreelancerStatusAnonymous {
		return nil, taxerr.NewValidation("anonymized profiles cannot be updated")
	}

	country := strings.ToUpper(strings.TrimSpace(req.Country))
	currency := helpers.NormalizeCurrency(req.DefaultCurrency)
	if !helpers.IsSupportedCurrency(currency) {
		return nil, &taxerr.InvalidCurrencyError{Currency: req.DefaultCurrency}
	}

	taxIDValidated := false
	if req.TaxID != "" {
		check := helpers.ValidateTaxID(req.TaxID, country)
		if !check.Valid {
			return nil, taxerr.NewFieldValidation("tax_id", "%s", check.Message)
		}
		taxIDValidated = check.Validated
	}
	if err := validateVATFields(req.VATRegistered, req.VATNumber, country); err != nil {
		return nil, err
	}

	defaultRate, rateUnit, err := parseRateFields(req.DefaultRate, req.RateUnit)
	if err != nil {
		return nil, err
	}
	certificateValidUntil, err := parseOptionalDate(req.CertificateValidUntil)
	if err != nil {
		return nil, taxerr.NewFieldValidation("certificate_valid_until", "%v", err)
	}

	status := req.Status
	if status == "" {
		status = current.Status
	}

	freelancer, err := s.queries.UpdateFreelancer(ctx, db.UpdateFreelancerParams{
		ID:                      id,
		FullName:                req.FullName,
		Email:                   req.Email,
		Country:                 country,
		DefaultCurrency:         currency,
		Status:                  status,
		VatNumber:               helpers.StringToNullableText(helpers.NormalizeVATNumber(req.VATNumber)),
		VatRegistered:           helpers.BoolToNullableBool(req.VATRegistered),
		TaxID:                   helpers.StringToNullableText(req.TaxID),
		TaxIDValidated:          helpers.BoolToNullableBool(taxIDValidated),
		ResidencyCertificateRef: helpers.StringToNullableText(req.ResidencyCertificateRef),
		CertificateValidUntil:   helpers.TimeToNullableDate(certificateValidUntil),
		Iban:                    helpers.StringToNullableText(req.IBAN),
		TaxResidencyCountry:     helpers.StringToNullableText(strings.ToUpper(strings.TrimSpace(req.TaxResidencyCountry))),
		DefaultRate:             defaultRate,
		RateUnit:                rateUnit,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taxerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update freelancer: %w", err)
	}

	s.logger.Info("Updated freelancer", zap.String("freelancer_id", id.String()))
	return &freelancer, nil
}

// Get returns one profile.
func (s *FreelancerService) Get(ctx context.Context, id uuid.UUID) (*db.Freelancer, error) {
	return s.getFreelancer(ctx, id)
}

// List returns profiles with the total count.
func (s *FreelancerService) List(ctx context.Context, limit, offset int32) ([]db.Freelancer, int64, error) {
	freelancers, err := s.queries.ListFreelancers(ctx, db.ListFreelancersParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list freelancers: %w", err)
	}
	total, err := s.queries.CountFreelancers(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count freelancers: %w", err)
	}
	return freelancers, total, nil
}

// ValidateVAT checks a freelancer's VAT number, first by format, then
// against the registry. A registry timeout degrades to an advisory result
// instead of failing; the stored validated flag then stays unchanged.
func (s *FreelancerService) ValidateVAT(ctx context.Context, id uuid.UUID) (*types.VATValidationResult, error) {
	freelancer, err := s.getFreelancer(ctx, id)
	if err != nil {
		return nil, err
	}
	vatNumber := helpers.TextToString(freelancer.VatNumber)
	if vatNumber == "" {
		return nil, taxerr.NewValidation("freelancer has no VAT number on file")
	}

	if err := helpers.CheckVATNumberFormat(vatNumber, freelancer.Country); err != nil {
		return &types.VATValidationResult{
			CountryCode: freelancer.Country,
			VATNumber:   vatNumber,
			Valid:       false,
			Message:     err.Error(),
			CheckedAt:   time.Now(),
		}, nil
	}

	if s.validator == nil {
		return &types.VATValidationResult{
			CountryCode: freelancer.Country,
			VATNumber:   vatNumber,
			Valid:       true,
			Advisory:    true,
			Message:     "format check only, registry validation unavailable",
			CheckedAt:   time.Now(),
		}, nil
	}

	result, err := s.validator.CheckVAT(ctx, helpers.ExpectedVATPrefix(freelancer.Country), vatNumber)
	if err != nil {
		var timeout *taxerr.ExternalServiceTimeoutError
		if errors.As(err, &timeout) {
			s.logger.Warn("VAT registry unavailable, returning advisory result",
				zap.String("freelancer_id", id.String()),
				zap.Error(err))
			return &types.VATValidationResult{
				CountryCode: freelancer.Country,
				VATNumber:   vatNumber,
				Valid:       true,
				Advisory:    true,
				Message:     "registry did not respond, format check only",
				CheckedAt:   time.Now(),
			}, nil
		}
		return nil, err
	}

	if result.Valid {
		if _, err := s.queries.UpdateFreelancerVATStatus(ctx, db.UpdateFreelancerVATStatusParams{
			ID:             id,
			VatRegistered:  helpers.BoolToNullableBool(true),
			VatValidated:   helpers.BoolToNullableBool(true),
			VatValidatedAt: helpers.TimeToNullableTimestamptz(time.Now()),
		}); err != nil {
			return nil, fmt.Errorf("failed to record VAT validation: %w", err)
		}
	}

	s.logger.Info("Validated VAT number",
		zap.String("freelancer_id", id.String()),
		zap.Bool("valid", result.Valid),
		zap.Bool("advisory", result.Advisory))
	return result, nil
}

// CheckTaxID format-checks an arbitrary tax identifier for a country.
func (s *FreelancerService) CheckTaxID(taxID, country string) helpers.TaxIDCheck {
	return helpers.ValidateTaxID(taxID, country)
}

// GrantConsent records one GDPR consent decision.
func (s *FreelancerService) GrantConsent(ctx context.Context, id uuid.UUID, req types.ConsentRequest) (*db.FreelancerConsent, error) {
	if _, err := s.getFreelancer(ctx, id); err != nil {
		return nil, err
	}
	if !req.Granted {
		revoked, err := s.queries.RevokeFreelancerConsent(ctx, db.RevokeFreelancerConsentParams{
			FreelancerID: id,
			ConsentType:  req.ConsentType,
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, taxerr.ErrNotFound
			}
			return nil, fmt.Errorf("failed to revoke consent: %w", err)
		}
		return &revoked, nil
	}

	consent, err := s.queries.CreateFreelancerConsent(ctx, db.CreateFreelancerConsentParams{
		FreelancerID: id,
		ConsentType:  req.ConsentType,
		Granted:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record consent: %w", err)
	}

	s.logger.Info("Recorded consent",
		zap.String("freelancer_id", id.String()),
		zap.String("consent_type", req.ConsentType))
	return &consent, nil
}

// ListConsents returns the consent trail of one freelancer.
func (s *FreelancerService) ListConsents(ctx context.Context, id uuid.UUID) ([]db.FreelancerConsent, error) {
	consents, err := s.queries.ListFreelancerConsents(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list consents: %w", err)
	}
	return consents, nil
}

// Anonymize scrubs the personal data of a freelancer under GDPR erasure.
// Refused while any contract is still active; payment history keeps its
// aggregate amounts under the anonymized identity.
func (s *FreelancerService) Anonymize(ctx context.Context, id uuid.UUID) (*db.Freelancer, error) {
	freelancer, err := s.getFreelancer(ctx, id)
	if err != nil {
		return nil, err
	}
	if freelancer.Status == constants.FreelancerStatusAnonymous {
		return freelancer, nil
	}

	contracts, err := s.queries.ListContractsByFreelancer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	for _, contract := range contracts {
		if contract.Status == constants.ContractStatusActive || contract.Status == constants.ContractStatusDraft {
			return nil, taxerr.NewValidation("cannot anonymize a freelancer with open contracts")
		}
	}

	anonymized, err := s.queries.AnonymizeFreelancer(ctx, db.AnonymizeFreelancerParams{
		ID:       id,
		FullName: "Anonymized Freelancer",
		Email:    fmt.Sprintf("anonymized-%s@redacted.invalid", id.String()[:8]),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to anonymize freelancer: %w", err)
	}

	s.logger.Info("Anonymized freelancer", zap.String("freelancer_id", id.String()))
	return &anonymized, nil
}

// Summary aggregates a freelancer's contract and payment position.
func (s *FreelancerService) Summary(ctx context.Context, id uuid.UUID) (*types.FreelancerSummary, error) {
	freelancer, err := s.getFreelancer(ctx, id)
	if err != nil {
		return nil, err
	}
	contracts, err := s.queries.ListContractsByFreelancer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	totals, err := s.queries.GetFreelancerPaymentTotals(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment totals: %w", err)
	}

	active := 0
	for _, contract := range contracts {
		if contract.Status == constants.ContractStatusActive {
			active++
		}
	}

	return &types.FreelancerSummary{
		FreelancerID:      freelancer.ID.String(),
		FullName:          freelancer.FullName,
		Country:           freelancer.Country,
		Status:            freelancer.Status,
		ActiveContracts:   active,
		TotalContracts:    len(contracts),
		TotalPaid:         helpers.NumericToDecimal(totals.TotalPaid),
		TotalPending:      helpers.NumericToDecimal(totals.TotalPending),
		TotalWithheld:     helpers.NumericToDecimal(totals.TotalWithheld),
		PaymentCount:      totals.PaymentCount,
		VATRegistered:     freelancer.VatRegistered.Bool,
		VATValidated:      freelancer.VatValidated.Bool,
		CertificateOnFile: certificateOnFile(*freelancer, time.Now()),
	}, nil
}

func (s *FreelancerService) getFreelancer(ctx context.Context, id uuid.UUID) (*db.Freelancer, error) {
	freelancer, err := s.queries.GetFreelancer(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taxerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get freelancer: %w", err)
	}
	return &freelancer, nil
}

// parseRateFields validates the default rate and its unit together.
func parseRateFields(rate, unit string) (pgtype.Numeric, pgtype.Text, error) {
	if rate == "" {
		return pgtype.Numeric{Valid: false}, pgtype.Text{Valid: false}, nil
	}
	parsed, err := decimal.NewFromString(rate)
	if err != nil || !parsed.IsPositive() {
		return pgtype.Numeric{}, pgtype.Text{}, taxerr.NewFieldValidation("default_rate", "must be a positive decimal")
	}
	if unit == "" {
		unit = constants.RateUnitHourly
	}
	return helpers.DecimalToNumeric(parsed), helpers.StringToNullableText(unit), nil
}
