package helpers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hrplatform/freelancer-api/internal/constants"
)

type taxIDPattern struct {
	Name    string
	Pattern *regexp.Regexp
	Example string
}

// taxIDPatterns maps ISO country codes to the national tax identifier format.
var taxIDPatterns = map[string]taxIDPattern{
	"NL": {Name: "BSN", Pattern: regexp.MustCompile(`^\d{9}$`), Example: "123456789"},
	"DE": {Name: "Steuernummer", Pattern: regexp.MustCompile(`^\d{10,11}$`), Example: "12345678901"},
	"GB": {Name: "UTR", Pattern: regexp.MustCompile(`^\d{10}$`), Example: "1234567890"},
	"US": {Name: "SSN/EIN", Pattern: regexp.MustCompile(`^(\d{9}|\d{3}-\d{2}-\d{4}|\d{2}-\d{7})$`), Example: "123-45-6789 or 12-3456789"},
	"FR": {Name: "Numéro fiscal", Pattern: regexp.MustCompile(`^\d{13}$`), Example: "1234567890123"},
	"BE": {Name: "Numéro national", Pattern: regexp.MustCompile(`^\d{11}$`), Example: "12345678901"},
}

// TaxIDCheck is the outcome of a tax identifier format validation.
type TaxIDCheck struct {
	Valid     bool
	Validated bool
	Message   string
}

// ValidateTaxID checks a national tax identifier against the format for the
// given country. Countries without a known pattern pass with Validated false.
func ValidateTaxID(taxID, country string) TaxIDCheck {
	config, ok := taxIDPatterns[strings.ToUpper(strings.TrimSpace(country))]
	if !ok {
		return TaxIDCheck{Valid: true, Validated: false, Message: fmt.Sprintf("no validation pattern for %s", country)}
	}

	cleaned := strings.NewReplacer(" ", "", "-", "", ".", "").Replace(taxID)
	if config.Pattern.MatchString(cleaned) || config.Pattern.MatchString(taxID) {
		return TaxIDCheck{Valid: true, Validated: true, Message: fmt.Sprintf("valid %s format", config.Name)}
	}

	return TaxIDCheck{
		Valid:     false,
		Validated: true,
		Message:   fmt.Sprintf("invalid %s format, expected format like %s", config.Name, config.Example),
	}
}

// NormalizeVATNumber strips separators and upper-cases a VAT number.
func NormalizeVATNumber(vatNumber string) string {
	return strings.ToUpper(strings.NewReplacer(" ", "", ".", "", "-", "").Replace(vatNumber))
}

// ExpectedVATPrefix returns the VAT number prefix for a country. Greece uses
// EL rather than its ISO code.
func ExpectedVATPrefix(country string) string {
	country = strings.ToUpper(strings.TrimSpace(country))
	if prefix, ok := constants.VATNumberPrefixes[country]; ok {
		return prefix
	}
	return country
}

// CheckVATNumberFormat verifies the prefix and minimum length of a VAT
// number before any registry lookup is attempted.
func CheckVATNumberFormat(vatNumber, country string) error {
	normalized := NormalizeVATNumber(vatNumber)
	prefix := ExpectedVATPrefix(country)

	if !strings.HasPrefix(normalized, prefix) {
		return fmt.Errorf("VAT number must start with %s", prefix)
	}

	minLen, ok := constants.VATNumberMinLengths[strings.ToUpper(strings.TrimSpace(country))]
	if !ok {
		minLen = constants.VATNumberMinLengthDefault
	}
	if len(normalized) < minLen {
		return fmt.Errorf("VAT number too short, expected at least %d characters", minLen)
	}

	return nil
}
