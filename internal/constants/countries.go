package constants

// CountryVATProfile describes the VAT configuration of an EU member state.
// Rates are percentages kept as strings so callers can load them into
// decimals without float conversion.
type CountryVATProfile struct {
	Name         string
	StandardRate string
	ReducedRate  string
	Currency     string
}

// EUCountries maps ISO 3166-1 alpha-2 codes to the VAT profile of each
// EU member state. Used to seed tax configuration and as the membership
// test for reverse-charge handling.
var EUCountries = map[string]CountryVATProfile{
	"AT": {Name: "Austria", StandardRate: "20", ReducedRate: "10", Currency: "EUR"},
	"BE": {Name: "Belgium", StandardRate: "21", ReducedRate: "6", Currency: "EUR"},
	"BG": {Name: "Bulgaria", StandardRate: "20", ReducedRate: "9", Currency: "BGN"},
	"HR": {Name: "Croatia", StandardRate: "25", ReducedRate: "13", Currency: "EUR"},
	"CY": {Name: "Cyprus", StandardRate: "19", ReducedRate: "9", Currency: "EUR"},
	"CZ": {Name: "Czech Republic", StandardRate: "21", ReducedRate: "12", Currency: "CZK"},
	"DK": {Name: "Denmark", StandardRate: "25", ReducedRate: "0", Currency: "DKK"},
	"EE": {Name: "Estonia", StandardRate: "22", ReducedRate: "9", Currency: "EUR"},
	"FI": {Name: "Finland", StandardRate: "24", ReducedRate: "14", Currency: "EUR"},
	"FR": {Name: "France", StandardRate: "20", ReducedRate: "5.5", Currency: "EUR"},
	"DE": {Name: "Germany", StandardRate: "19", ReducedRate: "7", Currency: "EUR"},
	"GR": {Name: "Greece", StandardRate: "24", ReducedRate: "13", Currency: "EUR"},
	"HU": {Name: "Hungary", StandardRate: "27", ReducedRate: "18", Currency: "HUF"},
	"IE": {Name: "Ireland", StandardRate: "23", ReducedRate: "13.5", Currency: "EUR"},
	"IT": {Name: "Italy", StandardRate: "22", ReducedRate: "10", Currency: "EUR"},
	"LV": {Name: "Latvia", StandardRate: "21", ReducedRate: "12", Currency: "EUR"},
	"LT": {Name: "Lithuania", StandardRate: "21", ReducedRate: "9", Currency: "EUR"},
	"LU": {Name: "Luxembourg", StandardRate: "17", ReducedRate: "8", Currency: "EUR"},
	"MT": {Name: "Malta", StandardRate: "18", ReducedRate: "7", Currency: "EUR"},
	"NL": {Name: "Netherlands", StandardRate: "21", ReducedRate: "9", Currency: "EUR"},
	"PL": {Name: "Poland", StandardRate: "23", ReducedRate: "8", Currency: "PLN"},
	"PT": {Name: "Portugal", StandardRate: "23", ReducedRate: "13", Currency: "EUR"},
	"RO": {Name: "Romania", StandardRate: "19", ReducedRate: "9", Currency: "RON"},
	"SK": {Name: "Slovakia", StandardRate: "20", ReducedRate: "10", Currency: "EUR"},
	"SI": {Name: "Slovenia", StandardRate: "22", ReducedRate: "9.5", Currency: "EUR"},
	"ES": {Name: "Spain", StandardRate: "21", ReducedRate: "10", Currency: "EUR"},
	"SE": {Name: "Sweden", StandardRate: "25", ReducedRate: "12", Currency: "SEK"},
}

// IsEUCountry reports whether the ISO code belongs to an EU member state.
func IsEUCountry(code string) bool {
	_, ok := EUCountries[code]
	return ok
}

// NonEUConfigs holds the VAT profiles of the non-EU jurisdictions seeded
// alongside the EU member states. US sales tax is out of VAT scope, so the
// US entry carries zero rates.
var NonEUConfigs = map[string]CountryVATProfile{
	"GB": {Name: "United Kingdom", StandardRate: "20", ReducedRate: "5", Currency: "GBP"},
	"CH": {Name: "Switzerland", StandardRate: "8.1", ReducedRate: "2.6", Currency: "CHF"},
	"US": {Name: "United States", StandardRate: "0", ReducedRate: "0", Currency: "USD"},
}

// TreatySeed describes one default tax treaty record for the services
// income category.
type TreatySeed struct {
	CountryA            string
	CountryB            string
	TreatyRate          string
	ReducedRate         string
	CertificateRequired bool
}

// TreatySeeds lists the treaty records installed at first boot. All require
// a residency certificate before the treaty rate applies.
var TreatySeeds = []TreatySeed{
	{CountryA: "NL", CountryB: "US", TreatyRate: "0", CertificateRequired: true},
	{CountryA: "NL", CountryB: "GB", TreatyRate: "0", CertificateRequired: true},
	{CountryA: "DE", CountryB: "US", TreatyRate: "0", CertificateRequired: true},
	{CountryA: "NL", CountryB: "IN", TreatyRate: "10", ReducedRate: "10", CertificateRequired: true},
}

// DefaultWithholdingRates holds statutory withholding percentages applied to
// cross-border service payments when no tax treaty record is configured.
var DefaultWithholdingRates = map[string]string{
	"US": "30",
	"GB": "20",
	"IN": "10",
	"CN": "10",
	"BR": "15",
	"AU": "30",
	"CA": "25",
	"JP": "20",
	"KR": "20",
	"SG": "0",
	"CH": "0",
}

// FallbackWithholdingRate applies when a cross-border country has neither a
// treaty record nor a default rate.
const FallbackWithholdingRate = "30"

// CurrencySymbols maps currency codes to display symbols for summaries
// and notification emails.
var CurrencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"CHF": "CHF",
	"SEK": "kr",
	"DKK": "kr",
	"NOK": "kr",
	"PLN": "zł",
	"CZK": "Kč",
	"HUF": "Ft",
	"RON": "lei",
	"BGN": "лв",
	"INR": "₹",
	"JPY": "¥",
	"AUD": "A$",
	"CAD": "C$",
}

// VATNumberPrefixes maps ISO country codes to the prefix used in VAT
// identification numbers where the two differ.
var VATNumberPrefixes = map[string]string{
	"GR": "EL",
}

// VATNumberMinLengths holds the minimum VAT number length (prefix included)
// accepted per country before a registry lookup is attempted.
var VATNumberMinLengths = map[string]int{
	"NL": 12,
	"DE": 11,
	"FR": 13,
	"BE": 12,
}

// VATNumberMinLengthDefault applies to countries without a specific entry.
const VATNumberMinLengthDefault = 8

// GDPR retention periods in years per data category.
const (
	RetentionYearsContracts     = 7
	RetentionYearsPayments      = 10
	RetentionYearsPersonalData  = 3
	RetentionYearsCommunication = 2
)
