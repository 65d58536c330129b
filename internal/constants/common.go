package constants

// Deployment stages
const (
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"
	StageTest  = "test"
)

// Log levels
const (
	ErrorLevel = "error"
)

// Supported payout currencies. Conversion is refused for anything else.
var SupportedCurrencies = map[string]bool{
	"EUR": true,
	"USD": true,
	"GBP": true,
	"CHF": true,
	"SEK": true,
	"DKK": true,
	"NOK": true,
	"PLN": true,
	"CZK": true,
	"HUF": true,
	"RON": true,
	"BGN": true,
	"INR": true,
	"JPY": true,
	"AUD": true,
	"CAD": true,
	"SGD": true,
	"CNY": true,
	"BRL": true,
	"KRW": true,
}
