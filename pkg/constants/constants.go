// Package constants provides shared constants for the loan-pv application.
package constants

// Validation limits for present value calculations.
const (
	// MaxPayment is the largest accepted periodic payment amount (1 billion).
	MaxPayment = 1_000_000_000.0

	// MinPeriods is the smallest accepted number of payment periods.
	MinPeriods = 1

	// MaxPeriods is the largest accepted number of payment periods
	// (50 years of monthly payments).
	MaxPeriods = 600

	// MaxPeriodicRate is the cap on the derived per-period interest rate
	// (100% per period).
	MaxPeriodicRate = 1.0
)

// Payment frequencies, expressed as periods per year.
const (
	FrequencyAnnual     = 1
	FrequencySemiannual = 2
	FrequencyQuarterly  = 4
	FrequencyMonthly    = 12
	FrequencyWeekly     = 52
	FrequencyDaily      = 365

	// DefaultPeriodsPerYear is the payment frequency assumed when none is
	// configured.
	DefaultPeriodsPerYear = FrequencyMonthly
)

// ValidFrequencies enumerates the accepted periods-per-year values.
var ValidFrequencies = []int{
	FrequencyAnnual,
	FrequencySemiannual,
	FrequencyQuarterly,
	FrequencyMonthly,
	FrequencyWeekly,
	FrequencyDaily,
}

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)
