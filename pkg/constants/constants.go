// Package constants provides shared constants for the loan-projection application.
package constants

// DefaultCurrencySymbol is the symbol attached to monetary values constructed
// without an explicit currency.
const DefaultCurrencySymbol = "£"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// DefaultPercentageMin is the lower bound for bounded percentages (-1000%)
	DefaultPercentageMin = -10.0

	// DefaultPercentageMax is the upper bound for bounded percentages (1000%)
	DefaultPercentageMax = 10.0
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

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// Numerical tolerances
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// RateTolerance is the threshold below which a period rate is treated as zero
	RateTolerance = 1e-12

	// SolverTolerance is the convergence tolerance for the rate bisection solver
	SolverTolerance = 0.01

	// SolverMaxIterations caps the rate bisection solver
	SolverMaxIterations = 200
)
