// Package config defines the data structures related to configuration and
// includes functions for loading and converting the config into the typed
// loan model.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/iwvelando/loan-projection/pkg/constants"
	"github.com/iwvelando/loan-projection/pkg/money"
	"github.com/iwvelando/loan-projection/pkg/mortgage"
	"github.com/iwvelando/loan-projection/pkg/percent"
)

// Configuration holds all configuration for loan-projection.
type Configuration struct {
	Loan     LoanConfig
	Currency CurrencyConfig `yaml:"currency,omitempty"`
	Display  string         `yaml:"display,omitempty"`
	Sweep    *SweepConfig   `yaml:"sweep,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
}

// LoanConfig holds the raw loan parameters before typed construction.
type LoanConfig struct {
	Price     float64
	Deposit   float64
	Rate      float64
	Term      float64
	Frequency string `yaml:"frequency,omitempty"`
}

// CurrencyConfig holds the currency symbol and its conversion table.
type CurrencyConfig struct {
	Symbol      string             `yaml:"symbol,omitempty"`
	Conversions map[string]float64 `yaml:"conversions,omitempty"`
}

// SweepConfig names the parameter to vary and the values to vary it over.
type SweepConfig struct {
	Variable string
	Values   []float64
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Mortgage converts the raw configuration into a validated Mortgage. All
// domain errors from the value-type factories surface unchanged.
func (c *Configuration) Mortgage() (mortgage.Mortgage, error) {
	frequency := mortgage.Monthly
	if c.Loan.Frequency != "" {
		parsed, err := mortgage.ParseFrequency(c.Loan.Frequency)
		if err != nil {
			return mortgage.Mortgage{}, err
		}
		frequency = parsed
	}

	if c.Currency.Symbol == "" {
		return mortgage.NewFromValues(c.Loan.Price, c.Loan.Deposit, c.Loan.Rate, c.Loan.Term, frequency)
	}

	currency, err := c.currency()
	if err != nil {
		return mortgage.Mortgage{}, err
	}
	deposit, err := percent.New(c.Loan.Deposit)
	if err != nil {
		return mortgage.Mortgage{}, err
	}
	rate, err := percent.New(c.Loan.Rate)
	if err != nil {
		return mortgage.Mortgage{}, err
	}
	price := money.NewNominal(c.Loan.Price, currency)
	return mortgage.New(price, deposit, rate, c.Loan.Term, frequency, true)
}

func (c *Configuration) currency() (money.Currency, error) {
	if len(c.Currency.Conversions) == 0 {
		return money.New(c.Currency.Symbol), nil
	}
	return money.NewWithConversions(c.Currency.Symbol, c.Currency.Conversions)
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard failures are left to the typed constructors.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Loan.Deposit >= 1 {
		warnings = append(warnings,
			fmt.Sprintf("deposit %g covers the full price; the loan principal will not be positive", c.Loan.Deposit))
	}
	if c.Loan.Rate > 1 {
		warnings = append(warnings,
			fmt.Sprintf("rate %g looks like percentage points; rates are fractions (e.g. 0.0597 for 5.97%%)", c.Loan.Rate))
	}
	if c.Sweep != nil && len(c.Sweep.Values) == 0 {
		warnings = append(warnings, "sweep is configured with no values; it will produce no schedules")
	}
	if c.Display != "" {
		symbol := c.Currency.Symbol
		if symbol == "" {
			symbol = constants.DefaultCurrencySymbol
		}
		if _, ok := c.Currency.Conversions[c.Display]; !ok && c.Display != symbol {
			warnings = append(warnings,
				fmt.Sprintf("display currency %s is not in the conversion table; conversion will fail", c.Display))
		}
	}

	return warnings
}
