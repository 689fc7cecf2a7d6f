// Package money defines the monetary value types: a Currency carrying its
// conversion-factor table and a Nominal pairing an amount with a Currency.
package money

import (
	"github.com/iwvelando/loan-projection/pkg/constants"
	"github.com/iwvelando/loan-projection/pkg/validation"
)

// Currency identifies a currency symbol together with the conversion factors
// to every symbol it can be re-expressed in. The table always contains the
// currency's own symbol. Conversion tables are shared immutably between all
// values derived from one Currency and are never mutated after construction.
type Currency struct {
	symbol      string
	conversions map[string]float64
}

// New builds a single-currency instance whose table maps the symbol to
// factor 1.
func New(symbol string) Currency {
	return Currency{
		symbol:      symbol,
		conversions: map[string]float64{symbol: 1},
	}
}

// NewWithConversions builds a Currency from a symbol and a conversion table.
// The symbol must appear in the table and every factor must be positive.
func NewWithConversions(symbol string, conversions map[string]float64) (Currency, error) {
	if _, ok := conversions[symbol]; !ok {
		return Currency{}, validation.NewDomainError("currency", symbol, "is not a key of its own conversion table")
	}
	table := make(map[string]float64, len(conversions))
	for sym, factor := range conversions {
		if factor <= 0 {
			return Currency{}, validation.NewDomainError("currency", sym, "must have a positive conversion factor")
		}
		table[sym] = factor
	}
	return Currency{symbol: symbol, conversions: table}, nil
}

// Default returns the implicit currency used when none is specified.
func Default() Currency {
	return New(constants.DefaultCurrencySymbol)
}

// Symbol returns the currency's symbol.
func (c Currency) Symbol() string { return c.symbol }

// Conversions returns a copy of the conversion table.
func (c Currency) Conversions() map[string]float64 {
	table := make(map[string]float64, len(c.conversions))
	for sym, factor := range c.conversions {
		table[sym] = factor
	}
	return table
}

// Factor returns the conversion factor for the given symbol.
func (c Currency) Factor(symbol string) (float64, error) {
	factor, ok := c.conversions[symbol]
	if !ok {
		return 0, validation.NewDomainError("currency", symbol, "is not in the conversion table")
	}
	return factor, nil
}

// Reexpress returns a Currency with the same conversion table but the given
// target symbol. The target must be reachable through the table.
func (c Currency) Reexpress(target string) (Currency, error) {
	if _, ok := c.conversions[target]; !ok {
		return Currency{}, validation.NewDomainError("currency", target, "is not in the conversion table")
	}
	return Currency{symbol: target, conversions: c.conversions}, nil
}
