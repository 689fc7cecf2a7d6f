package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency returns a currency string with the given symbol and thousands
// separators (e.g., "-£1,234.56").
func Currency(amount float64, symbol string) string {
	formatted := formatPositiveCurrency(amount)
	if amount < 0 {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}

// NumericCurrency returns a currency string without a currency symbol but
// with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + formatPositiveCurrency(amount)
}

func formatPositiveCurrency(value float64) string {
	// decimal gives exact half-up rounding to two places; fmt's %.2f rounds
	// half-to-even, which misprints some cent boundaries.
	formatted := decimal.NewFromFloat(value).Abs().Round(2).StringFixed(2)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
