package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		symbol   string
		expected string
	}{
		{name: "small positive", amount: 42.5, symbol: "£", expected: "£42.50"},
		{name: "thousands separators", amount: 1234567.891, symbol: "£", expected: "£1,234,567.89"},
		{name: "negative", amount: -1234.56, symbol: "$", expected: "-$1,234.56"},
		{name: "zero", amount: 0, symbol: "€", expected: "€0.00"},
		{name: "rounds to two decimals", amount: 569.60628, symbol: "£", expected: "£569.61"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount, tt.symbol); got != tt.expected {
				t.Errorf("Currency(%v, %q) = %q, expected %q", tt.amount, tt.symbol, got, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "positive", amount: 90000, expected: "90,000.00"},
		{name: "negative", amount: -0.005, expected: "-0.01"},
		{name: "exactly one thousand", amount: 1000, expected: "1,000.00"},
		{name: "three digits need no separator", amount: 999.99, expected: "999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumericCurrency(tt.amount); got != tt.expected {
				t.Errorf("NumericCurrency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}
