// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/loan-projection/pkg/mathutil"
	"github.com/iwvelando/loan-projection/pkg/mortgage"
)

// ReferenceLoan returns the fixture loan used across the test suites:
// price 100000, deposit 10%, rate 5.97%, 25-year term, monthly repayments.
func ReferenceLoan() mortgage.Mortgage {
	loan, err := mortgage.NewFromValues(100000, 0.1, 0.0597, 25, mortgage.Monthly)
	if err != nil {
		panic(err)
	}
	return loan
}

// Approx reports whether two values agree within the given tolerance.
func Approx(a, b, tolerance float64) bool {
	return mathutil.WithinTolerance(a, b, tolerance)
}
