package amortize

import (
	"testing"

	"go.uber.org/zap"

	"github.com/iwvelando/loan-projection/pkg/mortgage"
	"github.com/iwvelando/loan-projection/pkg/testutil"
)

func TestRateForRepayment(t *testing.T) {
	loan := testutil.ReferenceLoan()
	target := Repayment(loan)

	rate, err := RateForRepayment(zap.NewNop(), loan, target)
	if err != nil {
		t.Fatalf("RateForRepayment() unexpected error: %v", err)
	}
	// The recovered rate must reproduce the target payment within the solver
	// tolerance; the rate itself should land near the loan's stated 5.97%.
	if !testutil.Approx(rate, 0.0597, 0.001) {
		t.Errorf("RateForRepayment() = %v, expected ~0.0597", rate)
	}
	variant, err := loan.WithRate(rate)
	if err != nil {
		t.Fatalf("WithRate() unexpected error: %v", err)
	}
	if !testutil.Approx(Repayment(variant), target, 0.01) {
		t.Errorf("repayment at solved rate = %v, expected %v", Repayment(variant), target)
	}
}

func TestRateForRepaymentOutOfRange(t *testing.T) {
	loan := testutil.ReferenceLoan()

	// Below the zero-rate payment no rate can reach the target.
	if _, err := RateForRepayment(nil, loan, 1); err == nil {
		t.Error("RateForRepayment() should fail for an unattainably low target")
	}
	if _, err := RateForRepayment(nil, loan, 1e12); err == nil {
		t.Error("RateForRepayment() should fail for an unattainably high target")
	}
}

func TestRateForRepaymentEmptyStream(t *testing.T) {
	loan, err := mortgage.NewFromValues(100000, 0.1, 0.05, 0, mortgage.Monthly)
	if err != nil {
		t.Fatalf("NewFromValues() unexpected error: %v", err)
	}
	if _, err := RateForRepayment(nil, loan, 500); err == nil {
		t.Error("RateForRepayment() should fail for a zero-year term")
	}
}
