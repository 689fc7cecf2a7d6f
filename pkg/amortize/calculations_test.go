package amortize

import (
	"math"
	"testing"

	"github.com/iwvelando/loan-projection/pkg/mortgage"
	"github.com/iwvelando/loan-projection/pkg/testutil"
)

func TestRepayment(t *testing.T) {
	tests := []struct {
		name      string
		price     float64
		deposit   float64
		rate      float64
		term      float64
		frequency mortgage.Frequency
		expected  float64
	}{
		{
			name:      "reference 25-year mortgage",
			price:     100000,
			deposit:   0.1,
			rate:      0.0597,
			term:      25,
			frequency: mortgage.Monthly,
			// principal 90000 at the geometric period rate of 5.97% annual
			expected: 569.61,
		},
		{
			name:      "zero rate falls back to straight division",
			price:     100000,
			deposit:   0.1,
			rate:      0,
			term:      25,
			frequency: mortgage.Monthly,
			expected:  300.00, // 90000 / (12 * 25)
		},
		{
			name:      "full deposit",
			price:     50000,
			deposit:   1.0,
			rate:      0.05,
			term:      10,
			frequency: mortgage.Monthly,
			expected:  0,
		},
		{
			name:      "zero term has no payment stream",
			price:     100000,
			deposit:   0.1,
			rate:      0.05,
			term:      0,
			frequency: mortgage.Monthly,
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan, err := mortgage.NewFromValues(tt.price, tt.deposit, tt.rate, tt.term, tt.frequency)
			if err != nil {
				t.Fatalf("NewFromValues() unexpected error: %v", err)
			}
			got := Repayment(loan)
			if !testutil.Approx(got, tt.expected, 0.01) {
				t.Errorf("Repayment() = %.4f, expected %.2f", got, tt.expected)
			}
		})
	}
}

func TestRepaymentSolvesAnnuityIdentity(t *testing.T) {
	loan := testutil.ReferenceLoan()

	d := float64(loan.PeriodsPerYear())
	i := loan.PeriodRate()
	a := (1 - math.Pow(1+loan.Rate().Value(), -loan.Term())) / (d * i)
	payment := Repayment(loan)

	// principal = d * P * a
	if !testutil.Approx(d*payment*a, loan.Principal(), 1e-6) {
		t.Errorf("d*P*a = %v, expected principal %v", d*payment*a, loan.Principal())
	}
}

func TestComputeInitialConditions(t *testing.T) {
	s := Compute(testutil.ReferenceLoan())

	if s.LoanOutstanding[0] != 90000 {
		t.Errorf("LoanOutstanding[0] = %v, expected principal 90000", s.LoanOutstanding[0])
	}
	if s.CumulativeInterest[0] != 0 {
		t.Errorf("CumulativeInterest[0] = %v, expected 0", s.CumulativeInterest[0])
	}
	if s.CumulativePayments[0] != 0 {
		t.Errorf("CumulativePayments[0] = %v, expected 0", s.CumulativePayments[0])
	}
	if s.Time[0] != 0 {
		t.Errorf("Time[0] = %v, expected 0", s.Time[0])
	}
}

func TestComputeTimeAxis(t *testing.T) {
	s := Compute(testutil.ReferenceLoan())

	if s.Points() != 301 {
		t.Fatalf("Points() = %d, expected 301 (0 to 25 years step 1/12)", s.Points())
	}
	last := s.Time[len(s.Time)-1]
	if !testutil.Approx(last, 25, 1e-9) {
		t.Errorf("final time = %v, expected 25", last)
	}
	for j := 1; j < len(s.Time); j++ {
		if s.Time[j] <= s.Time[j-1] {
			t.Fatalf("time axis not strictly increasing at %d: %v <= %v", j, s.Time[j], s.Time[j-1])
		}
	}
}

func TestComputeFractionalTermTruncates(t *testing.T) {
	loan, err := mortgage.NewFromValues(100000, 0.1, 0.0597, 25.04, mortgage.Monthly)
	if err != nil {
		t.Fatalf("NewFromValues() unexpected error: %v", err)
	}
	s := Compute(loan)

	// 25.04 * 12 = 300.48 periods; the axis stops at 300/12, not 25.04.
	if s.Points() != 301 {
		t.Errorf("Points() = %d, expected 301", s.Points())
	}
	last := s.Time[len(s.Time)-1]
	if last > loan.Term() {
		t.Errorf("final time %v exceeds the term %v", last, loan.Term())
	}
	if !testutil.Approx(last, 25, 1e-9) {
		t.Errorf("final time = %v, expected 25", last)
	}
}

func TestComputeFullyRepaysByTermEnd(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		term float64
	}{
		{name: "reference rate", rate: 0.0597, term: 25},
		{name: "low rate", rate: 0.01, term: 10},
		{name: "high rate", rate: 0.15, term: 30},
		{name: "zero rate", rate: 0, term: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan, err := mortgage.NewFromValues(100000, 0.1, tt.rate, tt.term, mortgage.Monthly)
			if err != nil {
				t.Fatalf("NewFromValues() unexpected error: %v", err)
			}
			s := Compute(loan)
			final := s.LoanOutstanding[len(s.LoanOutstanding)-1]
			if !testutil.Approx(final, 0, 1e-6) {
				t.Errorf("final outstanding = %v, expected ~0", final)
			}
		})
	}
}

func TestComputeCumulativePayments(t *testing.T) {
	s := Compute(testutil.ReferenceLoan())

	final := s.CumulativePayments[len(s.CumulativePayments)-1]
	if !testutil.Approx(final, s.Repayment*300, 1e-6) {
		t.Errorf("final cumulative payments = %v, expected repayment*300 = %v", final, s.Repayment*300)
	}
}

func TestComputeRecurrence(t *testing.T) {
	loan := testutil.ReferenceLoan()
	s := Compute(loan)
	i := loan.PeriodRate()

	for j := 1; j <= 3; j++ {
		interest := i * s.LoanOutstanding[j-1]
		wantOutstanding := s.LoanOutstanding[j-1] - (s.Repayment - interest)
		if !testutil.Approx(s.LoanOutstanding[j], wantOutstanding, 1e-9) {
			t.Errorf("LoanOutstanding[%d] = %v, expected %v", j, s.LoanOutstanding[j], wantOutstanding)
		}
		if !testutil.Approx(s.CumulativeInterest[j], s.CumulativeInterest[j-1]+interest, 1e-9) {
			t.Errorf("CumulativeInterest[%d] = %v, expected %v", j, s.CumulativeInterest[j], s.CumulativeInterest[j-1]+interest)
		}
	}
}

func TestComputeAnnualFrequency(t *testing.T) {
	loan, err := mortgage.NewFromValues(100000, 0.1, 0.05, 10, mortgage.Annually)
	if err != nil {
		t.Fatalf("NewFromValues() unexpected error: %v", err)
	}
	s := Compute(loan)

	if s.Points() != 11 {
		t.Errorf("Points() = %d, expected 11 (0 to 10 years step 1)", s.Points())
	}
	// With one period per year the period rate equals the annual rate.
	if !testutil.Approx(loan.PeriodRate(), 0.05, 1e-12) {
		t.Errorf("PeriodRate() = %v, expected 0.05", loan.PeriodRate())
	}
	final := s.LoanOutstanding[len(s.LoanOutstanding)-1]
	if !testutil.Approx(final, 0, 1e-6) {
		t.Errorf("final outstanding = %v, expected ~0", final)
	}
}
