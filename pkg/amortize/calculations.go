// Package amortize implements the amortization engine: the repayment-amount
// solver, the schedule generator, and point-in-time metric extraction.
package amortize

import (
	"math"

	"github.com/iwvelando/loan-projection/pkg/constants"
	"github.com/iwvelando/loan-projection/pkg/money"
	"github.com/iwvelando/loan-projection/pkg/mortgage"
)

// Schedule holds the projected time series of a loan. The four slices are
// parallel: Time is in years from drawdown, stepped by one repayment period,
// and the value series are denominated in the loan's currency. A Schedule is
// computed fresh from a Mortgage and never mutated.
type Schedule struct {
	Time               []float64
	LoanOutstanding    []float64
	CumulativeInterest []float64
	CumulativePayments []float64
	Currency           money.Currency
	Repayment          float64
}

// Points returns the number of schedule points, including the origin.
func (s Schedule) Points() int { return len(s.Time) }

// Repayment solves for the level per-period payment using the
// annuity-in-arrears present-value identity principal = d * P * a with
// a = (1 - (1+rate)^(-term)) / (d * i).
//
// When the period rate is zero the annuity factor is singular; the zero-rate
// limit P = principal / (d * term) is used instead. A zero-year term has no
// payment stream and yields 0.
func Repayment(m mortgage.Mortgage) float64 {
	d := float64(m.PeriodsPerYear())
	if m.Term() == 0 {
		return 0
	}
	i := m.PeriodRate()
	if math.Abs(i) < constants.RateTolerance {
		return m.Principal() / (d * m.Term())
	}
	a := (1 - math.Pow(1+m.Rate().Value(), -m.Term())) / (d * i)
	return m.Principal() / (d * a)
}

// Compute generates the full amortization schedule for a loan. The time axis
// runs from 0 to the last multiple of one period at or below the term
// (truncated, never rounded up). The outstanding balance is not floored at
// zero; the final entry may sit a few ulps either side of it.
func Compute(m mortgage.Mortgage) Schedule {
	d := float64(m.PeriodsPerYear())
	periods := int(math.Floor(m.Term()*d + 1e-9))
	i := m.PeriodRate()
	payment := Repayment(m)

	s := Schedule{
		Time:               make([]float64, periods+1),
		LoanOutstanding:    make([]float64, periods+1),
		CumulativeInterest: make([]float64, periods+1),
		CumulativePayments: make([]float64, periods+1),
		Currency:           m.Currency(),
		Repayment:          payment,
	}
	s.LoanOutstanding[0] = m.Principal()

	for j := 1; j <= periods; j++ {
		interest := i * s.LoanOutstanding[j-1]
		capitalRepaid := payment - interest
		s.Time[j] = float64(j) / d
		s.LoanOutstanding[j] = s.LoanOutstanding[j-1] - capitalRepaid
		s.CumulativeInterest[j] = s.CumulativeInterest[j-1] + interest
		s.CumulativePayments[j] = s.CumulativePayments[j-1] + payment
	}
	return s
}
