// Package mortgage defines the immutable parameter set of a fixed-rate
// amortizing loan.
package mortgage

import (
	"math"

	"github.com/iwvelando/loan-projection/pkg/money"
	"github.com/iwvelando/loan-projection/pkg/percent"
	"github.com/iwvelando/loan-projection/pkg/validation"
)

// Mortgage holds the validated parameters of a fixed-rate loan. Construction
// either fully succeeds or fails; a Mortgage in hand always satisfies its
// invariants.
type Mortgage struct {
	price     money.Nominal
	deposit   percent.BoundedPercentage
	rate      percent.BoundedPercentage
	term      float64
	frequency Frequency
	stampDuty bool
}

// New validates and constructs a Mortgage. Price must be non-negative, term
// (in years) must be non-negative, and frequency must be a known cadence.
// The stampDuty flag is recorded but not used by any computation.
func New(price money.Nominal, deposit, rate percent.BoundedPercentage, term float64, frequency Frequency, stampDuty bool) (Mortgage, error) {
	if price.Amount < 0 {
		return Mortgage{}, validation.NewDomainError("price", price.Amount, "must be non-negative")
	}
	if term < 0 {
		return Mortgage{}, validation.NewDomainError("term", term, "must be non-negative")
	}
	if !frequency.valid() {
		return Mortgage{}, validation.NewDomainError("frequency", int(frequency), `must be one of "monthly" or "annually"`)
	}
	return Mortgage{
		price:     price,
		deposit:   deposit,
		rate:      rate,
		term:      term,
		frequency: frequency,
		stampDuty: stampDuty,
	}, nil
}

// NewFromValues is the explicit numeric factory: the price is wrapped in the
// default currency and deposit/rate pass through bounded-percentage
// validation before New runs the loan-level checks.
func NewFromValues(price, deposit, rate, term float64, frequency Frequency) (Mortgage, error) {
	dep, err := percent.New(deposit)
	if err != nil {
		return Mortgage{}, err
	}
	rt, err := percent.New(rate)
	if err != nil {
		return Mortgage{}, err
	}
	return New(money.NominalOf(price), dep, rt, term, frequency, true)
}

// Price returns the purchase price.
func (m Mortgage) Price() money.Nominal { return m.price }

// Currency returns the currency the loan is denominated in.
func (m Mortgage) Currency() money.Currency { return m.price.Currency }

// Deposit returns the deposit fraction.
func (m Mortgage) Deposit() percent.BoundedPercentage { return m.deposit }

// Rate returns the annual interest rate.
func (m Mortgage) Rate() percent.BoundedPercentage { return m.rate }

// Principal returns the amount borrowed: price less the deposit.
func (m Mortgage) Principal() float64 {
	return m.price.Amount * (1 - m.deposit.Value())
}

// Term returns the loan term in years.
func (m Mortgage) Term() float64 { return m.term }

// Frequency returns the repayment cadence.
func (m Mortgage) Frequency() Frequency { return m.frequency }

// PeriodsPerYear returns the number of repayments per year.
func (m Mortgage) PeriodsPerYear() int { return m.frequency.PeriodsPerYear() }

// StampDuty reports the reserved stamp-duty flag; no computation consumes it.
func (m Mortgage) StampDuty() bool { return m.stampDuty }

// PeriodRate returns the compounding sub-period rate,
// (1+annual)^(1/periodsPerYear) - 1. The geometric derivation is required;
// dividing the annual rate linearly by the period count is not equivalent.
func (m Mortgage) PeriodRate() float64 {
	d := float64(m.frequency.PeriodsPerYear())
	return math.Pow(1+m.rate.Value(), 1/d) - 1
}
