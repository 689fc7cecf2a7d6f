package mortgage

import (
	"github.com/iwvelando/loan-projection/pkg/constants"
	"github.com/iwvelando/loan-projection/pkg/validation"
)

// Frequency is the repayment cadence of a loan.
type Frequency int

const (
	// Monthly repayments, twelve periods per year.
	Monthly Frequency = iota
	// Annually repayments, one period per year.
	Annually
)

// ParseFrequency maps a configuration string onto a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch s {
	case "monthly":
		return Monthly, nil
	case "annually":
		return Annually, nil
	default:
		return 0, validation.NewDomainError("frequency", s, `must be one of "monthly" or "annually"`)
	}
}

// PeriodsPerYear returns the number of repayment periods in a year.
func (f Frequency) PeriodsPerYear() int {
	switch f {
	case Monthly:
		return constants.MonthsPerYear
	case Annually:
		return 1
	default:
		return 0
	}
}

func (f Frequency) String() string {
	switch f {
	case Monthly:
		return "monthly"
	case Annually:
		return "annually"
	default:
		return "unknown"
	}
}

func (f Frequency) valid() bool {
	return f == Monthly || f == Annually
}
