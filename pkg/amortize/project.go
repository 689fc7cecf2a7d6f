package amortize

import (
	"github.com/iwvelando/loan-projection/pkg/mortgage"
	"github.com/iwvelando/loan-projection/pkg/validation"
)

// Metric selects which series a point-in-time projection reads.
type Metric int

const (
	// MetricLoan is the outstanding loan balance.
	MetricLoan Metric = iota
	// MetricInterest is the cumulative interest paid.
	MetricInterest
	// MetricPayments is the cumulative amount paid.
	MetricPayments
	// MetricInterestRatio is cumulative interest over cumulative payments.
	MetricInterestRatio
)

// ParseMetric maps a metric name onto a Metric.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "loan":
		return MetricLoan, nil
	case "interest":
		return MetricInterest, nil
	case "payments":
		return MetricPayments, nil
	case "interestRatio":
		return MetricInterestRatio, nil
	default:
		return 0, validation.NewDomainError("metric", s, `must be one of "loan", "interest", "payments" or "interestRatio"`)
	}
}

func (m Metric) String() string {
	switch m {
	case MetricLoan:
		return "loan"
	case MetricInterest:
		return "interest"
	case MetricPayments:
		return "payments"
	case MetricInterestRatio:
		return "interestRatio"
	default:
		return "unknown"
	}
}

// Project extracts a metric at the end of the loan's term.
func Project(m mortgage.Mortgage, metric Metric) (float64, error) {
	return ProjectAt(m, metric, m.Term())
}

// ProjectAt extracts a metric at time t (years from drawdown). The schedule
// point used is the last one at or before t; queries past the end of the
// schedule clamp to the final entry. Querying before the schedule starts is a
// domain error.
func ProjectAt(m mortgage.Mortgage, metric Metric, t float64) (float64, error) {
	if t < 0 {
		return 0, validation.NewDomainError("t", t, "precedes the start of the schedule")
	}
	s := Compute(m)
	index := 0
	for j, pt := range s.Time {
		if pt <= t {
			index = j
		} else {
			break
		}
	}
	switch metric {
	case MetricLoan:
		return s.LoanOutstanding[index], nil
	case MetricInterest:
		return s.CumulativeInterest[index], nil
	case MetricPayments:
		return s.CumulativePayments[index], nil
	case MetricInterestRatio:
		if s.CumulativePayments[index] == 0 {
			return 0, nil
		}
		return s.CumulativeInterest[index] / s.CumulativePayments[index], nil
	default:
		return 0, validation.NewDomainError("metric", int(metric), `must be one of "loan", "interest", "payments" or "interestRatio"`)
	}
}
