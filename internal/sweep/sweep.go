// Package sweep generates families of amortization schedules by varying one
// loan parameter across a list of values.
package sweep

import (
	"math"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/iwvelando/loan-projection/pkg/amortize"
	"github.com/iwvelando/loan-projection/pkg/mathutil"
	"github.com/iwvelando/loan-projection/pkg/mortgage"
	"github.com/iwvelando/loan-projection/pkg/validation"
)

// Variable names the loan parameter a sweep varies.
type Variable int

const (
	// Price varies the purchase price.
	Price Variable = iota
	// Deposit varies the deposit fraction.
	Deposit
	// Rate varies the annual interest rate.
	Rate
	// Term varies the loan term in years.
	Term
)

// ParseVariable maps a sweep variable name onto a Variable.
func ParseVariable(s string) (Variable, error) {
	switch s {
	case "price":
		return Price, nil
	case "deposit":
		return Deposit, nil
	case "rate":
		return Rate, nil
	case "term":
		return Term, nil
	default:
		return 0, validation.NewDomainError("variable", s, `must be one of "price", "deposit", "rate" or "term"`)
	}
}

func (v Variable) String() string {
	switch v {
	case Price:
		return "price"
	case Deposit:
		return "deposit"
	case Rate:
		return "rate"
	case Term:
		return "term"
	default:
		return "unknown"
	}
}

// Range is a closed numeric interval.
type Range struct {
	Min float64
	Max float64
}

// Result holds the schedules of one sweep, in the order of the input values,
// together with the aggregate axis ranges a renderer needs to share axes
// across the family. TimeRange is only populated when the term was varied.
type Result struct {
	Variable      Variable
	Values        []float64
	Schedules     []amortize.Schedule
	Repayments    []float64
	PaymentsRange Range
	TimeRange     *Range
}

// Runner computes sweeps, fanning the per-value schedule generation out over
// a bounded worker pool. Each unit of work is independent; results land in
// indexed slots so parallelism never reorders output.
type Runner struct {
	logger  *zap.Logger
	workers int
}

// NewRunner constructs a Runner. A nil logger is replaced with a no-op
// logger; a non-positive worker count falls back to GOMAXPROCS.
func NewRunner(logger *zap.Logger, workers int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{logger: logger, workers: workers}
}

// Run builds one Mortgage per value with the named parameter replaced,
// computes each schedule, and aggregates the axis ranges. The first
// construction error aborts the sweep.
func (r *Runner) Run(base mortgage.Mortgage, variable Variable, values []float64) (*Result, error) {
	loans := make([]mortgage.Mortgage, len(values))
	for n, value := range values {
		loan, err := withVariable(base, variable, value)
		if err != nil {
			return nil, err
		}
		loans[n] = loan
	}

	result := &Result{
		Variable:   variable,
		Values:     append([]float64(nil), values...),
		Schedules:  make([]amortize.Schedule, len(values)),
		Repayments: make([]float64, len(values)),
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range indexes {
				result.Schedules[n] = amortize.Compute(loans[n])
				result.Repayments[n] = result.Schedules[n].Repayment
			}
		}()
	}
	for n := range values {
		indexes <- n
	}
	close(indexes)
	wg.Wait()

	for n := range result.Schedules {
		r.logger.Debug("computed sweep schedule",
			zap.String("op", "sweep.Run"),
			zap.String("variable", variable.String()),
			zap.Float64("value", values[n]),
			zap.Float64("repayment", mathutil.Round(result.Repayments[n])),
		)
	}

	result.PaymentsRange = paymentsRange(result.Schedules)
	if variable == Term {
		timeRange := timeRange(result.Schedules)
		result.TimeRange = &timeRange
	}
	return result, nil
}

func withVariable(base mortgage.Mortgage, variable Variable, value float64) (mortgage.Mortgage, error) {
	switch variable {
	case Price:
		return base.WithPrice(value)
	case Deposit:
		return base.WithDeposit(value)
	case Rate:
		return base.WithRate(value)
	case Term:
		return base.WithTerm(value)
	default:
		return mortgage.Mortgage{}, validation.NewDomainError("variable", int(variable), `must be one of "price", "deposit", "rate" or "term"`)
	}
}

func paymentsRange(schedules []amortize.Schedule) Range {
	r := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, s := range schedules {
		for _, v := range s.CumulativePayments {
			r.Min = mathutil.Min(r.Min, v)
			r.Max = mathutil.Max(r.Max, v)
		}
	}
	if math.IsInf(r.Min, 1) {
		return Range{}
	}
	return r
}

func timeRange(schedules []amortize.Schedule) Range {
	r := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, s := range schedules {
		if len(s.Time) == 0 {
			continue
		}
		r.Min = mathutil.Min(r.Min, s.Time[0])
		r.Max = mathutil.Max(r.Max, s.Time[len(s.Time)-1])
	}
	if math.IsInf(r.Min, 1) {
		return Range{}
	}
	return r
}
