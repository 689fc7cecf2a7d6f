package amortize

import (
	"go.uber.org/zap"

	"github.com/iwvelando/loan-projection/pkg/constants"
	"github.com/iwvelando/loan-projection/pkg/mathutil"
	"github.com/iwvelando/loan-projection/pkg/mortgage"
	"github.com/iwvelando/loan-projection/pkg/validation"
)

// RateForRepayment solves for the annual interest rate at which the loan's
// per-period repayment equals target, by bisection over [0, max bound]. The
// repayment is strictly increasing in the rate, so the bracket is valid
// whenever the target lies between the zero-rate and max-rate payments.
func RateForRepayment(logger *zap.Logger, m mortgage.Mortgage, target float64) (float64, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m.Term() == 0 || m.Principal() == 0 {
		return 0, validation.NewDomainError("target", target, "has no rate solution for an empty payment stream")
	}

	lower, upper := 0.0, constants.DefaultPercentageMax
	lowerPayment, err := repaymentAtRate(m, lower)
	if err != nil {
		return 0, err
	}
	upperPayment, err := repaymentAtRate(m, upper)
	if err != nil {
		return 0, err
	}
	if target < lowerPayment || target > upperPayment {
		return 0, validation.NewDomainError("target", target,
			"is outside the attainable repayment range for this loan")
	}

	iterations := 0
	for iterations < constants.SolverMaxIterations && upper-lower > 0 {
		mid := lower + (upper-lower)/2
		payment, err := repaymentAtRate(m, mid)
		if err != nil {
			return 0, err
		}
		iterations++
		if mathutil.WithinTolerance(payment, target, constants.SolverTolerance) {
			logger.Debug("rate solver converged",
				zap.String("op", "amortize.RateForRepayment"),
				zap.Float64("rate", mid),
				zap.Float64("payment", payment),
				zap.Int("iterations", iterations),
			)
			return mid, nil
		}
		if payment < target {
			lower = mid
		} else {
			upper = mid
		}
		if mid == lower || mid == upper {
			break
		}
	}
	return 0, validation.NewDomainError("target", target, "did not converge to a rate within the iteration cap")
}

func repaymentAtRate(m mortgage.Mortgage, rate float64) (float64, error) {
	variant, err := m.WithRate(rate)
	if err != nil {
		return 0, err
	}
	return Repayment(variant), nil
}
