// Package percent provides a real value constrained to a configurable range,
// used for interest rates and deposit fractions.
package percent

import (
	"fmt"

	"github.com/iwvelando/loan-projection/pkg/constants"
	"github.com/iwvelando/loan-projection/pkg/validation"
)

// BoundedPercentage is a fraction validated at construction time against a
// closed range. Immutable once constructed.
type BoundedPercentage struct {
	value float64
}

// New validates value against the default range [-10, 10] (-1000%..1000%).
func New(value float64) (BoundedPercentage, error) {
	return NewWithBounds(value, constants.DefaultPercentageMin, constants.DefaultPercentageMax)
}

// NewWithBounds validates value against [min, max]. Values on the boundary
// are accepted.
func NewWithBounds(value, min, max float64) (BoundedPercentage, error) {
	if value > max {
		return BoundedPercentage{}, validation.NewDomainError("percentage", value, formatBound("above the maximum", max))
	}
	if value < min {
		return BoundedPercentage{}, validation.NewDomainError("percentage", value, formatBound("below the minimum", min))
	}
	return BoundedPercentage{value: value}, nil
}

// Zero returns a percentage with value 0.
func Zero() BoundedPercentage {
	return BoundedPercentage{}
}

// Value returns the underlying fraction.
func (p BoundedPercentage) Value() float64 { return p.value }

func formatBound(direction string, bound float64) string {
	return fmt.Sprintf("is %s %g", direction, bound)
}
