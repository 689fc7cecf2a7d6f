package mortgage

import (
	"github.com/iwvelando/loan-projection/pkg/money"
	"github.com/iwvelando/loan-projection/pkg/percent"
)

// Derivation helpers produce a new Mortgage with one parameter replaced,
// re-running full validation. The receiver is never modified.

// WithPrice replaces the purchase price, keeping the loan's currency.
func (m Mortgage) WithPrice(amount float64) (Mortgage, error) {
	price := money.NewNominal(amount, m.price.Currency)
	return New(price, m.deposit, m.rate, m.term, m.frequency, m.stampDuty)
}

// WithDeposit replaces the deposit fraction.
func (m Mortgage) WithDeposit(deposit float64) (Mortgage, error) {
	dep, err := percent.New(deposit)
	if err != nil {
		return Mortgage{}, err
	}
	return New(m.price, dep, m.rate, m.term, m.frequency, m.stampDuty)
}

// WithRate replaces the annual interest rate.
func (m Mortgage) WithRate(rate float64) (Mortgage, error) {
	rt, err := percent.New(rate)
	if err != nil {
		return Mortgage{}, err
	}
	return New(m.price, m.deposit, rt, m.term, m.frequency, m.stampDuty)
}

// WithTerm replaces the term in years.
func (m Mortgage) WithTerm(term float64) (Mortgage, error) {
	return New(m.price, m.deposit, m.rate, term, m.frequency, m.stampDuty)
}
