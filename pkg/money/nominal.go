package money

// Nominal is a monetary amount paired with its currency. The amount's sign is
// not constrained here; consumers validate per use case.
type Nominal struct {
	Amount   float64
	Currency Currency
}

// NominalOf wraps an amount with the default currency.
func NominalOf(amount float64) Nominal {
	return Nominal{Amount: amount, Currency: Default()}
}

// NewNominal pairs an amount with an explicit currency.
func NewNominal(amount float64, currency Currency) Nominal {
	return Nominal{Amount: amount, Currency: currency}
}

// Convert re-expresses the value in the target currency, preserving real
// value: the amount is divided by the current symbol's factor and multiplied
// by the target's. Converting there and back reproduces the original amount
// up to floating-point rounding.
func (n Nominal) Convert(target string) (Nominal, error) {
	from, err := n.Currency.Factor(n.Currency.Symbol())
	if err != nil {
		return Nominal{}, err
	}
	to, err := n.Currency.Factor(target)
	if err != nil {
		return Nominal{}, err
	}
	currency, err := n.Currency.Reexpress(target)
	if err != nil {
		return Nominal{}, err
	}
	return Nominal{Amount: n.Amount / from * to, Currency: currency}, nil
}
