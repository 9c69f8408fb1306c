package tax

import (
	"github.com/iho/ohadacore/internal/money"
)

var one = money.New(1)

// ComputeTax returns pretax * rate / 100 rounded to the cent.
func ComputeTax(pretax, ratePercent money.Amount) money.Amount {
	return pretax.Percent(ratePercent).RoundCurrency()
}

// ComputeWithTax returns pretax plus ComputeTax.
func ComputeWithTax(pretax, ratePercent money.Amount) money.Amount {
	return pretax.Add(ComputeTax(pretax, ratePercent))
}

// ComputePretax returns total / (1 + rate/100) rounded to the cent. It fails
// only for a rate of -100%.
func ComputePretax(total, ratePercent money.Amount) (money.Amount, error) {
	factor := one.Add(one.Percent(ratePercent))
	pretax, err := total.Div(factor)
	if err != nil {
		return money.Zero, err
	}
	return pretax.RoundCurrency(), nil
}
