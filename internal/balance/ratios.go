package balance

import (
	"github.com/iho/ohadacore/internal/chart"
	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/money"
)

var daysPerYear = money.New(360)

// Ratios are the headline financial ratios. Liquidity and Gearing are plain
// ratios (2 decimals), Autonomy and NetMargin are percentages (1 decimal),
// the payment delays are days on a 360-day year.
type Ratios struct {
	Liquidity         money.Amount `json:"liquidity"`
	Autonomy          money.Amount `json:"autonomy"`
	Gearing           money.Amount `json:"gearing"`
	NetMargin         money.Amount `json:"net_margin"`
	CustomerDelayDays money.Amount `json:"customer_delay_days"`
	SupplierDelayDays money.Amount `json:"supplier_delay_days"`
}

// ComputeRatios derives the ratios from balances. A zero denominator yields
// a zero ratio.
func ComputeRatios(entries []domain.JournalEntry, plan chart.Plan) Ratios {
	treasury := Treasury(entries, plan)

	stocks := NetDebit(entries, "3")
	receivables := NetDebit(entries, "41")
	payables := NetCredit(entries, "40")
	equity := NetCredit(entries, "10", "11", "12", "13", "14", "15")
	debt := NetCredit(entries, "16", "17")
	purchases := NetDebit(entries, "60")

	sig := SIG(entries)
	ca := sig.Amount(SIGChiffreAffaires)
	rn := sig.Amount(SIGResultatNet)

	currentAssets := stocks.Add(receivables).Add(treasury.Active)
	currentLiabilities := payables.Add(treasury.Passive)

	return Ratios{
		Liquidity:         SafeDiv(currentAssets, currentLiabilities).RoundCurrency(),
		Autonomy:          PercentOf(equity, equity.Add(debt)),
		Gearing:           SafeDiv(debt, equity).RoundCurrency(),
		NetMargin:         PercentOf(rn, ca),
		CustomerDelayDays: SafeDiv(receivables.Mul(daysPerYear), ca).Round(0),
		SupplierDelayDays: SafeDiv(payables.Mul(daysPerYear), purchases).Round(0),
	}
}
