// Package provision derives doubtful-debt provisions from customer aging and
// compares them with the provisions already recorded.
package provision

import (
	"cmp"
	"slices"

	"github.com/iho/ohadacore/internal/aging"
	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/money"
)

// Rate is the share of the doubtful base that is provisioned.
var Rate = money.New(50)

// DoubtfulAfterDays is the age beyond which a bucket is doubtful.
const DoubtfulAfterDays = 90

// Provision is the recommendation for one third party.
type Provision struct {
	ThirdPartyID string       `json:"third_party_id"`
	Name         string       `json:"name"`
	DoubtfulBase money.Amount `json:"doubtful_base"`
	Rate         money.Amount `json:"rate"`
	Amount       money.Amount `json:"amount"`
}

// Summary lists the recommendations.
type Summary struct {
	Provisions     []Provision  `json:"provisions"`
	TotalProvision money.Amount `json:"total_provision"`
}

// Calculate recommends Rate percent of each party's balance in buckets older
// than DoubtfulAfterDays. The doubtful base never exceeds TotalDue. Parties
// whose doubtful base is not positive get no provision.
func Calculate(analyses []aging.Analysis) Summary {
	s := Summary{Provisions: []Provision{}, TotalProvision: money.Zero}

	for _, a := range analyses {
		base := money.Zero
		for _, b := range a.Buckets {
			if b.MinDays > DoubtfulAfterDays {
				base = base.Add(b.Amount)
			}
		}
		if base.GreaterThan(a.TotalDue) {
			base = a.TotalDue
		}
		if !base.IsPositive() {
			continue
		}

		amount := base.Percent(Rate).RoundCurrency()
		s.Provisions = append(s.Provisions, Provision{
			ThirdPartyID: a.ThirdPartyID,
			Name:         a.Name,
			DoubtfulBase: base,
			Rate:         Rate,
			Amount:       amount,
		})
		s.TotalProvision = s.TotalProvision.Add(amount)
	}

	return s
}

// Line compares one party's calculated and recorded provisions.
type Line struct {
	ThirdPartyID string       `json:"third_party_id"`
	Calculated   money.Amount `json:"calculated"`
	Recorded     money.Amount `json:"recorded"`
	Gap          money.Amount `json:"gap"`
}

// Comparison is informational: a non-zero Gap is for review, not an error.
type Comparison struct {
	TotalCalculated money.Amount `json:"total_calculated"`
	TotalRecorded   money.Amount `json:"total_recorded"`
	Gap             money.Amount `json:"gap"`
	Lines           []Line       `json:"lines"`
}

// CompareWithRecorded sets the calculated summary against recorded
// provisions. Gap is calculated minus recorded.
func CompareWithRecorded(calculated Summary, recorded []domain.ProvisionRecord) Comparison {
	byParty := make(map[string]*Line)
	line := func(id string) *Line {
		l, ok := byParty[id]
		if !ok {
			l = &Line{ThirdPartyID: id, Calculated: money.Zero, Recorded: money.Zero}
			byParty[id] = l
		}
		return l
	}

	c := Comparison{TotalCalculated: money.Zero, TotalRecorded: money.Zero}
	for _, p := range calculated.Provisions {
		l := line(p.ThirdPartyID)
		l.Calculated = l.Calculated.Add(p.Amount)
		c.TotalCalculated = c.TotalCalculated.Add(p.Amount)
	}
	for _, r := range recorded {
		l := line(r.ThirdPartyID)
		l.Recorded = l.Recorded.Add(r.Amount)
		c.TotalRecorded = c.TotalRecorded.Add(r.Amount)
	}
	c.Gap = c.TotalCalculated.Sub(c.TotalRecorded)

	c.Lines = make([]Line, 0, len(byParty))
	for _, l := range byParty {
		l.Gap = l.Calculated.Sub(l.Recorded)
		c.Lines = append(c.Lines, *l)
	}
	slices.SortFunc(c.Lines, func(a, b Line) int { return cmp.Compare(a.ThirdPartyID, b.ThirdPartyID) })

	return c
}
