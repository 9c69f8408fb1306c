package balance

import (
	"cmp"
	"slices"
	"strings"

	"github.com/iho/ohadacore/internal/chart"
	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/money"
)

// FamilyBalance is the net debit of one two-digit treasury family (52 banks,
// 57 cash, 56 bank overdrafts...), or of its passive part when Passive is set.
type FamilyBalance struct {
	Family  string       `json:"family"`
	Passive bool         `json:"passive"`
	Balance money.Amount `json:"balance"`
}

// TreasuryPosition is the class-5 position.
type TreasuryPosition struct {
	Families []FamilyBalance `json:"families"`
	Active   money.Amount    `json:"active"`
	Passive  money.Amount    `json:"passive"`
	Net      money.Amount    `json:"net"`
}

// Treasury computes the treasury position. Lines on a passive prefix (bank
// credits) count as liabilities, whatever the length of the prefix: a family
// holding both kinds of accounts is reported as an active and a passive part.
// Net = Active - Passive.
func Treasury(entries []domain.JournalEntry, plan chart.Plan) TreasuryPosition {
	type kinds struct{ active, passive bool }

	seen := make(map[string]*kinds)
	for _, e := range entries {
		for _, l := range e.Lines {
			code := strings.TrimSpace(l.AccountCode)
			if len(code) < 2 || !plan.Treasury.Match(code) {
				continue
			}
			k, ok := seen[code[:2]]
			if !ok {
				k = &kinds{}
				seen[code[:2]] = k
			}
			if plan.TreasuryPassive.Match(code) {
				k.passive = true
			} else {
				k.active = true
			}
		}
	}

	families := make([]string, 0, len(seen))
	for f := range seen {
		families = append(families, f)
	}
	slices.SortFunc(families, cmp.Compare[string])

	pos := TreasuryPosition{Families: make([]FamilyBalance, 0, len(families)), Active: money.Zero, Passive: money.Zero}
	for _, f := range families {
		passive := money.Zero
		if prefixes := passiveWithin(f, plan.TreasuryPassive); len(prefixes) > 0 {
			passive = NetDebit(entries, prefixes...)
		}

		if seen[f].active {
			active := NetDebit(entries, f).Sub(passive)
			pos.Active = pos.Active.Add(active)
			pos.Families = append(pos.Families, FamilyBalance{Family: f, Balance: active})
		}
		if seen[f].passive {
			pos.Passive = pos.Passive.Add(passive.Neg())
			pos.Families = append(pos.Families, FamilyBalance{Family: f, Passive: true, Balance: passive})
		}
	}
	pos.Net = pos.Active.Sub(pos.Passive)

	return pos
}

// passiveWithin returns the passive prefixes that select lines of family.
// A passive prefix covering the whole family is narrowed to the family itself.
func passiveWithin(family string, passive chart.Prefixes) []string {
	var out []string
	for _, p := range passive {
		switch {
		case p == "":
		case strings.HasPrefix(family, p):
			return []string{family}
		case strings.HasPrefix(p, family):
			out = append(out, p)
		}
	}
	return out
}
