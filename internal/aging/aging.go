// Package aging buckets outstanding customer and supplier balances by age.
package aging

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/iho/ohadacore/internal/chart"
	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/money"
)

// Range is one fixed age bucket. MaxDays is nil for the open-ended bucket.
type Range struct {
	Label   string
	MinDays int
	MaxDays *int
}

// Contains reports whether an age in days falls in the range. Negative ages
// (not yet due) belong to the first bucket.
func (r Range) Contains(days int) bool {
	if days < r.MinDays && r.MinDays > 0 {
		return false
	}
	return r.MaxDays == nil || days <= *r.MaxDays
}

func upTo(days int) *int { return &days }

// Ranges are the five buckets: 0-30, 31-60, 61-90, 91-120 and >120 days.
var Ranges = []Range{
	{Label: "0-30", MinDays: 0, MaxDays: upTo(30)},
	{Label: "31-60", MinDays: 31, MaxDays: upTo(60)},
	{Label: "61-90", MinDays: 61, MaxDays: upTo(90)},
	{Label: "91-120", MinDays: 91, MaxDays: upTo(120)},
	{Label: ">120", MinDays: 121},
}

// Bucket holds the lines that fell into one range.
type Bucket struct {
	Label   string       `json:"label"`
	MinDays int          `json:"min_days"`
	MaxDays *int         `json:"max_days,omitempty"`
	Count   int          `json:"count"`
	Amount  money.Amount `json:"amount"`
}

// Analysis is the aging of one third party.
type Analysis struct {
	ThirdPartyID string       `json:"third_party_id"`
	Name         string       `json:"name"`
	Role         domain.Role  `json:"role"`
	Buckets      []Bucket     `json:"buckets"`
	TotalDue     money.Amount `json:"total_due"`
}

func newBuckets() []Bucket {
	buckets := make([]Bucket, len(Ranges))
	for i, r := range Ranges {
		buckets[i] = Bucket{Label: r.Label, MinDays: r.MinDays, MaxDays: r.MaxDays, Amount: money.Zero}
	}
	return buckets
}

// bucketIndex returns the range holding an age.
func bucketIndex(days int) int {
	for i, r := range Ranges {
		if r.Contains(days) {
			return i
		}
	}
	return len(Ranges) - 1
}

// Analyze ages the receivable (customer) or payable (supplier) lines of each
// third party playing role, as seen on asOf. A line belongs to a party when
// it names the party or sits on the party's auxiliary account, and its
// account is in the role's family. Age is counted from the due date when
// present, otherwise from the entry date. Settlements are lettered against
// the oldest open items first, so only what is still unpaid is aged. Parties
// with nothing outstanding are left out. Results are ordered by TotalDue
// descending.
func Analyze(entries []domain.JournalEntry, parties []domain.ThirdParty, role domain.Role, asOf time.Time, plan chart.Plan) ([]Analysis, error) {
	family, sign, err := roleFamily(role, plan)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(parties))
	byAccount := make(map[string]int, len(parties))
	results := make([]Analysis, 0, len(parties))
	for _, p := range parties {
		if !p.Plays(role) {
			continue
		}
		idx := len(results)
		byID[p.ID] = idx
		if p.AccountCode != "" {
			byAccount[p.AccountCode] = idx
		}
		results = append(results, Analysis{
			ThirdPartyID: p.ID,
			Name:         p.Name,
			Role:         role,
			Buckets:      newBuckets(),
			TotalDue:     money.Zero,
		})
	}

	open := make([][]item, len(results))
	for _, e := range entries {
		for _, l := range e.Lines {
			if !family.Match(l.AccountCode) {
				continue
			}
			idx, ok := byID[l.ThirdPartyID]
			if !ok || l.ThirdPartyID == "" {
				if idx, ok = byAccount[l.AccountCode]; !ok {
					continue
				}
			}

			ref := e.Date
			if l.DueDate != nil {
				ref = *l.DueDate
			}
			amount := l.Net()
			if sign < 0 {
				amount = amount.Neg()
			}
			if amount.IsZero() {
				continue
			}
			open[idx] = append(open[idx], item{days: domain.DaysBetween(ref, asOf), amount: amount})
		}
	}

	outstanding := results[:0]
	for i, a := range results {
		total := money.Zero
		for _, it := range letter(open[i]) {
			b := &a.Buckets[bucketIndex(it.days)]
			b.Count++
			b.Amount = b.Amount.Add(it.amount)
			total = total.Add(it.amount)
		}
		if total.IsZero() {
			continue
		}
		a.TotalDue = total
		outstanding = append(outstanding, a)
	}

	slices.SortStableFunc(outstanding, func(a, b Analysis) int {
		if c := b.TotalDue.Cmp(a.TotalDue); c != 0 {
			return c
		}
		return cmp.Compare(a.ThirdPartyID, b.ThirdPartyID)
	})

	return outstanding, nil
}

// item is one signed line of a party: positive when it increases what is due.
type item struct {
	days   int
	amount money.Amount
}

// letter matches settlements (negative items) against open items, oldest
// first on both sides, and returns what remains unmatched. The remainders
// sum to the same net as the input.
func letter(items []item) []item {
	var due, paid []item
	for _, it := range items {
		if it.amount.IsPositive() {
			due = append(due, it)
		} else {
			paid = append(paid, item{days: it.days, amount: it.amount.Neg()})
		}
	}
	oldestFirst := func(a, b item) int { return cmp.Compare(b.days, a.days) }
	slices.SortStableFunc(due, oldestFirst)
	slices.SortStableFunc(paid, oldestFirst)

	i, j := 0, 0
	for i < len(due) && j < len(paid) {
		matched := due[i].amount
		if paid[j].amount.LessThan(matched) {
			matched = paid[j].amount
		}
		due[i].amount = due[i].amount.Sub(matched)
		paid[j].amount = paid[j].amount.Sub(matched)
		if due[i].amount.IsZero() {
			i++
		}
		if paid[j].amount.IsZero() {
			j++
		}
	}

	left := make([]item, 0, len(due)-i+len(paid)-j)
	left = append(left, due[i:]...)
	for _, it := range paid[j:] {
		left = append(left, item{days: it.days, amount: it.amount.Neg()})
	}
	return left
}

func roleFamily(role domain.Role, plan chart.Plan) (chart.Prefixes, int, error) {
	switch role {
	case domain.RoleCustomer:
		return plan.Receivable, 1, nil
	case domain.RoleSupplier:
		return plan.Payable, -1, nil
	default:
		return nil, 0, fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}
}

// Portfolio aggregates analyses bucket by bucket.
type Portfolio struct {
	Role     domain.Role  `json:"role"`
	Parties  int          `json:"parties"`
	Buckets  []Bucket     `json:"buckets"`
	TotalDue money.Amount `json:"total_due"`
}

// Summarize totals a set of analyses of the same role.
func Summarize(role domain.Role, analyses []Analysis) Portfolio {
	p := Portfolio{Role: role, Parties: len(analyses), Buckets: newBuckets(), TotalDue: money.Zero}
	for _, a := range analyses {
		for i, b := range a.Buckets {
			p.Buckets[i].Count += b.Count
			p.Buckets[i].Amount = p.Buckets[i].Amount.Add(b.Amount)
		}
		p.TotalDue = p.TotalDue.Add(a.TotalDue)
	}
	return p
}
