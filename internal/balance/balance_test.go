package balance

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/ohadacore/internal/chart"
	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/money"
)

type mv struct {
	code   string
	debit  int64
	credit int64
}

func post(id string, moves ...mv) domain.JournalEntry {
	e := domain.JournalEntry{
		ID:     id,
		Date:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Status: domain.EntryValidated,
	}
	for _, m := range moves {
		e.Lines = append(e.Lines, domain.EntryLine{
			AccountCode: m.code,
			Debit:       money.New(m.debit),
			Credit:      money.New(m.credit),
		})
	}
	return e
}

// ledger is a small but complete fiscal year.
func ledger() []domain.JournalEntry {
	return []domain.JournalEntry{
		post("capital", mv{"521000", 1000000, 0}, mv{"101000", 0, 1000000}),
		post("loan", mv{"521000", 500000, 0}, mv{"162000", 0, 500000}),
		post("overdraft", mv{"521000", 50000, 0}, mv{"565000", 0, 50000}),
		post("sale", mv{"411000", 1180000, 0}, mv{"701000", 0, 600000}, mv{"706000", 0, 400000}, mv{"443100", 0, 180000}),
		post("purchase", mv{"601000", 300000, 0}, mv{"445200", 54000, 0}, mv{"401000", 0, 354000}),
		post("rent", mv{"622000", 100000, 0}, mv{"521000", 0, 100000}),
		post("salaries", mv{"661000", 200000, 0}, mv{"521000", 0, 200000}),
		post("depreciation", mv{"681200", 50000, 0}, mv{"284500", 0, 50000}),
		post("interest", mv{"671000", 10000, 0}, mv{"521000", 0, 10000}),
		post("disposal", mv{"521000", 30000, 0}, mv{"821000", 0, 30000}),
		post("book value", mv{"812000", 20000, 0}, mv{"245000", 0, 20000}),
		post("income tax", mv{"891000", 40000, 0}, mv{"441000", 0, 40000}),
	}
}

func TestNetDebitAndNetCredit(t *testing.T) {
	t.Parallel()

	entries := ledger()

	assert.True(t, NetDebit(entries, "411").Equal(money.New(1180000)))
	assert.True(t, NetCredit(entries, "70").Equal(money.New(1000000)))
	assert.True(t, NetDebit(entries, "70").Equal(money.New(-1000000)))
	assert.True(t, NetDebit(entries, "601", "622").Equal(money.New(400000)))
	assert.True(t, NetDebit(entries).IsZero())
	assert.True(t, NetDebit(entries, "").IsZero())
}

func TestNetDebitAndNetCreditCancel(t *testing.T) {
	t.Parallel()

	entries := ledger()
	for _, prefix := range []string{"4", "52", "6", "7", "28", "1", "8", "9"} {
		t.Run(prefix, func(t *testing.T) {
			sum := NetDebit(entries, prefix).Add(NetCredit(entries, prefix))
			assert.True(t, sum.IsZero(), "prefix %s: %s", prefix, sum)
		})
	}

	// All accounts together balance when every entry does.
	all := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
	assert.True(t, NetDebit(entries, all...).IsZero())
	assert.True(t, NetCredit(entries, all...).IsZero())
}

func TestSafeDivision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  money.Amount
		want string
	}{
		{"safe div", SafeDiv(money.New(10), money.New(4)), "2.5"},
		{"safe div by zero", SafeDiv(money.New(10), money.Zero), "0"},
		{"percent", PercentOf(money.New(1), money.New(3)), "33.3"},
		{"percent of empty base", PercentOf(money.New(5), money.Zero), "0"},
		{"percent half up", PercentOf(money.New(1), money.New(8)), "12.5"},
		{"variance up", Variance(money.New(110), money.New(100)), "10"},
		{"variance down", Variance(money.New(75), money.New(100)), "-25"},
		{"variance from negative", Variance(money.New(-50), money.New(-100)), "50"},
		{"variance from zero", Variance(money.New(500), money.Zero), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.got.Equal(money.MustOf(tt.want)), "got %s want %s", tt.got, tt.want)
		})
	}
}

func TestTreasury(t *testing.T) {
	t.Parallel()

	pos := Treasury(ledger(), chart.Default())

	require.Len(t, pos.Families, 2)
	assert.Equal(t, "52", pos.Families[0].Family)
	assert.False(t, pos.Families[0].Passive)
	assert.True(t, pos.Families[0].Balance.Equal(money.New(1270000)))
	assert.Equal(t, "56", pos.Families[1].Family)
	assert.True(t, pos.Families[1].Passive)

	assert.True(t, pos.Active.Equal(money.New(1270000)))
	assert.True(t, pos.Passive.Equal(money.New(50000)))
	assert.True(t, pos.Net.Equal(money.New(1220000)))
}

func TestNetDebitFollowsChartPrefixRule(t *testing.T) {
	t.Parallel()

	entries := []domain.JournalEntry{{ID: "p1", Lines: []domain.EntryLine{
		{AccountCode: " 521000 ", Debit: money.New(300)},
		{AccountCode: "701000", Credit: money.New(300)},
	}}}

	assert.True(t, chart.Prefixes{"52"}.Match(" 521000 "))
	assert.True(t, NetDebit(entries, "52").Equal(money.New(300)), "padded codes are trimmed")
	assert.True(t, NetDebit(entries, "", "52").Equal(money.New(300)))
	assert.True(t, NetDebit(entries, "").IsZero(), "an empty prefix matches nothing")
	assert.True(t, NetCredit(entries, "7", "52").IsZero())
}

func TestTreasuryLongPassivePrefix(t *testing.T) {
	t.Parallel()

	plan := chart.Default()
	plan.TreasuryPassive = chart.Prefixes{"561"}

	entries := []domain.JournalEntry{
		{ID: "t1", Lines: []domain.EntryLine{
			{AccountCode: "521000", Debit: money.New(100000)},
			{AccountCode: "561000", Credit: money.New(100000)},
		}},
		{ID: "t2", Lines: []domain.EntryLine{
			{AccountCode: "565000", Debit: money.New(20000)},
			{AccountCode: "701000", Credit: money.New(20000)},
		}},
	}

	pos := Treasury(entries, plan)

	require.Len(t, pos.Families, 3)
	assert.Equal(t, "52", pos.Families[0].Family)
	assert.Equal(t, "56", pos.Families[1].Family)
	assert.False(t, pos.Families[1].Passive)
	assert.True(t, pos.Families[1].Balance.Equal(money.New(20000)), "got %s", pos.Families[1].Balance)
	assert.Equal(t, "56", pos.Families[2].Family)
	assert.True(t, pos.Families[2].Passive)
	assert.True(t, pos.Families[2].Balance.Equal(money.New(-100000)), "got %s", pos.Families[2].Balance)

	assert.True(t, pos.Active.Equal(money.New(120000)), "got %s", pos.Active)
	assert.True(t, pos.Passive.Equal(money.New(100000)), "got %s", pos.Passive)
	assert.True(t, pos.Net.Equal(money.New(20000)), "got %s", pos.Net)
}

func TestSIG(t *testing.T) {
	t.Parallel()

	r := SIG(ledger())

	want := map[string]int64{
		SIGChiffreAffaires:      1000000,
		SIGMargeCommerciale:     300000,
		SIGValeurAjoutee:        600000,
		SIGExcedentExploitation: 400000,
		SIGResultatExploitation: 350000,
		SIGResultatFinancier:    -10000,
		SIGResultatOrdinaire:    340000,
		SIGResultatHAO:          10000,
		SIGResultatNet:          310000,
	}
	require.Len(t, r.Lines, len(want))
	for code, amount := range want {
		assert.True(t, r.Amount(code).Equal(money.New(amount)), "%s: got %s want %d", code, r.Amount(code), amount)
	}

	rn, ok := r.Line(SIGResultatNet)
	require.True(t, ok)
	assert.Equal(t, "Résultat net", rn.Label)
	assert.True(t, rn.PercentOfCA.Equal(money.MustOf("31")))
	assert.Nil(t, rn.Prior)

	assert.Equal(t, SIGChiffreAffaires, r.Lines[0].Code)
	assert.Equal(t, SIGResultatNet, r.Lines[len(r.Lines)-1].Code)
}

func TestSIGEmptyLedger(t *testing.T) {
	t.Parallel()

	r := SIG(nil)
	for _, l := range r.Lines {
		assert.True(t, l.Amount.IsZero(), l.Code)
		assert.True(t, l.PercentOfCA.IsZero(), l.Code)
	}
}

func TestCompareSIG(t *testing.T) {
	t.Parallel()

	prior := SIG([]domain.JournalEntry{
		post("sale", mv{"411000", 800000, 0}, mv{"701000", 0, 800000}),
	})
	current := SIG(ledger())

	cmp := CompareSIG(current, prior)
	ca, ok := cmp.Line(SIGChiffreAffaires)
	require.True(t, ok)
	require.NotNil(t, ca.Prior)
	assert.True(t, ca.Prior.Equal(money.New(800000)))
	assert.True(t, ca.Variance.Equal(money.MustOf("25")))

	rf, _ := cmp.Line(SIGResultatFinancier)
	assert.True(t, rf.Variance.IsZero(), "zero prior gives zero variance, got %s", rf.Variance)

	// Inputs are left untouched.
	assert.Nil(t, current.Lines[0].Prior)
}

func TestComputeRatios(t *testing.T) {
	t.Parallel()

	r := ComputeRatios(ledger(), chart.Default())

	tests := []struct {
		name string
		got  money.Amount
		want string
	}{
		{"liquidity", r.Liquidity, "6.06"},
		{"autonomy", r.Autonomy, "66.7"},
		{"gearing", r.Gearing, "0.5"},
		{"net margin", r.NetMargin, "31"},
		{"customer delay", r.CustomerDelayDays, "425"},
		{"supplier delay", r.SupplierDelayDays, "425"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.got.Equal(money.MustOf(tt.want)), "got %s want %s", tt.got, tt.want)
		})
	}
}

func TestComputeRatiosEmptyLedger(t *testing.T) {
	t.Parallel()

	r := ComputeRatios(nil, chart.Default())
	for i, v := range []money.Amount{r.Liquidity, r.Autonomy, r.Gearing, r.NetMargin, r.CustomerDelayDays, r.SupplierDelayDays} {
		assert.True(t, v.IsZero(), fmt.Sprintf("ratio %d", i))
	}
}

func TestTrial(t *testing.T) {
	t.Parallel()

	entries := ledger()
	entries[0].Lines[0].AccountLabel = "Banque"

	tb := Trial(entries)
	assert.True(t, tb.Balanced())
	assert.True(t, tb.TotalDebit.Equal(money.New(3534000)))

	require.NotEmpty(t, tb.Lines)
	assert.Equal(t, "101000", tb.Lines[0].AccountCode)
	assert.True(t, tb.Lines[0].Balance.Equal(money.New(-1000000)))

	var bank TrialLine
	for _, l := range tb.Lines {
		if l.AccountCode == "521000" {
			bank = l
		}
	}
	assert.Equal(t, "Banque", bank.Label)
	assert.True(t, bank.Debit.Equal(money.New(1580000)))
	assert.True(t, bank.Credit.Equal(money.New(310000)))
	assert.True(t, bank.Balance.Equal(money.New(1270000)))

	for i := 1; i < len(tb.Lines); i++ {
		assert.Less(t, tb.Lines[i-1].AccountCode, tb.Lines[i].AccountCode)
	}
}
