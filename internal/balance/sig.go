package balance

import (
	"github.com/iho/ohadacore/internal/domain"
	"github.com/iho/ohadacore/internal/money"
)

// SIG line codes, in cascade order.
const (
	SIGChiffreAffaires      = "CA"
	SIGMargeCommerciale     = "MC"
	SIGValeurAjoutee        = "VA"
	SIGExcedentExploitation = "EBE"
	SIGResultatExploitation = "RE"
	SIGResultatFinancier    = "RF"
	SIGResultatOrdinaire    = "RAO"
	SIGResultatHAO          = "RHAO"
	SIGResultatNet          = "RN"
)

var sigLabels = map[string]string{
	SIGChiffreAffaires:      "Chiffre d'affaires",
	SIGMargeCommerciale:     "Marge commerciale",
	SIGValeurAjoutee:        "Valeur ajoutée",
	SIGExcedentExploitation: "Excédent brut d'exploitation",
	SIGResultatExploitation: "Résultat d'exploitation",
	SIGResultatFinancier:    "Résultat financier",
	SIGResultatOrdinaire:    "Résultat des activités ordinaires",
	SIGResultatHAO:          "Résultat hors activités ordinaires",
	SIGResultatNet:          "Résultat net",
}

// SIGLine is one intermediate management balance. Prior and Variance are set
// by CompareSIG only.
type SIGLine struct {
	Code        string        `json:"code"`
	Label       string        `json:"label"`
	Amount      money.Amount  `json:"amount"`
	PercentOfCA money.Amount  `json:"percent_of_ca"`
	Prior       *money.Amount `json:"prior,omitempty"`
	Variance    *money.Amount `json:"variance,omitempty"`
}

// SIGReport is the SYSCOHADA cascade of soldes intermédiaires de gestion.
type SIGReport struct {
	Lines []SIGLine `json:"lines"`
}

// Line returns the line with the given code.
func (r *SIGReport) Line(code string) (SIGLine, bool) {
	for _, l := range r.Lines {
		if l.Code == code {
			return l, true
		}
	}
	return SIGLine{}, false
}

// Amount returns the amount of a line, zero when absent.
func (r *SIGReport) Amount(code string) money.Amount {
	l, ok := r.Line(code)
	if !ok {
		return money.Zero
	}
	return l.Amount
}

// SIG computes the cascade from class 6, 7 and 8 accounts.
func SIG(entries []domain.JournalEntry) SIGReport {
	ca := NetCredit(entries, "70")

	mc := NetCredit(entries, "701").
		Sub(NetDebit(entries, "601", "6031"))

	production := NetCredit(entries, "702", "703", "704", "705", "706", "707", "71", "72", "73", "75")
	consumption := NetDebit(entries, "602", "6032", "604", "605", "608", "61", "62", "63", "64", "65")
	va := mc.Add(production).Sub(consumption)

	ebe := va.Sub(NetDebit(entries, "66"))

	re := ebe.
		Add(NetCredit(entries, "781", "791", "798", "799")).
		Sub(NetDebit(entries, "681", "691"))

	rf := NetCredit(entries, "77", "787", "797").
		Sub(NetDebit(entries, "67", "687", "697"))

	rao := re.Add(rf)

	hao := NetCredit(entries, "82", "84", "86", "88").
		Sub(NetDebit(entries, "81", "83", "85"))

	rn := rao.Add(hao).Sub(NetDebit(entries, "87", "89"))

	amounts := []struct {
		code   string
		amount money.Amount
	}{
		{SIGChiffreAffaires, ca},
		{SIGMargeCommerciale, mc},
		{SIGValeurAjoutee, va},
		{SIGExcedentExploitation, ebe},
		{SIGResultatExploitation, re},
		{SIGResultatFinancier, rf},
		{SIGResultatOrdinaire, rao},
		{SIGResultatHAO, hao},
		{SIGResultatNet, rn},
	}

	r := SIGReport{Lines: make([]SIGLine, 0, len(amounts))}
	for _, a := range amounts {
		r.Lines = append(r.Lines, SIGLine{
			Code:        a.code,
			Label:       sigLabels[a.code],
			Amount:      a.amount,
			PercentOfCA: PercentOf(a.amount, ca),
		})
	}
	return r
}

// CompareSIG returns current with each line's prior amount and variance.
func CompareSIG(current, prior SIGReport) SIGReport {
	out := SIGReport{Lines: make([]SIGLine, 0, len(current.Lines))}
	for _, l := range current.Lines {
		p := prior.Amount(l.Code)
		v := Variance(l.Amount, p)
		l.Prior = &p
		l.Variance = &v
		out.Lines = append(out.Lines, l)
	}
	return out
}
