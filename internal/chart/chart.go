// Package chart holds the account-code families of the SYSCOHADA chart of
// accounts used by the analyzers. Account codes are hierarchical: "445660"
// belongs to every family listing "4456", "445" or "44".
package chart

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Prefixes is a set of account-code prefixes forming one family.
type Prefixes []string

// Match reports whether code starts with any prefix of the family.
func (p Prefixes) Match(code string) bool {
	code = strings.TrimSpace(code)
	for _, prefix := range p {
		if prefix != "" && strings.HasPrefix(code, prefix) {
			return true
		}
	}
	return false
}

// Plan groups the account families the analyzers rely on.
type Plan struct {
	DeductibleVAT            Prefixes `yaml:"deductible_vat"`
	CollectedVAT             Prefixes `yaml:"collected_vat"`
	DueVAT                   Prefixes `yaml:"due_vat"`
	CreditVAT                Prefixes `yaml:"credit_vat"`
	Receivable               Prefixes `yaml:"receivable"`
	Payable                  Prefixes `yaml:"payable"`
	DepreciationAccumulation Prefixes `yaml:"depreciation_accumulation"`
	TreasuryPassive          Prefixes `yaml:"treasury_passive"`
	Treasury                 Prefixes `yaml:"treasury"`
}

// Default returns the SYSCOHADA families, with the French PCG VAT
// sub-accounts (4456x, 4457x) accepted as well.
func Default() Plan {
	return Plan{
		DeductibleVAT:            Prefixes{"4451", "4452", "4453", "4454", "4456"},
		CollectedVAT:             Prefixes{"443", "4457"},
		DueVAT:                   Prefixes{"4441", "4455"},
		CreditVAT:                Prefixes{"4449", "44567"},
		Receivable:               Prefixes{"411"},
		Payable:                  Prefixes{"401"},
		DepreciationAccumulation: Prefixes{"28"},
		TreasuryPassive:          Prefixes{"56"},
		Treasury:                 Prefixes{"5"},
	}
}

// TaxAccounts returns every VAT family merged.
func (p Plan) TaxAccounts() Prefixes {
	all := make(Prefixes, 0, len(p.DeductibleVAT)+len(p.CollectedVAT)+len(p.DueVAT)+len(p.CreditVAT))
	all = append(all, p.DeductibleVAT...)
	all = append(all, p.CollectedVAT...)
	all = append(all, p.DueVAT...)
	all = append(all, p.CreditVAT...)
	return all
}

// VATPolicy overrides the VAT validator thresholds. Values are decimal literals.
type VATPolicy struct {
	MaxRate       string   `yaml:"max_rate"`
	StandardRates []string `yaml:"standard_rates"`
	ImbalanceHigh string   `yaml:"imbalance_high"`
	ImbalanceLow  string   `yaml:"imbalance_low"`
}

// File is the on-disk chart configuration.
type File struct {
	Accounts Plan      `yaml:"accounts"`
	VAT      VATPolicy `yaml:"vat"`
}

// Load reads a YAML chart file. Families missing from the file keep their
// default prefixes.
func Load(path string) (File, error) {
	f := File{Accounts: Default()}
	if path == "" {
		return f, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("failed to read chart file: %w", err)
	}

	return Parse(raw)
}

// Parse decodes chart YAML over the defaults.
func Parse(raw []byte) (File, error) {
	var overlay File
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return File{}, fmt.Errorf("failed to parse chart file: %w", err)
	}

	f := File{Accounts: Default(), VAT: overlay.VAT}
	merge(&f.Accounts.DeductibleVAT, overlay.Accounts.DeductibleVAT)
	merge(&f.Accounts.CollectedVAT, overlay.Accounts.CollectedVAT)
	merge(&f.Accounts.DueVAT, overlay.Accounts.DueVAT)
	merge(&f.Accounts.CreditVAT, overlay.Accounts.CreditVAT)
	merge(&f.Accounts.Receivable, overlay.Accounts.Receivable)
	merge(&f.Accounts.Payable, overlay.Accounts.Payable)
	merge(&f.Accounts.DepreciationAccumulation, overlay.Accounts.DepreciationAccumulation)
	merge(&f.Accounts.TreasuryPassive, overlay.Accounts.TreasuryPassive)
	merge(&f.Accounts.Treasury, overlay.Accounts.Treasury)

	return f, nil
}

func merge(dst *Prefixes, src Prefixes) {
	if len(src) > 0 {
		*dst = src
	}
}
