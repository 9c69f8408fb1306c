package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	// Replace global default registry to allow test inspection.
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry

	m := New()

	if m.AnalysesRun == nil || m.VATFindings == nil || m.DBQueries == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.AnalysesRun.WithLabelValues(KindAging, "ok").Inc()
	m.VATFindings.WithLabelValues("error").Add(2)
	m.MissingMonths.Set(3)

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}

	values := make(map[string]float64)
	for _, mf := range metricFamilies {
		for _, metric := range mf.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				values[mf.GetName()] += metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				values[mf.GetName()] += metric.GetGauge().GetValue()
			}
		}
	}

	if got := values["ohadacore_vat_findings_total"]; got != 2 {
		t.Fatalf("expected 2 VAT findings, got %v", got)
	}
	if got := values["ohadacore_depreciation_missing_months"]; got != 3 {
		t.Fatalf("expected 3 missing months, got %v", got)
	}
}
