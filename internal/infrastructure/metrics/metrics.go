package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis kinds used as label values.
const (
	KindTax          = "tax"
	KindAging        = "aging"
	KindProvision    = "provision"
	KindDepreciation = "depreciation"
	KindTreasury     = "treasury"
	KindSIG          = "sig"
	KindRatios       = "ratios"
	KindTrialBalance = "trial_balance"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Analysis metrics
	AnalysesRun      *prometheus.CounterVec
	AnalysisDuration *prometheus.HistogramVec
	VATFindings      *prometheus.CounterVec
	MissingMonths    prometheus.Gauge
	ProvisionGap     prometheus.Gauge
	ProvisionsStored *prometheus.CounterVec

	// Report cache metrics
	CacheLookups *prometheus.CounterVec

	// Database metrics
	DBQueries       *prometheus.CounterVec
	DBDuration      *prometheus.HistogramVec
	DBErrors        *prometheus.CounterVec
	BreakerChanges  *prometheus.CounterVec
	DBConnections   prometheus.Gauge
	RetriesAttempts *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Analysis metrics
		AnalysesRun: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ohadacore_analyses_total",
				Help: "Total analyses run by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		AnalysisDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ohadacore_analysis_duration_seconds",
				Help:    "Duration of analyses, repository reads included",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		VATFindings: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ohadacore_vat_findings_total",
				Help: "VAT validation findings by severity",
			},
			[]string{"severity"},
		),
		MissingMonths: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ohadacore_depreciation_missing_months",
			Help: "Months without posted depreciation in the last reconciliation",
		}),
		ProvisionGap: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ohadacore_provision_gap",
			Help: "Calculated minus recorded provisions in the last comparison",
		}),
		ProvisionsStored: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ohadacore_provisions_stored_total",
				Help: "Provision records written by operation",
			},
			[]string{"operation"},
		),

		// Report cache metrics
		CacheLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ohadacore_report_cache_lookups_total",
				Help: "Report cache lookups by result",
			},
			[]string{"report", "result"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ohadacore_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ohadacore_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ohadacore_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),
		BreakerChanges: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ohadacore_db_breaker_state_changes_total",
				Help: "Repository circuit breaker state changes",
			},
			[]string{"name", "to"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ohadacore_db_connections",
			Help: "Current number of acquired database connections",
		}),
		RetriesAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ohadacore_db_retries_total",
				Help: "Database operations retried after a transient error",
			},
			[]string{"operation"},
		),
	}
}
