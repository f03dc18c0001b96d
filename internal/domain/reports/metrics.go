package reports

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ReportGenerated prometheus.Counter
	ReportFailed    prometheus.Counter
	ReportDuration  prometheus.Histogram
}

func NewMetrics() *Metrics {
	return &Metrics{
		ReportGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rentora_reports_generated_total",
			Help: "Total number of report snapshots generated",
		}),
		ReportFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rentora_reports_failed_total",
			Help: "Total number of report aggregations that failed",
		}),
		ReportDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "rentora_report_duration_seconds",
			Help:    "Wall-clock duration of report aggregation",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}
