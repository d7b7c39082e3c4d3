package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type CalculationMetrics struct {
	CalculationsTotal   *prometheus.CounterVec
	CalculationDuration *prometheus.HistogramVec
}

var Calculations = CalculationMetrics{
	CalculationsTotal: promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "amortization_engine_calculations_total",
			Help: "Total number of amortization calculations performed.",
		},
		[]string{"type", "status"},
	),
	CalculationDuration: promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "amortization_engine_calculation_duration_seconds",
			Help:    "Histogram of amortization calculation latencies.",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"type", "status"},
	),
}

func RecordCalculation(calculationType, status string, duration time.Duration) {
	Calculations.CalculationsTotal.WithLabelValues(calculationType, status).Inc()
	Calculations.CalculationDuration.WithLabelValues(calculationType, status).Observe(duration.Seconds())
}
