package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	settlementStepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payouts",
		Subsystem: "settlement",
		Name:      "steps_total",
		Help:      "Count of settlement cycle steps.",
	}, []string{"coin", "step", "status"})
	settlementStepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "payouts",
		Subsystem: "settlement",
		Name:      "step_duration_seconds",
		Help:      "Duration of settlement cycle steps.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "step", "status"})
)

// Settlement satisfies the settlement engine's Metrics dependency.
type Settlement struct{}

func NewSettlement() *Settlement { return &Settlement{} }

func (*Settlement) ObserveStep(coin, step string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	settlementStepsTotal.WithLabelValues(coin, step, status).Inc()
	settlementStepDuration.WithLabelValues(coin, step, status).Observe(time.Since(started).Seconds())
}
