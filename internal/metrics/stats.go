package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	statsCollectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payouts",
		Subsystem: "stats",
		Name:      "collections_total",
		Help:      "Count of pool stats collection runs.",
	}, []string{"coin", "status"})
	statsCollectionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "payouts",
		Subsystem: "stats",
		Name:      "collection_duration_seconds",
		Help:      "Duration of pool stats collection runs.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "status"})
)

func ObserveStatsCollection(coin string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	statsCollectionsTotal.WithLabelValues(coin, status).Inc()
	statsCollectionDuration.WithLabelValues(coin, status).Observe(time.Since(started).Seconds())
}
