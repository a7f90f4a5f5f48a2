package lend

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type positionMetrics struct {
	refreshes    *prometheus.CounterVec
	readErrors   *prometheus.CounterVec
	staleDrops   prometheus.Counter
	batchesBuilt *prometheus.CounterVec
}

var (
	positionMetricsOnce sync.Once
	positionRegistry    *positionMetrics
)

// Metrics returns the lazily-initialised counters tracking refresh activity
// and transaction-batch construction.
func Metrics() *positionMetrics {
	positionMetricsOnce.Do(func() {
		positionRegistry = &positionMetrics{
			refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "safelend",
				Subsystem: "position",
				Name:      "refreshes_total",
				Help:      "Snapshot refresh cycles segmented by outcome.",
			}, []string{"outcome"}),
			readErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "safelend",
				Subsystem: "position",
				Name:      "read_errors_total",
				Help:      "Contract-state read failures segmented by read.",
			}, []string{"read"}),
			staleDrops: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "safelend",
				Subsystem: "position",
				Name:      "stale_drops_total",
				Help:      "Refresh results discarded because the selected asset changed mid-flight.",
			}),
			batchesBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "safelend",
				Subsystem: "txbuilder",
				Name:      "batches_total",
				Help:      "Transaction batches assembled segmented by operation.",
			}, []string{"operation"}),
		}
		prometheus.MustRegister(
			positionRegistry.refreshes,
			positionRegistry.readErrors,
			positionRegistry.staleDrops,
			positionRegistry.batchesBuilt,
		)
	})
	return positionRegistry
}

func (m *positionMetrics) ObserveRefresh(outcome string) {
	if m == nil {
		return
	}
	m.refreshes.WithLabelValues(outcome).Inc()
}

func (m *positionMetrics) ObserveReadError(read string) {
	if m == nil {
		return
	}
	m.readErrors.WithLabelValues(read).Inc()
}

func (m *positionMetrics) ObserveStaleDrop() {
	if m == nil {
		return
	}
	m.staleDrops.Inc()
}

func (m *positionMetrics) ObserveBatch(op Operation) {
	if m == nil {
		return
	}
	m.batchesBuilt.WithLabelValues(op.String()).Inc()
}
