// Package metrics exposes Prometheus gauges and histograms for the
// engine's structural size and mutation cost, following the teacher's
// eventbus.MetricsExporter shape: a small exporter type wrapping a
// prometheus.Registerer, fed from the outside rather than from inside
// any structural primitive, so metrics collection can never perturb the
// algorithm it's observing.
package metrics

import (
	"net/http"
	"time"

	"github.com/annel0/blocknetwork/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Exporter tracks active network/node/edge counts, set through
// SetGraphSize (e.g. from registry hook callbacks), and a per-mutation
// latency histogram, fed only through ObserveMutation.
type Exporter struct {
	networks prometheus.Gauge
	nodes    prometheus.Gauge
	edges    prometheus.Gauge
	mutation prometheus.Histogram
}

// New creates an Exporter and registers its collectors on reg. Pass
// prometheus.DefaultRegisterer unless the host wants an isolated
// registry (e.g. for tests).
func New(reg prometheus.Registerer) *Exporter {
	e := &Exporter{
		networks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "blocknetwork",
			Name:      "networks_active",
			Help:      "Number of active networks in the registry.",
		}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "blocknetwork",
			Name:      "nodes_total",
			Help:      "Total node count summed across all active networks.",
		}),
		edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "blocknetwork",
			Name:      "edges_total",
			Help:      "Total edge count summed across all active networks.",
		}),
		mutation: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "blocknetwork",
			Name:      "mutation_duration_seconds",
			Help:      "Latency of a single add_block/remove_block/rebuild call.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(e.networks, e.nodes, e.edges, e.mutation)
	return e
}

// SetGraphSize records the current totals, called from a hook after a
// structural change has already completed.
func (e *Exporter) SetGraphSize(networkCount, nodeCount, edgeCount int) {
	e.networks.Set(float64(networkCount))
	e.nodes.Set(float64(nodeCount))
	e.edges.Set(float64(edgeCount))
}

// ObserveMutation records how long a single public call took.
func (e *Exporter) ObserveMutation(d time.Duration) {
	e.mutation.Observe(d.Seconds())
}

// StartHTTP serves /metrics on addr in a background goroutine.
func (e *Exporter) StartHTTP(addr string) {
	go func() {
		logging.Info("metrics: /metrics listening on %s", addr)
		if err := http.ListenAndServe(addr, promhttp.Handler()); err != nil {
			logging.Error("metrics: HTTP server error: %v", err)
		}
	}()
}
