// Package metrics republishes the engine's per-run diagnostic snapshot
// (§9) as Prometheus gauges and counters, plus a handful of process-level
// runtime gauges. The engine package itself never imports Prometheus or
// this package: the caller builds a plain Snapshot (see SnapshotForVariant)
// and hands it to RecordSnapshot, keeping the hot solve path free of any
// metrics-library dependency.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Snapshot carries the subset of an engine diagnostic record that is worth
// exporting. Field names mirror the ResultInfo/BucketStats/HeapStats
// vocabulary the solve entry points return.
type Snapshot struct {
	Variant     string
	SettledHeap int64
	Relaxations int64

	HeapPushes  int64
	HeapPops    int64
	HeapMaxSize int64

	BucketsVisited    int64
	LightRelaxations  int64
	HeavyRelaxations  int64
	LightPassRepeats  int64
	MaxBucketIndex    int64
	Restarts          int64
	DeltaX1000        int64
	HeavyRatioX1000   int64
	DurationSeconds   float64
	Succeeded         bool
}

// Metrics is the global metrics container for an embedding process.
type Metrics struct {
	SolveOperationsTotal *prometheus.CounterVec
	SolveDuration        *prometheus.HistogramVec
	SolvesInFlight       prometheus.Gauge

	RelaxationsTotal *prometheus.CounterVec
	HeapOpsTotal     *prometheus.CounterVec
	HeapMaxSize      *prometheus.GaugeVec

	BucketsVisited   *prometheus.HistogramVec
	LightPassRepeats *prometheus.HistogramVec
	MaxBucketIndex   *prometheus.HistogramVec
	Restarts         *prometheus.HistogramVec
	Delta            *prometheus.GaugeVec
	HeavyRatio       *prometheus.GaugeVec

	GraphNodesTotal *prometheus.HistogramVec
	GraphEdgesTotal *prometheus.HistogramVec

	ServiceInfo *prometheus.GaugeVec
}

var (
	defaultMetrics *Metrics
	defaultOnce    sync.Once
)

// InitMetrics constructs and registers the engine's metric vectors under
// the given namespace/subsystem.
func InitMetrics(namespace, subsystem string) *Metrics {
	m := &Metrics{
		SolveOperationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace, Subsystem: subsystem,
				Name: "solve_operations_total",
				Help: "Total number of solve operations by variant and outcome",
			},
			[]string{"variant", "status"},
		),
		SolveDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Subsystem: subsystem,
				Name:    "solve_duration_seconds",
				Help:    "Wall-clock duration of a solve call",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5, 10},
			},
			[]string{"variant"},
		),
		SolvesInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace, Subsystem: subsystem,
				Name: "solves_in_flight",
				Help: "Number of solve calls currently executing",
			},
		),

		RelaxationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace, Subsystem: subsystem,
				Name: "relaxations_total",
				Help: "Total edge relaxations performed, by variant and edge class",
			},
			[]string{"variant", "class"},
		),
		HeapOpsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace, Subsystem: subsystem,
				Name: "heap_operations_total",
				Help: "Total heap push/pop operations, by variant and op",
			},
			[]string{"variant", "op"},
		),
		HeapMaxSize: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace, Subsystem: subsystem,
				Name: "heap_max_size",
				Help: "Largest heap size observed during the most recent solve",
			},
			[]string{"variant"},
		),

		BucketsVisited: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Subsystem: subsystem,
				Name:    "buckets_visited",
				Help:    "Number of bucket visits during a bucket-based solve (k-hop counts each re-entry of a bucket)",
				Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128, 256, 512},
			},
			[]string{"variant"},
		),
		LightPassRepeats: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Subsystem: subsystem,
				Name:    "light_pass_repeats",
				Help:    "Number of light-edge saturation passes within a single bucket",
				Buckets: []float64{1, 2, 3, 4, 5, 8, 13, 21},
			},
			[]string{"variant"},
		),
		MaxBucketIndex: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Subsystem: subsystem,
				Name:    "max_bucket_index",
				Help:    "Highest bucket index reached",
				Buckets: []float64{1, 4, 16, 64, 256, 1024, 4096},
			},
			[]string{"variant"},
		),
		Restarts: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Subsystem: subsystem,
				Name:    "adaptive_restarts",
				Help:    "Number of delta restarts performed by the adaptive controller",
				Buckets: []float64{0, 1, 2, 3, 4},
			},
			[]string{"variant"},
		),
		Delta: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace, Subsystem: subsystem,
				Name: "delta_x1000",
				Help: "Delta bucket width in use, scaled by 1000, from the most recent solve",
			},
			[]string{"variant"},
		),
		HeavyRatio: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace, Subsystem: subsystem,
				Name: "heavy_ratio_x1000",
				Help: "Observed heavy-edge relaxation ratio, scaled by 1000",
			},
			[]string{"variant"},
		),

		GraphNodesTotal: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Subsystem: subsystem,
				Name:    "graph_nodes_total",
				Help:    "Number of vertices in solved graphs",
				Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000, 50000, 100000},
			},
			[]string{"variant"},
		),
		GraphEdgesTotal: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Subsystem: subsystem,
				Name:    "graph_edges_total",
				Help:    "Number of edges in solved graphs",
				Buckets: []float64{20, 100, 500, 1000, 5000, 10000, 50000, 100000, 1000000},
			},
			[]string{"variant"},
		),

		ServiceInfo: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace, Subsystem: subsystem,
				Name: "build_info",
				Help: "Static build information",
			},
			[]string{"version"},
		),
	}

	defaultMetrics = m
	return m
}

// Get returns the global Metrics, lazily initializing with a default
// namespace if InitMetrics has not been called yet.
func Get() *Metrics {
	defaultOnce.Do(func() {
		if defaultMetrics == nil {
			InitMetrics("sssp", "engine")
		}
	})
	return defaultMetrics
}

// RecordSnapshot republishes one solve's diagnostic snapshot.
func (m *Metrics) RecordSnapshot(s Snapshot, nodes, edges int) {
	status := "ok"
	if !s.Succeeded {
		status = "error"
	}
	m.SolveOperationsTotal.WithLabelValues(s.Variant, status).Inc()
	m.SolveDuration.WithLabelValues(s.Variant).Observe(s.DurationSeconds)

	m.RelaxationsTotal.WithLabelValues(s.Variant, "light").Add(float64(s.LightRelaxations))
	m.RelaxationsTotal.WithLabelValues(s.Variant, "heavy").Add(float64(s.HeavyRelaxations))

	m.HeapOpsTotal.WithLabelValues(s.Variant, "push").Add(float64(s.HeapPushes))
	m.HeapOpsTotal.WithLabelValues(s.Variant, "pop").Add(float64(s.HeapPops))
	m.HeapMaxSize.WithLabelValues(s.Variant).Set(float64(s.HeapMaxSize))

	m.BucketsVisited.WithLabelValues(s.Variant).Observe(float64(s.BucketsVisited))
	m.LightPassRepeats.WithLabelValues(s.Variant).Observe(float64(s.LightPassRepeats))
	m.MaxBucketIndex.WithLabelValues(s.Variant).Observe(float64(s.MaxBucketIndex))
	m.Restarts.WithLabelValues(s.Variant).Observe(float64(s.Restarts))
	m.Delta.WithLabelValues(s.Variant).Set(float64(s.DeltaX1000))
	m.HeavyRatio.WithLabelValues(s.Variant).Set(float64(s.HeavyRatioX1000))

	m.GraphNodesTotal.WithLabelValues(s.Variant).Observe(float64(nodes))
	m.GraphEdgesTotal.WithLabelValues(s.Variant).Observe(float64(edges))
}

// SetServiceInfo records a static build version gauge.
func (m *Metrics) SetServiceInfo(version string) {
	m.ServiceInfo.WithLabelValues(version).Set(1)
}

// Handler returns the HTTP handler serving /metrics in the Prometheus
// exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// StartMetricsServer starts a standalone HTTP server exposing /metrics and
// /health. It blocks; callers typically run it in its own goroutine.
func StartMetricsServer(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return server.ListenAndServe()
}
