package observability

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "brickstack"

// PrometheusHooks records pipeline and cache events as Prometheus metrics
// in a private registry. The CLI is short-lived, so metrics are written
// to a textfile for node_exporter rather than served over HTTP.
type PrometheusHooks struct {
	registry *prometheus.Registry

	generations   *prometheus.CounterVec
	generateTime  prometheus.Histogram
	placedPieces  prometheus.Histogram
	attempts      prometheus.Histogram
	renders       *prometheus.CounterVec
	renderTime    prometheus.Histogram
	verifications *prometheus.CounterVec
	cacheEvents   *prometheus.CounterVec
	cacheBytes    *prometheus.CounterVec
}

// NewPrometheusHooks creates hooks with all metrics registered.
func NewPrometheusHooks() *PrometheusHooks {
	h := &PrometheusHooks{
		registry: prometheus.NewRegistry(),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Puzzle generations by outcome.",
		}, []string{"outcome"}),
		generateTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generate_duration_seconds",
			Help:      "Time spent generating a structure.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		placedPieces: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "placed_pieces",
			Help:      "Pieces placed per generated structure.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}),
		attempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "placement_attempts",
			Help:      "Candidate placements tried per generated structure.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Render passes by format set and outcome.",
		}, []string{"formats", "outcome"}),
		renderTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering artifacts.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verifications_total",
			Help:      "Checked submissions by result.",
		}, []string{"result"}),
		cacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_events_total",
			Help:      "Cache lookups and writes by key type.",
		}, []string{"key_type", "event"}),
		cacheBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_written_bytes_total",
			Help:      "Bytes written to the cache by key type.",
		}, []string{"key_type"}),
	}
	h.registry.MustRegister(h.generations, h.generateTime, h.placedPieces, h.attempts,
		h.renders, h.renderTime, h.verifications, h.cacheEvents, h.cacheBytes)
	return h
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (h *PrometheusHooks) Registry() *prometheus.Registry { return h.registry }

// WriteTextfile writes all metrics in the text exposition format.
func (h *PrometheusHooks) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, h.registry)
}

func (h *PrometheusHooks) OnGenerateStart(context.Context, int) {}

func (h *PrometheusHooks) OnGenerateComplete(_ context.Context, placed, attempts int, d time.Duration, err error) {
	h.generations.WithLabelValues(outcome(err)).Inc()
	h.generateTime.Observe(d.Seconds())
	if err == nil {
		h.placedPieces.Observe(float64(placed))
		h.attempts.Observe(float64(attempts))
	}
}

func (h *PrometheusHooks) OnRenderStart(context.Context, []string) {}

func (h *PrometheusHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.renders.WithLabelValues(strings.Join(formats, ","), outcome(err)).Inc()
	h.renderTime.Observe(d.Seconds())
}

func (h *PrometheusHooks) OnVerify(_ context.Context, solved bool) {
	result := "wrong"
	if solved {
		result = "solved"
	}
	h.verifications.WithLabelValues(result).Inc()
}

func (h *PrometheusHooks) OnCacheHit(_ context.Context, keyType string) {
	h.cacheEvents.WithLabelValues(keyType, "hit").Inc()
}

func (h *PrometheusHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.cacheEvents.WithLabelValues(keyType, "miss").Inc()
}

func (h *PrometheusHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.cacheEvents.WithLabelValues(keyType, "set").Inc()
	h.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

var (
	_ PipelineHooks = (*PrometheusHooks)(nil)
	_ CacheHooks    = (*PrometheusHooks)(nil)
)
