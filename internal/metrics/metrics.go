// Package metrics provides Prometheus instrumentation for the chat
// viewer: upload outcomes, extraction throughput, decode latency and
// live session count.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ReplaysParsed counts processed uploads, labeled by result:
	// "ok" or "error".
	ReplaysParsed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chatviewer_replays_parsed_total",
		Help: "Total number of replay uploads processed",
	}, []string{"result"})

	// MessagesExtracted counts chat records produced across uploads.
	MessagesExtracted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chatviewer_messages_extracted_total",
		Help: "Total number of chat messages extracted from replays",
	})

	// ParseDuration records end-to-end decode+extract latency.
	ParseDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "chatviewer_parse_duration_seconds",
		Help:    "Replay decode and extraction latency in seconds",
		Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	})

	// ActiveSessions tracks sessions currently held in memory.
	ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chatviewer_active_sessions",
		Help: "Current number of in-memory viewer sessions",
	})
)

func init() {
	prometheus.MustRegister(
		ReplaysParsed,
		MessagesExtracted,
		ParseDuration,
		ActiveSessions,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
