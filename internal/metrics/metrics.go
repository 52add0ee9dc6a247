// Package metrics holds the Prometheus collectors shared by the panel,
// the backend client and the page server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PanelRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pf_panel_refreshes_total",
	Help: "Comment panel refreshes by outcome (applied, stale, error).",
}, []string{"result"})

var PanelDeletes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pf_panel_deletes_total",
	Help: "Delete-all requests issued by the comment panel, by outcome.",
}, []string{"result"})

var BackendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "pf_backend_request_duration_seconds",
	Help:    "Latency of requests to the portfolio backend.",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "path", "code"})

var PageSectionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pf_page_section_failures_total",
	Help: "Page sections rendered empty because their backend call failed.",
}, []string{"section"})
