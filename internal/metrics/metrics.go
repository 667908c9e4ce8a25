// Package metrics defines the Prometheus instruments for the backend client.
// It is the single source of truth for metric names, labels and help strings;
// registration happens on import via promauto against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pymerp"

// RequestsTotal counts backend round trips.
// Labels:
//   - endpoint: logical endpoint group (e.g. "notifications", "purchase_orders")
//   - outcome: "ok", "http_error", "transport_error", "decode_error"
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of backend API requests by endpoint and outcome.",
	},
	[]string{"endpoint", "outcome"},
)

// FallbacksTotal counts list loads that degraded to the built-in sample
// dataset instead of live data.
// Label:
//   - endpoint: logical endpoint group that degraded
var FallbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fallbacks_total",
		Help:      "Total number of list loads served from the fallback dataset.",
	},
	[]string{"endpoint"},
)

// PollTicksTotal counts notification poll cycles.
var PollTicksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "poll_ticks_total",
		Help:      "Total number of notification poll cycles executed.",
	},
)

// StaleDropsTotal counts fetch resolutions discarded because a newer fetch
// had already been adopted.
var StaleDropsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stale_drops_total",
		Help:      "Total number of fetch results discarded as stale by the generation guard.",
	},
)

// UnreadNotifications tracks the unread count from the last adopted poll.
var UnreadNotifications = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "unread_notifications",
		Help:      "Unread notification count as of the last adopted poll.",
	},
)
