// Package metrics defines and registers all custom Prometheus metrics for
// the attendance API. It is the single source of truth for metric names,
// labels, and help strings. Metrics self-register with the default registry
// via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "attendance"

// ── Check-in metrics ──────────────────────────────────────────────────────────

// CheckinsProcessedTotal counts check-in events by outcome.
// Label:
//   - result: "recorded", "schedule_not_found", "schedule_closed",
//     "user_not_found", or "insert_failed"
var CheckinsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkins_processed_total",
		Help:      "Total number of device check-in events, labelled by outcome.",
	},
	[]string{"result"},
)

// CheckinsDedupTotal counts idempotency decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new event, processed)
var CheckinsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkins_dedup_total",
		Help:      "Total number of check-in deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// CheckinQueueDepth tracks the current number of check-in events waiting in
// each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var CheckinQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "checkin_queue_depth",
		Help:      "Current number of check-in events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// CheckinProcessingDuration measures how long one check-in takes from
// dequeue to persistence.
// Label:
//   - status: the processing outcome ("recorded" or "error")
var CheckinProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "checkin_processing_duration_seconds",
		Help:      "Duration of check-in processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"status"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthFailuresTotal counts gate rejections.
// Labels:
//   - gate: "admin", "hybrid", or "bearer"
//   - reason: short failure class (e.g. "replay", "credentials", "token_expired")
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of authentication gate rejections, by gate and reason.",
	},
	[]string{"gate", "reason"},
)

// TokensIssuedTotal counts bearer tokens issued at login.
// Label:
//   - role: the role embedded in the token
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued, by role.",
	},
	[]string{"role"},
)
