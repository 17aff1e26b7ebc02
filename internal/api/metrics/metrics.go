// Package metrics defines and registers all custom Prometheus metrics for the
// Afya Kuu platform API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "afyakuu"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - role: "doctor" or "admin"
//   - result: "success", "rejected", or "in_flight"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// SignupsTotal counts signup attempts.
// Labels:
//   - role: "doctor" or "admin"
//   - result: "success" or "duplicate"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// AuthRedirectsTotal counts middleware authorization redirects.
// Label:
//   - reason: the reason code attached to the redirect (e.g. "login_required")
var AuthRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_redirects_total",
		Help:      "Total number of authorization redirects issued by the middleware, by reason code.",
	},
	[]string{"reason"},
)

// ── Prediction metrics ────────────────────────────────────────────────────────

// PredictionsTotal counts risk assessments.
// Label:
//   - result: the returned risk level, or "error" on failure
var PredictionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "predictions_total",
		Help:      "Total number of risk predictions requested, by resulting risk level.",
	},
	[]string{"result"},
)

// PredictionDuration measures the end-to-end latency of an assessment,
// including the remote model call.
var PredictionDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "prediction_duration_seconds",
		Help:      "Duration of risk assessments from request to persisted record.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── SMS metrics ───────────────────────────────────────────────────────────────

// RemindersTotal counts reminder deliveries.
// Label:
//   - result: "sent", "duplicate", or "error"
var RemindersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminders_total",
		Help:      "Total number of SMS reminder deliveries, by result.",
	},
	[]string{"result"},
)
