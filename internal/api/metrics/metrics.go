// Package metrics defines and registers all custom Prometheus metrics for the
// JPK web backend. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto and exposed on /metrics. Per-request HTTP
// series (jpk_http_*) come from the echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jpk"

// ── Navigation metrics ───────────────────────────────────────────────────────

// NavigationsTotal counts navigate(target) requests.
// Labels:
//   - strategy: "router" or "anchor"
//   - decision: "render" or "redirect_to_login"
var NavigationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "navigations_total",
		Help:      "Total number of navigation requests, by strategy and gate decision.",
	},
	[]string{"strategy", "decision"},
)

// GateDecisionsTotal counts auth gate evaluations made through the resolve endpoint.
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of auth gate decisions, by outcome.",
	},
	[]string{"decision"},
)

// ── Login metrics ────────────────────────────────────────────────────────────

// LoginTransitionsTotal counts login flow steps.
// Labels:
//   - action: e.g. "submit_credentials", "verify_otp", "back"
//   - result: "ok" or "rejected"
var LoginTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_transitions_total",
		Help:      "Total number of login flow steps, by action and result.",
	},
	[]string{"action", "result"},
)

// LoginsTotal counts sessions that completed the OTP step.
var LoginsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins.",
	},
)

// ── Notice metrics ───────────────────────────────────────────────────────────

// NoticesTotal counts simulated notices handed to the sender.
// Labels:
//   - kind: "otp_sent" or "reset_link_sent"
//   - result: "sent" or "error"
var NoticesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notices_total",
		Help:      "Total number of simulated notices delivered, by kind and result.",
	},
	[]string{"kind", "result"},
)

// NoticeQueueDepth tracks the number of notices waiting in each worker channel.
var NoticeQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notice_queue_depth",
		Help:      "Current number of notices pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// NoticesDroppedTotal counts notices discarded because the dispatcher was
// stopped or its worker channel was full.
var NoticesDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notices_dropped_total",
		Help:      "Total number of notices dropped by the dispatcher.",
	},
)

// ── Donation metrics ─────────────────────────────────────────────────────────

// DonationsTotal counts recorded donation pledges.
var DonationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "donations_total",
		Help:      "Total number of donation pledges recorded.",
	},
)

// DonationAmountTotal sums the pledged amounts in rupees.
var DonationAmountTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "donation_amount_rupees_total",
		Help:      "Sum of pledged donation amounts in rupees.",
	},
)

// ── Session metrics ──────────────────────────────────────────────────────────

// SessionsPurgedTotal counts expired sessions removed by the sweeper.
var SessionsPurgedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_purged_total",
		Help:      "Total number of expired sessions removed by the sweeper.",
	},
)
