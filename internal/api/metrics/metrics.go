// Package metrics defines all custom Prometheus metrics for the prediction
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "prediction_api"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "duplicate", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (invalid credentials of any kind)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts signed tokens minted by the token service.
// Label:
//   - kind: "access" or "refresh"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of signed tokens issued, by kind.",
	},
	[]string{"kind"},
)

// ── Reset-token lifecycle metrics ─────────────────────────────────────────────

// ResetTokensIssuedTotal counts reset tokens created by forgot-password.
var ResetTokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reset_tokens_issued_total",
		Help:      "Total number of password-reset tokens issued.",
	},
)

// ResetRedemptionsTotal counts reset-password attempts.
// Label:
//   - result: "redeemed" or "rejected" (unknown, expired, or replayed token)
var ResetRedemptionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reset_redemptions_total",
		Help:      "Total number of reset-token redemption attempts, by result.",
	},
	[]string{"result"},
)

// ── Prediction metrics ────────────────────────────────────────────────────────

// PredictionsTotal counts predictions served.
// Label:
//   - model: the model identifier used for scoring
var PredictionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "predictions_total",
		Help:      "Total number of predictions served, by model.",
	},
	[]string{"model"},
)
