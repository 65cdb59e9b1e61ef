// Package metrics registers the service's Prometheus instruments and exposes
// the scrape handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	loginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecclesia_logins_total",
			Help: "Login attempts by result.",
		},
		[]string{"result"},
	)

	authzDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecclesia_authz_decisions_total",
			Help: "Permission evaluator decisions.",
		},
		[]string{"decision"},
	)

	auditWriteFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ecclesia_audit_write_failures_total",
			Help: "Audit records dropped because the store rejected them.",
		},
	)
)

// Init registers the instruments in the default registry.
func Init() {
	prometheus.MustRegister(loginsTotal, authzDecisionsTotal, auditWriteFailuresTotal)
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveLogin records one login attempt. Result is "ok" or "denied".
func ObserveLogin(result string) {
	loginsTotal.WithLabelValues(result).Inc()
}

// ObserveAuthzDecision records one evaluator decision: "allow", "forbidden",
// "unauthenticated" or "not_found".
func ObserveAuthzDecision(decision string) {
	authzDecisionsTotal.WithLabelValues(decision).Inc()
}

// ObserveAuditWriteFailure records one swallowed audit write error.
func ObserveAuditWriteFailure() {
	auditWriteFailuresTotal.Inc()
}
