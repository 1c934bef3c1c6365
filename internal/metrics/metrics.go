// Package metrics exposes Prometheus counters for the resolution pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Adapter attempt outcomes.
const (
	OutcomeHit      = "hit"
	OutcomeMiss     = "miss"
	OutcomeError    = "error"
	OutcomeRejected = "rejected"
)

// Recorder counts resolution activity. A nil *Recorder is valid and records
// nothing, so callers never need to guard.
type Recorder struct {
	adapterAttempts *prometheus.CounterVec
	fallbacks       prometheus.Counter
	httpRequests    *prometheus.CounterVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		adapterAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scorecard_bridge",
			Name:      "adapter_attempts_total",
			Help:      "Source adapter fetch attempts by adapter and outcome.",
		}, []string{"adapter", "outcome"}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "scorecard_bridge",
			Name:      "fallbacks_total",
			Help:      "Requests answered by the mock fallback.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scorecard_bridge",
			Name:      "http_requests_total",
			Help:      "HTTP requests served by route and status code.",
		}, []string{"route", "code"}),
	}
	reg.MustRegister(r.adapterAttempts, r.fallbacks, r.httpRequests)
	return r
}

func (r *Recorder) AdapterAttempt(adapter, outcome string) {
	if r == nil {
		return
	}
	r.adapterAttempts.WithLabelValues(adapter, outcome).Inc()
}

func (r *Recorder) Fallback() {
	if r == nil {
		return
	}
	r.fallbacks.Inc()
}

func (r *Recorder) HTTPRequest(route, code string) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(route, code).Inc()
}
