// Package metrics defines the Prometheus collectors exported by the server.
//
// All methods are safe to call on a nil *Metrics, which records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "settleup"

// Metrics holds the server's collectors.
type Metrics struct {
	RPCRequests        *prometheus.CounterVec
	RPCDuration        *prometheus.HistogramVec
	RequestTransitions *prometheus.CounterVec
	SkippedRecords     *prometheus.CounterVec
	PlanSize           prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RPCRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPCs handled, by procedure and Connect code.",
		}, []string{"procedure", "code"}),
		RPCDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		RequestTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_request_transitions_total",
			Help:      "Settlement request transitions attempted, by transition and outcome.",
		}, []string{"transition", "outcome"}),
		SkippedRecords: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_records_total",
			Help:      "Invalid expenses and settlements skipped during balance aggregation.",
		}, []string{"kind"}),
		PlanSize: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settlement_plan_size",
			Help:      "Number of transactions in computed settlement plans.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
		}),
	}
}

// ObserveRPC records one handled RPC.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.RPCRequests.WithLabelValues(procedure, code).Inc()
	m.RPCDuration.WithLabelValues(procedure).Observe(d.Seconds())
}

// ObserveTransition records a settlement request transition attempt.
func (m *Metrics) ObserveTransition(transition, outcome string) {
	if m == nil {
		return
	}
	m.RequestTransitions.WithLabelValues(transition, outcome).Inc()
}

// ObserveSkipped records n skipped records of kind.
func (m *Metrics) ObserveSkipped(kind string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.SkippedRecords.WithLabelValues(kind).Add(float64(n))
}

// ObservePlan records the size of a computed plan.
func (m *Metrics) ObservePlan(n int) {
	if m == nil {
		return
	}
	m.PlanSize.Observe(float64(n))
}
