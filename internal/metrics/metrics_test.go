package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m := New(reg)

	m.ObserveRPC("/settleup.v1.LedgerService/GetBalances", "ok", 20*time.Millisecond)
	m.ObserveRPC("/settleup.v1.LedgerService/GetBalances", "ok", 5*time.Millisecond)
	m.ObserveRPC("/settleup.v1.LedgerService/GetBalances", "not_found", time.Millisecond)
	m.ObserveTransition("confirm", "ok")
	m.ObserveTransition("confirm", "invalid_transition")
	m.ObserveSkipped("expense", 2)
	m.ObserveSkipped("settlement", 0)
	m.ObservePlan(3)

	assert.InDelta(t, 2, testutil.ToFloat64(m.RPCRequests.WithLabelValues("/settleup.v1.LedgerService/GetBalances", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestTransitions.WithLabelValues("confirm", "invalid_transition")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.SkippedRecords.WithLabelValues("expense")), 0)

	// A zero count never creates the series.
	assert.Equal(t, 1, testutil.CollectAndCount(m.SkippedRecords))

	expected := `
# HELP settleup_settlement_request_transitions_total Settlement request transitions attempted, by transition and outcome.
# TYPE settleup_settlement_request_transitions_total counter
settleup_settlement_request_transitions_total{outcome="invalid_transition",transition="confirm"} 1
settleup_settlement_request_transitions_total{outcome="ok",transition="confirm"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "settleup_settlement_request_transitions_total"))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveRPC("p", "ok", time.Second)
	m.ObserveTransition("create", "ok")
	m.ObserveSkipped("expense", 1)
	m.ObservePlan(1)
}
