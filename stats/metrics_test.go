package stats

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestWithMetricsObservesPhasesAndOutcome(t *testing.T) {
	registry := prometheus.NewRegistry()
	c := New("hdastar-mp", 4, "graph.txt", 7, WithMetrics(registry))

	c.BeginRead(context.Background())
	c.EndRead()
	c.BeginSearch(context.Background())
	c.EndSearch()
	c.RecordEngineTimings(0.1, 0.01)
	c.Finish(2.0, []uint32{0, 1}, 5)

	families, err := registry.Gather()
	require.NoError(t, err)

	var sawPhaseHistogram, sawCostGauge, sawVisitedCounter bool
	for _, f := range families {
		switch f.GetName() {
		case "hdastar_phase_seconds":
			sawPhaseHistogram = true
			var total uint64
			for _, m := range f.GetMetric() {
				total += m.GetHistogram().GetSampleCount()
			}
			require.Equal(t, uint64(2), total) // graph-read + search
		case "hdastar_path_cost":
			sawCostGauge = true
			require.Equal(t, 2.0, f.GetMetric()[0].GetGauge().GetValue())
		case "hdastar_nodes_visited_total":
			sawVisitedCounter = true
			require.Equal(t, float64(5), f.GetMetric()[0].GetCounter().GetValue())
		}
	}
	require.True(t, sawPhaseHistogram)
	require.True(t, sawCostGauge)
	require.True(t, sawVisitedCounter)
}

func TestWithMetricsToleratesDuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := New("hdastar-mp", 2, "graph.txt", 1, WithMetrics(registry))
	second := New("hdastar-sm", 2, "graph.txt", 2, WithMetrics(registry))

	first.Finish(1.0, []uint32{0}, 1)
	second.Finish(2.0, []uint32{0, 1}, 2)

	families, err := registry.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}
