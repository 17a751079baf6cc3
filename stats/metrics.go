package stats

import "github.com/prometheus/client_golang/prometheus"

// metricsHooks wraps the Prometheus collectors a Collector reports into
// when constructed WithMetrics.
type metricsHooks struct {
	phaseSeconds *prometheus.HistogramVec
	pathCost     prometheus.Gauge
	nodesVisited prometheus.Counter
}

// WithMetrics registers (if not already registered) and enables
// Prometheus instrumentation: a phase-duration histogram labeled by
// phase name, a gauge for the most recent winning path cost, and a
// counter for total nodes visited across all runs in this process.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Collector) {
		hooks := &metricsHooks{
			phaseSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: "hdastar",
				Name:      "phase_seconds",
				Help:      "Duration of each engine run phase in seconds.",
			}, []string{"phase"}),
			pathCost: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: "hdastar",
				Name:      "path_cost",
				Help:      "Cost of the most recently found path.",
			}),
			nodesVisited: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "hdastar",
				Name:      "nodes_visited_total",
				Help:      "Total number of frontier pops across all runs.",
			}),
		}
		// Registration errors (AlreadyRegisteredError from a second
		// Collector in the same process) are expected and harmless: the
		// existing collectors keep serving both instances.
		_ = reg.Register(hooks.phaseSeconds)
		_ = reg.Register(hooks.pathCost)
		_ = reg.Register(hooks.nodesVisited)
		c.metrics = hooks
	}
}

func (h *metricsHooks) observePhase(phase string, seconds float64) {
	h.phaseSeconds.WithLabelValues(phase).Observe(seconds)
}

func (h *metricsHooks) observeOutcome(cost float64, nodesVisited int) {
	h.pathCost.Set(cost)
	h.nodesVisited.Add(float64(nodesVisited))
}
