package stats

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Collector accumulates the per-phase timings and final outcome of a
// single engine run, in the exact shape the CSV report (spec.md §6)
// needs. The zero value is not usable; construct with New.
type Collector struct {
	Algorithm string
	Threads   int
	Input     string
	Seed      uint64

	readSeconds        float64
	searchSeconds      float64
	reconstructSeconds float64

	Cost         float64
	Steps        int
	NodesVisited int
	Path         []uint32

	metrics *metricsHooks
	tracer  trace.Tracer

	phaseStart time.Time
	phaseSpan  trace.Span
}

// Option configures optional instrumentation on a Collector.
type Option func(*Collector)

// New constructs a Collector for one run identified by the algorithm
// label ("hdastar-mp" or "hdastar-sm"), worker/thread count, input
// filename, and derived seed.
func New(algorithm string, threads int, input string, seed uint64, opts ...Option) *Collector {
	c := &Collector{Algorithm: algorithm, Threads: threads, Input: input, Seed: seed}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Collector) begin(ctx context.Context, phase string) context.Context {
	c.phaseStart = time.Now()
	if c.tracer != nil {
		var span trace.Span
		ctx, span = c.tracer.Start(ctx, phase)
		c.phaseSpan = span
	}
	return ctx
}

func (c *Collector) end(phase string) float64 {
	elapsed := time.Since(c.phaseStart).Seconds()
	if c.phaseSpan != nil {
		c.phaseSpan.End()
		c.phaseSpan = nil
	}
	if c.metrics != nil {
		c.metrics.observePhase(phase, elapsed)
	}
	return elapsed
}

// BeginRead/EndRead bracket graph-file parsing; EndRead sets the CSV's
// "read seconds" column directly, since graph.ReadGraph is a single call
// the caller fully controls.
func (c *Collector) BeginRead(ctx context.Context) context.Context {
	return c.begin(ctx, "graph-read")
}
func (c *Collector) EndRead() { c.readSeconds = c.end("graph-read") }

// BeginSearch/EndSearch bracket the driver.Search call as a whole. For
// the message-passing variant, baton-passed reconstruction runs inside
// the same goroutines still being joined (spec.md §4.6/§4.7), so search
// and reconstruction are not separable at this call boundary. EndSearch
// only emits the trace span and the phase-duration metric; the CSV's
// "search seconds" and "reconstruction seconds" columns come from the
// engine's own instrumentation via RecordEngineTimings instead.
func (c *Collector) BeginSearch(ctx context.Context) context.Context {
	return c.begin(ctx, "search")
}
func (c *Collector) EndSearch() { c.end("search") }

// RecordEngineTimings stores the search/reconstruction split reported by
// hda.Result (hda.Result.SearchSeconds/ReconstructSeconds), which each
// engine variant measures internally around its own worker-pool join.
func (c *Collector) RecordEngineTimings(searchSeconds, reconstructSeconds float64) {
	c.searchSeconds = searchSeconds
	c.reconstructSeconds = reconstructSeconds
}

// ReadSeconds returns the graph-read duration most recently recorded by
// EndRead or SetReadSeconds.
func (c *Collector) ReadSeconds() float64 { return c.readSeconds }

// SetReadSeconds records a pre-measured graph-read duration. Useful when
// a single graph file is read once and its duration applies to several
// per-run Collectors (cmd/hdastar reads the input file once per process
// invocation, then reports one CSV row per seed/repetition).
func (c *Collector) SetReadSeconds(seconds float64) { c.readSeconds = seconds }

// Finish records the search outcome: total cost, path length in nodes
// (Steps), nodes visited, and the path itself.
func (c *Collector) Finish(cost float64, path []uint32, nodesVisited int) {
	c.Cost = cost
	c.Path = path
	c.Steps = len(path)
	c.NodesVisited = nodesVisited
	if c.metrics != nil {
		c.metrics.observeOutcome(cost, nodesVisited)
	}
}
