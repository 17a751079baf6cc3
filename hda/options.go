package hda

import "github.com/katalvlaran/hdastar/graph"

// Variant selects which of the two HDA* engine implementations a search
// runs under; both satisfy the same external contract (spec.md §1).
type Variant int

const (
	// VariantMessagePassing routes work between workers as explicit
	// messages over per-worker inboxes; workers own disjoint state.
	VariantMessagePassing Variant = iota

	// VariantSharedMemory routes work by writing directly into shared,
	// lock-sharded costToCome/cameFrom tables.
	VariantSharedMemory
)

// HeuristicFunc computes an admissible, consistent estimate of the
// remaining cost from a to the search goal. graph.Euclidean is the
// default and, for a plane-embedded graph with non-negative weights, the
// only heuristic that preserves A*'s optimality guarantee — a caller
// substituting another function is responsible for its admissibility.
type HeuristicFunc func(g *graph.Graph, a, b graph.NodeId) float64

// Options configures a single hda search. The zero value is not usable;
// build one with DefaultOptions and the With* functional options below.
type Options struct {
	// Workers is W, the number of partitions/worker goroutines. Default 16.
	Workers int

	// Variant selects the message-passing or shared-memory implementation.
	Variant Variant

	// RequirePathExists gates the MP termination detector on
	// bestPathWeight being finite before honoring a unanimous quiescence
	// snapshot (spec.md §4.6, "MP-with-path-existence variant"). Only
	// meaningful for VariantMessagePassing; VariantSharedMemory ignores it
	// because its workers read the single mutex-guarded shared bound
	// directly, with no broadcast that could lag behind.
	RequirePathExists bool

	// Heuristic computes h(u, goal). Defaults to graph.Euclidean.
	Heuristic HeuristicFunc
}

// Option is a functional option mutating Options before a search starts.
type Option func(*Options)

// DefaultOptions returns the engine's defaults: 16 workers, the
// message-passing variant, RequirePathExists disabled, and the Euclidean
// heuristic.
func DefaultOptions() Options {
	return Options{
		Workers:           16,
		Variant:           VariantMessagePassing,
		RequirePathExists: false,
		Heuristic:         graph.Euclidean,
	}
}

// WithWorkers sets the worker/partition count W. Panics if w <= 0: a
// non-positive worker count is a programmer error, not a runtime
// condition callers should need to branch on (mirrors dijkstra's
// WithMaxDistance/WithInfEdgeThreshold fail-fast convention).
func WithWorkers(w int) Option {
	if w <= 0 {
		panic(ErrInvalidWorkerCount.Error())
	}
	return func(o *Options) { o.Workers = w }
}

// WithVariant selects the engine implementation.
func WithVariant(v Variant) Option {
	return func(o *Options) { o.Variant = v }
}

// WithRequirePathExists enables the path-existence gate on the MP
// termination detector (spec.md §9, Open Questions #1).
func WithRequirePathExists() Option {
	return func(o *Options) { o.RequirePathExists = true }
}

// WithHeuristic overrides the heuristic function. Panics on nil.
func WithHeuristic(h HeuristicFunc) Option {
	if h == nil {
		panic("hda: WithHeuristic(nil)")
	}
	return func(o *Options) { o.Heuristic = h }
}

// Resolve applies opts on top of DefaultOptions and returns the final
// configuration.
func Resolve(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
