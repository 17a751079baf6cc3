package hda

import "github.com/katalvlaran/hdastar/graph"

// Status is the explicit sum-type tag for a search outcome, replacing the
// reference implementation's exception-based reconstruction error
// channel (spec.md §9, Design Notes).
type Status int

const (
	// StatusOK indicates a path was found and Result.Path/Cost are valid.
	StatusOK Status = iota

	// StatusNoPath indicates the search terminated with bestPathWeight
	// still +Inf: dest is unreachable from source.
	StatusNoPath

	// StatusInconsistent indicates reconstruction hit InvalidNodeID
	// before reaching source despite a finite bound — an internal
	// invariant violation (spec.md §7). Never returned as a panic; always
	// surfaced through Result so the driver can report it as a no-path
	// outcome without crashing.
	StatusInconsistent
)

// String renders the status for logging and CSV/report output.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoPath:
		return "no-path"
	case StatusInconsistent:
		return "inconsistent"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single search. When Status != StatusOK, Path
// is nil and Cost is ignored by callers (the driver must not emit a path
// or cost in that case, per spec.md §4.7 Failure semantics).
type Result struct {
	Status       Status
	Path         []graph.NodeId
	Cost         float64
	NodesVisited int

	// SearchSeconds and ReconstructSeconds split Run's wall-clock time at
	// the point the last worker's expansion loop went quiescent. For the
	// shared-memory variant this boundary is exact, since reconstruction
	// runs single-threaded only after every worker has returned. For the
	// message-passing variant it is the latest per-worker searchLoop-done
	// timestamp, since reconstruction there runs baton-passed inside the
	// same goroutines still being joined (spec.md §4.6/§4.7).
	SearchSeconds      float64
	ReconstructSeconds float64
}
