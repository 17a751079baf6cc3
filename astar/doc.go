// Package astar implements a trivial sequential A* search over a
// graph.Graph. It exists only as a test oracle: the parallel hda engine's
// reported cost is checked against Sequential's cost on the same
// (graph, source, dest) input. It is never imported by the hda package or
// its variants.
//
// Complexity:
//
//   - Time:  O((V + E) log V), one heap extraction per vertex and one
//     lazy-decrease-key push per edge relaxation.
//   - Space: O(V + E).
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the
//     heap and ignoring stale entries once a vertex is visited.
//   - We stop as soon as the goal is popped off the heap, since its fCost
//     is then final (admissible, consistent heuristic).
package astar

import "errors"

// Sentinel errors returned by Sequential.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to Sequential.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrVertexOutOfRange indicates source or dest is not a valid vertex id.
	ErrVertexOutOfRange = errors.New("astar: vertex id out of range")

	// ErrNoPath indicates dest is unreachable from source.
	ErrNoPath = errors.New("astar: no path found")
)
