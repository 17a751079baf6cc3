// Package graph defines the read-only data model G = (V, E, w, pos) consumed
// by the hda search engine: node identities, 2-D positions, weighted
// undirected edges, the Euclidean admissible heuristic, ASCII graph-file
// I/O, and the k-nearest random graph generator used by tests and
// benchmarks.
//
// Nothing in this package is safe to mutate concurrently once a Graph has
// been handed to the engine: Graph is built once (via New + AddEdge +
// SetPosition, or via ReadGraph/GenerateKNearest) and is treated as
// read-only for the remainder of a search.
package graph

import "errors"

// Sentinel errors for graph construction and I/O.
var (
	// ErrVertexOutOfRange indicates a NodeId ≥ the graph's vertex count.
	ErrVertexOutOfRange = errors.New("graph: vertex id out of range")

	// ErrNegativeWeight indicates an edge weight < 0; the engine requires
	// non-negative weights for the heuristic to remain admissible.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrMalformedInput indicates the ASCII graph file could not be parsed.
	ErrMalformedInput = errors.New("graph: malformed input")

	// ErrEmptyGraph indicates a graph with zero vertices was requested.
	ErrEmptyGraph = errors.New("graph: vertex count must be positive")
)
