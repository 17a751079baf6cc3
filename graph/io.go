package graph

import (
	"bufio"
	"fmt"
	"io"
)

// ReadGraph parses the ASCII graph file format produced by the test
// harness's generator:
//
//	line 1:        N                  (vertex count)
//	lines 2..N+1:  x y                (one vertex position per line)
//	remaining:     u v w              (edge: two node ids, a float weight)
//
// Reading of edge lines stops at EOF; edges are treated as undirected
// regardless of how the generator emitted them (typically k directed
// "nearest neighbor" edges per vertex), so a vertex may end up with more
// than k incident edges once reverse edges are folded in by AddEdge.
func ReadGraph(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var n int
	if !sc.Scan() {
		return nil, fmt.Errorf("%w: missing vertex count", ErrMalformedInput)
	}
	if _, err := fmt.Sscanf(sc.Text(), "%d", &n); err != nil {
		return nil, fmt.Errorf("%w: bad vertex count %q: %v", ErrMalformedInput, sc.Text(), err)
	}
	if n <= 0 {
		return nil, ErrEmptyGraph
	}

	g := New(n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: expected %d vertex lines, got %d", ErrMalformedInput, n, i)
		}
		var x, y float64
		if _, err := fmt.Sscanf(sc.Text(), "%g %g", &x, &y); err != nil {
			return nil, fmt.Errorf("%w: bad vertex line %q: %v", ErrMalformedInput, sc.Text(), err)
		}
		g.SetPosition(NodeId(i), Position{X: x, Y: y})
	}

	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		var u, v uint32
		var w float64
		if _, err := fmt.Sscanf(line, "%d %d %g", &u, &v, &w); err != nil {
			return nil, fmt.Errorf("%w: bad edge line %q: %v", ErrMalformedInput, line, err)
		}
		if err := g.AddEdge(NodeId(u), NodeId(v), w); err != nil {
			return nil, fmt.Errorf("%w: edge %d-%d: %v", ErrMalformedInput, u, v, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return g, nil
}

// WriteGraph serializes g in the same ASCII format ReadGraph parses. Each
// undirected edge is emitted exactly once (from the lower-indexed
// endpoint's adjacency list), so round-tripping through WriteGraph then
// ReadGraph halves the "apparent" edge count relative to a graph built by
// folding in both directions of a k-nearest generator's output twice.
func WriteGraph(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, g.NumVertices()); err != nil {
		return err
	}
	for v := 0; v < g.NumVertices(); v++ {
		p := g.Position(NodeId(v))
		if _, err := fmt.Fprintf(bw, "%g %g\n", p.X, p.Y); err != nil {
			return err
		}
	}
	for v := 0; v < g.NumVertices(); v++ {
		for _, e := range g.Neighbors(NodeId(v)) {
			if uint32(e.To) < uint32(v) {
				continue // already emitted from the other endpoint
			}
			if _, err := fmt.Fprintf(bw, "%d %d %g\n", v, e.To, e.Weight); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
