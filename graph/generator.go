package graph

import (
	"errors"
	"math/rand"
	"sort"
)

// ErrTooManyVertices indicates the requested vertex count exceeds the
// number of distinct integer grid points available (s*s).
var ErrTooManyVertices = errors.New("graph: n exceeds grid capacity s*s")

// ErrTooManyNeighbors indicates k >= n, which would ask every vertex to
// connect to itself or to more neighbors than exist.
var ErrTooManyNeighbors = errors.New("graph: k must be less than n")

// GenerateKNearest builds a random k-nearest-neighbor graph, grounded on
// the reference generator dropped by the distillation (graph_generation):
// it scatters n distinct vertices over an s*s integer grid, then connects
// each vertex to its k nearest neighbors by Euclidean distance. The
// reference generator emits k *directed* edges per vertex; here, as in the
// rest of the engine, every edge is folded into the undirected adjacency
// model, so a vertex may end up with more than k incident edges once its
// neighbors' own k-nearest edges point back at it.
//
// GenerateKNearest does not guarantee the resulting graph is connected,
// matching the reference generator's documented limitation.
func GenerateKNearest(s, n, k int, rng *rand.Rand) (*Graph, error) {
	if n > s*s {
		return nil, ErrTooManyVertices
	}
	if k >= n {
		return nil, ErrTooManyNeighbors
	}

	type point struct{ x, y int }
	seen := make(map[point]bool, n)
	points := make([]point, 0, n)
	for len(points) < n {
		p := point{x: rng.Intn(s), y: rng.Intn(s)}
		if seen[p] {
			continue
		}
		seen[p] = true
		points = append(points, p)
	}

	g := New(n)
	for i, p := range points {
		g.SetPosition(NodeId(i), Position{X: float64(p.x), Y: float64(p.y)})
	}

	type candidate struct {
		to NodeId
		w  float64
	}
	for i := 0; i < n; i++ {
		cands := make([]candidate, 0, n-1)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			cands = append(cands, candidate{to: NodeId(j), w: Euclidean(g, NodeId(i), NodeId(j))})
		}
		sort.Slice(cands, func(a, b int) bool { return cands[a].w < cands[b].w })
		for _, c := range cands[:k] {
			if err := g.AddEdge(NodeId(i), c.to, c.w); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
