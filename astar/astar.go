package astar

import (
	"container/heap"
	"fmt"
	"math"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/katalvlaran/hdastar/graph"
)

// Result is the outcome of a single Sequential run.
type Result struct {
	Cost         float64
	Path         []graph.NodeId
	NodesVisited int
}

// Sequential computes the optimal-cost path from source to dest in g using
// classic single-threaded A*, with graph.Euclidean as the heuristic. It
// returns ErrNoPath if dest is unreachable.
func Sequential(g *graph.Graph, source, dest graph.NodeId) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	n := g.NumVertices()
	if int(source) >= n || int(dest) >= n {
		return Result{}, ErrVertexOutOfRange
	}

	costToCome := make([]float64, n)
	cameFrom := make([]graph.NodeId, n)
	for i := range costToCome {
		costToCome[i] = math.Inf(1)
		cameFrom[i] = graph.InvalidNodeID
	}
	costToCome[source] = 0

	closed := mapset.NewThreadUnsafeSet[graph.NodeId]()
	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, fCost: graph.Euclidean(g, source, dest)})

	visited := 0
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id

		if closed.Contains(u) {
			continue // stale lazy-decrease-key entry
		}
		closed.Add(u)
		visited++

		if u == dest {
			return Result{
				Cost:         costToCome[u],
				Path:         reconstruct(cameFrom, source, dest),
				NodesVisited: visited,
			}, nil
		}

		for _, e := range g.Neighbors(u) {
			if closed.Contains(e.To) {
				continue
			}
			gCost := costToCome[u] + e.Weight
			if gCost >= costToCome[e.To] {
				continue
			}
			costToCome[e.To] = gCost
			cameFrom[e.To] = u
			fCost := gCost + graph.Euclidean(g, e.To, dest)
			heap.Push(&pq, &nodeItem{id: e.To, fCost: fCost})
		}
	}

	return Result{}, fmt.Errorf("%w: source=%d dest=%d", ErrNoPath, source, dest)
}

func reconstruct(cameFrom []graph.NodeId, source, dest graph.NodeId) []graph.NodeId {
	path := []graph.NodeId{dest}
	cur := dest
	for cur != source {
		cur = cameFrom[cur]
		path = append([]graph.NodeId{cur}, path...)
	}
	return path
}

// nodeItem represents a vertex and its current fCost, ordered ascending.
type nodeItem struct {
	id    graph.NodeId
	fCost float64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].fCost < pq[j].fCost }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
