package sharedmemory

import (
	"math"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/katalvlaran/hdastar/graph"
	"github.com/katalvlaran/hdastar/hda"
)

// Run executes a single HDA* search over g from source to dest using the
// shared-memory variant, blocking until every worker has returned.
func Run(g *graph.Graph, source, dest hda.NodeId, opts hda.Options) (hda.Result, error) {
	if g == nil {
		return hda.Result{}, hda.ErrNilGraph
	}
	n := g.NumVertices()
	if int(source) >= n || int(dest) >= n {
		return hda.Result{}, hda.ErrVertexOutOfRange
	}
	if opts.Workers <= 0 {
		return hda.Result{}, hda.ErrInvalidWorkerCount
	}
	workers := opts.Workers

	t := newTables(n, workers)
	frontiers := make([]*ownedFrontier, workers)
	for i := range frontiers {
		frontiers[i] = newOwnedFrontier()
	}

	shared := &sharedState{
		g:         g,
		dest:      dest,
		heuristic: opts.Heuristic,
		workers:   workers,
		tables:    t,
		frontiers: frontiers,
		bound:     hda.NewBound(),
		barrier:   hda.NewBarrier(workers),
		finished:  make([]bool, workers),
		visited:   make([]int, workers),
	}

	t.tryImprove(source, source, 0)
	frontiers[hda.Owner(source, workers)].Push(hda.FrontierEntry{
		Node:  source,
		FCost: opts.Heuristic(g, source, dest),
	})

	workerList := make([]*worker, workers)
	for i := range workerList {
		workerList[i] = &worker{id: i, shared: shared}
	}

	searchStart := time.Now()
	pool := workerpool.New(workers)
	for _, w := range workerList {
		w := w
		pool.Submit(w.run)
	}
	pool.StopWait()
	searchEnd := time.Now()
	searchSeconds := searchEnd.Sub(searchStart).Seconds()

	if shared.bound.Value() == math.Inf(1) {
		reconstructSeconds := time.Since(searchEnd).Seconds()
		return hda.Result{Status: hda.StatusNoPath, SearchSeconds: searchSeconds, ReconstructSeconds: reconstructSeconds}, nil
	}

	path, ok := reconstructPath(t, source, dest)
	reconstructSeconds := time.Since(searchEnd).Seconds()
	if !ok {
		return hda.Result{Status: hda.StatusInconsistent, SearchSeconds: searchSeconds, ReconstructSeconds: reconstructSeconds}, nil
	}

	total := 0
	for _, v := range shared.visited {
		total += v
	}
	return hda.Result{
		Status:             hda.StatusOK,
		Path:               path,
		Cost:               shared.bound.Value(),
		NodesVisited:       total,
		SearchSeconds:      searchSeconds,
		ReconstructSeconds: reconstructSeconds,
	}, nil
}

// reconstructPath walks cameFrom from dest back to source. Safe to call
// without locks: by the time Run reaches this point every worker has
// already returned, so the tables are no longer mutated.
func reconstructPath(t *tables, source, dest hda.NodeId) ([]hda.NodeId, bool) {
	path := []hda.NodeId{dest}
	cur := dest
	for cur != source {
		parent := t.parentOf(cur)
		if parent == hda.InvalidNodeID {
			return nil, false
		}
		path = append([]hda.NodeId{parent}, path...)
		cur = parent
	}
	return path, true
}
