package messagepassing

import (
	"math"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/katalvlaran/hdastar/graph"
	"github.com/katalvlaran/hdastar/hda"
)

// Run executes a single HDA* search over g from source to dest using the
// message-passing variant, blocking until every worker has returned.
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

	inboxes := make([]*Inbox, workers)
	reconSem := make([]chan struct{}, workers)
	for i := range inboxes {
		inboxes[i] = NewInbox()
		reconSem[i] = make(chan struct{}, workers)
	}

	shared := &sharedState{
		g:                 g,
		dest:              dest,
		heuristic:         opts.Heuristic,
		workers:           workers,
		inboxes:           inboxes,
		bound:             hda.NewBound(),
		barrier:           hda.NewBarrier(workers),
		finished:          make([]bool, workers),
		reconSem:          reconSem,
		status:            hda.StatusNoPath,
		visited:           make([]int, workers),
		requirePathExists: opts.RequirePathExists,
		searchDone:        make([]time.Time, workers),
	}

	workerList := make([]*worker, workers)
	for i := range workerList {
		workerList[i] = newWorker(i, source, shared)
	}

	// Seed the owner of source directly: the driver plants the initial
	// frontier entry rather than routing a synthetic Work message, since
	// no goroutine is listening on any inbox yet (spec.md §4.4, Initial
	// state).
	seedOwner := workerList[hda.Owner(source, workers)]
	seedOwner.costToCome[source] = 0
	seedOwner.cameFrom[source] = source
	seedOwner.frontier.Push(hda.FrontierEntry{Node: source, FCost: opts.Heuristic(g, source, dest)})

	searchStart := time.Now()
	pool := workerpool.New(workers)
	for _, w := range workerList {
		w := w
		pool.Submit(w.run)
	}
	pool.StopWait()
	reconstructEnd := time.Now()

	searchEnd := searchStart
	for _, t := range shared.searchDone {
		if t.After(searchEnd) {
			searchEnd = t
		}
	}
	searchSeconds := searchEnd.Sub(searchStart).Seconds()
	reconstructSeconds := reconstructEnd.Sub(searchEnd).Seconds()

	if shared.bound.Value() == math.Inf(1) {
		return hda.Result{Status: hda.StatusNoPath, SearchSeconds: searchSeconds, ReconstructSeconds: reconstructSeconds}, nil
	}
	if shared.status == hda.StatusInconsistent {
		return hda.Result{Status: hda.StatusInconsistent, SearchSeconds: searchSeconds, ReconstructSeconds: reconstructSeconds}, nil
	}

	total := 0
	for _, v := range shared.visited {
		total += v
	}
	return hda.Result{
		Status:             hda.StatusOK,
		Path:               shared.path,
		Cost:               shared.bound.Value(),
		NodesVisited:       total,
		SearchSeconds:      searchSeconds,
		ReconstructSeconds: reconstructSeconds,
	}, nil
}
