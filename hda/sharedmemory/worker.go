package sharedmemory

import (
	"github.com/katalvlaran/hdastar/graph"
	"github.com/katalvlaran/hdastar/hda"
)

type sharedState struct {
	g         *graph.Graph
	dest      hda.NodeId
	heuristic hda.HeuristicFunc
	workers   int

	tables    *tables
	frontiers []*ownedFrontier
	bound     *hda.Bound

	barrier  *hda.Barrier
	finished []bool
	visited  []int
}

type worker struct {
	id     int
	shared *sharedState
}

// run pops from this partition's own frontier, re-reading the shared
// bound on every iteration since (unlike MP) there is no per-worker
// broadcast to keep a local cache in sync — the bound's own mutex is the
// only synchronization point (spec.md §5, bestPathMutex).
func (w *worker) run() {
	s := w.shared
	id := w.id
	visited := 0

	for {
		if s.frontiers[id].Empty() {
			s.barrier.Wait()
			s.finished[id] = s.frontiers[id].Empty()
			s.barrier.Wait()
			if allFinished(s.finished) {
				s.visited[id] = visited
				return
			}
			continue
		}

		entry, ok := s.frontiers[id].Pop()
		if !ok {
			continue
		}
		bound := s.bound.Value()
		if entry.FCost >= bound {
			continue
		}

		visited++

		if entry.Node == s.dest {
			s.bound.Tighten(entry.FCost)
			continue
		}

		gHere := s.tables.costOf(entry.Node)
		for _, e := range s.g.Neighbors(entry.Node) {
			gCost := gHere + e.Weight
			fCost := gCost + s.heuristic(s.g, e.To, s.dest)
			if fCost >= s.bound.Value() {
				continue
			}
			if s.tables.tryImprove(e.To, entry.Node, gCost) {
				owner := hda.Owner(e.To, s.workers)
				s.frontiers[owner].Push(hda.FrontierEntry{Node: e.To, FCost: fCost})
			}
		}
	}
}

func allFinished(finished []bool) bool {
	for _, f := range finished {
		if !f {
			return false
		}
	}
	return true
}
