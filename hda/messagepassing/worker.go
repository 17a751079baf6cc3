package messagepassing

import (
	"math"
	"time"

	"github.com/katalvlaran/hdastar/graph"
	"github.com/katalvlaran/hdastar/hda"
)

// sharedState is the handful of fields every worker needs a view of: the
// inbox slice, the global bound (for surfacing the final cost after every
// worker exits), the reconstruction semaphores, and the single mutable
// path buffer the baton-holder appends to.
type sharedState struct {
	g         *graph.Graph
	dest      hda.NodeId
	heuristic hda.HeuristicFunc
	workers   int

	inboxes []*Inbox
	bound   *hda.Bound

	barrier  *hda.Barrier
	finished []bool

	reconSem []chan struct{}
	path     []hda.NodeId
	status   hda.Status

	visited           []int
	requirePathExists bool

	// searchDone[i] is the moment worker i's searchLoop returned, written
	// once by that worker and read by Run only after pool.StopWait has
	// returned every worker; the pool join is the happens-before edge.
	searchDone []time.Time
}

// worker holds one partition's private search state: its own
// costToCome/cameFrom tables (sized over the whole vertex set, but only
// entries this worker owns are ever written during the expansion phase)
// and its own frontier.
type worker struct {
	id     int
	source hda.NodeId

	shared *sharedState

	frontier      *hda.Frontier
	costToCome    []float64
	cameFrom      []hda.NodeId
	bestPathLocal float64

	// nodesVisitedSoFar counts frontier pops that passed the staleness
	// filter. Only this goroutine ever touches it; it is published to
	// shared.visited[w.id] once, right before the worker exits the
	// search loop, and read by Run only after pool.StopWait has joined
	// every worker.
	nodesVisitedSoFar int
}

func newWorker(id int, source hda.NodeId, shared *sharedState) *worker {
	n := shared.g.NumVertices()
	costToCome := make([]float64, n)
	cameFrom := make([]hda.NodeId, n)
	for i := range costToCome {
		costToCome[i] = math.Inf(1)
		cameFrom[i] = hda.InvalidNodeID
	}
	return &worker{
		id:            id,
		source:        source,
		shared:        shared,
		frontier:      hda.NewFrontier(),
		costToCome:    costToCome,
		cameFrom:      cameFrom,
		bestPathLocal: math.Inf(1),
	}
}

// run executes the expansion loop until quiescence, then the
// reconstruction protocol. It is the body of the goroutine submitted to
// the worker pool for this partition.
func (w *worker) run() {
	w.searchLoop()
	w.shared.searchDone[w.id] = time.Now()
	w.reconstruct()
}

func (w *worker) searchLoop() {
	for {
		w.drainInbox()

		if w.frontier.Empty() {
			w.shared.barrier.Wait() // B1: everyone observes an instantaneous empty frontier
			w.drainInbox()          // absorb anything delivered between the check and B1
			w.shared.finished[w.id] = w.frontier.Empty() && w.shared.inboxes[w.id].Empty()
			w.shared.barrier.Wait() // B2: snapshot is now stable and visible to all

			if allFinished(w.shared.finished) {
				if w.shared.requirePathExists && math.IsInf(w.shared.bound.Value(), 1) {
					// Caller asserted a path exists; a unanimous empty
					// snapshot with no bound yet is treated as transient
					// rather than conclusive (spec.md §9, Open Questions #1).
					continue
				}
				w.shared.visited[w.id] = w.nodesVisitedSoFar
				return
			}
			continue
		}

		entry, ok := w.frontier.Pop()
		if !ok {
			continue
		}
		if entry.FCost >= w.bestPathLocal {
			continue // stale: a better path was announced after this entry was pushed
		}

		w.nodesVisitedSoFar++

		if entry.Node == w.shared.dest {
			w.bestPathLocal = entry.FCost
			w.shared.bound.Tighten(entry.FCost)
			w.broadcastTargetReached(entry.FCost)
			continue
		}

		for _, e := range w.shared.g.Neighbors(entry.Node) {
			gCost := w.costToCome[entry.Node] + e.Weight
			fCost := gCost + w.shared.heuristic(w.shared.g, e.To, w.shared.dest)
			if fCost >= w.bestPathLocal {
				continue
			}

			owner := hda.Owner(e.To, w.shared.workers)
			if owner == w.id {
				if gCost < w.costToCome[e.To] {
					w.costToCome[e.To] = gCost
					w.cameFrom[e.To] = entry.Node
					w.frontier.Push(hda.FrontierEntry{Node: e.To, FCost: fCost})
				}
				continue
			}
			w.shared.inboxes[owner].Push(Message{
				Type:   Work,
				Target: e.To,
				Parent: entry.Node,
				FCost:  fCost,
				GCost:  gCost,
			})
		}
	}
}

func (w *worker) drainInbox() {
	for {
		m, ok := w.shared.inboxes[w.id].Pop()
		if !ok {
			return
		}
		switch m.Type {
		case Work:
			if m.FCost < w.bestPathLocal && m.GCost < w.costToCome[m.Target] {
				w.costToCome[m.Target] = m.GCost
				w.cameFrom[m.Target] = m.Parent
				w.frontier.Push(hda.FrontierEntry{Node: m.Target, FCost: m.FCost})
			}
		case TargetReached:
			if m.FCost < w.bestPathLocal {
				w.bestPathLocal = m.FCost
				w.shared.bound.Tighten(m.FCost)
			}
		default:
			// PathReconstruction/PathEnd never arrive during the search
			// phase under this protocol; ignore defensively rather than
			// panic on a message that arrived early.
		}
	}
}

func (w *worker) broadcastTargetReached(fCost float64) {
	for i, ib := range w.shared.inboxes {
		if i == w.id {
			continue
		}
		ib.Push(Message{Type: TargetReached, FCost: fCost})
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
