package hda

import (
	"container/heap"
	"math"
	"sync"

	"github.com/katalvlaran/hdastar/graph"
)

// NodeId is re-exported from graph so callers of hda and its variants
// never need to import graph directly just to name a vertex.
type NodeId = graph.NodeId

// InvalidNodeID is the sentinel "no predecessor" value.
const InvalidNodeID = graph.InvalidNodeID

// Owner is the partitioner: it maps every NodeId to exactly one of workers
// workers, by simple modulus. The modulus is fixed for the lifetime of a
// run and gives O(1) routing with uniform load for random node ids.
func Owner(v NodeId, workers int) int {
	return int(v) % workers
}

// FrontierEntry is a single (node, fCost) pair held in a Frontier.
// Ordering key is FCost ascending (min-first).
type FrontierEntry struct {
	Node  NodeId
	FCost float64
}

// Frontier is a worker's min-priority queue over fCost. It performs no
// duplicate elimination: duplicate entries for the same node may coexist,
// and filtering is left to the caller on Pop (both variants drop an entry
// whose fCost is not below the current bound; an entry superseded by a
// lower costToCome is not dropped). Tie-break between equal fCosts
// is unspecified (container/heap does not guarantee stable ordering among
// equal keys).
//
// Frontier is not safe for concurrent use; each worker owns exactly one
// Frontier for its local partition (MP and SM alike — SM additionally
// guards cross-worker pushes with a per-owner mutex, held by the caller,
// not by Frontier itself).
type Frontier struct {
	h frontierHeap
}

// NewFrontier returns an empty Frontier.
func NewFrontier() *Frontier {
	f := &Frontier{}
	heap.Init(&f.h)
	return f
}

// Push inserts e into the frontier.
func (f *Frontier) Push(e FrontierEntry) {
	heap.Push(&f.h, e)
}

// Pop removes and returns the minimum-fCost entry. ok is false if the
// frontier was empty.
func (f *Frontier) Pop() (e FrontierEntry, ok bool) {
	if f.h.Len() == 0 {
		return FrontierEntry{}, false
	}
	return heap.Pop(&f.h).(FrontierEntry), true
}

// Len reports the number of entries currently queued.
func (f *Frontier) Len() int { return f.h.Len() }

// Empty reports whether the frontier currently holds no entries.
func (f *Frontier) Empty() bool { return f.h.Len() == 0 }

// frontierHeap is the container/heap.Interface backing Frontier.
type frontierHeap []FrontierEntry

func (h frontierHeap) Len() int            { return len(h) }
func (h frontierHeap) Less(i, j int) bool  { return h[i].FCost < h[j].FCost }
func (h frontierHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *frontierHeap) Push(x interface{}) { *h = append(*h, x.(FrontierEntry)) }
func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Bound is the monotonically non-increasing shared upper bound on the
// optimal path cost (bestPathWeight in spec.md). It starts at +Inf and
// only ever decreases; both engine variants use it to prune frontier
// entries whose fCost would not improve on an already-found path.
type Bound struct {
	mu    sync.Mutex
	value float64
}

// NewBound returns a Bound initialized to +Inf.
func NewBound() *Bound {
	return &Bound{value: math.Inf(1)}
}

// Value returns the current bound.
func (b *Bound) Value() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// Tighten updates the bound to candidate if candidate is strictly lower
// than the current value, preserving the monotone-decrease invariant.
// Reports whether it actually tightened the bound.
func (b *Bound) Tighten(candidate float64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if candidate < b.value {
		b.value = candidate
		return true
	}
	return false
}

// Barrier is a reusable two-phase rendezvous for exactly n participants,
// used by both variants' termination detector to implement the
// "snapshot, drain, snapshot again" protocol of spec.md §4.6: no
// participant proceeds past Wait until all n have called it, and the
// barrier resets itself for the next round (a classic cyclic/generation
// barrier). The standard library has no ready-made cyclic barrier, so
// this is built directly on sync.Cond.
type Barrier struct {
	n          int
	mu         sync.Mutex
	cond       *sync.Cond
	arrived    int
	generation uint64
}

// NewBarrier returns a Barrier for exactly n participants. Panics if
// n <= 0, matching the teacher's functional-option fail-fast convention
// for programmer errors.
func NewBarrier(n int) *Barrier {
	if n <= 0 {
		panic("hda: NewBarrier requires n > 0")
	}
	b := &Barrier{n: n}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Wait blocks the calling goroutine until all n participants have called
// Wait for the current generation, then releases all of them together.
func (b *Barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	gen := b.generation
	b.arrived++
	if b.arrived == b.n {
		// Last participant to arrive: advance to the next generation and
		// wake every goroutine waiting on this one.
		b.arrived = 0
		b.generation++
		b.cond.Broadcast()
		return
	}
	for gen == b.generation {
		b.cond.Wait()
	}
}
