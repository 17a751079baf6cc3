package sharedmemory

import (
	"math"
	"sync"

	"github.com/katalvlaran/hdastar/hda"
)

// tables is the global costToCome/cameFrom state, sharded into one lock
// per partition so that contention is limited to vertices owned by the
// same worker (spec.md §5, Shared tables).
type tables struct {
	workers    int
	mus        []sync.Mutex
	costToCome []float64
	cameFrom   []hda.NodeId
}

func newTables(n, workers int) *tables {
	cost := make([]float64, n)
	parent := make([]hda.NodeId, n)
	for i := range cost {
		cost[i] = math.Inf(1)
		parent[i] = hda.InvalidNodeID
	}
	return &tables{
		workers:    workers,
		mus:        make([]sync.Mutex, workers),
		costToCome: cost,
		cameFrom:   parent,
	}
}

func (t *tables) shard(v hda.NodeId) *sync.Mutex {
	return &t.mus[hda.Owner(v, t.workers)]
}

// tryImprove installs (parent, gCost) for v if gCost improves on the
// current costToCome[v], reporting whether it did. The comparison and
// write happen under a single lock acquisition so two competing
// improvements can never interleave into an inconsistent (cost, parent)
// pair.
func (t *tables) tryImprove(v, parent hda.NodeId, gCost float64) bool {
	m := t.shard(v)
	m.Lock()
	defer m.Unlock()
	if gCost < t.costToCome[v] {
		t.costToCome[v] = gCost
		t.cameFrom[v] = parent
		return true
	}
	return false
}

// costOf returns the current costToCome[v] under v's shard lock.
func (t *tables) costOf(v hda.NodeId) float64 {
	m := t.shard(v)
	m.Lock()
	defer m.Unlock()
	return t.costToCome[v]
}

// parentOf returns the current cameFrom[v] under v's shard lock. Called
// only after every worker has returned, so the lock here is a formality
// rather than a genuine contention point.
func (t *tables) parentOf(v hda.NodeId) hda.NodeId {
	m := t.shard(v)
	m.Lock()
	defer m.Unlock()
	return t.cameFrom[v]
}
