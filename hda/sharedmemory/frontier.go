package sharedmemory

import (
	"sync"

	"github.com/katalvlaran/hdastar/hda"
)

// ownedFrontier wraps hda.Frontier with a mutex: unlike the MP variant
// (where a frontier is private to its goroutine), SM frontiers accept
// pushes from whichever worker discovers a neighbor owned by this
// partition, so concurrent access is the common case, not the exception.
type ownedFrontier struct {
	mu sync.Mutex
	h  *hda.Frontier
}

func newOwnedFrontier() *ownedFrontier {
	return &ownedFrontier{h: hda.NewFrontier()}
}

func (f *ownedFrontier) Push(e hda.FrontierEntry) {
	f.mu.Lock()
	f.h.Push(e)
	f.mu.Unlock()
}

func (f *ownedFrontier) Pop() (hda.FrontierEntry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.h.Pop()
}

func (f *ownedFrontier) Empty() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.h.Empty()
}
