// Package sharedmemory implements the shared-memory HDA* variant: all
// workers write into global, owner-sharded costToCome/cameFrom tables
// instead of exchanging messages (spec.md §4, SM variant). Cross-owner
// neighbor discovery becomes a direct, mutex-guarded table write plus a
// push onto the owning worker's frontier, rather than an inbox message.
//
// Reconstruction needs no baton protocol here: once every worker has
// returned, the tables are no longer mutated by anyone, so Run walks
// cameFrom from dest back to source on the calling goroutine directly.
package sharedmemory
