// Package messagepassing implements the message-passing HDA* variant:
// workers own disjoint costToCome/cameFrom state and communicate only
// through per-worker Inbox queues (spec.md §4, MP variant).
//
// Run spawns exactly Options.Workers goroutines via a gammazero/workerpool
// pool (one long-lived task per partition), each executing the worker
// expansion loop of spec.md §4.4, the two-barrier termination snapshot of
// §4.6, and — once every worker's frontier and every inbox are
// simultaneously empty — the semaphore-gated baton reconstruction of
// §4.7. Run blocks until the pool reports every worker has returned.
package messagepassing
