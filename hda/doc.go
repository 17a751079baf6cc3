// Package hda defines the external contract shared by both HDA*
// (Hash-Distributed A*) engine variants: the message-passing variant in
// hda/messagepassing and the shared-memory variant in hda/sharedmemory.
//
// Neither variant imports the other; both import this package for the
// vocabulary they have in common: NodeId and InvalidNodeID (re-exported
// from graph), FrontierEntry and Frontier (the per-worker min-priority
// queue over fCost), Bound (the monotonically non-increasing shared
// upper bound used for pruning), Barrier (the two-phase termination
// snapshot rendezvous), Owner (the partitioner), Options, and Result.
//
// This package is deliberately inert: it holds no goroutines and performs
// no I/O. The driver package is what actually runs a search, by calling
// into whichever variant Options.Variant selects.
package hda

import "errors"

// Sentinel errors shared by both engine variants.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to a variant's Run.
	ErrNilGraph = errors.New("hda: graph is nil")

	// ErrVertexOutOfRange indicates source or dest is not a valid vertex id.
	ErrVertexOutOfRange = errors.New("hda: vertex id out of range")

	// ErrInvalidWorkerCount indicates Options.Workers <= 0.
	ErrInvalidWorkerCount = errors.New("hda: worker count must be positive")
)
