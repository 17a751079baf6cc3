package messagepassing

import "github.com/katalvlaran/hdastar/hda"

// MessageType tags a Message's purpose, mirroring the reference
// implementation's four wire-message kinds (hdastar_message_passing/main.cpp).
type MessageType int

const (
	// Work carries a candidate (target, parent, fCost, gCost) tuple routed
	// to target's owner during the expansion phase.
	Work MessageType = iota

	// TargetReached broadcasts an improved bestPathWeight to every other
	// worker after the sender pops the search goal off its own frontier.
	TargetReached

	// PathReconstruction carries the reconstruction baton: "append Target
	// to the path, then forward to Target's predecessor's owner."
	PathReconstruction

	// PathEnd is broadcast by the worker that reaches source, telling
	// every other worker the reconstruction phase is over.
	PathEnd
)

// Message is the unit of inter-worker communication for the MP variant.
// Only the fields relevant to Type are meaningful; the others are zero.
type Message struct {
	Type   MessageType
	Target hda.NodeId
	Parent hda.NodeId
	FCost  float64
	GCost  float64
}
