package messagepassing

import "github.com/katalvlaran/hdastar/hda"

// reconstruct implements the baton-passing protocol of spec.md §4.7: a
// single PathReconstruction message hops from dest's owner back through
// cameFrom links, each hop crossing to the predecessor's owner, until it
// reaches source. Exactly one worker is ever active in this phase at any
// instant; the per-worker counting semaphores (reconSem) are the wake
// signal, the Inbox holds the payload.
func (w *worker) reconstruct() {
	if hda.Owner(w.shared.dest, w.shared.workers) == w.id {
		w.shared.inboxes[w.id].Push(Message{Type: PathReconstruction, Target: w.shared.dest})
		w.release(w.id)
	}

	for {
		w.acquire(w.id)
		m, ok := w.shared.inboxes[w.id].Pop()
		if !ok {
			continue // spurious wake; protocol guarantees a message is already queued
		}

		switch m.Type {
		case PathEnd:
			return

		case PathReconstruction:
			w.shared.path = append([]hda.NodeId{m.Target}, w.shared.path...)

			if m.Target == w.source {
				w.shared.status = hda.StatusOK
				w.broadcastPathEnd()
				return
			}

			prev := w.cameFrom[m.Target]
			if prev == hda.InvalidNodeID {
				w.shared.status = hda.StatusInconsistent
				w.broadcastPathEnd()
				return
			}

			prevOwner := hda.Owner(prev, w.shared.workers)
			w.shared.inboxes[prevOwner].Push(Message{Type: PathReconstruction, Target: prev})
			w.release(prevOwner)

		default:
			// Work/TargetReached no longer matter once search has quiesced.
		}
	}
}

func (w *worker) broadcastPathEnd() {
	for i, ib := range w.shared.inboxes {
		if i == w.id {
			continue
		}
		ib.Push(Message{Type: PathEnd})
		w.release(i)
	}
}

// release signals worker id's semaphore. The channel is buffered to the
// worker count, matching std::counting_semaphore<N_THREADS> in the
// reference implementation; a full channel (which the protocol never
// actually produces, since at most one reconstruction message is ever in
// flight toward a given worker) drops the signal rather than blocking the
// sender or panicking.
func (w *worker) release(id int) {
	select {
	case w.shared.reconSem[id] <- struct{}{}:
	default:
	}
}

// acquire blocks until this worker's own semaphore has been released.
func (w *worker) acquire(id int) {
	<-w.shared.reconSem[id]
}
