package input

import "sync/atomic"

const (
	// queueSize bounds each raw event queue. Power of two for mask math.
	// A frame at 60Hz draining 256 pending events per queue is far beyond
	// any physical input rate; overflow overwrites oldest.
	queueSize = 256
	queueMask = queueSize - 1
)

// ring is a lock-free MPSC ring buffer for raw input events
// Thread-safety:
//   - Push: lock-free CAS, multiple producers OK
//   - consume: single consumer (the latch, once per frame)
//   - published flags prevent reading partial writes
//
// Overflow: oldest events overwritten when full
type ring[T any] struct {
	slots     [queueSize]T
	published [queueSize]atomic.Bool
	head      atomic.Uint64 // read index
	tail      atomic.Uint64 // write index
}

// Push adds an event using lock-free CAS with published flags
// Safe for concurrent producers; never blocks, never fails
func (r *ring[T]) Push(val T) {
	for {
		currentTail := r.tail.Load()
		nextTail := currentTail + 1

		if r.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & queueMask

			r.slots[idx] = val
			r.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := r.head.Load()
			if nextTail-currentHead > queueSize {
				r.head.CompareAndSwap(currentHead, nextTail-queueSize)
			}
			return
		}
	}
}

// consume appends all pending events to dst in FIFO order and advances
// head. Single-consumer design; checks published flags for safety.
func (r *ring[T]) consume(dst []T) []T {
	for {
		currentHead := r.head.Load()
		currentTail := r.tail.Load()

		if currentTail == currentHead {
			return dst
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > queueSize {
			maxAvailable = queueSize
			currentHead = currentTail - queueSize
		}

		start := len(dst)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & queueMask

			if !r.published[idx].Load() {
				break // writer incomplete
			}

			dst = append(dst, r.slots[idx])
			r.published[idx].Store(false)
		}

		taken := uint64(len(dst) - start)
		if r.head.CompareAndSwap(currentHead, currentHead+taken) {
			return dst
		}
		// Head CAS fails only when a producer lapped the queue during
		// this drain. The slots read above already had their published
		// flags cleared, so the retry skips them; events overwritten in
		// that window are dropped, same as any other overflow.
		dst = dst[:start]
	}
}

// Len returns the approximate pending event count
func (r *ring[T]) Len() int {
	head := r.head.Load()
	tail := r.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > queueSize {
		return queueSize
	}
	return diff
}
