package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 stored as raw bits in a uint64, giving it
// atomic load/store semantics. The zero value holds 0.0.
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores v
func (f *AtomicFloat) Set(v float64) {
	f.bits.Store(math.Float64bits(v))
}

// Get loads the current value
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add adds delta and returns the updated value. The CAS loop retries on
// contention so concurrent adders never lose an update.
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
