package status

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMapGetReturnsStablePointer(t *testing.T) {
	r := NewRegistry()

	a := r.Ints.Get("engine.frames")
	b := r.Ints.Get("engine.frames")
	if a != b {
		t.Error("Get returned different pointers for same key")
	}

	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("expected 3, got %d", b.Load())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Ints.Get(fmt.Sprintf("worker.%d", n%4)).Add(1)
			}
		}(i)
	}
	wg.Wait()

	var total int64
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		total += ptr.Load()
	})
	if total != 800 {
		t.Errorf("expected 800 increments, got %d", total)
	}
	if r.Ints.Count() != 4 {
		t.Errorf("expected 4 keys, got %d", r.Ints.Count())
	}
}

func TestAtomicFloatAdd(t *testing.T) {
	var f AtomicFloat
	f.Set(1.5)
	if got := f.Add(2.5); got != 4.0 {
		t.Errorf("Add returned %v, want 4.0", got)
	}
	if got := f.Get(); got != 4.0 {
		t.Errorf("Get returned %v, want 4.0", got)
	}
}
