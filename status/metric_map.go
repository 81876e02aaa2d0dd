package status

import (
	"sort"
	"sync"
)

// MetricMap hands out one stable pointer per key. A pointer never moves
// once created, so hot paths resolve their keys at startup and write
// through the cached pointer without further map lookups.
type MetricMap[T any] struct {
	mu      sync.RWMutex
	entries map[string]*T
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{entries: make(map[string]*T)}
}

// Get resolves the pointer for key, allocating the metric on first use.
// Safe for concurrent callers; at most one allocation wins per key.
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr := m.entries[key]
	m.mu.RUnlock()
	if ptr != nil {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr := m.entries[key]; ptr != nil {
		return ptr
	}
	ptr = new(T)
	m.entries[key] = ptr
	return ptr
}

// Range visits every metric in ascending key order, for deterministic
// diagnostics output
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, m.entries[k])
	}
}

// Count reports how many metrics exist
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
