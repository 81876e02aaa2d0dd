package engine

import "time"

// TimeProvider abstracts the real time source so the frame loop and
// clocks can be driven by a mock in tests
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider returns the system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
