// Package metrics defines a concurrently-accessible collector for channel
// statistics.
//
// A *metrics.M tracks integer counters and maximum values under
// caller-assigned names. Many channels may share a single collector.
package metrics

import "sync"

// An M collects counters and maximum value trackers.  A nil *M is valid, and
// discards all metrics. The methods of an *M are safe for concurrent use by
// multiple goroutines.
type M struct {
	mu      sync.Mutex
	counter map[string]int64
	maxVal  map[string]int64
}

// New creates a new, empty metrics collector.
func New() *M {
	return &M{counter: make(map[string]int64), maxVal: make(map[string]int64)}
}

// Count adds n to the counter named, defining it if necessary.
func (m *M) Count(name string, n int64) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter[name] += n
}

// CountAndSetMax adds n to the counter named, and also raises the max value
// tracker of the same name to n if n exceeds it, in a single step.
func (m *M) CountAndSetMax(name string, n int64) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter[name] += n
	if n > m.maxVal[name] {
		m.maxVal[name] = n
	}
}

// Counter returns the current value of the counter named, or 0.
func (m *M) Counter(name string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counter[name]
}

// MaxValue returns the current value of the max tracker named, or 0.
func (m *M) MaxValue(name string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.maxVal[name]
}

// Stats is a point-in-time copy of the values in a collector.
type Stats struct {
	Counters  map[string]int64
	MaxValues map[string]int64
}

// Snapshot returns an atomic copy of the counters and max value trackers.
// For a nil *M, the maps in the result are empty but not nil.
func (m *M) Snapshot() Stats {
	s := Stats{Counters: make(map[string]int64), MaxValues: make(map[string]int64)}
	if m == nil {
		return s
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, val := range m.counter {
		s.Counters[name] = val
	}
	for name, val := range m.maxVal {
		s.MaxValues[name] = val
	}
	return s
}
