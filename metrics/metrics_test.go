package metrics_test

import (
	"sync"
	"testing"

	"github.com/creachadair/bytechan/metrics"
	"github.com/google/go-cmp/cmp"
)

func TestNilCollector(t *testing.T) {
	var m *metrics.M
	m.Count("x", 1)
	m.CountAndSetMax("y", 5)
	if got := m.Counter("x"); got != 0 {
		t.Errorf("Counter(x): got %d, want 0", got)
	}
	s := m.Snapshot()
	if s.Counters == nil || s.MaxValues == nil {
		t.Errorf("Snapshot of nil collector has nil maps: %+v", s)
	}
}

func TestConcurrentCount(t *testing.T) {
	m := metrics.New()
	var wg sync.WaitGroup
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Count("calls", 1)
			m.CountAndSetMax("bytes", int64(i))
		}()
	}
	wg.Wait()

	want := metrics.Stats{
		Counters:  map[string]int64{"calls": 10, "bytes": 55},
		MaxValues: map[string]int64{"bytes": 10},
	}
	if diff := cmp.Diff(want, m.Snapshot()); diff != "" {
		t.Errorf("Snapshot (-want, +got):\n%s", diff)
	}
	if got := m.MaxValue("bytes"); got != 10 {
		t.Errorf("MaxValue(bytes): got %d, want 10", got)
	}
}
