package wave

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// The monitor must pick up a wave boundary crossing without a restart
// and must stop ticking once its context is cancelled.
func TestMonitorTracksBoundaryCrossing(t *testing.T) {
	waves := testWaves()

	// Fake clock that jumps from inside the first wave to inside the
	// second wave after the first few reads.
	var reads int64
	m := NewMonitor(waves, 500, 2*time.Millisecond)
	m.now = func() time.Time {
		if atomic.AddInt64(&reads, 1) > 3 {
			return ts("2026-03-10T00:00:00+03:00")
		}
		return ts("2026-03-01T00:00:00+03:00")
	}
	m.refresh() // re-seed with the fake clock

	if w, price := m.Current(); w == nil || w.ID != "first" || price != 500 {
		t.Fatalf("initial Current() = %v/%d, want first/500", w, price)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	deadline := time.After(time.Second)
	for {
		w, price := m.Current()
		if w != nil && w.ID == "second" && price == 700 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("monitor never crossed into second wave: %v/%d", w, price)
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestMonitorClosedSalesUsesDefaultPrice(t *testing.T) {
	m := NewMonitor(testWaves(), 500, time.Second)
	m.now = func() time.Time { return ts("2027-01-01T00:00:00Z") }
	m.refresh()
	if w, price := m.Current(); w != nil || price != 500 {
		t.Fatalf("Current() with sales closed = %v/%d, want nil/500", w, price)
	}
}
