package wave

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/rehaevents/ticketing/internal/model"
)

// Monitor re-resolves the active wave on a fixed interval so a window
// boundary crossing while the service is running updates the quoted
// price without a restart.  It is owned by the caller's context: Run
// returns when the context is cancelled and no timer leaks.  The wave
// table itself is immutable, so readers only contend on the small
// cached snapshot.
type Monitor struct {
	waves        []model.TicketWave
	defaultPrice int
	interval     time.Duration
	now          func() time.Time // injected clock, time.Now in production

	mu      sync.RWMutex
	current *model.TicketWave
	price   int
}

// NewMonitor builds a Monitor over the given wave table.  The interval
// is how often the active wave is re-resolved; one second matches the
// granularity a booking page needs.
func NewMonitor(waves []model.TicketWave, defaultPrice int, interval time.Duration) *Monitor {
	m := &Monitor{
		waves:        waves,
		defaultPrice: defaultPrice,
		interval:     interval,
		now:          time.Now,
	}
	m.refresh()
	return m
}

// Run re-resolves the active wave every interval until ctx is cancelled.
// It logs wave transitions so boundary crossings are visible in the
// service log.  Intended to be started as a goroutine from main.
func (m *Monitor) Run(ctx context.Context) {
	t := time.NewTicker(m.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.refresh()
		}
	}
}

// Current returns the active wave (nil when sales are closed) and the
// per-ticket price estimate in effect right now.  The estimate is a
// display hint only; a reservation result's price always overrides it.
func (m *Monitor) Current() (*model.TicketWave, int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current, m.price
}

// Waves returns the immutable configured wave table.
func (m *Monitor) Waves() []model.TicketWave { return m.waves }

func (m *Monitor) refresh() {
	w := Resolve(m.waves, m.now())
	price := m.defaultPrice
	if w != nil {
		price = w.PriceETB
	}
	m.mu.Lock()
	prev := m.current
	m.current = w
	m.price = price
	m.mu.Unlock()
	if waveID(prev) != waveID(w) {
		log.Printf("wave-monitor: active wave changed %q -> %q (price %d)", waveID(prev), waveID(w), price)
	}
}

func waveID(w *model.TicketWave) string {
	if w == nil {
		return ""
	}
	return w.ID
}
