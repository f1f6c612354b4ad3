// Package wave implements ticket-wave price resolution: deciding which
// pricing tier, if any, applies at a given instant.
package wave

import (
	"time"

	"github.com/rehaevents/ticketing/internal/model"
)

// Resolve returns the first wave whose [StartsAt, EndsAt] window
// contains the given instant, or nil when no window matches (sales
// closed).  Both window boundaries are inclusive.  First-listed wins on
// overlap; callers rely on this as defined behavior, so the scan order
// is exactly the configured order.  Pure function, no I/O.
func Resolve(waves []model.TicketWave, at time.Time) *model.TicketWave {
	for i := range waves {
		if waves[i].Contains(at) {
			return &waves[i]
		}
	}
	return nil
}

// PriceAt returns the per-ticket price in effect at the given instant:
// the active wave's price, or defaultPrice when sales are closed.
func PriceAt(waves []model.TicketWave, at time.Time, defaultPrice int) int {
	if w := Resolve(waves, at); w != nil {
		return w.PriceETB
	}
	return defaultPrice
}

// DisplayName maps a wave identifier from a reservation result to the
// configured wave's display name.  Unknown identifiers fall back to the
// raw identifier string, and an empty identifier falls back to the
// generic "Wave" label.
func DisplayName(waves []model.TicketWave, waveID string) string {
	for i := range waves {
		if waves[i].ID == waveID {
			return waves[i].Name
		}
	}
	if waveID != "" {
		return waveID
	}
	return "Wave"
}
