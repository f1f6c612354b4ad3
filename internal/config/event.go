package config

// This file defines the event metadata and the ticket-wave table.  Both
// are static for the process lifetime.  The built-in defaults describe
// the currently promoted event; individual fields can be overridden via
// environment variables and the whole wave table can be replaced by
// pointing WAVES_FILE at a JSON array of waves.

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rehaevents/ticketing/internal/model"
)

// LoadEvent builds the EventDetails from environment variables with
// built-in defaults.  DEFAULT_PRICE_ETB is the estimate shown when no
// wave window contains the current time.
func LoadEvent() model.EventDetails {
	return model.EventDetails{
		Title:           getenv("EVENT_TITLE", "REHA Event 2026"),
		Date:            getenv("EVENT_DATE", "March 14, 2026"),
		Time:            getenv("EVENT_TIME", "7:00 PM - 11:00 PM"),
		Location:        getenv("EVENT_LOCATION", "Alliance Ethio Française-PIASSA,አሊያንስ ኢትዮ ፍራንሲስ-ፒያሳ"),
		Artist:          getenv("EVENT_ARTIST", "ISAAC-ADDISU"),
		Description:     getenv("EVENT_DESCRIPTION", `Energetic, Raw live performance by highlighted artist "@isaac-addisu"`),
		Currency:        getenv("EVENT_CURRENCY", "ETB"),
		DefaultPriceETB: getint("DEFAULT_PRICE_ETB", 500),
		Brand:           getenv("EVENT_BRAND", "REHA"),
	}
}

// LoadWaves returns the ordered wave table.  When path is empty the
// built-in table is used; otherwise the file must contain a JSON array
// of waves with RFC 3339 start/end instants.  Order in the file is
// preserved because it is the overlap tie-break.
func LoadWaves(path string) ([]model.TicketWave, error) {
	if path == "" {
		return defaultWaves(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read waves file: %w", err)
	}
	var waves []model.TicketWave
	if err := json.Unmarshal(raw, &waves); err != nil {
		return nil, fmt.Errorf("parse waves file %s: %w", path, err)
	}
	if len(waves) == 0 {
		return nil, fmt.Errorf("waves file %s contains no waves", path)
	}
	return waves, nil
}

// defaultWaves is the promoted event's wave table.  Ethiopia time
// (Africa/Addis_Ababa) is UTC+03:00 with no DST, so the offsets are
// written directly instead of loading the IANA zone.
func defaultWaves() []model.TicketWave {
	return []model.TicketWave{
		{
			ID:       "first",
			Name:     "First Wave",
			Label:    "Feb 21, 2026 - Mar 7, 2026",
			PriceETB: 500,
			StartsAt: mustTime("2026-02-21T00:00:00+03:00"),
			EndsAt:   mustTime("2026-03-07T23:59:59+03:00"),
		},
		{
			ID:       "second",
			Name:     "Second Wave",
			Label:    "Mar 8, 2026 - Mar 13, 2026",
			PriceETB: 700,
			StartsAt: mustTime("2026-03-08T00:00:00+03:00"),
			EndsAt:   mustTime("2026-03-13T23:59:59+03:00"),
		},
		{
			ID:       "third",
			Name:     "Third Wave (At the Door)",
			Label:    "Mar 14, 2026 (At the door)",
			PriceETB: 1000,
			StartsAt: mustTime("2026-03-14T00:00:00+03:00"),
			EndsAt:   mustTime("2026-03-14T23:59:59+03:00"),
		},
	}
}

// mustTime parses an RFC 3339 timestamp known to be valid at compile
// time of the default table.
func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("config: bad built-in wave time: " + s)
	}
	return t
}
