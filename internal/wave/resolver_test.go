package wave

import (
	"testing"
	"time"

	"github.com/rehaevents/ticketing/internal/model"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func testWaves() []model.TicketWave {
	return []model.TicketWave{
		{ID: "first", Name: "First Wave", PriceETB: 500,
			StartsAt: ts("2026-02-21T00:00:00+03:00"), EndsAt: ts("2026-03-07T23:59:59+03:00")},
		{ID: "second", Name: "Second Wave", PriceETB: 700,
			StartsAt: ts("2026-03-08T00:00:00+03:00"), EndsAt: ts("2026-03-13T23:59:59+03:00")},
		{ID: "third", Name: "Third Wave (At the Door)", PriceETB: 1000,
			StartsAt: ts("2026-03-14T00:00:00+03:00"), EndsAt: ts("2026-03-14T23:59:59+03:00")},
	}
}

func TestResolve(t *testing.T) {
	waves := testWaves()
	cases := []struct {
		name string
		at   time.Time
		want string // wave ID, "" for nil
	}{
		{"before all windows", ts("2026-02-20T23:59:59+03:00"), ""},
		{"inside first", ts("2026-02-25T12:00:00+03:00"), "first"},
		{"first start boundary inclusive", ts("2026-02-21T00:00:00+03:00"), "first"},
		{"first end boundary inclusive", ts("2026-03-07T23:59:59+03:00"), "first"},
		{"inside second", ts("2026-03-10T09:30:00+03:00"), "second"},
		{"inside third", ts("2026-03-14T20:00:00+03:00"), "third"},
		{"after all windows", ts("2026-03-15T00:00:00+03:00"), ""},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(waves, tt.at)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("Resolve(%s) = %q, want nil", tt.at, got.ID)
				}
				return
			}
			if got == nil || got.ID != tt.want {
				t.Fatalf("Resolve(%s) = %v, want wave %q", tt.at, got, tt.want)
			}
		})
	}
}

// Overlapping windows are a configuration error, but the resolution is
// still defined: the earliest-listed matching wave wins.
func TestResolveOverlapFirstListedWins(t *testing.T) {
	waves := []model.TicketWave{
		{ID: "early", PriceETB: 400,
			StartsAt: ts("2026-03-01T00:00:00Z"), EndsAt: ts("2026-03-10T00:00:00Z")},
		{ID: "late", PriceETB: 900,
			StartsAt: ts("2026-03-05T00:00:00Z"), EndsAt: ts("2026-03-20T00:00:00Z")},
	}
	at := ts("2026-03-07T00:00:00Z")
	for i := 0; i < 50; i++ {
		got := Resolve(waves, at)
		if got == nil || got.ID != "early" {
			t.Fatalf("Resolve in overlap = %v, want earliest-listed wave %q", got, "early")
		}
	}
}

func TestPriceAt(t *testing.T) {
	waves := testWaves()
	if got := PriceAt(waves, ts("2026-03-10T00:00:00+03:00"), 500); got != 700 {
		t.Fatalf("PriceAt inside second wave = %d, want 700", got)
	}
	if got := PriceAt(waves, ts("2026-04-01T00:00:00+03:00"), 500); got != 500 {
		t.Fatalf("PriceAt outside all windows = %d, want default 500", got)
	}
}

func TestDisplayName(t *testing.T) {
	waves := testWaves()
	cases := []struct {
		waveID string
		want   string
	}{
		{"second", "Second Wave"},
		{"unknown-id", "unknown-id"},
		{"", "Wave"},
	}
	for _, tt := range cases {
		if got := DisplayName(waves, tt.waveID); got != tt.want {
			t.Fatalf("DisplayName(%q) = %q, want %q", tt.waveID, got, tt.want)
		}
	}
}
