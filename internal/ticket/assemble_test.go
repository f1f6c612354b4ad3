package ticket

import (
	"testing"
	"time"

	"github.com/rehaevents/ticketing/internal/model"
	"github.com/rehaevents/ticketing/internal/reservation"
)

func intp(n int) *int { return &n }

func testEvent() model.EventDetails {
	return model.EventDetails{
		Title:           "REHA Event 2026",
		Date:            "March 14, 2026",
		Time:            "7:00 PM - 11:00 PM",
		Location:        "Alliance Ethio Française-PIASSA",
		Artist:          "ISAAC-ADDISU",
		Currency:        "ETB",
		DefaultPriceETB: 500,
		Brand:           "REHA",
	}
}

func testWaves() []model.TicketWave {
	return []model.TicketWave{
		{ID: "first", Name: "First Wave", PriceETB: 500},
		{ID: "second", Name: "Second Wave", PriceETB: 700},
	}
}

// A reservation carrying explicit prices is authoritative: the total is
// taken verbatim, never recomputed from the current wave estimate.
func TestAssembleServerPriceWins(t *testing.T) {
	res := &reservation.Result{
		TicketID:      "RH-000010",
		FullName:      "Abel Tesfaye",
		Email:         "abel@example.com",
		Phone:         "+251900000000",
		WaveID:        "second",
		UnitPriceETB:  intp(700),
		TotalPriceETB: intp(1400),
	}
	in := model.BookingInput{FullName: "Abel Tesfaye", Email: "abel@example.com", Phone: "+251900000000", Tickets: 2}

	// Deliberately wrong local estimate; it must be ignored.
	got := Assemble(res, in, testEvent(), testWaves(), 500, time.Now())

	if got.TotalPriceETB != 1400 {
		t.Fatalf("total = %d, want authoritative 1400", got.TotalPriceETB)
	}
	if got.UnitPriceETB != 700 {
		t.Fatalf("unit = %d, want authoritative 700", got.UnitPriceETB)
	}
	if got.WaveName != "Second Wave" {
		t.Fatalf("wave name = %q, want %q", got.WaveName, "Second Wave")
	}
}

// Without server prices the current wave estimate prices the booking.
func TestAssembleLocalFallbackPrice(t *testing.T) {
	res := &reservation.Result{
		TicketID: "RH-000011",
		FullName: "Sara Bekele",
		Email:    "sara@example.com",
		Phone:    "+251911111111",
	}
	in := model.BookingInput{FullName: "Sara Bekele", Email: "sara@example.com", Phone: "+251911111111", Tickets: 3}

	got := Assemble(res, in, testEvent(), testWaves(), 500, time.Now())

	if got.UnitPriceETB != 500 || got.TotalPriceETB != 1500 {
		t.Fatalf("prices = %d/%d, want 500/1500", got.UnitPriceETB, got.TotalPriceETB)
	}
}

func TestAssembleWaveNameFallbacks(t *testing.T) {
	in := model.BookingInput{Tickets: 1}
	cases := []struct {
		name   string
		waveID string
		want   string
	}{
		{"known wave", "first", "First Wave"},
		{"unknown wave id", "vip", "vip"},
		{"no wave id", "", "Wave"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			res := &reservation.Result{TicketID: "RH-1", WaveID: tt.waveID}
			got := Assemble(res, in, testEvent(), testWaves(), 500, time.Now())
			if got.WaveName != tt.want {
				t.Fatalf("wave name = %q, want %q", got.WaveName, tt.want)
			}
		})
	}
}

// The displayed count is always the client-submitted quantity even
// though the reservation result does not echo it.
func TestAssembleTicketCountFromInput(t *testing.T) {
	res := &reservation.Result{TicketID: "RH-000012", UnitPriceETB: intp(700), TotalPriceETB: intp(2800)}
	in := model.BookingInput{Tickets: 4}
	got := Assemble(res, in, testEvent(), testWaves(), 500, time.Now())
	if got.Tickets != 4 {
		t.Fatalf("tickets = %d, want 4", got.Tickets)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("REHA", "RH-000042"); got != "REHA-Ticket-RH-000042.png" {
		t.Fatalf("Filename = %q", got)
	}
}
