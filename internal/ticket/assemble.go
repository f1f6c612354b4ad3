// Package ticket builds the canonical ticket artifact from a confirmed
// reservation and turns it into scannable and shareable images.
package ticket

import (
	"time"

	"github.com/rehaevents/ticketing/internal/model"
	"github.com/rehaevents/ticketing/internal/reservation"
	"github.com/rehaevents/ticketing/internal/wave"
)

// Assemble builds the canonical Ticket from a confirmed reservation.
// Price precedence: the reservation's unit/total prices are
// authoritative when present; otherwise estimateUnit (the currently
// resolved wave price, or the event default) prices the booking and the
// total is estimateUnit times the submitted quantity.  The displayed
// ticket count always comes from the client-submitted input because
// the collaborator is not assumed to echo it back.  The booking date is
// captured here, at assembly time.
func Assemble(res *reservation.Result, in model.BookingInput, ev model.EventDetails, waves []model.TicketWave, estimateUnit int, now time.Time) model.Ticket {
	unit := estimateUnit
	if res.UnitPriceETB != nil {
		unit = *res.UnitPriceETB
	}
	total := unit * in.Tickets
	if res.TotalPriceETB != nil {
		total = *res.TotalPriceETB
	}

	return model.Ticket{
		ID:            res.TicketID,
		FullName:      res.FullName,
		Email:         res.Email,
		Phone:         res.Phone,
		Tickets:       in.Tickets,
		UnitPriceETB:  unit,
		TotalPriceETB: total,
		WaveName:      wave.DisplayName(waves, res.WaveID),
		BookingDate:   now.Format("January 2, 2006"),
		BookedAt:      now.UTC(),
		Event:         ev,
	}
}

// Filename derives the deterministic download name for a ticket image,
// e.g. "REHA-Ticket-RH-000042.png".  Repeated downloads of the same
// ticket always produce the same name.
func Filename(brand, ticketID string) string {
	return brand + "-Ticket-" + ticketID + ".png"
}
