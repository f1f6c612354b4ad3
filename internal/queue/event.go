// Package queue defines the broker message payloads and the background
// consumer that records confirmed bookings.
package queue

import (
	"time"

	"github.com/rehaevents/ticketing/internal/model"
)

// TicketBookedEvent is published when a booking has been confirmed and
// its ticket assembled.  It carries enough information for downstream
// consumers to log, notify or feed analytics without querying the
// reservation collaborator.
type TicketBookedEvent struct {
	TicketID      string `json:"ticket_id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Tickets       int    `json:"tickets"`
	WaveName      string `json:"wave_name"`
	UnitPriceETB  int    `json:"unit_price_etb"`
	TotalPriceETB int    `json:"total_price_etb"`
	EventTitle    string `json:"event_title"`
	BookedAt      string `json:"booked_at"`
}

// NewTicketBookedEvent projects an assembled ticket into its broker event.
func NewTicketBookedEvent(t model.Ticket) TicketBookedEvent {
	return TicketBookedEvent{
		TicketID:      t.ID,
		FullName:      t.FullName,
		Email:         t.Email,
		Phone:         t.Phone,
		Tickets:       t.Tickets,
		WaveName:      t.WaveName,
		UnitPriceETB:  t.UnitPriceETB,
		TotalPriceETB: t.TotalPriceETB,
		EventTitle:    t.Event.Title,
		BookedAt:      t.BookedAt.Format(time.RFC3339),
	}
}
