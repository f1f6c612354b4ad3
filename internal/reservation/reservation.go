// Package reservation defines the boundary to the collaborator that
// authoritatively records a booking.  Two implementations exist: a
// remote RPC client where the server assigns wave and price, and a
// local store where pricing is resolved in-process from the active
// wave.  Callers select one at startup; the rest of the service only
// sees the Reserver interface.
package reservation

import (
	"context"
	"errors"

	"github.com/rehaevents/ticketing/internal/model"
)

// ErrNotOnSale is returned when the collaborator rejects a booking
// because no ticket wave is currently open.  Handlers surface it with a
// distinct "sales closed" message instead of the generic failure text.
var ErrNotOnSale = errors.New("tickets not on sale")

// Result is the normalized reservation record.  Whatever shape the
// collaborator answers with (single object, one-element array, minimal
// insert echo) is converted into this one variant at the boundary so
// the ticket assembler never branches on shape.
//
// UnitPriceETB and TotalPriceETB are nil when the collaborator did not
// resolve pricing; the assembler then computes both from the currently
// active wave.  When present they are authoritative and override any
// locally computed estimate.
type Result struct {
	TicketID      string `json:"ticket_id"`                      // assigned ticket identifier
	FullName      string `json:"full_name"`                      // confirmed attendee name
	Email         string `json:"email"`                          // confirmed email
	Phone         string `json:"phone"`                          // confirmed phone
	WaveID        string `json:"wave_id,omitempty"`              // resolved wave, may be empty
	UnitPriceETB  *int   `json:"price_per_ticket_etb,omitempty"` // charged unit price, nil if unresolved
	TotalPriceETB *int   `json:"total_price_etb,omitempty"`      // charged total, nil if unresolved
}

// Reserver records a booking with the external collaborator and returns
// the normalized result.  Implementations must honor ctx cancellation
// and must never return a nil Result together with a nil error.
type Reserver interface {
	Reserve(ctx context.Context, in model.BookingInput) (*Result, error)
}
