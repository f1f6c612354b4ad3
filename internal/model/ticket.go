package model

import "time"

// Ticket is the canonical booking artifact assembled from a confirmed
// reservation.  It is created once per successful booking, is immutable
// afterwards, and lives only in transient process memory until the
// attendee downloads the rendered image.
//
// QRPNG holds the encoded scannable image bytes and is nil when QR
// encoding failed; the ticket is still valid and renderable without it.
type Ticket struct {
	ID            string       `json:"id"`               // authoritative ticket identifier
	FullName      string       `json:"full_name"`        // attendee name
	Email         string       `json:"email"`            // attendee email
	Phone         string       `json:"phone"`            // attendee phone
	Tickets       int          `json:"tickets"`          // quantity as submitted by the client
	UnitPriceETB  int          `json:"unit_price_etb"`   // price per ticket actually charged
	TotalPriceETB int          `json:"total_price_etb"`  // total actually charged
	WaveName      string       `json:"wave_name"`        // display name of the pricing wave
	BookingDate   string       `json:"booking_date"`     // date the ticket was assembled
	BookedAt      time.Time    `json:"booked_at"`        // assembly instant, UTC
	Event         EventDetails `json:"event"`            // denormalized event metadata
	QRPNG         []byte       `json:"qr_png,omitempty"` // scannable PNG, nil when encoding failed
}
