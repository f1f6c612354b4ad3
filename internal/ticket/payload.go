package ticket

import (
	"encoding/json"

	"github.com/rehaevents/ticketing/internal/model"
)

// ScanPayload is the structured data embedded in the ticket's QR code.
// Any third-party scanner must be able to recover the discrete fields,
// so the payload is a flat JSON object rather than free text.  The key
// casing (including "Artist") is the established wire format already
// understood by the venue's scanner app and must not change.
type ScanPayload struct {
	TicketID       string `json:"ticketId"`
	EventName      string `json:"eventName"`
	AttendeeName   string `json:"attendeeName"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Location       string `json:"location"`
	Artist         string `json:"Artist"`
	Wave           string `json:"wave"`
	PricePerTicket int    `json:"pricePerTicket"`
	TotalPrice     int    `json:"totalPrice"`
}

// NewScanPayload projects a ticket into its scannable field set.
func NewScanPayload(t model.Ticket) ScanPayload {
	return ScanPayload{
		TicketID:       t.ID,
		EventName:      t.Event.Title,
		AttendeeName:   t.FullName,
		Date:           t.Event.Date,
		Time:           t.Event.Time,
		Location:       t.Event.Location,
		Artist:         t.Event.Artist,
		Wave:           t.WaveName,
		PricePerTicket: t.UnitPriceETB,
		TotalPrice:     t.TotalPriceETB,
	}
}

// Marshal serializes the payload to the JSON string that gets encoded
// into the QR bitmap.
func (p ScanPayload) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// DecodeScanPayload parses a scanned payload back into its fields.
// Used by scanner-side tooling and the round-trip tests.
func DecodeScanPayload(data []byte) (ScanPayload, error) {
	var p ScanPayload
	err := json.Unmarshal(data, &p)
	return p, err
}
