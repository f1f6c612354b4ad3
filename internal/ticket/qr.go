package ticket

import (
	"image/color"
	"log"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/rehaevents/ticketing/internal/model"
)

// QRSize is the rendered side length of the scannable image in pixels.
const QRSize = 200

// Encoder turns a serialized scan payload into image bytes.  The
// production implementation is QREncoder; tests substitute failing
// encoders to exercise degraded mode.
type Encoder interface {
	Encode(data string) ([]byte, error)
}

// QREncoder renders the payload as a PNG QR code: fixed size, default
// quiet-zone border, pure black on pure white for scan reliability
// under venue lighting.
type QREncoder struct {
	Size int // pixels per side; QRSize when zero
}

// Encode renders data into a PNG QR bitmap.
func (e QREncoder) Encode(data string) ([]byte, error) {
	q, err := qrcode.New(data, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	q.ForegroundColor = color.Black
	q.BackgroundColor = color.White
	size := e.Size
	if size == 0 {
		size = QRSize
	}
	return q.PNG(size)
}

// AttachCode encodes the ticket's scan payload and attaches the
// resulting image to the ticket.  Encoding failure is deliberately
// non-fatal: the ticket is still produced with a nil QRPNG and the
// failure is only logged.  No error ever escapes to the caller.
func AttachCode(t *model.Ticket, enc Encoder) {
	data, err := NewScanPayload(*t).Marshal()
	if err != nil {
		log.Printf("ticket: marshal scan payload for %s failed: %v", t.ID, err)
		t.QRPNG = nil
		return
	}
	img, err := enc.Encode(string(data))
	if err != nil {
		log.Printf("ticket: QR encode for %s failed: %v", t.ID, err)
		t.QRPNG = nil
		return
	}
	t.QRPNG = img
}
