package ticket

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/rehaevents/ticketing/internal/model"
)

// Card geometry in logical pixels.  RenderScale upsamples the rendered
// bitmap so the saved image stays legible at native resolution on
// high-density screens.
const (
	CardWidth   = 450
	CardHeight  = 640
	RenderScale = 2
)

// Renderer rasterizes an assembled ticket into a shareable PNG card.
// Font faces are parsed once at construction and reused across renders.
type Renderer struct {
	regular font.Face
	bold    font.Face
	small   font.Face
	big     font.Face
}

// NewRenderer prepares the renderer's font faces at render scale.
func NewRenderer() (*Renderer, error) {
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bld, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	face := func(f *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size * RenderScale,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	r := &Renderer{}
	if r.regular, err = face(reg, 13); err != nil {
		return nil, err
	}
	if r.bold, err = face(bld, 15); err != nil {
		return nil, err
	}
	if r.small, err = face(reg, 11); err != nil {
		return nil, err
	}
	if r.big, err = face(bld, 22); err != nil {
		return nil, err
	}
	return r, nil
}

// Render draws the ticket card and returns PNG bytes.  The QR image is
// embedded when present; a ticket without one still renders, simply
// omitting the scan section.
func (r *Renderer) Render(t model.Ticket) ([]byte, error) {
	const s = RenderScale
	dc := gg.NewContext(CardWidth*s, CardHeight*s)

	// Card background
	dc.SetHexColor("#231a4f")
	dc.Clear()
	dc.SetHexColor("#3b2d6e")
	dc.DrawRoundedRectangle(10*s, 10*s, (CardWidth-20)*s, (CardHeight-20)*s, 12*s)
	dc.Fill()

	// Brand watermark
	dc.Push()
	dc.SetRGBA(1, 1, 1, 0.08)
	dc.SetFontFace(r.big)
	dc.RotateAbout(gg.Radians(-30), CardWidth*s/2, CardHeight*s/2)
	dc.DrawStringAnchored(t.Event.Brand+" EVENTS", CardWidth*s/2, CardHeight*s/2, 0.5, 0.5)
	dc.Pop()

	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(r.big)
	dc.DrawStringAnchored(t.Event.Title, CardWidth*s/2, 52*s, 0.5, 0.5)

	leftX := float64(45 * s)
	rightX := float64(CardWidth/2+15) * s
	y := float64(100 * s)
	rowGap := float64(52 * s)

	r.field(dc, "Name", t.FullName, leftX, y)
	r.field(dc, "Tickets", fmt.Sprintf("%d", t.Tickets), rightX, y)
	y += rowGap
	r.field(dc, "Date", t.Event.Date, leftX, y)
	r.field(dc, "Time", t.Event.Time, rightX, y)
	y += rowGap
	r.field(dc, "Location", t.Event.Location, leftX, y)
	y += rowGap
	r.field(dc, "Wave", t.WaveName, leftX, y)
	r.field(dc, "Price", fmt.Sprintf("%d %s", t.UnitPriceETB, t.Event.Currency), rightX, y)
	y += rowGap
	r.field(dc, "Total Paid", fmt.Sprintf("%d %s", t.TotalPriceETB, t.Event.Currency), leftX, y)
	r.field(dc, "Booked", t.BookingDate, rightX, y)
	y += rowGap

	if t.QRPNG != nil {
		qrImg, err := png.Decode(bytes.NewReader(t.QRPNG))
		if err != nil {
			return nil, fmt.Errorf("decode ticket QR: %w", err)
		}
		dc.SetRGBA(1, 1, 1, 0.8)
		dc.SetFontFace(r.small)
		dc.DrawStringAnchored("Scan this QR code at the venue:", CardWidth*s/2, y, 0.5, 0.5)

		// Scale the fixed-size QR bitmap into a 150-logical-pixel box.
		qrBox := float64(150 * s)
		factor := qrBox / float64(qrImg.Bounds().Dx())
		cx := float64(CardWidth * s / 2)
		cy := y + 18*s + qrBox/2
		dc.Push()
		dc.ScaleAbout(factor, factor, cx, cy)
		dc.DrawImageAnchored(qrImg, int(cx), int(cy), 0.5, 0.5)
		dc.Pop()
		y = cy + qrBox/2 + 20*s
	}

	dc.SetRGBA(1, 1, 1, 0.6)
	dc.SetFontFace(r.small)
	dc.DrawStringAnchored("Ticket ID: "+t.ID, CardWidth*s/2, y, 0.5, 0.5)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("encode ticket card: %w", err)
	}
	return buf.Bytes(), nil
}

// field draws a small gray label with its white value underneath.
func (r *Renderer) field(dc *gg.Context, label, value string, x, y float64) {
	const s = RenderScale
	dc.SetRGBA(1, 1, 1, 0.55)
	dc.SetFontFace(r.small)
	dc.DrawStringAnchored(label, x, y, 0, 0.5)
	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(r.regular)
	dc.DrawStringAnchored(value, x, y+17*s, 0, 0.5)
}
