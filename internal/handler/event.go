package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rehaevents/ticketing/internal/model"
)

// WaveSource provides the immutable wave table and the currently
// resolved wave with its price estimate.  Implemented by wave.Monitor;
// tests substitute fakes.
type WaveSource interface {
	Current() (*model.TicketWave, int)
	Waves() []model.TicketWave
}

// EventHandler serves the public event metadata and wave pricing that
// the booking page renders.  All endpoints are unauthenticated reads
// over immutable configuration plus the live wave resolution.
type EventHandler struct {
	Event model.EventDetails // static event metadata
	Waves WaveSource         // live wave resolution
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(ev model.EventDetails, waves WaveSource) *EventHandler {
	if waves == nil {
		panic("nil wave source passed to NewEventHandler")
	}
	return &EventHandler{Event: ev, Waves: waves}
}

// GetEvent handles GET /v1/event.  It returns the event details, the
// full wave table and the price currently in effect, which is exactly
// the data the booking page's hero card shows.
func (h *EventHandler) GetEvent(c echo.Context) error {
	current, price := h.Waves.Current()
	return c.JSON(http.StatusOK, echo.Map{
		"event":            h.Event,
		"waves":            h.Waves.Waves(),
		"current_wave":     current,
		"price_per_ticket": price,
	})
}

// GetWaves handles GET /v1/waves and returns the configured wave table
// in its defined order.
func (h *EventHandler) GetWaves(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Waves.Waves()})
}

// GetCurrentWave handles GET /v1/waves/current.  The returned price is
// a display estimate only; a reservation result's price always
// overrides it.  on_sale is false when no wave window contains now.
func (h *EventHandler) GetCurrentWave(c echo.Context) error {
	current, price := h.Waves.Current()
	return c.JSON(http.StatusOK, echo.Map{
		"wave":             current,
		"price_per_ticket": price,
		"on_sale":          current != nil,
	})
}
