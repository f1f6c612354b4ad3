package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rehaevents/ticketing/internal/model"
	"github.com/rehaevents/ticketing/internal/queue"
	"github.com/rehaevents/ticketing/internal/reservation"
	"github.com/rehaevents/ticketing/internal/store"
	"github.com/rehaevents/ticketing/internal/ticket"
)

// User-facing failure messages.  The sales-closed text is distinct from
// the generic one so the client can tell the two apart.
const (
	msgSalesClosed   = "Ticket sales are currently closed. Please check back later."
	msgBookingFailed = "There was an error saving your ticket. Please try again."
)

// PublishFunc pushes a booking event to the broker.
type PublishFunc func(context.Context, queue.TicketBookedEvent) error

// BookingHandler runs the booking flow: validate input, reserve with
// the collaborator, assemble the canonical ticket, attach the QR image
// and keep the ticket for later download.  Every collaborator failure
// is caught here and converted to a JSON response; nothing propagates
// to crash the request.
type BookingHandler struct {
	Reserver reservation.Reserver // records the booking authoritatively
	Event    model.EventDetails   // static event metadata
	Waves    WaveSource           // live wave resolution for estimates
	Store    *store.TicketStore   // transient assembled-ticket cache
	Encoder  ticket.Encoder       // scan payload encoder
	Publish  PublishFunc          // broker publish, nil disables
}

// NewBookingHandler constructs a BookingHandler.  Publish may be nil
// when no broker is configured.
func NewBookingHandler(r reservation.Reserver, ev model.EventDetails, waves WaveSource, st *store.TicketStore, enc ticket.Encoder, publish PublishFunc) *BookingHandler {
	if r == nil || waves == nil || st == nil || enc == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Reserver: r, Event: ev, Waves: waves, Store: st, Encoder: enc, Publish: publish}
}

// CreateBooking handles POST /v1/bookings.  Responses:
//   201 with the assembled ticket and its image download URL
//   400 when required fields are missing (no reservation attempt made)
//   409 when ticket sales are closed
//   502 when the reservation collaborator fails
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var in model.BookingInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if in.Tickets == 0 {
		in.Tickets = model.MinTickets // form default: one ticket
	}
	if err := in.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}

	ctx := c.Request().Context()
	res, err := h.Reserver.Reserve(ctx, in)
	if err != nil || res == nil {
		if errors.Is(err, reservation.ErrNotOnSale) {
			return c.JSON(http.StatusConflict, echo.Map{
				"error":   "sales_closed",
				"message": msgSalesClosed,
			})
		}
		c.Logger().Errorf("booking: reservation failed: %v", err)
		return c.JSON(http.StatusBadGateway, echo.Map{
			"error":   "booking_failed",
			"message": msgBookingFailed,
		})
	}

	_, estimate := h.Waves.Current()
	tk := ticket.Assemble(res, in, h.Event, h.Waves.Waves(), estimate, time.Now())
	ticket.AttachCode(&tk, h.Encoder) // degrades to nil QR on failure
	h.Store.Put(tk)

	if h.Publish != nil {
		ev := queue.NewTicketBookedEvent(tk)
		go func() {
			// Broker publish is best-effort; the booking already succeeded.
			pctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = h.Publish(pctx, ev)
		}()
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"ticket":       tk,
		"download_url": "/v1/tickets/" + url.PathEscape(tk.ID) + "/image",
		"message":      "Booking successful. Ticket ID: " + tk.ID,
	})
}

// GetTicket handles GET /v1/tickets/:id.  It returns the assembled
// ticket from the transient store.  Tickets do not survive a restart;
// the authoritative record lives with the reservation collaborator.
func (h *BookingHandler) GetTicket(c echo.Context) error {
	tk, ok := h.Store.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ticket": tk})
}
