package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rehaevents/ticketing/internal/store"
	"github.com/rehaevents/ticketing/internal/ticket"
)

// TicketImageHandler rasterizes assembled tickets into downloadable PNG
// cards.  Rendering happens only on demand, never eagerly at booking
// time, since many tickets are never downloaded.
type TicketImageHandler struct {
	Store    *store.TicketStore
	Renderer *ticket.Renderer
}

// NewTicketImageHandler constructs a TicketImageHandler.
func NewTicketImageHandler(st *store.TicketStore, r *ticket.Renderer) *TicketImageHandler {
	if st == nil || r == nil {
		panic("nil dependency passed to NewTicketImageHandler")
	}
	return &TicketImageHandler{Store: st, Renderer: r}
}

// GetTicketImage handles GET /v1/tickets/:id/image.  The response is a
// PNG attachment whose filename is derived deterministically from the
// ticket identifier, so repeated downloads of one ticket never collide
// with other tickets.  A rendering failure returns 500 and leaves the
// stored ticket intact so the request can simply be retried.
func (h *TicketImageHandler) GetTicketImage(c echo.Context) error {
	tk, ok := h.Store.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket not found"})
	}
	img, err := h.Renderer.Render(tk)
	if err != nil {
		c.Logger().Errorf("ticket-image: render %s failed: %v", tk.ID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "render_failed",
			"message": "Failed to generate ticket image.",
		})
	}
	name := ticket.Filename(tk.Event.Brand, tk.ID)
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, name))
	return c.Blob(http.StatusOK, "image/png", img)
}
