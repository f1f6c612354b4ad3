package handler

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rehaevents/ticketing/internal/model"
	"github.com/rehaevents/ticketing/internal/store"
	"github.com/rehaevents/ticketing/internal/ticket"
)

func getImage(t *testing.T, h *TicketImageHandler, id string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/tickets/"+id+"/image", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/tickets/:id/image")
	c.SetParamNames("id")
	c.SetParamValues(id)
	if err := h.GetTicketImage(c); err != nil {
		t.Fatalf("GetTicketImage: %v", err)
	}
	return rec
}

func TestGetTicketImage(t *testing.T) {
	r, err := ticket.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	st := store.NewTicketStore()
	st.Put(model.Ticket{
		ID: "RH-000042", FullName: "Abel", Tickets: 1,
		UnitPriceETB: 500, TotalPriceETB: 500, WaveName: "First Wave",
		Event: testEvent(),
	})
	h := NewTicketImageHandler(st, r)

	rec := getImage(t, h, "RH-000042")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	cd := rec.Header().Get(echo.HeaderContentDisposition)
	if !strings.Contains(cd, `"REHA-Ticket-RH-000042.png"`) {
		t.Fatalf("Content-Disposition = %q", cd)
	}
	if _, err := png.Decode(bytes.NewReader(rec.Body.Bytes())); err != nil {
		t.Fatalf("response is not a PNG: %v", err)
	}

	// Repeated download: same ticket, same deterministic filename.
	again := getImage(t, h, "RH-000042")
	if again.Header().Get(echo.HeaderContentDisposition) != cd {
		t.Fatal("filename not deterministic across downloads")
	}
}

func TestGetTicketImageUnknownTicket(t *testing.T) {
	r, err := ticket.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	h := NewTicketImageHandler(store.NewTicketStore(), r)
	rec := getImage(t, h, "nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
