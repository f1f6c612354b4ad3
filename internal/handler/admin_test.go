package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rehaevents/ticketing/internal/utils"
)

func newAdminHandler(t *testing.T) *AdminHandler {
	t.Helper()
	hash, err := utils.HashPassword("open-sesame", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return &AdminHandler{
		Email:      "organizer@rehaevents.example",
		PassHash:   hash,
		JWTSecret:  "test-secret",
		TTLMinutes: 5,
	}
}

func postLogin(t *testing.T, h *AdminHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Login: %v", err)
	}
	return rec
}

func TestLogin(t *testing.T) {
	h := newAdminHandler(t)

	rec := postLogin(t, h, `{"email":"organizer@rehaevents.example","password":"open-sesame"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("no access token issued")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	h := newAdminHandler(t)
	cases := []struct {
		name string
		body string
	}{
		{"wrong password", `{"email":"organizer@rehaevents.example","password":"nope"}`},
		{"wrong email", `{"email":"other@example.com","password":"open-sesame"}`},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if rec := postLogin(t, h, tt.body); rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
		})
	}
}

// Remote reservation mode has no local booking store; the listing must
// say so instead of failing opaquely.
func TestListTicketsWithoutLocalStore(t *testing.T) {
	h := newAdminHandler(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/tickets", nil)
	rec := httptest.NewRecorder()
	if err := h.ListTickets(e.NewContext(req, rec)); err != nil {
		t.Fatalf("ListTickets: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
