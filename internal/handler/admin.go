package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rehaevents/ticketing/internal/repository"
	"github.com/rehaevents/ticketing/internal/utils"
)

// AdminHandler exposes the organizer surface: a single-credential login
// and a listing of locally stored bookings.  There is no registration
// and no multi-user session handling; the credential comes from
// configuration.
type AdminHandler struct {
	Email      string                 // configured organizer email
	PassHash   string                 // bcrypt hash of the organizer password
	JWTSecret  string                 // signing secret for access tokens
	TTLMinutes int                    // access token lifetime
	Tickets    *repository.TicketRepo // local booking store, nil in remote mode
}

// Login handles POST /v1/auth/login.  On a correct credential it
// returns a short-lived organizer access token.
func (h *AdminHandler) Login(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !strings.EqualFold(strings.TrimSpace(body.Email), h.Email) ||
		!utils.VerifyPassword(h.PassHash, body.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	tok, err := utils.NewAccessToken(h.JWTSecret, h.Email, h.TTLMinutes)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": tok.Token,
		"expires_at":   tok.Exp,
	})
}

// ListTickets handles GET /v1/admin/tickets.  It returns all bookings
// from the local store, newest first.  In remote reservation mode
// there is no local store and the endpoint reports 503 so the operator
// knows to query the remote collaborator instead.
func (h *AdminHandler) ListTickets(c echo.Context) error {
	if h.Tickets == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"error": "local booking store not configured",
		})
	}
	items, err := h.Tickets.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("admin: list tickets failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load tickets"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
