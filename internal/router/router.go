package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/rehaevents/ticketing/internal/handler"
	"github.com/rehaevents/ticketing/internal/middleware"
)

// RegisterRoutes registers routes that need no handler state.
// Currently only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated event and wave read
// endpoints that the booking page renders from.
func RegisterPublic(e *echo.Echo, ev *handler.EventHandler) {
	// Event details, wave table and current price in one call
	e.GET("/v1/event", ev.GetEvent)
	// Full wave table in configured order
	e.GET("/v1/waves", ev.GetWaves)
	// Live resolved wave and price estimate
	e.GET("/v1/waves/current", ev.GetCurrentWave)
}

// RegisterBooking registers the booking flow and ticket retrieval
// endpoints.  The rate limiter guards only the booking submission;
// ticket reads are cheap in-memory lookups.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, img *handler.TicketImageHandler, limiter echo.MiddlewareFunc) {
	e.POST("/v1/bookings", b.CreateBooking, limiter)
	e.GET("/v1/tickets/:id", b.GetTicket)
	// On-demand rasterization; download filename derives from the ticket id
	e.GET("/v1/tickets/:id/image", img.GetTicketImage)
}

// RegisterAdmin registers the organizer login and the JWT-guarded
// booking listing.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	e.POST("/v1/auth/login", a.Login)

	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.GET("/tickets", a.ListTickets)
}
