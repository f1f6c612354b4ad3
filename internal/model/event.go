package model

// EventDetails carries the static metadata for the event on sale.  The
// service sells tickets for exactly one event at a time, so these values
// come from configuration rather than a database.  DefaultPriceETB is
// the price quoted when no wave is active ("sales closed" estimate).
type EventDetails struct {
	Title           string `json:"title"`             // event title
	Date            string `json:"date"`              // display date ("March 14, 2026")
	Time            string `json:"time"`              // display time range
	Location        string `json:"location"`          // venue
	Artist          string `json:"artist"`            // headline artist
	Description     string `json:"description"`       // marketing copy
	Currency        string `json:"currency"`          // price currency code ("ETB")
	DefaultPriceETB int    `json:"default_price_etb"` // fallback price when no wave matches
	Brand           string `json:"brand"`             // brand prefix used in download filenames
}
