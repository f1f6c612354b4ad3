package model

import "time"

// TicketWave is a time-boxed pricing tier for ticket sales.  Waves are
// defined once at startup in ascending chronological order and never
// change for the lifetime of the process.  Windows are inclusive on
// both ends; when two windows overlap (a configuration mistake) the
// earliest-listed wave is the one that applies.
//
// Fields:
//  ID       – short identifier referenced by reservation results.
//  Name     – display name shown on tickets ("First Wave").
//  Label    – human-readable description of the sales window.
//  PriceETB – price per ticket in Ethiopian birr.
//  StartsAt – first instant at which the wave is on sale.
//  EndsAt   – last instant at which the wave is on sale.
type TicketWave struct {
	ID       string    `json:"id"`        // waves.id
	Name     string    `json:"name"`      // waves.name
	Label    string    `json:"label"`     // waves.label
	PriceETB int       `json:"price_etb"` // price per ticket in birr
	StartsAt time.Time `json:"starts_at"` // window start (inclusive)
	EndsAt   time.Time `json:"ends_at"`   // window end (inclusive)
}

// Contains reports whether the wave's sales window covers the given
// instant.  Both boundaries are part of the window.
func (w TicketWave) Contains(at time.Time) bool {
	return !at.Before(w.StartsAt) && !at.After(w.EndsAt)
}
