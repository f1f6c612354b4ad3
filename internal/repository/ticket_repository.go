// Package repository provides database access for locally stored
// bookings.  It is only wired when the service runs in local
// reservation mode; in remote mode the external collaborator owns all
// persistence.
package repository

import (
	"context"
	"database/sql"
	"time"
)

// TicketRepo provides CRUD operations for the tickets table.
type TicketRepo struct {
	db *sql.DB
}

// NewTicketRepo returns a new TicketRepo bound to the given database.
func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{db: db} }

// TicketRecord mirrors the schema of the tickets table.  TicketID is
// the public identifier printed on the ticket ("RH-000042"); BookingRef
// is a collision-free internal reference.  Prices are the values
// resolved at booking time so the organizer listing shows what was
// actually charged.
type TicketRecord struct {
	ID            uint64    `json:"-"`               // tickets.id
	TicketID      string    `json:"ticket_id"`       // tickets.ticket_id
	BookingRef    string    `json:"booking_ref"`     // tickets.booking_ref
	FullName      string    `json:"full_name"`       // tickets.full_name
	Email         string    `json:"email"`           // tickets.email
	Phone         string    `json:"phone"`           // tickets.phone
	Tickets       int       `json:"tickets"`         // tickets.tickets
	WaveID        string    `json:"wave_id"`         // tickets.wave_id
	UnitPriceETB  int       `json:"unit_price_etb"`  // tickets.unit_price_etb
	TotalPriceETB int       `json:"total_price_etb"` // tickets.total_price_etb
	CreatedAt     time.Time `json:"created_at"`      // tickets.created_at
}

// Insert stores a new booking row and populates the generated primary
// key on the record.
func (r *TicketRepo) Insert(ctx context.Context, rec *TicketRecord) error {
	const q = `INSERT INTO tickets
        (ticket_id, booking_ref, full_name, email, phone, tickets, wave_id, unit_price_etb, total_price_etb)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		rec.TicketID, rec.BookingRef, rec.FullName, rec.Email, rec.Phone,
		rec.Tickets, rec.WaveID, rec.UnitPriceETB, rec.TotalPriceETB,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = uint64(id)
	return nil
}

// List returns all stored bookings, newest first.  Used by the
// organizer listing endpoint.
func (r *TicketRepo) List(ctx context.Context) ([]TicketRecord, error) {
	const q = `SELECT id, ticket_id, booking_ref, full_name, email, phone,
        tickets, wave_id, unit_price_etb, total_price_etb, created_at
        FROM tickets ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TicketRecord, 0)
	for rows.Next() {
		var rec TicketRecord
		if err := rows.Scan(
			&rec.ID, &rec.TicketID, &rec.BookingRef, &rec.FullName, &rec.Email, &rec.Phone,
			&rec.Tickets, &rec.WaveID, &rec.UnitPriceETB, &rec.TotalPriceETB, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
