package reservation

import (
	"context"
	"fmt"
	"log"

	"github.com/lucsky/cuid"

	"github.com/rehaevents/ticketing/internal/model"
	"github.com/rehaevents/ticketing/internal/repository"
	"github.com/rehaevents/ticketing/internal/sequence"
)

// PriceEstimator supplies the currently resolved wave and per-ticket
// price.  Implemented by wave.Monitor.
type PriceEstimator interface {
	Current() (*model.TicketWave, int)
}

// TicketInserter stores a confirmed booking row.  Implemented by
// repository.TicketRepo; tests substitute fakes.
type TicketInserter interface {
	Insert(ctx context.Context, rec *repository.TicketRecord) error
}

// LocalStore is the client-computed-price reservation strategy: a plain
// insert into the service's own database.  Pricing comes from the
// currently active wave, ticket numbering from the injected sequence
// provider, and a cuid gives each booking a collision-free internal
// reference.  Bookings are rejected outright when no wave is open,
// matching the availability check the remote procedure applies.
type LocalStore struct {
	repo   TicketInserter
	seq    sequence.Provider
	prices PriceEstimator
	prefix string
}

// NewLocalStore wires the local strategy.  prefix is the human-readable
// ticket id prefix ("RH" yields ids like "RH-000042").
func NewLocalStore(repo TicketInserter, seq sequence.Provider, prices PriceEstimator, prefix string) *LocalStore {
	if repo == nil || seq == nil || prices == nil {
		panic("nil dependency passed to NewLocalStore")
	}
	return &LocalStore{repo: repo, seq: seq, prices: prices, prefix: prefix}
}

// Reserve inserts the booking and returns a Result with locally
// resolved wave and pricing.
func (s *LocalStore) Reserve(ctx context.Context, in model.BookingInput) (*Result, error) {
	w, unit := s.prices.Current()
	if w == nil {
		return nil, ErrNotOnSale
	}

	n, err := s.seq.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("next ticket number: %w", err)
	}
	ticketID := fmt.Sprintf("%s-%06d", s.prefix, n)
	total := unit * in.Tickets

	rec := &repository.TicketRecord{
		TicketID:      ticketID,
		BookingRef:    cuid.New(),
		FullName:      in.FullName,
		Email:         in.Email,
		Phone:         in.Phone,
		Tickets:       in.Tickets,
		WaveID:        w.ID,
		UnitPriceETB:  unit,
		TotalPriceETB: total,
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	log.Printf("reservation: local booking stored ticket_id=%s ref=%s wave=%s", ticketID, rec.BookingRef, w.ID)

	return &Result{
		TicketID:      ticketID,
		FullName:      in.FullName,
		Email:         in.Email,
		Phone:         in.Phone,
		WaveID:        w.ID,
		UnitPriceETB:  &unit,
		TotalPriceETB: &total,
	}, nil
}
