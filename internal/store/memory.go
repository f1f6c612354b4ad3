// Package store keeps assembled tickets in process memory so the
// attendee can download the rendered image after booking.  Tickets are
// transient: they live only until the process exits, matching the
// delegation of durable persistence to the reservation collaborator.
package store

import (
	"sync"

	"github.com/rehaevents/ticketing/internal/model"
)

// TicketStore is a concurrency-safe in-memory map of assembled tickets
// keyed by ticket identifier.
type TicketStore struct {
	mu sync.RWMutex
	m  map[string]model.Ticket
}

// NewTicketStore returns an empty store.
func NewTicketStore() *TicketStore {
	return &TicketStore{m: make(map[string]model.Ticket)}
}

// Put stores a ticket.  Tickets are immutable once assembled, so a
// repeated Put for the same id is a no-op rather than an overwrite.
func (s *TicketStore) Put(t model.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[t.ID]; ok {
		return
	}
	s.m[t.ID] = t
}

// Get returns the ticket for id and whether it exists.
func (s *TicketStore) Get(id string) (model.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.m[id]
	return t, ok
}
