package model

import (
	"errors"
	"strings"
)

// Booking quantity bounds enforced before any reservation attempt.
const (
	MinTickets = 1
	MaxTickets = 10
)

// Validation errors returned by BookingInput.Validate.  Handlers map
// these to 400 responses without calling the reservation collaborator.
var (
	ErrMissingName       = errors.New("full name is required")
	ErrMissingEmail      = errors.New("email is required")
	ErrMissingPhone      = errors.New("phone is required")
	ErrTicketsOutOfRange = errors.New("tickets must be between 1 and 10")
)

// BookingInput is the attendee-provided booking form.  It is ephemeral:
// created on submission and discarded once a reservation succeeds or
// validation fails.  On failure the client keeps its copy for retry.
type BookingInput struct {
	FullName string `json:"full_name"` // attendee full name
	Email    string `json:"email"`     // contact email
	Phone    string `json:"phone"`     // contact phone
	Tickets  int    `json:"tickets"`   // quantity, bounded 1–10
}

// Validate checks that all required fields are present and the ticket
// quantity is within bounds.  The first violation found is returned.
func (b BookingInput) Validate() error {
	if strings.TrimSpace(b.FullName) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(b.Email) == "" {
		return ErrMissingEmail
	}
	if strings.TrimSpace(b.Phone) == "" {
		return ErrMissingPhone
	}
	if b.Tickets < MinTickets || b.Tickets > MaxTickets {
		return ErrTicketsOutOfRange
	}
	return nil
}
