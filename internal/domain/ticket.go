package domain

import (
	"fmt"
	"math/rand"
	"time"
)

type TicketStatus string

const (
	TicketStatusPending   TicketStatus = "PENDING"
	TicketStatusConfirmed TicketStatus = "CONFIRMED"
	TicketStatusCancelled TicketStatus = "CANCELLED"
)

// CanTransitionTo reports whether the status change is legal.
// CANCELLED is terminal; confirmation is only reachable from PENDING.
func (s TicketStatus) CanTransitionTo(next TicketStatus) bool {
	switch s {
	case TicketStatusPending:
		return next == TicketStatusConfirmed || next == TicketStatusCancelled
	case TicketStatusConfirmed:
		return next == TicketStatusCancelled
	default:
		return false
	}
}

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusPending, TicketStatusConfirmed, TicketStatusCancelled:
		return true
	}
	return false
}

type Ticket struct {
	ID                 string       `json:"id"`
	EventID            string       `json:"event_id"`
	UserID             string       `json:"user_id"`
	Status             TicketStatus `json:"status"`
	TicketNumber       string       `json:"ticket_number"`
	IsCheckedIn        bool         `json:"is_checked_in"`
	CheckedInAt        *time.Time   `json:"checked_in_at,omitempty"`
	CancellationReason *string      `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time   `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

type CreateTicketInput struct {
	EventID string
	UserID  string
}

// UpdateTicketInput carries either a status transition or a check-in.
type UpdateTicketInput struct {
	Status             *TicketStatus
	CancellationReason *string
	CheckIn            bool
}

// NewTicketNumber generates a ticket number in the TIX-<millis>-<NNN> format.
// Uniqueness is ultimately guaranteed by the storage constraint, not here.
func NewTicketNumber() string {
	return fmt.Sprintf("TIX-%d-%03d", time.Now().UnixMilli(), rand.Intn(1000))
}
